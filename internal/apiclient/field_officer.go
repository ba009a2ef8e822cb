package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carson-networks/fieldops-server/internal/models"
)

type VisitInput struct {
	Purpose   string   `json:"purpose" validate:"required"`
	Notes     string   `json:"notes,omitempty"`
	Latitude  *float64 `json:"latitude,omitempty" validate:"omitempty,latitude"`
	Longitude *float64 `json:"longitude,omitempty" validate:"omitempty,longitude"`
	VisitDate string   `json:"visitDate,omitempty"`
}

// PhotoInput carries a captured image as a data URL or base64 string.
type PhotoInput struct {
	Image   string `json:"image" validate:"required"`
	Caption string `json:"caption,omitempty"`
	VisitID string `json:"visitId,omitempty"`
}

type BiometricInput struct {
	FingerprintTemplate string `json:"fingerprintTemplate" validate:"required,base64"`
	Finger              string `json:"finger" validate:"required"`
}

func (c *Client) FieldOfficerGroups(ctx context.Context) ([]models.Group, error) {
	return list[models.Group](ctx, c, "/field-officer/groups")
}

func (c *Client) FieldOfficerVisits(ctx context.Context) ([]models.Visit, error) {
	return list[models.Visit](ctx, c, "/field-officer/visits")
}

func (c *Client) FieldOfficerLoans(ctx context.Context) ([]models.Loan, error) {
	return list[models.Loan](ctx, c, "/field-officer/loans")
}

func (c *Client) GroupVisits(ctx context.Context, groupID string) ([]models.Visit, error) {
	return list[models.Visit](ctx, c, "/field-officer/groups/"+url.PathEscape(groupID)+"/visits")
}

func (c *Client) RecordVisit(ctx context.Context, groupID string, in VisitInput) (*models.Visit, error) {
	var out models.Visit
	if err := c.send(ctx, http.MethodPost, "/field-officer/groups/"+url.PathEscape(groupID)+"/visits", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UploadGroupPhoto(ctx context.Context, groupID string, in PhotoInput) error {
	return c.send(ctx, http.MethodPost, "/field-officer/groups/"+url.PathEscape(groupID)+"/photos", in, nil)
}

func (c *Client) RegisterBiometrics(ctx context.Context, memberID string, in BiometricInput) error {
	return c.send(ctx, http.MethodPost, "/field-officer/members/"+url.PathEscape(memberID)+"/biometrics", in, nil)
}
