package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carson-networks/fieldops-server/internal/models"
)

type MemberInput struct {
	FirstName   string `json:"firstName" validate:"required"`
	LastName    string `json:"lastName" validate:"required"`
	PhoneNumber string `json:"phoneNumber" validate:"required"`
	Email       string `json:"email,omitempty" validate:"omitempty,email"`
	NationalID  string `json:"nationalId" validate:"required"`
	GroupID     string `json:"groupId" validate:"required"`
}

func (c *Client) ListMembers(ctx context.Context, status models.MemberStatus) ([]models.Member, error) {
	endpoint := "/members"
	if status != "" {
		endpoint += "?" + url.Values{"status": {string(status)}}.Encode()
	}
	return list[models.Member](ctx, c, endpoint)
}

func (c *Client) GetMember(ctx context.Context, id string) (*models.Member, error) {
	var out models.Member
	if err := c.get(ctx, "/members/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateMember(ctx context.Context, in MemberInput) (*models.Member, error) {
	var out models.Member
	if err := c.send(ctx, http.MethodPost, "/members", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateMember(ctx context.Context, id string, in MemberInput) (*models.Member, error) {
	var out models.Member
	if err := c.send(ctx, http.MethodPut, "/members/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) ApproveMember(ctx context.Context, id string) error {
	return c.patch(ctx, "/members/"+url.PathEscape(id)+"/approve", nil, nil)
}

func (c *Client) MemberLoans(ctx context.Context, memberID string) ([]models.Loan, error) {
	return list[models.Loan](ctx, c, "/members/"+url.PathEscape(memberID)+"/loans")
}

func (c *Client) MemberTransactions(ctx context.Context, memberID string) ([]models.Transaction, error) {
	return list[models.Transaction](ctx, c, "/members/"+url.PathEscape(memberID)+"/transactions")
}
