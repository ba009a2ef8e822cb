package apiclient

import (
	"context"
	"net/http"
	"net/url"

	"github.com/carson-networks/fieldops-server/internal/models"
)

type GroupInput struct {
	Name       string `json:"name" validate:"required"`
	Location   string `json:"location" validate:"required"`
	MeetingDay string `json:"meetingDay,omitempty"`
	OfficerID  string `json:"officerId,omitempty"`
}

func (c *Client) ListGroups(ctx context.Context) ([]models.Group, error) {
	return list[models.Group](ctx, c, "/groups")
}

func (c *Client) GetGroup(ctx context.Context, id string) (*models.Group, error) {
	var out models.Group
	if err := c.get(ctx, "/groups/"+url.PathEscape(id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) CreateGroup(ctx context.Context, in GroupInput) (*models.Group, error) {
	var out models.Group
	if err := c.send(ctx, http.MethodPost, "/groups", in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) UpdateGroup(ctx context.Context, id string, in GroupInput) (*models.Group, error) {
	var out models.Group
	if err := c.send(ctx, http.MethodPut, "/groups/"+url.PathEscape(id), in, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) GroupMembers(ctx context.Context, groupID string) ([]models.Member, error) {
	return list[models.Member](ctx, c, "/groups/"+url.PathEscape(groupID)+"/members")
}

func (c *Client) GroupLoans(ctx context.Context, groupID string) ([]models.Loan, error) {
	return list[models.Loan](ctx, c, "/groups/"+url.PathEscape(groupID)+"/loans")
}

func (c *Client) AddGroupMember(ctx context.Context, groupID, memberID string) error {
	body := map[string]string{"memberId": memberID}
	return c.post(ctx, "/groups/"+url.PathEscape(groupID)+"/members", body, nil)
}
