package apiclient

import (
	"context"
	"net/url"

	"github.com/carson-networks/fieldops-server/internal/models"
)

type PendingApprovals struct {
	Loans        []models.Loan        `json:"loans"`
	Transactions []models.Transaction `json:"transactions"`
	Members      []models.Member      `json:"members"`
}

func (c *Client) BranchStats(ctx context.Context) (*models.BranchStats, error) {
	var out models.BranchStats
	if err := c.get(ctx, "/branch-manager/stats", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) BranchOfficers(ctx context.Context) ([]models.OfficerSummary, error) {
	return list[models.OfficerSummary](ctx, c, "/branch-manager/officers")
}

func (c *Client) BranchGroups(ctx context.Context) ([]models.Group, error) {
	return list[models.Group](ctx, c, "/branch-manager/groups")
}

func (c *Client) BranchPendingApprovals(ctx context.Context) (*PendingApprovals, error) {
	var out PendingApprovals
	if err := c.get(ctx, "/branch-manager/pending-approvals", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) AssignOfficer(ctx context.Context, groupID, officerID string) error {
	body := map[string]string{"officerId": officerID}
	return c.patch(ctx, "/branch-manager/groups/"+url.PathEscape(groupID)+"/officer", body, nil)
}
