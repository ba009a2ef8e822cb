package apiclient

import (
	"context"
	"net/url"

	"github.com/carson-networks/fieldops-server/internal/models"
)

func (c *Client) ListNotifications(ctx context.Context) ([]models.Notification, error) {
	return list[models.Notification](ctx, c, "/notifications")
}

func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	return c.patch(ctx, "/notifications/"+url.PathEscape(id)+"/read", nil, nil)
}

func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.patch(ctx, "/notifications/read-all", nil, nil)
}

// DashboardStats is the loosely typed headline block served to every role.
type DashboardStats map[string]any

func (c *Client) DashboardStats(ctx context.Context) (DashboardStats, error) {
	var out DashboardStats
	if err := c.get(ctx, "/dashboard/stats", &out); err != nil {
		return nil, err
	}
	return out, nil
}
