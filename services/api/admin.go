package api

import (
	"context"
	"net/http"

	"therewecome/models"
)

func (c *Client) ListUsers(ctx context.Context, token string) ([]models.UserSummary, error) {
	var users []models.UserSummary
	if err := c.call(ctx, "list users", http.MethodGet, "/api/admin/users", nil, token, nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}

func (c *Client) GetMetrics(ctx context.Context, token string) (*models.Metrics, error) {
	var m models.Metrics
	if err := c.call(ctx, "get metrics", http.MethodGet, "/api/admin/metrics", nil, token, nil, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Invite asks the API to email a registration invitation. The body is the
// bare JSON string of the address.
func (c *Client) Invite(ctx context.Context, token, email string) error {
	return c.call(ctx, "invite", http.MethodPost, "/admin/invite", nil, token, email, nil)
}
