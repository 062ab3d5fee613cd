package api

import (
	"context"
	"net/http"

	"therewecome/models"
)

func (c *Client) GetProfile(ctx context.Context, token string) (*models.Profile, error) {
	var p models.Profile
	if err := c.call(ctx, "get profile", http.MethodGet, "/api/profile", nil, token, nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *Client) UpdateProfile(ctx context.Context, token string, update models.ProfileUpdate) error {
	return c.call(ctx, "update profile", http.MethodPut, "/api/profile", nil, token, update, nil)
}
