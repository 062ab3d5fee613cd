package api

import (
	"bytes"
	"context"
	"net/http"

	"therewecome/models"
)

// Login exchanges credentials for a token.
func (c *Client) Login(ctx context.Context, email, password string) (*models.LoginResponse, error) {
	var resp models.LoginResponse
	req := models.LoginRequest{Email: email, Password: password}
	if err := c.call(ctx, "login", http.MethodPost, "/api/auth/login", nil, "", req, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}

// Register creates an account. An invite token, when present, is forwarded
// in the body. The API may answer without a body, which yields an empty
// response.
func (c *Client) Register(ctx context.Context, reg models.RegistrationRequest) (*models.RegistrationResponse, error) {
	raw, err := c.do(ctx, "register", http.MethodPost, "/api/auth/register", nil, "", reg)
	if err != nil {
		return nil, err
	}
	var resp models.RegistrationResponse
	if len(bytes.TrimSpace(raw.body)) == 0 {
		return &resp, nil
	}
	if err := c.decode("register", raw, &resp); err != nil {
		return nil, err
	}
	return &resp, nil
}
