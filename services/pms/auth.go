package pms

import (
	"context"
	"net/http"

	"premierlodge/models"
	"premierlodge/services/apiclient"
)

// Credentials is the sign-in request body.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// AuthResult carries the upstream-issued bearer token.
type AuthResult struct {
	Token string `json:"token"`
	ID    string `json:"id,omitempty"`
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
}

func (c *Client) Login(ctx context.Context, creds Credentials) (models.Envelope[AuthResult], error) {
	return apiclient.Do[AuthResult](ctx, c.api, http.MethodPost, "/auth/login", creds, nil)
}

func (c *Client) Logout(ctx context.Context) (models.Envelope[Empty], error) {
	return apiclient.Do[Empty](ctx, c.api, http.MethodPost, "/auth/logout", nil, nil)
}
