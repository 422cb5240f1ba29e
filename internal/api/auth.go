package api

import (
	"context"
	"net/http"

	"github.com/moodlogapp/moodlog/internal/models"
)

// Login exchanges credentials for a bearer token and persists it in the
// session store. A 401 here is a credential failure surfaced as an
// *APIError, not a session expiry.
func (c *Client) Login(ctx context.Context, email, password string) error {
	var token models.Token
	err := c.do(ctx, http.MethodPost, "/login", models.Credentials{
		Email:    email,
		Password: password,
	}, &token, false)
	if err != nil {
		return err
	}
	return c.session.Login(token.AccessToken)
}

// Register creates an account and logs the new user in.
func (c *Client) Register(ctx context.Context, name, email, password string) error {
	var token models.Token
	err := c.do(ctx, http.MethodPost, "/register", models.Registration{
		Name:     name,
		Email:    email,
		Password: password,
	}, &token, false)
	if err != nil {
		return err
	}
	return c.session.Login(token.AccessToken)
}
