package api

import (
	"context"
	"net/http"

	"github.com/Anisah23/grubgrab/internal/domain"
)

// CheckSession asks the backend whether the cookie jar still holds a
// live session. A 401 here just means "signed out".
func (c *Client) CheckSession(ctx context.Context) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodGet, "/api/check_session", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

type loginParams struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates and returns the signed-in user. The session
// cookie lands in the jar as a side effect.
func (c *Client) Login(ctx context.Context, username, password string) (*domain.User, error) {
	var user domain.User
	err := c.do(ctx, http.MethodPost, "/api/login", loginParams{Username: username, Password: password}, &user)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// Signup creates an account and signs it in.
func (c *Client) Signup(ctx context.Context, params domain.SignupParams) (*domain.User, error) {
	var user domain.User
	if err := c.do(ctx, http.MethodPost, "/api/signup", params, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout ends the server-side session.
func (c *Client) Logout(ctx context.Context) error {
	return c.do(ctx, http.MethodDelete, "/api/logout", nil, nil)
}
