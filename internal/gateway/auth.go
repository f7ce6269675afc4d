package gateway

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// Register creates an account and returns its token
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/auth/register",
		body:     req,
		out:      &out,
		fallback: "Registration failed",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Login exchanges credentials for a token
func (c *Client) Login(ctx context.Context, req models.LoginRequest) (*models.AuthResponse, error) {
	var out models.AuthResponse
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/auth/login",
		body:     req,
		out:      &out,
		fallback: "Login failed",
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// Me returns the authenticated user
func (c *Client) Me(ctx context.Context) (*models.User, error) {
	var out models.User
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/users/me",
		out:      &out,
		fallback: "Failed to fetch user",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// ChangePassword replaces the authenticated user's password
func (c *Client) ChangePassword(ctx context.Context, req models.ChangePasswordRequest) error {
	return c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/auth/change-password",
		body:     req,
		fallback: "Failed to change password",
		auth:     true,
	})
}

// UpdateProfile edits the authenticated user's username and email
func (c *Client) UpdateProfile(ctx context.Context, req models.ProfileUpdate) (*models.User, error) {
	var out models.User
	err := c.do(ctx, call{
		method:   http.MethodPut,
		path:     "/api/users/me",
		body:     req,
		out:      &out,
		fallback: "Failed to update profile",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
