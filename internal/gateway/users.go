package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// ListUsers returns every user
func (c *Client) ListUsers(ctx context.Context) ([]models.User, error) {
	var out []models.User
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/users",
		out:      &out,
		fallback: "Failed to fetch users",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetUser fetches one user by id
func (c *Client) GetUser(ctx context.Context, id string) (*models.User, error) {
	var out models.User
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/users/" + url.PathEscape(id),
		out:      &out,
		fallback: "Failed to fetch user",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
