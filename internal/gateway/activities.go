package gateway

import (
	"context"
	"net/http"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

// ListActivities returns a board's activity log, newest first
func (c *Client) ListActivities(ctx context.Context, boardID string) ([]models.Activity, error) {
	var out []models.Activity
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     boardPath(boardID) + "/activities",
		out:      &out,
		fallback: "Failed to fetch activities",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateActivity appends an entry to the activity log
func (c *Client) CreateActivity(ctx context.Context, in models.ActivityInput) (*models.Activity, error) {
	var out models.Activity
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/activities",
		body:     in,
		out:      &out,
		fallback: "Failed to log activity",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
