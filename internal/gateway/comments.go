package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

func commentPath(id string) string {
	return "/api/comments/" + url.PathEscape(id)
}

// ListComments returns the comments on a task, oldest first
func (c *Client) ListComments(ctx context.Context, taskID string) ([]models.Comment, error) {
	var out []models.Comment
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     taskPath(taskID) + "/comments",
		out:      &out,
		fallback: "Failed to fetch comments",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateComment adds a comment to a task
func (c *Client) CreateComment(ctx context.Context, in models.CommentInput) (*models.Comment, error) {
	var out models.Comment
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/comments",
		body:     in,
		out:      &out,
		fallback: "Failed to add comment",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateComment edits a comment's content
func (c *Client) UpdateComment(ctx context.Context, id string, in models.CommentUpdate) (*models.Comment, error) {
	var out models.Comment
	err := c.do(ctx, call{
		method:   http.MethodPut,
		path:     commentPath(id),
		body:     in,
		out:      &out,
		fallback: "Failed to update comment",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteComment removes a comment
func (c *Client) DeleteComment(ctx context.Context, id string) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		path:     commentPath(id),
		fallback: "Failed to delete comment",
		auth:     true,
	})
}
