package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

func boardPath(id string) string {
	return "/api/boards/" + url.PathEscape(id)
}

// ListBoards returns the boards visible to the authenticated user
func (c *Client) ListBoards(ctx context.Context) ([]models.Board, error) {
	var out []models.Board
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     "/api/boards",
		out:      &out,
		fallback: "Failed to fetch boards",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// GetBoard fetches one board
func (c *Client) GetBoard(ctx context.Context, id string) (*models.Board, error) {
	var out models.Board
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     boardPath(id),
		out:      &out,
		fallback: "Failed to fetch board",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateBoard creates a board owned by the authenticated user
func (c *Client) CreateBoard(ctx context.Context, in models.BoardInput) (*models.Board, error) {
	var out models.Board
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/boards",
		body:     in,
		out:      &out,
		fallback: "Failed to create board",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateBoard applies a partial update to a board
func (c *Client) UpdateBoard(ctx context.Context, id string, in models.BoardUpdate) (*models.Board, error) {
	var out models.Board
	err := c.do(ctx, call{
		method:   http.MethodPut,
		path:     boardPath(id),
		body:     in,
		out:      &out,
		fallback: "Failed to update board",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteBoard removes a board. The backend deletes its tasks with it.
func (c *Client) DeleteBoard(ctx context.Context, id string) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		path:     boardPath(id),
		fallback: "Failed to delete board",
		auth:     true,
	})
}
