package gateway

import (
	"context"
	"net/http"
	"net/url"

	"github.com/thenoetrevino/taskdeck/internal/models"
)

func taskPath(id string) string {
	return "/api/tasks/" + url.PathEscape(id)
}

// ListTasks returns the tasks of one board
func (c *Client) ListTasks(ctx context.Context, boardID string) ([]models.Task, error) {
	var out []models.Task
	err := c.do(ctx, call{
		method:   http.MethodGet,
		path:     boardPath(boardID) + "/tasks",
		out:      &out,
		fallback: "Failed to fetch tasks",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// CreateTask creates a task on the board named by in.BoardID
func (c *Client) CreateTask(ctx context.Context, in models.TaskInput) (*models.Task, error) {
	var out models.Task
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     "/api/tasks",
		body:     in,
		out:      &out,
		fallback: "Failed to create task",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateTask applies a partial update to a task
func (c *Client) UpdateTask(ctx context.Context, id string, in models.TaskUpdate) (*models.Task, error) {
	var out models.Task
	err := c.do(ctx, call{
		method:   http.MethodPut,
		path:     taskPath(id),
		body:     in,
		out:      &out,
		fallback: "Failed to update task",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteTask removes a task and its comments
func (c *Client) DeleteTask(ctx context.Context, id string) error {
	return c.do(ctx, call{
		method:   http.MethodDelete,
		path:     taskPath(id),
		fallback: "Failed to delete task",
		auth:     true,
	})
}

// AssignTask sets the assignee of a task. An empty userID unassigns it.
func (c *Client) AssignTask(ctx context.Context, id, userID string) (*models.Task, error) {
	var out models.Task
	err := c.do(ctx, call{
		method:   http.MethodPost,
		path:     taskPath(id) + "/assign",
		body:     models.AssignRequest{AssignedTo: userID},
		out:      &out,
		fallback: "Failed to assign task",
		auth:     true,
	})
	if err != nil {
		return nil, err
	}
	return &out, nil
}
