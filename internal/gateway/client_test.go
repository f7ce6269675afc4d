package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// recorded captures what the fake backend received
type recorded struct {
	method string
	path   string
	auth   string
	ctype  string
	body   []byte
}

func newTestServer(t *testing.T, status int, response string) (*Client, *[]recorded) {
	t.Helper()

	var (
		mu    sync.Mutex
		calls []recorded
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		mu.Lock()
		defer mu.Unlock()
		calls = append(calls, recorded{
			method: r.Method,
			path:   r.URL.Path,
			auth:   r.Header.Get("Authorization"),
			ctype:  r.Header.Get("Content-Type"),
			body:   body,
		})
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = io.WriteString(w, response)
	}))
	t.Cleanup(srv.Close)

	return New(srv.URL, WithHTTPClient(srv.Client()), WithToken("tok-123")), &calls
}

func TestClient_SendsBearerAndContentType(t *testing.T) {
	client, calls := newTestServer(t, http.StatusOK, `[{"id":"b1","name":"Roadmap"}]`)

	boards, err := client.ListBoards(context.Background())
	require.NoError(t, err)
	require.Len(t, boards, 1)
	assert.Equal(t, "Roadmap", boards[0].Name)

	require.Len(t, *calls, 1)
	got := (*calls)[0]
	assert.Equal(t, http.MethodGet, got.method)
	assert.Equal(t, "/api/boards", got.path)
	assert.Equal(t, "Bearer tok-123", got.auth)
	assert.Equal(t, "application/json", got.ctype)
}

func TestClient_LoginIsUnauthenticated(t *testing.T) {
	client, calls := newTestServer(t, http.StatusOK, `{"token":"abc","user":{"id":"u1","username":"ana"}}`)

	resp, err := client.Login(context.Background(), models.LoginRequest{Email: "a@b.c", Password: "secret"})
	require.NoError(t, err)
	assert.Equal(t, "abc", resp.Token)
	assert.Equal(t, "ana", resp.User.Username)
	assert.Empty(t, (*calls)[0].auth)
}

func TestClient_WithTokenCopies(t *testing.T) {
	base := New("http://example.invalid/")
	authed := base.WithToken("t")

	assert.Empty(t, base.Token())
	assert.Equal(t, "t", authed.Token())
	assert.Equal(t, "http://example.invalid", authed.BaseURL())
}

func TestClient_DefaultBaseURL(t *testing.T) {
	assert.Equal(t, DefaultBaseURL, New("").BaseURL())
}

func TestClient_UpdateTaskSendsOnlySetFields(t *testing.T) {
	client, calls := newTestServer(t, http.StatusOK, `{"id":"t1","status":"done"}`)

	status := models.StatusDone
	task, err := client.UpdateTask(context.Background(), "t1", models.TaskUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, models.StatusDone, task.Status)

	got := (*calls)[0]
	assert.Equal(t, http.MethodPut, got.method)
	assert.Equal(t, "/api/tasks/t1", got.path)

	var body map[string]any
	require.NoError(t, json.Unmarshal(got.body, &body))
	assert.Equal(t, map[string]any{"status": "done"}, body)
}

func TestClient_AssignTask(t *testing.T) {
	client, calls := newTestServer(t, http.StatusOK, `{"id":"t1","assignedTo":"u2"}`)

	task, err := client.AssignTask(context.Background(), "t1", "u2")
	require.NoError(t, err)
	assert.Equal(t, "u2", task.AssignedTo)

	got := (*calls)[0]
	assert.Equal(t, "/api/tasks/t1/assign", got.path)
	assert.JSONEq(t, `{"assignedTo":"u2"}`, string(got.body))
}

func TestClient_Routes(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name   string
		call   func(c *Client) error
		method string
		path   string
		list   bool
	}{
		{"get board", func(c *Client) error { _, err := c.GetBoard(ctx, "b1"); return err }, http.MethodGet, "/api/boards/b1", false},
		{"delete board", func(c *Client) error { return c.DeleteBoard(ctx, "b1") }, http.MethodDelete, "/api/boards/b1", false},
		{"list tasks", func(c *Client) error { _, err := c.ListTasks(ctx, "b1"); return err }, http.MethodGet, "/api/boards/b1/tasks", true},
		{"delete task", func(c *Client) error { return c.DeleteTask(ctx, "t1") }, http.MethodDelete, "/api/tasks/t1", false},
		{"list comments", func(c *Client) error { _, err := c.ListComments(ctx, "t1"); return err }, http.MethodGet, "/api/tasks/t1/comments", true},
		{"delete comment", func(c *Client) error { return c.DeleteComment(ctx, "c1") }, http.MethodDelete, "/api/comments/c1", false},
		{"list activities", func(c *Client) error { _, err := c.ListActivities(ctx, "b1"); return err }, http.MethodGet, "/api/boards/b1/activities", true},
		{"get user", func(c *Client) error { _, err := c.GetUser(ctx, "u1"); return err }, http.MethodGet, "/api/users/u1", false},
		{"me", func(c *Client) error { _, err := c.Me(ctx); return err }, http.MethodGet, "/api/users/me", false},
		{"update profile", func(c *Client) error {
			_, err := c.UpdateProfile(ctx, models.ProfileUpdate{Username: "a", Email: "a@b.c"})
			return err
		}, http.MethodPut, "/api/users/me", false},
		{"change password", func(c *Client) error {
			return c.ChangePassword(ctx, models.ChangePasswordRequest{CurrentPassword: "x", NewPassword: "yyyyyy"})
		}, http.MethodPost, "/api/auth/change-password", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			response := `{}`
			if tt.list {
				response = `[]`
			}
			client, calls := newTestServer(t, http.StatusOK, response)

			require.NoError(t, tt.call(client))
			require.Len(t, *calls, 1)
			assert.Equal(t, tt.method, (*calls)[0].method)
			assert.Equal(t, tt.path, (*calls)[0].path)
		})
	}
}

func TestClient_NoContentIsSuccess(t *testing.T) {
	client, _ := newTestServer(t, http.StatusNoContent, "")
	assert.NoError(t, client.DeleteTask(context.Background(), "t1"))
}

func TestRequestError_UsesServerMessage(t *testing.T) {
	client, _ := newTestServer(t, http.StatusBadRequest, `{"message":"Board name is required"}`)

	_, err := client.CreateBoard(context.Background(), models.BoardInput{})
	require.Error(t, err)
	assert.Equal(t, "Board name is required", err.Error())

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
	assert.Equal(t, "POST /api/boards", reqErr.Op)
}

func TestRequestError_FallsBackToOperationMessage(t *testing.T) {
	tests := []struct {
		name     string
		body     string
		call     func(c *Client) error
		expected string
	}{
		{"empty body", "", func(c *Client) error { _, err := c.ListBoards(context.Background()); return err }, "Failed to fetch boards"},
		{"non json", "oops", func(c *Client) error {
			_, err := c.Login(context.Background(), models.LoginRequest{})
			return err
		}, "Login failed"},
		{"blank message", `{"message":"  "}`, func(c *Client) error { return c.DeleteTask(context.Background(), "t") }, "Failed to delete task"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, _ := newTestServer(t, http.StatusInternalServerError, tt.body)
			err := tt.call(client)
			require.Error(t, err)
			assert.Equal(t, tt.expected, err.Error())
		})
	}
}

func TestRequestError_Classification(t *testing.T) {
	client, _ := newTestServer(t, http.StatusNotFound, `{"message":"Board not found"}`)
	_, err := client.GetBoard(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNotFound)
	assert.NotErrorIs(t, err, ErrUnauthorized)

	client, _ = newTestServer(t, http.StatusUnauthorized, `{"message":"Invalid token"}`)
	_, err = client.Me(context.Background())
	assert.ErrorIs(t, err, ErrUnauthorized)
	assert.Equal(t, "Invalid token", Message(err))

	client, _ = newTestServer(t, http.StatusForbidden, `{}`)
	err = client.DeleteBoard(context.Background(), "b1")
	assert.ErrorIs(t, err, ErrForbidden)
}

func TestRequestError_TransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := New(url)
	_, err := client.ListBoards(context.Background())
	require.Error(t, err)

	var reqErr *RequestError
	require.True(t, errors.As(err, &reqErr))
	assert.Zero(t, reqErr.Status)
	assert.Equal(t, "Failed to fetch boards", err.Error())
	assert.NotNil(t, errors.Unwrap(err))
}

func TestMessage_PlainError(t *testing.T) {
	assert.Equal(t, "boom", Message(errors.New("boom")))
}
