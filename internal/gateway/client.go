// Package gateway is the typed client for the taskdeck REST backend.
// Every operation is a single HTTP round trip: no retries, no caching.
package gateway

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
)

// DefaultBaseURL is used when no backend URL is configured
const DefaultBaseURL = "http://localhost:5000"

// Client performs HTTP calls against the backend
type Client struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

// Option configures a Client
type Option func(*Client)

// WithHTTPClient overrides the transport (tests pass httptest clients here)
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.httpClient = hc
	}
}

// WithToken sets the bearer credential attached to authenticated calls
func WithToken(token string) Option {
	return func(c *Client) {
		c.token = token
	}
}

// New creates a client for the backend at baseURL
func New(baseURL string, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	c := &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: http.DefaultClient,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// WithToken returns a copy of the client carrying token
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// Token returns the bearer credential, if any
func (c *Client) Token() string {
	return c.token
}

// BaseURL returns the backend root URL
func (c *Client) BaseURL() string {
	return c.baseURL
}

// call describes one request
type call struct {
	method   string
	path     string
	body     any
	out      any
	fallback string // message used when the server does not supply one
	auth     bool
}

func (c *Client) do(ctx context.Context, req call) error {
	var payload io.Reader
	if req.body != nil {
		data, err := sonic.ConfigStd.Marshal(req.body)
		if err != nil {
			return fmt.Errorf("failed to encode %s %s body: %w", req.method, req.path, err)
		}
		payload = bytes.NewReader(data)
	}

	httpReq, err := http.NewRequestWithContext(ctx, req.method, c.baseURL+req.path, payload)
	if err != nil {
		return fmt.Errorf("failed to build %s %s request: %w", req.method, req.path, err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	if req.auth && c.token != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		slog.Debug("request failed", "method", req.method, "path", req.path, "error", err)
		return &RequestError{Op: req.method + " " + req.path, Message: req.fallback, Err: err}
	}
	defer func() {
		if err := resp.Body.Close(); err != nil {
			slog.Debug("error closing response body", "error", err)
		}
	}()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return newRequestError(req.method+" "+req.path, resp, req.fallback)
	}

	if req.out == nil || resp.StatusCode == http.StatusNoContent {
		return nil
	}

	if err := sonic.ConfigStd.NewDecoder(resp.Body).Decode(req.out); err != nil {
		return &RequestError{
			Op:      req.method + " " + req.path,
			Status:  resp.StatusCode,
			Message: req.fallback,
			Err:     fmt.Errorf("failed to decode response: %w", err),
		}
	}
	return nil
}
