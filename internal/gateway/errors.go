package gateway

import (
	"errors"
	"io"
	"net/http"
	"strings"

	"github.com/bytedance/sonic"
)

// Classification sentinels. Callers match them with errors.Is instead of
// looking at status codes.
var (
	ErrNotFound     = errors.New("resource not found")
	ErrUnauthorized = errors.New("not authenticated")
	ErrForbidden    = errors.New("not allowed")
)

// maxErrorBody bounds how much of an error response is read
const maxErrorBody = 64 << 10

// RequestError is returned for any failed backend call. Message is the
// server-supplied message, or a generic fallback, and is safe to show to users.
type RequestError struct {
	Op      string // "GET /api/boards"
	Status  int    // 0 when the request never got a response
	Message string
	Err     error // transport or decode failure, if any
}

// Error implements the error interface
func (e *RequestError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying transport error
func (e *RequestError) Unwrap() error {
	return e.Err
}

// Is maps status codes onto the classification sentinels
func (e *RequestError) Is(target error) bool {
	switch target {
	case ErrNotFound:
		return e.Status == http.StatusNotFound
	case ErrUnauthorized:
		return e.Status == http.StatusUnauthorized
	case ErrForbidden:
		return e.Status == http.StatusForbidden
	}
	return false
}

// newRequestError reads the {"message": "..."} body of a failed response
func newRequestError(op string, resp *http.Response, fallback string) *RequestError {
	reqErr := &RequestError{Op: op, Status: resp.StatusCode, Message: fallback}

	data, err := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if err != nil || len(data) == 0 {
		return reqErr
	}

	var body struct {
		Message string `json:"message"`
	}
	if sonic.ConfigStd.Unmarshal(data, &body) == nil && strings.TrimSpace(body.Message) != "" {
		reqErr.Message = body.Message
	}
	return reqErr
}

// Message extracts the user-facing message from err, falling back to err.Error()
func Message(err error) string {
	var reqErr *RequestError
	if errors.As(err, &reqErr) {
		return reqErr.Message
	}
	return err.Error()
}
