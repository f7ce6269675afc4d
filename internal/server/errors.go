package server

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/thenoetrevino/taskdeck/internal/database"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// apiError is a failure with the status and message sent to the client
type apiError struct {
	Status  int
	Message string
}

func (e *apiError) Error() string {
	return e.Message
}

func badRequest(message string) *apiError {
	return &apiError{Status: http.StatusBadRequest, Message: message}
}

func notFound(message string) *apiError {
	return &apiError{Status: http.StatusNotFound, Message: message}
}

func forbidden(message string) *apiError {
	return &apiError{Status: http.StatusForbidden, Message: message}
}

var (
	errAccessDenied    = forbidden("Access denied")
	errBoardNotFound   = notFound("Board not found")
	errTaskNotFound    = notFound("Task not found")
	errCommentNotFound = notFound("Comment not found")
	errUserNotFound    = notFound("User not found")
	errInvalidBody     = badRequest("Invalid request body")
)

// abort writes a {"message": ...} body and stops the handler chain
func abort(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, models.MessageResponse{Message: message})
}

// fail maps err onto a response. Unexpected errors are logged and hidden.
func (s *Server) fail(c *gin.Context, err error) {
	var apiErr *apiError
	switch {
	case errors.As(err, &apiErr):
		abort(c, apiErr.Status, apiErr.Message)
	case errors.Is(err, database.ErrConflict):
		abort(c, http.StatusConflict, "User already exists")
	case errors.Is(err, database.ErrNotFound):
		abort(c, http.StatusNotFound, "Not found")
	default:
		s.logger.Error("request failed",
			"method", c.Request.Method,
			"path", c.FullPath(),
			"error", err,
		)
		abort(c, http.StatusInternalServerError, "Internal server error")
	}
}

// lookup maps a repository ErrNotFound onto the given API error
func lookup(err error, missing *apiError) error {
	if errors.Is(err, database.ErrNotFound) {
		return missing
	}
	return err
}
