package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/thenoetrevino/taskdeck/internal/cache"
	"github.com/thenoetrevino/taskdeck/internal/config"
	"github.com/thenoetrevino/taskdeck/internal/dialog"
	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
	"github.com/thenoetrevino/taskdeck/internal/services/account"
	"github.com/thenoetrevino/taskdeck/internal/services/board"
	"github.com/thenoetrevino/taskdeck/internal/services/comment"
	"github.com/thenoetrevino/taskdeck/internal/services/task"
)

// validationErrors are rejected by a service before any request is sent
var validationErrors = []error{
	models.ErrInvalidStatus, models.ErrInvalidPriority,
	account.ErrPasswordMismatch, account.ErrPasswordTooShort, account.ErrEmptyCurrentPassword,
	account.ErrEmptyUsername, account.ErrUsernameTooLong, account.ErrInvalidEmail, account.ErrEmptyCredentials,
	board.ErrEmptyName, board.ErrNameTooLong, board.ErrDescriptionTooLong, board.ErrInvalidBoardID, board.ErrDuplicateMember,
	task.ErrEmptyTitle, task.ErrTitleTooLong, task.ErrInvalidTaskID, task.ErrInvalidBoardID, task.ErrInvalidStatus,
	task.ErrInvalidPriority, task.ErrInvalidDueDate, task.ErrEmptyTag, task.ErrNoChanges, task.ErrAlreadyAssigned,
	task.ErrAlreadyInStatus,
	comment.ErrEmptyContent, comment.ErrContentTooLong, comment.ErrInvalidCommentID, comment.ErrInvalidTaskID,
}

func isValidation(err error) bool {
	if dialog.IsValidation(err) {
		return true
	}
	for _, target := range validationErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

// Problem describes a failed command for the user
type Problem struct {
	Code       string
	Message    string
	Suggestion string
	Exit       int
}

// Classify maps an error onto an error code, exit code and suggestion
func Classify(err error) Problem {
	p := Problem{Code: "ERROR", Message: gateway.Message(err), Exit: ExitError}

	var reqErr *gateway.RequestError
	switch {
	case errors.Is(err, config.ErrNoSession):
		p.Code, p.Exit = "NOT_LOGGED_IN", ExitUsage
		p.Suggestion = "Run 'taskdeck login' or 'taskdeck register' first"
	case errors.Is(err, gateway.ErrUnauthorized):
		p.Code = "UNAUTHORIZED"
		p.Suggestion = "Your session may have expired; run 'taskdeck login'"
	case errors.Is(err, gateway.ErrForbidden):
		p.Code = "FORBIDDEN"
	case errors.Is(err, gateway.ErrNotFound),
		errors.Is(err, cache.ErrBoardNotFound),
		errors.Is(err, task.ErrTaskNotFound):
		p.Code, p.Exit = "NOT_FOUND", ExitNotFound
	case isValidation(err):
		p.Code, p.Exit = "VALIDATION_ERROR", ExitValidation
	case errors.As(err, &reqErr) && reqErr.Status == http.StatusBadRequest:
		p.Code, p.Exit = "VALIDATION_ERROR", ExitValidation
	case errors.As(err, &reqErr):
		p.Code = "REQUEST_FAILED"
		if reqErr.Status == 0 {
			p.Suggestion = "Check that the server is running and TASKDECK_API_URL is correct"
		}
	case errors.Is(err, huh.ErrUserAborted), errors.Is(err, context.Canceled):
		p.Code = "ABORTED"
	}
	return p
}

// Usage returns an ExitUsage error for a bad flag combination
func Usage(f *OutputFormatter, message string) error {
	_ = f.Error("USAGE", message)
	return &ExitErr{Code: ExitUsage, Err: errors.New(message)}
}

// FormatRelative renders t relative to now: "just now", "N minutes ago",
// "N hours ago", otherwise the date
func FormatRelative(t, now time.Time) string {
	d := now.Sub(t)
	switch {
	case d < time.Minute:
		return "just now"
	case d < time.Hour:
		return plural(int(d/time.Minute), "minute") + " ago"
	case d < 24*time.Hour:
		return plural(int(d/time.Hour), "hour") + " ago"
	}
	return t.Local().Format("Jan 2, 2006")
}

func plural(n int, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

// ParseTags splits a comma-separated flag value, dropping blanks
func ParseTags(raw string) []string {
	return task.ParseTags(raw)
}

// ReadDescription returns value, or all of stdin when value is "-"
func ReadDescription(value string, stdin io.Reader) (string, error) {
	if value != "-" {
		return value, nil
	}
	data, err := io.ReadAll(stdin)
	if err != nil {
		return "", &ExitErr{Code: ExitDataErr, Err: fmt.Errorf("failed to read description from stdin: %w", err)}
	}
	return strings.TrimRight(string(data), "\n"), nil
}
