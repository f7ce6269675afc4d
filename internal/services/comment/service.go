// Package comment implements task comment operations on top of the gateway.
package comment

import (
	"context"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/thenoetrevino/taskdeck/internal/audit"
	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// Service defines all comment-related business operations
type Service interface {
	List(ctx context.Context, taskID string) ([]models.Comment, error)
	Add(ctx context.Context, task *models.Task, content string) (*models.Comment, error)
	Update(ctx context.Context, commentID, content string) (*models.Comment, error)
	Delete(ctx context.Context, commentID string) error
}

// service implements Service interface
type service struct {
	api      gateway.CommentAPI
	recorder audit.Recorder
}

// NewService creates a new comment service. recorder may be nil.
func NewService(api gateway.CommentAPI, recorder audit.Recorder) Service {
	if recorder == nil {
		recorder = audit.Discard
	}
	return &service{api: api, recorder: recorder}
}

// List returns the comments on a task
func (s *service) List(ctx context.Context, taskID string) ([]models.Comment, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, ErrInvalidTaskID
	}
	return s.api.ListComments(ctx, taskID)
}

// Add posts a comment on task
func (s *service) Add(ctx context.Context, task *models.Task, content string) (*models.Comment, error) {
	if task == nil || strings.TrimSpace(task.ID) == "" {
		return nil, ErrInvalidTaskID
	}
	content = strings.TrimSpace(content)
	if err := ValidateContent(content); err != nil {
		return nil, err
	}

	c, err := s.api.CreateComment(ctx, models.CommentInput{TaskID: task.ID, Content: content})
	if err != nil {
		return nil, err
	}

	s.recorder.Record(audit.ForTask(task, models.ActionCommented, fmt.Sprintf("Commented on task %q", task.Title)))
	return c, nil
}

// Update edits the text of a comment
func (s *service) Update(ctx context.Context, commentID, content string) (*models.Comment, error) {
	if strings.TrimSpace(commentID) == "" {
		return nil, ErrInvalidCommentID
	}
	content = strings.TrimSpace(content)
	if err := ValidateContent(content); err != nil {
		return nil, err
	}
	return s.api.UpdateComment(ctx, commentID, models.CommentUpdate{Content: content})
}

// Delete removes a comment
func (s *service) Delete(ctx context.Context, commentID string) error {
	if strings.TrimSpace(commentID) == "" {
		return ErrInvalidCommentID
	}
	return s.api.DeleteComment(ctx, commentID)
}

// ValidateContent checks trimmed comment text
func ValidateContent(content string) error {
	if content == "" {
		return ErrEmptyContent
	}
	if utf8.RuneCountInString(content) > maxContentLength {
		return ErrContentTooLong
	}
	return nil
}
