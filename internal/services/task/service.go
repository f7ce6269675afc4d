// Package task implements task business operations on top of the gateway.
// Successful writes are reported to the audit recorder.
package task

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/thenoetrevino/taskdeck/internal/audit"
	"github.com/thenoetrevino/taskdeck/internal/gateway"
	"github.com/thenoetrevino/taskdeck/internal/models"
)

// Service defines all task-related business operations
type Service interface {
	// Read operations
	ListByBoard(ctx context.Context, boardID string) ([]models.Task, error)
	Find(ctx context.Context, boardID, taskID string) (*models.Task, error)

	// Write operations
	Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error)
	Update(ctx context.Context, req UpdateTaskRequest) (*models.Task, error)
	Delete(ctx context.Context, task *models.Task) error

	// Kanban transitions
	ChangeStatus(ctx context.Context, task *models.Task, status models.Status) (*models.Task, error)

	// Assignment; a nil assignee unassigns
	Assign(ctx context.Context, task *models.Task, assignee *models.User) (*models.Task, error)
}

// CreateTaskRequest encapsulates all data needed to create a task
type CreateTaskRequest struct {
	BoardID     string
	Title       string
	Description string
	Status      models.Status   // Optional: empty means todo
	Priority    models.Priority // Optional: empty means medium
	DueDate     string
	AssignedTo  string
	Tags        []string
}

// UpdateTaskRequest encapsulates all data needed to update a task.
// Fields with pointers are optional - nil means don't update.
type UpdateTaskRequest struct {
	Task        *models.Task
	Title       *string
	Description *string
	Status      *models.Status
	Priority    *models.Priority
	DueDate     *string
	Tags        *[]string
}

// service implements Service interface
type service struct {
	api      gateway.TaskAPI
	recorder audit.Recorder
}

// NewService creates a new task service. recorder may be nil.
func NewService(api gateway.TaskAPI, recorder audit.Recorder) Service {
	if recorder == nil {
		recorder = audit.Discard
	}
	return &service{
		api:      api,
		recorder: recorder,
	}
}

// ListByBoard returns the tasks of a board
func (s *service) ListByBoard(ctx context.Context, boardID string) ([]models.Task, error) {
	if strings.TrimSpace(boardID) == "" {
		return nil, ErrInvalidBoardID
	}
	return s.api.ListTasks(ctx, boardID)
}

// Find looks a task up among its board's tasks
func (s *service) Find(ctx context.Context, boardID, taskID string) (*models.Task, error) {
	if strings.TrimSpace(taskID) == "" {
		return nil, ErrInvalidTaskID
	}

	tasks, err := s.ListByBoard(ctx, boardID)
	if err != nil {
		return nil, err
	}

	i := slices.IndexFunc(tasks, func(t models.Task) bool { return t.ID == taskID })
	if i < 0 {
		return nil, fmt.Errorf("%w: %s", ErrTaskNotFound, taskID)
	}
	return &tasks[i], nil
}

// Create handles task creation with validation and defaults
func (s *service) Create(ctx context.Context, req CreateTaskRequest) (*models.Task, error) {
	if err := s.validateCreateTask(&req); err != nil {
		return nil, err
	}

	task, err := s.api.CreateTask(ctx, models.TaskInput{
		BoardID:     req.BoardID,
		Title:       req.Title,
		Description: req.Description,
		Status:      req.Status,
		Priority:    req.Priority,
		DueDate:     req.DueDate,
		AssignedTo:  req.AssignedTo,
		Tags:        req.Tags,
	})
	if err != nil {
		return nil, err
	}

	s.recorder.Record(audit.ForTask(task, models.ActionCreated, fmt.Sprintf("Created task %q", task.Title)))
	return task, nil
}

// Update validates the set fields and sends one partial update
func (s *service) Update(ctx context.Context, req UpdateTaskRequest) (*models.Task, error) {
	if req.Task == nil || strings.TrimSpace(req.Task.ID) == "" {
		return nil, ErrInvalidTaskID
	}

	update, err := buildUpdate(req)
	if err != nil {
		return nil, err
	}

	task, err := s.api.UpdateTask(ctx, req.Task.ID, update)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(audit.ForTask(task, models.ActionUpdated, fmt.Sprintf("Updated task %q", task.Title)))
	if update.Status != nil && *update.Status != req.Task.Status {
		s.recorder.Record(audit.StatusChanged(task, *update.Status))
	}
	return task, nil
}

// ChangeStatus moves a task to another column with a single status-only update
func (s *service) ChangeStatus(ctx context.Context, task *models.Task, status models.Status) (*models.Task, error) {
	if task == nil || strings.TrimSpace(task.ID) == "" {
		return nil, ErrInvalidTaskID
	}
	if !status.Valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidStatus, status)
	}
	if task.Status == status {
		return nil, ErrAlreadyInStatus
	}

	updated, err := s.api.UpdateTask(ctx, task.ID, models.TaskUpdate{Status: &status})
	if err != nil {
		return nil, err
	}

	s.recorder.Record(audit.StatusChanged(task, status))
	return updated, nil
}

// Delete removes a task. The backend deletes its comments.
func (s *service) Delete(ctx context.Context, task *models.Task) error {
	if task == nil || strings.TrimSpace(task.ID) == "" {
		return ErrInvalidTaskID
	}

	if err := s.api.DeleteTask(ctx, task.ID); err != nil {
		return err
	}

	s.recorder.Record(audit.ForTask(task, models.ActionDeleted, fmt.Sprintf("Deleted task %q", task.Title)))
	return nil
}

// Assign sets or clears the assignee. Assigning the current assignee again,
// or unassigning an unassigned task, is rejected without a request.
func (s *service) Assign(ctx context.Context, task *models.Task, assignee *models.User) (*models.Task, error) {
	if task == nil || strings.TrimSpace(task.ID) == "" {
		return nil, ErrInvalidTaskID
	}

	userID, username := "", ""
	if assignee != nil {
		userID, username = assignee.ID, assignee.Username
	}
	if userID == task.AssignedTo {
		return nil, ErrAlreadyAssigned
	}

	updated, err := s.api.AssignTask(ctx, task.ID, userID)
	if err != nil {
		return nil, err
	}

	s.recorder.Record(audit.Assigned(task, username))
	return updated, nil
}

// ============================================================================
// VALIDATION
// ============================================================================

func (s *service) validateCreateTask(req *CreateTaskRequest) error {
	if strings.TrimSpace(req.BoardID) == "" {
		return ErrInvalidBoardID
	}

	req.Title = strings.TrimSpace(req.Title)
	if err := ValidateTitle(req.Title); err != nil {
		return err
	}

	if req.Status == "" {
		req.Status = models.StatusTodo
	}
	if !req.Status.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidStatus, req.Status)
	}

	if req.Priority == "" {
		req.Priority = models.DefaultPriority
	}
	if !req.Priority.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidPriority, req.Priority)
	}

	if err := ValidateDueDate(req.DueDate); err != nil {
		return err
	}
	return validateTags(req.Tags)
}

func buildUpdate(req UpdateTaskRequest) (models.TaskUpdate, error) {
	var update models.TaskUpdate
	changed := false

	if req.Title != nil {
		title := strings.TrimSpace(*req.Title)
		if err := ValidateTitle(title); err != nil {
			return update, err
		}
		update.Title = &title
		changed = true
	}
	if req.Description != nil {
		update.Description = req.Description
		changed = true
	}
	if req.Status != nil {
		if !req.Status.Valid() {
			return update, fmt.Errorf("%w: %q", ErrInvalidStatus, *req.Status)
		}
		update.Status = req.Status
		changed = true
	}
	if req.Priority != nil {
		if !req.Priority.Valid() {
			return update, fmt.Errorf("%w: %q", ErrInvalidPriority, *req.Priority)
		}
		update.Priority = req.Priority
		changed = true
	}
	if req.DueDate != nil {
		if err := ValidateDueDate(*req.DueDate); err != nil {
			return update, err
		}
		update.DueDate = req.DueDate
		changed = true
	}
	if req.Tags != nil {
		if err := validateTags(*req.Tags); err != nil {
			return update, err
		}
		update.Tags = req.Tags
		changed = true
	}

	if !changed {
		return update, ErrNoChanges
	}
	return update, nil
}

// ValidateTitle checks a trimmed task title
func ValidateTitle(title string) error {
	if title == "" {
		return ErrEmptyTitle
	}
	if utf8.RuneCountInString(title) > maxTitleLength {
		return ErrTitleTooLong
	}
	return nil
}

// ValidateDueDate accepts an empty string or a YYYY-MM-DD date
func ValidateDueDate(date string) error {
	if date == "" {
		return nil
	}
	if _, err := time.Parse(models.DueDateLayout, date); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidDueDate, date)
	}
	return nil
}

// ParseTags splits a comma-separated tag list, dropping blanks
func ParseTags(raw string) []string {
	var tags []string
	for _, tag := range strings.Split(raw, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			tags = append(tags, tag)
		}
	}
	return tags
}

func validateTags(tags []string) error {
	for _, tag := range tags {
		if strings.TrimSpace(tag) == "" {
			return ErrEmptyTag
		}
	}
	return nil
}
