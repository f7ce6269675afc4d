package task

import "errors"

// Task-related errors
var (
	// Validation errors
	ErrEmptyTitle      = errors.New("task title cannot be empty")
	ErrTitleTooLong    = errors.New("task title cannot exceed 255 characters")
	ErrInvalidTaskID   = errors.New("invalid task ID")
	ErrInvalidBoardID  = errors.New("invalid board ID")
	ErrInvalidStatus   = errors.New("invalid status")
	ErrInvalidPriority = errors.New("invalid priority")
	ErrInvalidDueDate  = errors.New("invalid due date: must be YYYY-MM-DD")
	ErrEmptyTag        = errors.New("tags cannot be empty")
	ErrNoChanges       = errors.New("no fields to update")

	// Business logic errors
	ErrTaskNotFound    = errors.New("task not found")
	ErrAlreadyAssigned = errors.New("task is already assigned to that user")
	ErrAlreadyInStatus = errors.New("task is already in target column")
)

const maxTitleLength = 255
