package board

import "errors"

// Board-related errors
var (
	// Validation errors
	ErrEmptyName          = errors.New("board name cannot be empty")
	ErrNameTooLong        = errors.New("board name cannot exceed 100 characters")
	ErrDescriptionTooLong = errors.New("board description cannot exceed 500 characters")
	ErrInvalidBoardID     = errors.New("invalid board ID")
	ErrNotFound           = errors.New("board not found")
	ErrDuplicateMember    = errors.New("member listed more than once")
)

const (
	maxNameLength        = 100
	maxDescriptionLength = 500
)
