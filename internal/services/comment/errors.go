package comment

import "errors"

// Comment-related errors
var (
	ErrEmptyContent     = errors.New("comment cannot be empty")
	ErrContentTooLong   = errors.New("comment cannot exceed 1000 characters")
	ErrInvalidCommentID = errors.New("invalid comment ID")
	ErrInvalidTaskID    = errors.New("invalid task ID")
)

const maxContentLength = 1000
