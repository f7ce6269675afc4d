package account

import "errors"

// Account-related errors
var (
	// Password errors, checked in this order before any request
	ErrPasswordMismatch     = errors.New("new passwords do not match")
	ErrPasswordTooShort     = errors.New("password must be at least 6 characters long")
	ErrEmptyCurrentPassword = errors.New("current password is required")

	// Profile errors
	ErrEmptyUsername    = errors.New("username cannot be empty")
	ErrUsernameTooLong  = errors.New("username cannot exceed 50 characters")
	ErrInvalidEmail     = errors.New("invalid email address")
	ErrEmptyCredentials = errors.New("email and password are required")
)

const (
	// MinPasswordLength is the shortest password accepted
	MinPasswordLength = 6
	maxUsernameLength = 50
)
