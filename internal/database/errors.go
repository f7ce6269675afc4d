package database

import "errors"

var (
	// ErrNotFound is returned when a row with the requested id does not exist
	ErrNotFound = errors.New("record not found")

	// ErrConflict is returned when a unique column (username, email) is already taken
	ErrConflict = errors.New("record already exists")
)
