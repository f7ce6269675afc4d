package models

import "errors"

// Enumeration errors shared by the client and the reference server
var (
	// ErrInvalidStatus indicates a status outside todo, in-progress, done
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority indicates a priority outside low, medium, high
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidAction indicates an activity action outside the enumerated set
	ErrInvalidAction = errors.New("invalid activity action")
)
