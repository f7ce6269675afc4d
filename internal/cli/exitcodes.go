package cli

import "errors"

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, rejected requests, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: missing required flags, invalid flag combinations,
	// or commands that need a login first.
	ExitUsage = 2

	// ExitNotFound indicates a requested resource was not found.
	// Use for: board, task, comment or user ids that don't exist.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable stdin or a response that cannot be decoded.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: empty names, unknown statuses or priorities, bad due dates,
	// or any input rejected before (or by) the backend.
	ExitValidation = 5
)

// ExitErr carries the process exit code for a failed command.
// The message has already been shown to the user.
type ExitErr struct {
	Code int
	Err  error
}

func (e *ExitErr) Error() string { return e.Err.Error() }

func (e *ExitErr) Unwrap() error { return e.Err }

// ExitCode returns the exit code for an error returned by a command.
// Errors that never went through the formatter come from cobra's own
// argument parsing, so they count as usage errors.
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var exitErr *ExitErr
	if errors.As(err, &exitErr) {
		return exitErr.Code
	}
	return ExitUsage
}
