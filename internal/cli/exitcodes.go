package cli

import (
	"errors"
	"fmt"
)

// Exit codes for CLI commands.
// These codes follow Unix conventions and provide consistent error reporting
// across all CLI commands.
const (
	// ExitSuccess indicates the command completed successfully.
	ExitSuccess = 0

	// ExitError indicates a general error occurred.
	// Use for: network errors, server errors, unexpected failures,
	// or any error that doesn't fit the specific categories below.
	ExitError = 1

	// ExitUsage indicates incorrect command usage.
	// Use for: Missing required flags, invalid flag combinations,
	// or when the user needs to provide different arguments.
	ExitUsage = 2

	// ExitNotFound indicates a requested task was not found.
	ExitNotFound = 3

	// ExitDataErr indicates invalid or malformed data.
	// Use for: unreadable stdin, or a response that is not an envelope.
	ExitDataErr = 4

	// ExitValidation indicates a validation error.
	// Use for: Invalid priority values, invalid status, bad due dates,
	// or any input the server rejects with 400.
	ExitValidation = 5
)

// ExitCodeError carries the process exit code of a failed command
type ExitCodeError struct {
	Code int
	Err  error

	// Reported is set once the message has been printed by a formatter
	Reported bool
}

func (e *ExitCodeError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("exit status %d", e.Code)
	}
	return e.Err.Error()
}

func (e *ExitCodeError) Unwrap() error {
	return e.Err
}

// WithExitCode wraps err so that main exits with code
func WithExitCode(code int, err error) error {
	return &ExitCodeError{Code: code, Err: err}
}

// ExitCode returns the exit code for err
func ExitCode(err error) int {
	if err == nil {
		return ExitSuccess
	}
	var ece *ExitCodeError
	if errors.As(err, &ece) {
		return ece.Code
	}
	return ExitError
}

// IsReported reports whether err was already printed by a formatter
func IsReported(err error) bool {
	var ece *ExitCodeError
	return errors.As(err, &ece) && ece.Reported
}
