package models

import "errors"

// Validation errors for task fields
var (
	// ErrInvalidStatus indicates a status outside pending/in-progress/completed
	ErrInvalidStatus = errors.New("invalid status")

	// ErrInvalidPriority indicates a priority outside low/medium/high
	ErrInvalidPriority = errors.New("invalid priority")

	// ErrInvalidDueDate indicates a due date that is not YYYY-MM-DD
	ErrInvalidDueDate = errors.New("invalid due date: must be YYYY-MM-DD")
)
