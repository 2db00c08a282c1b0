package client

import (
	"errors"
	"fmt"
	"net/http"
)

// Client errors
var (
	// ErrMissingID is returned before any I/O when an operation needs a task ID
	ErrMissingID = errors.New("task ID is required")

	// ErrNotDraft is returned when Create is called with an already persisted task
	ErrNotDraft = errors.New("task already has an ID; use update instead")

	// ErrDecode indicates the server answered with a body that is not an envelope
	ErrDecode = errors.New("failed to decode response")
)

// StatusError is returned for any non-2xx response
type StatusError struct {
	StatusCode int
	Message    string
}

func (e *StatusError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("server returned %d %s", e.StatusCode, http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("server returned %d: %s", e.StatusCode, e.Message)
}

// IsNotFound reports whether err is a 404 from the task API
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusNotFound
}

// IsBadRequest reports whether err is a 400 from the task API
func IsBadRequest(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == http.StatusBadRequest
}
