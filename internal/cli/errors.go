package cli

import (
	"errors"
	"fmt"

	"github.com/thenoetrevino/taskman/internal/client"
	"github.com/thenoetrevino/taskman/internal/models"
)

// ErrRejected means the server answered 2xx with success=false
var ErrRejected = errors.New("request rejected by server")

// Result unwraps an API call into its payload. A nil or unsuccessful
// envelope is an error.
func Result[T any](resp *models.APIResponse[T], err error) (T, error) {
	var zero T
	if err != nil {
		return zero, err
	}
	if resp == nil || !resp.Success {
		return zero, fmt.Errorf("%w: %s", ErrRejected, resp.Failure())
	}
	return resp.Data, nil
}

// APIFailure reports a failed API call with the matching exit code
func (f *OutputFormatter) APIFailure(err error) error {
	switch {
	case client.IsNotFound(err):
		return f.Fail(ExitNotFound, "TASK_NOT_FOUND", err,
			"Use 'taskman task list' to see available tasks")
	case client.IsBadRequest(err):
		return f.Fail(ExitValidation, "VALIDATION_ERROR", err, "")
	case errors.Is(err, client.ErrMissingID):
		return f.Fail(ExitUsage, "MISSING_ID", err, "Pass the task ID with --id")
	case errors.Is(err, client.ErrDecode):
		return f.Fail(ExitDataErr, "DECODE_ERROR", err,
			"Check that --api points at a task API")
	case isServerError(err):
		return f.Fail(ExitError, "SERVER_ERROR", err, "Check the API server logs")
	case errors.Is(err, ErrRejected):
		return f.Fail(ExitError, "API_ERROR", err, "")
	default:
		return f.Fail(ExitError, "CONNECTION_ERROR", err,
			"Is the API running? Start one with 'taskman serve'")
	}
}

func isServerError(err error) bool {
	var se *client.StatusError
	return errors.As(err, &se) && se.StatusCode >= 500
}
