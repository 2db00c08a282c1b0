package models

// APIResponse is the envelope wrapping every task API response.
// When Success is false the caller must not apply Data.
type APIResponse[T any] struct {
	Success bool   `json:"success"`
	Data    T      `json:"data"`
	Message string `json:"message,omitempty"`
	Error   string `json:"error,omitempty"`
}

// Failure returns the most specific human readable failure text
func (r *APIResponse[T]) Failure() string {
	if r == nil {
		return "no response"
	}
	if r.Error != "" {
		return r.Error
	}
	if r.Message != "" {
		return r.Message
	}
	return "request failed"
}

// OK builds a successful envelope around data
func OK[T any](data T) APIResponse[T] {
	return APIResponse[T]{Success: true, Data: data}
}

// Fail builds a failed envelope carrying an error message
func Fail(message string) APIResponse[any] {
	return APIResponse[any]{Success: false, Error: message}
}
