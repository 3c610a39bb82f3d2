// Package errs defines the error shape surfaced to API clients.
//
// Exactly two kinds of error reach a client: a 400 for missing/invalid
// input and a 404 for an unknown id. Both are a status plus a message,
// serialized as {"message": ...}.
package errs

import (
	"fmt"
	"net/http"
)

// HTTPError carries the status code and client-facing message for a
// failed request.
type HTTPError struct {
	Status  int    `json:"-"`
	Message string `json:"message"`
}

// Error makes *HTTPError satisfy the error interface.
func (e *HTTPError) Error() string {
	return e.Message
}

// BadRequest creates a 400 validation error.
func BadRequest(format string, args ...any) *HTTPError {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: fmt.Sprintf(format, args...),
	}
}

// NotFound creates a 404 unknown-id error.
func NotFound(format string, args ...any) *HTTPError {
	return &HTTPError{
		Status:  http.StatusNotFound,
		Message: fmt.Sprintf(format, args...),
	}
}
