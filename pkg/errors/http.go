// Package errors holds transport-level error values shared by the delivery
// layers.
package errors

import "net/http"

// HTTPError is an error that knows which status code to answer with.
type HTTPError struct {
	StatusCode int
	Message    string
}

// NewHTTPError returns an HTTPError with the given status and message.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Message: message}
}

func (e *HTTPError) Error() string { return e.Message }

// Common HTTP errors.
var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, "internal server error")
	ErrBadRequest          = NewHTTPError(http.StatusBadRequest, "bad request")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, "too many requests")
)
