package apperr

import (
	"errors"
	"net/http"
)

// Error is the typed failure value every usecase returns. Handlers map
// StatusCode to the HTTP response; Message is always safe to show a client
// (store errors are wrapped with a generic message, never driver text).
type Error struct {
	Code       string
	Message    string
	StatusCode int
	// Err keeps the underlying cause for logging; excluded from responses.
	Err error
}

func (e *Error) Error() string { return e.Message }

func (e *Error) Unwrap() error { return e.Err }

func Validation(message string) *Error {
	return &Error{Code: "VALIDATION_ERROR", Message: message, StatusCode: http.StatusBadRequest}
}

func NotFound(message string) *Error {
	return &Error{Code: "NOT_FOUND", Message: message, StatusCode: http.StatusNotFound}
}

func Conflict(message string) *Error {
	return &Error{Code: "CONFLICT", Message: message, StatusCode: http.StatusConflict}
}

func Immutable(message string) *Error {
	return &Error{Code: "IMMUTABLE", Message: message, StatusCode: http.StatusBadRequest}
}

func Unauthorized(message string) *Error {
	return &Error{Code: "UNAUTHORIZED", Message: message, StatusCode: http.StatusUnauthorized}
}

func Forbidden(message string) *Error {
	return &Error{Code: "FORBIDDEN", Message: message, StatusCode: http.StatusForbidden}
}

// Store wraps a datastore failure. The cause is retained for logs only.
func Store(cause error) *Error {
	return &Error{Code: "STORE_ERROR", Message: "A storage error occurred.", StatusCode: http.StatusInternalServerError, Err: cause}
}

// Playback is the catch-all failure of the view-tracking workflow.
func Playback(cause error) *Error {
	return &Error{Code: "PLAYBACK_ERROR", Message: "Failed to start video playback.", StatusCode: http.StatusInternalServerError, Err: cause}
}

// WithCode overrides the machine-readable code, keeping everything else.
func (e *Error) WithCode(code string) *Error {
	c := *e
	c.Code = code
	return &c
}

// Status extracts the HTTP status for err, defaulting to 500 for anything
// that is not an *Error.
func Status(err error) int {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.StatusCode
	}
	return http.StatusInternalServerError
}

// CodeOf returns the machine-readable code, or "INTERNAL_ERROR".
func CodeOf(err error) string {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Code
	}
	return "INTERNAL_ERROR"
}
