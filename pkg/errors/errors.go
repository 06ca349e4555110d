package errors

import (
	"errors"
	"fmt"
)

// ApplicationError represents a domain-specific error carrying the HTTP
// status it maps to at the presentation boundary.
type ApplicationError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
	Status  int    `json:"-"`
	cause   error
}

func (e *ApplicationError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause for errors.Is/As.
func (e *ApplicationError) Unwrap() error {
	return e.cause
}

// WithCause attaches the underlying error.
func (e *ApplicationError) WithCause(err error) *ApplicationError {
	e.cause = err
	return e
}

// Error constructors
func NewValidationError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "VALIDATION_ERROR",
		Message: message,
		Status:  400,
	}
}

func NewNotFoundError(resource string) *ApplicationError {
	return &ApplicationError{
		Code:    "NOT_FOUND",
		Message: fmt.Sprintf("%s not found", resource),
		Status:  404,
	}
}

func NewConflictError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "CONFLICT",
		Message: message,
		Status:  409,
	}
}

// NewUpstreamUnavailableError marks a document-store failure. It is distinct
// from an empty result so the presentation layer can offer a retry.
func NewUpstreamUnavailableError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "UPSTREAM_UNAVAILABLE",
		Message: message,
		Status:  503,
	}
}

func NewInternalError(message string) *ApplicationError {
	return &ApplicationError{
		Code:    "INTERNAL_ERROR",
		Message: message,
		Status:  500,
	}
}

// IsNotFound reports whether err is (or wraps) a NOT_FOUND application error.
func IsNotFound(err error) bool {
	return hasCode(err, "NOT_FOUND")
}

// IsUpstreamUnavailable reports whether err is (or wraps) a store failure.
func IsUpstreamUnavailable(err error) bool {
	return hasCode(err, "UPSTREAM_UNAVAILABLE")
}

func hasCode(err error, code string) bool {
	var appErr *ApplicationError
	return errors.As(err, &appErr) && appErr.Code == code
}
