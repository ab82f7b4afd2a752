package errors

import (
	"fmt"
	"net/http"
)

// Stable, machine-readable error kinds exposed to API clients.
const (
	KindValidation        = "VALIDATION_ERROR"
	KindNotFound          = "NOT_FOUND"
	KindConflict          = "CONFLICT"
	KindInvalidTransition = "INVALID_TRANSITION"
	KindAlreadyDispensed  = "ALREADY_DISPENSED"
	KindInsufficientStock = "INSUFFICIENT_STOCK"
	KindUnauthorized      = "UNAUTHORIZED"
	KindRateLimited       = "RATE_LIMITED"
	KindInternal          = "INTERNAL_ERROR"
	KindUnavailable       = "SERVICE_UNAVAILABLE"
)

// HTTPError is an error that already knows how it should be rendered.
type HTTPError struct {
	StatusCode int
	Kind       string
	Message    string
	Details    any
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

// NewHTTPError builds an HTTPError with no details.
func NewHTTPError(statusCode int, kind, message string) *HTTPError {
	return &HTTPError{StatusCode: statusCode, Kind: kind, Message: message}
}

// WithDetails returns a copy of e carrying details.
func (e *HTTPError) WithDetails(details any) *HTTPError {
	cp := *e
	cp.Details = details
	return &cp
}

var (
	ErrInternalServerError = NewHTTPError(http.StatusInternalServerError, KindInternal, "internal server error")
	ErrUnauthorized        = NewHTTPError(http.StatusUnauthorized, KindUnauthorized, "unauthorized")
	ErrTooManyRequests     = NewHTTPError(http.StatusTooManyRequests, KindRateLimited, "too many requests")
	ErrServiceUnavailable  = NewHTTPError(http.StatusServiceUnavailable, KindUnavailable, "service unavailable")
)

// NewValidationError is a 400 with the offending fields as details.
func NewValidationError(message string, fields []string) *HTTPError {
	return NewHTTPError(http.StatusBadRequest, KindValidation, message).WithDetails(fields)
}
