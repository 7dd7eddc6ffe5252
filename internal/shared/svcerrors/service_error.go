package svcerrors

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	categorySimulated        = "simulated"
	categoryNotFound         = "not_found"
	categoryMethodNotAllowed = "method_not_allowed"
	categoryInternal         = "internal"
)

const (
	errorCodeInternalPanic     = "SYS_9000"
	errorCodeInternalUndefined = "SYS_9001"
)

// NewSimulatedError creates a ServiceError that stands in for a failure without one having happened.
// It renders as a 500 but is not treated as an internal fault.
func NewSimulatedError(code, message string) *ServiceError {
	return &ServiceError{
		Category:       categorySimulated,
		Code:           code,
		Message:        message,
		HttpStatusCode: http.StatusInternalServerError,
	}
}

// NewNotFoundError creates a new ServiceError with category not_found.
func NewNotFoundError(code, message string) *ServiceError {
	return &ServiceError{
		Category:       categoryNotFound,
		Code:           code,
		Message:        message,
		HttpStatusCode: http.StatusNotFound,
	}
}

// NewMethodNotAllowedError creates a new ServiceError with category method_not_allowed.
func NewMethodNotAllowedError(code, message string) *ServiceError {
	return &ServiceError{
		Category:       categoryMethodNotAllowed,
		Code:           code,
		Message:        message,
		HttpStatusCode: http.StatusMethodNotAllowed,
	}
}

// NewInternalError creates a new ServiceError with category internal.
func NewInternalError(code string, cause error) *ServiceError {
	return &ServiceError{
		Category:       categoryInternal,
		Code:           code,
		Message:        "internal server error",
		Cause:          cause,
		HttpStatusCode: http.StatusInternalServerError,
	}
}

// NewInternalErrorUndefined creates a new ServiceError with category internal and code SYS_9001.
func NewInternalErrorUndefined(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalUndefined, cause)
}

func NewInternalErrorPanic(cause error) *ServiceError {
	return NewInternalError(errorCodeInternalPanic, cause)
}

// ServiceError represents a service-level error with category, code, message, and cause.
// It implements the error interface and supports error wrapping.
type ServiceError struct {
	Category       string // simulated, not_found, method_not_allowed or internal
	Code           string // service-owned stable code (e.g. APP_5000)
	Message        string // client-safe, human-readable
	Cause          error  // wrapped underlying error
	HttpStatusCode int
}

// Error implements the error interface.
func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error to support errors.Is and errors.As.
func (e *ServiceError) Unwrap() error {
	return e.Cause
}

// As extracts a ServiceError from the error chain.
// It returns (*ServiceError, true) if err wraps a ServiceError, otherwise (nil, false).
func As(err error) (*ServiceError, bool) {
	var svcErr *ServiceError
	if errors.As(err, &svcErr) {
		return svcErr, true
	}
	return nil, false
}

func (e *ServiceError) IsInternalError() bool {
	return e.Category == categoryInternal
}
