package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
)

// ErrorCode represents a structured error code
type ErrorCode string

const (
	// Configuration errors
	ErrCodeConfigInvalid  ErrorCode = "CONFIG_INVALID"
	ErrCodeConfigRequired ErrorCode = "CONFIG_REQUIRED"

	// Request errors
	ErrCodeBadRequest   ErrorCode = "BAD_REQUEST"
	ErrCodeMissingField ErrorCode = "MISSING_FIELD"

	// Resource errors
	ErrCodeNotFound ErrorCode = "NOT_FOUND"

	// Generative model errors
	ErrCodeUpstream ErrorCode = "UPSTREAM"

	// Storage errors
	ErrCodePersistence ErrorCode = "PERSISTENCE"

	// Internal errors
	ErrCodeInternal ErrorCode = "INTERNAL"
)

// AppError represents a structured application error
type AppError struct {
	Code     ErrorCode              `json:"code"`
	Message  string                 `json:"message"`
	Details  map[string]interface{} `json:"details,omitempty"`
	Cause    error                  `json:"-"`
	HTTPCode int                    `json:"-"`
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Code, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying cause
func (e *AppError) Unwrap() error {
	return e.Cause
}

// WithDetail adds a detail to the error
func (e *AppError) WithDetail(key string, value interface{}) *AppError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// GetHTTPCode returns the appropriate HTTP status code
func (e *AppError) GetHTTPCode() int {
	if e.HTTPCode != 0 {
		return e.HTTPCode
	}
	return getDefaultHTTPCode(e.Code)
}

// Public reports whether the message is safe to show to API callers.
// Upstream, persistence and internal failures are logged, not echoed.
func (e *AppError) Public() bool {
	switch e.Code {
	case ErrCodeBadRequest, ErrCodeMissingField, ErrCodeNotFound:
		return true
	}
	return false
}

// New creates a new AppError
func New(code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

// Wrap wraps an existing error with an AppError
func Wrap(cause error, code ErrorCode, message string) *AppError {
	return &AppError{
		Code:     code,
		Message:  message,
		Cause:    cause,
		HTTPCode: getDefaultHTTPCode(code),
	}
}

func getDefaultHTTPCode(code ErrorCode) int {
	switch code {
	case ErrCodeNotFound:
		return http.StatusNotFound
	case ErrCodeBadRequest, ErrCodeMissingField:
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// Common error constructors

// BadRequest creates a request validation error
func BadRequest(message string) *AppError {
	return New(ErrCodeBadRequest, message)
}

// MissingFieldError creates a missing field error. The message is what the caller sees.
func MissingFieldError(message string, fields ...string) *AppError {
	return New(ErrCodeMissingField, message).WithDetail("fields", fields)
}

// NotFound creates a not found error, e.g. NotFound("Video", id) -> "Video not found"
func NotFound(resource string, id interface{}) *AppError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", resource)).
		WithDetail("resource", resource).
		WithDetail("id", id)
}

// UpstreamError creates a generative model error
func UpstreamError(service string, cause error) *AppError {
	return Wrap(cause, ErrCodeUpstream, fmt.Sprintf("upstream service '%s' error", service)).
		WithDetail("service", service)
}

// PersistenceError creates a storage error
func PersistenceError(operation string, cause error) *AppError {
	return Wrap(cause, ErrCodePersistence, fmt.Sprintf("storage %s failed", operation)).
		WithDetail("operation", operation)
}

// ConfigError creates a configuration error
func ConfigError(key string, reason string) *AppError {
	return New(ErrCodeConfigInvalid, fmt.Sprintf("configuration error for '%s': %s", key, reason)).
		WithDetail("key", key).
		WithDetail("reason", reason)
}

// As extracts an *AppError anywhere in the chain
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}

// Is checks if an error is of a specific type
func Is(err error, code ErrorCode) bool {
	if appErr, ok := As(err); ok {
		return appErr.Code == code
	}
	return false
}

// GetCode extracts the error code from an error
func GetCode(err error) ErrorCode {
	if appErr, ok := As(err); ok {
		return appErr.Code
	}
	return ErrCodeInternal
}

// GetHTTPCode extracts the HTTP status code from an error
func GetHTTPCode(err error) int {
	if appErr, ok := As(err); ok {
		return appErr.GetHTTPCode()
	}
	return http.StatusInternalServerError
}
