package errors

import (
	"errors"
	"fmt"
)

// ErrorCode represents a unique error code for stable testing
type ErrorCode string

// Error codes for different error categories
const (
	// General errors
	ErrUnknown      ErrorCode = "UNKNOWN"
	ErrInternal     ErrorCode = "INTERNAL"
	ErrInvalidInput ErrorCode = "INVALID_INPUT"

	// Configuration errors
	ErrConfigLoad    ErrorCode = "CONFIG_LOAD"
	ErrConfigInvalid ErrorCode = "CONFIG_INVALID"

	// Store errors
	ErrStorageInit    ErrorCode = "STORAGE_INIT"
	ErrStorageIO      ErrorCode = "STORAGE_IO"
	ErrInvalidKey     ErrorCode = "INVALID_KEY"
	ErrCorruptEntry   ErrorCode = "CORRUPT_ENTRY"
	ErrBackendUnknown ErrorCode = "BACKEND_UNKNOWN"
)

// CubbyError represents a structured error with code and details
type CubbyError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *CubbyError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *CubbyError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *CubbyError) Is(target error) bool {
	var targetErr *CubbyError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new CubbyError with the given code and message
func New(code ErrorCode, message string) *CubbyError {
	return &CubbyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new CubbyError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *CubbyError {
	return &CubbyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a CubbyError
func Wrap(err error, code ErrorCode, message string) *CubbyError {
	if err == nil {
		return nil
	}
	return &CubbyError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *CubbyError {
	if err == nil {
		return nil
	}
	return &CubbyError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *CubbyError) WithDetail(key string, value interface{}) *CubbyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *CubbyError) WithDetails(details map[string]interface{}) *CubbyError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	for k, v := range details {
		e.Details[k] = v
	}
	return e
}

// IsErrorCode checks if an error has a specific error code
func IsErrorCode(err error, code ErrorCode) bool {
	var cubbyErr *CubbyError
	if errors.As(err, &cubbyErr) {
		return cubbyErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a CubbyError
func GetErrorCode(err error) ErrorCode {
	var cubbyErr *CubbyError
	if errors.As(err, &cubbyErr) {
		return cubbyErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a CubbyError
func GetErrorDetails(err error) map[string]interface{} {
	var cubbyErr *CubbyError
	if errors.As(err, &cubbyErr) {
		return cubbyErr.Details
	}
	return nil
}
