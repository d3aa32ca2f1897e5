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

	// Rule language errors
	ErrParse                 ErrorCode = "PARSE"
	ErrUnknownRule           ErrorCode = "UNKNOWN_RULE"
	ErrArity                 ErrorCode = "ARITY"
	ErrCapabilityUnavailable ErrorCode = "CAPABILITY_UNAVAILABLE"
	ErrTransformation        ErrorCode = "TRANSFORMATION"

	// Registry errors
	ErrDuplicateRule  ErrorCode = "DUPLICATE_RULE"
	ErrRegistryFrozen ErrorCode = "REGISTRY_FROZEN"

	// Configuration errors
	ErrConfigLoad  ErrorCode = "CONFIG_LOAD"
	ErrConfigParse ErrorCode = "CONFIG_PARSE"

	// I/O errors
	ErrIORead    ErrorCode = "IO_READ"
	ErrIOWrite   ErrorCode = "IO_WRITE"
	ErrKeyAccess ErrorCode = "KEY_ACCESS"
)

// RuleflowError represents a structured error with code and details
type RuleflowError struct {
	Code    ErrorCode
	Message string
	Details map[string]interface{}
	Wrapped error
}

// Error implements the error interface
func (e *RuleflowError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("[%s] %s: %v", e.Code, e.Message, e.Wrapped)
	}
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Unwrap implements the errors.Unwrap interface
func (e *RuleflowError) Unwrap() error {
	return e.Wrapped
}

// Is implements errors.Is interface
func (e *RuleflowError) Is(target error) bool {
	var targetErr *RuleflowError
	if errors.As(target, &targetErr) {
		return e.Code == targetErr.Code
	}
	return false
}

// New creates a new RuleflowError with the given code and message
func New(code ErrorCode, message string) *RuleflowError {
	return &RuleflowError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
	}
}

// Newf creates a new RuleflowError with a formatted message
func Newf(code ErrorCode, format string, args ...interface{}) *RuleflowError {
	return &RuleflowError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
	}
}

// Wrap wraps an existing error with a RuleflowError
func Wrap(err error, code ErrorCode, message string) *RuleflowError {
	if err == nil {
		return nil
	}
	return &RuleflowError{
		Code:    code,
		Message: message,
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// Wrapf wraps an existing error with a formatted message
func Wrapf(err error, code ErrorCode, format string, args ...interface{}) *RuleflowError {
	if err == nil {
		return nil
	}
	return &RuleflowError{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
		Details: make(map[string]interface{}),
		Wrapped: err,
	}
}

// WithDetail adds a detail to the error
func (e *RuleflowError) WithDetail(key string, value interface{}) *RuleflowError {
	if e.Details == nil {
		e.Details = make(map[string]interface{})
	}
	e.Details[key] = value
	return e
}

// WithDetails adds multiple details to the error
func (e *RuleflowError) WithDetails(details map[string]interface{}) *RuleflowError {
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
	var rfErr *RuleflowError
	if errors.As(err, &rfErr) {
		return rfErr.Code == code
	}
	return false
}

// GetErrorCode returns the error code from an error, or ErrUnknown if not a RuleflowError
func GetErrorCode(err error) ErrorCode {
	var rfErr *RuleflowError
	if errors.As(err, &rfErr) {
		return rfErr.Code
	}
	return ErrUnknown
}

// GetErrorDetails returns the details from an error, or nil if not a RuleflowError
func GetErrorDetails(err error) map[string]interface{} {
	var rfErr *RuleflowError
	if errors.As(err, &rfErr) {
		return rfErr.Details
	}
	return nil
}
