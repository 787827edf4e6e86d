package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	ErrCodeDuplicate    = "DUPLICATE"
	ErrCodeNotFound     = "NOT_FOUND"
	ErrCodeFileNotFound = "FILE_NOT_FOUND"
	ErrCodeParse        = "PARSE_ERROR"
	ErrCodeValidation   = "VALIDATION_ERROR"
	ErrCodeInternal     = "INTERNAL_ERROR"
)

// AppError represents an application error with a stable code
type AppError struct {
	Code    string // Error code (e.g., "DUPLICATE", "NOT_FOUND")
	Message string // Human-readable error message
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// HasCode reports whether err is, or wraps, an AppError with the given code.
func HasCode(err error, code string) bool {
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		return false
	}
	return appErr.Code == code
}

// NewDuplicateError creates a new DUPLICATE error for a value already present in the deck
func NewDuplicateError(field string, value string) *AppError {
	return &AppError{
		Code:    ErrCodeDuplicate,
		Message: fmt.Sprintf("%s already exists: %q", field, value),
	}
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
	}
}

// NewFileNotFoundError creates a new FILE_NOT_FOUND error
func NewFileNotFoundError(path string, err error) *AppError {
	return &AppError{
		Code:    ErrCodeFileNotFound,
		Message: fmt.Sprintf("file not found: %s", path),
		Err:     err,
	}
}

// NewParseError creates a new PARSE_ERROR for a malformed deck file line
func NewParseError(line int, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeParse,
		Message: fmt.Sprintf("line %d: %s", line, reason),
	}
}

// NewValidationError creates a new VALIDATION_ERROR
func NewValidationError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeValidation,
		Message: fmt.Sprintf("validation failed for %s: %s", field, reason),
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal error",
		Err:     err,
	}
}
