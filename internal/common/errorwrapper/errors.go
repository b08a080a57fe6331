package errorwrapper

import (
	"errors"
	"fmt"
	"strings"
)

// Common error types used across the application
var (
	// ErrInvalidInput indicates invalid user input
	ErrInvalidInput = errors.New("invalid input")
	// ErrInvalidConfiguration indicates configuration issues
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrEmptyFileSet is returned when a file set with no files is rendered to a form
	ErrEmptyFileSet = errors.New("file set is empty")
	// ErrUnsupportedInput indicates a value that cannot be turned into a message
	ErrUnsupportedInput = errors.New("unsupported message input")
)

// WrapError wraps an error with additional context information
func WrapError(err error, message string) error {
	if err == nil {
		return fmt.Errorf("%s: <nil>", message)
	}
	return fmt.Errorf("%s: %w", message, err)
}

// NewError creates a new error with a formatted message
func NewError(format string, args ...interface{}) error {
	return fmt.Errorf(format, args...)
}

// ValidationError represents validation errors with field-specific information
type ValidationError struct {
	Field   string
	Value   any
	Message string
	// Violations holds one message per failed rule when several rules were checked at once.
	Violations []string
}

func (e *ValidationError) Error() string {
	if len(e.Violations) > 0 {
		return fmt.Sprintf("validation error: field '%s': %s: %s", e.Field, e.Message, strings.Join(e.Violations, "; "))
	}
	return fmt.Sprintf("validation error: field '%s' with value '%v': %s", e.Field, e.Value, e.Message)
}

// Unwrap lets errors.Is match ErrInvalidInput for every validation failure.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewValidationError creates a new validation error
func NewValidationError(field string, value any, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// NewMultiValidationError creates a validation error carrying several rule violations.
func NewMultiValidationError(field, message string, violations []string) *ValidationError {
	return &ValidationError{
		Field:      field,
		Message:    message,
		Violations: violations,
	}
}
