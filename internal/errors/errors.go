// Package errors provides input and lookup error types for the MCP tool layer.
package errors

import (
	"errors"
	"fmt"
)

// NotFoundError indicates a lookup by name matched nothing.
type NotFoundError struct {
	EntityType string // "workspace", "page", "field"
	Identifier string // name or id that was searched for
}

func (e *NotFoundError) Error() string {
	if e.EntityType != "" {
		return fmt.Sprintf("%s not found: %s", e.EntityType, e.Identifier)
	}
	return fmt.Sprintf("not found: %s", e.Identifier)
}

// NewNotFoundError creates a NotFoundError.
func NewNotFoundError(entityType, identifier string) *NotFoundError {
	return &NotFoundError{
		EntityType: entityType,
		Identifier: identifier,
	}
}

// ValidationError indicates invalid input parameters.
type ValidationError struct {
	Field   string // field name that failed validation
	Value   string // the invalid value (may be empty for sensitive data)
	Message string // human-readable error message
}

func (e *ValidationError) Error() string {
	if e.Field != "" && e.Value != "" {
		return fmt.Sprintf("validation failed for %s=%q: %s", e.Field, e.Value, e.Message)
	}
	if e.Field != "" {
		return fmt.Sprintf("validation failed for %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation failed: %s", e.Message)
}

// NewValidationError creates a ValidationError.
func NewValidationError(field, value, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Value:   value,
		Message: message,
	}
}

// IsNotFound returns true if err is or wraps a NotFoundError.
func IsNotFound(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsValidation returns true if err is or wraps a ValidationError.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}
