// Package domain defines the core business entities and errors.
package domain

import (
	"errors"
	"fmt"
)

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is missing or malformed.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidWeather is returned when a weather key is outside the
	// supported enumeration. Material estimates are never computed with a
	// guessed default.
	ErrInvalidWeather = errors.New("invalid weather")

	// ErrInvalidOrientation is returned when a partition orientation is not
	// vertical or horizontal.
	ErrInvalidOrientation = errors.New("invalid partition orientation")

	// ErrNegativeDimension is returned when a stored record carries a
	// negative length, width or height.
	ErrNegativeDimension = errors.New("dimension cannot be negative")

	// ErrDuplicateRoomID is returned when an apartment already holds a room
	// with the same ID.
	ErrDuplicateRoomID = errors.New("duplicate room ID")
)

// ValidationError describes a single invalid field. It wraps one of the
// sentinel errors above so callers can match it with errors.Is.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s %s", e.Field, e.Message)
}

// Unwrap returns the wrapped sentinel error.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
func NewValidationError(field, message string, err error) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
		Err:     err,
	}
}
