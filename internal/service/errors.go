package service

import (
	"errors"
	"fmt"
)

// Common service errors.
var (
	// ErrInvalidRequest indicates that the caller supplied a record the
	// service refuses to act on, for example a nil apartment.
	// API layer should map this to HTTP 400 Bad Request.
	ErrInvalidRequest = errors.New("invalid request")
)

// ApartmentServiceError is a custom error type for apartment service errors.
type ApartmentServiceError struct {
	Operation string
	Message   string
	Err       error
}

// Error implements the error interface for ApartmentServiceError.
func (e *ApartmentServiceError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("apartment service %s failed: %s: %v", e.Operation, e.Message, e.Err)
	}
	return fmt.Sprintf("apartment service %s failed: %s", e.Operation, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *ApartmentServiceError) Unwrap() error {
	return e.Err
}

// NewApartmentServiceError creates a new ApartmentServiceError.
func NewApartmentServiceError(operation, message string, err error) *ApartmentServiceError {
	return &ApartmentServiceError{
		Operation: operation,
		Message:   message,
		Err:       err,
	}
}
