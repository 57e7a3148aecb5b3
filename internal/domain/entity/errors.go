package entity

import (
	"errors"
	"fmt"
)

// Sentinel errors for domain layer operations.
var (
	// ErrNotFound indicates that a requested entity was not found
	// by an operation that requires it to exist.
	ErrNotFound = errors.New("entity not found")

	// ErrPersistence indicates that the backing store rejected or failed
	// a read/write for reasons outside the caller's input.
	ErrPersistence = errors.New("persistence failure")

	// ErrConflict indicates that a uniqueness constraint was violated,
	// e.g. a duplicate user email on create.
	ErrConflict = errors.New("conflicting entity already exists")
)

// ValidationError represents a validation error with detailed field information.
// It implements the error interface and provides context about which field failed validation.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns a formatted error message for the validation error.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}
