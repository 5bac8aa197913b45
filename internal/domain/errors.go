package domain

import (
	"errors"
	"fmt"
)

// Sentinel errors for the three outcome classes repository callers
// distinguish: a row that is not there, a mutation the store reports as
// having affected zero rows, and caller misuse. Anything else coming out
// of a repository is an infrastructure fault wrapped with %w.
var (
	// ErrNotFound indicates that a requested entity was not found.
	ErrNotFound = errors.New("not found")

	// ErrCommitFailed indicates that the store reported zero affected rows
	// for a mutation that was expected to affect at least one.
	ErrCommitFailed = errors.New("commit affected no rows")

	// ErrInvalidInput indicates that the input data is invalid.
	ErrInvalidInput = errors.New("invalid input")
)

// NotFoundError provides details about a not found entity.
type NotFoundError struct {
	Entity string
	ID     string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Entity, e.ID)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *NotFoundError) Unwrap() error {
	return ErrNotFound
}

// CommitFailedError provides details about a mutation the store reported
// as affecting zero rows. It covers updates and deletes aimed at rows that
// no longer exist as well as inserts the store silently dropped.
type CommitFailedError struct {
	Entity string
	Op     string
}

// Error implements the error interface.
func (e *CommitFailedError) Error() string {
	return fmt.Sprintf("%s %s: commit affected no rows", e.Entity, e.Op)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *CommitFailedError) Unwrap() error {
	return ErrCommitFailed
}

// ValidationError represents a validation error for a specific field.
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
}

// Unwrap returns the underlying sentinel error for use with errors.Is.
func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// NewNotFoundError creates a new NotFoundError.
func NewNotFoundError(entity, id string) *NotFoundError {
	return &NotFoundError{
		Entity: entity,
		ID:     id,
	}
}

// NewCommitFailedError creates a new CommitFailedError.
func NewCommitFailedError(entity, op string) *CommitFailedError {
	return &CommitFailedError{
		Entity: entity,
		Op:     op,
	}
}

// NewValidationError creates a new ValidationError.
func NewValidationError(field, message string) *ValidationError {
	return &ValidationError{
		Field:   field,
		Message: message,
	}
}
