package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in
	// the store. Entity-specific variants below wrap it so callers can
	// match either the generic or the specific error.
	ErrNotFound = errors.New("entity not found")

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific details.
	ErrInvalidEntity = errors.New("invalid entity")

	// Entity-specific "not found" errors.

	// ErrProgressNotFound indicates no progress record exists for the
	// learner/word pair.
	ErrProgressNotFound = fmt.Errorf("%w: progress record", ErrNotFound)

	// ErrReviewEntryNotFound indicates no review queue entry exists for
	// the learner/word pair.
	ErrReviewEntryNotFound = fmt.Errorf("%w: review queue entry", ErrNotFound)

	// ErrPatternNotFound indicates the learner has no learning pattern yet.
	ErrPatternNotFound = fmt.Errorf("%w: learning pattern", ErrNotFound)

	// ErrStreakNotFound indicates the learner has no streak record yet.
	ErrStreakNotFound = fmt.Errorf("%w: streak record", ErrNotFound)

	// ErrProfileNotFound indicates the learner has no profile yet.
	ErrProfileNotFound = fmt.Errorf("%w: learner profile", ErrNotFound)
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// StoreError is a custom error type for store-specific failures with
// additional context.
type StoreError struct {
	Entity    string // The entity type (e.g., "progress", "streak")
	Operation string // The operation that failed (e.g., "save", "load")
	Message   string // Error message
	Err       error  // Original error
}

// Error implements the error interface for StoreError.
func (e *StoreError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s operation on %s failed: %s: %v", e.Operation, e.Entity, e.Message, e.Err)
	}
	return fmt.Sprintf("%s operation on %s failed: %s", e.Operation, e.Entity, e.Message)
}

// Unwrap returns the wrapped error to support errors.Is/errors.As.
func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError creates a new StoreError.
func NewStoreError(entity, operation, message string, err error) *StoreError {
	return &StoreError{Entity: entity, Operation: operation, Message: message, Err: err}
}
