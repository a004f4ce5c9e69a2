package domain

import "errors"

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrEmptyState matches every *EmptyStateError via errors.Is.
	ErrEmptyState = errors.New("no record stored")
)

// ValidationError reports a malformed or out-of-range input field.
// Message is shown to the user as is.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// EmptyStateError reports an operation that needs a stored record when none exists.
type EmptyStateError struct {
	Entity string // "bill" or "transaction"
}

func (e *EmptyStateError) Error() string {
	return "No " + e.Entity + " available. Please create a new " + e.Entity + " first."
}

func (e *EmptyStateError) Is(target error) bool { return target == ErrEmptyState }
