package store

import "errors"

// Local, recoverable failures surfaced to callers as structured errors.
// Matched with errors.Is after wrapping.
var (
	// ErrReferentialIntegrity indicates a write referencing a parent
	// row that does not exist. Nothing is persisted.
	ErrReferentialIntegrity = errors.New("referenced parent row does not exist")

	// ErrValidation indicates a required field missing or invalid at
	// creation time.
	ErrValidation = errors.New("validation failed")

	// ErrNotFound indicates an operation targeting a row that does not
	// exist.
	ErrNotFound = errors.New("record not found")
)
