package services

import "errors"

// Sentinel errors shared across services and controllers for stable
// status-code mapping.
var (
	// ErrNotFound indicates the requested record does not exist.
	ErrNotFound = errors.New("not found")

	// ErrDuplicateEntry indicates an entry already exists for the same
	// user, date and meal slot. Entries are never overwritten.
	ErrDuplicateEntry = errors.New("entry already exists for this day and meal")

	// ErrValidation indicates the input was rejected before any store
	// interaction.
	ErrValidation = errors.New("invalid input")
)
