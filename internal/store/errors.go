package store

import (
	"errors"
	"fmt"
)

// Common store errors used across all store implementations.
var (
	// ErrNotFound is returned when a requested entity does not exist in the store.
	// This is the generic form of the entity-specific not found errors.
	ErrNotFound = errors.New("entity not found")

	// ErrPostNotFound indicates that the requested post does not exist in the store.
	// This is the "absent" signal for lookups and the failure mode for updates
	// against a missing ID; it is never treated as a fault.
	ErrPostNotFound = fmt.Errorf("%w: post", ErrNotFound)

	// ErrInvalidEntity is returned when an entity fails validation before
	// being stored. Check the wrapped error for specific validation details.
	ErrInvalidEntity = errors.New("invalid entity")
)

// IsNotFoundError checks if the error is any kind of "not found" error.
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}
