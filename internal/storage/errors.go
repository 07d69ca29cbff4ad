package storage

import "errors"

var (
	// ErrNotFound is returned when a lookup matches no document, including
	// identifiers that do not parse as ObjectID hex.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicate is returned when a write violates a unique index.
	ErrDuplicate = errors.New("duplicate record")
)
