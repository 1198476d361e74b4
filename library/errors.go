package library

import "errors"

// Sentinel errors returned by catalog operations.
var (
	// ErrDuplicateID is returned when adding an item whose id is already
	// in the catalog. The catalog is left unchanged.
	ErrDuplicateID = errors.New("item ID already exists")

	// ErrNotFound is returned when removing or toggling an absent id.
	ErrNotFound = errors.New("item not found")

	// ErrUnknownType marks a stored record whose type tag matches no
	// variant. Such lines are skipped on load, not reported.
	ErrUnknownType = errors.New("unknown record type")

	// ErrMalformedRecord marks a stored record with a recognized type tag
	// but an unparseable field.
	ErrMalformedRecord = errors.New("malformed record")
)
