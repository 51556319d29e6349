package engine

import "errors"

// Errors returned by engine operations.
var (
	// ErrIO indicates loading or saving the buffer failed.
	ErrIO = errors.New("i/o failure")

	// ErrReadOnly indicates an edit was attempted on a read-only engine.
	ErrReadOnly = errors.New("engine is read-only")
)
