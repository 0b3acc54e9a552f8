package domain

import "errors"

var (
	// ErrNotFound signals that no log or roster exists for the requested key.
	ErrNotFound = errors.New("not found")

	// ErrMalformedInput signals an unparseable timestamp or a structurally
	// broken row on a path that must not silently drop data.
	ErrMalformedInput = errors.New("malformed input")
)
