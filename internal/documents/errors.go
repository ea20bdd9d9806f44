package documents

import "errors"

var (
	// ErrInvalidInput is returned when a required input is missing.
	ErrInvalidInput = errors.New("invalid input")
	// ErrNotFound is returned when no document has the requested id.
	ErrNotFound = errors.New("document not found")
)
