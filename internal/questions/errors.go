package questions

import "errors"

// ErrInvalidInput is returned when the document id or question is missing.
var ErrInvalidInput = errors.New("invalid input")
