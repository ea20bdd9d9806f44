package arxiv

import "errors"

// ErrInvalidInput is returned for an empty query or paper id.
var ErrInvalidInput = errors.New("invalid input")
