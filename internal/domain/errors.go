package domain

import "errors"

// ErrNotFound is returned by repo and service functions when the requested
// resource does not exist, e.g. a destination with no packages.
// Handlers should map this to HTTP 404.
var ErrNotFound = errors.New("not found")

// ErrValidation is returned by service functions when input is rejected
// before any query runs (e.g. an empty destination).
// Handlers should map this to HTTP 422 Unprocessable Entity.
var ErrValidation = errors.New("validation error")
