package coursedb

import "errors"

// Sentinel errors for the repository layer.
var (
	// ErrNotFound indicates the requested course or teebox does not exist.
	ErrNotFound = errors.New("course record not found")
)
