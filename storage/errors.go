package storage

import (
	"errors"
	"fmt"
)

// ErrNoBackendAvailable is returned by a Composite whose factories all
// reported their backend unavailable. It is terminal for that Composite.
var ErrNoBackendAvailable = errors.New("storage: no backend available")

// ErrNotFolder is returned when a folder operation is given a path that
// is not a directory, and ErrNotFile when a file operation is given a
// directory.
var (
	ErrNotFolder = errors.New("storage: not a folder")
	ErrNotFile   = errors.New("storage: not a file")
)

// BackendError reports a failure inside a backend operation.
type BackendError struct {
	Backend string
	Op      string
	Err     error
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("storage: %s: %s: %v", e.Backend, e.Op, e.Err)
}

// Unwrap returns the underlying error.
func (e *BackendError) Unwrap() error { return e.Err }
