package mirror

import (
	"errors"
	"fmt"
)

// ErrOutsideSource is returned when a subdirectory resolves outside the
// source root, e.g. "../other".
var ErrOutsideSource = errors.New("path escapes source root")

// IOError reports a filesystem failure that aborted a mirror operation.
// Anything already written is left in place.
type IOError struct {
	Op   string
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *IOError) Unwrap() error { return e.Err }
