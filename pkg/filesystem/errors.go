package filesystem

import (
	"github.com/pkg/errors"
)

// The contract folds every host-level failure into one of a small number of
// kinds before returning it to the caller. Callers in this codebase make
// coarse decisions (try, else skip or abort) and are not expected to
// distinguish between them beyond the sentinels below, but backend
// implementations use the distinction internally to decide things like
// whether removal of an already-absent symbolic link should be treated as
// success (see the physical backend).
var (
	// ErrNotExist indicates that a path, or one of its ancestors, does not
	// exist.
	ErrNotExist = errors.New("path does not exist")
	// ErrWrongType indicates that a path exists but is not of the kind
	// required by the operation.
	ErrWrongType = errors.New("path has wrong type")
	// ErrNotEmpty indicates that a non-recursive directory removal was
	// attempted against a directory with contents.
	ErrNotEmpty = errors.New("directory is not empty")
	// ErrInvalidRange indicates that a read window falls outside the bounds
	// of the file's content.
	ErrInvalidRange = errors.New("invalid read range")
	// ErrNotAbsolute indicates that an absolute path was required but not
	// provided. Only the in-memory backend enforces this; the physical
	// backend interprets relative paths against the process working
	// directory.
	ErrNotAbsolute = errors.New("path is not absolute")
)
