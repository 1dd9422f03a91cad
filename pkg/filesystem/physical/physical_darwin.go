//go:build darwin

package physical

import (
	"github.com/pkg/errors"
	"golang.org/x/sys/unix"
)

// CopyFile shadows Defaults.CopyFile with a clonefile(2)-backed fast path.
// clonefile creates a copy-on-write clone of source at destination in a
// single syscall on APFS, avoiding the read-then-write round trip through
// user space that Defaults.CopyFile performs. If cloning is refused - the
// two paths span filesystems, or the filesystem backing destination isn't
// APFS - we fall back to the generic implementation rather than failing the
// whole operation.
func (p *Physical) CopyFile(source, destination string) error {
	if err := unix.Clonefile(source, destination, 0); err == nil {
		return nil
	} else if !isCloneUnsupported(err) {
		return errors.Wrap(err, "unable to clone file")
	}
	return p.Defaults.CopyFile(source, destination)
}

// CopyDirectory shadows Defaults.CopyDirectory with the same clonefile fast
// path, applied to the whole directory tree at once. clonefile clones
// directories recursively when given one, so a single call substitutes for
// what would otherwise be a full manual walk issuing one CopyFile or
// CopySymbolicLink per entry.
func (p *Physical) CopyDirectory(source, destination string) error {
	if err := unix.Clonefile(source, destination, 0); err == nil {
		return nil
	} else if !isCloneUnsupported(err) {
		return errors.Wrap(err, "unable to clone directory")
	}
	return p.Defaults.CopyDirectory(source, destination)
}

// isCloneUnsupported reports whether err indicates that clonefile itself
// isn't usable for this pair of paths (cross-device, unsupported
// filesystem, or destination already exists), as opposed to some other
// failure that the generic fallback would hit too.
func isCloneUnsupported(err error) bool {
	errno, ok := err.(unix.Errno)
	if !ok {
		return false
	}
	switch errno {
	case unix.ENOTSUP, unix.EXDEV, unix.EEXIST:
		return true
	default:
		return false
	}
}
