package filesystem

import (
	"github.com/pkg/errors"

	"github.com/xcbuild-go/xcbuild/pkg/filesystem/path"
)

// Defaults implements the derived Filesystem operations (copying and
// finding) in terms of a backend's Primitives. A backend embeds *Defaults,
// pointed at itself, to satisfy Filesystem without reimplementing these
// operations; it may shadow any of them with its own method of the same
// name to substitute a faster native implementation (as the physical
// backend does for copying on platforms with a bulk-copy facility).
type Defaults struct {
	// Primitives is the backend whose primitive operations back the derived
	// operations below.
	Primitives
}

// NewDefaults wraps primitives in a Defaults value implementing the derived
// Filesystem operations.
func NewDefaults(primitives Primitives) *Defaults {
	return &Defaults{Primitives: primitives}
}

// CopyFile copies the regular file at source to destination by reading its
// entire content and writing it to destination.
func (d *Defaults) CopyFile(source, destination string) error {
	contents, err := d.Read(source, 0, -1)
	if err != nil {
		return errors.Wrap(err, "unable to read source file")
	}
	if err := d.Write(destination, contents); err != nil {
		return errors.Wrap(err, "unable to write destination file")
	}
	return nil
}

// CopySymbolicLink copies the symbolic link at source to destination by
// reading its target and recreating the link at destination.
func (d *Defaults) CopySymbolicLink(source, destination string) error {
	target, ok := d.ReadSymbolicLink(source)
	if !ok {
		return errors.Wrap(ErrWrongType, "source is not a symbolic link")
	}
	if err := d.WriteSymbolicLink(target, destination); err != nil {
		return errors.Wrap(err, "unable to write destination symbolic link")
	}
	return nil
}

// CopyDirectory recursively copies the directory at source to destination,
// creating destination (and any intermediate directories beneath it) and
// copying every file, symbolic link, and subdirectory that source contains.
func (d *Defaults) CopyDirectory(source, destination string) error {
	if err := d.CreateDirectory(destination, true); err != nil {
		return errors.Wrap(err, "unable to create destination directory")
	}

	// We enumerate non-recursively and recurse manually (rather than passing
	// recursive=true to ReadDirectory) so that we can create each
	// subdirectory at destination before copying into it, and so that a
	// directory's contents are always copied only after the directory
	// itself exists.
	var failure error
	err := d.ReadDirectory(source, false, func(name string) {
		if failure != nil {
			return
		}
		sourceChild := path.Join(source, name)
		destinationChild := path.Join(destination, name)
		switch entryType, ok := d.Type(sourceChild); {
		case !ok:
			failure = errors.Errorf("unable to determine type of %q", sourceChild)
		case entryType == TypeDirectory:
			failure = d.CopyDirectory(sourceChild, destinationChild)
		case entryType == TypeSymbolicLink:
			failure = d.CopySymbolicLink(sourceChild, destinationChild)
		default:
			failure = d.CopyFile(sourceChild, destinationChild)
		}
	})
	if err != nil {
		return errors.Wrap(err, "unable to enumerate source directory")
	}
	return failure
}

// FindFile searches searchPaths in order for an entry named name, returning
// the first match as an absolute path.
func (d *Defaults) FindFile(name string, searchPaths []string) (string, bool) {
	for _, searchPath := range searchPaths {
		candidate := path.Join(searchPath, name)
		if d.Exists(candidate) {
			return candidate, true
		}
	}
	return "", false
}

// FindExecutable searches searchPaths in order for an executable entry named
// name, returning the first match as an absolute path.
func (d *Defaults) FindExecutable(name string, searchPaths []string) (string, bool) {
	for _, searchPath := range searchPaths {
		candidate := path.Join(searchPath, name)
		if d.IsExecutable(candidate) {
			return candidate, true
		}
	}
	return "", false
}
