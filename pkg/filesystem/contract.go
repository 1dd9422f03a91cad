package filesystem

// Primitives is the set of operations a backend must implement directly.
// Everything else in the Filesystem interface - copying and the finders - is
// derived from these primitives by Defaults and shared by every backend.
type Primitives interface {
	// Exists reports whether any entry exists at path.
	Exists(path string) bool
	// IsReadable reports whether path exists and the readable permission bit
	// is set.
	IsReadable(path string) bool
	// IsWritable reports whether path exists and the writable permission bit
	// is set.
	IsWritable(path string) bool
	// IsExecutable reports whether path exists and the executable permission
	// bit is set.
	IsExecutable(path string) bool
	// IsFile reports whether path exists and is a regular file.
	IsFile(path string) bool
	// IsSymbolicLink reports whether path exists and is a symbolic link.
	IsSymbolicLink(path string) bool
	// IsDirectory reports whether path exists and is a directory.
	IsDirectory(path string) bool
	// Type reports the kind of entry at path. The second return value is
	// false if path does not exist or is an object with no EntryType
	// representation (a device, socket, or pipe).
	Type(path string) (EntryType, bool)

	// CreateFile creates an empty regular file at path. It is idempotent
	// over an existing regular file at path and fails if path exists as a
	// non-file.
	CreateFile(path string) error
	// Read returns the byte window [offset, offset+length) of the file at
	// path. A negative length requests everything from offset to the end of
	// the file. It fails if the window falls outside the bounds of the
	// file's content.
	Read(path string, offset, length int64) ([]byte, error)
	// Write replaces the content of the file at path, creating it if
	// necessary. It fails if path exists as a non-file.
	Write(path string, contents []byte) error
	// RemoveFile unlinks the regular file at path. Non-existence or wrong
	// type is a failure.
	RemoveFile(path string) error

	// ReadSymbolicLink returns the stored target of the symbolic link at
	// path. The second return value is false if path is not a symbolic
	// link.
	ReadSymbolicLink(path string) (string, bool)
	// WriteSymbolicLink creates a symbolic link at path with the specified
	// target, storing the target string verbatim.
	WriteSymbolicLink(target, path string) error
	// RemoveSymbolicLink unlinks the symbolic link at path.
	RemoveSymbolicLink(path string) error

	// CreateDirectory creates a directory at path. When recursive is true,
	// all absent ancestors are created with default permissions; otherwise
	// only the leaf is created and the immediate parent must already be a
	// directory. It fails if path exists as a non-directory and succeeds
	// (without modification) if path already exists as a directory.
	CreateDirectory(path string, recursive bool) error
	// ReadDirectory enumerates the contents of the directory at path,
	// invoking callback once per entry with a name relative to path. When
	// recursive is true, all immediate children of a directory are reported
	// before any subdirectory is recursed into. Entries "." and ".." are
	// never reported.
	ReadDirectory(path string, recursive bool, callback func(name string)) error
	// RemoveDirectory removes the directory at path. Without recursion, it
	// fails unless the directory is empty. With recursion, it removes
	// everything the directory contains (in unspecified order) on a
	// best-effort basis, then removes path itself.
	RemoveDirectory(path string, recursive bool) error

	// ResolvePath follows every symbolic link along path and returns the
	// resulting normalized absolute path. It is the only contract operation
	// that ever follows a symbolic link.
	ResolvePath(path string) (string, error)
}

// Filesystem is the full capability contract consumed by every subsystem
// that performs I/O. It extends Primitives with the derived copy and finder
// operations.
type Filesystem interface {
	Primitives

	// CopyFile copies the regular file at source to destination.
	CopyFile(source, destination string) error
	// CopySymbolicLink copies the symbolic link at source to destination,
	// preserving its target string.
	CopySymbolicLink(source, destination string) error
	// CopyDirectory recursively copies the directory at source to
	// destination.
	CopyDirectory(source, destination string) error

	// FindFile searches searchPaths in order for a file or directory named
	// name, returning the first match as an absolute path.
	FindFile(name string, searchPaths []string) (string, bool)
	// FindExecutable is identical to FindFile but additionally requires that
	// the match satisfy IsExecutable.
	FindExecutable(name string, searchPaths []string) (string, bool)
}
