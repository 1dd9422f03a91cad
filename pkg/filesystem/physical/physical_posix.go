//go:build !windows

package physical

import (
	"io"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"golang.org/x/sys/unix"

	"github.com/xcbuild-go/xcbuild/pkg/filesystem"
)

// Exists implements filesystem.Primitives.Exists.
func (p *Physical) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// accessible reports whether unix.Access succeeds for path with the given
// mode bits. Access, unlike a permission-bit inspection of Stat, honors ACLs
// and other access-control mechanisms the host may layer on top of the
// traditional permission bits.
func accessible(path string, mode uint32) bool {
	return unix.Access(path, mode) == nil
}

// IsReadable implements filesystem.Primitives.IsReadable.
func (p *Physical) IsReadable(path string) bool { return accessible(path, unix.R_OK) }

// IsWritable implements filesystem.Primitives.IsWritable.
func (p *Physical) IsWritable(path string) bool { return accessible(path, unix.W_OK) }

// IsExecutable implements filesystem.Primitives.IsExecutable.
func (p *Physical) IsExecutable(path string) bool { return accessible(path, unix.X_OK) }

// Type implements filesystem.Primitives.Type. It uses lstat so that the type
// reported for a symbolic link is always TypeSymbolicLink, never the type of
// its target.
func (p *Physical) Type(path string) (filesystem.EntryType, bool) {
	info, err := os.Lstat(path)
	if err != nil {
		return 0, false
	}
	switch {
	case info.Mode()&os.ModeSymlink != 0:
		return filesystem.TypeSymbolicLink, true
	case info.IsDir():
		return filesystem.TypeDirectory, true
	case info.Mode().IsRegular():
		return filesystem.TypeFile, true
	default:
		return 0, false
	}
}

// IsFile implements filesystem.Primitives.IsFile.
func (p *Physical) IsFile(path string) bool {
	t, ok := p.Type(path)
	return ok && t == filesystem.TypeFile
}

// IsSymbolicLink implements filesystem.Primitives.IsSymbolicLink.
func (p *Physical) IsSymbolicLink(path string) bool {
	t, ok := p.Type(path)
	return ok && t == filesystem.TypeSymbolicLink
}

// IsDirectory implements filesystem.Primitives.IsDirectory.
func (p *Physical) IsDirectory(path string) bool {
	t, ok := p.Type(path)
	return ok && t == filesystem.TypeDirectory
}

// CreateFile implements filesystem.Primitives.CreateFile.
func (p *Physical) CreateFile(path string) error {
	if info, err := os.Lstat(path); err == nil {
		if info.Mode().IsRegular() {
			return nil
		}
		return errors.Wrap(filesystem.ErrWrongType, "path exists and is not a regular file")
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "unable to stat path")
	}

	file, err := os.OpenFile(path, os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0666)
	if err != nil {
		return errors.Wrap(err, "unable to create file")
	}
	return file.Close()
}

// Read implements filesystem.Primitives.Read. A negative length requests
// everything from offset to the end of the file. The bound check is
// performed against the file size rather than against offset+length
// directly, which avoids the integer overflow that a naive end := offset +
// length computation would risk for very large inputs.
func (p *Physical) Read(path string, offset, length int64) ([]byte, error) {
	if offset < 0 {
		return nil, errors.Wrap(filesystem.ErrInvalidRange, "negative offset")
	}

	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(filesystem.ErrNotExist, "file does not exist")
		}
		return nil, errors.Wrap(err, "unable to open file")
	}
	defer file.Close()

	info, err := file.Stat()
	if err != nil {
		return nil, errors.Wrap(err, "unable to stat file")
	}
	if info.IsDir() {
		return nil, errors.Wrap(filesystem.ErrWrongType, "path is a directory")
	}
	size := info.Size()

	if offset > size {
		return nil, errors.Wrap(filesystem.ErrInvalidRange, "offset exceeds file size")
	}
	end := size
	if length >= 0 {
		if length > size-offset {
			return nil, errors.Wrap(filesystem.ErrInvalidRange, "read window exceeds file size")
		}
		end = offset + length
	}

	buffer := make([]byte, end-offset)
	if _, err := file.ReadAt(buffer, offset); err != nil && err != io.EOF {
		return nil, errors.Wrap(err, "unable to read file content")
	}
	return buffer, nil
}

// Write implements filesystem.Primitives.Write.
func (p *Physical) Write(path string, contents []byte) error {
	if info, err := os.Lstat(path); err == nil && !info.Mode().IsRegular() {
		return errors.Wrap(filesystem.ErrWrongType, "path exists and is not a regular file")
	}
	if err := os.WriteFile(path, contents, 0666); err != nil {
		return errors.Wrap(err, "unable to write file")
	}
	return nil
}

// RemoveFile implements filesystem.Primitives.RemoveFile.
func (p *Physical) RemoveFile(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(filesystem.ErrNotExist, "file does not exist")
		}
		return errors.Wrap(err, "unable to stat file")
	}
	if !info.Mode().IsRegular() {
		return errors.Wrap(filesystem.ErrWrongType, "path is not a regular file")
	}
	if err := os.Remove(path); err != nil {
		return errors.Wrap(err, "unable to remove file")
	}
	return nil
}

// ReadSymbolicLink implements filesystem.Primitives.ReadSymbolicLink.
func (p *Physical) ReadSymbolicLink(path string) (string, bool) {
	info, err := os.Lstat(path)
	if err != nil || info.Mode()&os.ModeSymlink == 0 {
		return "", false
	}
	target, err := os.Readlink(path)
	if err != nil {
		return "", false
	}
	return target, true
}

// WriteSymbolicLink implements filesystem.Primitives.WriteSymbolicLink.
func (p *Physical) WriteSymbolicLink(target, path string) error {
	if err := os.Symlink(target, path); err != nil {
		return errors.Wrap(err, "unable to create symbolic link")
	}
	return nil
}

// RemoveSymbolicLink implements filesystem.Primitives.RemoveSymbolicLink.
//
// Non-existence is treated as success: the contract this operation provides
// is "path is no longer a link after the call", and a path that was never a
// link already satisfies it. An existing entry that is not a symbolic link is
// left in place and the call succeeds. This matches the behavior of the
// original toolchain and is preserved intentionally rather than tightened.
func (p *Physical) RemoveSymbolicLink(path string) error {
	info, err := os.Lstat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return errors.Wrap(err, "unable to stat path")
	}
	if info.Mode()&os.ModeSymlink == 0 {
		return nil
	}
	if err := os.Remove(path); err != nil {
		return errors.Wrap(err, "unable to remove symbolic link")
	}
	return nil
}

// defaultDirectoryMode computes the permission mode to use for newly created
// directories: 0777 masked by the umask in effect for the process. The
// umask is queried exactly once per CreateDirectory call (not once per
// directory level in a recursive creation) by reading and immediately
// restoring it; this keeps the process-global side effect as brief and as
// infrequent as a single query can make it, though it remains racy against
// concurrent creators mutating the umask at the same instant.
func defaultDirectoryMode() os.FileMode {
	mask := unix.Umask(0)
	unix.Umask(mask)
	return os.FileMode(0777 &^ mask)
}

// CreateDirectory implements filesystem.Primitives.CreateDirectory.
func (p *Physical) CreateDirectory(path string, recursive bool) error {
	if info, err := os.Lstat(path); err == nil {
		if info.IsDir() {
			return nil
		}
		return errors.Wrap(filesystem.ErrWrongType, "path exists and is not a directory")
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "unable to stat path")
	}

	mode := defaultDirectoryMode()

	if !recursive {
		parent := filepath.Dir(path)
		if info, err := os.Lstat(parent); err != nil || !info.IsDir() {
			return errors.Wrap(filesystem.ErrNotExist, "parent directory does not exist")
		}
		if err := os.Mkdir(path, mode); err != nil {
			return errors.Wrap(err, "unable to create directory")
		}
		return nil
	}

	// Ascend lexically, pushing each missing component onto a stack, until
	// we find a component that already exists (it must be a directory, or
	// we fail) or we exhaust the path.
	var missing []string
	current := path
	for {
		info, err := os.Lstat(current)
		if err == nil {
			if !info.IsDir() {
				return errors.Wrapf(filesystem.ErrWrongType, "ancestor %q is not a directory", current)
			}
			break
		} else if !os.IsNotExist(err) {
			return errors.Wrap(err, "unable to stat ancestor directory")
		}
		missing = append(missing, current)
		parent := filepath.Dir(current)
		if parent == current {
			break
		}
		current = parent
	}

	// Create from the top of the stack (closest to the existing ancestor)
	// down to the leaf.
	for i := len(missing) - 1; i >= 0; i-- {
		if err := os.Mkdir(missing[i], mode); err != nil && !os.IsExist(err) {
			return errors.Wrapf(err, "unable to create directory %q", missing[i])
		}
	}
	return nil
}

// ReadDirectory implements filesystem.Primitives.ReadDirectory.
//
// Rather than the double-scan (report children, then rewinddir and recurse)
// that the original toolchain performs to bound memory use, this
// implementation buffers one directory's entries at a time in a single
// os.ReadDir call: entries are still reported in two passes (all immediate
// children, then a recursive pass over the subdirectories among them), but
// with one scan instead of two. Memory use is still bounded by the width of
// a single directory, not the size of the whole tree.
func (p *Physical) ReadDirectory(path string, recursive bool, callback func(name string)) error {
	return readDirectory(path, "", recursive, callback)
}

func readDirectory(root, prefix string, recursive bool, callback func(name string)) error {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return errors.Wrap(filesystem.ErrNotExist, "directory does not exist")
		}
		return errors.Wrap(err, "unable to read directory")
	}

	relativeName := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "/" + name
	}

	for _, entry := range entries {
		callback(relativeName(entry.Name()))
	}

	if !recursive {
		return nil
	}

	for _, entry := range entries {
		// entry.IsDir() reflects the dirent's type directly (equivalent to
		// an lstat), so a symbolic link to a directory is never recursed
		// into here - consistent with type queries never following links.
		if !entry.IsDir() {
			continue
		}
		childRoot := filepath.Join(root, entry.Name())
		if err := readDirectory(childRoot, relativeName(entry.Name()), true, callback); err != nil {
			return err
		}
	}
	return nil
}

// RemoveDirectory implements filesystem.Primitives.RemoveDirectory.
func (p *Physical) RemoveDirectory(path string, recursive bool) error {
	if !recursive {
		entries, err := os.ReadDir(path)
		if err != nil {
			if os.IsNotExist(err) {
				return errors.Wrap(filesystem.ErrNotExist, "directory does not exist")
			}
			return errors.Wrap(err, "unable to read directory")
		}
		if len(entries) > 0 {
			return errors.Wrap(filesystem.ErrNotEmpty, "directory is not empty")
		}
		if err := os.Remove(path); err != nil {
			return errors.Wrap(err, "unable to remove directory")
		}
		return nil
	}

	if !removeDirectoryRecursive(path) {
		return errors.New("one or more entries could not be removed")
	}
	return nil
}

// removeDirectoryRecursive removes path and everything it contains on a
// best-effort basis. It continues past per-entry failures rather than
// aborting, returning whether every removal along the way succeeded. This
// matches the "best-effort delete, report overall success" policy of the
// original toolchain: a caller clearing a build intermediates directory
// would rather see most of it gone than none of it.
func removeDirectoryRecursive(path string) bool {
	entries, err := os.ReadDir(path)
	succeeded := err == nil
	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		switch {
		case entry.Type()&os.ModeSymlink != 0:
			succeeded = os.Remove(child) == nil && succeeded
		case entry.IsDir():
			succeeded = removeDirectoryRecursive(child) && succeeded
		default:
			succeeded = os.Remove(child) == nil && succeeded
		}
	}
	return os.Remove(path) == nil && succeeded
}

// ResolvePath implements filesystem.Primitives.ResolvePath.
func (p *Physical) ResolvePath(path string) (string, error) {
	absolute, err := filepath.Abs(path)
	if err != nil {
		return "", errors.Wrap(err, "unable to compute absolute path")
	}
	resolved, err := filepath.EvalSymlinks(absolute)
	if err != nil {
		return "", errors.Wrap(err, "unable to resolve symbolic links")
	}
	return filepath.Clean(resolved), nil
}
