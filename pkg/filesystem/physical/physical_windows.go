//go:build windows

package physical

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hectane/go-acl"
	"github.com/pkg/errors"

	"github.com/xcbuild-go/xcbuild/pkg/filesystem"
)

// executableExtensions mirrors the set of suffixes Windows itself treats as
// directly executable (the default %PATHEXT%), since Windows has no
// POSIX-style executable permission bit to query.
var executableExtensions = map[string]bool{
	".exe": true,
	".bat": true,
	".cmd": true,
	".com": true,
}

// Exists implements filesystem.Primitives.Exists.
func (p *Physical) Exists(path string) bool {
	_, err := os.Lstat(path)
	return err == nil
}

// IsReadable implements filesystem.Primitives.IsReadable by attempting to
// open the file for reading, since Windows has no direct analogue of
// POSIX's access(R_OK).
func (p *Physical) IsReadable(path string) bool {
	file, err := os.Open(path)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// IsWritable implements filesystem.Primitives.IsWritable.
func (p *Physical) IsWritable(path string) bool {
	info, err := os.Lstat(path)
	if err != nil {
		return false
	}
	if info.IsDir() {
		return info.Mode().Perm()&0200 != 0
	}
	file, err := os.OpenFile(path, os.O_WRONLY, 0)
	if err != nil {
		return false
	}
	file.Close()
	return true
}

// IsExecutable implements filesystem.Primitives.IsExecutable using the
// PATHEXT-style suffix list, since Windows has no executable permission
// bit. Directories are never considered executable.
func (p *Physical) IsExecutable(path string) bool {
	info, err := os.Lstat(path)
	if err != nil || info.IsDir() {
		return false
	}
	return executableExtensions[strings.ToLower(filepath.Ext(path))]
}

// Type implements filesystem.Primitives.Type.
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
	file.Close()

	// os.OpenFile's mode parameter is mostly ignored on Windows, so we apply
	// the intended permission bits to the ACL explicitly, as the original
	// toolchain's Windows permission layer does.
	if err := acl.Chmod(path, 0666); err != nil {
		return errors.Wrap(err, "unable to set file permissions")
	}
	return nil
}

// Read implements filesystem.Primitives.Read.
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

// ReadSymbolicLink implements filesystem.Primitives.ReadSymbolicLink. Windows
// symbolic links require either administrator privileges or developer mode
// to create, but existing links can always be read.
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

// RemoveSymbolicLink implements filesystem.Primitives.RemoveSymbolicLink,
// treating non-existence, or an existing entry that is not a link, as
// success for the same reason the POSIX backend does: the postcondition
// "path is not a link" already holds.
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

// CreateDirectory implements filesystem.Primitives.CreateDirectory. Windows
// has no umask, so the requested permission bits are applied to the new
// directory's ACL directly via go-acl rather than derived from a
// process-wide mask.
func (p *Physical) CreateDirectory(path string, recursive bool) error {
	if info, err := os.Lstat(path); err == nil {
		if info.IsDir() {
			return nil
		}
		return errors.Wrap(filesystem.ErrWrongType, "path exists and is not a directory")
	} else if !os.IsNotExist(err) {
		return errors.Wrap(err, "unable to stat path")
	}

	if !recursive {
		parent := filepath.Dir(path)
		if info, err := os.Lstat(parent); err != nil || !info.IsDir() {
			return errors.Wrap(filesystem.ErrNotExist, "parent directory does not exist")
		}
		if err := os.Mkdir(path, 0777); err != nil {
			return errors.Wrap(err, "unable to create directory")
		}
		return acl.Chmod(path, 0777)
	}

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

	for i := len(missing) - 1; i >= 0; i-- {
		if err := os.Mkdir(missing[i], 0777); err != nil && !os.IsExist(err) {
			return errors.Wrapf(err, "unable to create directory %q", missing[i])
		}
		if err := acl.Chmod(missing[i], 0777); err != nil {
			return errors.Wrapf(err, "unable to set permissions on %q", missing[i])
		}
	}
	return nil
}

// ReadDirectory implements filesystem.Primitives.ReadDirectory.
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
