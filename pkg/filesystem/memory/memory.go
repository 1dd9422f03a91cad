package memory

import (
	"sort"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/xcbuild-go/xcbuild/pkg/filesystem"
	"github.com/xcbuild-go/xcbuild/pkg/filesystem/path"
)

// Memory is a filesystem.Filesystem implementation backed entirely by an
// in-process node arena. A zero Memory is not usable; construct one with
// New.
type Memory struct {
	*filesystem.Defaults

	mu    sync.Mutex
	nodes []node
	root  handle
}

// New creates an empty in-memory filesystem, consisting solely of the root
// directory "/".
func New() *Memory {
	m := &Memory{
		nodes: []node{newDirectoryNode()},
		root:  0,
	}
	m.Defaults = filesystem.NewDefaults(m)
	return m
}

// alloc appends n to the arena and returns its handle.
func (m *Memory) alloc(n node) handle {
	m.nodes = append(m.nodes, n)
	return handle(len(m.nodes) - 1)
}

// components validates that p is absolute and returns its normalized,
// separator-delimited components.
func components(p string) ([]string, error) {
	if !path.IsAbsolute(p) {
		return nil, errors.Wrap(filesystem.ErrNotAbsolute, "path is not absolute")
	}
	return path.Split(path.Normalize(p)), nil
}

// lookup resolves p to the handle of the node it names, descending
// component by component from the root. The second return value is false,
// with no error, if p simply does not exist - the shape every probe in this
// package needs for a path that may or may not be there.
func (m *Memory) lookup(p string) (handle, bool, error) {
	parts, err := components(p)
	if err != nil {
		return invalidHandle, false, err
	}
	current := m.root
	for _, name := range parts {
		n := &m.nodes[current]
		if n.kind != kindDirectory {
			return invalidHandle, false, nil
		}
		child, ok := n.children[name]
		if !ok {
			return invalidHandle, false, nil
		}
		current = child
	}
	return current, true, nil
}

// walk descends from the root through every component but the last,
// requiring each to name an existing directory, then invokes visit once for
// the final component: the leaf visitor. visit receives the handle of the
// leaf's parent directory, the leaf's own name, and - if an entry by that
// name already exists - its handle. This is the shape every mutating
// operation below needs: each gets to decide for itself what "already
// exists" and "does not exist yet" mean for its own semantics, while the
// directory descent and error reporting are shared.
func (m *Memory) walk(p string, visit func(parent handle, name string, child handle, exists bool) error) error {
	parts, err := components(p)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		return errors.Wrap(filesystem.ErrWrongType, "operation not valid on the root directory")
	}

	current := m.root
	for _, name := range parts[:len(parts)-1] {
		n := &m.nodes[current]
		if n.kind != kindDirectory {
			return errors.Wrap(filesystem.ErrNotExist, "an ancestor component is not a directory")
		}
		child, ok := n.children[name]
		if !ok {
			return errors.Wrap(filesystem.ErrNotExist, "an ancestor component does not exist")
		}
		current = child
	}

	leaf := parts[len(parts)-1]
	n := &m.nodes[current]
	if n.kind != kindDirectory {
		return errors.Wrap(filesystem.ErrNotExist, "parent component is not a directory")
	}
	child, exists := n.children[leaf]
	return visit(current, leaf, child, exists)
}

// Exists implements filesystem.Primitives.Exists.
func (m *Memory) Exists(p string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok, err := m.lookup(p)
	return err == nil && ok
}

// IsReadable implements filesystem.Primitives.IsReadable. The in-memory
// backend models no permission bits, so every existing entry is readable.
func (m *Memory) IsReadable(p string) bool { return m.Exists(p) }

// IsWritable implements filesystem.Primitives.IsWritable. As with
// IsReadable, every existing entry is writable.
func (m *Memory) IsWritable(p string) bool { return m.Exists(p) }

// IsExecutable implements filesystem.Primitives.IsExecutable. As with
// IsReadable, the backend models no permission bits, so every existing entry
// is executable.
func (m *Memory) IsExecutable(p string) bool { return m.Exists(p) }

// Type implements filesystem.Primitives.Type.
func (m *Memory) Type(p string) (filesystem.EntryType, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	h, ok, err := m.lookup(p)
	if err != nil || !ok {
		return 0, false
	}
	if m.nodes[h].kind == kindDirectory {
		return filesystem.TypeDirectory, true
	}
	return filesystem.TypeFile, true
}

// IsFile implements filesystem.Primitives.IsFile.
func (m *Memory) IsFile(p string) bool {
	t, ok := m.Type(p)
	return ok && t == filesystem.TypeFile
}

// IsSymbolicLink implements filesystem.Primitives.IsSymbolicLink. Always
// false: this backend has no symbolic links.
func (m *Memory) IsSymbolicLink(p string) bool { return false }

// IsDirectory implements filesystem.Primitives.IsDirectory.
func (m *Memory) IsDirectory(p string) bool {
	t, ok := m.Type(p)
	return ok && t == filesystem.TypeDirectory
}

// CreateFile implements filesystem.Primitives.CreateFile.
func (m *Memory) CreateFile(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.walk(p, func(parent handle, name string, child handle, exists bool) error {
		if exists {
			if m.nodes[child].kind == kindFile {
				return nil
			}
			return errors.Wrap(filesystem.ErrWrongType, "path exists and is not a file")
		}
		m.nodes[parent].children[name] = m.alloc(newFileNode(nil))
		return nil
	})
}

// Read implements filesystem.Primitives.Read.
func (m *Memory) Read(p string, offset, length int64) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	h, ok, err := m.lookup(p)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errors.Wrap(filesystem.ErrNotExist, "file does not exist")
	}
	n := &m.nodes[h]
	if n.kind != kindFile {
		return nil, errors.Wrap(filesystem.ErrWrongType, "path is not a file")
	}

	if offset < 0 {
		return nil, errors.Wrap(filesystem.ErrInvalidRange, "negative offset")
	}
	size := int64(len(n.content))
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

	result := make([]byte, end-offset)
	copy(result, n.content[offset:end])
	return result, nil
}

// Write implements filesystem.Primitives.Write.
func (m *Memory) Write(p string, contents []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(contents))
	copy(stored, contents)

	return m.walk(p, func(parent handle, name string, child handle, exists bool) error {
		if exists {
			if m.nodes[child].kind != kindFile {
				return errors.Wrap(filesystem.ErrWrongType, "path exists and is not a file")
			}
			m.nodes[child].content = stored
			return nil
		}
		m.nodes[parent].children[name] = m.alloc(newFileNode(stored))
		return nil
	})
}

// RemoveFile implements filesystem.Primitives.RemoveFile.
func (m *Memory) RemoveFile(p string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.walk(p, func(parent handle, name string, child handle, exists bool) error {
		if !exists {
			return errors.Wrap(filesystem.ErrNotExist, "file does not exist")
		}
		if m.nodes[child].kind != kindFile {
			return errors.Wrap(filesystem.ErrWrongType, "path is not a file")
		}
		delete(m.nodes[parent].children, name)
		return nil
	})
}

// ReadSymbolicLink implements filesystem.Primitives.ReadSymbolicLink. This
// backend has no symbolic links, so it always reports false.
func (m *Memory) ReadSymbolicLink(p string) (string, bool) { return "", false }

// WriteSymbolicLink implements filesystem.Primitives.WriteSymbolicLink.
func (m *Memory) WriteSymbolicLink(target, p string) error {
	return errors.New("in-memory filesystem does not support symbolic links")
}

// RemoveSymbolicLink implements filesystem.Primitives.RemoveSymbolicLink.
func (m *Memory) RemoveSymbolicLink(p string) error {
	return errors.New("in-memory filesystem does not support symbolic links")
}

// CreateDirectory implements filesystem.Primitives.CreateDirectory.
func (m *Memory) CreateDirectory(p string, recursive bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	parts, err := components(p)
	if err != nil {
		return err
	}
	if len(parts) == 0 {
		return nil // the root is always a directory.
	}

	if !recursive {
		return m.walk(p, func(parent handle, name string, child handle, exists bool) error {
			if exists {
				if m.nodes[child].kind == kindDirectory {
					return nil
				}
				return errors.Wrap(filesystem.ErrWrongType, "path exists and is not a directory")
			}
			m.nodes[parent].children[name] = m.alloc(newDirectoryNode())
			return nil
		})
	}

	current := m.root
	for i, name := range parts {
		n := &m.nodes[current]
		if n.kind != kindDirectory {
			return errors.Wrapf(filesystem.ErrWrongType, "%q is not a directory", strings.Join(parts[:i], "/"))
		}
		child, ok := n.children[name]
		if !ok {
			child = m.alloc(newDirectoryNode())
			m.nodes[current].children[name] = child
		}
		current = child
	}
	if m.nodes[current].kind != kindDirectory {
		return errors.Wrap(filesystem.ErrWrongType, "path exists and is not a directory")
	}
	return nil
}

// ReadDirectory implements filesystem.Primitives.ReadDirectory. Enumeration
// order within a directory is lexical by name, as with the physical backend
// (whose os.ReadDir also sorts by name). Names are collected under the lock
// and the callback is invoked after it is released, so the callback may call
// back into this filesystem.
func (m *Memory) ReadDirectory(p string, recursive bool, callback func(name string)) error {
	m.mu.Lock()
	h, ok, err := m.lookup(p)
	if err == nil && !ok {
		err = errors.Wrap(filesystem.ErrNotExist, "directory does not exist")
	} else if err == nil && m.nodes[h].kind != kindDirectory {
		err = errors.Wrap(filesystem.ErrWrongType, "path is not a directory")
	}
	var names []string
	if err == nil {
		err = m.readDirectory(h, "", recursive, func(name string) { names = append(names, name) })
	}
	m.mu.Unlock()
	if err != nil {
		return err
	}

	for _, name := range names {
		callback(name)
	}
	return nil
}

func (m *Memory) readDirectory(h handle, prefix string, recursive bool, callback func(name string)) error {
	n := &m.nodes[h]

	names := make([]string, 0, len(n.children))
	for name := range n.children {
		names = append(names, name)
	}
	sort.Strings(names)

	relativeName := func(name string) string {
		if prefix == "" {
			return name
		}
		return prefix + "/" + name
	}

	for _, name := range names {
		callback(relativeName(name))
	}

	if !recursive {
		return nil
	}

	for _, name := range names {
		child := n.children[name]
		if m.nodes[child].kind == kindDirectory {
			if err := m.readDirectory(child, relativeName(name), true, callback); err != nil {
				return err
			}
		}
	}
	return nil
}

// RemoveDirectory implements filesystem.Primitives.RemoveDirectory.
//
// Because removal is just deleting the entry from its parent's children
// map, recursive and non-recursive removal of an empty directory are the
// same operation; the only difference is that recursive removal also
// accepts a non-empty directory, abandoning its entire subtree as
// unreachable arena garbage in one step rather than visiting it.
func (m *Memory) RemoveDirectory(p string, recursive bool) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.walk(p, func(parent handle, name string, child handle, exists bool) error {
		if !exists {
			return errors.Wrap(filesystem.ErrNotExist, "directory does not exist")
		}
		if m.nodes[child].kind != kindDirectory {
			return errors.Wrap(filesystem.ErrWrongType, "path is not a directory")
		}
		if !recursive && len(m.nodes[child].children) > 0 {
			return errors.Wrap(filesystem.ErrNotEmpty, "directory is not empty")
		}
		delete(m.nodes[parent].children, name)
		return nil
	})
}

// ResolvePath implements filesystem.Primitives.ResolvePath. Since this
// backend has no symbolic links to follow, resolution is just lexical
// normalization of an already-absolute path.
func (m *Memory) ResolvePath(p string) (string, error) {
	if !path.IsAbsolute(p) {
		return "", errors.Wrap(filesystem.ErrNotAbsolute, "path is not absolute")
	}
	return path.Normalize(p), nil
}

var _ filesystem.Filesystem = (*Memory)(nil)
