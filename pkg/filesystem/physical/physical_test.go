package physical

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/xcbuild-go/xcbuild/pkg/filesystem"
)

func TestNewSatisfiesFilesystem(t *testing.T) {
	var _ filesystem.Filesystem = New()
}

func TestCreateFileAndReadWrite(t *testing.T) {
	directory := t.TempDir()
	target := filepath.Join(directory, "file")

	fs := New()
	if err := fs.CreateFile(target); err != nil {
		t.Fatal("unable to create file:", err)
	}
	if !fs.IsFile(target) {
		t.Error("created path is not reported as a file")
	}

	// Creating again over an existing regular file should succeed.
	if err := fs.CreateFile(target); err != nil {
		t.Error("re-creating existing file failed:", err)
	}

	contents := []byte("hello, build system")
	if err := fs.Write(target, contents); err != nil {
		t.Fatal("unable to write file:", err)
	}

	readBack, err := fs.Read(target, 0, -1)
	if err != nil {
		t.Fatal("unable to read file:", err)
	}
	if !bytes.Equal(readBack, contents) {
		t.Error("read content did not match written content")
	}

	partial, err := fs.Read(target, 7, 5)
	if err != nil {
		t.Fatal("unable to read file window:", err)
	}
	if !bytes.Equal(partial, []byte("build")) {
		t.Errorf("partial read returned %q, expected %q", partial, "build")
	}

	if _, err := fs.Read(target, 0, int64(len(contents))+1); err == nil {
		t.Error("read past end of file did not fail")
	}
}

func TestCreateFileWrongType(t *testing.T) {
	directory := t.TempDir()

	fs := New()
	if err := fs.CreateFile(directory); err == nil {
		t.Error("creating a file over an existing directory did not fail")
	}
}

func TestDirectoryLifecycle(t *testing.T) {
	root := t.TempDir()
	nested := filepath.Join(root, "a", "b", "c")

	fs := New()
	if err := fs.CreateDirectory(nested, true); err != nil {
		t.Fatal("recursive directory creation failed:", err)
	}
	if !fs.IsDirectory(nested) {
		t.Error("created directory not reported as a directory")
	}

	// Recreating an existing directory should be a no-op success.
	if err := fs.CreateDirectory(nested, true); err != nil {
		t.Error("re-creating existing directory failed:", err)
	}

	if err := fs.CreateFile(filepath.Join(nested, "leaf")); err != nil {
		t.Fatal("unable to create leaf file:", err)
	}

	var names []string
	if err := fs.ReadDirectory(root, true, func(name string) {
		names = append(names, name)
	}); err != nil {
		t.Fatal("recursive directory read failed:", err)
	}

	expected := map[string]bool{
		"a":         true,
		"a/b":       true,
		"a/b/c":     true,
		"a/b/c/leaf": true,
	}
	if len(names) != len(expected) {
		t.Fatalf("got %d entries, expected %d: %v", len(names), len(expected), names)
	}
	for _, name := range names {
		if !expected[name] {
			t.Errorf("unexpected entry %q", name)
		}
	}

	if err := fs.RemoveDirectory(root, false); err == nil {
		t.Error("non-recursive removal of non-empty directory did not fail")
	}

	if err := fs.RemoveDirectory(root, true); err != nil {
		t.Fatal("recursive directory removal failed:", err)
	}
	if fs.Exists(root) {
		t.Error("directory tree still exists after recursive removal")
	}
}

func TestCopyFileAndDirectory(t *testing.T) {
	root := t.TempDir()
	source := filepath.Join(root, "source")
	destination := filepath.Join(root, "destination")

	fs := New()
	if err := fs.CreateDirectory(filepath.Join(source, "nested"), true); err != nil {
		t.Fatal("unable to set up source tree:", err)
	}
	if err := fs.Write(filepath.Join(source, "nested", "file"), []byte("payload")); err != nil {
		t.Fatal("unable to write source file:", err)
	}

	if err := fs.CopyDirectory(source, destination); err != nil {
		t.Fatal("directory copy failed:", err)
	}

	copied, err := fs.Read(filepath.Join(destination, "nested", "file"), 0, -1)
	if err != nil {
		t.Fatal("unable to read copied file:", err)
	}
	if !bytes.Equal(copied, []byte("payload")) {
		t.Error("copied file content did not match source")
	}
}

func TestFindExecutable(t *testing.T) {
	root := t.TempDir()
	binary := filepath.Join(root, "tool")

	fs := New()
	if err := fs.CreateFile(binary); err != nil {
		t.Fatal("unable to create candidate file:", err)
	}

	if _, ok := fs.FindExecutable("tool", []string{root}); ok {
		t.Error("non-executable file was found by FindExecutable")
	}
	if path, ok := fs.FindFile("tool", []string{root}); !ok || path != binary {
		t.Errorf("FindFile returned (%q, %v), expected (%q, true)", path, ok, binary)
	}
}
