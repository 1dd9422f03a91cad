package memory

import (
	"bytes"
	"testing"

	"github.com/xcbuild-go/xcbuild/pkg/filesystem"
)

func TestNewSatisfiesFilesystem(t *testing.T) {
	var _ filesystem.Filesystem = New()
}

func TestRelativePathsRejected(t *testing.T) {
	m := New()
	if m.Exists("relative") {
		t.Error("relative path reported as existing")
	}
	if err := m.CreateFile("relative"); err == nil {
		t.Error("CreateFile accepted a relative path")
	}
	if err := m.CreateDirectory("relative", true); err == nil {
		t.Error("CreateDirectory accepted a relative path")
	}
}

func TestFileLifecycle(t *testing.T) {
	m := New()

	if err := m.CreateFile("/file"); err != nil {
		t.Fatal("unable to create file:", err)
	}
	if !m.IsFile("/file") {
		t.Error("created path is not reported as a file")
	}
	if err := m.CreateFile("/file"); err != nil {
		t.Error("re-creating existing file failed:", err)
	}

	if err := m.Write("/file", []byte("contents")); err != nil {
		t.Fatal("unable to write file:", err)
	}
	data, err := m.Read("/file", 0, -1)
	if err != nil {
		t.Fatal("unable to read file:", err)
	}
	if !bytes.Equal(data, []byte("contents")) {
		t.Errorf("read %q, expected %q", data, "contents")
	}

	window, err := m.Read("/file", 3, 2)
	if err != nil {
		t.Fatal("unable to read window:", err)
	}
	if !bytes.Equal(window, []byte("te")) {
		t.Errorf("windowed read %q, expected %q", window, "te")
	}

	if _, err := m.Read("/file", 0, 100); err == nil {
		t.Error("out-of-range read did not fail")
	}

	if err := m.RemoveFile("/file"); err != nil {
		t.Fatal("unable to remove file:", err)
	}
	if m.Exists("/file") {
		t.Error("file still exists after removal")
	}
}

func TestCreateFileWrongType(t *testing.T) {
	m := New()
	if err := m.CreateDirectory("/dir", false); err != nil {
		t.Fatal("unable to create directory:", err)
	}
	if err := m.CreateFile("/dir"); err == nil {
		t.Error("creating a file over an existing directory did not fail")
	}
}

func TestDirectoryLifecycle(t *testing.T) {
	m := New()

	if err := m.CreateDirectory("/a/b/c", true); err != nil {
		t.Fatal("recursive directory creation failed:", err)
	}
	if !m.IsDirectory("/a/b/c") {
		t.Error("created directory not reported as a directory")
	}
	if err := m.CreateDirectory("/a/b/c", true); err != nil {
		t.Error("re-creating existing directory tree failed:", err)
	}

	if err := m.CreateDirectory("/a/b/leaf", false); err != nil {
		t.Fatal("non-recursive creation against an existing parent failed:", err)
	}
	if err := m.CreateDirectory("/x/y", false); err == nil {
		t.Error("non-recursive creation with a missing parent did not fail")
	}

	if err := m.CreateFile("/a/file"); err != nil {
		t.Fatal("unable to create file:", err)
	}

	var names []string
	if err := m.ReadDirectory("/a", true, func(name string) {
		names = append(names, name)
	}); err != nil {
		t.Fatal("recursive directory read failed:", err)
	}

	expected := []string{"b", "file", "b/c", "b/leaf"}
	if len(names) != len(expected) {
		t.Fatalf("got %v, expected %v", names, expected)
	}
	for i, name := range expected {
		if names[i] != name {
			t.Errorf("entry %d is %q, expected %q", i, names[i], name)
		}
	}

	if err := m.RemoveDirectory("/a", false); err == nil {
		t.Error("non-recursive removal of non-empty directory did not fail")
	}
	if err := m.RemoveDirectory("/a", true); err != nil {
		t.Fatal("recursive directory removal failed:", err)
	}
	if m.Exists("/a") {
		t.Error("directory tree still exists after recursive removal")
	}
}

func TestSymbolicLinksUnsupported(t *testing.T) {
	m := New()
	if err := m.WriteSymbolicLink("target", "/link"); err == nil {
		t.Error("WriteSymbolicLink did not fail")
	}
	if _, ok := m.ReadSymbolicLink("/link"); ok {
		t.Error("ReadSymbolicLink reported success")
	}
	if m.IsSymbolicLink("/link") {
		t.Error("IsSymbolicLink reported true")
	}
}

func TestCopyDirectoryAcrossMemoryFilesystem(t *testing.T) {
	m := New()
	if err := m.CreateDirectory("/source/nested", true); err != nil {
		t.Fatal("unable to set up source tree:", err)
	}
	if err := m.Write("/source/nested/file", []byte("payload")); err != nil {
		t.Fatal("unable to write source file:", err)
	}

	if err := m.CopyDirectory("/source", "/destination"); err != nil {
		t.Fatal("directory copy failed:", err)
	}

	data, err := m.Read("/destination/nested/file", 0, -1)
	if err != nil {
		t.Fatal("unable to read copied file:", err)
	}
	if !bytes.Equal(data, []byte("payload")) {
		t.Error("copied content did not match source")
	}
}
