package acdriver

import (
	"testing"

	"github.com/xcbuild-go/xcbuild/pkg/filesystem/memory"
)

func newFixtureBundle(t *testing.T) *memory.Memory {
	t.Helper()
	fs := memory.New()
	files := map[string]string{
		"/App.xcassets/AppIcon.appiconset/Icon-60.png":   "icon-60-bytes",
		"/App.xcassets/AppIcon.appiconset/Icon-120.png":  "icon-120-bytes",
		"/App.xcassets/Tint.colorset/Contents.json":      "{}",
		"/App.xcassets/Contents.json":                    "{}",
	}
	for file, content := range files {
		if err := fs.CreateDirectory(parentOf(file), true); err != nil {
			t.Fatalf("CreateDirectory(%q) failed: %v", file, err)
		}
		if err := fs.Write(file, []byte(content)); err != nil {
			t.Fatalf("Write(%q) failed: %v", file, err)
		}
	}
	return fs
}

func parentOf(file string) string {
	for i := len(file) - 1; i >= 0; i-- {
		if file[i] == '/' {
			return file[:i]
		}
	}
	return "/"
}

func TestInspectGroupsByAssetSet(t *testing.T) {
	fs := newFixtureBundle(t)
	driver := New(fs)

	manifest, err := driver.Inspect("/App.xcassets")
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}

	if len(manifest.Sets) != 2 {
		t.Fatalf("len(manifest.Sets) = %d, want 2", len(manifest.Sets))
	}

	byName := make(map[string]AssetSet)
	for _, set := range manifest.Sets {
		byName[set.Name] = set
	}

	icon, ok := byName["AppIcon"]
	if !ok {
		t.Fatal("expected AppIcon asset set")
	}
	if icon.Kind != "appiconset" {
		t.Errorf("Kind = %q, want %q", icon.Kind, "appiconset")
	}
	if len(icon.Files) != 2 {
		t.Errorf("len(Files) = %d, want 2", len(icon.Files))
	}
	if icon.TotalBytes == 0 {
		t.Error("expected nonzero TotalBytes")
	}
	if icon.ID == "" {
		t.Error("expected a synthesized ID")
	}

	tint, ok := byName["Tint"]
	if !ok {
		t.Fatal("expected Tint asset set")
	}
	if tint.Kind != "colorset" {
		t.Errorf("Kind = %q, want %q", tint.Kind, "colorset")
	}
}

func TestManifestPlistRoundTrips(t *testing.T) {
	fs := newFixtureBundle(t)
	driver := New(fs)
	manifest, err := driver.Inspect("/App.xcassets")
	if err != nil {
		t.Fatalf("Inspect failed: %v", err)
	}
	data, err := manifest.Plist()
	if err != nil {
		t.Fatalf("Plist failed: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected non-empty plist output")
	}
}

func TestGenerateObjectIDIsUnique(t *testing.T) {
	first := GenerateObjectID()
	second := GenerateObjectID()
	if first == second {
		t.Error("expected distinct synthesized IDs")
	}
}
