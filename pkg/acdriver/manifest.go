package acdriver

import (
	"fmt"
	"sort"
	"strings"

	humanize "github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"howett.net/plist"

	"github.com/xcbuild-go/xcbuild/pkg/encoding"
	"github.com/xcbuild-go/xcbuild/pkg/filesystem"
	"github.com/xcbuild-go/xcbuild/pkg/filesystem/path"
)

// assetSetSuffixes maps the directory suffixes that mark an asset catalog
// entry to the kind name recorded in the manifest.
var assetSetSuffixes = map[string]string{
	".imageset":   "imageset",
	".colorset":   "colorset",
	".appiconset": "appiconset",
	".dataset":    "dataset",
	".symbolset":  "symbolset",
}

// AssetSet describes one asset catalog entry and the member files found
// inside it.
type AssetSet struct {
	// ID is a randomly generated identifier for the entry (see
	// GenerateObjectID), new on every Inspect; it has no relationship to any
	// ID Xcode itself would assign.
	ID string `plist:"id"`
	// Name is the entry's name, without its kind suffix (e.g. "AppIcon" for
	// "AppIcon.appiconset").
	Name string `plist:"name"`
	// Kind is the entry's asset type, derived from its directory suffix.
	Kind string `plist:"kind"`
	// Files lists the entry's member file names, relative to the entry's own
	// directory.
	Files []string `plist:"files"`
	// TotalBytes is the combined size of every member file.
	TotalBytes int64 `plist:"totalBytes"`
}

// Manifest is the bill of materials produced for an .xcassets bundle.
type Manifest struct {
	// BundlePath is the path to the bundle the manifest was built from, as
	// passed to Inspect.
	BundlePath string `plist:"bundlePath"`
	// Sets lists every asset set found in the bundle, ordered by name.
	Sets []AssetSet `plist:"sets"`
}

// Plist serializes the manifest as a property list.
func (m *Manifest) Plist() ([]byte, error) {
	data, err := plist.Marshal(m, plist.XMLFormat)
	if err != nil {
		return nil, errors.Wrap(err, "unable to marshal manifest")
	}
	return data, nil
}

// Summary renders a short, human-readable description of the manifest,
// suitable for printing to a terminal.
func (m *Manifest) Summary() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s: %d asset set(s)\n", m.BundlePath, len(m.Sets))
	for _, set := range m.Sets {
		fmt.Fprintf(&b, "  %s (%s): %d file(s), %s\n",
			set.Name, set.Kind, len(set.Files), humanize.Bytes(uint64(set.TotalBytes)))
	}
	return b.String()
}

// Driver walks an asset catalog bundle and produces a Manifest describing
// its contents.
type Driver struct {
	filesystem filesystem.Filesystem
}

// New creates a driver that operates against the specified filesystem.
func New(fs filesystem.Filesystem) *Driver {
	return &Driver{filesystem: fs}
}

// Inspect walks the bundle at bundlePath and returns its manifest.
func (d *Driver) Inspect(bundlePath string) (*Manifest, error) {
	if !d.filesystem.IsDirectory(bundlePath) {
		return nil, errors.Errorf("%q is not a directory", bundlePath)
	}

	sets := make(map[string]*AssetSet)
	order := make([]string, 0)

	err := d.filesystem.ReadDirectory(bundlePath, true, func(name string) {
		if !d.filesystem.IsFile(path.Join(bundlePath, name)) {
			return
		}

		components := path.Split(name)
		setIndex := -1
		kind := ""
		for i, component := range components {
			for suffix, k := range assetSetSuffixes {
				if strings.HasSuffix(component, suffix) {
					setIndex = i
					kind = k
					break
				}
			}
			if setIndex != -1 {
				break
			}
		}
		if setIndex == -1 {
			return
		}

		setDirectory := path.Join(components[:setIndex+1]...)
		setComponent := components[setIndex]
		setName := strings.TrimSuffix(setComponent, "."+kind)
		member := path.Join(components[setIndex+1:]...)
		if member == "" {
			return
		}

		set, ok := sets[setDirectory]
		if !ok {
			set = &AssetSet{
				ID:   GenerateObjectID(),
				Name: setName,
				Kind: kind,
			}
			sets[setDirectory] = set
			order = append(order, setDirectory)
		}
		set.Files = append(set.Files, member)

		content, readErr := d.filesystem.Read(path.Join(bundlePath, name), 0, -1)
		if readErr == nil {
			set.TotalBytes += int64(len(content))
		}
	})
	if err != nil {
		return nil, errors.Wrap(err, "unable to walk asset catalog")
	}

	manifest := &Manifest{BundlePath: bundlePath}
	for _, directory := range order {
		manifest.Sets = append(manifest.Sets, *sets[directory])
	}
	sort.SliceStable(manifest.Sets, func(i, j int) bool {
		return manifest.Sets[i].Name < manifest.Sets[j].Name
	})
	return manifest, nil
}

// GenerateObjectID synthesizes a unique identifier for a newly discovered
// asset catalog entry, distinct from any ID a real Xcode project would
// assign to a decoded object. Each call encodes a fresh random UUID, so the
// same entry gets a different identifier on every call.
func GenerateObjectID() string {
	id := uuid.New()
	return encoding.EncodeBase62(id[:])
}
