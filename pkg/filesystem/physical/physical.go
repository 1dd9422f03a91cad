// Package physical implements the filesystem contract against the host
// operating system using POSIX primitives (or their nearest Windows
// equivalents). It is the backend wired into production drivers; tests and
// in-process tooling use the sibling memory package instead.
package physical

import (
	"github.com/xcbuild-go/xcbuild/pkg/filesystem"
)

// Physical is a filesystem.Filesystem implementation backed by the host
// operating system. A Physical value accepts both absolute and relative
// paths, interpreting relative paths against the process's current working
// directory, exactly as the underlying host calls do.
type Physical struct {
	*filesystem.Defaults
}

// New creates a filesystem backed by the host operating system.
func New() *Physical {
	p := &Physical{}
	p.Defaults = filesystem.NewDefaults(p)
	return p
}

// verify that Physical satisfies the full contract.
var _ filesystem.Filesystem = (*Physical)(nil)
