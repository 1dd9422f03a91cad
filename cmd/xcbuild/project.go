package main

import (
	"github.com/pkg/errors"

	"github.com/xcbuild-go/xcbuild/pkg/filesystem"
	"github.com/xcbuild-go/xcbuild/pkg/filesystem/path"
	"github.com/xcbuild-go/xcbuild/pkg/filesystem/physical"
	"github.com/xcbuild-go/xcbuild/pkg/pbx"
)

// loadProject reads and decodes the .pbxproj file at projectPath, which may
// either name the property list file directly or name the enclosing
// .xcodeproj directory (in which case "project.pbxproj" is appended).
func loadProject(fs filesystem.Filesystem, projectPath string) (*pbx.Project, error) {
	resolved := projectPath
	if fs.IsDirectory(resolved) {
		resolved = path.Join(resolved, "project.pbxproj")
	}

	data, err := fs.Read(resolved, 0, -1)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to read project file %q", resolved)
	}

	project, err := pbx.Decode(data)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to decode project file %q", resolved)
	}

	return project, nil
}

// newPhysicalFilesystem is a thin indirection point so commands don't import
// the physical package directly; it's the seam a test could replace with an
// in-memory filesystem.
func newPhysicalFilesystem() filesystem.Filesystem {
	return physical.New()
}
