package xcdriver

import (
	"context"

	"github.com/pkg/errors"

	"github.com/xcbuild-go/xcbuild/pkg/filesystem"
	"github.com/xcbuild-go/xcbuild/pkg/filesystem/path"
	"github.com/xcbuild-go/xcbuild/pkg/logging"
	"github.com/xcbuild-go/xcbuild/pkg/pbx"
)

// Driver executes targets from a decoded project against a filesystem.
type Driver struct {
	// filesystem is the backend against which all file operations are
	// performed. It may be a physical or in-memory implementation.
	filesystem filesystem.Filesystem
	// project is the decoded .pbxproj document that targets are resolved
	// from.
	project *pbx.Project
	// sourceRoot is the path to the project's source tree, against which
	// build phase file references are resolved.
	sourceRoot string
	// destinationRoot is the path under which build products are
	// written and from which they're removed on a clean.
	destinationRoot string
	// logger is used to report per-phase progress. It may be nil.
	logger *logging.Logger
}

// New creates a driver for the specified project, rooted at sourceRoot for
// inputs and destinationRoot for build products.
func New(fs filesystem.Filesystem, project *pbx.Project, sourceRoot, destinationRoot string, logger *logging.Logger) *Driver {
	return &Driver{
		filesystem:      fs,
		project:         project,
		sourceRoot:      sourceRoot,
		destinationRoot: destinationRoot,
		logger:          logger,
	}
}

// Build resolves the named target's build phases, in declaration order, and
// executes each in turn, stopping at the first error. It checks ctx between
// phases (but never passes it into the filesystem contract, which has no
// cancellation points of its own).
func (d *Driver) Build(ctx context.Context, target string) error {
	t, err := d.project.Target(target)
	if err != nil {
		return errors.Wrapf(err, "unable to resolve target %q", target)
	}
	phases, err := t.BuildPhases()
	if err != nil {
		return errors.Wrapf(err, "unable to resolve build phases for target %q", target)
	}

	if err := d.filesystem.CreateDirectory(d.destinationRoot, true); err != nil {
		return errors.Wrap(err, "unable to create destination root")
	}

	for i, phase := range phases {
		if err := ctx.Err(); err != nil {
			return errors.Wrap(err, "build cancelled")
		}
		d.logger.Debugf("executing build phase %d/%d (%s)", i+1, len(phases), phase.ID())
		if err := phase.Execute(d.filesystem, d.sourceRoot, d.destinationRoot); err != nil {
			return errors.Wrapf(err, "build phase %q failed", phase.ID())
		}
	}

	return nil
}

// Clean removes the target's output directory. The target itself still has
// to resolve (an unknown target is an error), even though cleaning doesn't
// otherwise depend on its build phases, so that "clean" and "build" reject
// the same invalid target names.
func (d *Driver) Clean(target string) error {
	if _, err := d.project.Target(target); err != nil {
		return errors.Wrapf(err, "unable to resolve target %q", target)
	}
	if !d.filesystem.Exists(d.destinationRoot) {
		return nil
	}
	if err := d.filesystem.RemoveDirectory(d.destinationRoot, true); err != nil {
		return errors.Wrap(err, "unable to remove destination root")
	}
	return nil
}

// DestinationRoot returns the driver's configured output directory.
func (d *Driver) DestinationRoot() string {
	return path.Normalize(d.destinationRoot)
}
