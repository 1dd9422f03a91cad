package pbx

import (
	"github.com/bmatcuk/doublestar/v4"
	"github.com/pkg/errors"

	"github.com/xcbuild-go/xcbuild/pkg/filesystem"
	"github.com/xcbuild-go/xcbuild/pkg/filesystem/path"
)

// BuildPhase is a single ordered step of a target's build: copying files,
// compiling sources, processing resources, or running a shell script.
// Resolution of file references against an actual directory tree happens
// only when Execute is called, never at decode time.
type BuildPhase interface {
	// ID returns the build phase's object ID.
	ID() string
	// Execute performs the build phase's effect, resolving any file
	// references against sourceRoot and writing results under
	// destinationRoot.
	Execute(fs filesystem.Filesystem, sourceRoot, destinationRoot string) error
}

func newBuildPhase(id string, object rawObject) (BuildPhase, error) {
	switch object.isa() {
	case "PBXCopyFilesBuildPhase":
		return &CopyFilesBuildPhase{
			id:              id,
			destinationPath: object.stringField("dstPath"),
			files:           object.stringSliceField("files"),
		}, nil
	case "PBXSourcesBuildPhase":
		return &SourcesBuildPhase{
			id:    id,
			files: object.stringSliceField("files"),
		}, nil
	case "PBXResourcesBuildPhase":
		return &ResourcesBuildPhase{
			id:       id,
			patterns: object.stringSliceField("files"),
		}, nil
	case "PBXShellScriptBuildPhase":
		return &ShellScriptBuildPhase{
			id:     id,
			script: object.stringField("shellScript"),
		}, nil
	default:
		return nil, errors.Errorf("unsupported build phase isa %q", object.isa())
	}
}

// CopyFilesBuildPhase copies a literal list of files from the source tree
// into a destination subdirectory.
type CopyFilesBuildPhase struct {
	id              string
	destinationPath string
	files           []string
}

// ID implements BuildPhase.ID.
func (p *CopyFilesBuildPhase) ID() string { return p.id }

// Execute implements BuildPhase.Execute.
func (p *CopyFilesBuildPhase) Execute(fs filesystem.Filesystem, sourceRoot, destinationRoot string) error {
	destinationDirectory := path.Join(destinationRoot, p.destinationPath)
	if err := fs.CreateDirectory(destinationDirectory, true); err != nil {
		return errors.Wrap(err, "unable to create destination directory")
	}
	for _, file := range p.files {
		source := path.Join(sourceRoot, file)
		destination := path.Join(destinationDirectory, path.GetBaseName(file))
		if err := fs.CopyFile(source, destination); err != nil {
			return errors.Wrapf(err, "unable to copy %q", file)
		}
	}
	return nil
}

// SourcesBuildPhase lists the source files that would be compiled for a
// target. This toolchain doesn't drive an actual compiler, so execution is
// limited to verifying that every listed source exists, which is enough to
// catch a stale or misconfigured project file.
type SourcesBuildPhase struct {
	id    string
	files []string
}

// ID implements BuildPhase.ID.
func (p *SourcesBuildPhase) ID() string { return p.id }

// Execute implements BuildPhase.Execute.
func (p *SourcesBuildPhase) Execute(fs filesystem.Filesystem, sourceRoot, destinationRoot string) error {
	for _, file := range p.files {
		source := path.Join(sourceRoot, file)
		if !fs.IsFile(source) {
			return errors.Errorf("source file %q does not exist", file)
		}
	}
	return nil
}

// ResourcesBuildPhase copies resource files into the bundle's top level.
// Unlike CopyFilesBuildPhase, its entries are frequently doublestar glob
// patterns rather than literal paths, so they're matched against every file
// under sourceRoot rather than resolved directly.
type ResourcesBuildPhase struct {
	id       string
	patterns []string
}

// ID implements BuildPhase.ID.
func (p *ResourcesBuildPhase) ID() string { return p.id }

// Execute implements BuildPhase.Execute.
func (p *ResourcesBuildPhase) Execute(fs filesystem.Filesystem, sourceRoot, destinationRoot string) error {
	var names []string
	if err := fs.ReadDirectory(sourceRoot, true, func(name string) {
		if fs.IsFile(path.Join(sourceRoot, name)) {
			names = append(names, name)
		}
	}); err != nil {
		return errors.Wrap(err, "unable to enumerate source tree")
	}

	for _, pattern := range p.patterns {
		matched := false
		for _, name := range names {
			ok, err := doublestar.Match(pattern, name)
			if err != nil {
				return errors.Wrapf(err, "invalid resource pattern %q", pattern)
			}
			if !ok {
				continue
			}
			matched = true
			destination := path.Join(destinationRoot, path.GetBaseName(name))
			if err := fs.CopyFile(path.Join(sourceRoot, name), destination); err != nil {
				return errors.Wrapf(err, "unable to copy resource %q", name)
			}
		}
		if !matched {
			return errors.Errorf("resource pattern %q matched no files", pattern)
		}
	}
	return nil
}

// ShellScriptBuildPhase records a script configured in the project. Its
// effect isn't expressible through the filesystem contract alone, and
// spawning the project's configured subprocess is outside what this
// toolchain drives, so Execute never runs it.
type ShellScriptBuildPhase struct {
	id     string
	script string
}

// ID implements BuildPhase.ID.
func (p *ShellScriptBuildPhase) ID() string { return p.id }

// Script returns the shell script text recorded for this phase.
func (p *ShellScriptBuildPhase) Script() string { return p.script }

// Execute implements BuildPhase.Execute. It always returns
// ErrShellScriptNotExecuted: build phases ahead of this one in a target
// still run normally, but this toolchain does not spawn subprocesses.
func (p *ShellScriptBuildPhase) Execute(fs filesystem.Filesystem, sourceRoot, destinationRoot string) error {
	return ErrShellScriptNotExecuted
}

var (
	_ BuildPhase = (*CopyFilesBuildPhase)(nil)
	_ BuildPhase = (*SourcesBuildPhase)(nil)
	_ BuildPhase = (*ResourcesBuildPhase)(nil)
	_ BuildPhase = (*ShellScriptBuildPhase)(nil)
)
