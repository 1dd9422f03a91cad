package main

import (
	"context"
	"strings"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xcbuild-go/xcbuild/cmd"
	"github.com/xcbuild-go/xcbuild/pkg/filesystem/path"
	"github.com/xcbuild-go/xcbuild/pkg/logging"
	"github.com/xcbuild-go/xcbuild/pkg/xcdriver"
)

func buildMain(command *cobra.Command, arguments []string) error {
	if buildConfiguration.project == "" {
		return errors.New("a project must be specified with --project")
	}
	if buildConfiguration.target == "" {
		return errors.New("a target must be specified with --target")
	}
	if buildConfiguration.derivedData == "" {
		return errors.New("a destination must be specified with --derived-data")
	}

	fs := newPhysicalFilesystem()

	project, err := loadProject(fs, buildConfiguration.project)
	if err != nil {
		return err
	}

	sourceRoot := buildConfiguration.sourceRoot
	if sourceRoot == "" {
		sourceRoot = projectSourceRoot(buildConfiguration.project)
	}

	logger := logging.RootLogger.Sublogger("build")
	driver := xcdriver.New(fs, project, sourceRoot, buildConfiguration.derivedData, logger)

	if err := driver.Build(context.Background(), buildConfiguration.target); err != nil {
		return errors.Wrap(err, "build failed")
	}

	return nil
}

// projectSourceRoot derives a default source root from a project path: the
// directory enclosing the .xcodeproj bundle (or the project.pbxproj file
// itself, if that's what was given directly).
func projectSourceRoot(projectPath string) string {
	directory := path.GetDirectoryName(projectPath)
	if strings.HasSuffix(directory, ".xcodeproj") {
		return path.GetDirectoryName(directory)
	}
	return directory
}

var buildCommand = &cobra.Command{
	Use:   "build",
	Short: "Build a target from an Xcode project",
	Run:   cmd.Mainify(buildMain),
}

var buildConfiguration struct {
	// help indicates whether or not help information should be shown.
	help bool
	// project is the path to the .xcodeproj directory or project.pbxproj
	// file to build.
	project string
	// target is the name of the target to build.
	target string
	// derivedData is the directory build products are written to.
	derivedData string
	// sourceRoot overrides the directory build phase file references are
	// resolved against. If empty, it's derived from project.
	sourceRoot string
}

func init() {
	flags := buildCommand.Flags()
	flags.SortFlags = false

	flags.BoolVarP(&buildConfiguration.help, "help", "h", false, "Show help information")
	flags.StringVar(&buildConfiguration.project, "project", "", "Path to the .xcodeproj directory or project.pbxproj file")
	flags.StringVar(&buildConfiguration.target, "target", "", "Name of the target to build")
	flags.StringVar(&buildConfiguration.derivedData, "derived-data", "", "Path to the directory build products should be written to")
	flags.StringVar(&buildConfiguration.sourceRoot, "source-root", "", "Override the directory build phases resolve file references against")
}
