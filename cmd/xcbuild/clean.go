package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xcbuild-go/xcbuild/cmd"
	"github.com/xcbuild-go/xcbuild/pkg/logging"
	"github.com/xcbuild-go/xcbuild/pkg/xcdriver"
)

func cleanMain(command *cobra.Command, arguments []string) error {
	if cleanConfiguration.project == "" {
		return errors.New("a project must be specified with --project")
	}
	if cleanConfiguration.target == "" {
		return errors.New("a target must be specified with --target")
	}
	if cleanConfiguration.derivedData == "" {
		return errors.New("a destination must be specified with --derived-data")
	}

	fs := newPhysicalFilesystem()

	project, err := loadProject(fs, cleanConfiguration.project)
	if err != nil {
		return err
	}

	sourceRoot := cleanConfiguration.sourceRoot
	if sourceRoot == "" {
		sourceRoot = projectSourceRoot(cleanConfiguration.project)
	}

	logger := logging.RootLogger.Sublogger("clean")
	driver := xcdriver.New(fs, project, sourceRoot, cleanConfiguration.derivedData, logger)

	if err := driver.Clean(cleanConfiguration.target); err != nil {
		return errors.Wrap(err, "clean failed")
	}

	return nil
}

var cleanCommand = &cobra.Command{
	Use:   "clean",
	Short: "Remove a target's build products",
	Run:   cmd.Mainify(cleanMain),
}

var cleanConfiguration struct {
	// help indicates whether or not help information should be shown.
	help bool
	// project is the path to the .xcodeproj directory or project.pbxproj
	// file to clean.
	project string
	// target is the name of the target to clean.
	target string
	// derivedData is the directory build products are removed from.
	derivedData string
	// sourceRoot overrides the source root handed to the driver, as for
	// build. Cleaning does not read it: the target is resolved from the
	// project alone and only the destination directory is removed.
	sourceRoot string
}

func init() {
	flags := cleanCommand.Flags()
	flags.SortFlags = false

	flags.BoolVarP(&cleanConfiguration.help, "help", "h", false, "Show help information")
	flags.StringVar(&cleanConfiguration.project, "project", "", "Path to the .xcodeproj directory or project.pbxproj file")
	flags.StringVar(&cleanConfiguration.target, "target", "", "Name of the target to clean")
	flags.StringVar(&cleanConfiguration.derivedData, "derived-data", "", "Path to the directory build products should be removed from")
	flags.StringVar(&cleanConfiguration.sourceRoot, "source-root", "", "Override the directory build phases resolve file references against")
}
