package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/xcbuild-go/xcbuild/cmd"
	"github.com/xcbuild-go/xcbuild/cmd/xcbuild/common/templating"
	"github.com/xcbuild-go/xcbuild/pkg/acdriver"
)

func listMain(command *cobra.Command, arguments []string) error {
	template, err := listConfiguration.templateFlags.LoadTemplate()
	if err != nil {
		return errors.Wrap(err, "unable to load template")
	}

	fs := newPhysicalFilesystem()

	switch {
	case listConfiguration.xcassets != "":
		driver := acdriver.New(fs)
		manifest, err := driver.Inspect(listConfiguration.xcassets)
		if err != nil {
			return errors.Wrap(err, "unable to inspect asset catalog")
		}
		if template != nil {
			return template.Execute(os.Stdout, manifest)
		}
		fmt.Print(manifest.Summary())
		return nil
	case listConfiguration.project != "":
		project, err := loadProject(fs, listConfiguration.project)
		if err != nil {
			return err
		}
		names := project.TargetNames()
		if template != nil {
			return template.Execute(os.Stdout, names)
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	default:
		return errors.New("either --project or --xcassets must be specified")
	}
}

var listCommand = &cobra.Command{
	Use:   "list",
	Short: "List targets in a project or asset sets in an asset catalog",
	Run:   cmd.Mainify(listMain),
}

var listConfiguration struct {
	// help indicates whether or not help information should be shown.
	help bool
	// project is the path to a project to list targets from.
	project string
	// xcassets is the path to an asset catalog to list asset sets from.
	xcassets string
	// templateFlags stores the flags governing formatted output.
	templateFlags templating.TemplateFlags
}

func init() {
	flags := listCommand.Flags()
	flags.SortFlags = false

	flags.BoolVarP(&listConfiguration.help, "help", "h", false, "Show help information")
	flags.StringVar(&listConfiguration.project, "project", "", "Path to the .xcodeproj directory or project.pbxproj file")
	flags.StringVar(&listConfiguration.xcassets, "xcassets", "", "Path to an .xcassets bundle")
	listConfiguration.templateFlags.Register(flags)
}
