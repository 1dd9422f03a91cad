package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"

	"github.com/spf13/cobra"

	"github.com/xcbuild-go/xcbuild/cmd"
	"github.com/xcbuild-go/xcbuild/pkg/meta"
)

func rootMain(command *cobra.Command, arguments []string) {
	// Print version information, if requested.
	if rootConfiguration.version {
		fmt.Println(meta.Version)
		return
	}

	// Print legal information, if requested.
	if rootConfiguration.legal {
		fmt.Print(meta.LegalNotice())
		return
	}

	// Generate bash completion script, if requested.
	if rootConfiguration.bashCompletionScript != "" {
		if err := command.GenBashCompletionFile(rootConfiguration.bashCompletionScript); err != nil {
			cmd.Fatal(errors.Wrap(err, "unable to generate bash completion script"))
		}
		return
	}

	// If no flags were set, then print help information and bail. We don't have
	// to worry about warning about arguments being present here (which would
	// be incorrect usage) because arguments can't even reach this point (they
	// will be mistaken for subcommands and a error will be displayed).
	command.Help()
}

var rootCommand = &cobra.Command{
	Use:   "xcbuild",
	Short: "xcbuild parses Xcode projects and drives their build phases against a pluggable filesystem backend.",
	Run:   rootMain,
}

var rootConfiguration struct {
	help                 bool
	version              bool
	legal                bool
	bashCompletionScript string
}

func init() {
	// Bind flags to configuration. We manually add help to override the default
	// message, but Cobra still implements it automatically.
	flags := rootCommand.Flags()
	flags.BoolVarP(&rootConfiguration.help, "help", "h", false, "Show help information")
	flags.BoolVarP(&rootConfiguration.version, "version", "V", false, "Show version information")
	flags.BoolVarP(&rootConfiguration.legal, "legal", "l", false, "Show legal information")
	flags.StringVar(&rootConfiguration.bashCompletionScript, "generate-bash-completion", "", "Generate bash completion script")
	flags.MarkHidden("generate-bash-completion")

	// Disable Cobra's command sorting behavior. By default, it sorts commands
	// alphabetically in the help output.
	cobra.EnableCommandSorting = false

	// Disable Cobra's use of mousetrap. This breaks invocation from
	// non-console environments on Windows because it tries to enforce that
	// the CLI only be launched from a console.
	cobra.MousetrapHelpText = ""

	// Register commands. We do this here (rather than in individual init
	// functions) so that we can control the order.
	rootCommand.AddCommand(
		buildCommand,
		cleanCommand,
		listCommand,
		versionCommand,
		legalCommand,
	)
}

func main() {
	// Execute the root command.
	if err := rootCommand.Execute(); err != nil {
		os.Exit(1)
	}
}
