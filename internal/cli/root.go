// artifactcheck - Structural compliance checks for agent-generated Markdown
// Author: Jonathan Vella
// Source: https://github.com/jonathan-vella/rebel-ops

// Package cli provides the Cobra commands of artifactcheck: a full repository
// validation run (the default), ad hoc checks of individual artifacts, a
// registry listing, and version information.
package cli

import (
	"os"

	"github.com/jonathan-vella/rebel-ops/internal/cli/shared"
	"github.com/jonathan-vella/rebel-ops/internal/config"
	apperrors "github.com/jonathan-vella/rebel-ops/internal/errors"
	"github.com/jonathan-vella/rebel-ops/internal/validation"
	"github.com/spf13/cobra"
)

// Command group IDs for organizing help output (re-exported from shared)
const (
	GroupChecks        = shared.GroupChecks
	GroupConfiguration = shared.GroupConfiguration
)

// NewRootCmd builds the artifactcheck command tree.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "artifactcheck",
		Short: "Structural compliance checks for agent-generated Markdown",
		Long: `artifactcheck validates Markdown artifacts against their canonical templates.

It checks that every template carries its required H2 headings in order,
that producing agents link their templates instead of embedding skeletons,
that standards documents point at the templates, and that generated
artifacts under agent-output/ follow the same structure.

Diagnostics use the GitHub Actions annotation format. The exit code is 1
when any error was reported and 0 otherwise.`,
		Example: `  # Validate the repository in the current directory
  artifactcheck

  # Treat every artifact as standard strictness
  STRICTNESS=standard artifactcheck validate

  # Check individual artifacts
  artifactcheck check agent-output/contoso/01-requirements.md

  # Dump the built-in registry as a starting point for a custom one
  artifactcheck schemas --format yaml > registry.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          noArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runValidate(cmd)
		},
	}

	rootCmd.SetFlagErrorFunc(flagError)

	rootCmd.AddGroup(&cobra.Group{ID: GroupChecks, Title: "Checks:"})
	rootCmd.AddGroup(&cobra.Group{ID: GroupConfiguration, Title: "Configuration:"})
	rootCmd.SetHelpCommandGroupID(GroupConfiguration)
	rootCmd.SetCompletionCommandGroupID(GroupConfiguration)

	// Global flags
	rootCmd.PersistentFlags().StringP("config", "c", config.DefaultConfigPath, "Path to config file")
	rootCmd.PersistentFlags().String("root", ".", "Repository root that all paths are relative to")
	rootCmd.PersistentFlags().BoolP("debug", "d", false, "Enable debug logging on stderr")
	rootCmd.PersistentFlags().StringP("strictness", "s", "", "Override strictness for every artifact (standard|relaxed)")
	rootCmd.PersistentFlags().String("registry", "", "Load artifact schemas from a YAML file instead of the built-in registry")
	rootCmd.PersistentFlags().String("output-dir", validation.DefaultOutputDir, "Directory searched for generated artifacts")
	rootCmd.PersistentFlags().StringSlice("exclude", nil, "Skip discovered artifacts matching a doublestar glob (repeatable)")
	rootCmd.PersistentFlags().Bool("no-progress", false, "Disable the spinner on interactive terminals")

	rootCmd.AddCommand(newValidateCmd())
	rootCmd.AddCommand(newCheckCmd())
	rootCmd.AddCommand(newSchemasCmd())
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// noArgs rejects positional arguments with an Argument CLIError.
func noArgs(cmd *cobra.Command, args []string) error {
	if len(args) > 0 {
		return apperrors.UnexpectedArgs(cmd.CommandPath(), cmd.UseLine(), args)
	}
	return nil
}

// flagError is inherited by every subcommand.
func flagError(cmd *cobra.Command, err error) error {
	return apperrors.InvalidFlag(cmd.CommandPath(), cmd.UseLine(), err)
}

// Execute runs the root command and prints any error that is more than an
// exit status.
func Execute() error {
	err := NewRootCmd().Execute()
	if err != nil && !shared.IsExitError(err) {
		apperrors.PrintError(os.Stderr, err)
	}
	return err
}
