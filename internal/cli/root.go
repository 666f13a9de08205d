// Package cli provides the Cobra command structure for pairlex.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/yaklabco/pairlex/internal/logging"
)

// BuildInfo holds build-time version information.
type BuildInfo struct {
	Version string
	Commit  string
	Date    string
}

// NewRootCommand creates the root pairlex command with all subcommands.
func NewRootCommand(info BuildInfo) *cobra.Command {
	var debug bool
	var color string

	rootCmd := &cobra.Command{
		Use:   "pairlex",
		Short: "A language-aware delimiter scanner for source files",
		Long: `pairlex lexes source files with a language-aware scanner, pairs up
delimiters by nesting depth, and reports the unmatched ones.

The same engine backs editor integrations: bracket highlighting,
jump-to-match, auto-closing of pairs, and indent guides, with
incremental reparsing after every edit.`,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if debug {
				logging.SetLevel("debug")
			}
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags.
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().StringVar(&color, "color", "auto",
		"colorize output: auto, always, never")

	// Add subcommands.
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newLanguagesCommand())
	rootCmd.AddCommand(newVersionCommand(info))

	return rootCmd
}
