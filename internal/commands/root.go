// Package commands wires the glbridge CLI.
package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/glbridge-dev/glbridge/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "glbridge",
		Short:   "Generate I17 general-ledger entries from measurement facts",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newGenerateCommand())

	return rootCmd
}
