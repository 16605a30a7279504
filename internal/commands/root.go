package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/collate-dev/collate/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "collate",
		Short:   "Consolidate transactions from email and exports into one duplicate-flagged ledger",
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", buildinfo.Version, buildinfo.Commit, buildinfo.Date),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newScanCommand())
	rootCmd.AddCommand(newConsolidateCommand())

	return rootCmd
}
