package regionscli

import (
	"os"

	"github.com/spf13/cobra"

	"location-filter-go/internal/location"
)

// RootCmd returns the regions command tree operating on table.
func RootCmd(table *location.Table) *cobra.Command {
	command := &cobra.Command{
		Use:          "regions",
		Short:        "Inspect the Philippine region table and render the location filter",
		SilenceUsage: true,
	}

	command.AddCommand(listCmd(table))
	command.AddCommand(citiesCmd(table))
	command.AddCommand(lookupCmd(table))
	command.AddCommand(filterCmd(table))
	command.AddCommand(jsonCmd(table))
	return command
}

// Execute runs the regions command against the Philippines table and
// exits non-zero on error.
func Execute() {
	if err := RootCmd(location.Philippines).Execute(); err != nil {
		os.Exit(1)
	}
}
