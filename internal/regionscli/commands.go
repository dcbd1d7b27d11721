package regionscli

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"location-filter-go/internal/location"
)

func listCmd(table *location.Table) *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List regions with their cities",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tablewriter.NewWriter(cmd.OutOrStdout())
			tw.Header("Region", "Cities", "Names")
			for _, r := range table.Regions() {
				if err := tw.Append([]string{r.Name, strconv.Itoa(len(r.Cities)), strings.Join(r.Cities, ", ")}); err != nil {
					return errors.WithStack(err)
				}
			}
			return errors.WithStack(tw.Render())
		},
	}
}

func citiesCmd(table *location.Table) *cobra.Command {
	return &cobra.Command{
		Use:   "cities <region>",
		Short: "Print the cities of a region in display order",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cities, err := table.Cities(args[0])
			if err != nil {
				return err
			}
			for _, city := range cities {
				fmt.Fprintln(cmd.OutOrStdout(), city)
			}
			return nil
		},
	}
}

func lookupCmd(table *location.Table) *cobra.Command {
	return &cobra.Command{
		Use:   "lookup <city>",
		Short: "Print every region that lists a city",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			regions, err := table.RegionsForCity(args[0])
			if err != nil {
				return err
			}
			for _, region := range regions {
				fmt.Fprintln(cmd.OutOrStdout(), region)
			}
			return nil
		},
	}
}

type filterCmdFlags struct {
	name         string
	defaultLabel string
}

func filterCmd(table *location.Table) *cobra.Command {
	flags := filterCmdFlags{}
	command := &cobra.Command{
		Use:   "filter",
		Short: "Render the populated location filter as HTML",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel := location.NewHTMLSelect(flags.name, flags.defaultLabel)
			if err := table.Populate(sel); err != nil {
				return err
			}
			if err := sel.Render(cmd.OutOrStdout()); err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	command.Flags().StringVar(&flags.name, "name", "location", "name and id of the select element")
	command.Flags().StringVar(&flags.defaultLabel, "default", location.DefaultOptionLabel, "label of the default option")
	return command
}

func jsonCmd(table *location.Table) *cobra.Command {
	return &cobra.Command{
		Use:   "json",
		Short: "Print the table as JSON in display order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return errors.WithStack(enc.Encode(table))
		},
	}
}
