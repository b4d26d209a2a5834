package cli

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"
)

func (a *App) newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the routing table",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(tw, "METHOD\tPATTERN\tNAME\tDESCRIPTION")
			for _, rt := range a.Registry.All() {
				fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", rt.Method(), rt.Pattern(), rt.Name(), rt.Synopsis())
			}
			return tw.Flush()
		},
	}
}
