package commands

import (
	"github.com/spf13/cobra"

	"partprice/internal/report"
)

func newOffersCmd(root *rootOptions) *cobra.Command {
	var asTable bool

	cmd := &cobra.Command{
		Use:   "offers PART_NUMBER",
		Short: "Prints every vendor's normalized offer for a part.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			offers := root.agg.GetOffers(cmd.Context(), args[0])
			if asTable {
				report.WriteOffersTable(cmd.OutOrStdout(), args[0], offers)
				return nil
			}
			return report.WriteJSON(cmd.OutOrStdout(), offers)
		},
	}

	cmd.Flags().BoolVar(&asTable, "table", false, "print a table instead of JSON")
	return cmd
}
