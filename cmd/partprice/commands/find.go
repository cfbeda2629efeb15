package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"partprice/internal/report"
)

func newFindCmd(root *rootOptions) *cobra.Command {
	var (
		format string
		xlsx   string
	)

	cmd := &cobra.Command{
		Use:   "find PART_NUMBER...",
		Short: "Finds the cheapest offer and the offer needing the fewest units for each part.",
		Args:  cobra.MinimumNArgs(1),
		PreRunE: func(_ *cobra.Command, _ []string) error {
			if format != "json" && format != "table" {
				return fmt.Errorf("unknown format %q, want json or table", format)
			}
			return nil
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			results := root.agg.FindCheapest(cmd.Context(), args)

			out := cmd.OutOrStdout()
			switch format {
			case "table":
				report.WriteResultsTable(out, args, results)
			default:
				if err := report.WriteJSON(out, results); err != nil {
					return err
				}
			}

			if xlsx == "" {
				return nil
			}
			f, err := os.Create(xlsx)
			if err != nil {
				return fmt.Errorf("creating %s: %w", xlsx, err)
			}
			if err := report.WriteXLSX(f, args, results); err != nil {
				f.Close()
				return err
			}
			return f.Close()
		},
	}

	cmd.Flags().StringVar(&format, "format", "json", "output format: json or table")
	cmd.Flags().StringVar(&xlsx, "xlsx", "", "also write the results to this Excel workbook")
	return cmd
}
