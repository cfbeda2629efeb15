package report

import (
	"fmt"
	"io"

	"github.com/samber/lo"
	"github.com/xuri/excelize/v2"

	"partprice/internal/aggregate"
)

const resultsSheet = "Results"

var xlsxHeader = []any{"Part", "Criterion", "Vendor", "Min qty", "Unit cost", "Stock", "Lead time (days)", "URL"} //nolint:gochecknoglobals

// WriteXLSX writes results as a single-sheet workbook, one row per part and
// criterion. Unit costs are stored as numbers so the sheet can sum them.
func WriteXLSX(w io.Writer, partNumbers []string, results map[string]aggregate.Result) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), resultsSheet); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}
	if err := f.SetSheetRow(resultsSheet, "A1", &xlsxHeader); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	row := 2
	for _, pn := range lo.Uniq(partNumbers) {
		res, ok := results[pn]
		if !ok {
			continue
		}
		for _, sel := range []struct {
			criterion string
			s         aggregate.Selection
		}{
			{criterionCheapest, res.Cheapest},
			{criterionLeastAmount, res.LeastAmount},
		} {
			cell, err := excelize.CoordinatesToCellName(1, row)
			if err != nil {
				return err
			}
			values := []any{
				pn,
				sel.criterion,
				sel.s.Vendor,
				sel.s.Break.MinimumQuantity,
				sel.s.Break.UnitCost.InexactFloat64(),
				sel.s.Offer.StockQuantity,
				nil,
				sel.s.Offer.ProductURL,
			}
			if d := sel.s.Offer.LeadTimeDays; d != nil {
				values[6] = *d
			}
			if err := f.SetSheetRow(resultsSheet, cell, &values); err != nil {
				return fmt.Errorf("writing row %d: %w", row, err)
			}
			row++
		}
	}

	if err := f.SetPanes(resultsSheet, &excelize.Panes{
		Freeze:      true,
		YSplit:      1,
		TopLeftCell: "A2",
		ActivePane:  "bottomLeft",
	}); err != nil {
		return fmt.Errorf("freezing header: %w", err)
	}

	if _, err := f.WriteTo(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}
