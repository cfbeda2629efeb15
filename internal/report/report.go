// Package report renders aggregation results for people and spreadsheets.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/jedib0t/go-pretty/v6/table"
	jsoniter "github.com/json-iterator/go"
	"github.com/samber/lo"

	"partprice/internal/aggregate"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const (
	criterionCheapest    = "cheapest"
	criterionLeastAmount = "least_amount"
)

// WriteJSON writes v as indented JSON.
func WriteJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encoding json: %w", err)
	}
	return nil
}

// WriteResultsTable prints two rows per priced part, in the order of
// partNumbers. Parts without a result get a single placeholder row.
func WriteResultsTable(w io.Writer, partNumbers []string, results map[string]aggregate.Result) {
	t := newTable(w)
	t.AppendHeader(table.Row{"Part", "Criterion", "Vendor", "Min qty", "Unit cost", "Stock", "Lead time", "URL"})

	for _, pn := range lo.Uniq(partNumbers) {
		res, ok := results[pn]
		if !ok {
			t.AppendRow(table.Row{pn, "-", "no offers", "", "", "", "", ""})
			continue
		}
		t.AppendRow(selectionRow(pn, criterionCheapest, res.Cheapest))
		t.AppendRow(selectionRow(pn, criterionLeastAmount, res.LeastAmount))
		t.AppendSeparator()
	}
	t.Render()
}

// WriteOffersTable prints every price break each vendor returned for pn.
func WriteOffersTable(w io.Writer, pn string, offers []aggregate.VendorOffer) {
	t := newTable(w)
	t.SetTitle(pn)
	t.AppendHeader(table.Row{"Vendor", "Min qty", "Unit cost", "Stock", "Lead time", "URL"})

	for _, vo := range offers {
		if vo.Offer.Empty() {
			t.AppendRow(table.Row{vo.Vendor, "", "no offer", "", "", ""})
			t.AppendSeparator()
			continue
		}
		for i, pb := range vo.Offer.PriceBreaks {
			if i == 0 {
				t.AppendRow(table.Row{vo.Vendor, pb.MinimumQuantity, pb.UnitCost.String(),
					vo.Offer.StockQuantity, leadTime(vo.Offer.LeadTimeDays), vo.Offer.ProductURL})
				continue
			}
			t.AppendRow(table.Row{"", pb.MinimumQuantity, pb.UnitCost.String(), "", "", ""})
		}
		t.AppendSeparator()
	}
	t.Render()
}

func newTable(w io.Writer) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleRounded)
	return t
}

func selectionRow(pn, criterion string, s aggregate.Selection) table.Row {
	return table.Row{
		pn,
		criterion,
		s.Vendor,
		s.Break.MinimumQuantity,
		s.Break.UnitCost.String(),
		s.Offer.StockQuantity,
		leadTime(s.Offer.LeadTimeDays),
		s.Offer.ProductURL,
	}
}

func leadTime(days *int) string {
	if days == nil {
		return "unknown"
	}
	return strconv.Itoa(*days) + " days"
}
