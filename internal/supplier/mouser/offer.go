package mouser

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"partprice/internal/supplier"
)

// endOfLifeStatuses are LifecycleStatus values that disqualify a part.
var endOfLifeStatuses = []string{"obsolete", "end of life", "eol", "not recommended for new designs", "nrnd"}

// Adapter exposes Mouser keyword search as a supplier.Adapter.
type Adapter struct {
	name    string
	client  *Client
	records int
}

// New returns the Mouser adapter. records is the number of hits requested per lookup.
func New(client *Client, records int) *Adapter {
	return &Adapter{name: "Mouser", client: client, records: records}
}

func (a *Adapter) Name() string { return a.name }

func (a *Adapter) Offer(ctx context.Context, partNumber string) (supplier.Offer, error) {
	parts, err := a.client.SearchByKeyword(ctx, partNumber, a.records)
	if err != nil {
		return supplier.Offer{}, fmt.Errorf("mouser: %w", err)
	}

	part, ok := lo.Find(parts, func(p Part) bool { return p.ManufacturerPartNumber == partNumber })
	if !ok {
		return supplier.Offer{}, fmt.Errorf("mouser %s: %w", partNumber, supplier.ErrNoMatch)
	}
	if endOfLife(part.LifecycleStatus) {
		return supplier.Offer{}, fmt.Errorf("mouser %s is %q: %w", partNumber, *part.LifecycleStatus, supplier.ErrNoMatch)
	}

	breaks := make([]supplier.PriceBreak, 0, len(part.PriceBreaks))
	for _, pb := range part.PriceBreaks {
		cost, err := supplier.ParseLocalizedPrice(pb.Price)
		if err != nil {
			return supplier.Offer{}, fmt.Errorf("mouser %s: price %q: %w", partNumber, pb.Price, err)
		}
		breaks = append(breaks, supplier.PriceBreak{MinimumQuantity: pb.Quantity, UnitCost: cost.Round(2)})
	}

	offer := supplier.Offer{
		PriceBreaks: breaks,
		ProductURL:  part.ProductDetailURL,
	}
	// "None" or an empty label means nothing on the shelf.
	if stock, ok := supplier.LeadingInt(part.Availability); ok {
		offer.StockQuantity = stock
	}
	if days, ok := supplier.LeadingInt(part.LeadTime); ok {
		offer.LeadTimeDays = supplier.Days(days)
	}
	return offer, nil
}

func endOfLife(status *string) bool {
	if status == nil {
		return false
	}
	s := strings.ToLower(strings.TrimSpace(*status))
	return lo.Contains(endOfLifeStatuses, s)
}
