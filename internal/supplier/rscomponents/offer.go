package rscomponents

import (
	"context"
	"fmt"
	"strings"

	"github.com/samber/lo"

	"partprice/internal/supplier"
)

// DefaultUnitMarker identifies listings sold per single piece on the Danish site.
const DefaultUnitMarker = "Leveres Pr. stk."

// Adapter exposes the RS Components storefront as a supplier.Adapter. Lead
// time is not published on the site and is always unknown.
type Adapter struct {
	name       string
	client     *Client
	unitMarker string
	enabled    bool
}

// New returns the RS adapter. unitMarker selects per-piece listings over
// reels and packs; empty uses DefaultUnitMarker.
func New(client *Client, unitMarker string, enabled bool) *Adapter {
	if unitMarker == "" {
		unitMarker = DefaultUnitMarker
	}
	return &Adapter{name: "Rscomponents", client: client, unitMarker: unitMarker, enabled: enabled}
}

func (a *Adapter) Name() string { return a.name }

func (a *Adapter) Offer(ctx context.Context, partNumber string) (supplier.Offer, error) {
	if !a.enabled {
		return supplier.Offer{}, fmt.Errorf("rscomponents: %w", supplier.ErrNotConfigured)
	}

	records, article, err := a.client.Search(ctx, partNumber)
	if err != nil {
		return supplier.Offer{}, fmt.Errorf("rscomponents search: %w", err)
	}

	if article == nil {
		record, ok := lo.Find(records, func(r Record) bool {
			if !strings.Contains(r.UOMMessage, a.unitMarker) {
				return false
			}
			return r.ManufacturerPartNumber == "" || r.ManufacturerPartNumber == partNumber
		})
		if !ok {
			return supplier.Offer{}, fmt.Errorf("rscomponents %s: %w", partNumber, supplier.ErrNoMatch)
		}
		article, err = a.client.Product(ctx, record)
		if err != nil {
			return supplier.Offer{}, fmt.Errorf("rscomponents product: %w", err)
		}
	}

	return supplier.Offer{
		PriceBreaks: lo.Map(article.PriceBreaks, func(p PriceBreak, _ int) supplier.PriceBreak {
			return supplier.PriceBreak{MinimumQuantity: p.Quantity, UnitCost: p.Price}
		}),
		StockQuantity: int(article.ProductAvailability.ProductPageStockVolume),
		ProductURL:    a.client.BaseURL() + "/web" + article.ProductURL,
	}, nil
}
