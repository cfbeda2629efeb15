package farnell

import (
	"context"
	"fmt"
	"net/url"

	"github.com/samber/lo"

	"partprice/internal/supplier"
)

// Adapter exposes the element14 catalog as a supplier.Adapter.
type Adapter struct {
	name    string
	client  *Client
	results int
}

// New returns the Farnell adapter. results is the number of search hits
// requested per lookup; the exact match is picked from them.
func New(client *Client, results int) *Adapter {
	return &Adapter{name: "Farnell", client: client, results: results}
}

func (a *Adapter) Name() string { return a.name }

func (a *Adapter) Offer(ctx context.Context, partNumber string) (supplier.Offer, error) {
	products, err := a.client.SearchByManufacturerPartNumber(ctx, partNumber, a.results)
	if err != nil {
		return supplier.Offer{}, fmt.Errorf("farnell: %w", err)
	}

	product, ok := lo.Find(products, func(p Product) bool {
		return p.TranslatedManufacturerPartNumber == partNumber
	})
	if !ok {
		return supplier.Offer{}, fmt.Errorf("farnell %s: %w", partNumber, supplier.ErrNoMatch)
	}

	offer := supplier.Offer{
		PriceBreaks: lo.Map(product.Prices, func(p Price, _ int) supplier.PriceBreak {
			return supplier.PriceBreak{MinimumQuantity: p.From, UnitCost: p.Cost}
		}),
		StockQuantity: max(product.Stock.Level, 0),
		ProductURL:    fmt.Sprintf("https://%s/search?st=%s", a.client.Store(), url.QueryEscape(partNumber)),
	}
	if product.Stock.LeastLeadTime != nil {
		offer.LeadTimeDays = supplier.Days(*product.Stock.LeastLeadTime)
	}
	return offer, nil
}
