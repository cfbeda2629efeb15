package digikey

import (
	"context"
	"fmt"

	"github.com/samber/lo"

	"partprice/internal/supplier"
)

// Adapter exposes Digi-Key product details as a supplier.Adapter.
type Adapter struct {
	name   string
	client *Client
}

func New(client *Client) *Adapter {
	return &Adapter{name: "Digikey", client: client}
}

func (a *Adapter) Name() string { return a.name }

func (a *Adapter) Offer(ctx context.Context, partNumber string) (supplier.Offer, error) {
	product, err := a.client.ProductDetails(ctx, partNumber)
	if err != nil {
		return supplier.Offer{}, fmt.Errorf("digikey %s: %w", partNumber, err)
	}
	if product.ManufacturerPartNumber != partNumber {
		return supplier.Offer{}, fmt.Errorf("digikey %s: got %s: %w", partNumber, product.ManufacturerPartNumber, supplier.ErrNoMatch)
	}

	offer := supplier.Offer{
		PriceBreaks: lo.Map(product.StandardPricing, func(p PricingBreak, _ int) supplier.PriceBreak {
			return supplier.PriceBreak{MinimumQuantity: p.BreakQuantity, UnitCost: p.UnitPrice}
		}),
		StockQuantity: max(product.QuantityAvailable, 0),
		ProductURL:    product.ProductURL,
	}
	// Digi-Key quotes manufacturer lead time in weeks ("12 Weeks").
	if weeks, ok := supplier.LeadingInt(product.ManufacturerLeadWeeks); ok {
		offer.LeadTimeDays = supplier.Days(weeks * 7)
	}
	return offer, nil
}
