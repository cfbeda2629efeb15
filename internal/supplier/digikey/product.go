package digikey

import (
	"context"
	"fmt"
	"net/http"

	"github.com/shopspring/decimal"

	"partprice/internal/supplier"
)

// Product is the subset of a v3 ProductDetails payload used for offers.
type Product struct {
	DigiKeyPartNumber      string         `json:"DigiKeyPartNumber"`
	ManufacturerPartNumber string         `json:"ManufacturerPartNumber"`
	QuantityAvailable      int            `json:"QuantityAvailable"`
	ManufacturerLeadWeeks  string         `json:"ManufacturerLeadWeeks"`
	LeadStatus             string         `json:"LeadStatus"`
	ProductURL             string         `json:"ProductUrl"`
	StandardPricing        []PricingBreak `json:"StandardPricing"`
}

// PricingBreak is one StandardPricing entry.
type PricingBreak struct {
	BreakQuantity int             `json:"BreakQuantity"`
	UnitPrice     decimal.Decimal `json:"UnitPrice"`
	TotalPrice    decimal.Decimal `json:"TotalPrice"`
}

// ProductDetails fetches a single product by part number. A 404 is reported
// as supplier.ErrNoMatch.
func (c *Client) ProductDetails(ctx context.Context, partNumber string) (Product, error) {
	if !c.configured() {
		return Product{}, supplier.ErrNotConfigured
	}

	token, err := c.accessToken(ctx)
	if err != nil {
		return Product{}, err
	}

	var product Product
	res, err := c.http.R().
		SetContext(ctx).
		SetAuthToken(token).
		SetHeaders(map[string]string{
			"X-DIGIKEY-Client-Id":       c.cfg.ClientID,
			"X-DIGIKEY-Locale-Site":     c.cfg.LocaleSite,
			"X-DIGIKEY-Locale-Language": c.cfg.LocaleLanguage,
			"X-DIGIKEY-Locale-Currency": c.cfg.LocaleCurrency,
		}).
		SetPathParam("partNumber", partNumber).
		SetResult(&product).
		Get("/Search/v3/Products/{partNumber}")
	if err != nil {
		return Product{}, fmt.Errorf("performing request: %w", err)
	}

	switch res.StatusCode() {
	case http.StatusOK:
	case http.StatusNotFound:
		return Product{}, supplier.ErrNoMatch
	default:
		return Product{}, &supplier.StatusError{Method: http.MethodGet, URL: c.cfg.BaseURL + "/Search/v3/Products", Code: res.StatusCode()}
	}
	return product, nil
}
