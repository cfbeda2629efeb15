package farnell

import (
	"context"
	"fmt"
	"maps"
	"net/http"
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"

	"partprice/internal/supplier"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// Product is one element14 catalog entry from a "medium" response group.
type Product struct {
	SKU                              string  `json:"sku"`
	DisplayName                      string  `json:"displayName"`
	TranslatedManufacturerPartNumber string  `json:"translatedManufacturerPartNumber"`
	Prices                           []Price `json:"prices"`
	Stock                            Stock   `json:"stock"`
}

// Price is one element14 price break.
type Price struct {
	From int             `json:"from"`
	To   int             `json:"to"`
	Cost decimal.Decimal `json:"cost"`
}

// Stock is the element14 stock summary for a product.
type Stock struct {
	Level         int  `json:"level"`
	LeastLeadTime *int `json:"leastLeadTime"`
}

type searchResponse struct {
	ManufacturerPartNumberSearchReturn *struct {
		NumberOfResults int       `json:"numberOfResults"`
		Products        []Product `json:"products"`
	} `json:"manufacturerPartNumberSearchReturn"`
}

// SearchByManufacturerPartNumber runs a manuPartNum: keyword search and
// returns up to numberOfResults products. Reels and cut tape variants of the
// same part come back as separate products, so callers filter on the exact
// part number.
func (c *Client) SearchByManufacturerPartNumber(ctx context.Context, partNumber string, numberOfResults int) ([]Product, error) {
	if !c.configured() {
		return nil, supplier.ErrNotConfigured
	}
	if numberOfResults <= 0 {
		numberOfResults = 10
	}

	query := maps.Clone(c.query)
	query.Set("versionNumber", "1.1")
	query.Set("term", "manuPartNum:"+partNumber)
	query.Set("storeInfo.id", c.store)
	query.Set("resultsSettings.offset", "0")
	query.Set("resultsSettings.numberOfResults", strconv.Itoa(numberOfResults))
	query.Set("resultsSettings.responseGroup", "medium")
	query.Set("callInfo.omitXmlSchema", "true")
	query.Set("callInfo.responseDataFormat", "json")

	url := fmt.Sprintf("%s/catalog/products?%s", c.baseURL, query.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &supplier.StatusError{Method: http.MethodGet, URL: c.baseURL + "/catalog/products", Code: res.StatusCode}
	}

	var body searchResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if body.ManufacturerPartNumberSearchReturn == nil {
		return nil, fmt.Errorf("decoding search response: missing manufacturerPartNumberSearchReturn")
	}
	return body.ManufacturerPartNumberSearchReturn.Products, nil
}
