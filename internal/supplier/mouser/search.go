package mouser

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/url"

	jsoniter "github.com/json-iterator/go"

	"partprice/internal/supplier"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

// Part is one Mouser search hit.
type Part struct {
	MouserPartNumber       string       `json:"MouserPartNumber"`
	ManufacturerPartNumber string       `json:"ManufacturerPartNumber"`
	Availability           string       `json:"Availability"`
	LeadTime               string       `json:"LeadTime"`
	LifecycleStatus        *string      `json:"LifecycleStatus"`
	ProductDetailURL       string       `json:"ProductDetailUrl"`
	PriceBreaks            []PriceBreak `json:"PriceBreaks"`
}

// PriceBreak is a Mouser price break; Price is a localized label such as "12,34 kr".
type PriceBreak struct {
	Quantity int    `json:"Quantity"`
	Price    string `json:"Price"`
	Currency string `json:"Currency"`
}

type keywordRequest struct {
	SearchByKeywordRequest keywordRequestBody `json:"SearchByKeywordRequest"`
}

type keywordRequestBody struct {
	Keyword      string `json:"keyword"`
	Records      int    `json:"records"`
	CurrencyCode string `json:"currencyCode"`
}

type apiError struct {
	Code    string `json:"Code"`
	Message string `json:"Message"`
}

type keywordResponse struct {
	Errors        []apiError `json:"Errors"`
	SearchResults *struct {
		NumberOfResult int    `json:"NumberOfResult"`
		Parts          []Part `json:"Parts"`
	} `json:"SearchResults"`
}

// SearchByKeyword posts a keyword search and returns at most records parts.
func (c *Client) SearchByKeyword(ctx context.Context, keyword string, records int) ([]Part, error) {
	if c.apiKey == "" {
		return nil, supplier.ErrNotConfigured
	}
	if records <= 0 {
		records = 1
	}

	payload, err := json.Marshal(keywordRequest{SearchByKeywordRequest: keywordRequestBody{
		Keyword:      keyword,
		Records:      records,
		CurrencyCode: c.currencyCode,
	}})
	if err != nil {
		return nil, fmt.Errorf("encoding request: %w", err)
	}

	endpoint := fmt.Sprintf("%s/api/v1/search/keyword?%s", c.baseURL, url.Values{"apiKey": {c.apiKey}}.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header = c.header.Clone()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, &supplier.StatusError{Method: http.MethodPost, URL: c.baseURL + "/api/v1/search/keyword", Code: res.StatusCode}
	}

	var body keywordResponse
	if err := json.NewDecoder(res.Body).Decode(&body); err != nil {
		return nil, fmt.Errorf("decoding search response: %w", err)
	}
	if len(body.Errors) > 0 {
		return nil, fmt.Errorf("mouser api error %s: %s", body.Errors[0].Code, body.Errors[0].Message)
	}
	if body.SearchResults == nil {
		return nil, fmt.Errorf("decoding search response: missing SearchResults")
	}
	return body.SearchResults.Parts, nil
}
