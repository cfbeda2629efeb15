package rscomponents

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	jsoniter "github.com/json-iterator/go"

	"partprice/internal/supplier"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const baseURL = "https://dk.rs-online.com"

// HTTPClient describes an HTTP client.
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client scrapes the RS Components storefront. The site is a Next.js app, so
// every page embeds its full data model in <script id="__NEXT_DATA__">.
type Client struct {
	baseURL    string
	httpClient HTTPClient
}

// NewClient returns a scraper for base (e.g. https://dk.rs-online.com).
// Empty base selects the Danish store; nil hc uses http.DefaultClient.
func NewClient(base string, hc HTTPClient) *Client {
	if base == "" {
		base = baseURL
	}
	if hc == nil {
		hc = http.DefaultClient
	}
	return &Client{baseURL: strings.TrimRight(base, "/"), httpClient: hc}
}

// BaseURL returns the storefront root.
func (c *Client) BaseURL() string { return c.baseURL }

// nextData fetches url and decodes its __NEXT_DATA__ blob into out.
func (c *Client) nextData(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "text/html")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("performing request: %w", err)
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return &supplier.StatusError{Method: http.MethodGet, URL: url, Code: res.StatusCode}
	}

	doc, err := goquery.NewDocumentFromReader(res.Body)
	if err != nil {
		return fmt.Errorf("parsing html: %w", err)
	}
	blob := strings.TrimSpace(doc.Find("script#__NEXT_DATA__").First().Text())
	if blob == "" {
		return fmt.Errorf("%s: no __NEXT_DATA__ script", url)
	}
	if err := json.UnmarshalFromString(blob, out); err != nil {
		return fmt.Errorf("decoding __NEXT_DATA__: %w", err)
	}
	return nil
}
