package mouser

import (
	"net/http"
)

const (
	baseURL             = "https://api.mouser.com"
	defaultCurrencyCode = "DKK"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=mouser_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the Mouser Search API v1.
type Client struct {
	baseURL      string
	apiKey       string
	currencyCode string
	httpClient   HTTPClient
	header       http.Header
}

// ClientOption is a configuration option for the Mouser client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithCurrencyCode sets the ISO currency prices are quoted in.
func WithCurrencyCode(code string) ClientOption {
	return func(c *Client) {
		if code != "" {
			c.currencyCode = code
		}
	}
}

// WithHTTPClient sets the HTTP client for the API.
func WithHTTPClient(httpClient HTTPClient) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
	}
}

// WithHeader sets additional headers to be sent with each request.
func WithHeader(header http.Header) ClientOption {
	return func(c *Client) {
		for key, values := range header {
			for _, value := range values {
				c.header.Add(key, value)
			}
		}
	}
}

// NewClient creates a new Mouser client for the given Search API key.
func NewClient(apiKey string, options ...ClientOption) *Client {
	var client = &Client{
		baseURL:      baseURL,
		apiKey:       apiKey,
		currencyCode: defaultCurrencyCode,
		httpClient:   http.DefaultClient,
		header:       http.Header{},
	}
	for _, option := range options {
		option(client)
	}
	return client
}
