package farnell

import (
	"net/http"
	"net/url"
)

const (
	baseURL      = "https://api.element14.com"
	defaultStore = "dk.farnell.com"
)

// HTTPClient describes an HTTP client.
//
//go:generate mockgen -package=farnell_test -destination=mock_http_client_test.go -source=client.go HTTPClient
type HTTPClient interface {
	Do(req *http.Request) (*http.Response, error)
}

// Client is a client for the element14 product search API.
type Client struct {
	// baseURL is the base URL for the API.
	baseURL string
	// store is the element14 storefront queried, e.g. dk.farnell.com.
	store string
	// httpClient is the HTTP httpClient.
	httpClient HTTPClient
	// header contains additional headers to be sent with each request.
	header http.Header
	// query contains additional query parameters to be sent with each request.
	query url.Values
}

// ClientOption is a configuration option for the element14 client.
type ClientOption func(*Client)

// WithBaseURL sets the base URL for the API.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		if baseURL != "" {
			c.baseURL = baseURL
		}
	}
}

// WithStore sets the storefront whose prices and stock are returned.
func WithStore(store string) ClientOption {
	return func(c *Client) {
		if store != "" {
			c.store = store
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

// NewClient creates a new element14 client. An empty key yields a client
// whose lookups fail with supplier.ErrNotConfigured.
func NewClient(key string, options ...ClientOption) *Client {
	var client = &Client{
		baseURL:    baseURL,
		store:      defaultStore,
		httpClient: http.DefaultClient,
		header:     http.Header{},
		query:      url.Values{},
	}
	if key != "" {
		// element14 authenticates with a query parameter.
		// https://partner.element14.com/docs/Product_Search_API_REST__Description
		client.query.Add("callinfo.apiKey", key)
	}
	for _, option := range options {
		option(client)
	}
	return client
}

// Store returns the storefront the client queries.
func (c *Client) Store() string { return c.store }

func (c *Client) configured() bool { return c.query.Get("callinfo.apiKey") != "" }
