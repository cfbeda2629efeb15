package digikey

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-resty/resty/v2"
	jsoniter "github.com/json-iterator/go"

	"partprice/internal/supplier"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals

const (
	productionURL = "https://api.digikey.com"
	sandboxURL    = "https://sandbox-api.digikey.com"
)

// Config carries Digi-Key credentials and locale. Nothing is read from the
// process environment.
type Config struct {
	ClientID       string
	ClientSecret   string
	Sandbox        bool
	BaseURL        string // overrides the Sandbox switch when set
	LocaleSite     string
	LocaleLanguage string
	LocaleCurrency string
}

// Client talks to the Digi-Key Product Information API v3 using a
// client-credentials token that is refreshed on expiry.
type Client struct {
	cfg  Config
	http *resty.Client

	mu       sync.Mutex
	token    string
	tokenExp time.Time
}

type tokenResponse struct {
	AccessToken string `json:"access_token"`
	ExpiresIn   int    `json:"expires_in"`
	TokenType   string `json:"token_type"`
}

// NewClient builds a client on top of hc. A nil hc uses http.DefaultClient.
func NewClient(cfg Config, hc *http.Client) *Client {
	if cfg.BaseURL == "" {
		cfg.BaseURL = productionURL
		if cfg.Sandbox {
			cfg.BaseURL = sandboxURL
		}
	}
	if cfg.LocaleSite == "" {
		cfg.LocaleSite = "DK"
	}
	if cfg.LocaleLanguage == "" {
		cfg.LocaleLanguage = "da"
	}
	if cfg.LocaleCurrency == "" {
		cfg.LocaleCurrency = "DKK"
	}
	if hc == nil {
		hc = http.DefaultClient
	}

	rc := resty.NewWithClient(hc).
		SetBaseURL(cfg.BaseURL).
		SetHeader("Accept", "application/json")
	rc.JSONMarshal = json.Marshal
	rc.JSONUnmarshal = json.Unmarshal

	return &Client{cfg: cfg, http: rc}
}

func (c *Client) configured() bool { return c.cfg.ClientID != "" && c.cfg.ClientSecret != "" }

// accessToken returns a cached token or requests a new one.
func (c *Client) accessToken(ctx context.Context) (string, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.token != "" && time.Now().Before(c.tokenExp) {
		return c.token, nil
	}

	var tok tokenResponse
	res, err := c.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"client_id":     c.cfg.ClientID,
			"client_secret": c.cfg.ClientSecret,
			"grant_type":    "client_credentials",
		}).
		SetResult(&tok).
		Post("/v1/oauth2/token")
	if err != nil {
		return "", fmt.Errorf("requesting token: %w", err)
	}
	if res.StatusCode() != http.StatusOK {
		return "", &supplier.StatusError{Method: http.MethodPost, URL: c.cfg.BaseURL + "/v1/oauth2/token", Code: res.StatusCode()}
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("requesting token: empty access_token")
	}

	// Renew a little early so a token never expires mid-request.
	ttl := time.Duration(tok.ExpiresIn)*time.Second - 30*time.Second
	if ttl <= 0 {
		ttl = time.Duration(tok.ExpiresIn) * time.Second
	}
	c.token = tok.AccessToken
	c.tokenExp = time.Now().Add(ttl)
	return c.token, nil
}
