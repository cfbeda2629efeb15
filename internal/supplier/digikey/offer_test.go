package digikey_test

import (
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"partprice/internal/supplier"
	"partprice/internal/supplier/digikey"
)

const productJSON = `{
  "DigiKeyPartNumber": "296-INA195AIDBVTCT-ND",
  "ManufacturerPartNumber": "INA195AIDBVT",
  "QuantityAvailable": 4210,
  "ManufacturerLeadWeeks": "6 Weeks",
  "LeadStatus": "Lead Status unavailable",
  "ProductUrl": "https://www.digikey.dk/da/products/detail/texas-instruments/INA195AIDBVT/1573718",
  "StandardPricing": [
    {"BreakQuantity": 1, "UnitPrice": 14.54, "TotalPrice": 14.54},
    {"BreakQuantity": 10, "UnitPrice": 9.873, "TotalPrice": 98.73},
    {"BreakQuantity": 250, "UnitPrice": 5.9166, "TotalPrice": 1479.15}
  ]
}`

type fakeDigikey struct {
	tokenCalls   atomic.Int32
	productCalls atomic.Int32
	status       int
	body         string
}

func (f *fakeDigikey) handler(t *testing.T) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /v1/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		require.NoError(t, r.ParseForm())
		require.Equal(t, "client-id", r.PostForm.Get("client_id"))
		require.Equal(t, "client-secret", r.PostForm.Get("client_secret"))
		require.Equal(t, "client_credentials", r.PostForm.Get("grant_type"))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"access_token":"tok-1","expires_in":599,"token_type":"Bearer"}`))
	})
	mux.HandleFunc("GET /Search/v3/Products/{pn}", func(w http.ResponseWriter, r *http.Request) {
		f.productCalls.Add(1)
		require.Equal(t, "Bearer tok-1", r.Header.Get("Authorization"))
		require.Equal(t, "client-id", r.Header.Get("X-DIGIKEY-Client-Id"))
		require.Equal(t, "DK", r.Header.Get("X-DIGIKEY-Locale-Site"))
		require.Equal(t, "da", r.Header.Get("X-DIGIKEY-Locale-Language"))
		require.Equal(t, "DKK", r.Header.Get("X-DIGIKEY-Locale-Currency"))

		status := f.status
		if status == 0 {
			status = http.StatusOK
		}
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		w.Write([]byte(f.body))
	})
	return mux
}

func newAdapter(t *testing.T, f *fakeDigikey) *digikey.Adapter {
	t.Helper()

	srv := httptest.NewServer(f.handler(t))
	t.Cleanup(srv.Close)

	client := digikey.NewClient(digikey.Config{
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		BaseURL:      srv.URL,
	}, srv.Client())
	return digikey.New(client)
}

func TestAdapter_Offer(t *testing.T) {
	t.Parallel()
	rq := require.New(t)

	f := &fakeDigikey{body: productJSON}
	adapter := newAdapter(t, f)

	offer, err := adapter.Offer(t.Context(), "INA195AIDBVT")
	rq.NoError(err)
	rq.Equal("Digikey", adapter.Name())

	rq.Len(offer.PriceBreaks, 3)
	rq.Equal(10, offer.PriceBreaks[1].MinimumQuantity)
	rq.True(decimal.RequireFromString("9.873").Equal(offer.PriceBreaks[1].UnitCost))
	rq.Equal(4210, offer.StockQuantity)
	rq.NotNil(offer.LeadTimeDays)
	rq.Equal(42, *offer.LeadTimeDays)
	rq.Equal("https://www.digikey.dk/da/products/detail/texas-instruments/INA195AIDBVT/1573718", offer.ProductURL)

	// The token is reused for the second lookup.
	_, err = adapter.Offer(t.Context(), "INA195AIDBVT")
	rq.NoError(err)
	rq.EqualValues(1, f.tokenCalls.Load())
	rq.EqualValues(2, f.productCalls.Load())
}

func TestAdapter_Offer_UnknownLeadTime(t *testing.T) {
	t.Parallel()

	f := &fakeDigikey{body: `{"ManufacturerPartNumber":"INA195AIDBVT","QuantityAvailable":0,"ManufacturerLeadWeeks":"","StandardPricing":[{"BreakQuantity":1,"UnitPrice":1.5}]}`}
	offer, err := newAdapter(t, f).Offer(t.Context(), "INA195AIDBVT")

	require.NoError(t, err)
	require.Nil(t, offer.LeadTimeDays)
	require.Equal(t, 0, offer.StockQuantity)
}

func TestAdapter_Offer_Failures(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name  string
		f     *fakeDigikey
		check func(t *testing.T, err error)
	}{
		{
			name: "not found",
			f:    &fakeDigikey{status: http.StatusNotFound, body: `{"ErrorMessage":"not found"}`},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, supplier.ErrNoMatch)
			},
		},
		{
			name: "server error",
			f:    &fakeDigikey{status: http.StatusInternalServerError, body: `{}`},
			check: func(t *testing.T, err error) {
				var se *supplier.StatusError
				require.ErrorAs(t, err, &se)
				require.Equal(t, http.StatusInternalServerError, se.Code)
			},
		},
		{
			name: "different part returned",
			f:    &fakeDigikey{body: `{"ManufacturerPartNumber":"INA195AIDBVR","StandardPricing":[]}`},
			check: func(t *testing.T, err error) {
				require.ErrorIs(t, err, supplier.ErrNoMatch)
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			offer, err := newAdapter(t, tc.f).Offer(t.Context(), "INA195AIDBVT")
			require.True(t, offer.Empty())
			tc.check(t, err)
		})
	}
}

func TestAdapter_Offer_NotConfigured(t *testing.T) {
	t.Parallel()

	adapter := digikey.New(digikey.NewClient(digikey.Config{ClientID: "only-id"}, nil))

	offer, err := adapter.Offer(t.Context(), "INA195AIDBVT")

	require.ErrorIs(t, err, supplier.ErrNotConfigured)
	require.True(t, offer.Empty())
}

func TestAdapter_Offer_TokenRejected(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	t.Cleanup(srv.Close)

	adapter := digikey.New(digikey.NewClient(digikey.Config{ClientID: "a", ClientSecret: "b", BaseURL: srv.URL}, srv.Client()))

	_, err := adapter.Offer(t.Context(), "INA195AIDBVT")

	var se *supplier.StatusError
	require.ErrorAs(t, err, &se)
	require.Equal(t, http.StatusUnauthorized, se.Code)
}
