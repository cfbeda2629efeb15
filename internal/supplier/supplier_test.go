package supplier_test

import (
	"errors"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"partprice/internal/supplier"
)

func pb(qty int, cost string) supplier.PriceBreak {
	return supplier.PriceBreak{MinimumQuantity: qty, UnitCost: decimal.RequireFromString(cost)}
}

func TestOffer_CheapestBreak(t *testing.T) {
	rq := require.New(t)

	offer := supplier.Offer{PriceBreaks: []supplier.PriceBreak{pb(1, "5.00"), pb(10, "4.10"), pb(100, "3.20"), pb(1000, "3.20")}}
	got, ok := offer.CheapestBreak()
	rq.True(ok)
	rq.Equal(100, got.MinimumQuantity)
	for _, b := range offer.PriceBreaks {
		rq.True(got.UnitCost.LessThanOrEqual(b.UnitCost), "cheapest %s > %s", got.UnitCost, b.UnitCost)
	}

	_, ok = supplier.Offer{}.CheapestBreak()
	rq.False(ok)
}

func TestOffer_SmallestQuantityBreak(t *testing.T) {
	rq := require.New(t)

	offer := supplier.Offer{PriceBreaks: []supplier.PriceBreak{pb(10, "0.40"), pb(1, "0.90"), pb(1, "0.80"), pb(5, "0.50")}}
	got, ok := offer.SmallestQuantityBreak()
	rq.True(ok)
	rq.Equal(1, got.MinimumQuantity)
	rq.True(decimal.RequireFromString("0.80").Equal(got.UnitCost))

	_, ok = supplier.Offer{}.SmallestQuantityBreak()
	rq.False(ok)
}

func TestOffer_Empty(t *testing.T) {
	require.True(t, supplier.Offer{}.Empty())
	require.True(t, supplier.Offer{StockQuantity: 10, ProductURL: "https://example.com"}.Empty())
	require.False(t, supplier.Offer{PriceBreaks: []supplier.PriceBreak{pb(1, "1")}}.Empty())
}

func TestIsQuiet(t *testing.T) {
	rq := require.New(t)

	rq.True(supplier.IsQuiet(supplier.ErrNotConfigured))
	rq.True(supplier.IsQuiet(fmt.Errorf("mouser: %w", supplier.ErrNoMatch)))
	rq.False(supplier.IsQuiet(&supplier.StatusError{Method: "GET", URL: "https://x", Code: 500}))
	rq.False(supplier.IsQuiet(errors.New("boom")))
	rq.False(supplier.IsQuiet(nil))

	var se *supplier.StatusError
	rq.ErrorAs(fmt.Errorf("farnell: %w", &supplier.StatusError{Method: "GET", URL: "u", Code: 403}), &se)
	rq.Equal(403, se.Code)
	rq.Equal("GET u -> 403", se.Error())
}
