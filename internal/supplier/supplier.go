package supplier

import (
	"context"
	"errors"
	"fmt"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// PriceBreak is a quantity threshold at which UnitCost applies.
type PriceBreak struct {
	MinimumQuantity int             `json:"minimum_quantity"`
	UnitCost        decimal.Decimal `json:"unit_cost"`
}

// Offer is the normalized shape returned by all vendor adapters.
// The zero Offer means the vendor has nothing for the part.
type Offer struct {
	PriceBreaks   []PriceBreak `json:"price_breaks"`
	StockQuantity int          `json:"stock_quantity"`
	LeadTimeDays  *int         `json:"lead_time_days"`
	ProductURL    string       `json:"product_url"`
}

// Empty reports whether the offer carries no price breaks and so cannot be compared.
func (o Offer) Empty() bool { return len(o.PriceBreaks) == 0 }

// CheapestBreak returns the break with the lowest unit cost. On equal cost the
// first listed break wins. ok is false for an empty offer.
func (o Offer) CheapestBreak() (PriceBreak, bool) {
	if o.Empty() {
		return PriceBreak{}, false
	}
	return lo.MinBy(o.PriceBreaks, func(a, b PriceBreak) bool {
		return a.UnitCost.LessThan(b.UnitCost)
	}), true
}

// SmallestQuantityBreak returns the break with the lowest minimum quantity.
// Equal thresholds resolve to the lower unit cost, then to the first listed.
func (o Offer) SmallestQuantityBreak() (PriceBreak, bool) {
	if o.Empty() {
		return PriceBreak{}, false
	}
	return lo.MinBy(o.PriceBreaks, func(a, b PriceBreak) bool {
		if a.MinimumQuantity != b.MinimumQuantity {
			return a.MinimumQuantity < b.MinimumQuantity
		}
		return a.UnitCost.LessThan(b.UnitCost)
	}), true
}

// Adapter looks up one manufacturer part number at one distributor.
// Implementations return the zero Offer together with a non-nil error when
// they have nothing usable; callers treat every error as "no offer".
type Adapter interface {
	Name() string
	Offer(ctx context.Context, partNumber string) (Offer, error)
}

var (
	// ErrNotConfigured is returned by adapters whose credentials are missing.
	ErrNotConfigured = errors.New("vendor not configured")
	// ErrNoMatch is returned when the catalog has no exact match for the part number.
	ErrNoMatch = errors.New("no exact part number match")
)

// StatusError reports a non-200 answer from a vendor endpoint.
type StatusError struct {
	Method string
	URL    string
	Code   int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s %s -> %d", e.Method, e.URL, e.Code)
}

// IsQuiet reports whether err is an expected "nothing here" outcome rather than a failure.
func IsQuiet(err error) bool {
	return errors.Is(err, ErrNotConfigured) || errors.Is(err, ErrNoMatch)
}
