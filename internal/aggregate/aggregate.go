// Package aggregate asks every vendor for a part and picks the winning offers.
package aggregate

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"
	"golang.org/x/sync/errgroup"

	"partprice/internal/logx"
	"partprice/internal/supplier"
)

// VendorOffer is one vendor's normalized answer for a part. Offer is empty
// when the vendor had nothing or failed.
type VendorOffer struct {
	Vendor string         `json:"vendor"`
	Offer  supplier.Offer `json:"offer"`
}

// Selection is the offer that won one criterion and the break that decided it.
type Selection struct {
	Vendor string              `json:"vendor"`
	Offer  supplier.Offer      `json:"offer"`
	Break  supplier.PriceBreak `json:"break"`
}

// Result holds the winners for a part.
// Cheapest has the lowest unit cost at any quantity. LeastAmount has the
// lowest minimum order quantity, ties broken by the lower unit cost at that
// quantity.
type Result struct {
	Cheapest    Selection `json:"cheapest"`
	LeastAmount Selection `json:"least_amount"`
}

type Option func(*Aggregator)

// WithParallel lets up to n adapters run at once for a part. n <= 1 is sequential.
func WithParallel(n int) Option {
	return func(a *Aggregator) { a.parallel = n }
}

// Aggregator fans a part number out to its adapters in registration order.
type Aggregator struct {
	adapters []supplier.Adapter
	parallel int
}

func New(adapters []supplier.Adapter, opts ...Option) *Aggregator {
	a := &Aggregator{adapters: adapters}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Vendors lists adapter names in registration order.
func (a *Aggregator) Vendors() []string {
	return lo.Map(a.adapters, func(ad supplier.Adapter, _ int) string { return ad.Name() })
}

// GetOffers returns one entry per adapter, in registration order. Failed
// lookups are logged and reported as empty offers.
func (a *Aggregator) GetOffers(ctx context.Context, partNumber string) []VendorOffer {
	out := make([]VendorOffer, len(a.adapters))

	if a.parallel <= 1 {
		for i, ad := range a.adapters {
			out[i] = a.ask(ctx, ad, partNumber)
		}
		return out
	}

	var g errgroup.Group
	g.SetLimit(a.parallel)
	for i, ad := range a.adapters {
		g.Go(func() error {
			out[i] = a.ask(ctx, ad, partNumber)
			return nil
		})
	}
	_ = g.Wait()
	return out
}

// FindCheapest reduces the offers of every distinct part number. Parts no
// vendor could price are left out of the map.
func (a *Aggregator) FindCheapest(ctx context.Context, partNumbers []string) map[string]Result {
	results := make(map[string]Result, len(partNumbers))
	for _, pn := range lo.Uniq(partNumbers) {
		if ctx.Err() != nil {
			break
		}
		res, ok := Reduce(a.GetOffers(ctx, pn))
		if !ok {
			logx.FromContext(ctx).InfoContext(ctx, "no vendor offers part", slog.String(logx.FieldPartNumber, pn))
			continue
		}
		results[pn] = res
	}
	return results
}

func (a *Aggregator) ask(ctx context.Context, ad supplier.Adapter, partNumber string) VendorOffer {
	logger := logx.FromContext(ctx).With(
		slog.String(logx.FieldVendor, ad.Name()),
		slog.String(logx.FieldPartNumber, partNumber),
	)

	start := time.Now()
	offer, err := ad.Offer(ctx, partNumber)
	if err != nil {
		level := slog.LevelWarn
		if supplier.IsQuiet(err) {
			level = slog.LevelDebug
		}
		logger.Log(ctx, level, "vendor lookup failed", logx.Error(err))
		return VendorOffer{Vendor: ad.Name()}
	}

	logger.DebugContext(ctx, "vendor lookup",
		slog.Int(logx.FieldOffers, len(offer.PriceBreaks)),
		slog.Int64(logx.FieldDurationMs, time.Since(start).Milliseconds()),
	)
	return VendorOffer{Vendor: ad.Name(), Offer: offer}
}

// Reduce picks the winners among offers. Empty offers never win and the
// earliest vendor wins ties. ok is false when every offer is empty.
func Reduce(offers []VendorOffer) (res Result, ok bool) {
	var haveCheapest, haveLeast bool
	for _, vo := range offers {
		if pb, found := vo.Offer.CheapestBreak(); found {
			if !haveCheapest || pb.UnitCost.LessThan(res.Cheapest.Break.UnitCost) {
				res.Cheapest = Selection{Vendor: vo.Vendor, Offer: vo.Offer, Break: pb}
				haveCheapest = true
			}
		}
		if pb, found := vo.Offer.SmallestQuantityBreak(); found {
			if !haveLeast || fewerUnits(pb, res.LeastAmount.Break) {
				res.LeastAmount = Selection{Vendor: vo.Vendor, Offer: vo.Offer, Break: pb}
				haveLeast = true
			}
		}
	}
	return res, haveCheapest && haveLeast
}

// fewerUnits reports whether a needs a strictly smaller order than b, or the
// same order at a strictly lower unit cost.
func fewerUnits(a, b supplier.PriceBreak) bool {
	if a.MinimumQuantity != b.MinimumQuantity {
		return a.MinimumQuantity < b.MinimumQuantity
	}
	return a.UnitCost.LessThan(b.UnitCost)
}
