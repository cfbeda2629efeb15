package commands

import (
	"context"
	"log/slog"
	"time"

	"github.com/samber/lo"

	"partprice/internal/aggregate"
	"partprice/internal/config"
	"partprice/internal/httpx"
	"partprice/internal/logx"
	"partprice/internal/supplier"
	"partprice/internal/supplier/digikey"
	"partprice/internal/supplier/farnell"
	"partprice/internal/supplier/memo"
	"partprice/internal/supplier/mouser"
	"partprice/internal/supplier/rscomponents"
)

// newAggregator registers the vendors in the order ties are broken:
// Farnell, Digikey, Mouser, Rscomponents.
func newAggregator(ctx context.Context, cfg config.Config) *aggregate.Aggregator {
	hc := httpx.New(time.Duration(cfg.Run.RequestTimeoutSec) * time.Second)

	adapters := []supplier.Adapter{
		farnell.New(farnell.NewClient(cfg.Farnell.APIKey,
			farnell.WithBaseURL(cfg.Farnell.Endpoint),
			farnell.WithStore(cfg.Farnell.Store),
			farnell.WithHTTPClient(hc),
		), cfg.Farnell.Results),
		digikey.New(digikey.NewClient(digikey.Config{
			ClientID:       cfg.Digikey.ClientID,
			ClientSecret:   cfg.Digikey.ClientSecret,
			Sandbox:        cfg.Digikey.Sandbox,
			BaseURL:        cfg.Digikey.BaseURL,
			LocaleSite:     cfg.Digikey.LocaleSite,
			LocaleLanguage: cfg.Digikey.LocaleLanguage,
			LocaleCurrency: cfg.Digikey.LocaleCurrency,
		}, hc.HTTP)),
		mouser.New(mouser.NewClient(cfg.Mouser.APIKey,
			mouser.WithBaseURL(cfg.Mouser.Endpoint),
			mouser.WithCurrencyCode(cfg.Mouser.CurrencyCode),
			mouser.WithHTTPClient(hc),
		), cfg.Mouser.Records),
		rscomponents.New(
			rscomponents.NewClient(cfg.RSComponents.BaseURL, hc),
			cfg.RSComponents.UnitMarker,
			cfg.RSComponents.Enabled,
		),
	}

	ttl := time.Duration(cfg.Run.CacheTTLSec) * time.Second
	adapters = lo.Map(adapters, func(a supplier.Adapter, _ int) supplier.Adapter { return memo.New(a, ttl) })

	logx.FromContext(ctx).DebugContext(ctx, "vendors registered",
		slog.Any(logx.FieldVendor, lo.Map(adapters, func(a supplier.Adapter, _ int) string { return a.Name() })),
		slog.Int("parallel", cfg.Run.Parallel),
	)
	return aggregate.New(adapters, aggregate.WithParallel(cfg.Run.Parallel))
}
