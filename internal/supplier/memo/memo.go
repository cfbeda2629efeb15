// Package memo coalesces repeated lookups of the same part number within one
// run so a vendor is asked at most once per part.
package memo

import (
	"context"
	"errors"
	"time"

	gocache "github.com/patrickmn/go-cache"
	"golang.org/x/sync/singleflight"

	"partprice/internal/supplier"
)

type entry struct {
	offer supplier.Offer
	err   error
}

// Adapter caches results per part number for a TTL. Only successful lookups
// and definitive misses (supplier.ErrNoMatch) are kept; transport failures are
// retried on the next call.
type Adapter struct {
	next  supplier.Adapter
	items *gocache.Cache
	group singleflight.Group
}

// New wraps next. A ttl <= 0 keeps entries for the lifetime of the wrapper.
func New(next supplier.Adapter, ttl time.Duration) *Adapter {
	if ttl <= 0 {
		ttl = gocache.NoExpiration
	}
	return &Adapter{
		next:  next,
		items: gocache.New(ttl, 0),
	}
}

func (a *Adapter) Name() string { return a.next.Name() }

// Offer returns the cached result for partNumber, or asks the wrapped adapter.
// Concurrent calls for the same part number share one upstream request. The
// shared request is detached from any single caller's cancellation; a caller
// whose ctx ends stops waiting and gets ctx.Err() while the others keep theirs.
func (a *Adapter) Offer(ctx context.Context, partNumber string) (supplier.Offer, error) {
	if v, ok := a.items.Get(partNumber); ok {
		e := v.(entry)
		return e.offer, e.err
	}

	flightCtx := context.WithoutCancel(ctx)
	ch := a.group.DoChan(partNumber, func() (any, error) {
		// A flight that finished between the lookup above and this one has
		// already filled the cache.
		if v, ok := a.items.Get(partNumber); ok {
			return v.(entry), nil
		}
		offer, err := a.next.Offer(flightCtx, partNumber)
		e := entry{offer: offer, err: err}
		if err == nil || errors.Is(err, supplier.ErrNoMatch) {
			a.items.SetDefault(partNumber, e)
		}
		return e, nil
	})

	select {
	case <-ctx.Done():
		return supplier.Offer{}, ctx.Err()
	case res := <-ch:
		e := res.Val.(entry)
		return e.offer, e.err
	}
}

// Len reports the number of cached parts.
func (a *Adapter) Len() int { return a.items.ItemCount() }
