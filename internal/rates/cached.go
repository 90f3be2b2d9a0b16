package rates

import (
	"context"
	"errors"

	"golang.org/x/sync/singleflight"

	"github.com/quickconvert/quickconvert/internal/convert"
	"github.com/quickconvert/quickconvert/internal/logging"
	"github.com/quickconvert/quickconvert/internal/rates/cache"
)

// Store is the subset of cache.FileStore used by CachedFetcher.
type Store interface {
	Get(key string) (*cache.CacheEntry, error)
	Set(key string, table convert.RateTable) error
}

// CachedFetcher serves tables from a Store and falls through to next on a
// miss. Concurrent fetches for the same base share one request, which is not
// cancelled when the caller that started it goes away.
type CachedFetcher struct {
	next  Fetcher
	store Store
	group singleflight.Group
}

// NewCachedFetcher wraps next with store.
func NewCachedFetcher(next Fetcher, store Store) *CachedFetcher {
	return &CachedFetcher{next: next, store: store}
}

// FetchRates implements Fetcher.
func (f *CachedFetcher) FetchRates(ctx context.Context, base string) (convert.RateTable, error) {
	key := cache.RatesKey(base)
	log := logging.FromContext(ctx).With().
		Str("component", "rates.cache").
		Str("key", key).
		Logger()

	entry, err := f.store.Get(key)
	switch {
	case err == nil:
		log.Debug().Msg("cache hit")
		return entry.Table, nil
	case errors.Is(err, cache.ErrCacheNotFound), errors.Is(err, cache.ErrCacheExpired):
		log.Debug().Err(err).Msg("cache miss")
	default:
		log.Warn().Err(err).Msg("cache read failed")
	}

	// The shared fetch outlives any single caller; each caller stops waiting
	// when its own context ends. The client's timeout bounds the fetch.
	detached := context.WithoutCancel(ctx)
	ch := f.group.DoChan(key, func() (any, error) {
		table, fetchErr := f.next.FetchRates(detached, base)
		if fetchErr != nil {
			return convert.RateTable{}, fetchErr
		}
		if setErr := f.store.Set(key, table); setErr != nil {
			log.Warn().Err(setErr).Msg("cache write failed")
		}
		return table, nil
	})

	select {
	case <-ctx.Done():
		return convert.RateTable{}, ctx.Err()
	case res := <-ch:
		if res.Err != nil {
			return convert.RateTable{}, res.Err
		}
		if res.Shared {
			log.Debug().Msg("shared in-flight fetch")
		}
		return res.Val.(convert.RateTable), nil
	}
}
