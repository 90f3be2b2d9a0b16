package cli

import (
	"context"
	"fmt"

	"github.com/quickconvert/quickconvert/internal/calc"
	"github.com/quickconvert/quickconvert/internal/config"
	"github.com/quickconvert/quickconvert/internal/logging"
	"github.com/quickconvert/quickconvert/internal/rates"
	"github.com/quickconvert/quickconvert/internal/rates/cache"
	"github.com/quickconvert/quickconvert/internal/screen"
	"github.com/quickconvert/quickconvert/internal/tui"
)

// newFetcher builds the rate client from cfg, wrapped with the file cache
// when rates.cache.enabled is set.
func newFetcher(ctx context.Context, cfg *config.Config) (rates.Fetcher, error) {
	timeout, err := cfg.Rates.TimeoutDuration()
	if err != nil {
		return nil, fmt.Errorf("rates.timeout: %w", err)
	}
	client := rates.NewClient(rates.ClientConfig{
		BaseURL: cfg.Rates.BaseURL,
		APIKey:  cfg.Rates.APIKey,
		Timeout: timeout,
	})
	if !cfg.Rates.Cache.Enabled {
		return client, nil
	}

	store, err := cache.NewFileStore(cfg.Rates.CacheDirectory(), cache.ResolveTTL(cfg.Rates.Cache.TTLSeconds))
	if err != nil {
		return nil, fmt.Errorf("opening rate cache: %w", err)
	}
	logging.FromContext(ctx).Debug().
		Str("component", "cli").
		Str("cache_dir", store.Directory()).
		Int("ttl_seconds", store.TTL()).
		Msg("rate cache enabled")
	return rates.NewCachedFetcher(client, store), nil
}

func speedStrategy(cfg *config.Config) screen.SpeedStrategy {
	return screen.SpeedStrategy{Precision: cfg.Display.SpeedPrecision, Limit: cfg.Display.SpeedDigitLimit}
}

func temperatureStrategy(cfg *config.Config) screen.TemperatureStrategy {
	return screen.TemperatureStrategy{Precision: cfg.Display.TemperaturePrecision, Limit: cfg.Display.TemperatureDigitLimit}
}

func currencyReducer(cfg *config.Config) screen.CurrencyReducer {
	return screen.CurrencyReducer{Precision: cfg.Display.CurrencyPrecision, Limit: cfg.Display.CurrencyDigitLimit}
}

// tuiOptions builds screen options from cfg.
func tuiOptions(ctx context.Context, cfg *config.Config, fetcher rates.Fetcher) tui.Options {
	return tui.Options{
		Ctx:         ctx,
		Fetcher:     fetcher,
		Evaluator:   calc.NewEvaluator(),
		Speed:       speedStrategy(cfg),
		Temperature: temperatureStrategy(cfg),
		Currency:    currencyReducer(cfg),
	}
}
