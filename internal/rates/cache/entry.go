package cache

import (
	"encoding/json"
	"errors"
	"strings"
	"time"

	"github.com/quickconvert/quickconvert/internal/convert"
)

const ratesKeyPrefix = "rates-"

// CacheEntry is one cached rate table with its expiry.
//
//nolint:revive // CacheEntry is the canonical name for this exported type.
type CacheEntry struct {
	Key        string            `json:"key"`
	Table      convert.RateTable `json:"table"`
	StoredAt   time.Time         `json:"stored_at"`
	ExpiresAt  time.Time         `json:"expires_at"`
	TTLSeconds int               `json:"ttl_seconds"`
}

// NewCacheEntry builds an entry stored at now that expires after ttlSeconds.
func NewCacheEntry(key string, table convert.RateTable, ttlSeconds int, now time.Time) *CacheEntry {
	return &CacheEntry{
		Key:        key,
		Table:      table,
		StoredAt:   now,
		ExpiresAt:  now.Add(time.Duration(ttlSeconds) * time.Second),
		TTLSeconds: ttlSeconds,
	}
}

// IsExpired reports whether the entry is past its expiry at now.
func (e *CacheEntry) IsExpired(now time.Time) bool {
	return now.After(e.ExpiresAt)
}

// Age returns how long ago the entry was stored.
func (e *CacheEntry) Age(now time.Time) time.Duration {
	return now.Sub(e.StoredAt)
}

// MarshalJSON writes timestamps as RFC3339.
func (e *CacheEntry) MarshalJSON() ([]byte, error) {
	type alias CacheEntry
	return json.Marshal(&struct {
		*alias

		StoredAt  string `json:"stored_at"`
		ExpiresAt string `json:"expires_at"`
	}{
		alias:     (*alias)(e),
		StoredAt:  e.StoredAt.Format(time.RFC3339),
		ExpiresAt: e.ExpiresAt.Format(time.RFC3339),
	})
}

// UnmarshalJSON parses RFC3339 timestamps.
func (e *CacheEntry) UnmarshalJSON(data []byte) error {
	if e == nil {
		return errors.New("cannot unmarshal into nil CacheEntry")
	}
	type alias CacheEntry
	aux := &struct {
		*alias

		StoredAt  string `json:"stored_at"`
		ExpiresAt string `json:"expires_at"`
	}{
		alias: (*alias)(e),
	}
	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	var err error
	if e.StoredAt, err = time.Parse(time.RFC3339, aux.StoredAt); err != nil {
		return err
	}
	if e.ExpiresAt, err = time.Parse(time.RFC3339, aux.ExpiresAt); err != nil {
		return err
	}
	return nil
}

// RatesKey returns the cache key for a base currency code.
func RatesKey(base string) string {
	return ratesKeyPrefix + strings.ToUpper(strings.TrimSpace(base))
}
