package cache

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	// DefaultTTLSeconds keeps a rate table for one hour.
	DefaultTTLSeconds = 3600

	// MinTTLSeconds is the shortest accepted TTL.
	MinTTLSeconds = 60

	// MaxTTLSeconds is the longest accepted TTL (one day; rates move daily).
	MaxTTLSeconds = 86400

	// EnvTTLSeconds overrides the configured TTL.
	EnvTTLSeconds = "QUICKCONVERT_CACHE_TTL_SECONDS"
)

// ErrInvalidTTL is returned for TTLs outside [MinTTLSeconds, MaxTTLSeconds].
var ErrInvalidTTL = fmt.Errorf("TTL must be between %d and %d seconds", MinTTLSeconds, MaxTTLSeconds)

// TTLConfig is a validated TTL.
type TTLConfig struct {
	Seconds  int
	Duration time.Duration
}

// NewTTLConfig validates seconds.
func NewTTLConfig(seconds int) (*TTLConfig, error) {
	if seconds < MinTTLSeconds || seconds > MaxTTLSeconds {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidTTL, seconds)
	}
	return &TTLConfig{
		Seconds:  seconds,
		Duration: time.Duration(seconds) * time.Second,
	}, nil
}

// ResolveTTL returns the env override when it is valid, else configured,
// else DefaultTTLSeconds.
func ResolveTTL(configured int) int {
	if v := os.Getenv(EnvTTLSeconds); v != "" {
		if ttl, err := ParseTTL(v); err == nil {
			return ttl
		}
	}
	if _, err := NewTTLConfig(configured); err == nil {
		return configured
	}
	return DefaultTTLSeconds
}

// ParseTTL accepts integer seconds ("3600") or a duration ("1h", "90m").
func ParseTTL(s string) (int, error) {
	seconds, err := strconv.Atoi(s)
	if err != nil {
		d, durErr := time.ParseDuration(s)
		if durErr != nil {
			return 0, fmt.Errorf("invalid TTL format: %w", durErr)
		}
		seconds = int(d.Seconds())
	}
	if seconds < MinTTLSeconds || seconds > MaxTTLSeconds {
		return 0, fmt.Errorf("%w: got %d", ErrInvalidTTL, seconds)
	}
	return seconds, nil
}
