package config

import (
	"errors"
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/Masterminds/semver/v3"
	"github.com/rs/zerolog"
	"gopkg.in/yaml.v3"

	"github.com/quickconvert/quickconvert/internal/convert"
	"github.com/quickconvert/quickconvert/internal/rates"
	"github.com/quickconvert/quickconvert/internal/rates/cache"
	"github.com/quickconvert/quickconvert/internal/screen"
)

// Environment variables read by the config layer.
const (
	EnvHome      = "QUICKCONVERT_HOME"
	EnvAPIKey    = "QUICKCONVERT_API_KEY"
	EnvRatesURL  = "QUICKCONVERT_RATES_URL"
	EnvLogLevel  = "QUICKCONVERT_LOG_LEVEL"
	EnvLogFormat = "QUICKCONVERT_LOG_FORMAT"
)

const (
	// SchemaVersion is written by config init.
	SchemaVersion = "1.0.0"

	// schemaConstraint is the range of schema versions this build reads.
	schemaConstraint = "^1"

	configDirName  = ".quickconvert"
	configFileName = "config.yaml"

	maxPrecision = 10
)

// Config is the on-disk configuration.
type Config struct {
	SchemaVersion string        `yaml:"schema_version"`
	Logging       LoggingConfig `yaml:"logging"`
	Rates         RatesConfig   `yaml:"rates"`
	Display       DisplayConfig `yaml:"display"`

	configPath string
}

// LoggingConfig configures internal/logging.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
	File   string `yaml:"file,omitempty"`
}

// RatesConfig configures the exchange-rate client.
type RatesConfig struct {
	BaseURL string      `yaml:"base_url"`
	APIKey  string      `yaml:"api_key"`
	Timeout string      `yaml:"timeout"`
	Cache   CacheConfig `yaml:"cache"`
}

// CacheConfig configures the optional on-disk rate cache.
type CacheConfig struct {
	Enabled    bool   `yaml:"enabled"`
	TTLSeconds int    `yaml:"ttl_seconds"`
	Directory  string `yaml:"directory,omitempty"`
}

// DisplayConfig sets per-screen result precision and digit limits.
type DisplayConfig struct {
	SpeedPrecision        int `yaml:"speed_precision"`
	TemperaturePrecision  int `yaml:"temperature_precision"`
	CurrencyPrecision     int `yaml:"currency_precision"`
	SpeedDigitLimit       int `yaml:"speed_digit_limit"`
	TemperatureDigitLimit int `yaml:"temperature_digit_limit"`
	CurrencyDigitLimit    int `yaml:"currency_digit_limit"`
}

// Default returns the built-in configuration without reading the disk.
func Default() *Config {
	dir := ResolveConfigDir()
	return &Config{
		SchemaVersion: SchemaVersion,
		Logging: LoggingConfig{
			Level:  zerolog.InfoLevel.String(),
			Format: "console",
		},
		Rates: RatesConfig{
			BaseURL: rates.DefaultBaseURL,
			Timeout: rates.DefaultTimeout.String(),
			Cache: CacheConfig{
				TTLSeconds: cache.DefaultTTLSeconds,
			},
		},
		Display: DisplayConfig{
			SpeedPrecision:        convert.SpeedPrecision,
			TemperaturePrecision:  convert.TemperaturePrecision,
			CurrencyPrecision:     convert.CurrencyPrecision,
			SpeedDigitLimit:       screen.SpeedDigitLimit,
			TemperatureDigitLimit: screen.TemperatureDigitLimit,
			CurrencyDigitLimit:    screen.CurrencyDigitLimit,
		},
		configPath: filepath.Join(dir, configFileName),
	}
}

// New loads the configuration file if present, falling back to defaults
// when it cannot be read, and applies environment overrides.
func New() *Config {
	cfg, err := Load()
	if err != nil {
		cfg = Default()
		cfg.applyEnv()
	}
	return cfg
}

// Load reads the configuration file over the defaults and applies environment
// overrides. A missing file is not an error.
func Load() (*Config, error) {
	cfg := Default()
	if err := cfg.loadFile(cfg.configPath); err != nil {
		return nil, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) loadFile(path string) error {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	if err = yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

func (c *Config) applyEnv() {
	if v := os.Getenv(EnvAPIKey); v != "" {
		c.Rates.APIKey = v
	}
	if v := os.Getenv(EnvRatesURL); v != "" {
		c.Rates.BaseURL = v
	}
	if v := os.Getenv(EnvLogLevel); v != "" {
		c.Logging.Level = v
	}
	if v := os.Getenv(EnvLogFormat); v != "" {
		c.Logging.Format = v
	}
}

// ConfigPath returns the file this config is loaded from and saved to.
func (c *Config) ConfigPath() string {
	return c.configPath
}

// SetConfigPath changes where Save writes.
func (c *Config) SetConfigPath(path string) {
	c.configPath = path
}

// Save writes the configuration as YAML, creating the directory if needed.
func (c *Config) Save() error {
	if err := os.MkdirAll(filepath.Dir(c.configPath), 0o750); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshalling config: %w", err)
	}
	if err = os.WriteFile(c.configPath, data, 0o600); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Validate checks semantic constraints that YAML decoding cannot.
func (c *Config) Validate() error {
	var errs []error

	if err := checkSchemaVersion(c.SchemaVersion); err != nil {
		errs = append(errs, err)
	}
	if _, err := zerolog.ParseLevel(c.Logging.Level); err != nil {
		errs = append(errs, fmt.Errorf("logging.level: %w", err))
	}
	if u, err := url.Parse(c.Rates.BaseURL); err != nil || u.Scheme == "" || u.Host == "" {
		errs = append(errs, fmt.Errorf("rates.base_url: %q is not an absolute URL", c.Rates.BaseURL))
	}
	if _, err := c.Rates.TimeoutDuration(); err != nil {
		errs = append(errs, fmt.Errorf("rates.timeout: %w", err))
	}
	if c.Rates.Cache.Enabled {
		if _, err := cache.NewTTLConfig(c.Rates.Cache.TTLSeconds); err != nil {
			errs = append(errs, fmt.Errorf("rates.cache.ttl_seconds: %w", err))
		}
	}

	precisions := map[string]int{
		"display.speed_precision":       c.Display.SpeedPrecision,
		"display.temperature_precision": c.Display.TemperaturePrecision,
		"display.currency_precision":    c.Display.CurrencyPrecision,
	}
	for key, p := range precisions {
		if p < 0 || p > maxPrecision {
			errs = append(errs, fmt.Errorf("%s: must be between 0 and %d, got %d", key, maxPrecision, p))
		}
	}
	limits := map[string]int{
		"display.speed_digit_limit":       c.Display.SpeedDigitLimit,
		"display.temperature_digit_limit": c.Display.TemperatureDigitLimit,
		"display.currency_digit_limit":    c.Display.CurrencyDigitLimit,
	}
	for key, l := range limits {
		if l < 0 {
			errs = append(errs, fmt.Errorf("%s: must not be negative, got %d", key, l))
		}
	}

	return errors.Join(errs...)
}

func checkSchemaVersion(v string) error {
	if v == "" {
		return nil
	}
	ver, err := semver.NewVersion(v)
	if err != nil {
		return fmt.Errorf("schema_version: %w", err)
	}
	constraint, err := semver.NewConstraint(schemaConstraint)
	if err != nil {
		return err
	}
	if !constraint.Check(ver) {
		return fmt.Errorf("schema_version: %s is not supported (want %s)", v, schemaConstraint)
	}
	return nil
}

// TimeoutDuration parses Timeout; empty means rates.DefaultTimeout.
func (r RatesConfig) TimeoutDuration() (time.Duration, error) {
	if r.Timeout == "" {
		return rates.DefaultTimeout, nil
	}
	d, err := time.ParseDuration(r.Timeout)
	if err != nil {
		return 0, err
	}
	if d <= 0 {
		return 0, fmt.Errorf("must be positive, got %s", r.Timeout)
	}
	return d, nil
}

// CacheDirectory returns the configured cache directory or the default
// under the config home.
func (r RatesConfig) CacheDirectory() string {
	if r.Cache.Directory != "" {
		return r.Cache.Directory
	}
	return filepath.Join(ResolveConfigDir(), "cache")
}

// ResolveConfigDir returns $QUICKCONVERT_HOME, or ~/.quickconvert.
func ResolveConfigDir() string {
	if dir := os.Getenv(EnvHome); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return filepath.Join(os.TempDir(), configDirName)
	}
	return filepath.Join(home, configDirName)
}

//nolint:gochecknoglobals // Process-wide config shared by CLI commands.
var (
	globalMu     sync.Mutex
	globalConfig *Config
)

// GetGlobalConfig returns the process-wide config, loading it on first use.
func GetGlobalConfig() *Config {
	globalMu.Lock()
	defer globalMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// SetGlobalConfig replaces the process-wide config.
func SetGlobalConfig(cfg *Config) {
	globalMu.Lock()
	defer globalMu.Unlock()
	globalConfig = cfg
}

// ResetGlobalConfigForTest drops the cached global config.
func ResetGlobalConfigForTest() {
	SetGlobalConfig(nil)
}
