package rates

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/quickconvert/quickconvert/internal/convert"
	"github.com/quickconvert/quickconvert/internal/logging"
)

const (
	// DefaultBaseURL is the public ExchangeRate-API host.
	DefaultBaseURL = "https://v6.exchangerate-api.com"

	// DefaultTimeout bounds a single fetch.
	DefaultTimeout = 10 * time.Second

	resultSuccess = "success"
)

// Fetcher retrieves the latest rate table for a base currency code.
type Fetcher interface {
	FetchRates(ctx context.Context, base string) (convert.RateTable, error)
}

// ClientConfig configures a Client.
type ClientConfig struct {
	BaseURL string
	APIKey  string
	Timeout time.Duration
}

// Client is the HTTP Fetcher.
type Client struct {
	BaseURL    string
	APIKey     string
	HTTPClient *http.Client

	now func() time.Time
}

// NewClient builds a Client, filling unset fields with defaults.
func NewClient(cfg ClientConfig) *Client {
	baseURL := strings.TrimRight(cfg.BaseURL, "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		BaseURL:    baseURL,
		APIKey:     cfg.APIKey,
		HTTPClient: &http.Client{Timeout: timeout},
		now:        time.Now,
	}
}

type latestResponse struct {
	Result          string             `json:"result"`
	BaseCode        string             `json:"base_code"`
	ConversionRates map[string]float64 `json:"conversion_rates"`
	ErrorType       string             `json:"error-type"`
}

// FetchRates performs one GET for base. It does not retry.
func (c *Client) FetchRates(ctx context.Context, base string) (convert.RateTable, error) {
	base = strings.ToUpper(strings.TrimSpace(base))
	log := logging.FromContext(ctx).With().
		Str("component", "rates").
		Str("base", base).
		Logger()

	endpoint := fmt.Sprintf("%s/v6/%s/latest/%s", c.BaseURL, url.PathEscape(c.APIKey), url.PathEscape(base))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return convert.RateTable{}, fmt.Errorf("%w: building request: %w", ErrTransport, err)
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient().Do(req)
	if err != nil {
		log.Debug().Err(err).Dur("duration", time.Since(start)).Msg("rates request failed")
		return convert.RateTable{}, fmt.Errorf("%w: %w", ErrTransport, err)
	}
	defer resp.Body.Close()

	log.Debug().
		Int("status", resp.StatusCode).
		Dur("duration", time.Since(start)).
		Msg("rates response received")

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return convert.RateTable{}, fmt.Errorf("%w: HTTP %d", ErrTransport, resp.StatusCode)
	}

	var body latestResponse
	if err = json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return convert.RateTable{}, fmt.Errorf("%w: decoding response: %w", ErrTransport, err)
	}

	if body.Result != resultSuccess {
		apiErr := &APIError{Base: base, Result: body.Result, Type: body.ErrorType}
		log.Warn().Str("error_type", body.ErrorType).Msg("rates API returned an error result")
		return convert.RateTable{}, apiErr
	}

	table := convert.RateTable{
		Base:      body.BaseCode,
		Rates:     body.ConversionRates,
		FetchedAt: c.clock()(),
	}
	if table.Base == "" {
		table.Base = base
	}
	log.Debug().Int("rates", len(table.Rates)).Msg("rates fetched")
	return table, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return http.DefaultClient
}

func (c *Client) clock() func() time.Time {
	if c.now != nil {
		return c.now
	}
	return time.Now
}
