package cli_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quickconvert/quickconvert/internal/cli"
	"github.com/quickconvert/quickconvert/internal/config"
)

func TestConvertSpeed(t *testing.T) {
	isolate(t)

	out, err := execute(t, "convert", "speed", "36", "--from", "km/h", "--to", "m/s")
	require.NoError(t, err)
	assert.Equal(t, "36 km/h = 10 m/s\n", out)
}

func TestConvertSpeed_RejectsNegative(t *testing.T) {
	isolate(t)

	_, err := execute(t, "convert", "speed", "--", "-5")
	var convErr *cli.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Contains(t, convErr.Message, "negative")
}

func TestConvertSpeed_DigitLimit(t *testing.T) {
	isolate(t)

	_, err := execute(t, "convert", "speed", "1234567890123")
	var convErr *cli.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "Maximum digits reached (12)", convErr.Message)
}

func TestConvertTemperature(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "boiling point", args: []string{"100", "--from", "C", "--to", "F"}, want: "100 °C = 212 °F\n"},
		{name: "minus forty", args: []string{"--from", "C", "--to", "F", "--", "-40"}, want: "-40 °C = -40 °F\n"},
		{name: "alias and kelvin", args: []string{"100", "--from", "C", "--to", "K"}, want: "100 °C = 373.15 K\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			isolate(t)
			out, err := execute(t, append([]string{"convert", "temp"}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestConvertTemperature_JSON(t *testing.T) {
	isolate(t)

	out, err := execute(t, "convert", "temperature", "37.7", "-o", "json")
	require.NoError(t, err)

	var got struct {
		From struct{ Value, Unit string }
		To   struct{ Value, Unit string }
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, "37.7", got.From.Value)
	assert.Equal(t, "99.86", got.To.Value)
}

func TestConvert_UnknownUnit(t *testing.T) {
	isolate(t)

	_, err := execute(t, "convert", "speed", "10", "--from", "furlongs")
	require.Error(t, err)
}

func TestConvert_ConfigOverlay(t *testing.T) {
	home := isolate(t)
	overlay := filepath.Join(home, "overlay.yaml")
	require.NoError(t, os.WriteFile(overlay, []byte("display:\n  temperature_precision: 0\n"), 0o600))

	out, err := execute(t, "--config", overlay, "convert", "temperature", "37.7")
	require.NoError(t, err)
	assert.Equal(t, "37.7 °C = 100 °F\n", out)
}

func TestConvertCurrency(t *testing.T) {
	isolate(t)
	ratesServer(t, map[string]map[string]float64{
		"USD": {"USD": 1, "EUR": 0.5, "INR": 80},
	})

	out, err := execute(t, "convert", "currency", "25", "--from", "usd", "--to", "EUR")
	require.NoError(t, err)
	assert.Equal(t, "25 USD = 12.5 EUR\n", out)
}

func TestConvertCurrency_APIError(t *testing.T) {
	isolate(t)
	ratesServer(t, map[string]map[string]float64{})

	_, err := execute(t, "convert", "currency", "25", "--from", "USD", "--to", "EUR")
	var convErr *cli.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "API Error", convErr.Message)
}

func TestConvertCurrency_NetworkError(t *testing.T) {
	isolate(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(srv.Close)
	t.Setenv(config.EnvRatesURL, srv.URL)
	t.Setenv(config.EnvAPIKey, "test-key")
	config.ResetGlobalConfigForTest()

	_, err := execute(t, "convert", "currency", "25")
	var convErr *cli.ConversionError
	require.ErrorAs(t, err, &convErr)
	assert.Equal(t, "Network Error", convErr.Message)
}

func TestConvertCurrency_NoAPIKey(t *testing.T) {
	isolate(t)

	_, err := execute(t, "convert", "currency", "25")
	assert.True(t, errors.Is(err, cli.ErrNoAPIKey))
}

func TestConvertCurrency_CacheAvoidsSecondFetch(t *testing.T) {
	home := isolate(t)
	hits := ratesServer(t, map[string]map[string]float64{
		"USD": {"USD": 1, "EUR": 0.5},
	})
	cfgFile := filepath.Join(home, "config.yaml")
	require.NoError(t, os.WriteFile(cfgFile, []byte("rates:\n  cache:\n    enabled: true\n    ttl_seconds: 3600\n"), 0o600))
	config.ResetGlobalConfigForTest()

	for range 2 {
		out, err := execute(t, "convert", "currency", "4", "--from", "USD", "--to", "EUR")
		require.NoError(t, err)
		assert.Equal(t, "4 USD = 2 EUR\n", out)
		config.ResetGlobalConfigForTest()
	}
	assert.Equal(t, 1, *hits)
}
