package cli_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path"
	"testing"

	"github.com/quickconvert/quickconvert/internal/cli"
	"github.com/quickconvert/quickconvert/internal/config"
)

// isolate points every config and log path at a temp dir.
func isolate(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv(config.EnvHome, home)
	t.Setenv(config.EnvLogLevel, "error")
	t.Setenv(config.EnvAPIKey, "")
	t.Setenv(config.EnvRatesURL, "")
	config.ResetGlobalConfigForTest()
	t.Cleanup(config.ResetGlobalConfigForTest)
	return home
}

// execute runs the root command with args and returns stdout and the error.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

// ratesServer serves exchangerate-api style responses from tables keyed by base.
func ratesServer(t *testing.T, tables map[string]map[string]float64) *int {
	t.Helper()
	var hits int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits++
		base := path.Base(r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		rates, ok := tables[base]
		if !ok {
			_ = json.NewEncoder(w).Encode(map[string]any{"result": "error", "error-type": "unsupported-code"})
			return
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"result":           "success",
			"base_code":        base,
			"conversion_rates": rates,
		})
	}))
	t.Cleanup(srv.Close)
	t.Setenv(config.EnvRatesURL, srv.URL)
	t.Setenv(config.EnvAPIKey, "test-key")
	config.ResetGlobalConfigForTest()
	return &hits
}
