package rates

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T, status int, body string) (*httptest.Server, *string) {
	t.Helper()
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}))
	t.Cleanup(srv.Close)
	return srv, &gotPath
}

func TestClient_FetchRates_Success(t *testing.T) {
	srv, gotPath := newTestServer(t, http.StatusOK, `{
		"result": "success",
		"base_code": "USD",
		"conversion_rates": {"USD": 1, "INR": 83.12, "EUR": 0.92}
	}`)

	fixed := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	c := NewClient(ClientConfig{BaseURL: srv.URL + "/", APIKey: "k123"})
	c.now = func() time.Time { return fixed }

	table, err := c.FetchRates(context.Background(), "usd")
	require.NoError(t, err)

	assert.Equal(t, "/v6/k123/latest/USD", *gotPath)
	assert.Equal(t, "USD", table.Base)
	assert.InDelta(t, 83.12, table.Rates["INR"], 1e-9)
	assert.Equal(t, fixed, table.FetchedAt)
}

func TestClient_FetchRates_Failures(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantAPI bool
		message string
	}{
		{
			name:    "non-success result",
			status:  http.StatusOK,
			body:    `{"result":"error","error-type":"invalid-key"}`,
			wantAPI: true,
			message: MessageAPIError,
		},
		{
			name:    "http status",
			status:  http.StatusInternalServerError,
			body:    `oops`,
			message: MessageNetworkError,
		},
		{
			name:    "malformed body",
			status:  http.StatusOK,
			body:    `{"result":`,
			message: MessageNetworkError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv, _ := newTestServer(t, tt.status, tt.body)
			c := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "k"})

			_, err := c.FetchRates(context.Background(), "USD")
			require.Error(t, err)

			assert.Equal(t, tt.wantAPI, errors.Is(err, ErrAPIResult))
			assert.Equal(t, !tt.wantAPI, errors.Is(err, ErrTransport))
			assert.Equal(t, tt.message, Message(err))
		})
	}
}

func TestClient_FetchRates_APIErrorDetails(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"result":"error","error-type":"unsupported-code"}`)
	c := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "k"})

	_, err := c.FetchRates(context.Background(), "XXX")

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	assert.Equal(t, "unsupported-code", apiErr.Type)
	assert.Equal(t, "XXX", apiErr.Base)
}

func TestClient_FetchRates_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	c := NewClient(ClientConfig{BaseURL: url, APIKey: "k", Timeout: time.Second})
	_, err := c.FetchRates(context.Background(), "USD")

	require.ErrorIs(t, err, ErrTransport)
	assert.Equal(t, MessageNetworkError, Message(err))
}

func TestClient_FetchRates_Canceled(t *testing.T) {
	srv, _ := newTestServer(t, http.StatusOK, `{"result":"success","base_code":"USD","conversion_rates":{}}`)
	c := NewClient(ClientConfig{BaseURL: srv.URL, APIKey: "k"})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.FetchRates(ctx, "USD")
	require.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, ErrTransport)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient(ClientConfig{})
	assert.Equal(t, DefaultBaseURL, c.BaseURL)
	assert.Equal(t, DefaultTimeout, c.HTTPClient.Timeout)
}
