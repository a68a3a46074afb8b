package exchangerate

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/usd-converter/internal/model/customerr"
)

type testConfig struct {
	url     string
	timeout time.Duration
}

func (c testConfig) APIURL() string {
	return c.url
}

func (c testConfig) RequestTimeout() time.Duration {
	return c.timeout
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(testConfig{url: srv.URL, timeout: time.Second})
}

func Test_OnValidResponse_ShouldReturnRates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		_, _ = w.Write([]byte(`{"base":"USD","date":"2024-01-01","rates":{"USD":1,"RUB":90.5,"EUR":0.92,"XXX":0}}`))
	})

	table, err := client.GetRates(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "USD", table.Base)
	assert.Equal(t, 90.5, table.Rates["RUB"])
	assert.Equal(t, 0.92, table.Rates["EUR"])
	assert.NotContains(t, table.Rates, "XXX")
}

func Test_OnOversizedBody_ShouldReturnParseError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"base":"USD","rates":{"RUB":90.5},"pad":"`))
		_, _ = w.Write([]byte(strings.Repeat("x", maxResponseBody)))
		_, _ = w.Write([]byte(`"}`))
	})

	_, err := client.GetRates(context.Background())
	require.Error(t, err)
	assert.True(t, customerr.IsParse(err))
	assert.False(t, customerr.IsNetwork(err))
}

func Test_OnServerError_ShouldReturnNetworkError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	})

	_, err := client.GetRates(context.Background())
	require.Error(t, err)
	assert.True(t, customerr.IsNetwork(err))
	assert.Contains(t, err.Error(), "502")
}

func Test_OnMissingRates_ShouldReturnParseError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"result":"error","error-type":"unsupported-code"}`))
	})

	_, err := client.GetRates(context.Background())
	require.Error(t, err)
	assert.True(t, customerr.IsParse(err))
}

func Test_OnInvalidJSON_ShouldReturnParseError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`<html>maintenance</html>`))
	})

	_, err := client.GetRates(context.Background())
	require.Error(t, err)
	assert.True(t, customerr.IsParse(err))
	assert.False(t, customerr.IsNetwork(err))
}

func Test_OnSlowServer_ShouldTimeOutAsNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-r.Context().Done():
		case <-time.After(time.Second):
		}
	}))
	t.Cleanup(srv.Close)
	client := New(testConfig{url: srv.URL, timeout: 20 * time.Millisecond})

	_, err := client.GetRates(context.Background())
	require.Error(t, err)
	assert.True(t, customerr.IsNetwork(err))
}

func Test_OnUnreachableHost_ShouldReturnNetworkError(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	client := New(testConfig{url: url, timeout: time.Second})
	_, err := client.GetRates(context.Background())
	require.Error(t, err)
	assert.True(t, customerr.IsNetwork(err))
}
