package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type pushConfig struct {
	url string
}

func (c pushConfig) PushgatewayURL() string { return c.url }
func (c pushConfig) Job() string            { return "usd-converter" }

func Test_OnNoGateway_ShouldSkipPush(t *testing.T) {
	assert.NoError(t, Push(pushConfig{}, prometheus.NewRegistry()))
}

func Test_OnGateway_ShouldPushRegisteredMetrics(t *testing.T) {
	var gotPath, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		body, _ := io.ReadAll(r.Body)
		gotBody = string(body)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	reg := prometheus.NewRegistry()
	counter := prometheus.NewCounter(prometheus.CounterOpts{Name: "test_conversions_total"})
	reg.MustRegister(counter)
	counter.Inc()

	require.NoError(t, Push(pushConfig{url: srv.URL}, reg))
	assert.Equal(t, "/metrics/job/usd-converter", gotPath)
	assert.True(t, strings.Contains(gotBody, "test_conversions_total"))
}

func Test_OnGatewayError_ShouldFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	assert.Error(t, Push(pushConfig{url: srv.URL}, prometheus.NewRegistry()))
}
