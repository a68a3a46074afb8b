package rates

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"max.ks1230/usd-converter/internal/model/customerr"
)

const (
	lookupHit  = "hit"
	lookupMiss = "miss"
)

var (
	cacheLookups = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "usd_converter",
			Subsystem: "rates",
			Name:      "cache_lookups_total",
		},
		[]string{"result"},
	)

	cacheWriteFailures = promauto.NewCounter(
		prometheus.CounterOpts{
			Namespace: "usd_converter",
			Subsystem: "rates",
			Name:      "cache_write_failures_total",
		},
	)

	histogramSourceTime = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "usd_converter",
			Subsystem: "rates",
			Name:      "histogram_source_time_seconds",
			Buckets:   []float64{0.01, 0.05, 0.1, 0.25, 0.5, 1, 2, 5, 10},
		},
		[]string{"outcome"},
	)
)

func observeSourceCall(elapsed time.Duration, err error) {
	histogramSourceTime.
		WithLabelValues(outcome(err)).
		Observe(elapsed.Seconds())
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "success"
	case customerr.IsNetwork(err):
		return "network_error"
	case customerr.IsParse(err):
		return "parse_error"
	default:
		return "error"
	}
}
