package config

import "time"

const (
	defaultAPIURL                = "https://api.exchangerate-api.com/v4/latest/USD"
	defaultRequestTimeoutSeconds = 10
)

type RatesConfig struct {
	URL                   string `yaml:"api-url"`
	RequestTimeoutSeconds int64  `yaml:"request-timeout-seconds"`
}

func (r *RatesConfig) setDefaults() {
	if r.URL == "" {
		r.URL = defaultAPIURL
	}
	if r.RequestTimeoutSeconds <= 0 {
		r.RequestTimeoutSeconds = defaultRequestTimeoutSeconds
	}
}

func (r *RatesConfig) APIURL() string {
	return r.URL
}

func (r *RatesConfig) RequestTimeout() time.Duration {
	return time.Duration(r.RequestTimeoutSeconds) * time.Second
}
