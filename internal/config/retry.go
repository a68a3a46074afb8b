package config

import "time"

const (
	defaultMaxRetries   = 3
	defaultDelaySeconds = 2
)

// RetryConfig keeps an explicit zero from the file; only absent keys get defaults.
type RetryConfig struct {
	Attempts     *int     `yaml:"max-retries"`
	DelaySeconds *float64 `yaml:"delay-seconds"`
}

func (r *RetryConfig) setDefaults() {
	if r.Attempts == nil {
		attempts := defaultMaxRetries
		r.Attempts = &attempts
	}
	if r.DelaySeconds == nil {
		delay := float64(defaultDelaySeconds)
		r.DelaySeconds = &delay
	}
}

func (r *RetryConfig) MaxRetries() int {
	return *r.Attempts
}

func (r *RetryConfig) Delay() time.Duration {
	return time.Duration(*r.DelaySeconds * float64(time.Second))
}
