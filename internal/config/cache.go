package config

import "time"

const (
	BackendFile      = "file"
	BackendMemory    = "memory"
	BackendMemcached = "memcached"
	BackendRedis     = "redis"
)

const (
	defaultCacheFile     = "exchange_rates.json"
	defaultExpirySeconds = 3600
	defaultCacheKey      = "usd-converter:rates"
)

type CacheConfig struct {
	Kind          string `yaml:"backend"`
	File          string `yaml:"file"`
	ExpirySeconds int64  `yaml:"expiry-seconds"`
	EntryKey      string `yaml:"key"`
}

func (c *CacheConfig) setDefaults() {
	if c.Kind == "" {
		c.Kind = BackendFile
	}
	if c.File == "" {
		c.File = defaultCacheFile
	}
	if c.ExpirySeconds <= 0 {
		c.ExpirySeconds = defaultExpirySeconds
	}
	if c.EntryKey == "" {
		c.EntryKey = defaultCacheKey
	}
}

func (c *CacheConfig) Backend() string {
	return c.Kind
}

func (c *CacheConfig) FilePath() string {
	return c.File
}

func (c *CacheConfig) Expiry() time.Duration {
	return time.Duration(c.ExpirySeconds) * time.Second
}

func (c *CacheConfig) Key() string {
	return c.EntryKey
}
