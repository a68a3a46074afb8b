package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// DefaultFile is where the converter looks for its configuration.
const DefaultFile = "data/config.yaml"

type config struct {
	Rates     RatesConfig     `yaml:"rates"`
	Cache     CacheConfig     `yaml:"cache"`
	Retry     RetryConfig     `yaml:"retry"`
	Memcached MemcachedConfig `yaml:"memcached"`
	Redis     RedisConfig     `yaml:"redis"`
	Tracing   TracingConfig   `yaml:"tracing"`
	Metrics   MetricsConfig   `yaml:"metrics"`
}

type Service struct {
	config config
}

// New reads the YAML file at path. A missing file yields the defaults.
func New(path string) (*Service, error) {
	s := &Service{}

	rawYAML, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		s.applyDefaults()
		return s, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "reading config file")
	}

	if err = s.parse(rawYAML); err != nil {
		return nil, err
	}
	return s, nil
}

// Default returns the configuration used when no file is present.
func Default() *Service {
	s := &Service{}
	s.applyDefaults()
	return s
}

func (s *Service) parse(rawYAML []byte) error {
	err := yaml.Unmarshal(rawYAML, &s.config)
	if err != nil {
		return errors.Wrap(err, "parsing yaml")
	}
	s.applyDefaults()
	return nil
}

func (s *Service) applyDefaults() {
	s.config.Rates.setDefaults()
	s.config.Cache.setDefaults()
	s.config.Retry.setDefaults()
	s.config.Tracing.setDefaults()
	s.config.Metrics.setDefaults()
}

func (s *Service) Rates() *RatesConfig {
	return &s.config.Rates
}

func (s *Service) Cache() *CacheConfig {
	return &s.config.Cache
}

func (s *Service) Retry() *RetryConfig {
	return &s.config.Retry
}

func (s *Service) Memcached() *MemcachedConfig {
	return &s.config.Memcached
}

func (s *Service) Redis() *RedisConfig {
	return &s.config.Redis
}

func (s *Service) Tracing() *TracingConfig {
	return &s.config.Tracing
}

func (s *Service) Metrics() *MetricsConfig {
	return &s.config.Metrics
}
