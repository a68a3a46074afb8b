package cache

import (
	"context"
	"time"

	"github.com/bradfitz/gomemcache/memcache"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/usd-converter/internal/logger"
)

// memcached reads expirations longer than this as an absolute unix time.
const maxRelativeExpiration = 30 * 24 * time.Hour

type memcacheConfig interface {
	Hosts() []string
}

// MemcacheStore keeps the cache entry under one memcached key.
type MemcacheStore struct {
	client *memcache.Client
	key    string
	ttl    time.Duration
}

func NewMemcacheStore(config memcacheConfig, key string, ttl time.Duration) (*MemcacheStore, error) {
	logger.Info("memcached hosts", zap.Strings("hosts", config.Hosts()))
	if len(config.Hosts()) == 0 {
		return nil, errors.New("no memcached hosts configured")
	}
	mc := memcache.New(config.Hosts()...)
	if err := mc.Ping(); err != nil {
		return nil, errors.Wrap(err, "ping memcached")
	}
	return &MemcacheStore{client: mc, key: key, ttl: ttl}, nil
}

func (s *MemcacheStore) Read(_ context.Context) ([]byte, error) {
	item, err := s.client.Get(s.key)
	if errors.Is(err, memcache.ErrCacheMiss) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "memcached get")
	}
	return item.Value, nil
}

func (s *MemcacheStore) Write(_ context.Context, data []byte) error {
	err := s.client.Set(&memcache.Item{
		Key:        s.key,
		Value:      data,
		Expiration: expiration(s.ttl, time.Now()),
	})
	return errors.Wrap(err, "memcached set")
}

func expiration(ttl time.Duration, now time.Time) int32 {
	if ttl > maxRelativeExpiration {
		return int32(now.Add(ttl).Unix())
	}
	return int32(ttl / time.Second)
}
