package cache

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"max.ks1230/usd-converter/internal/logger"
)

type redisConfig interface {
	Addr() string
	Password() string
	DB() int
}

// RedisStore keeps the cache entry under one redis key with a TTL.
type RedisStore struct {
	client *redis.Client
	key    string
	ttl    time.Duration
}

func NewRedisStore(ctx context.Context, config redisConfig, key string, ttl time.Duration) (*RedisStore, error) {
	logger.Info("redis addr", zap.String("addr", config.Addr()), zap.Int("db", config.DB()))
	client := redis.NewClient(&redis.Options{
		Addr:     config.Addr(),
		Password: config.Password(),
		DB:       config.DB(),
	})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, errors.Wrap(err, "ping redis")
	}
	return &RedisStore{client: client, key: key, ttl: ttl}, nil
}

func (s *RedisStore) Read(ctx context.Context) ([]byte, error) {
	data, err := s.client.Get(ctx, s.key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "redis get")
	}
	return data, nil
}

func (s *RedisStore) Write(ctx context.Context, data []byte) error {
	err := s.client.Set(ctx, s.key, data, s.ttl).Err()
	return errors.Wrap(err, "redis set")
}

func (s *RedisStore) Close() error {
	return s.client.Close()
}
