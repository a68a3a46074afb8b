package rates

import (
	"context"
	"encoding/json"
	"math"
	"sync"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/usd-converter/internal/clients/cache"
	"max.ks1230/usd-converter/internal/entity/currency"
	"max.ks1230/usd-converter/internal/logger"
	"max.ks1230/usd-converter/internal/model/customerr"
)

type entryStore interface {
	Read(ctx context.Context) ([]byte, error)
	Write(ctx context.Context, data []byte) error
}

// cacheEntry is the persisted form of a rate table.
type cacheEntry struct {
	Timestamp *float64           `json:"timestamp"`
	Base      string             `json:"base,omitempty"`
	Rates     map[string]float64 `json:"rates"`
}

// Cache persists one rate table and treats it as valid for expiry after it was saved.
type Cache struct {
	store  entryStore
	expiry time.Duration
	now    func() time.Time

	mu        sync.Mutex
	lastStamp time.Time
}

func NewCache(store entryStore, expiry time.Duration) *Cache {
	return &Cache{
		store:  store,
		expiry: expiry,
		now:    time.Now,
	}
}

// Load returns the cached table if it is present, well-formed and fresh.
// Every other outcome is a miss.
func (c *Cache) Load(ctx context.Context) (currency.RateTable, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	table, err := c.load(ctx)
	if err != nil {
		cacheLookups.WithLabelValues(lookupMiss).Inc()
		if errors.Is(err, cache.ErrNotFound) {
			logger.Debug("no cached rates")
		} else {
			logger.Warn("cached rates not usable, fetching from api", zap.Error(err))
		}
		return currency.RateTable{}, false
	}

	cacheLookups.WithLabelValues(lookupHit).Inc()
	logger.Info("rates loaded from cache", zap.Time("timestamp", table.Timestamp))
	return table, true
}

func (c *Cache) load(ctx context.Context) (currency.RateTable, error) {
	data, err := c.store.Read(ctx)
	if err != nil {
		return currency.RateTable{}, err
	}

	var entry cacheEntry
	if err = json.Unmarshal(data, &entry); err != nil {
		return currency.RateTable{}, errors.Wrap(customerr.ErrCacheMiss, err.Error())
	}
	if entry.Timestamp == nil || entry.Rates == nil {
		return currency.RateTable{}, errors.Wrap(customerr.ErrCacheMiss, "entry lacks timestamp or rates")
	}

	table := currency.RateTable{
		Base:      entry.Base,
		Rates:     entry.Rates,
		Timestamp: fromEpoch(*entry.Timestamp),
	}
	if table.Base == "" {
		table.Base = currency.USD
	}
	if err = table.Validate(); err != nil {
		return currency.RateTable{}, errors.Wrap(customerr.ErrCacheMiss, err.Error())
	}

	age := c.now().Sub(table.Timestamp)
	if age >= c.expiry {
		return currency.RateTable{}, errors.Wrapf(customerr.ErrCacheMiss, "entry expired %s ago", age-c.expiry)
	}
	return table, nil
}

// Save stamps table with the current time and overwrites the stored entry.
// The stamped table is returned even when the write fails.
func (c *Cache) Save(ctx context.Context, table currency.RateTable) (currency.RateTable, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	stamp := c.now()
	if stamp.Before(c.lastStamp) {
		stamp = c.lastStamp
	}
	table.Timestamp = stamp

	ts := toEpoch(stamp)
	data, err := json.Marshal(cacheEntry{
		Timestamp: &ts,
		Base:      table.Base,
		Rates:     table.Rates,
	})
	if err != nil {
		cacheWriteFailures.Inc()
		return table, &customerr.CacheWriteError{Err: errors.Wrap(err, "marshal entry")}
	}

	if err = c.store.Write(ctx, data); err != nil {
		cacheWriteFailures.Inc()
		return table, &customerr.CacheWriteError{Err: err}
	}

	c.lastStamp = stamp
	logger.Info("rates saved to cache", zap.Time("timestamp", stamp))
	return table, nil
}

func toEpoch(t time.Time) float64 {
	return float64(t.UnixNano()) / float64(time.Second)
}

func fromEpoch(sec float64) time.Time {
	whole, frac := math.Modf(sec)
	return time.Unix(int64(whole), int64(frac*float64(time.Second)))
}
