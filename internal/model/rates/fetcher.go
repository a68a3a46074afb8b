package rates

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"

	"max.ks1230/usd-converter/internal/entity/currency"
	"max.ks1230/usd-converter/internal/logger"
	"max.ks1230/usd-converter/internal/model/customerr"
)

const refreshKey = "rates"

type ratesSource interface {
	GetRates(ctx context.Context) (currency.RateTable, error)
}

type ratesCache interface {
	Load(ctx context.Context) (currency.RateTable, bool)
	Save(ctx context.Context, table currency.RateTable) (currency.RateTable, error)
}

type config interface {
	MaxRetries() int
	Delay() time.Duration
}

// Fetcher serves rate tables from the cache and refreshes them from the
// source when the cache has nothing fresh. One Fetcher is meant to be shared
// by every converter in the process.
type Fetcher struct {
	cache      ratesCache
	source     ratesSource
	maxRetries int
	retryDelay time.Duration

	group singleflight.Group
}

// NewFetcher copies the retry settings out of config; later changes to it are not seen.
func NewFetcher(cache ratesCache, source ratesSource, config config) *Fetcher {
	maxRetries := config.MaxRetries()
	if maxRetries < 1 {
		maxRetries = 1
	}
	delay := config.Delay()
	if delay < 0 {
		delay = 0
	}
	return &Fetcher{
		cache:      cache,
		source:     source,
		maxRetries: maxRetries,
		retryDelay: delay,
	}
}

// FetchRates returns the cached table while it is valid. Otherwise it asks
// the source, retrying network failures, and caches the first good answer.
// The error, if any, matches customerr.ErrUnavailable.
func (f *Fetcher) FetchRates(ctx context.Context) (table currency.RateTable, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "rates.FetchRates")
	defer span.Finish()
	defer func() {
		if err != nil {
			ext.Error.Set(span, true)
		}
	}()

	if cached, ok := f.cache.Load(ctx); ok {
		span.SetTag("cache_hit", true)
		return cached, nil
	}
	span.SetTag("cache_hit", false)

	res, err, shared := f.group.Do(refreshKey, func() (interface{}, error) {
		// a flight that finished between our miss and this call has filled the cache
		if cached, ok := f.cache.Load(ctx); ok {
			return cached, nil
		}
		return f.refresh(ctx)
	})
	if shared {
		logger.Debug("joined in-flight rates refresh")
	}
	if err != nil {
		return currency.RateTable{}, err
	}
	return res.(currency.RateTable), nil
}

func (f *Fetcher) refresh(ctx context.Context) (currency.RateTable, error) {
	var (
		fetched currency.RateTable
		attempt int
	)

	operation := func() error {
		attempt++
		logger.Info("fetching rates from api",
			zap.Int("attempt", attempt),
			zap.Int("maxRetries", f.maxRetries))

		start := time.Now()
		table, err := f.source.GetRates(ctx)
		if err == nil {
			if vErr := table.Validate(); vErr != nil {
				err = &customerr.ParseError{Err: vErr}
			}
		}
		observeSourceCall(time.Since(start), err)

		if err != nil {
			logger.Error("rates request failed",
				zap.Int("attempt", attempt),
				zap.Int("maxRetries", f.maxRetries),
				zap.Error(err))
			if customerr.IsNetwork(err) {
				return err
			}
			return backoff.Permanent(err)
		}
		fetched = table
		return nil
	}

	policy := backoff.WithContext(
		backoff.WithMaxRetries(backoff.NewConstantBackOff(f.retryDelay), uint64(f.maxRetries-1)),
		ctx,
	)
	notify := func(err error, wait time.Duration) {
		logger.Info("retrying rates request", zap.Duration("wait", wait))
	}

	if err := backoff.RetryNotify(operation, policy, notify); err != nil {
		if customerr.IsNetwork(err) {
			logger.Error("max retries reached, unable to fetch rates", zap.Int("attempts", attempt))
		}
		return currency.RateTable{}, &customerr.UnavailableError{Err: err}
	}

	logger.Info("rates fetched successfully from api", zap.Int("currencies", len(fetched.Rates)))

	saved, err := f.cache.Save(ctx, fetched)
	if err != nil {
		logger.Error("failed to save rates to cache", zap.Error(err))
	}
	return saved, nil
}
