package rates

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/usd-converter/internal/clients/cache"
	"max.ks1230/usd-converter/internal/entity/currency"
	"max.ks1230/usd-converter/internal/model/customerr"
	"max.ks1230/usd-converter/internal/model/rates/mock"
)

func Test_OnValidCache_ShouldNotCallSource(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	clk := &clock{now: t0}
	c := newTestCache(&memStore{}, clk)
	_, err := c.Save(ctx, sampleTable())
	require.NoError(t, err)
	clk.now = t0.Add(30 * time.Minute)

	source := mock.NewRatesSourceMock(m)
	fetcher := NewFetcher(c, source, retryConfig(m, 3, 0))

	table, err := fetcher.FetchRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90.5, table.Rates[currency.RUB])
	assert.Equal(t, uint64(0), source.GetRatesBeforeCounter())
}

func Test_OnExpiredCache_ShouldFetchAndOverwrite(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	clk := &clock{now: t0}
	store := &memStore{}
	c := newTestCache(store, clk)
	_, err := c.Save(ctx, sampleTable())
	require.NoError(t, err)

	later := t0.Add(2 * time.Hour)
	clk.now = later

	fresh := sampleTable()
	fresh.Rates[currency.RUB] = 92
	source := mock.NewRatesSourceMock(m).GetRatesMock.Return(fresh, nil)

	fetcher := NewFetcher(c, source, retryConfig(m, 3, 0))
	table, err := fetcher.FetchRates(ctx)
	require.NoError(t, err)

	assert.Equal(t, 92.0, table.Rates[currency.RUB])
	assert.True(t, table.Timestamp.Equal(later))
	assert.Equal(t, 2, store.writes)
	assert.Equal(t, uint64(1), source.GetRatesAfterCounter())

	cached, ok := c.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, 92.0, cached.Rates[currency.RUB])
	assert.True(t, cached.Timestamp.After(t0))
}

func Test_OnFailuresBelowLimit_ShouldSucceedAndCache(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	store := &memStore{}
	c := newTestCache(store, &clock{now: t0})

	source := mock.NewRatesSourceMock(m).GetRatesMock.Set(replies(t,
		reply{err: networkErr()},
		reply{err: networkErr()},
		reply{table: sampleTable()},
	))

	fetcher := NewFetcher(c, source, retryConfig(m, 3, time.Millisecond))
	table, err := fetcher.FetchRates(ctx)
	require.NoError(t, err)

	assert.Equal(t, sampleTable().Rates, table.Rates)
	assert.Equal(t, 1, store.writes)
	assert.Equal(t, uint64(3), source.GetRatesAfterCounter())

	cached, ok := c.Load(ctx)
	require.True(t, ok)
	assert.Equal(t, sampleTable().Rates, cached.Rates)
}

func Test_OnFailuresAtLimit_ShouldBeUnavailableAndKeepCache(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	clk := &clock{now: t0}
	store := &memStore{}
	c := newTestCache(store, clk)
	_, err := c.Save(ctx, sampleTable())
	require.NoError(t, err)
	before := append([]byte(nil), store.data...)
	clk.now = t0.Add(3 * time.Hour)

	source := mock.NewRatesSourceMock(m).GetRatesMock.Return(currency.RateTable{}, networkErr())

	fetcher := NewFetcher(c, source, retryConfig(m, 3, time.Millisecond))
	_, err = fetcher.FetchRates(ctx)

	require.Error(t, err)
	assert.True(t, errors.Is(err, customerr.ErrUnavailable))
	assert.True(t, customerr.IsNetwork(err))
	assert.Equal(t, before, store.data)
	assert.Equal(t, 1, store.writes)
	assert.Equal(t, uint64(3), source.GetRatesAfterCounter())
}

func Test_OnParseError_ShouldNotRetry(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	source := mock.NewRatesSourceMock(m).GetRatesMock.
		Return(currency.RateTable{}, &customerr.ParseError{Err: errors.New("response has no rates")})

	fetcher := NewFetcher(newTestCache(&memStore{}, &clock{now: t0}), source, retryConfig(m, 5, 0))
	_, err := fetcher.FetchRates(context.Background())

	require.Error(t, err)
	assert.True(t, errors.Is(err, customerr.ErrUnavailable))
	assert.True(t, customerr.IsParse(err))
	assert.Equal(t, uint64(1), source.GetRatesAfterCounter())
}

func Test_OnEmptyTableFromSource_ShouldTreatAsParseError(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	source := mock.NewRatesSourceMock(m).GetRatesMock.
		Return(currency.RateTable{Base: currency.USD, Rates: map[string]float64{}}, nil)

	store := &memStore{}
	fetcher := NewFetcher(newTestCache(store, &clock{now: t0}), source, retryConfig(m, 3, 0))
	_, err := fetcher.FetchRates(context.Background())

	require.Error(t, err)
	assert.True(t, customerr.IsParse(err))
	assert.Equal(t, 0, store.writes)
	assert.Equal(t, uint64(1), source.GetRatesAfterCounter())
}

func Test_OnCacheWriteFailure_ShouldStillReturnRates(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	stamped := sampleTable()
	stamped.Timestamp = t0
	ratesCache := mock.NewRatesCacheMock(m).
		LoadMock.Return(currency.RateTable{}, false).
		SaveMock.Inspect(func(_ context.Context, table currency.RateTable) {
			assert.Equal(m, 90.5, table.Rates[currency.RUB])
		}).
		Return(stamped, &customerr.CacheWriteError{Err: errors.New("disk full")})
	source := mock.NewRatesSourceMock(m).GetRatesMock.Return(sampleTable(), nil)

	table, err := NewFetcher(ratesCache, source, retryConfig(m, 3, 0)).FetchRates(ctx)
	require.NoError(t, err)
	assert.Equal(t, 90.5, table.Rates[currency.RUB])
	assert.True(t, table.Timestamp.Equal(t0))
}

func Test_OnZeroRetries_ShouldStillTryOnce(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()

	source := mock.NewRatesSourceMock(m).GetRatesMock.Return(currency.RateTable{}, networkErr())

	fetcher := NewFetcher(newTestCache(&memStore{}, &clock{now: t0}), source, retryConfig(m, 0, 0))
	_, err := fetcher.FetchRates(context.Background())

	assert.True(t, errors.Is(err, customerr.ErrUnavailable))
	assert.Equal(t, uint64(1), source.GetRatesAfterCounter())
}

func Test_OnCancelledContext_ShouldStopRetrying(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	m := minimock.NewController(t)
	defer m.Finish()

	source := mock.NewRatesSourceMock(m).GetRatesMock.Set(func(context.Context) (currency.RateTable, error) {
		cancel()
		return currency.RateTable{}, networkErr()
	})

	fetcher := NewFetcher(newTestCache(&memStore{}, &clock{now: t0}), source, retryConfig(m, 5, time.Hour))
	_, err := fetcher.FetchRates(ctx)

	assert.True(t, errors.Is(err, customerr.ErrUnavailable))
	assert.Equal(t, uint64(1), source.GetRatesAfterCounter())
}

func Test_OnConcurrentMisses_ShouldShareOneRefresh(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	store := &countingStore{MemoryStore: cache.NewMemoryStore()}
	source := mock.NewRatesSourceMock(m).GetRatesMock.Set(func(context.Context) (currency.RateTable, error) {
		time.Sleep(20 * time.Millisecond)
		return sampleTable(), nil
	})
	fetcher := NewFetcher(NewCache(store, time.Hour), source, retryConfig(m, 3, 0))

	const callers = 16
	var (
		wg    sync.WaitGroup
		start = make(chan struct{})
		errs  = make(chan error, callers)
	)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			<-start
			table, err := fetcher.FetchRates(ctx)
			if err == nil && table.Rates[currency.RUB] != 90.5 {
				err = errors.New("wrong RUB rate")
			}
			errs <- err
		}()
	}
	close(start)
	wg.Wait()
	close(errs)

	for err := range errs {
		assert.NoError(t, err)
	}
	assert.Equal(t, uint64(1), source.GetRatesAfterCounter())
	assert.Equal(t, int32(1), store.writes.Load())
}

func Test_OnCacheHit_ShouldTagSpan(t *testing.T) {
	tracer := mocktracer.New()
	opentracing.SetGlobalTracer(tracer)
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	m := minimock.NewController(t)
	defer m.Finish()

	ratesCache := mock.NewRatesCacheMock(m).LoadMock.Return(sampleTable(), true)
	fetcher := NewFetcher(ratesCache, mock.NewRatesSourceMock(m), retryConfig(m, 1, 0))
	_, err := fetcher.FetchRates(context.Background())
	require.NoError(t, err)

	spans := tracer.FinishedSpans()
	require.Len(t, spans, 1)
	assert.Equal(t, "rates.FetchRates", spans[0].OperationName)
	assert.Equal(t, true, spans[0].Tag("cache_hit"))
}
