package rates

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/require"

	"max.ks1230/usd-converter/internal/clients/cache"
	"max.ks1230/usd-converter/internal/entity/currency"
	"max.ks1230/usd-converter/internal/model/customerr"
	"max.ks1230/usd-converter/internal/model/rates/mock"
)

var t0 = time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)

type memStore struct {
	data     []byte
	writes   int
	writeErr error
}

func (s *memStore) Read(_ context.Context) ([]byte, error) {
	if s.data == nil {
		return nil, cache.ErrNotFound
	}
	return s.data, nil
}

func (s *memStore) Write(_ context.Context, data []byte) error {
	if s.writeErr != nil {
		return s.writeErr
	}
	s.writes++
	s.data = append([]byte(nil), data...)
	return nil
}

type countingStore struct {
	*cache.MemoryStore
	writes atomic.Int32
}

func (s *countingStore) Write(ctx context.Context, data []byte) error {
	s.writes.Add(1)
	return s.MemoryStore.Write(ctx, data)
}

type clock struct {
	now time.Time
}

func (c *clock) Now() time.Time {
	return c.now
}

func newTestCache(store entryStore, clk *clock) *Cache {
	c := NewCache(store, time.Hour)
	c.now = clk.Now
	return c
}

type reply struct {
	table currency.RateTable
	err   error
}

// replies answers source calls in order and fails the test on an extra call.
func replies(t *testing.T, rr ...reply) func(context.Context) (currency.RateTable, error) {
	var n int
	return func(context.Context) (currency.RateTable, error) {
		require.Less(t, n, len(rr), "unexpected source call")
		r := rr[n]
		n++
		return r.table, r.err
	}
}

func retryConfig(m minimock.Tester, attempts int, delay time.Duration) *mock.ConfigMock {
	return mock.NewConfigMock(m).
		MaxRetriesMock.Return(attempts).
		DelayMock.Return(delay)
}

func sampleTable() currency.RateTable {
	return currency.RateTable{
		Base: currency.USD,
		Rates: map[string]float64{
			currency.USD: 1,
			currency.RUB: 90.5,
			currency.EUR: 0.92,
			currency.GBP: 0.79,
			currency.CNY: 7.19,
		},
	}
}

func networkErr() error {
	return &customerr.NetworkError{Err: context.DeadlineExceeded}
}
