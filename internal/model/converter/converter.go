package converter

import (
	"context"
	"strings"
	"sync"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/usd-converter/internal/entity/currency"
	"max.ks1230/usd-converter/internal/logger"
	"max.ks1230/usd-converter/internal/model/customerr"
)

// Interface converts USD amounts into one target currency.
type Interface interface {
	Convert(amountUSD float64, to string) (float64, error)
	Currency() string
}

type rateFetcher interface {
	FetchRates(ctx context.Context) (currency.RateTable, error)
}

// Converter converts USD into a single currency. The rate is read once when
// the converter is built and kept until Refresh is called.
type Converter struct {
	code    string
	fetcher rateFetcher

	mu   sync.RWMutex
	rate float64
	err  error
}

// New builds a converter for code and loads its rate. A failed load is not
// an error here; Convert reports it as unavailable until Refresh succeeds.
func New(ctx context.Context, code string, fetcher rateFetcher) *Converter {
	c := &Converter{
		code:    strings.ToUpper(code),
		fetcher: fetcher,
	}
	if err := c.Refresh(ctx); err != nil {
		logger.Warn("converter started without a rate", zap.String("currency", c.code), zap.Error(err))
	}
	return c
}

func NewUsdRub(ctx context.Context, fetcher rateFetcher) *Converter {
	return New(ctx, currency.RUB, fetcher)
}

func NewUsdEur(ctx context.Context, fetcher rateFetcher) *Converter {
	return New(ctx, currency.EUR, fetcher)
}

func NewUsdGbp(ctx context.Context, fetcher rateFetcher) *Converter {
	return New(ctx, currency.GBP, fetcher)
}

func NewUsdCny(ctx context.Context, fetcher rateFetcher) *Converter {
	return New(ctx, currency.CNY, fetcher)
}

func (c *Converter) Currency() string {
	return c.code
}

// Refresh replaces the stored rate with the fetcher's current one.
// On failure the previous rate is dropped.
func (c *Converter) Refresh(ctx context.Context) error {
	rate, err := c.lookup(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()
	c.rate, c.err = rate, err
	return err
}

func (c *Converter) lookup(ctx context.Context) (float64, error) {
	table, err := c.fetcher.FetchRates(ctx)
	if err != nil {
		return 0, errors.Wrapf(err, "rates for %s", c.code)
	}
	rate, ok := table.Rate(c.code)
	if !ok || rate <= 0 {
		return 0, errors.Wrapf(customerr.ErrUnavailable, "no rate for %s", c.code)
	}
	return rate, nil
}

// Convert returns amountUSD expressed in to. It fails with ErrUnsupported
// unless to is exactly the converter's own code and with ErrUnavailable
// when no rate is known.
func (c *Converter) Convert(amountUSD float64, to string) (float64, error) {
	if to != c.code {
		return 0, errors.Wrapf(customerr.ErrUnsupported, "%s converter cannot convert to %s", c.code, to)
	}

	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.err != nil {
		return 0, c.err
	}
	return amountUSD * c.rate, nil
}
