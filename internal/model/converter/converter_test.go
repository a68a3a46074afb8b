package converter

import (
	"context"
	"errors"
	"testing"

	"github.com/gojuno/minimock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"max.ks1230/usd-converter/internal/entity/currency"
	"max.ks1230/usd-converter/internal/model/converter/mock"
	"max.ks1230/usd-converter/internal/model/customerr"
)

func table(rates map[string]float64) currency.RateTable {
	return currency.RateTable{Base: currency.USD, Rates: rates}
}

func offline() error {
	return &customerr.UnavailableError{Err: errors.New("offline")}
}

func Test_OnCachedRubRate_ShouldConvertHundredDollars(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	fetcher := mock.NewRateFetcherMock(m).FetchRatesMock.Return(table(map[string]float64{"RUB": 90.5}), nil)

	conv := NewUsdRub(context.Background(), fetcher)
	amount, err := conv.Convert(100, "RUB")

	require.NoError(t, err)
	assert.Equal(t, 9050.0, amount)
}

func Test_OnEachVariant_ShouldUseItsOwnCurrency(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	rates := table(map[string]float64{"RUB": 90.5, "EUR": 0.5, "GBP": 0.25, "CNY": 7})
	fetcher := mock.NewRateFetcherMock(m).FetchRatesMock.Return(rates, nil)

	ctx := context.Background()
	expected := map[string]float64{"RUB": 905, "EUR": 5, "GBP": 2.5, "CNY": 70}
	for _, conv := range []Interface{
		NewUsdRub(ctx, fetcher),
		NewUsdEur(ctx, fetcher),
		NewUsdGbp(ctx, fetcher),
		NewUsdCny(ctx, fetcher),
	} {
		amount, err := conv.Convert(10, conv.Currency())
		require.NoError(t, err)
		assert.Equal(t, expected[conv.Currency()], amount, conv.Currency())
	}
}

func Test_OnUnsupportedCurrency_ShouldFailRegardlessOfRates(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	withRates := mock.NewRateFetcherMock(m).FetchRatesMock.Return(table(map[string]float64{"EUR": 0.9, "RUB": 90}), nil)
	withoutRates := mock.NewRateFetcherMock(m).FetchRatesMock.Return(currency.RateTable{}, offline())

	for _, fetcher := range []*mock.RateFetcherMock{withRates, withoutRates} {
		conv := NewUsdEur(context.Background(), fetcher)
		for _, code := range []string{"RUB", "GBP", "JPY", "", "eur", "Eur", " EUR"} {
			_, err := conv.Convert(10, code)
			assert.True(t, errors.Is(err, customerr.ErrUnsupported), code)
		}
	}
}

func Test_OnLowerCaseCode_ShouldBeUnsupported(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	fetcher := mock.NewRateFetcherMock(m).FetchRatesMock.Return(table(map[string]float64{"GBP": 0.8}), nil)

	_, err := NewUsdGbp(context.Background(), fetcher).Convert(10, "gbp")
	assert.True(t, errors.Is(err, customerr.ErrUnsupported))
}

func Test_OnFetcherFailure_ShouldBeUnavailable(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	fetcher := mock.NewRateFetcherMock(m).FetchRatesMock.Return(currency.RateTable{}, offline())

	_, err := NewUsdCny(context.Background(), fetcher).Convert(10, "CNY")
	assert.True(t, errors.Is(err, customerr.ErrUnavailable))
}

func Test_OnMissingCurrencyInTable_ShouldBeUnavailable(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	fetcher := mock.NewRateFetcherMock(m).FetchRatesMock.Return(table(map[string]float64{"EUR": 0.9}), nil)

	_, err := NewUsdRub(context.Background(), fetcher).Convert(10, "RUB")
	assert.True(t, errors.Is(err, customerr.ErrUnavailable))
}

func Test_OnConvert_ShouldReuseRateFromConstruction(t *testing.T) {
	m := minimock.NewController(t)
	defer m.Finish()
	fetcher := mock.NewRateFetcherMock(m).FetchRatesMock.Return(table(map[string]float64{"RUB": 90}), nil)

	conv := NewUsdRub(context.Background(), fetcher)
	for i := 0; i < 3; i++ {
		_, err := conv.Convert(1, "RUB")
		require.NoError(t, err)
	}
	assert.Equal(t, uint64(1), fetcher.FetchRatesAfterCounter())
}

func Test_OnRefresh_ShouldPickUpNewRate(t *testing.T) {
	ctx := context.Background()
	m := minimock.NewController(t)
	defer m.Finish()

	var calls int
	fetcher := mock.NewRateFetcherMock(m).FetchRatesMock.Set(func(context.Context) (currency.RateTable, error) {
		calls++
		if calls == 1 {
			return currency.RateTable{}, offline()
		}
		return table(map[string]float64{"RUB": 95}), nil
	})

	conv := NewUsdRub(ctx, fetcher)
	_, err := conv.Convert(2, "RUB")
	require.True(t, errors.Is(err, customerr.ErrUnavailable))

	require.NoError(t, conv.Refresh(ctx))
	amount, err := conv.Convert(2, "RUB")
	require.NoError(t, err)
	assert.Equal(t, 190.0, amount)
	assert.Equal(t, 2, calls)
}
