package exchangerate

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/usd-converter/internal/entity/currency"
	"max.ks1230/usd-converter/internal/logger"
	"max.ks1230/usd-converter/internal/model/customerr"
)

const (
	maxErrorBody    = 512
	maxResponseBody = 1 << 20
)

type config interface {
	APIURL() string
	RequestTimeout() time.Duration
}

// Client asks a remote rates API for the latest USD-based rate table.
type Client struct {
	url        string
	httpClient *http.Client
}

type ratesResponse struct {
	Base  string              `json:"base"`
	Rates *map[string]float64 `json:"rates"`
}

func New(config config) *Client {
	return &Client{
		url:        config.APIURL(),
		httpClient: &http.Client{Timeout: config.RequestTimeout()},
	}
}

// GetRates performs a single GET against the configured endpoint.
func (c *Client) GetRates(ctx context.Context) (table currency.RateTable, err error) {
	span, ctx := opentracing.StartSpanFromContext(ctx, "exchangerate.GetRates")
	defer span.Finish()
	ext.HTTPUrl.Set(span, c.url)
	defer func() {
		if err != nil {
			ext.Error.Set(span, true)
		}
	}()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return currency.RateTable{}, &customerr.NetworkError{Err: errors.Wrap(err, "build request")}
	}
	req.Header.Set("Accept", "application/json")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return currency.RateTable{}, &customerr.NetworkError{Err: errors.Wrap(err, "do request")}
	}
	defer res.Body.Close()
	ext.HTTPStatusCode.Set(span, uint16(res.StatusCode))

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBody+1))
	if err != nil {
		return currency.RateTable{}, &customerr.NetworkError{Err: errors.Wrap(err, "read body")}
	}
	if len(body) > maxResponseBody {
		return currency.RateTable{}, &customerr.ParseError{
			Err: errors.Errorf("response body exceeds %d bytes", maxResponseBody),
		}
	}

	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		return currency.RateTable{}, &customerr.NetworkError{
			Err: fmt.Errorf("unexpected status %d: %s", res.StatusCode, truncate(body)),
		}
	}

	return parseRates(body)
}

func parseRates(body []byte) (currency.RateTable, error) {
	var resp ratesResponse
	if err := json.Unmarshal(body, &resp); err != nil {
		return currency.RateTable{}, &customerr.ParseError{Err: errors.Wrap(err, "unmarshalling response")}
	}
	if resp.Rates == nil {
		return currency.RateTable{}, &customerr.ParseError{Err: errors.New("response has no rates")}
	}

	rates := make(map[string]float64, len(*resp.Rates))
	for code, rate := range *resp.Rates {
		if rate <= 0 {
			logger.Warn("dropping non-positive rate", zap.String("currency", code), zap.Float64("rate", rate))
			continue
		}
		rates[code] = rate
	}

	base := resp.Base
	if base == "" {
		base = currency.USD
	}
	return currency.RateTable{Base: base, Rates: rates}, nil
}

func truncate(body []byte) string {
	if len(body) > maxErrorBody {
		return string(body[:maxErrorBody]) + "..."
	}
	return string(body)
}
