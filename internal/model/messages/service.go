package messages

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/ext"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"max.ks1230/usd-converter/internal/logger"
)

const (
	PromptMessage = "Enter amount in USD:"

	invalidInputMessage   = "Invalid input. Please enter a whole number of USD."
	negativeAmountMessage = "USD amount cannot be negative."
)

var (
	ErrInvalidAmount  = errors.New(invalidInputMessage)
	ErrNegativeAmount = errors.New(negativeAmountMessage)
)

type amountConverter interface {
	Convert(amountUSD float64, to string) (float64, error)
	Currency() string
}

// Service turns a line typed by the user into one conversion result per converter.
type Service struct {
	converters []amountConverter
}

func NewService(converters ...amountConverter) *Service {
	return &Service{converters: converters}
}

// Result is the outcome of converting Amount USD into Currency.
type Result struct {
	Currency string
	Amount   int64
	Value    float64
	Err      error
}

func (r Result) Failed() bool {
	return r.Err != nil
}

func (r Result) String() string {
	if r.Err != nil {
		return fmt.Sprintf("Failed to convert %d USD to %s.", r.Amount, r.Currency)
	}
	return fmt.Sprintf("%d USD to %s: %s", r.Amount, r.Currency, formatValue(r.Value))
}

// formatValue prints the shortest exact form and always keeps a fractional
// part, so 9050 reads as 9050.0. Very large and very small magnitudes switch
// to exponent form.
func formatValue(v float64) string {
	if abs := math.Abs(v); abs >= 1e16 || (abs != 0 && abs < 1e-4) {
		return strconv.FormatFloat(v, 'e', -1, 64)
	}
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".NI") {
		s += ".0"
	}
	return s
}

// ParseAmount accepts a non-negative whole number of dollars.
func ParseAmount(text string) (int64, error) {
	amount, err := strconv.ParseInt(strings.TrimSpace(text), 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	if amount < 0 {
		return 0, ErrNegativeAmount
	}
	return amount, nil
}

// HandleAmount validates text and converts it with every converter. Input
// errors are returned before any conversion happens; a failed conversion
// only marks its own Result.
func (s *Service) HandleAmount(ctx context.Context, text string) (results []Result, err error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "messages.HandleAmount")
	defer span.Finish()

	start := time.Now()
	defer func() {
		observeResponse(time.Since(start), err != nil)
		if err != nil {
			ext.Error.Set(span, true)
		}
	}()

	amount, err := ParseAmount(text)
	if err != nil {
		logger.Info("rejected amount", zap.String("input", text), zap.Error(err))
		return nil, err
	}

	results = make([]Result, 0, len(s.converters))
	for _, conv := range s.converters {
		results = append(results, s.convert(conv, amount))
	}
	return results, nil
}

func (s *Service) convert(conv amountConverter, amount int64) Result {
	res := Result{Currency: conv.Currency(), Amount: amount}
	res.Value, res.Err = conv.Convert(float64(amount), res.Currency)
	if res.Err != nil {
		logger.Error("conversion failed", zap.String("currency", res.Currency), zap.Error(res.Err))
	}
	countConversion(res.Currency, res.Err == nil)
	return res
}
