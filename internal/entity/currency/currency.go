package currency

import (
	"fmt"
	"time"
)

const (
	USD = "USD"
	RUB = "RUB"
	EUR = "EUR"
	GBP = "GBP"
	CNY = "CNY"
)

// Targets lists the currencies a USD amount is converted into, in output order.
var Targets = []string{RUB, EUR, GBP, CNY}

// RateTable holds rates relative to Base, as of Timestamp.
type RateTable struct {
	Base      string
	Rates     map[string]float64
	Timestamp time.Time
}

// Rate returns the rate for code and whether it is present.
func (t RateTable) Rate(code string) (float64, bool) {
	rate, ok := t.Rates[code]
	return rate, ok
}

// Validate checks that the table has rates and all of them are positive.
func (t RateTable) Validate() error {
	if len(t.Rates) == 0 {
		return fmt.Errorf("rate table is empty")
	}
	for code, rate := range t.Rates {
		if rate <= 0 {
			return fmt.Errorf("rate for %s is not positive: %v", code, rate)
		}
	}
	return nil
}
