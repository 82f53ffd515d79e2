package gateway

import (
	"context"
	"fmt"
)

// StaticRateConverter implements usecase.CurrencyConverter with a fixed rate
// table quoted as units of currency per EUR. The engine only needs coarse
// conversion for threshold tier selection; live rates are out of scope.
type StaticRateConverter struct {
	ratesPerEUR map[string]float64
}

// NewStaticRateConverter creates a converter for the builtin currencies.
func NewStaticRateConverter() *StaticRateConverter {
	return &StaticRateConverter{
		ratesPerEUR: map[string]float64{
			"EUR": 1.0,
			"CHF": 0.94,
			"GBP": 0.85,
			"USD": 1.08,
			"SGD": 1.45,
		},
	}
}

// Convert converts amount from one currency code to another.
func (c *StaticRateConverter) Convert(ctx context.Context, amount float64, from, to string) (float64, error) {
	if from == to {
		return amount, nil
	}
	fromRate, ok := c.ratesPerEUR[from]
	if !ok {
		return 0, fmt.Errorf("no conversion rate for currency %q", from)
	}
	toRate, ok := c.ratesPerEUR[to]
	if !ok {
		return 0, fmt.Errorf("no conversion rate for currency %q", to)
	}
	return amount / fromRate * toRate, nil
}
