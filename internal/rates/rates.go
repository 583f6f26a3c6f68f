// Package rates supplies USD exchange rates to the currency normalizer.
package rates

import (
	"github.com/shopspring/decimal"

	"github.com/loadoutkit/pricefeed/internal/domain"
)

// RateSource resolves the USD exchange rate for a currency. Implementations
// own their caching and fallback policy; the aggregation core only consumes
// the resulting rate value.
type RateSource interface {
	Rate(currency domain.Currency) (decimal.Decimal, error)
}
