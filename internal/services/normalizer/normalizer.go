// Package normalizer converts marketplace quotes into comparable USD values.
package normalizer

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/loadoutkit/pricefeed/internal/domain"
	"github.com/loadoutkit/pricefeed/internal/rates"
	"github.com/loadoutkit/pricefeed/internal/services/feecalc"
)

var one = decimal.NewFromInt(1)

// NormalizeToUSD converts an amount in a supported currency to USD at the
// given rate, rounding half away from zero to cents once at the end.
// USD is the identity case: the amount passes through untouched so a
// conversion round-trip cannot introduce drift, and any rate other than
// exactly 1 is rejected.
func NormalizeToUSD(amount decimal.Decimal, currency domain.Currency, rate decimal.Decimal) (decimal.Decimal, error) {
	if amount.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, errors.Wrapf(domain.ErrInvalidAmount, "%s", amount.String())
	}
	if rate.LessThanOrEqual(decimal.Zero) {
		return decimal.Decimal{}, errors.Wrapf(domain.ErrInvalidExchangeRate, "%s", rate.String())
	}
	if err := currency.Validate(); err != nil {
		return decimal.Decimal{}, err
	}

	if currency == domain.CurrencyUSD {
		if !rate.Equal(one) {
			return decimal.Decimal{}, errors.Wrapf(domain.ErrInvalidExchangeRate, "USD rate must be 1, got %s", rate.String())
		}
		return amount, nil
	}

	return amount.Mul(rate).Round(2), nil
}

// Normalizer derives the USD total cost of raw marketplace quotes using an
// injected rate source, so a real provider can replace the static table
// without touching the conversion logic.
type Normalizer struct {
	rates rates.RateSource
}

// New creates a Normalizer backed by the given rate source.
func New(source rates.RateSource) *Normalizer {
	return &Normalizer{rates: source}
}

// NormalizeQuote returns a copy of the quote with Price converted to USD
// terms in TotalCost: currency conversion first, then the fee schedule.
// The input quote is read-only and left untouched.
func (n *Normalizer) NormalizeQuote(q domain.Quote) (domain.Quote, error) {
	if err := q.Validate(); err != nil {
		return domain.Quote{}, err
	}

	rate, err := n.rates.Rate(q.Currency)
	if err != nil {
		return domain.Quote{}, errors.Wrapf(err, "platform %s", q.Platform)
	}

	priceUSD, err := NormalizeToUSD(q.Price, q.Currency, rate)
	if err != nil {
		return domain.Quote{}, errors.Wrapf(err, "platform %s", q.Platform)
	}

	totalCost, err := feecalc.ComputeTotalCost(priceUSD, q.Fees)
	if err != nil {
		return domain.Quote{}, errors.Wrapf(err, "platform %s", q.Platform)
	}

	normalized := q
	normalized.TotalCost = totalCost

	return normalized, nil
}
