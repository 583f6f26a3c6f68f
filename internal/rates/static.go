package rates

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/loadoutkit/pricefeed/internal/domain"
)

// StaticSource serves rates from a fixed in-memory table, typically loaded
// from configuration. USD always resolves to 1.
type StaticSource struct {
	table map[domain.Currency]decimal.Decimal
}

// NewStaticSource builds a source from a per-currency USD rate table.
// Non-positive rates are rejected at construction so lookups never have to.
func NewStaticSource(table map[domain.Currency]decimal.Decimal) (*StaticSource, error) {
	cloned := make(map[domain.Currency]decimal.Decimal, len(table)+1)
	for currency, rate := range table {
		if err := currency.Validate(); err != nil {
			return nil, err
		}
		if rate.LessThanOrEqual(decimal.Zero) {
			return nil, errors.Wrapf(domain.ErrInvalidExchangeRate, "%s rate %s", currency, rate.String())
		}
		cloned[currency] = rate
	}
	cloned[domain.CurrencyUSD] = decimal.NewFromInt(1)

	return &StaticSource{table: cloned}, nil
}

// Rate returns the USD rate for a currency.
func (s *StaticSource) Rate(currency domain.Currency) (decimal.Decimal, error) {
	if err := currency.Validate(); err != nil {
		return decimal.Decimal{}, err
	}
	rate, ok := s.table[currency]
	if !ok {
		return decimal.Decimal{}, errors.Wrapf(domain.ErrUnsupportedCurrency, "no rate for %s", currency)
	}
	return rate, nil
}
