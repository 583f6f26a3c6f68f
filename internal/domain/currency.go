package domain

import "github.com/pkg/errors"

// Currency ISO 4217 three-letter code.
type Currency string

const (
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
	CurrencyCNY Currency = "CNY"
	CurrencyRUB Currency = "RUB"
	CurrencyGBP Currency = "GBP"
	CurrencyBRL Currency = "BRL"
)

var supportedCurrencies = map[Currency]struct{}{
	CurrencyUSD: {},
	CurrencyEUR: {},
	CurrencyCNY: {},
	CurrencyRUB: {},
	CurrencyGBP: {},
	CurrencyBRL: {},
}

// String returns the string representation.
func (c Currency) String() string {
	return string(c)
}

// IsValid checks if the Currency is supported.
func (c Currency) IsValid() bool {
	_, ok := supportedCurrencies[c]
	return ok
}

// Validate distinguishes a malformed code from a well-formed but
// unsupported one, so callers can tell the two failure modes apart.
func (c Currency) Validate() error {
	if len(c) != 3 {
		return errors.Wrapf(ErrInvalidCurrencyFormat, "%q", string(c))
	}
	for _, r := range c {
		if r < 'A' || r > 'Z' {
			return errors.Wrapf(ErrInvalidCurrencyFormat, "%q", string(c))
		}
	}
	if !c.IsValid() {
		return errors.Wrapf(ErrUnsupportedCurrency, "%s", string(c))
	}
	return nil
}
