package domain

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCurrency_Validate_MalformedVsUnsupported(t *testing.T) {
	// malformed codes fail with the format error
	for _, code := range []Currency{"", "US", "usd", "EURO", "U$D"} {
		err := code.Validate()
		require.ErrorIs(t, err, ErrInvalidCurrencyFormat, string(code))
	}

	// well-formed but unknown codes fail with the unsupported error
	for _, code := range []Currency{"JPY", "KRW", "CHF"} {
		err := code.Validate()
		require.ErrorIs(t, err, ErrUnsupportedCurrency, string(code))
	}

	for _, code := range []Currency{CurrencyUSD, CurrencyEUR, CurrencyCNY, CurrencyRUB, CurrencyGBP, CurrencyBRL} {
		require.NoError(t, code.Validate(), string(code))
	}
}
