package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func validQuote() Quote {
	return Quote{
		Platform:    PlatformCSFloat,
		Price:       decimal.RequireFromString("8.50"),
		Currency:    CurrencyUSD,
		Fees:        FeeSchedule{SellerPercent: decimal.NewFromInt(2)},
		LastUpdated: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestQuote_Validate(t *testing.T) {
	require.NoError(t, validQuote().Validate())
}

func TestQuote_Validate_NonPositivePrice(t *testing.T) {
	q := validQuote()
	q.Price = decimal.NewFromInt(-5)
	require.ErrorIs(t, q.Validate(), ErrInvalidAmount)

	q.Price = decimal.Zero
	require.ErrorIs(t, q.Validate(), ErrInvalidAmount)
}

func TestQuote_Validate_UnknownPlatform(t *testing.T) {
	q := validQuote()
	q.Platform = "dmarket"
	require.ErrorIs(t, q.Validate(), ErrUnknownPlatform)
}

func TestQuote_Validate_BadCurrency(t *testing.T) {
	q := validQuote()
	q.Currency = "usd"
	require.ErrorIs(t, q.Validate(), ErrInvalidCurrencyFormat)

	q.Currency = "JPY"
	require.ErrorIs(t, q.Validate(), ErrUnsupportedCurrency)
}

func TestQuote_Validate_NegativeFees(t *testing.T) {
	q := validQuote()
	q.Fees.SellerPercent = decimal.NewFromInt(-1)
	require.ErrorIs(t, q.Validate(), ErrInvalidFeePercent)

	q = validQuote()
	q.Fees.FixedAmount = decimal.RequireFromString("-0.01")
	require.ErrorIs(t, q.Validate(), ErrInvalidFixedFee)
}

func TestQuote_Validate_NegativeQuantity(t *testing.T) {
	q := validQuote()
	n := -1
	q.AvailableQuantity = &n
	require.ErrorIs(t, q.Validate(), ErrInvalidAmount)
}

func TestFeeSchedule_TotalPercent(t *testing.T) {
	fees := FeeSchedule{
		SellerPercent: decimal.RequireFromString("2.5"),
		BuyerPercent:  decimal.NewFromInt(3),
	}
	require.True(t, fees.TotalPercent().Equal(decimal.RequireFromString("5.5")))
}
