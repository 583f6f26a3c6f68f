// Package domain defines core data structures used throughout the price engine.
package domain

import "github.com/pkg/errors"

var (
	// ErrInvalidAmount is returned when a monetary amount is zero or negative.
	ErrInvalidAmount = errors.New("invalid amount")
	// ErrInvalidExchangeRate is returned when an exchange rate is zero or negative.
	ErrInvalidExchangeRate = errors.New("invalid exchange rate")
	// ErrUnsupportedCurrency is returned for a well-formed currency code outside the supported set.
	ErrUnsupportedCurrency = errors.New("unsupported currency")
	// ErrInvalidCurrencyFormat is returned when a code is not three uppercase letters.
	ErrInvalidCurrencyFormat = errors.New("invalid currency format")
	// ErrInvalidFeePercent is returned when a fee percentage is negative.
	ErrInvalidFeePercent = errors.New("invalid fee percent")
	// ErrInvalidFixedFee is returned when a fixed fee amount is negative.
	ErrInvalidFixedFee = errors.New("invalid fixed fee")
	// ErrInvalidQuoteInBatch is returned when any quote in an aggregation batch
	// fails positivity checks. The whole batch is rejected, never partially aggregated.
	ErrInvalidQuoteInBatch = errors.New("invalid quote in batch")
	// ErrUnknownPlatform is returned when a marketplace identifier cannot be resolved.
	ErrUnknownPlatform = errors.New("unknown platform")
)
