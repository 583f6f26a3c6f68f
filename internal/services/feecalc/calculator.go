// Package feecalc computes fee-inclusive total costs and their breakdown.
package feecalc

import (
	"github.com/shopspring/decimal"

	"github.com/loadoutkit/pricefeed/internal/domain"
)

var hundred = decimal.NewFromInt(100)

// ComputeTotalCost returns the final USD cost a buyer pays:
// base * (1 + (seller + buyer) / 100) + fixed, rounded to cents once at
// the end. Intermediate values stay unrounded so rounding error cannot
// compound through the fee math.
func ComputeTotalCost(basePriceUSD decimal.Decimal, fees domain.FeeSchedule) (decimal.Decimal, error) {
	if err := fees.Validate(); err != nil {
		return decimal.Decimal{}, err
	}

	multiplier := decimal.NewFromInt(1).Add(fees.TotalPercent().Div(hundred))
	total := basePriceUSD.Mul(multiplier).Add(fees.FixedAmount)

	return total.Round(2), nil
}

// FeeBreakdown absolute USD fee amounts for display. The parts always sum
// exactly to totalCost - basePrice.
type FeeBreakdown struct {
	// PlatformFee the marketplace's cut in dollars.
	PlatformFee decimal.Decimal `json:"platform_fee"`
	// PaymentFee the payment processing cut in dollars.
	PaymentFee decimal.Decimal `json:"payment_fee"`
}

// Breakdown decomposes the fee overhead into platform and payment parts.
// The platform part is computed from the seller percentage and the payment
// part is derived by subtraction, so the identity
// PlatformFee + PaymentFee == totalCost - basePrice holds exactly rather
// than approximately under two independent roundings.
func Breakdown(basePriceUSD, totalCostUSD decimal.Decimal, fees domain.FeeSchedule) FeeBreakdown {
	overhead := totalCostUSD.Sub(basePriceUSD)

	platformFee := basePriceUSD.Mul(fees.SellerPercent).Div(hundred).Round(2)
	if platformFee.GreaterThan(overhead) {
		platformFee = overhead
	}

	return FeeBreakdown{
		PlatformFee: platformFee,
		PaymentFee:  overhead.Sub(platformFee),
	}
}
