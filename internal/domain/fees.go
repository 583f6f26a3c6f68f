package domain

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// FeeSchedule describes the fees a marketplace charges on top of the base price.
// FixedAmount is denominated in USD; any currency conversion of a fixed fee
// happens upstream, before the schedule reaches the fee calculator.
type FeeSchedule struct {
	// SellerPercent fee charged to the seller, passed through into the price.
	SellerPercent decimal.Decimal `json:"seller_percent"`
	// BuyerPercent fee charged to the buyer on top of the price.
	BuyerPercent decimal.Decimal `json:"buyer_percent"`
	// FixedAmount flat USD fee, zero when the marketplace charges none.
	FixedAmount decimal.Decimal `json:"fixed_amount"`
}

// TotalPercent returns the combined seller and buyer percentage.
func (f FeeSchedule) TotalPercent() decimal.Decimal {
	return f.SellerPercent.Add(f.BuyerPercent)
}

// Validate checks percentages and the fixed fee for negativity.
func (f FeeSchedule) Validate() error {
	if f.SellerPercent.IsNegative() {
		return errors.Wrapf(ErrInvalidFeePercent, "seller percent %s", f.SellerPercent.String())
	}
	if f.BuyerPercent.IsNegative() {
		return errors.Wrapf(ErrInvalidFeePercent, "buyer percent %s", f.BuyerPercent.String())
	}
	if f.FixedAmount.IsNegative() {
		return errors.Wrapf(ErrInvalidFixedFee, "fixed amount %s", f.FixedAmount.String())
	}
	return nil
}
