package domain

import (
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// Quote is one marketplace's price offer for one item at one point in time.
// Quotes are immutable inputs to aggregation: the engine reads and re-derives,
// it never mutates a caller-supplied Quote.
type Quote struct {
	// Platform marketplace that published the offer.
	Platform Platform `json:"platform"`
	// Price base price in Currency, always positive.
	Price decimal.Decimal `json:"price"`
	// Currency denomination of Price.
	Currency Currency `json:"currency"`
	// Fees the marketplace's fee schedule for this listing.
	Fees FeeSchedule `json:"fees"`
	// TotalCost derived USD cost including all fees, rounded to cents.
	TotalCost decimal.Decimal `json:"total_cost"`
	// AvailableQuantity listings available, nil when the marketplace does not report it.
	AvailableQuantity *int `json:"available_quantity,omitempty"`
	// ListingURL reference link to the listing, informational only.
	ListingURL string `json:"listing_url,omitempty"`
	// LastUpdated when this quote was observed.
	LastUpdated time.Time `json:"last_updated"`
}

// Validate enforces the positivity invariants a quote must satisfy before
// it may enter aggregation. A non-positive price is a failure, never
// silently coerced.
func (q Quote) Validate() error {
	if !q.Platform.IsValid() {
		return errors.Wrapf(ErrUnknownPlatform, "%q", q.Platform.String())
	}
	if q.Price.LessThanOrEqual(decimal.Zero) {
		return errors.Wrapf(ErrInvalidAmount, "platform %s price %s", q.Platform, q.Price.String())
	}
	if err := q.Currency.Validate(); err != nil {
		return err
	}
	if err := q.Fees.Validate(); err != nil {
		return err
	}
	if q.AvailableQuantity != nil && *q.AvailableQuantity < 0 {
		return errors.Wrapf(ErrInvalidAmount, "platform %s quantity %d", q.Platform, *q.AvailableQuantity)
	}
	return nil
}
