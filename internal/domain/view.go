package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AggregatedView is the computed, ranked summary of all quotes for one item.
type AggregatedView struct {
	ItemID   string `json:"item_id"`
	ItemName string `json:"item_name"`
	// AllQuotes input quotes sorted by total cost ascending, ties broken
	// by platform identifier. The slice is owned by the view, never shared
	// with the caller's input.
	AllQuotes []Quote `json:"all_quotes"`
	// Lowest points at AllQuotes[0], nil when no quotes exist.
	Lowest *Quote `json:"lowest,omitempty"`
	// Savings difference between the most and least expensive total cost,
	// zero for fewer than two quotes.
	Savings decimal.Decimal `json:"savings"`
	// Freshness derived from the most recent quote in the set.
	Freshness FreshnessInfo `json:"freshness"`
	// AggregatedAt when this view was computed.
	AggregatedAt time.Time `json:"aggregated_at"`
}

// BulkItem one item's identity and quotes submitted for bulk aggregation.
type BulkItem struct {
	ItemID   string  `json:"item_id"`
	ItemName string  `json:"item_name"`
	Quotes   []Quote `json:"quotes"`
}

// BulkPriceResponse per-item views plus cross-item totals. TotalSavings is
// the sum of independently computed per-item savings. It is not the savings
// of the summed totals, the two differ whenever items peak on different
// platforms.
type BulkPriceResponse struct {
	Items           []AggregatedView `json:"items"`
	TotalLowestCost decimal.Decimal  `json:"total_lowest_cost"`
	TotalSavings    decimal.Decimal  `json:"total_savings"`
}
