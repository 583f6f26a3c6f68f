// Package aggregator combines normalized quotes into ranked per-item views.
package aggregator

import (
	"sort"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/loadoutkit/pricefeed/internal/domain"
)

// Aggregator computes ranked price views over fee-inclusive USD quotes.
// Ranking is always by total cost, never by raw price: a lower base price
// with heavier fees loses to a pricier listing with lighter fees.
type Aggregator struct {
	logger *zap.Logger
	now    func() time.Time
}

// New creates an Aggregator. The clock is injected so freshness and
// aggregation timestamps are testable without a real clock.
func New(logger *zap.Logger, now func() time.Time) *Aggregator {
	if now == nil {
		now = time.Now
	}
	return &Aggregator{logger: logger, now: now}
}

// Aggregate ranks all quotes for one item by total cost ascending and
// derives the lowest offer, the savings spread and the freshness tier.
//
// An empty quote list is a valid "no data" state, not an error. Any quote
// with a non-positive price or total cost fails the entire call: silently
// dropping a bad quote could misrepresent the lowest price to the user.
func (a *Aggregator) Aggregate(itemID, itemName string, quotes []domain.Quote) (domain.AggregatedView, error) {
	now := a.now()

	view := domain.AggregatedView{
		ItemID:       itemID,
		ItemName:     itemName,
		Savings:      decimal.Zero,
		Freshness:    domain.FreshnessInfo{Status: domain.FreshnessPaused},
		AggregatedAt: now,
	}

	if len(quotes) == 0 {
		return view, nil
	}

	for _, q := range quotes {
		if q.Price.LessThanOrEqual(decimal.Zero) {
			return domain.AggregatedView{}, errors.Wrapf(domain.ErrInvalidQuoteInBatch,
				"item %s platform %s price %s", itemID, q.Platform, q.Price.String())
		}
		if q.TotalCost.LessThanOrEqual(decimal.Zero) {
			return domain.AggregatedView{}, errors.Wrapf(domain.ErrInvalidQuoteInBatch,
				"item %s platform %s total cost %s", itemID, q.Platform, q.TotalCost.String())
		}
	}

	// Sort a copy: the caller's slice is read-only and may be shared
	// across concurrent aggregations.
	sorted := make([]domain.Quote, len(quotes))
	copy(sorted, quotes)
	sort.SliceStable(sorted, func(i, j int) bool {
		if !sorted[i].TotalCost.Equal(sorted[j].TotalCost) {
			return sorted[i].TotalCost.LessThan(sorted[j].TotalCost)
		}
		return sorted[i].Platform < sorted[j].Platform
	})

	view.AllQuotes = sorted
	view.Lowest = &sorted[0]

	savings := sorted[len(sorted)-1].TotalCost.Sub(sorted[0].TotalCost).Round(2)
	if savings.IsNegative() {
		savings = decimal.Zero
	}
	view.Savings = savings

	// The freshest quote determines overall freshness: one lagging
	// platform must not downgrade an item that has current data elsewhere.
	newest := sorted[0].LastUpdated
	for _, q := range sorted[1:] {
		if q.LastUpdated.After(newest) {
			newest = q.LastUpdated
		}
	}
	view.Freshness = domain.ClassifyFreshness(newest, now)

	return view, nil
}

// AggregateBulk aggregates each item independently and sums the lowest
// total costs and the per-item savings. Items without quotes contribute
// zero to both totals. TotalSavings is the sum of per-item spreads, which
// is deliberately not the spread of the summed totals.
//
// Any invalid quote anywhere in the batch fails the whole call.
func (a *Aggregator) AggregateBulk(items []domain.BulkItem) (domain.BulkPriceResponse, error) {
	resp := domain.BulkPriceResponse{
		Items:           make([]domain.AggregatedView, 0, len(items)),
		TotalLowestCost: decimal.Zero,
		TotalSavings:    decimal.Zero,
	}

	for _, item := range items {
		view, err := a.Aggregate(item.ItemID, item.ItemName, item.Quotes)
		if err != nil {
			return domain.BulkPriceResponse{}, errors.Wrapf(err, "bulk aggregation failed at item %s", item.ItemID)
		}

		resp.Items = append(resp.Items, view)
		if view.Lowest != nil {
			resp.TotalLowestCost = resp.TotalLowestCost.Add(view.Lowest.TotalCost)
		}
		resp.TotalSavings = resp.TotalSavings.Add(view.Savings)
	}

	if a.logger != nil {
		a.logger.Info("bulk aggregation finished",
			zap.Int("items", len(items)),
			zap.String("total_lowest_cost", resp.TotalLowestCost.String()),
			zap.String("total_savings", resp.TotalSavings.String()))
	}

	return resp, nil
}
