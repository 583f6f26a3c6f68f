package storage

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	"github.com/loadoutkit/pricefeed/internal/domain"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := New(filepath.Join(t.TempDir(), "pricefeed.db"))
	require.NoError(t, err)
	return store
}

func testView(aggregatedAt time.Time) domain.AggregatedView {
	quotes := []domain.Quote{
		{
			Platform:    domain.PlatformCSFloat,
			Price:       decimal.RequireFromString("8.50"),
			Currency:    domain.CurrencyUSD,
			TotalCost:   decimal.RequireFromString("8.67"),
			LastUpdated: aggregatedAt.Add(-time.Minute),
		},
		{
			Platform:    domain.PlatformSteam,
			Price:       decimal.RequireFromString("10.00"),
			Currency:    domain.CurrencyUSD,
			TotalCost:   decimal.RequireFromString("11.50"),
			LastUpdated: aggregatedAt.Add(-2 * time.Minute),
		},
	}
	return domain.AggregatedView{
		ItemID:       "ak47-redline-ft",
		ItemName:     "AK-47 | Redline (Field-Tested)",
		AllQuotes:    quotes,
		Lowest:       &quotes[0],
		Savings:      decimal.RequireFromString("2.83"),
		Freshness:    domain.FreshnessInfo{Status: domain.FreshnessLive, MinutesAgo: 1},
		AggregatedAt: aggregatedAt,
	}
}

func TestStore_SaveAndLoadView(t *testing.T) {
	store := newTestStore(t)
	aggregatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	require.NoError(t, store.SaveView(testView(aggregatedAt)))

	got, err := store.LatestView("ak47-redline-ft")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "AK-47 | Redline (Field-Tested)", got.ItemName)
	require.Equal(t, "csfloat", got.LowestPlatform)
	require.Equal(t, "live", got.Freshness)
	require.Equal(t, 2, got.QuoteCount)

	lowest, err := got.LowestCostDecimal()
	require.NoError(t, err)
	require.True(t, lowest.Equal(decimal.RequireFromString("8.67")))
}

func TestStore_LatestViewPicksNewest(t *testing.T) {
	store := newTestStore(t)
	first := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	older := testView(first)
	newer := testView(first.Add(10 * time.Minute))
	newer.Savings = decimal.RequireFromString("3.10")

	require.NoError(t, store.SaveView(older))
	require.NoError(t, store.SaveView(newer))

	got, err := store.LatestView("ak47-redline-ft")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, "3.1", got.Savings)
}

func TestStore_LatestViewUnknownItem(t *testing.T) {
	store := newTestStore(t)

	got, err := store.LatestView("missing")
	require.NoError(t, err)
	require.Nil(t, got)
}

func TestStore_EmptyView(t *testing.T) {
	store := newTestStore(t)
	aggregatedAt := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	view := domain.AggregatedView{
		ItemID:       "no-data",
		ItemName:     "No Data",
		Savings:      decimal.Zero,
		Freshness:    domain.FreshnessInfo{Status: domain.FreshnessPaused},
		AggregatedAt: aggregatedAt,
	}
	require.NoError(t, store.SaveView(view))

	got, err := store.LatestView("no-data")
	require.NoError(t, err)
	require.NotNil(t, got)
	require.Equal(t, 0, got.QuoteCount)
	require.Empty(t, got.LowestPlatform)

	lowest, err := got.LowestCostDecimal()
	require.NoError(t, err)
	require.True(t, lowest.IsZero())
}
