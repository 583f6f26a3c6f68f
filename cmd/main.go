// Command pricefeed aggregates marketplace price quotes for CS2 items
// into ranked per-item views.
//
// It reads a JSON quote feed produced by marketplace sync jobs, converts
// every quote to a fee-inclusive USD total cost, ranks the quotes per
// item, and persists both the observations and the computed views.
//
// Usage:
//
//	pricefeed --config config.yaml
//	pricefeed (uses built-in defaults)
package main

import (
	"encoding/json"
	"log"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"github.com/loadoutkit/pricefeed/config"
	"github.com/loadoutkit/pricefeed/internal/domain"
	"github.com/loadoutkit/pricefeed/internal/logx"
	"github.com/loadoutkit/pricefeed/internal/rates"
	"github.com/loadoutkit/pricefeed/internal/services/aggregator"
	"github.com/loadoutkit/pricefeed/internal/services/normalizer"
	"github.com/loadoutkit/pricefeed/internal/storage"
)

type feedQuote struct {
	Platform          string    `json:"platform"`
	Price             string    `json:"price"`
	Currency          string    `json:"currency"`
	AvailableQuantity *int      `json:"available_quantity,omitempty"`
	ListingURL        string    `json:"listing_url,omitempty"`
	LastUpdated       time.Time `json:"last_updated"`
}

type feedItem struct {
	ItemID   string      `json:"item_id"`
	ItemName string      `json:"item_name"`
	Quotes   []feedQuote `json:"quotes"`
}

func main() {
	cfg, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	logger := logx.New(cfg.LogLevel, cfg.LogDir)
	defer logger.Sync()

	store, err := storage.New(cfg.StoragePath)
	if err != nil {
		logger.Fatal("failed to open storage", zap.Error(err))
	}

	source, err := rates.NewStaticSource(cfg.Rates)
	if err != nil {
		logger.Fatal("invalid rate table", zap.Error(err))
	}

	norm := normalizer.New(source)
	agg := aggregator.New(logger, time.Now)

	items, err := loadFeed(cfg.FeedPath, cfg.FeeSchedules, norm)
	if err != nil {
		logger.Fatal("failed to load quote feed", zap.Error(err))
	}

	resp, err := agg.AggregateBulk(items)
	if err != nil {
		logger.Fatal("aggregation failed", zap.Error(err))
	}

	for _, view := range resp.Items {
		if err := store.SaveView(view); err != nil {
			logger.Fatal("failed to persist view", zap.String("item_id", view.ItemID), zap.Error(err))
		}
		if view.Lowest != nil {
			logger.Info("item aggregated",
				zap.String("item", view.ItemName),
				zap.String("lowest_platform", view.Lowest.Platform.DisplayName()),
				zap.String("lowest_cost", view.Lowest.TotalCost.String()),
				zap.String("savings", view.Savings.String()),
				zap.String("freshness", view.Freshness.Status.String()))
		}
	}

	logger.Info("feed processed",
		zap.Int("items", len(resp.Items)),
		zap.String("total_lowest_cost", resp.TotalLowestCost.String()),
		zap.String("total_savings", resp.TotalSavings.String()))
}

func loadFeed(path string, feeSchedules map[domain.Platform]domain.FeeSchedule, norm *normalizer.Normalizer) ([]domain.BulkItem, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read feed")
	}

	var feed []feedItem
	if err := json.Unmarshal(raw, &feed); err != nil {
		return nil, errors.Wrap(err, "failed to parse feed")
	}

	items := make([]domain.BulkItem, 0, len(feed))
	for _, entry := range feed {
		item := domain.BulkItem{
			ItemID:   entry.ItemID,
			ItemName: entry.ItemName,
			Quotes:   make([]domain.Quote, 0, len(entry.Quotes)),
		}

		for _, fq := range entry.Quotes {
			platform, err := domain.ParsePlatform(fq.Platform)
			if err != nil {
				return nil, errors.Wrapf(err, "item %s", entry.ItemID)
			}
			price, err := decimal.NewFromString(fq.Price)
			if err != nil {
				return nil, errors.Wrapf(err, "item %s platform %s", entry.ItemID, platform)
			}

			quote := domain.Quote{
				Platform:          platform,
				Price:             price,
				Currency:          domain.Currency(fq.Currency),
				Fees:              feeSchedules[platform],
				AvailableQuantity: fq.AvailableQuantity,
				ListingURL:        fq.ListingURL,
				LastUpdated:       fq.LastUpdated,
			}

			normalized, err := norm.NormalizeQuote(quote)
			if err != nil {
				return nil, errors.Wrapf(err, "item %s", entry.ItemID)
			}
			item.Quotes = append(item.Quotes, normalized)
		}

		items = append(items, item)
	}

	return items, nil
}
