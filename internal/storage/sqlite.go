// Package storage persists quote observations and aggregated views.
//
// The store is a plain snapshot log the aggregation core writes into and
// the read side queries by item. No pricing logic lives here.
package storage

import (
	"os"
	"path/filepath"
	"time"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/loadoutkit/pricefeed/internal/domain"
)

// QuoteSnapshot one observed marketplace quote, monetary values kept as
// decimal strings to avoid float drift in the database.
type QuoteSnapshot struct {
	ID          string `gorm:"primaryKey"`
	ItemID      string `gorm:"index;not null"`
	Platform    string `gorm:"not null"`
	Price       string `gorm:"not null"`
	Currency    string `gorm:"not null"`
	TotalCost   string `gorm:"not null"`
	ListingURL  string
	LastUpdated time.Time
	CreatedAt   time.Time `gorm:"index"`
}

// ViewSnapshot one aggregation result for one item.
type ViewSnapshot struct {
	ID             string `gorm:"primaryKey"`
	ItemID         string `gorm:"index;not null"`
	ItemName       string `gorm:"not null"`
	LowestPlatform string
	LowestCost     string
	Savings        string    `gorm:"not null"`
	Freshness      string    `gorm:"not null"`
	QuoteCount     int       `gorm:"not null"`
	AggregatedAt   time.Time `gorm:"index;not null"`
}

// Store is the SQLite-backed snapshot store.
type Store struct {
	db *gorm.DB
}

// New opens (and migrates) the store at path, creating directories as needed.
func New(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, errors.Wrap(err, "failed to create storage directory")
		}
	}

	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to open database")
	}

	if err := db.AutoMigrate(&QuoteSnapshot{}, &ViewSnapshot{}); err != nil {
		return nil, errors.Wrap(err, "failed to migrate database")
	}

	return &Store{db: db}, nil
}

// SaveView records an aggregation result together with the quotes it ranked.
func (s *Store) SaveView(view domain.AggregatedView) error {
	snapshot := ViewSnapshot{
		ID:           uuid.New().String(),
		ItemID:       view.ItemID,
		ItemName:     view.ItemName,
		Savings:      view.Savings.String(),
		Freshness:    view.Freshness.Status.String(),
		QuoteCount:   len(view.AllQuotes),
		AggregatedAt: view.AggregatedAt,
	}
	if view.Lowest != nil {
		snapshot.LowestPlatform = view.Lowest.Platform.String()
		snapshot.LowestCost = view.Lowest.TotalCost.String()
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&snapshot).Error; err != nil {
			return errors.Wrap(err, "failed to save view snapshot")
		}
		for _, q := range view.AllQuotes {
			row := QuoteSnapshot{
				ID:          uuid.New().String(),
				ItemID:      view.ItemID,
				Platform:    q.Platform.String(),
				Price:       q.Price.String(),
				Currency:    q.Currency.String(),
				TotalCost:   q.TotalCost.String(),
				ListingURL:  q.ListingURL,
				LastUpdated: q.LastUpdated,
				CreatedAt:   view.AggregatedAt,
			}
			if err := tx.Create(&row).Error; err != nil {
				return errors.Wrap(err, "failed to save quote snapshot")
			}
		}
		return nil
	})
}

// LatestView returns the most recent view snapshot for an item, or nil
// when the item has never been aggregated.
func (s *Store) LatestView(itemID string) (*ViewSnapshot, error) {
	var snapshot ViewSnapshot
	err := s.db.Where("item_id = ?", itemID).Order("aggregated_at DESC").First(&snapshot).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to load view snapshot")
	}
	return &snapshot, nil
}

// LowestCostDecimal parses the stored lowest cost back into a decimal.
func (v *ViewSnapshot) LowestCostDecimal() (decimal.Decimal, error) {
	if v.LowestCost == "" {
		return decimal.Zero, nil
	}
	return decimal.NewFromString(v.LowestCost)
}
