// Package raterepo persists per-category market-average prices. The refresh
// job recomputes and upserts rates; command handlers read them when scoring
// an order's price.
package raterepo

import (
	"context"
	"errors"
	"time"

	"taza/internal/core/domain/model/order"
	"taza/internal/core/ports"
	"taza/internal/pkg/errs"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MarketRateDTO represents the database structure for one category average.
type MarketRateDTO struct {
	Category     int     `gorm:"primaryKey"`
	AveragePrice float64 `gorm:"type:decimal(12,2)"`
	UpdatedAt    time.Time
}

// TableName overrides GORM's default naming to use "market_rates".
func (MarketRateDTO) TableName() string {
	return "market_rates"
}

// GormMarketRateRepository implements MarketRateRepository using GORM.
type GormMarketRateRepository struct {
	db *gorm.DB
}

// NewGormMarketRateRepository creates a new GORM market rate repository.
func NewGormMarketRateRepository(db *gorm.DB) *GormMarketRateRepository {
	return &GormMarketRateRepository{db: db}
}

// GetAverage returns the market-average price for a category.
// Returns ports.ErrMarketRateNotFound when the category has no rate yet.
func (r *GormMarketRateRepository) GetAverage(
	ctx context.Context, category order.Category,
) (float64, error) {
	if err := category.Validate(); err != nil {
		return 0, err
	}

	var dto MarketRateDTO
	if err := r.db.WithContext(ctx).First(&dto, "category = ?", int(category)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, ports.ErrMarketRateNotFound
		}
		return 0, err
	}

	return dto.AveragePrice, nil
}

// Save upserts the market-average price for a category.
func (r *GormMarketRateRepository) Save(
	ctx context.Context, category order.Category, average float64,
) error {
	if err := category.Validate(); err != nil {
		return err
	}
	if average <= 0 {
		return errs.NewValueIsOutOfRangeError("average", average, 0, nil)
	}

	dto := MarketRateDTO{
		Category:     int(category),
		AveragePrice: average,
		UpdatedAt:    time.Now().UTC(),
	}

	return r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "category"}},
		DoUpdates: clause.AssignmentColumns([]string{"average_price", "updated_at"}),
	}).Create(&dto).Error
}
