package ports

import (
	"context"
	"errors"

	"taza/internal/core/domain/model/order"
)

// ErrMarketRateNotFound is returned when no average price is known for a
// category yet.
var ErrMarketRateNotFound = errors.New("market rate not found")

// MarketRateProvider supplies the current market-average price per category.
// Command handlers read through this interface; the implementation is free
// to cache.
type MarketRateProvider interface {
	// GetAverage returns the market-average price for a category in tenge.
	// Returns ErrMarketRateNotFound when the category has no rate yet.
	GetAverage(ctx context.Context, category order.Category) (float64, error)
}

// MarketRateRepository defines the persistence contract for market-average
// prices. The refresh job recomputes and saves rates; providers read them.
type MarketRateRepository interface {
	MarketRateProvider

	// Save upserts the market-average price for a category.
	Save(ctx context.Context, category order.Category, average float64) error
}
