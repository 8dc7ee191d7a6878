package commands

import (
	"context"

	"taza/internal/core/domain/model/order"
	"taza/internal/core/ports"
)

// MarketRateCacheInvalidator drops a cached category average after the
// persistent rate changes.
type MarketRateCacheInvalidator interface {
	Invalidate(ctx context.Context, category order.Category) error
}

// RefreshMarketRatesCommandHandler recomputes the per-category market-average
// price from the final prices of completed orders. Categories with no
// completed orders keep their previous rate (or the launch fallback).
type RefreshMarketRatesCommandHandler struct {
	uowFactory OrderUoWFactory
	rates      ports.MarketRateRepository
	cache      MarketRateCacheInvalidator
}

// NewRefreshMarketRatesCommandHandler creates a handler for the rate refresh.
// The cache invalidator is optional; pass nil when no cache is in front of
// the repository.
func NewRefreshMarketRatesCommandHandler(
	uowFactory OrderUoWFactory,
	rates ports.MarketRateRepository,
	cache MarketRateCacheInvalidator,
) RefreshMarketRatesCommandHandler {
	return RefreshMarketRatesCommandHandler{
		uowFactory: uowFactory,
		rates:      rates,
		cache:      cache,
	}
}

// Handle processes one refresh run.
func (h *RefreshMarketRatesCommandHandler) Handle(ctx context.Context, cmd RefreshMarketRatesCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	for _, category := range order.AllCategories() {
		average, ok, err := h.computeAverage(ctx, category)
		if err != nil {
			return err
		}
		if !ok {
			continue
		}

		if err = h.rates.Save(ctx, category, average); err != nil {
			return err
		}

		if h.cache != nil {
			if err = h.cache.Invalidate(ctx, category); err != nil {
				return err
			}
		}
	}

	return nil
}

// computeAverage averages the final prices of completed orders in a category.
// The second return value is false when the category has no completed orders.
func (h *RefreshMarketRatesCommandHandler) computeAverage(
	ctx context.Context, category order.Category,
) (float64, bool, error) {
	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, false, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orders, err := uow.OrderRepository().GetAllCompletedInCategory(ctx, category)
	if err != nil {
		return 0, false, err
	}
	if len(orders) == 0 {
		return 0, false, nil
	}

	var total float64
	for _, aggregate := range orders {
		total += aggregate.PriceOffer().Value()
	}

	return total / float64(len(orders)), true, nil
}
