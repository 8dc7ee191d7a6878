package commands

import (
	"context"

	"taza/internal/core/domain/model/pricing"
	"taza/internal/core/ports"
)

// UpdateOrderPriceCommandHandler handles price changes on open orders.
// Fails once a cleaner is chosen, because the accepted price is frozen.
type UpdateOrderPriceCommandHandler struct {
	uowFactory OrderUoWFactory
	rates      ports.MarketRateProvider
}

// NewUpdateOrderPriceCommandHandler creates a handler for order repricing.
func NewUpdateOrderPriceCommandHandler(
	uowFactory OrderUoWFactory, rates ports.MarketRateProvider,
) UpdateOrderPriceCommandHandler {
	return UpdateOrderPriceCommandHandler{
		uowFactory: uowFactory,
		rates:      rates,
	}
}

// Handle processes the repricing command, refreshing the fairness snapshot
// from the current market average.
func (h *UpdateOrderPriceCommandHandler) Handle(ctx context.Context, cmd UpdateOrderPriceCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	average, err := h.rates.GetAverage(ctx, aggregate.Category())
	if err != nil {
		return err
	}

	evaluation, err := pricing.Evaluate(cmd.PriceOffer().Value(), average)
	if err != nil {
		return err
	}

	if err = aggregate.UpdatePriceOffer(cmd.PriceOffer(), evaluation); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
