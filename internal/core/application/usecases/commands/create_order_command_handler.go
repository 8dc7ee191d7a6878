package commands

import (
	"context"

	"taza/internal/core/domain/model/order"
	"taza/internal/core/domain/model/pricing"
	"taza/internal/core/ports"
)

// CreateOrderCommandHandler handles the business logic for order publication.
// Evaluates the proposed price against the category market average and
// creates the order in New status with its fairness snapshot attached.
type CreateOrderCommandHandler struct {
	uowFactory OrderUoWFactory
	rates      ports.MarketRateProvider
}

// NewCreateOrderCommandHandler creates a handler for order publication.
// Requires an OrderUoWFactory for transactional persistence and a market
// rate provider for the fairness evaluation.
func NewCreateOrderCommandHandler(
	uowFactory OrderUoWFactory, rates ports.MarketRateProvider,
) CreateOrderCommandHandler {
	return CreateOrderCommandHandler{
		uowFactory: uowFactory,
		rates:      rates,
	}
}

// Handle processes the order publication command.
// Uses a transaction to ensure the order is properly persisted or rolled
// back on error.
func (h *CreateOrderCommandHandler) Handle(ctx context.Context, cmd CreateOrderCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	average, err := h.rates.GetAverage(ctx, cmd.Category())
	if err != nil {
		return err
	}

	evaluation, err := pricing.Evaluate(cmd.PriceOffer().Value(), average)
	if err != nil {
		return err
	}

	uow := h.uowFactory.Create()
	if err = uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	aggregate, err := order.NewOrder(
		cmd.OrderID(), cmd.ClientID(), cmd.Category(), cmd.PriceOffer(), evaluation)
	if err != nil {
		return err
	}

	if err = uow.OrderRepository().Add(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
