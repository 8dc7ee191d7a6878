package commands

import (
	"context"
)

// CancelOrderCommandHandler aborts an order and every courier leg still
// open for it, in one transaction.
type CancelOrderCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
}

// NewCancelOrderCommandHandler creates a handler for order cancellation.
func NewCancelOrderCommandHandler(uowFactory OrderDeliveryUoWFactory) CancelOrderCommandHandler {
	return CancelOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the cancellation command.
func (h *CancelOrderCommandHandler) Handle(ctx context.Context, cmd CancelOrderCommand) error {
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

	if err = aggregate.Cancel(cmd.Actor()); err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	legs, err := deliveryRepo.GetAllForOrder(ctx, cmd.OrderID())
	if err != nil {
		return err
	}

	for _, leg := range legs {
		if leg.Status().IsTerminal() {
			continue
		}
		if err = leg.Cancel(); err != nil {
			return err
		}
		if err = deliveryRepo.Update(ctx, leg); err != nil {
			return err
		}
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
