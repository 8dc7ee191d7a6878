package commands

import (
	"context"

	"taza/internal/core/domain/model/delivery"
)

// AcceptDeliveryCommandHandler handles a courier taking a leg. The leg and
// the order move in the same transaction: accepting the pickup leg drives
// the order to CourierToPartner, accepting the return leg to
// CourierToClient. Losing a race for the same leg fails on the pinned
// courier check and rolls back.
type AcceptDeliveryCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
}

// NewAcceptDeliveryCommandHandler creates a handler for leg acceptance.
func NewAcceptDeliveryCommandHandler(uowFactory OrderDeliveryUoWFactory) AcceptDeliveryCommandHandler {
	return AcceptDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the leg acceptance command.
func (h *AcceptDeliveryCommandHandler) Handle(ctx context.Context, cmd AcceptDeliveryCommand) error {
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

	deliveryRepo := uow.DeliveryRepository()
	leg, err := deliveryRepo.Get(ctx, cmd.DeliveryID())
	if err != nil {
		return err
	}

	if err = leg.Accept(cmd.CourierID()); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, leg.OrderID())
	if err != nil {
		return err
	}

	switch leg.Kind() {
	case delivery.ToPartner:
		err = aggregate.DispatchToPartner(cmd.CourierID())
	case delivery.ToClient:
		err = aggregate.DispatchToClient(cmd.CourierID())
	default:
		err = leg.Kind().Validate()
	}
	if err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, leg); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
