package commands

import (
	"context"

	"taza/internal/core/domain/model/delivery"
	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/order"
)

// DispatchDeliveriesCommandHandler creates the pending courier legs that
// partner-flow orders are waiting for: a pickup leg for InProgress orders,
// a return leg for PartnerDone orders. Legs already created (in any
// non-cancelled status) are not duplicated, so the handler is safe to run
// repeatedly from a tight cron schedule.
type DispatchDeliveriesCommandHandler struct {
	uowFactory OrderDeliveryUoWFactory
}

// NewDispatchDeliveriesCommandHandler creates a handler for the dispatch scan.
func NewDispatchDeliveriesCommandHandler(
	uowFactory OrderDeliveryUoWFactory,
) DispatchDeliveriesCommandHandler {
	return DispatchDeliveriesCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes one dispatch scan.
func (h *DispatchDeliveriesCommandHandler) Handle(ctx context.Context, cmd DispatchDeliveriesCommand) error {
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

	orders, err := uow.OrderRepository().GetAllAwaitingCourier(ctx)
	if err != nil {
		return err
	}

	deliveryRepo := uow.DeliveryRepository()
	for _, aggregate := range orders {
		kind, ok := neededLegKind(aggregate)
		if !ok {
			continue
		}

		legs, err := deliveryRepo.GetAllForOrder(ctx, aggregate.ID())
		if err != nil {
			return err
		}
		if hasLeg(legs, kind) {
			continue
		}

		leg, err := delivery.NewDelivery(kernel.NewUUID(), aggregate.ID(), kind)
		if err != nil {
			return err
		}
		if err = deliveryRepo.Add(ctx, leg); err != nil {
			return err
		}
	}

	return uow.Commit(ctx)
}

// neededLegKind maps an order status to the courier leg it is waiting for.
func neededLegKind(aggregate *order.Order) (delivery.Kind, bool) {
	if !aggregate.IsPartnerFlow() {
		return delivery.KindUnknown, false
	}

	switch aggregate.Status() {
	case order.InProgress:
		return delivery.ToPartner, true
	case order.PartnerDone:
		return delivery.ToClient, true
	default:
		return delivery.KindUnknown, false
	}
}

func hasLeg(legs []*delivery.Delivery, kind delivery.Kind) bool {
	for _, leg := range legs {
		if leg.Kind() == kind && leg.Status() != delivery.StatusCancelled {
			return true
		}
	}
	return false
}
