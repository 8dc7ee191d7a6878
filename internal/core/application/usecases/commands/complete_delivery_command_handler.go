package commands

import (
	"context"

	"taza/internal/core/domain/model/client"
	"taza/internal/core/domain/model/delivery"
	"taza/internal/core/domain/model/kernel"
)

// CompleteDeliveryCommandHandler closes a courier leg and advances the
// order accordingly: the pickup leg lands the items at the partner
// (AtPartner), the return leg completes the order and awards the client
// loyalty points.
type CompleteDeliveryCommandHandler struct {
	uowFactory UoWFactory
}

// NewCompleteDeliveryCommandHandler creates a handler for closing legs.
func NewCompleteDeliveryCommandHandler(uowFactory UoWFactory) CompleteDeliveryCommandHandler {
	return CompleteDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the leg completion command.
func (h *CompleteDeliveryCommandHandler) Handle(ctx context.Context, cmd CompleteDeliveryCommand) error {
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

	if err = leg.MarkDelivered(); err != nil {
		return err
	}

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, leg.OrderID())
	if err != nil {
		return err
	}

	switch leg.Kind() {
	case delivery.ToPartner:
		err = aggregate.ArriveAtPartner()
	case delivery.ToClient:
		err = aggregate.DeliverToClient()
	default:
		err = leg.Kind().Validate()
	}
	if err != nil {
		return err
	}

	if leg.Kind() == delivery.ToClient {
		if err = h.awardLoyalty(ctx, uow, aggregate.ClientID()); err != nil {
			return err
		}
	}

	if err = deliveryRepo.Update(ctx, leg); err != nil {
		return err
	}
	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// awardLoyalty credits the completion bonus to the order's client.
func (h *CompleteDeliveryCommandHandler) awardLoyalty(
	ctx context.Context, uow UoW, clientID kernel.UUID,
) error {
	clientRepo := uow.ClientRepository()
	owner, err := clientRepo.Get(ctx, clientID)
	if err != nil {
		return err
	}

	if err = owner.AwardPoints(client.CompletionPoints); err != nil {
		return err
	}

	return clientRepo.Update(ctx, owner)
}
