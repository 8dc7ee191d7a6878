package commands

import (
	"context"

	"taza/internal/core/domain/model/delivery"
)

// PickUpDeliveryCommandHandler records the courier collecting the items.
type PickUpDeliveryCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewPickUpDeliveryCommandHandler creates a handler for pickups.
func NewPickUpDeliveryCommandHandler(uowFactory DeliveryUoWFactory) PickUpDeliveryCommandHandler {
	return PickUpDeliveryCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the pickup command.
func (h *PickUpDeliveryCommandHandler) Handle(ctx context.Context, cmd PickUpDeliveryCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateDelivery(ctx, h.uowFactory, cmd.DeliveryID(), func(leg *delivery.Delivery) error {
		return leg.PickUp()
	})
}
