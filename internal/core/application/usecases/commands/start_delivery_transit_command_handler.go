package commands

import (
	"context"

	"taza/internal/core/domain/model/delivery"
)

// StartDeliveryTransitCommandHandler records the courier entering transit.
type StartDeliveryTransitCommandHandler struct {
	uowFactory DeliveryUoWFactory
}

// NewStartDeliveryTransitCommandHandler creates a handler for transit starts.
func NewStartDeliveryTransitCommandHandler(uowFactory DeliveryUoWFactory) StartDeliveryTransitCommandHandler {
	return StartDeliveryTransitCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the transit start command.
func (h *StartDeliveryTransitCommandHandler) Handle(ctx context.Context, cmd StartDeliveryTransitCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateDelivery(ctx, h.uowFactory, cmd.DeliveryID(), func(leg *delivery.Delivery) error {
		return leg.StartTransit()
	})
}
