package commands

import (
	"context"

	"taza/internal/core/domain/model/order"
)

// StartPartnerWorkCommandHandler moves a partner-flow order from AtPartner
// to PartnerWorking.
type StartPartnerWorkCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewStartPartnerWorkCommandHandler creates a handler for starting partner work.
func NewStartPartnerWorkCommandHandler(uowFactory OrderUoWFactory) StartPartnerWorkCommandHandler {
	return StartPartnerWorkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the start-work command.
func (h *StartPartnerWorkCommandHandler) Handle(ctx context.Context, cmd StartPartnerWorkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.StartWork()
	})
}
