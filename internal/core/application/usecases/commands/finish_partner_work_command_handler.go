package commands

import (
	"context"

	"taza/internal/core/domain/model/order"
)

// FinishPartnerWorkCommandHandler moves a partner-flow order from
// PartnerWorking to PartnerDone. The return courier leg is created
// asynchronously by the dispatch job.
type FinishPartnerWorkCommandHandler struct {
	uowFactory OrderUoWFactory
}

// NewFinishPartnerWorkCommandHandler creates a handler for finishing partner work.
func NewFinishPartnerWorkCommandHandler(uowFactory OrderUoWFactory) FinishPartnerWorkCommandHandler {
	return FinishPartnerWorkCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the finish-work command.
func (h *FinishPartnerWorkCommandHandler) Handle(ctx context.Context, cmd FinishPartnerWorkCommand) error {
	if err := cmd.Validate(); err != nil {
		return err
	}

	return mutateOrder(ctx, h.uowFactory, cmd.OrderID(), func(aggregate *order.Order) error {
		return aggregate.FinishWork()
	})
}
