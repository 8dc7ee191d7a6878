package commands

import (
	"context"

	"taza/internal/core/domain/model/client"
)

// CompleteOrderCommandHandler completes a direct-flow order on client
// confirmation and awards the loyalty bonus in the same transaction.
// A second confirmation fails: Completed is terminal.
type CompleteOrderCommandHandler struct {
	uowFactory OrderClientUoWFactory
}

// NewCompleteOrderCommandHandler creates a handler for order completion.
func NewCompleteOrderCommandHandler(uowFactory OrderClientUoWFactory) CompleteOrderCommandHandler {
	return CompleteOrderCommandHandler{
		uowFactory: uowFactory,
	}
}

// Handle processes the completion command.
func (h *CompleteOrderCommandHandler) Handle(ctx context.Context, cmd CompleteOrderCommand) error {
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

	if err = aggregate.ConfirmCompletion(); err != nil {
		return err
	}

	clientRepo := uow.ClientRepository()
	owner, err := clientRepo.Get(ctx, aggregate.ClientID())
	if err != nil {
		return err
	}
	if err = owner.AwardPoints(client.CompletionPoints); err != nil {
		return err
	}
	if err = clientRepo.Update(ctx, owner); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
