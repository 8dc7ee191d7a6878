package commands

import (
	"context"

	"taza/internal/core/domain/model/delivery"
	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/order"
)

// mutateOrder runs a single-aggregate order mutation inside a transaction:
// load, mutate, update, commit, with rollback deferred.
func mutateOrder(
	ctx context.Context,
	uowFactory OrderUoWFactory,
	orderID kernel.UUID,
	mutate func(aggregate *order.Order) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	orderRepo := uow.OrderRepository()
	aggregate, err := orderRepo.Get(ctx, orderID)
	if err != nil {
		return err
	}

	if err = mutate(aggregate); err != nil {
		return err
	}

	if err = orderRepo.Update(ctx, aggregate); err != nil {
		return err
	}

	return uow.Commit(ctx)
}

// mutateDelivery is the delivery-leg counterpart of mutateOrder.
func mutateDelivery(
	ctx context.Context,
	uowFactory DeliveryUoWFactory,
	deliveryID kernel.UUID,
	mutate func(leg *delivery.Delivery) error,
) error {
	uow := uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	deliveryRepo := uow.DeliveryRepository()
	leg, err := deliveryRepo.Get(ctx, deliveryID)
	if err != nil {
		return err
	}

	if err = mutate(leg); err != nil {
		return err
	}

	if err = deliveryRepo.Update(ctx, leg); err != nil {
		return err
	}

	return uow.Commit(ctx)
}
