package commands_test

import (
	"testing"

	"taza/internal/core/application/usecases/commands"
	"taza/internal/core/domain/model/delivery"
	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/order"
	"taza/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCancelOrderCommandHandler_Handle_CancelsOpenLegs(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrder(t, order.CourierToPartner, true)
	openLeg := restoreDelivery(t, aggregate.ID(), delivery.ToPartner, delivery.StatusAccepted)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), order.ActorClient)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	deliveryRepo := new(MockDeliveryRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("DeliveryRepository").Return(deliveryRepo).Once(),
		deliveryRepo.On("GetAllForOrder", mock.Anything, aggregate.ID()).
			Return([]*delivery.Delivery{openLeg}, nil).Once(),
		deliveryRepo.On("Update", mock.Anything, openLeg).Return(nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.Equal(t, order.Cancelled, aggregate.Status())
	assert.Equal(t, delivery.StatusCancelled, openLeg.Status())
	orderRepo.AssertExpectations(t)
	deliveryRepo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestCancelOrderCommandHandler_Handle_TerminalOrderRejected(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrder(t, order.Completed, false)
	cmd, err := commands.NewCancelOrderCommand(aggregate.ID(), order.ActorClient)
	require.NoError(t, err)

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderDeliveryUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCancelOrderCommandHandler(factory)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, errs.ErrInvalidTransition)
	uow.AssertExpectations(t)
}

func TestNewCancelOrderCommand_RejectsOtherActors(t *testing.T) {
	for _, actor := range []order.Actor{order.ActorCleaner, order.ActorCourier, order.ActorUnknown} {
		_, err := commands.NewCancelOrderCommand(kernel.NewUUID(), actor)
		require.Error(t, err, "actor %s", actor)
		assert.ErrorIs(t, err, commands.ErrCancelActorIsInvalid)
	}
}
