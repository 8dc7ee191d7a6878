package commands_test

import (
	"testing"

	"taza/internal/core/application/usecases/commands"
	"taza/internal/core/domain/model/order"
	"taza/internal/core/domain/model/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUpdateOrderPriceCommandHandler_Handle_RefreshesSnapshot(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrder(t, order.OffersReceived, false)
	cmd, err := commands.NewUpdateOrderPriceCommand(aggregate.ID(), mustPrice(t, 14000))
	require.NoError(t, err)

	rates := new(MockMarketRateProvider)
	rates.On("GetAverage", mock.Anything, order.Cleaning).Return(10000.0, nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		orderRepo.On("Update", mock.Anything, aggregate).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderPriceCommandHandler(factory, rates)
	err = h.Handle(ctx, cmd)
	require.NoError(t, err)

	assert.InDelta(t, 14000, aggregate.PriceOffer().Value(), 0.001)
	assert.Equal(t, pricing.VIP, aggregate.TazaIndex().Band)
	assert.Equal(t, 140, aggregate.TazaIndex().Index)
	rates.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestUpdateOrderPriceCommandHandler_Handle_FrozenAfterAccept(t *testing.T) {
	ctx := t.Context()
	aggregate := restoreOrder(t, order.InProgress, false)
	cmd, err := commands.NewUpdateOrderPriceCommand(aggregate.ID(), mustPrice(t, 8000))
	require.NoError(t, err)

	rates := new(MockMarketRateProvider)
	rates.On("GetAverage", mock.Anything, order.Cleaning).Return(10000.0, nil).Once()

	orderRepo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(orderRepo).Once(),
		orderRepo.On("Get", mock.Anything, aggregate.ID()).Return(aggregate, nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateOrderPriceCommandHandler(factory, rates)
	err = h.Handle(ctx, cmd)
	require.Error(t, err)
	assert.ErrorIs(t, err, order.ErrCleanerAlreadyChosen)
	assert.InDelta(t, 10000, aggregate.PriceOffer().Value(), 0.001)
	uow.AssertExpectations(t)
}
