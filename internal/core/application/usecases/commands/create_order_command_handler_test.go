package commands_test

import (
	"errors"
	"testing"

	"taza/internal/core/application/usecases/commands"
	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCreateOrderCommand(t *testing.T) commands.CreateOrderCommand {
	t.Helper()
	cmd, err := commands.NewCreateOrderCommand(
		kernel.NewUUID(), kernel.NewUUID(), order.Cleaning, mustPrice(t, 10000))
	require.NoError(t, err)
	return cmd
}

func TestCreateOrderCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	rates := new(MockMarketRateProvider)
	rates.On("GetAverage", ctx, order.Cleaning).Return(10000.0, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, rates)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	rates.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateOrderCommand{} // not constructed properly
	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory), new(MockMarketRateProvider))
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateOrderCommandHandler_Handle_RatesError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	rates := new(MockMarketRateProvider)
	rates.On("GetAverage", ctx, order.Cleaning).Return(0.0, errors.New("rates down")).Once()

	h := commands.NewCreateOrderCommandHandler(new(MockOrderUoWFactory), rates)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	rates.AssertExpectations(t)
}

func TestCreateOrderCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd := newCreateOrderCommand(t)

	rates := new(MockMarketRateProvider)
	rates.On("GetAverage", ctx, order.Cleaning).Return(10000.0, nil).Once()

	repo := new(MockOrderRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("OrderRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*order.Order")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateOrderCommandHandler(factory, rates)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCreateOrderCommand_Validation(t *testing.T) {
	t.Run("should reject unknown category", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.NewUUID(), order.CategoryUnknown, mustPrice(t, 10000))
		require.Error(t, err)
	})

	t.Run("should reject empty client id", func(t *testing.T) {
		_, err := commands.NewCreateOrderCommand(
			kernel.NewUUID(), kernel.UUID{}, order.Cleaning, mustPrice(t, 10000))
		require.Error(t, err)
	})
}
