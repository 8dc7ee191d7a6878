package commands_test

import (
	"errors"
	"testing"
	"time"

	"taza/internal/core/application/usecases/commands"
	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/order"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newRefreshMarketRatesCommand(t *testing.T) commands.RefreshMarketRatesCommand {
	t.Helper()
	cmd, err := commands.NewRefreshMarketRatesCommand()
	require.NoError(t, err)
	return cmd
}

// restoreCompletedOrder builds a completed direct-flow order with the given
// final price.
func restoreCompletedOrder(t *testing.T, category order.Category, price float64) *order.Order {
	t.Helper()
	cleanerID := kernel.NewUUID()
	completedAt := time.Now().UTC()
	aggregate, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), category,
		mustPrice(t, price), order.Completed, &cleanerID, nil, nil,
		mustEvaluation(t, price, price), time.Now().UTC(), &completedAt)
	require.NoError(t, err)
	return aggregate
}

func TestRefreshMarketRatesCommandHandler_Handle_AveragesCompletedOrders(t *testing.T) {
	ctx := t.Context()
	cmd := newRefreshMarketRatesCommand(t)

	repo := new(MockOrderRepository)
	for _, category := range order.AllCategories() {
		if category == order.Cleaning {
			repo.On("GetAllCompletedInCategory", ctx, category).Return([]*order.Order{
				restoreCompletedOrder(t, category, 10000),
				restoreCompletedOrder(t, category, 14000),
			}, nil).Once()
			continue
		}
		repo.On("GetAllCompletedInCategory", ctx, category).
			Return([]*order.Order{}, nil).Once()
	}

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	rates := new(MockMarketRateRepository)
	rates.On("Save", ctx, order.Cleaning, 12000.0).Return(nil).Once()

	cache := new(MockMarketRateCacheInvalidator)
	cache.On("Invalidate", ctx, order.Cleaning).Return(nil).Once()

	h := commands.NewRefreshMarketRatesCommandHandler(factory, rates, cache)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)

	repo.AssertExpectations(t)
	rates.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestRefreshMarketRatesCommandHandler_Handle_NilCache(t *testing.T) {
	ctx := t.Context()
	cmd := newRefreshMarketRatesCommand(t)

	repo := new(MockOrderRepository)
	for _, category := range order.AllCategories() {
		orders := []*order.Order{}
		if category == order.Shoes {
			orders = append(orders, restoreCompletedOrder(t, category, 4000))
		}
		repo.On("GetAllCompletedInCategory", ctx, category).Return(orders, nil).Once()
	}

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	rates := new(MockMarketRateRepository)
	rates.On("Save", ctx, order.Shoes, 4000.0).Return(nil).Once()

	h := commands.NewRefreshMarketRatesCommandHandler(factory, rates, nil)
	err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	rates.AssertExpectations(t)
}

func TestRefreshMarketRatesCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.RefreshMarketRatesCommand{} // not constructed properly
	h := commands.NewRefreshMarketRatesCommandHandler(
		new(MockOrderUoWFactory), new(MockMarketRateRepository), nil)
	err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestRefreshMarketRatesCommandHandler_Handle_SaveError(t *testing.T) {
	ctx := t.Context()
	cmd := newRefreshMarketRatesCommand(t)
	saveErr := errors.New("connection reset")

	repo := new(MockOrderRepository)
	repo.On("GetAllCompletedInCategory", ctx, mock.AnythingOfType("order.Category")).
		Return([]*order.Order{restoreCompletedOrder(t, order.Clothing, 5000)}, nil)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	rates := new(MockMarketRateRepository)
	rates.On("Save", ctx, mock.AnythingOfType("order.Category"), mock.AnythingOfType("float64")).
		Return(saveErr)

	h := commands.NewRefreshMarketRatesCommandHandler(factory, rates, nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, saveErr)
}

func TestRefreshMarketRatesCommandHandler_Handle_RepositoryError(t *testing.T) {
	ctx := t.Context()
	cmd := newRefreshMarketRatesCommand(t)
	repoErr := errors.New("relation does not exist")

	repo := new(MockOrderRepository)
	repo.On("GetAllCompletedInCategory", ctx, mock.AnythingOfType("order.Category")).
		Return(nil, repoErr)

	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil)
	uow.On("OrderRepository").Return(repo)
	uow.On("Rollback", ctx).Return(nil)

	factory := new(MockOrderUoWFactory)
	factory.On("Create").Return(uow)

	h := commands.NewRefreshMarketRatesCommandHandler(factory, new(MockMarketRateRepository), nil)
	err := h.Handle(ctx, cmd)
	require.ErrorIs(t, err, repoErr)
}
