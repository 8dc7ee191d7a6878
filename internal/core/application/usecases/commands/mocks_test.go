package commands_test

import (
	"context"

	"taza/internal/core/application/usecases/commands"
	"taza/internal/core/domain/model/client"
	"taza/internal/core/domain/model/delivery"
	"taza/internal/core/domain/model/kernel"
	"taza/internal/core/domain/model/offer"
	"taza/internal/core/domain/model/order"
	"taza/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Update(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOrderRepository) Get(ctx context.Context, id kernel.UUID) (*order.Order, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllOpen(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if o := args.Get(0); o != nil {
		return o.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllAwaitingCourier(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	if o := args.Get(0); o != nil {
		return o.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) GetAllCompletedInCategory(
	ctx context.Context, category order.Category,
) ([]*order.Order, error) {
	args := m.Called(ctx, category)
	if o := args.Get(0); o != nil {
		return o.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockOfferRepository struct{ mock.Mock }

func (m *MockOfferRepository) Add(ctx context.Context, o *offer.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) Update(ctx context.Context, o *offer.Offer) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *MockOfferRepository) Get(ctx context.Context, id kernel.UUID) (*offer.Offer, error) {
	args := m.Called(ctx, id)
	if o := args.Get(0); o != nil {
		return o.(*offer.Offer), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOfferRepository) GetAllForOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*offer.Offer, error) {
	args := m.Called(ctx, orderID)
	if o := args.Get(0); o != nil {
		return o.([]*offer.Offer), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockDeliveryRepository struct{ mock.Mock }

func (m *MockDeliveryRepository) Add(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Update(ctx context.Context, d *delivery.Delivery) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDeliveryRepository) Get(ctx context.Context, id kernel.UUID) (*delivery.Delivery, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDeliveryRepository) GetAllForOrder(
	ctx context.Context, orderID kernel.UUID,
) ([]*delivery.Delivery, error) {
	args := m.Called(ctx, orderID)
	if d := args.Get(0); d != nil {
		return d.([]*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDeliveryRepository) GetAllUnassigned(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if d := args.Get(0); d != nil {
		return d.([]*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDeliveryRepository) GetAllActive(ctx context.Context) ([]*delivery.Delivery, error) {
	args := m.Called(ctx)
	if d := args.Get(0); d != nil {
		return d.([]*delivery.Delivery), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockClientRepository struct{ mock.Mock }

func (m *MockClientRepository) Add(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Update(ctx context.Context, c *client.Client) error {
	args := m.Called(ctx, c)
	return args.Error(0)
}

func (m *MockClientRepository) Get(ctx context.Context, id kernel.UUID) (*client.Client, error) {
	args := m.Called(ctx, id)
	if c := args.Get(0); c != nil {
		return c.(*client.Client), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockMarketRateProvider struct{ mock.Mock }

func (m *MockMarketRateProvider) GetAverage(
	ctx context.Context, category order.Category,
) (float64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(float64), args.Error(1)
}

type MockMarketRateRepository struct{ mock.Mock }

func (m *MockMarketRateRepository) GetAverage(
	ctx context.Context, category order.Category,
) (float64, error) {
	args := m.Called(ctx, category)
	return args.Get(0).(float64), args.Error(1)
}

func (m *MockMarketRateRepository) Save(
	ctx context.Context, category order.Category, average float64,
) error {
	args := m.Called(ctx, category, average)
	return args.Error(0)
}

type MockMarketRateCacheInvalidator struct{ mock.Mock }

func (m *MockMarketRateCacheInvalidator) Invalidate(
	ctx context.Context, category order.Category,
) error {
	args := m.Called(ctx, category)
	return args.Error(0)
}

// MockUoW implements every UoW interface the handlers need, so one mock type
// serves all handler tests.
type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) OrderRepository() ports.OrderRepository {
	args := m.Called()
	return args.Get(0).(ports.OrderRepository)
}

func (m *MockUoW) OfferRepository() ports.OfferRepository {
	args := m.Called()
	return args.Get(0).(ports.OfferRepository)
}

func (m *MockUoW) DeliveryRepository() ports.DeliveryRepository {
	args := m.Called()
	return args.Get(0).(ports.DeliveryRepository)
}

func (m *MockUoW) ClientRepository() ports.ClientRepository {
	args := m.Called()
	return args.Get(0).(ports.ClientRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDeliveryUoWFactory struct{ mock.Mock }

func (m *MockDeliveryUoWFactory) Create() commands.DeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.DeliveryUoW)
}

type MockOrderOfferUoWFactory struct{ mock.Mock }

func (m *MockOrderOfferUoWFactory) Create() commands.OrderOfferUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderOfferUoW)
}

type MockOrderDeliveryUoWFactory struct{ mock.Mock }

func (m *MockOrderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderDeliveryUoW)
}

type MockOrderClientUoWFactory struct{ mock.Mock }

func (m *MockOrderClientUoWFactory) Create() commands.OrderClientUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderClientUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}
