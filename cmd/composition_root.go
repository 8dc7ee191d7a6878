package cmd

import (
	"log/slog"

	httpin "taza/internal/adapters/in/http"
	"taza/internal/adapters/out/postgres"
	"taza/internal/adapters/out/postgres/raterepo"
	"taza/internal/adapters/out/redis/ratecache"
	"taza/internal/core/application/usecases/commands"
	"taza/internal/core/application/usecases/queries"
	"taza/internal/core/ports"
	"taza/internal/jobs"

	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

// CompositionRoot wires adapters into the application's use cases. All
// handler factories hand out fresh instances; the shared pieces are the
// database handle, the unit of work factory, and the market rate cache.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	rateRepo   *raterepo.GormMarketRateRepository
	rateCache  *ratecache.Cache
}

// NewCompositionRoot assembles the object graph. The publisher may be nil,
// which disables order event publishing.
func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	redisClient *redis.Client,
	publisher ports.OrderEventPublisher,
) CompositionRoot {
	rateRepo := raterepo.NewGormMarketRateRepository(gormDB)

	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB, publisher),
		rateRepo:   rateRepo,
		rateCache:  ratecache.NewCache(redisClient, rateRepo, ratecache.DefaultTTL),
	}
}

// MarketRateProvider exposes the cached market rates for anything outside
// the handler graph that needs them.
func (c *CompositionRoot) MarketRateProvider() ports.MarketRateProvider {
	return c.rateCache
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateOrderCommandHandler(f, c.rateCache)
}

func (c *CompositionRoot) CreateUpdateOrderPriceCommandHandler() commands.UpdateOrderPriceCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateOrderPriceCommandHandler(f, c.rateCache)
}

func (c *CompositionRoot) CreatePlaceOfferCommandHandler() commands.PlaceOfferCommandHandler {
	var f commands.OrderOfferUoWFactory = FuncOrderOfferUoWFactory(func() commands.OrderOfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPlaceOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptOfferCommandHandler() commands.AcceptOfferCommandHandler {
	var f commands.OrderOfferUoWFactory = FuncOrderOfferUoWFactory(func() commands.OrderOfferUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptOfferCommandHandler(f)
}

func (c *CompositionRoot) CreateStartPartnerWorkCommandHandler() commands.StartPartnerWorkCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartPartnerWorkCommandHandler(f)
}

func (c *CompositionRoot) CreateFinishPartnerWorkCommandHandler() commands.FinishPartnerWorkCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewFinishPartnerWorkCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteOrderCommandHandler() commands.CompleteOrderCommandHandler {
	var f commands.OrderClientUoWFactory = FuncOrderClientUoWFactory(func() commands.OrderClientUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateCancelOrderCommandHandler() commands.CancelOrderCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCancelOrderCommandHandler(f)
}

func (c *CompositionRoot) CreateDispatchDeliveriesCommandHandler() commands.DispatchDeliveriesCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewDispatchDeliveriesCommandHandler(f)
}

func (c *CompositionRoot) CreateAcceptDeliveryCommandHandler() commands.AcceptDeliveryCommandHandler {
	var f commands.OrderDeliveryUoWFactory = FuncOrderDeliveryUoWFactory(func() commands.OrderDeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAcceptDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreatePickUpDeliveryCommandHandler() commands.PickUpDeliveryCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewPickUpDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateStartDeliveryTransitCommandHandler() commands.StartDeliveryTransitCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewStartDeliveryTransitCommandHandler(f)
}

func (c *CompositionRoot) CreateCompleteDeliveryCommandHandler() commands.CompleteDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCompleteDeliveryCommandHandler(f)
}

func (c *CompositionRoot) CreateRefreshMarketRatesCommandHandler() commands.RefreshMarketRatesCommandHandler {
	var f commands.OrderUoWFactory = FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRefreshMarketRatesCommandHandler(f, c.rateRepo, c.rateCache)
}

func (c *CompositionRoot) CreateGetOpenOrdersQueryHandler() queries.GetOpenOrdersQueryHandler {
	return queries.NewGetOpenOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderOffersQueryHandler() queries.GetOrderOffersQueryHandler {
	return queries.NewGetOrderOffersQueryHandler(c.gormDB, c.rateCache)
}

func (c *CompositionRoot) CreateGetActiveDeliveriesQueryHandler() queries.GetActiveDeliveriesQueryHandler {
	return queries.NewGetActiveDeliveriesQueryHandler(c.gormDB)
}

// CreateHTTPServer builds the REST server over the full handler set.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateCreateOrderCommandHandler(),
		c.CreateUpdateOrderPriceCommandHandler(),
		c.CreatePlaceOfferCommandHandler(),
		c.CreateAcceptOfferCommandHandler(),
		c.CreateStartPartnerWorkCommandHandler(),
		c.CreateFinishPartnerWorkCommandHandler(),
		c.CreateCompleteOrderCommandHandler(),
		c.CreateCancelOrderCommandHandler(),
		c.CreateAcceptDeliveryCommandHandler(),
		c.CreatePickUpDeliveryCommandHandler(),
		c.CreateStartDeliveryTransitCommandHandler(),
		c.CreateCompleteDeliveryCommandHandler(),
		c.CreateGetOpenOrdersQueryHandler(),
		c.CreateGetOrderOffersQueryHandler(),
		c.CreateGetActiveDeliveriesQueryHandler(),
	)
}

// CreateJobManager builds the background job manager.
func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateDispatchDeliveriesCommandHandler(),
		c.CreateRefreshMarketRatesCommandHandler(),
		logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncOrderOfferUoWFactory func() commands.OrderOfferUoW

func (f FuncOrderOfferUoWFactory) Create() commands.OrderOfferUoW {
	return f()
}

type FuncOrderDeliveryUoWFactory func() commands.OrderDeliveryUoW

func (f FuncOrderDeliveryUoWFactory) Create() commands.OrderDeliveryUoW {
	return f()
}

type FuncOrderClientUoWFactory func() commands.OrderClientUoW

func (f FuncOrderClientUoWFactory) Create() commands.OrderClientUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
