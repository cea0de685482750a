package cmd

import (
	"log/slog"

	httpin "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/adapters/out/postgres"
	"fulfillment/internal/adapters/out/postgres/cartrepo"
	"fulfillment/internal/adapters/out/postgres/driverrepo"
	"fulfillment/internal/adapters/out/postgres/orderrepo"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/core/ports"
	"fulfillment/internal/jobs"
	"fulfillment/internal/pkg/clock"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	publisher  ports.OrderEventPublisher
	dashboard  services.Dashboard
	clock      clock.Clock
	logger     *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.OrderEventPublisher,
	logger *slog.Logger,
) (CompositionRoot, error) {
	rate, err := kernel.NewMoney(config.EarningsPerOrder)
	if err != nil {
		return CompositionRoot{}, err
	}
	location, err := config.Location()
	if err != nil {
		return CompositionRoot{}, err
	}
	calculator, err := services.NewEarningsCalculator(rate, location)
	if err != nil {
		return CompositionRoot{}, err
	}

	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		publisher:  publisher,
		dashboard:  services.NewDashboard(calculator),
		clock:      clock.NewSystem(),
		logger:     logger,
	}, nil
}

func (c *CompositionRoot) orderUoWFactory() commands.OrderUoWFactory {
	return FuncOrderUoWFactory(func() commands.OrderUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) driverUoWFactory() commands.DriverUoWFactory {
	return FuncDriverUoWFactory(func() commands.DriverUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) crossUoWFactory() commands.UoWFactory {
	return FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) orders() ports.OrderRepository {
	return orderrepo.NewGormOrderRepository(c.gormDB)
}

func (c *CompositionRoot) drivers() ports.DriverRepository {
	return driverrepo.NewGormDriverRepository(c.gormDB)
}

func (c *CompositionRoot) CreateCreateDriverCommandHandler() commands.CreateDriverCommandHandler {
	return commands.NewCreateDriverCommandHandler(c.driverUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCreateOrderCommandHandler() commands.CreateOrderCommandHandler {
	return commands.NewCreateOrderCommandHandler(c.orderUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateTransitionOrderStatusCommandHandler() commands.TransitionOrderStatusCommandHandler {
	return commands.NewTransitionOrderStatusCommandHandler(
		c.orderUoWFactory(), c.publisher, c.clock, c.config.TransitionMaxRetries, c.logger)
}

func (c *CompositionRoot) CreateAssignDriverCommandHandler() commands.AssignDriverCommandHandler {
	return commands.NewAssignDriverCommandHandler(c.crossUoWFactory())
}

func (c *CompositionRoot) CreateAssignReadyOrdersCommandHandler() commands.AssignReadyOrdersCommandHandler {
	return commands.NewAssignReadyOrdersCommandHandler(c.crossUoWFactory(), services.NewDriverDispatcher())
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateClearCartCommandHandler() commands.ClearCartCommandHandler {
	return commands.NewClearCartCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateCheckoutCartCommandHandler() commands.CheckoutCartCommandHandler {
	return commands.NewCheckoutCartCommandHandler(c.crossUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateExpireCartSessionsCommandHandler() commands.ExpireCartSessionsCommandHandler {
	return commands.NewExpireCartSessionsCommandHandler(c.cartUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetAllDriversQueryHandler() queries.GetAllDriversQueryHandler {
	return queries.NewGetAllDriversQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListOrdersQueryHandler() queries.ListOrdersQueryHandler {
	return queries.NewListOrdersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrderQueryHandler() queries.GetOrderQueryHandler {
	return queries.NewGetOrderQueryHandler(c.orders())
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(cartrepo.NewGormCartSessionRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetDriverQueueQueryHandler() queries.GetDriverQueueQueryHandler {
	return queries.NewGetDriverQueueQueryHandler(c.orders(), c.drivers(), c.dashboard)
}

func (c *CompositionRoot) CreateGetDriverEarningsQueryHandler() queries.GetDriverEarningsQueryHandler {
	return queries.NewGetDriverEarningsQueryHandler(c.orders(), c.drivers(), c.dashboard, c.clock)
}

func (c *CompositionRoot) CreateGetDailySeriesQueryHandler() queries.GetDailySeriesQueryHandler {
	return queries.NewGetDailySeriesQueryHandler(c.orders(), c.drivers(), c.dashboard, c.clock)
}

func (c *CompositionRoot) CreateGetStatusDistributionQueryHandler() queries.GetStatusDistributionQueryHandler {
	return queries.NewGetStatusDistributionQueryHandler(c.orders(), c.drivers(), c.dashboard)
}

func (c *CompositionRoot) CreateGetDriverDashboardQueryHandler() queries.GetDriverDashboardQueryHandler {
	return queries.NewGetDriverDashboardQueryHandler(c.orders(), c.drivers(), c.dashboard, c.clock)
}

// HTTPHandlers wires every use case exposed over HTTP.
func (c *CompositionRoot) HTTPHandlers() httpin.Handlers {
	return httpin.Handlers{
		CreateDriver:          c.CreateCreateDriverCommandHandler(),
		CreateOrder:           c.CreateCreateOrderCommandHandler(),
		TransitionOrderStatus: c.CreateTransitionOrderStatusCommandHandler(),
		AssignDriver:          c.CreateAssignDriverCommandHandler(),
		AddCartItem:           c.CreateAddCartItemCommandHandler(),
		RemoveCartItem:        c.CreateRemoveCartItemCommandHandler(),
		ClearCart:             c.CreateClearCartCommandHandler(),
		CheckoutCart:          c.CreateCheckoutCartCommandHandler(),
		GetAllDrivers:         c.CreateGetAllDriversQueryHandler(),
		ListOrders:            c.CreateListOrdersQueryHandler(),
		GetOrder:              c.CreateGetOrderQueryHandler(),
		GetCart:               c.CreateGetCartQueryHandler(),
		GetDriverQueue:        c.CreateGetDriverQueueQueryHandler(),
		GetDriverEarnings:     c.CreateGetDriverEarningsQueryHandler(),
		GetDailySeries:        c.CreateGetDailySeriesQueryHandler(),
		GetStatusDistribution: c.CreateGetStatusDistributionQueryHandler(),
		GetDriverDashboard:    c.CreateGetDriverDashboardQueryHandler(),
	}
}

// JobManager wires the background jobs.
func (c *CompositionRoot) JobManager(observer jobs.JobObserver) (*jobs.JobManager, error) {
	return jobs.NewJobManager(
		c.CreateAssignReadyOrdersCommandHandler(),
		c.CreateExpireCartSessionsCommandHandler(),
		c.config.CartSessionTTL,
		observer,
		c.logger,
	)
}

type FuncOrderUoWFactory func() commands.OrderUoW

func (f FuncOrderUoWFactory) Create() commands.OrderUoW {
	return f()
}

type FuncDriverUoWFactory func() commands.DriverUoW

func (f FuncDriverUoWFactory) Create() commands.DriverUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
