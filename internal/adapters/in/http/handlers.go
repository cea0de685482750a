package http

import (
	"context"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
)

// The server depends on the use cases through these narrow interfaces; the
// command and query handler structs satisfy them.
type (
	CreateDriverHandler interface {
		Handle(ctx context.Context, cmd commands.CreateDriverCommand) (*driver.Driver, error)
	}
	CreateOrderHandler interface {
		Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error)
	}
	TransitionOrderStatusHandler interface {
		Handle(ctx context.Context, cmd commands.TransitionOrderStatusCommand) (*order.Order, error)
	}
	AssignDriverHandler interface {
		Handle(ctx context.Context, cmd commands.AssignDriverCommand) (*order.Order, error)
	}
	AddCartItemHandler interface {
		Handle(ctx context.Context, cmd commands.AddCartItemCommand) (cart.Session, error)
	}
	RemoveCartItemHandler interface {
		Handle(ctx context.Context, cmd commands.RemoveCartItemCommand) (cart.Session, error)
	}
	ClearCartHandler interface {
		Handle(ctx context.Context, cmd commands.ClearCartCommand) (cart.Session, error)
	}
	CheckoutCartHandler interface {
		Handle(ctx context.Context, cmd commands.CheckoutCartCommand) (*order.Order, error)
	}

	GetAllDriversHandler interface {
		Handle(ctx context.Context, query queries.GetAllDriversQuery) ([]queries.GetAllDriversQueryResponse, error)
	}
	ListOrdersHandler interface {
		Handle(ctx context.Context, query queries.ListOrdersQuery) ([]queries.ListOrdersQueryResponse, error)
	}
	GetOrderHandler interface {
		Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error)
	}
	GetCartHandler interface {
		Handle(ctx context.Context, query queries.GetCartQuery) (cart.Cart, error)
	}
	GetDriverQueueHandler interface {
		Handle(ctx context.Context, query queries.DriverQuery) ([]*order.Order, error)
	}
	GetDriverEarningsHandler interface {
		Handle(ctx context.Context, query queries.DriverQuery) (services.DriverEarnings, error)
	}
	GetDailySeriesHandler interface {
		Handle(ctx context.Context, query queries.GetDailySeriesQuery) ([]services.DailyEarnings, error)
	}
	GetStatusDistributionHandler interface {
		Handle(ctx context.Context, query queries.DriverQuery) ([]services.StatusCount, error)
	}
	GetDriverDashboardHandler interface {
		Handle(ctx context.Context, query queries.DriverQuery) (services.DriverDashboard, error)
	}
)

// Handlers groups every use case the HTTP server exposes.
type Handlers struct {
	// Command handlers
	CreateDriver          CreateDriverHandler
	CreateOrder           CreateOrderHandler
	TransitionOrderStatus TransitionOrderStatusHandler
	AssignDriver          AssignDriverHandler
	AddCartItem           AddCartItemHandler
	RemoveCartItem        RemoveCartItemHandler
	ClearCart             ClearCartHandler
	CheckoutCart          CheckoutCartHandler

	// Query handlers
	GetAllDrivers         GetAllDriversHandler
	ListOrders            ListOrdersHandler
	GetOrder              GetOrderHandler
	GetCart               GetCartHandler
	GetDriverQueue        GetDriverQueueHandler
	GetDriverEarnings     GetDriverEarningsHandler
	GetDailySeries        GetDailySeriesHandler
	GetStatusDistribution GetStatusDistributionHandler
	GetDriverDashboard    GetDriverDashboardHandler
}
