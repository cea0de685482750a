package http_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/mock"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockCreateDriverHandler struct{ mock.Mock }

func (m *MockCreateDriverHandler) Handle(ctx context.Context, cmd commands.CreateDriverCommand) (*driver.Driver, error) {
	args := m.Called(ctx, cmd)
	d, _ := args.Get(0).(*driver.Driver)
	return d, args.Error(1)
}

type MockCreateOrderHandler struct{ mock.Mock }

func (m *MockCreateOrderHandler) Handle(ctx context.Context, cmd commands.CreateOrderCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockTransitionHandler struct{ mock.Mock }

func (m *MockTransitionHandler) Handle(ctx context.Context, cmd commands.TransitionOrderStatusCommand) (*order.Order, error) {
	args := m.Called(ctx, cmd)
	o, _ := args.Get(0).(*order.Order)
	return o, args.Error(1)
}

type MockAddCartItemHandler struct{ mock.Mock }

func (m *MockAddCartItemHandler) Handle(ctx context.Context, cmd commands.AddCartItemCommand) (cart.Session, error) {
	args := m.Called(ctx, cmd)
	return args.Get(0).(cart.Session), args.Error(1)
}

type MockGetCartHandler struct{ mock.Mock }

func (m *MockGetCartHandler) Handle(ctx context.Context, query queries.GetCartQuery) (cart.Cart, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(cart.Cart), args.Error(1)
}

type MockGetAllDriversHandler struct{ mock.Mock }

func (m *MockGetAllDriversHandler) Handle(
	ctx context.Context,
	query queries.GetAllDriversQuery,
) ([]queries.GetAllDriversQueryResponse, error) {
	args := m.Called(ctx, query)
	drivers, _ := args.Get(0).([]queries.GetAllDriversQueryResponse)
	return drivers, args.Error(1)
}

type MockGetDailySeriesHandler struct{ mock.Mock }

func (m *MockGetDailySeriesHandler) Handle(
	ctx context.Context,
	query queries.GetDailySeriesQuery,
) ([]services.DailyEarnings, error) {
	args := m.Called(ctx, query)
	series, _ := args.Get(0).([]services.DailyEarnings)
	return series, args.Error(1)
}

type MockGetOrderHandler struct{ mock.Mock }

func (m *MockGetOrderHandler) Handle(ctx context.Context, query queries.GetOrderQuery) (queries.GetOrderQueryResponse, error) {
	args := m.Called(ctx, query)
	return args.Get(0).(queries.GetOrderQueryResponse), args.Error(1)
}

type recordingObserver struct {
	routes []string
	codes  []int
}

func (o *recordingObserver) ObserveRequest(_, route string, code int, _ time.Duration) {
	o.routes = append(o.routes, route)
	o.codes = append(o.codes, code)
}
