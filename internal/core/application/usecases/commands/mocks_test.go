package commands_test

import (
	"context"
	"io"
	"log/slog"
	"time"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/ports"

	"github.com/stretchr/testify/mock"
)

var fixedNow = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
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

func (m *MockOrderRepository) ListByDriver(ctx context.Context, driverID kernel.UUID) ([]*order.Order, error) {
	args := m.Called(ctx, driverID)
	return ordersArg(args), args.Error(1)
}

func (m *MockOrderRepository) ListAll(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return ordersArg(args), args.Error(1)
}

func (m *MockOrderRepository) ListReadyUnassigned(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return ordersArg(args), args.Error(1)
}

func (m *MockOrderRepository) ListActive(ctx context.Context) ([]*order.Order, error) {
	args := m.Called(ctx)
	return ordersArg(args), args.Error(1)
}

func (m *MockOrderRepository) CompareAndSwapStatus(
	ctx context.Context,
	id kernel.UUID,
	expected, next order.Status,
) error {
	args := m.Called(ctx, id, expected, next)
	return args.Error(0)
}

func (m *MockOrderRepository) AssignDriver(
	ctx context.Context,
	id kernel.UUID,
	expected order.Status,
	driverID kernel.UUID,
) error {
	args := m.Called(ctx, id, expected, driverID)
	return args.Error(0)
}

func ordersArg(args mock.Arguments) []*order.Order {
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order)
	}
	return nil
}

type MockDriverRepository struct{ mock.Mock }

func (m *MockDriverRepository) Add(ctx context.Context, d *driver.Driver) error {
	args := m.Called(ctx, d)
	return args.Error(0)
}

func (m *MockDriverRepository) Get(ctx context.Context, id kernel.UUID) (*driver.Driver, error) {
	args := m.Called(ctx, id)
	if d := args.Get(0); d != nil {
		return d.(*driver.Driver), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockDriverRepository) GetAll(ctx context.Context) ([]*driver.Driver, error) {
	args := m.Called(ctx)
	if drivers := args.Get(0); drivers != nil {
		return drivers.([]*driver.Driver), args.Error(1)
	}
	return nil, args.Error(1)
}

type MockCartSessionRepository struct{ mock.Mock }

func (m *MockCartSessionRepository) Get(ctx context.Context, id kernel.UUID) (cart.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(cart.Session), args.Error(1)
}

func (m *MockCartSessionRepository) GetForUpdate(ctx context.Context, id kernel.UUID) (cart.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(cart.Session), args.Error(1)
}

func (m *MockCartSessionRepository) Open(ctx context.Context, fresh cart.Session) (cart.Session, error) {
	args := m.Called(ctx, fresh)
	return args.Get(0).(cart.Session), args.Error(1)
}

func (m *MockCartSessionRepository) Save(ctx context.Context, session cart.Session) error {
	args := m.Called(ctx, session)
	return args.Error(0)
}

func (m *MockCartSessionRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockCartSessionRepository) DeleteIdleSince(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockUoW satisfies every unit of work flavour used by the handlers.
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

func (m *MockUoW) DriverRepository() ports.DriverRepository {
	args := m.Called()
	return args.Get(0).(ports.DriverRepository)
}

func (m *MockUoW) CartSessionRepository() ports.CartSessionRepository {
	args := m.Called()
	return args.Get(0).(ports.CartSessionRepository)
}

type MockOrderUoWFactory struct{ mock.Mock }

func (m *MockOrderUoWFactory) Create() commands.OrderUoW {
	args := m.Called()
	return args.Get(0).(commands.OrderUoW)
}

type MockDriverUoWFactory struct{ mock.Mock }

func (m *MockDriverUoWFactory) Create() commands.DriverUoW {
	args := m.Called()
	return args.Get(0).(commands.DriverUoW)
}

type MockCartUoWFactory struct{ mock.Mock }

func (m *MockCartUoWFactory) Create() commands.CartUoW {
	args := m.Called()
	return args.Get(0).(commands.CartUoW)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

type MockPublisher struct{ mock.Mock }

func (m *MockPublisher) PublishStatusChanged(ctx context.Context, event order.StatusChanged) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}
