package queries_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/pkg/clock"
	"fulfillment/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var now = time.Date(2025, 3, 14, 15, 0, 0, 0, time.UTC)

type MockOrderRepository struct{ mock.Mock }

func (m *MockOrderRepository) Add(ctx context.Context, o *order.Order) error {
	return m.Called(ctx, o).Error(0)
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
	if orders := args.Get(0); orders != nil {
		return orders.([]*order.Order), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockOrderRepository) ListAll(context.Context) ([]*order.Order, error) {
	panic("not used by queries")
}

func (m *MockOrderRepository) ListReadyUnassigned(context.Context) ([]*order.Order, error) {
	panic("not used by queries")
}

func (m *MockOrderRepository) ListActive(context.Context) ([]*order.Order, error) {
	panic("not used by queries")
}

func (m *MockOrderRepository) CompareAndSwapStatus(context.Context, kernel.UUID, order.Status, order.Status) error {
	panic("not used by queries")
}

func (m *MockOrderRepository) AssignDriver(context.Context, kernel.UUID, order.Status, kernel.UUID) error {
	panic("not used by queries")
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

// registered returns a driver repository that knows driverID.
func registered(t *testing.T, driverID kernel.UUID) *MockDriverRepository {
	t.Helper()
	d, err := driver.NewDriver(driverID, "Dana", "dana@example.com", "+1 555 0100",
		kernel.NewUUID(), now.Add(-24*time.Hour))
	require.NoError(t, err)
	drivers := new(MockDriverRepository)
	drivers.On("Get", mock.Anything, driverID).Return(d, nil)
	return drivers
}

type MockCartSessionRepository struct{ mock.Mock }

func (m *MockCartSessionRepository) Get(ctx context.Context, id kernel.UUID) (cart.Session, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(cart.Session), args.Error(1)
}

func (m *MockCartSessionRepository) GetForUpdate(context.Context, kernel.UUID) (cart.Session, error) {
	panic("not used by queries")
}

func (m *MockCartSessionRepository) Open(context.Context, cart.Session) (cart.Session, error) {
	panic("not used by queries")
}

func (m *MockCartSessionRepository) Save(context.Context, cart.Session) error {
	panic("not used by queries")
}

func (m *MockCartSessionRepository) Delete(context.Context, kernel.UUID) error {
	panic("not used by queries")
}

func (m *MockCartSessionRepository) DeleteIdleSince(context.Context, time.Time) (int64, error) {
	panic("not used by queries")
}

func dashboard(t *testing.T) services.Dashboard {
	t.Helper()
	rate, err := kernel.NewMoney(services.DefaultEarningsPerOrder)
	require.NoError(t, err)
	calc, err := services.NewEarningsCalculator(rate, time.UTC)
	require.NoError(t, err)
	return services.NewDashboard(calc)
}

type entry struct {
	status order.Status
	age    time.Duration
}

func history(t *testing.T, driverID kernel.UUID, spec ...entry) []*order.Order {
	t.Helper()
	price, err := kernel.NewMoney(1200)
	require.NoError(t, err)
	it, err := order.NewItem("p-1", "Ramen", price, 1)
	require.NoError(t, err)
	dest, err := order.NewDelivery("9 Oak Ave", order.PaymentCard)
	require.NoError(t, err)

	orders := make([]*order.Order, 0, len(spec))
	for _, s := range spec {
		o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), &driverID, []order.Item{it}, price,
			s.status, dest, now.Add(-s.age))
		require.NoError(t, err)
		orders = append(orders, o)
	}
	return orders
}

func TestGetDriverEarningsQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	orders := history(t, driverID,
		entry{order.Delivered, time.Hour},
		entry{order.Delivered, 3 * 24 * time.Hour},
		entry{order.Picked, 2 * time.Hour},
		entry{order.Delivered, 10 * 24 * time.Hour},
	)

	repo := new(MockOrderRepository)
	repo.On("ListByDriver", ctx, driverID).Return(orders, nil).Once()

	query, err := queries.NewDriverQuery(driverID)
	require.NoError(t, err)

	earnings, err := queries.NewGetDriverEarningsQueryHandler(repo, registered(t, driverID), dashboard(t), clock.NewFixed(now)).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, 4, earnings.TotalOrders)
	assert.Equal(t, 2, earnings.TodaysOrders)
	assert.Equal(t, int64(100), earnings.TodayEarnings.Amount())
	assert.Equal(t, int64(200), earnings.WeeklyEarnings.Amount())
	repo.AssertExpectations(t)
}

func TestGetDriverQueueQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	orders := history(t, driverID,
		entry{order.Picked, time.Hour},
		entry{order.Created, 5 * time.Hour},
		entry{order.Ready, 3 * time.Hour},
	)

	repo := new(MockOrderRepository)
	repo.On("ListByDriver", ctx, driverID).Return(orders, nil).Once()
	query, err := queries.NewDriverQuery(driverID)
	require.NoError(t, err)

	queue, err := queries.NewGetDriverQueueQueryHandler(repo, registered(t, driverID), dashboard(t)).Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, queue, 2)
	assert.Equal(t, orders[2].ID(), queue[0].ID())
	assert.Equal(t, orders[0].ID(), queue[1].ID())
}

func TestGetStatusDistributionQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	repo := new(MockOrderRepository)
	repo.On("ListByDriver", ctx, driverID).
		Return(history(t, driverID, entry{order.Delivered, time.Hour}, entry{order.Delivered, 2 * time.Hour}), nil).Once()
	query, err := queries.NewDriverQuery(driverID)
	require.NoError(t, err)

	distribution, err := queries.NewGetStatusDistributionQueryHandler(repo, registered(t, driverID), dashboard(t)).Handle(ctx, query)

	require.NoError(t, err)
	require.Len(t, distribution, len(order.DriverVisible()))
	for _, c := range distribution {
		if c.Status == order.Delivered {
			assert.Equal(t, 2, c.Count)
		} else {
			assert.Zero(t, c.Count, c.Status)
		}
	}
}

func TestGetDailySeriesQuery(t *testing.T) {
	t.Run("should reject days out of range", func(t *testing.T) {
		for _, days := range []int{0, -1, queries.MaxSeriesDays + 1} {
			_, err := queries.NewGetDailySeriesQuery(kernel.NewUUID(), days)

			require.ErrorIs(t, err, errs.ErrValueIsOutOfRange, days)
		}
	})

	t.Run("should bucket delivered orders oldest first", func(t *testing.T) {
		ctx := t.Context()
		driverID := kernel.NewUUID()
		repo := new(MockOrderRepository)
		repo.On("ListByDriver", ctx, driverID).
			Return(history(t, driverID, entry{order.Delivered, time.Hour}, entry{order.Delivered, 48 * time.Hour}), nil).Once()

		query, err := queries.NewGetDailySeriesQuery(driverID, 3)
		require.NoError(t, err)

		series, err := queries.NewGetDailySeriesQueryHandler(repo, registered(t, driverID), dashboard(t), clock.NewFixed(now)).Handle(ctx, query)

		require.NoError(t, err)
		require.Len(t, series, 3)
		assert.Equal(t, 1, series[0].DeliveredCount)
		assert.Equal(t, 0, series[1].DeliveredCount)
		assert.Equal(t, 1, series[2].DeliveredCount)
		assert.Equal(t, int64(100), series[2].Earnings.Amount())
	})
}

func TestGetDriverDashboardQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	repo := new(MockOrderRepository)
	repo.On("ListByDriver", ctx, driverID).Return(history(t, driverID, entry{order.EnRoute, time.Hour}), nil).Once()
	query, err := queries.NewDriverQuery(driverID)
	require.NoError(t, err)

	view, err := queries.NewGetDriverDashboardQueryHandler(repo, registered(t, driverID), dashboard(t), clock.NewFixed(now)).Handle(ctx, query)

	require.NoError(t, err)
	assert.Len(t, view.Queue, 1)
	assert.Len(t, view.Series, services.SeriesDays)
	assert.Equal(t, 1, view.Earnings.TotalOrders)
	repo.AssertNumberOfCalls(t, "ListByDriver", 1)
}

func TestDriverQueryHandlers_PropagateStoreErrors(t *testing.T) {
	ctx := t.Context()
	driverID := kernel.NewUUID()
	repo := new(MockOrderRepository)
	repo.On("ListByDriver", ctx, driverID).Return(nil, context.DeadlineExceeded).Once()
	query, err := queries.NewDriverQuery(driverID)
	require.NoError(t, err)

	_, err = queries.NewGetDriverQueueQueryHandler(repo, registered(t, driverID), dashboard(t)).Handle(ctx, query)

	require.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestDriverQuery_ZeroValueIsRejected(t *testing.T) {
	repo := new(MockOrderRepository)
	drivers := new(MockDriverRepository)

	_, err := queries.NewGetDriverQueueQueryHandler(repo, drivers, dashboard(t)).Handle(t.Context(), queries.DriverQuery{})

	require.ErrorIs(t, err, queries.ErrDriverQueryIsNotConstructed)
	repo.AssertNotCalled(t, "ListByDriver", mock.Anything, mock.Anything)
	drivers.AssertNotCalled(t, "Get", mock.Anything, mock.Anything)
}

func TestDriverQueryHandlers_UnknownDriverIsNotFound(t *testing.T) {
	unknown := kernel.NewUUID()
	query, err := queries.NewDriverQuery(unknown)
	require.NoError(t, err)
	seriesQuery, err := queries.NewGetDailySeriesQuery(unknown, 3)
	require.NoError(t, err)

	setup := func() (*MockOrderRepository, *MockDriverRepository) {
		drivers := new(MockDriverRepository)
		drivers.On("Get", mock.Anything, unknown).Return(nil, errs.NewObjectNotFoundError("driver", unknown.String())).Once()
		return new(MockOrderRepository), drivers
	}
	fixed := clock.NewFixed(now)

	for name, run := range map[string]func(*MockOrderRepository, *MockDriverRepository) error{
		"queue": func(o *MockOrderRepository, d *MockDriverRepository) error {
			_, err := queries.NewGetDriverQueueQueryHandler(o, d, dashboard(t)).Handle(t.Context(), query)
			return err
		},
		"earnings": func(o *MockOrderRepository, d *MockDriverRepository) error {
			_, err := queries.NewGetDriverEarningsQueryHandler(o, d, dashboard(t), fixed).Handle(t.Context(), query)
			return err
		},
		"daily series": func(o *MockOrderRepository, d *MockDriverRepository) error {
			_, err := queries.NewGetDailySeriesQueryHandler(o, d, dashboard(t), fixed).Handle(t.Context(), seriesQuery)
			return err
		},
		"status distribution": func(o *MockOrderRepository, d *MockDriverRepository) error {
			_, err := queries.NewGetStatusDistributionQueryHandler(o, d, dashboard(t)).Handle(t.Context(), query)
			return err
		},
		"dashboard": func(o *MockOrderRepository, d *MockDriverRepository) error {
			_, err := queries.NewGetDriverDashboardQueryHandler(o, d, dashboard(t), fixed).Handle(t.Context(), query)
			return err
		},
	} {
		t.Run(name, func(t *testing.T) {
			orders, drivers := setup()

			err := run(orders, drivers)

			require.ErrorIs(t, err, errs.ErrObjectNotFound)
			drivers.AssertExpectations(t)
			orders.AssertNotCalled(t, "ListByDriver", mock.Anything, mock.Anything)
		})
	}
}

func TestGetOrderQueryHandler_Handle(t *testing.T) {
	ctx := t.Context()
	o := history(t, kernel.NewUUID(), entry{order.Ready, time.Hour})[0]
	repo := new(MockOrderRepository)
	repo.On("Get", ctx, o.ID()).Return(o, nil).Once()

	query, err := queries.NewGetOrderQuery(o.ID())
	require.NoError(t, err)

	resp, err := queries.NewGetOrderQueryHandler(repo).Handle(ctx, query)

	require.NoError(t, err)
	assert.Equal(t, o.ID(), resp.Order.ID())
	assert.Equal(t, []order.Status{order.Picked, order.Canceled}, resp.AllowedNext)
}

func TestGetCartQueryHandler_Handle(t *testing.T) {
	sessionID := kernel.NewUUID()
	customerID := kernel.NewUUID()

	t.Run("should return an empty cart for an unknown session", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockCartSessionRepository)
		repo.On("Get", ctx, sessionID).Return(cart.Session{}, errs.NewObjectNotFoundError("cart session", sessionID)).Once()
		query, err := queries.NewGetCartQuery(sessionID, customerID)
		require.NoError(t, err)

		c, err := queries.NewGetCartQueryHandler(repo).Handle(ctx, query)

		require.NoError(t, err)
		assert.True(t, c.IsEmpty())
	})

	t.Run("should refuse another customer's session", func(t *testing.T) {
		ctx := t.Context()
		session, err := cart.NewSession(sessionID, kernel.NewUUID(), now)
		require.NoError(t, err)
		repo := new(MockCartSessionRepository)
		repo.On("Get", ctx, sessionID).Return(session, nil).Once()
		query, err := queries.NewGetCartQuery(sessionID, customerID)
		require.NoError(t, err)

		_, err = queries.NewGetCartQueryHandler(repo).Handle(ctx, query)

		require.ErrorIs(t, err, errs.ErrActorIsUnauthorized)
	})

	t.Run("should surface store failures", func(t *testing.T) {
		ctx := t.Context()
		repo := new(MockCartSessionRepository)
		repo.On("Get", ctx, sessionID).Return(cart.Session{}, errors.New("connection reset")).Once()
		query, err := queries.NewGetCartQuery(sessionID, customerID)
		require.NoError(t, err)

		_, err = queries.NewGetCartQueryHandler(repo).Handle(ctx, query)

		require.EqualError(t, err, "connection reset")
	})
}
