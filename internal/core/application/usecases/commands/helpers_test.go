package commands_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/driver"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/stretchr/testify/require"
)

func money(t *testing.T, amount int64) kernel.Money {
	t.Helper()
	m, err := kernel.NewMoney(amount)
	require.NoError(t, err)
	return m
}

func item(t *testing.T, productID string, price int64, quantity int) order.Item {
	t.Helper()
	i, err := order.NewItem(productID, "Product "+productID, money(t, price), quantity)
	require.NoError(t, err)
	return i
}

func delivery(t *testing.T) order.Delivery {
	t.Helper()
	d, err := order.NewDelivery("1 Main St", order.PaymentCard)
	require.NoError(t, err)
	return d
}

func cartLine(t *testing.T, productID string, price int64) cart.Line {
	t.Helper()
	l, err := cart.NewLine(productID, "Product "+productID, money(t, price))
	require.NoError(t, err)
	return l
}

func actor(t *testing.T, role order.Role, id kernel.UUID) order.Actor {
	t.Helper()
	a, err := order.NewActor(role, id)
	require.NoError(t, err)
	return a
}

func storedOrder(t *testing.T, customerID kernel.UUID, driverID *kernel.UUID, status order.Status) *order.Order {
	t.Helper()
	items := []order.Item{item(t, "p-1", 500, 2)}
	o, err := order.RestoreOrder(kernel.NewUUID(), customerID, driverID, items, money(t, 1000), status,
		delivery(t), fixedNow.Add(-time.Hour))
	require.NoError(t, err)
	return o
}

func newDriver(t *testing.T, name string) *driver.Driver {
	t.Helper()
	d, err := driver.NewDriver(kernel.NewUUID(), name, name+"@example.com", "+1 555 0100",
		kernel.NewUUID(), fixedNow.Add(-24*time.Hour))
	require.NoError(t, err)
	return d
}
