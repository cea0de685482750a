package services_test

import (
	"testing"
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"

	"github.com/stretchr/testify/require"
)

func newOrder(t *testing.T, status order.Status, driverID *kernel.UUID, createdAt time.Time) *order.Order {
	t.Helper()
	price, err := kernel.NewMoney(1000)
	require.NoError(t, err)
	item, err := order.NewItem("p-1", "Burger", price, 1)
	require.NoError(t, err)
	dest, err := order.NewDelivery("1 Main St", order.PaymentCashOnDelivery)
	require.NoError(t, err)

	o, err := order.RestoreOrder(
		kernel.NewUUID(), kernel.NewUUID(), driverID,
		[]order.Item{item}, price, status, dest, createdAt,
	)
	require.NoError(t, err)
	return o
}

func calculator(t *testing.T, rate int64, loc *time.Location) services.EarningsCalculator {
	t.Helper()
	money, err := kernel.NewMoney(rate)
	require.NoError(t, err)
	c, err := services.NewEarningsCalculator(money, loc)
	require.NoError(t, err)
	return c
}
