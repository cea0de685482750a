package http

import (
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

func toKernelID(id openapi_types.UUID) (kernel.UUID, error) {
	return kernel.UUIDFromBytes(id[:])
}

func toWireID(id *kernel.UUID) *openapi_types.UUID {
	if id == nil {
		return nil
	}
	wire := id.Bytes()
	return &wire
}

func actorFromParams(params servers.ActorParams) (order.Actor, error) {
	var id kernel.UUID
	if params.XActorId != nil {
		var err error
		if id, err = toKernelID(*params.XActorId); err != nil {
			return order.Actor{}, err
		}
	}
	return order.NewActor(order.Role(params.XActorRole), id)
}

func paymentMethod(method *servers.PaymentMethod) order.PaymentMethod {
	if method == nil {
		return ""
	}
	return order.PaymentMethod(*method)
}

func toOrderItems(items []servers.OrderItem) ([]order.Item, error) {
	result := make([]order.Item, 0, len(items))
	for _, in := range items {
		price, err := kernel.NewMoney(in.UnitPrice)
		if err != nil {
			return nil, err
		}
		item, err := order.NewItem(in.ProductId, in.Name, price, in.Quantity)
		if err != nil {
			return nil, err
		}
		result = append(result, item)
	}
	return result, nil
}

func toWireItems(items []order.Item) []servers.OrderItem {
	result := make([]servers.OrderItem, len(items))
	for i, item := range items {
		result[i] = servers.OrderItem{
			ProductId: item.ProductID(),
			Name:      item.Name(),
			UnitPrice: item.UnitPrice().Amount(),
			Quantity:  item.Quantity(),
		}
	}
	return result
}

func toWireOrder(o *order.Order) servers.Order {
	return servers.Order{
		Id:            o.ID().Bytes(),
		CustomerId:    o.CustomerID().Bytes(),
		DriverId:      toWireID(o.DriverID()),
		Items:         toWireItems(o.Items()),
		Total:         o.Total().Amount(),
		Status:        servers.OrderStatus(o.Status()),
		Address:       o.Delivery().Address(),
		PaymentMethod: servers.PaymentMethod(o.Delivery().PaymentMethod()),
		CreatedAt:     o.CreatedAt(),
	}
}

func toWireOrders(orders []*order.Order) []servers.Order {
	result := make([]servers.Order, len(orders))
	for i, o := range orders {
		result[i] = toWireOrder(o)
	}
	return result
}

func toWireStatuses(statuses []order.Status) []servers.OrderStatus {
	result := make([]servers.OrderStatus, len(statuses))
	for i, status := range statuses {
		result[i] = servers.OrderStatus(status)
	}
	return result
}

func toWireCart(c cart.Cart) (servers.Cart, error) {
	lines := make([]servers.CartLine, 0, c.Len())
	for _, line := range c.Lines() {
		lines = append(lines, servers.CartLine{
			ProductId: line.ProductID(),
			Name:      line.Name(),
			UnitPrice: line.UnitPrice().Amount(),
			Quantity:  line.Quantity(),
		})
	}
	total, err := c.Total()
	if err != nil {
		return servers.Cart{}, err
	}
	return servers.Cart{Lines: lines, Total: total.Amount()}, nil
}

func toWireWindow(w services.EarningsWindow) servers.EarningsWindow {
	return servers.EarningsWindow{
		WindowStart:    w.WindowStart,
		WindowEnd:      w.WindowEnd,
		DeliveredCount: w.DeliveredCount,
		TotalEarnings:  w.TotalEarnings.Amount(),
	}
}

func toWireEarnings(e services.DriverEarnings) servers.Earnings {
	return servers.Earnings{
		TotalOrders:    e.TotalOrders,
		TodaysOrders:   e.TodaysOrders,
		TodayEarnings:  e.TodayEarnings.Amount(),
		WeeklyEarnings: e.WeeklyEarnings.Amount(),
		Today:          toWireWindow(e.Today),
		Week:           toWireWindow(e.Week),
	}
}

func toWireSeries(series []services.DailyEarnings) []servers.DailyEarnings {
	result := make([]servers.DailyEarnings, len(series))
	for i, day := range series {
		result[i] = servers.DailyEarnings{
			Date:           openapi_types.Date{Time: day.Date},
			DeliveredCount: day.DeliveredCount,
			Earnings:       day.Earnings.Amount(),
		}
	}
	return result
}

func toWireDistribution(counts []services.StatusCount) []servers.StatusCount {
	result := make([]servers.StatusCount, len(counts))
	for i, count := range counts {
		result[i] = servers.StatusCount{Status: servers.OrderStatus(count.Status), Count: count.Count}
	}
	return result
}
