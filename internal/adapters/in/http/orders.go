package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetOrders handles GET /api/v1/orders - lists orders, optionally in one status.
func (s *Server) GetOrders(ctx echo.Context, params servers.GetOrdersParams) error {
	var status string
	if params.Status != nil {
		status = string(*params.Status)
	}

	query, err := queries.NewListOrdersQuery(status)
	if err != nil {
		return badRequest(ctx, "Invalid status: "+err.Error())
	}

	orders, err := s.handlers.ListOrders.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve orders")
	}

	response := make([]servers.OrderSummary, len(orders))
	for i, o := range orders {
		response[i] = servers.OrderSummary{
			Id:         o.ID.Bytes(),
			CustomerId: o.CustomerID.Bytes(),
			DriverId:   toWireID(o.DriverID),
			Status:     servers.OrderStatus(o.Status),
			Total:      o.Total.Amount(),
			CreatedAt:  o.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateOrder handles POST /api/v1/orders - places an order.
func (s *Server) CreateOrder(ctx echo.Context) error {
	var body servers.NewOrder
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	customerID, err := toKernelID(body.CustomerId)
	if err != nil {
		return badRequest(ctx, "Invalid customer id: "+err.Error())
	}

	items, err := toOrderItems(body.Items)
	if err != nil {
		return badRequest(ctx, "Invalid order items: "+err.Error())
	}

	delivery, err := order.NewDelivery(body.Address, paymentMethod(body.PaymentMethod))
	if err != nil {
		return badRequest(ctx, "Invalid delivery: "+err.Error())
	}

	cmd, err := commands.NewCreateOrderCommand(kernel.NewUUID(), customerID, items, delivery)
	if err != nil {
		return badRequest(ctx, "Invalid order data: "+err.Error())
	}

	created, err := s.handlers.CreateOrder.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to create order")
	}

	return ctx.JSON(http.StatusCreated, toWireOrder(created))
}

// GetOrder handles GET /api/v1/orders/{orderId}.
func (s *Server) GetOrder(ctx echo.Context, orderId openapi_types.UUID) error {
	id, err := toKernelID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	query, err := queries.NewGetOrderQuery(id)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	found, err := s.handlers.GetOrder.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve order")
	}

	o := toWireOrder(found.Order)
	return ctx.JSON(http.StatusOK, servers.OrderDetails{
		Id:            o.Id,
		CustomerId:    o.CustomerId,
		DriverId:      o.DriverId,
		Items:         o.Items,
		Total:         o.Total,
		Status:        o.Status,
		Address:       o.Address,
		PaymentMethod: o.PaymentMethod,
		CreatedAt:     o.CreatedAt,
		AllowedNext:   toWireStatuses(found.AllowedNext),
	})
}

// TransitionOrderStatus handles POST /api/v1/orders/{orderId}/status. Every
// status change goes through this endpoint.
func (s *Server) TransitionOrderStatus(
	ctx echo.Context,
	orderId openapi_types.UUID,
	params servers.TransitionOrderStatusParams,
) error {
	var body servers.StatusUpdate
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	actor, err := actorFromParams(params)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewTransitionOrderStatusCommand(id, actor, body.Status)
	if err != nil {
		return badRequest(ctx, "Invalid status update: "+err.Error())
	}

	updated, err := s.handlers.TransitionOrderStatus.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to update order status")
	}

	return ctx.JSON(http.StatusOK, toWireOrder(updated))
}

// AssignDriver handles PUT /api/v1/orders/{orderId}/driver.
func (s *Server) AssignDriver(ctx echo.Context, orderId openapi_types.UUID, params servers.AssignDriverParams) error {
	var body servers.DriverAssignment
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	id, err := toKernelID(orderId)
	if err != nil {
		return badRequest(ctx, "Invalid order id: "+err.Error())
	}

	driverID, err := toKernelID(body.DriverId)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	actor, err := actorFromParams(params)
	if err != nil {
		return badRequest(ctx, "Invalid actor: "+err.Error())
	}

	cmd, err := commands.NewAssignDriverCommand(id, driverID, actor)
	if err != nil {
		return badRequest(ctx, "Invalid assignment: "+err.Error())
	}

	updated, err := s.handlers.AssignDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to assign driver")
	}

	return ctx.JSON(http.StatusOK, toWireOrder(updated))
}
