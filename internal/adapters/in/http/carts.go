package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetCart handles GET /api/v1/carts/{sessionId}. A session that was never
// started reads as an empty cart.
func (s *Server) GetCart(ctx echo.Context, sessionId openapi_types.UUID, params servers.CustomerParams) error {
	sessionID, customerID, err := cartOwner(sessionId, params)
	if err != nil {
		return badRequest(ctx, "Invalid cart session: "+err.Error())
	}

	query, err := queries.NewGetCartQuery(sessionID, customerID)
	if err != nil {
		return badRequest(ctx, "Invalid cart session: "+err.Error())
	}

	snapshot, err := s.handlers.GetCart.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve cart")
	}

	return s.respondCart(ctx, snapshot)
}

// ClearCart handles DELETE /api/v1/carts/{sessionId}.
func (s *Server) ClearCart(ctx echo.Context, sessionId openapi_types.UUID, params servers.CustomerParams) error {
	sessionID, customerID, err := cartOwner(sessionId, params)
	if err != nil {
		return badRequest(ctx, "Invalid cart session: "+err.Error())
	}

	cmd, err := commands.NewClearCartCommand(sessionID, customerID)
	if err != nil {
		return badRequest(ctx, "Invalid cart session: "+err.Error())
	}

	session, err := s.handlers.ClearCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to clear cart")
	}

	return s.respondCart(ctx, session.Snapshot())
}

// AddCartItem handles POST /api/v1/carts/{sessionId}/items. Adding a product
// already in the cart increments its quantity.
func (s *Server) AddCartItem(ctx echo.Context, sessionId openapi_types.UUID, params servers.CustomerParams) error {
	var body servers.CartItem
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sessionID, customerID, err := cartOwner(sessionId, params)
	if err != nil {
		return badRequest(ctx, "Invalid cart session: "+err.Error())
	}

	price, err := kernel.NewMoney(body.UnitPrice)
	if err != nil {
		return badRequest(ctx, "Invalid unit price: "+err.Error())
	}

	line, err := cart.NewLine(body.ProductId, body.Name, price)
	if err != nil {
		return badRequest(ctx, "Invalid cart item: "+err.Error())
	}

	cmd, err := commands.NewAddCartItemCommand(sessionID, customerID, line)
	if err != nil {
		return badRequest(ctx, "Invalid cart item: "+err.Error())
	}

	session, err := s.handlers.AddCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to add cart item")
	}

	return s.respondCart(ctx, session.Snapshot())
}

// RemoveCartItem handles DELETE /api/v1/carts/{sessionId}/items/{productId}.
func (s *Server) RemoveCartItem(
	ctx echo.Context,
	sessionId openapi_types.UUID,
	productId string,
	params servers.CustomerParams,
) error {
	sessionID, customerID, err := cartOwner(sessionId, params)
	if err != nil {
		return badRequest(ctx, "Invalid cart session: "+err.Error())
	}

	cmd, err := commands.NewRemoveCartItemCommand(sessionID, customerID, productId)
	if err != nil {
		return badRequest(ctx, "Invalid cart item: "+err.Error())
	}

	session, err := s.handlers.RemoveCartItem.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to remove cart item")
	}

	return s.respondCart(ctx, session.Snapshot())
}

// CheckoutCart handles POST /api/v1/carts/{sessionId}/checkout. The cart is
// discarded once the order is stored.
func (s *Server) CheckoutCart(ctx echo.Context, sessionId openapi_types.UUID, params servers.CustomerParams) error {
	var body servers.Checkout
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	sessionID, customerID, err := cartOwner(sessionId, params)
	if err != nil {
		return badRequest(ctx, "Invalid cart session: "+err.Error())
	}

	orderID := kernel.NewUUID()
	if body.OrderId != nil {
		if orderID, err = toKernelID(*body.OrderId); err != nil {
			return badRequest(ctx, "Invalid order id: "+err.Error())
		}
	}

	delivery, err := order.NewDelivery(body.Address, paymentMethod(body.PaymentMethod))
	if err != nil {
		return badRequest(ctx, "Invalid delivery: "+err.Error())
	}

	cmd, err := commands.NewCheckoutCartCommand(sessionID, customerID, orderID, delivery)
	if err != nil {
		return badRequest(ctx, "Invalid checkout: "+err.Error())
	}

	created, err := s.handlers.CheckoutCart.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to check out cart")
	}

	return ctx.JSON(http.StatusCreated, toWireOrder(created))
}

func cartOwner(sessionId openapi_types.UUID, params servers.CustomerParams) (kernel.UUID, kernel.UUID, error) {
	sessionID, err := toKernelID(sessionId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	customerID, err := toKernelID(params.XCustomerId)
	if err != nil {
		return kernel.UUID{}, kernel.UUID{}, err
	}
	return sessionID, customerID, nil
}

func (s *Server) respondCart(ctx echo.Context, c cart.Cart) error {
	body, err := toWireCart(c)
	if err != nil {
		return s.respondError(ctx, err, "Failed to render cart")
	}
	return ctx.JSON(http.StatusOK, body)
}
