package servers

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/oapi-codegen/runtime"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// ServerInterface represents all server handlers.
type ServerInterface interface {
	// List registered drivers
	// (GET /api/v1/drivers)
	GetDrivers(ctx echo.Context, params GetDriversParams) error
	// Register a driver
	// (POST /api/v1/drivers)
	CreateDriver(ctx echo.Context) error
	// Orders the driver currently sees, oldest first
	// (GET /api/v1/drivers/{driverId}/queue)
	GetDriverQueue(ctx echo.Context, driverId openapi_types.UUID) error
	// Today's and this week's earnings
	// (GET /api/v1/drivers/{driverId}/earnings)
	GetDriverEarnings(ctx echo.Context, driverId openapi_types.UUID) error
	// Delivered orders and earnings per day, oldest first
	// (GET /api/v1/drivers/{driverId}/earnings/daily)
	GetDailySeries(ctx echo.Context, driverId openapi_types.UUID, params GetDailySeriesParams) error
	// Count of the driver's orders per driver-visible status
	// (GET /api/v1/drivers/{driverId}/status-distribution)
	GetStatusDistribution(ctx echo.Context, driverId openapi_types.UUID) error
	// Queue, earnings, distribution and 7-day series in one view
	// (GET /api/v1/drivers/{driverId}/dashboard)
	GetDriverDashboard(ctx echo.Context, driverId openapi_types.UUID) error
	// List orders, optionally by status
	// (GET /api/v1/orders)
	GetOrders(ctx echo.Context, params GetOrdersParams) error
	// Place an order from a list of items
	// (POST /api/v1/orders)
	CreateOrder(ctx echo.Context) error
	// Order with its legal next statuses
	// (GET /api/v1/orders/{orderId})
	GetOrder(ctx echo.Context, orderId openapi_types.UUID) error
	// Move an order to a new status
	// (POST /api/v1/orders/{orderId}/status)
	TransitionOrderStatus(ctx echo.Context, orderId openapi_types.UUID, params TransitionOrderStatusParams) error
	// Assign a driver to a created or ready order
	// (PUT /api/v1/orders/{orderId}/driver)
	AssignDriver(ctx echo.Context, orderId openapi_types.UUID, params AssignDriverParams) error
	// Cart snapshot
	// (GET /api/v1/carts/{sessionId})
	GetCart(ctx echo.Context, sessionId openapi_types.UUID, params CustomerParams) error
	// Empty the cart
	// (DELETE /api/v1/carts/{sessionId})
	ClearCart(ctx echo.Context, sessionId openapi_types.UUID, params CustomerParams) error
	// Add one unit of a product
	// (POST /api/v1/carts/{sessionId}/items)
	AddCartItem(ctx echo.Context, sessionId openapi_types.UUID, params CustomerParams) error
	// Remove a product whatever its quantity
	// (DELETE /api/v1/carts/{sessionId}/items/{productId})
	RemoveCartItem(ctx echo.Context, sessionId openapi_types.UUID, productId string, params CustomerParams) error
	// Turn the cart into an order
	// (POST /api/v1/carts/{sessionId}/checkout)
	CheckoutCart(ctx echo.Context, sessionId openapi_types.UUID, params CustomerParams) error
}

// ServerInterfaceWrapper converts echo contexts to parameters.
type ServerInterfaceWrapper struct {
	Handler ServerInterface
}

// GetDrivers converts echo context to params.
func (w *ServerInterfaceWrapper) GetDrivers(ctx echo.Context) error {
	var params GetDriversParams

	err := runtime.BindQueryParameter("form", true, false, "restaurantId", ctx.QueryParams(), &params.RestaurantId)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter restaurantId: %s", err))
	}

	return w.Handler.GetDrivers(ctx, params)
}

// CreateDriver converts echo context to params.
func (w *ServerInterfaceWrapper) CreateDriver(ctx echo.Context) error {
	return w.Handler.CreateDriver(ctx)
}

// GetDriverQueue converts echo context to params.
func (w *ServerInterfaceWrapper) GetDriverQueue(ctx echo.Context) error {
	driverId, err := bindPathUUID(ctx, "driverId")
	if err != nil {
		return err
	}

	return w.Handler.GetDriverQueue(ctx, driverId)
}

// GetDriverEarnings converts echo context to params.
func (w *ServerInterfaceWrapper) GetDriverEarnings(ctx echo.Context) error {
	driverId, err := bindPathUUID(ctx, "driverId")
	if err != nil {
		return err
	}

	return w.Handler.GetDriverEarnings(ctx, driverId)
}

// GetDailySeries converts echo context to params.
func (w *ServerInterfaceWrapper) GetDailySeries(ctx echo.Context) error {
	driverId, err := bindPathUUID(ctx, "driverId")
	if err != nil {
		return err
	}

	var params GetDailySeriesParams

	err = runtime.BindQueryParameter("form", true, false, "days", ctx.QueryParams(), &params.Days)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter days: %s", err))
	}

	return w.Handler.GetDailySeries(ctx, driverId, params)
}

// GetStatusDistribution converts echo context to params.
func (w *ServerInterfaceWrapper) GetStatusDistribution(ctx echo.Context) error {
	driverId, err := bindPathUUID(ctx, "driverId")
	if err != nil {
		return err
	}

	return w.Handler.GetStatusDistribution(ctx, driverId)
}

// GetDriverDashboard converts echo context to params.
func (w *ServerInterfaceWrapper) GetDriverDashboard(ctx echo.Context) error {
	driverId, err := bindPathUUID(ctx, "driverId")
	if err != nil {
		return err
	}

	return w.Handler.GetDriverDashboard(ctx, driverId)
}

// GetOrders converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrders(ctx echo.Context) error {
	var params GetOrdersParams

	err := runtime.BindQueryParameter("form", true, false, "status", ctx.QueryParams(), &params.Status)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter status: %s", err))
	}

	return w.Handler.GetOrders(ctx, params)
}

// CreateOrder converts echo context to params.
func (w *ServerInterfaceWrapper) CreateOrder(ctx echo.Context) error {
	return w.Handler.CreateOrder(ctx)
}

// GetOrder converts echo context to params.
func (w *ServerInterfaceWrapper) GetOrder(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	return w.Handler.GetOrder(ctx, orderId)
}

// TransitionOrderStatus converts echo context to params.
func (w *ServerInterfaceWrapper) TransitionOrderStatus(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	params, err := bindActorParams(ctx)
	if err != nil {
		return err
	}

	return w.Handler.TransitionOrderStatus(ctx, orderId, params)
}

// AssignDriver converts echo context to params.
func (w *ServerInterfaceWrapper) AssignDriver(ctx echo.Context) error {
	orderId, err := bindPathUUID(ctx, "orderId")
	if err != nil {
		return err
	}

	params, err := bindActorParams(ctx)
	if err != nil {
		return err
	}

	return w.Handler.AssignDriver(ctx, orderId, params)
}

// GetCart converts echo context to params.
func (w *ServerInterfaceWrapper) GetCart(ctx echo.Context) error {
	sessionId, params, err := bindCartParams(ctx)
	if err != nil {
		return err
	}

	return w.Handler.GetCart(ctx, sessionId, params)
}

// ClearCart converts echo context to params.
func (w *ServerInterfaceWrapper) ClearCart(ctx echo.Context) error {
	sessionId, params, err := bindCartParams(ctx)
	if err != nil {
		return err
	}

	return w.Handler.ClearCart(ctx, sessionId, params)
}

// AddCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) AddCartItem(ctx echo.Context) error {
	sessionId, params, err := bindCartParams(ctx)
	if err != nil {
		return err
	}

	return w.Handler.AddCartItem(ctx, sessionId, params)
}

// RemoveCartItem converts echo context to params.
func (w *ServerInterfaceWrapper) RemoveCartItem(ctx echo.Context) error {
	sessionId, params, err := bindCartParams(ctx)
	if err != nil {
		return err
	}

	var productId string

	err = runtime.BindStyledParameterWithOptions("simple", "productId", ctx.Param("productId"), &productId,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter productId: %s", err))
	}

	return w.Handler.RemoveCartItem(ctx, sessionId, productId, params)
}

// CheckoutCart converts echo context to params.
func (w *ServerInterfaceWrapper) CheckoutCart(ctx echo.Context) error {
	sessionId, params, err := bindCartParams(ctx)
	if err != nil {
		return err
	}

	return w.Handler.CheckoutCart(ctx, sessionId, params)
}

func bindPathUUID(ctx echo.Context, name string) (openapi_types.UUID, error) {
	var id openapi_types.UUID

	err := runtime.BindStyledParameterWithOptions("simple", name, ctx.Param(name), &id,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationPath, Explode: false, Required: true})
	if err != nil {
		return id, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}

	return id, nil
}

func bindHeader(ctx echo.Context, name string, dest any, required bool) (bool, error) {
	valueList, found := ctx.Request().Header[http.CanonicalHeaderKey(name)]
	if !found {
		if required {
			return false, echo.NewHTTPError(http.StatusBadRequest,
				fmt.Sprintf("Header parameter %s is required, but not found", name))
		}
		return false, nil
	}

	if n := len(valueList); n != 1 {
		return false, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Expected one value for %s, got %d", name, n))
	}

	err := runtime.BindStyledParameterWithOptions("simple", name, valueList[0], dest,
		runtime.BindStyledParameterOptions{ParamLocation: runtime.ParamLocationHeader, Explode: false, Required: required})
	if err != nil {
		return false, echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("Invalid format for parameter %s: %s", name, err))
	}

	return true, nil
}

func bindActorParams(ctx echo.Context) (ActorParams, error) {
	var params ActorParams

	if _, err := bindHeader(ctx, "X-Actor-Role", &params.XActorRole, true); err != nil {
		return params, err
	}

	var actorID openapi_types.UUID
	found, err := bindHeader(ctx, "X-Actor-Id", &actorID, false)
	if err != nil {
		return params, err
	}
	if found {
		params.XActorId = &actorID
	}

	return params, nil
}

func bindCartParams(ctx echo.Context) (openapi_types.UUID, CustomerParams, error) {
	var params CustomerParams

	sessionId, err := bindPathUUID(ctx, "sessionId")
	if err != nil {
		return sessionId, params, err
	}

	if _, err = bindHeader(ctx, "X-Customer-Id", &params.XCustomerId, true); err != nil {
		return sessionId, params, err
	}

	return sessionId, params, nil
}

// EchoRouter is the subset of echo.Echo and echo.Group used to register handlers.
type EchoRouter interface {
	DELETE(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	GET(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	POST(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
	PUT(path string, h echo.HandlerFunc, m ...echo.MiddlewareFunc) *echo.Route
}

// RegisterHandlers adds each server route to the EchoRouter.
func RegisterHandlers(router EchoRouter, si ServerInterface) {
	RegisterHandlersWithBaseURL(router, si, "")
}

// RegisterHandlersWithBaseURL registers handlers, and prepends BaseURL to the
// paths, so that the paths can be served under a prefix.
func RegisterHandlersWithBaseURL(router EchoRouter, si ServerInterface, baseURL string) {
	wrapper := ServerInterfaceWrapper{
		Handler: si,
	}

	router.GET(baseURL+"/api/v1/drivers", wrapper.GetDrivers)
	router.POST(baseURL+"/api/v1/drivers", wrapper.CreateDriver)
	router.GET(baseURL+"/api/v1/drivers/:driverId/queue", wrapper.GetDriverQueue)
	router.GET(baseURL+"/api/v1/drivers/:driverId/earnings", wrapper.GetDriverEarnings)
	router.GET(baseURL+"/api/v1/drivers/:driverId/earnings/daily", wrapper.GetDailySeries)
	router.GET(baseURL+"/api/v1/drivers/:driverId/status-distribution", wrapper.GetStatusDistribution)
	router.GET(baseURL+"/api/v1/drivers/:driverId/dashboard", wrapper.GetDriverDashboard)
	router.GET(baseURL+"/api/v1/orders", wrapper.GetOrders)
	router.POST(baseURL+"/api/v1/orders", wrapper.CreateOrder)
	router.GET(baseURL+"/api/v1/orders/:orderId", wrapper.GetOrder)
	router.POST(baseURL+"/api/v1/orders/:orderId/status", wrapper.TransitionOrderStatus)
	router.PUT(baseURL+"/api/v1/orders/:orderId/driver", wrapper.AssignDriver)
	router.GET(baseURL+"/api/v1/carts/:sessionId", wrapper.GetCart)
	router.DELETE(baseURL+"/api/v1/carts/:sessionId", wrapper.ClearCart)
	router.POST(baseURL+"/api/v1/carts/:sessionId/items", wrapper.AddCartItem)
	router.DELETE(baseURL+"/api/v1/carts/:sessionId/items/:productId", wrapper.RemoveCartItem)
	router.POST(baseURL+"/api/v1/carts/:sessionId/checkout", wrapper.CheckoutCart)
}
