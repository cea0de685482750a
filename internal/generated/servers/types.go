// Package servers holds the HTTP contract of the service: the OpenAPI document,
// its wire types and the echo binding layer that decodes parameters before
// calling a ServerInterface implementation.
package servers

import (
	"time"

	openapi_types "github.com/oapi-codegen/runtime/types"
)

// Defines values for ActorRole.
const (
	ActorRoleCustomer   ActorRole = "customer"
	ActorRoleDriver     ActorRole = "driver"
	ActorRoleRestaurant ActorRole = "restaurant"
	ActorRoleSystem     ActorRole = "system"
)

// Defines values for OrderStatus.
const (
	OrderStatusCanceled  OrderStatus = "canceled"
	OrderStatusCreated   OrderStatus = "created"
	OrderStatusDelivered OrderStatus = "delivered"
	OrderStatusEnRoute   OrderStatus = "en_route"
	OrderStatusPicked    OrderStatus = "picked"
	OrderStatusReady     OrderStatus = "ready"
)

// Defines values for PaymentMethod.
const (
	PaymentMethodCard PaymentMethod = "card"
	PaymentMethodCod  PaymentMethod = "cod"
)

// ActorRole defines model for ActorRole.
type ActorRole string

// Cart defines model for Cart.
type Cart struct {
	Lines []CartLine `json:"lines"`
	Total int64      `json:"total"`
}

// CartItem defines model for CartItem.
type CartItem struct {
	Name      string `json:"name"`
	ProductId string `json:"productId"`
	UnitPrice int64  `json:"unitPrice"`
}

// CartLine defines model for CartLine.
type CartLine struct {
	Name      string `json:"name"`
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// Checkout defines model for Checkout.
type Checkout struct {
	Address       string              `json:"address"`
	OrderId       *openapi_types.UUID `json:"orderId,omitempty"`
	PaymentMethod *PaymentMethod      `json:"paymentMethod,omitempty"`
}

// DailyEarnings defines model for DailyEarnings.
type DailyEarnings struct {
	Date           openapi_types.Date `json:"date"`
	DeliveredCount int                `json:"deliveredCount"`
	Earnings       int64              `json:"earnings"`
}

// Dashboard defines model for Dashboard.
type Dashboard struct {
	Distribution []StatusCount   `json:"distribution"`
	Earnings     Earnings        `json:"earnings"`
	Queue        []Order         `json:"queue"`
	Series       []DailyEarnings `json:"series"`
}

// Driver defines model for Driver.
type Driver struct {
	Email        string             `json:"email"`
	Id           openapi_types.UUID `json:"id"`
	Name         string             `json:"name"`
	Phone        string             `json:"phone"`
	RestaurantId openapi_types.UUID `json:"restaurantId"`
}

// DriverAssignment defines model for DriverAssignment.
type DriverAssignment struct {
	DriverId openapi_types.UUID `json:"driverId"`
}

// Earnings defines model for Earnings.
type Earnings struct {
	Today          EarningsWindow `json:"today"`
	TodayEarnings  int64          `json:"todayEarnings"`
	TodaysOrders   int            `json:"todaysOrders"`
	TotalOrders    int            `json:"totalOrders"`
	Week           EarningsWindow `json:"week"`
	WeeklyEarnings int64          `json:"weeklyEarnings"`
}

// EarningsWindow defines model for EarningsWindow.
type EarningsWindow struct {
	DeliveredCount int       `json:"deliveredCount"`
	TotalEarnings  int64     `json:"totalEarnings"`
	WindowEnd      time.Time `json:"windowEnd"`
	WindowStart    time.Time `json:"windowStart"`
}

// Error defines model for Error.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"message"`
}

// NewDriver defines model for NewDriver.
type NewDriver struct {
	Email        string             `json:"email"`
	Name         string             `json:"name"`
	Phone        string             `json:"phone"`
	RestaurantId openapi_types.UUID `json:"restaurantId"`
}

// NewOrder defines model for NewOrder.
type NewOrder struct {
	Address       string             `json:"address"`
	CustomerId    openapi_types.UUID `json:"customerId"`
	Items         []OrderItem        `json:"items"`
	PaymentMethod *PaymentMethod     `json:"paymentMethod,omitempty"`
}

// Order defines model for Order.
type Order struct {
	Address       string              `json:"address"`
	CreatedAt     time.Time           `json:"createdAt"`
	CustomerId    openapi_types.UUID  `json:"customerId"`
	DriverId      *openapi_types.UUID `json:"driverId"`
	Id            openapi_types.UUID  `json:"id"`
	Items         []OrderItem         `json:"items"`
	PaymentMethod PaymentMethod       `json:"paymentMethod"`
	Status        OrderStatus         `json:"status"`
	Total         int64               `json:"total"`
}

// OrderDetails defines model for OrderDetails.
type OrderDetails struct {
	Address       string              `json:"address"`
	AllowedNext   []OrderStatus       `json:"allowedNext"`
	CreatedAt     time.Time           `json:"createdAt"`
	CustomerId    openapi_types.UUID  `json:"customerId"`
	DriverId      *openapi_types.UUID `json:"driverId"`
	Id            openapi_types.UUID  `json:"id"`
	Items         []OrderItem         `json:"items"`
	PaymentMethod PaymentMethod       `json:"paymentMethod"`
	Status        OrderStatus         `json:"status"`
	Total         int64               `json:"total"`
}

// OrderItem defines model for OrderItem.
type OrderItem struct {
	Name      string `json:"name"`
	ProductId string `json:"productId"`
	Quantity  int    `json:"quantity"`
	UnitPrice int64  `json:"unitPrice"`
}

// OrderStatus defines model for OrderStatus.
type OrderStatus string

// OrderSummary defines model for OrderSummary.
type OrderSummary struct {
	CreatedAt  time.Time           `json:"createdAt"`
	CustomerId openapi_types.UUID  `json:"customerId"`
	DriverId   *openapi_types.UUID `json:"driverId"`
	Id         openapi_types.UUID  `json:"id"`
	Status     OrderStatus         `json:"status"`
	Total      int64               `json:"total"`
}

// PaymentMethod defines model for PaymentMethod.
type PaymentMethod string

// StatusCount defines model for StatusCount.
type StatusCount struct {
	Count  int         `json:"count"`
	Status OrderStatus `json:"status"`
}

// StatusUpdate defines model for StatusUpdate.
type StatusUpdate struct {
	// Status Requested status token. Tokens that are not a legal successor of the current status, unknown ones included, are answered with 422.
	Status string `json:"status"`
}

// GetDriversParams defines parameters for GetDrivers.
type GetDriversParams struct {
	RestaurantId *openapi_types.UUID `form:"restaurantId,omitempty" json:"restaurantId,omitempty"`
}

// GetDailySeriesParams defines parameters for GetDailySeries.
type GetDailySeriesParams struct {
	Days *int `form:"days,omitempty" json:"days,omitempty"`
}

// GetOrdersParams defines parameters for GetOrders.
type GetOrdersParams struct {
	Status *OrderStatus `form:"status,omitempty" json:"status,omitempty"`
}

// ActorParams carries the acting party of an order change.
type ActorParams struct {
	XActorRole ActorRole           `json:"X-Actor-Role"`
	XActorId   *openapi_types.UUID `json:"X-Actor-Id,omitempty"`
}

// TransitionOrderStatusParams defines parameters for TransitionOrderStatus.
type TransitionOrderStatusParams = ActorParams

// AssignDriverParams defines parameters for AssignDriver.
type AssignDriverParams = ActorParams

// CustomerParams identifies the customer owning a cart session.
type CustomerParams struct {
	XCustomerId openapi_types.UUID `json:"X-Customer-Id"`
}

// CreateDriverJSONRequestBody defines body for CreateDriver for application/json ContentType.
type CreateDriverJSONRequestBody = NewDriver

// CreateOrderJSONRequestBody defines body for CreateOrder for application/json ContentType.
type CreateOrderJSONRequestBody = NewOrder

// TransitionOrderStatusJSONRequestBody defines body for TransitionOrderStatus for application/json ContentType.
type TransitionOrderStatusJSONRequestBody = StatusUpdate

// AssignDriverJSONRequestBody defines body for AssignDriver for application/json ContentType.
type AssignDriverJSONRequestBody = DriverAssignment

// AddCartItemJSONRequestBody defines body for AddCartItem for application/json ContentType.
type AddCartItemJSONRequestBody = CartItem

// CheckoutCartJSONRequestBody defines body for CheckoutCart for application/json ContentType.
type CheckoutCartJSONRequestBody = Checkout
