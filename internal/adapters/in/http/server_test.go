package http_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	adapter "fulfillment/internal/adapters/in/http"
	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

var createdAt = time.Date(2025, 3, 14, 12, 0, 0, 0, time.UTC)

type ServerTestSuite struct {
	suite.Suite

	createOrder *MockCreateOrderHandler
	transition  *MockTransitionHandler
	addCartItem *MockAddCartItemHandler
	getCart     *MockGetCartHandler
	getDrivers  *MockGetAllDriversHandler
	getSeries   *MockGetDailySeriesHandler
	getOrder    *MockGetOrderHandler
	observer    *recordingObserver
	router      *echo.Echo
}

func TestServerTestSuite(t *testing.T) {
	suite.Run(t, new(ServerTestSuite))
}

func (s *ServerTestSuite) SetupTest() {
	s.createOrder = new(MockCreateOrderHandler)
	s.transition = new(MockTransitionHandler)
	s.addCartItem = new(MockAddCartItemHandler)
	s.getCart = new(MockGetCartHandler)
	s.getDrivers = new(MockGetAllDriversHandler)
	s.getSeries = new(MockGetDailySeriesHandler)
	s.getOrder = new(MockGetOrderHandler)
	s.observer = &recordingObserver{}

	server := adapter.NewServer(adapter.Handlers{
		CreateOrder:           s.createOrder,
		TransitionOrderStatus: s.transition,
		AddCartItem:           s.addCartItem,
		GetCart:               s.getCart,
		GetAllDrivers:         s.getDrivers,
		GetDailySeries:        s.getSeries,
		GetOrder:              s.getOrder,
	}, discardLogger())

	router, err := adapter.NewRouter(server, adapter.RouterOptions{
		Logger:         discardLogger(),
		Observer:       s.observer,
		MetricsHandler: http.NotFoundHandler(),
	})
	s.Require().NoError(err)
	s.router = router
}

func (s *ServerTestSuite) do(method, target, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, target, nil)
	} else {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	rec := httptest.NewRecorder()
	s.router.ServeHTTP(rec, req)
	return rec
}

func (s *ServerTestSuite) storedOrder(status order.Status, driverID *kernel.UUID) *order.Order {
	price, err := kernel.NewMoney(450)
	s.Require().NoError(err)
	item, err := order.NewItem("burger", "Burger", price, 2)
	s.Require().NoError(err)
	dest, err := order.NewDelivery("1 Main St", order.PaymentCard)
	s.Require().NoError(err)

	o, err := order.RestoreOrder(kernel.NewUUID(), kernel.NewUUID(), driverID, []order.Item{item},
		item.Subtotal(), status, dest, createdAt)
	s.Require().NoError(err)
	return o
}

func (s *ServerTestSuite) decodeError(rec *httptest.ResponseRecorder) servers.Error {
	var body servers.Error
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &body))
	return body
}

func (s *ServerTestSuite) TestHealth() {
	rec := s.do(http.MethodGet, "/health", "", nil)

	s.Equal(http.StatusOK, rec.Code)
	s.Equal("Healthy", rec.Body.String())
}

func (s *ServerTestSuite) TestCreateOrder() {
	customerID := kernel.NewUUID()
	created := s.storedOrder(order.Created, nil)
	s.createOrder.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.CreateOrderCommand) bool {
		return cmd.CustomerID().IsEqual(customerID) && len(cmd.Items()) == 1 &&
			cmd.Delivery().PaymentMethod() == order.PaymentCashOnDelivery
	})).Return(created, nil).Once()

	body := `{"customerId":"` + customerID.String() + `","address":"1 Main St",
		"items":[{"productId":"burger","name":"Burger","unitPrice":450,"quantity":2}]}`
	rec := s.do(http.MethodPost, "/api/v1/orders", body, nil)

	s.Require().Equal(http.StatusCreated, rec.Code, rec.Body.String())
	var got servers.Order
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal(created.ID().String(), got.Id.String())
	s.Equal(servers.OrderStatusCreated, got.Status)
	s.Equal(int64(900), got.Total)
	s.Nil(got.DriverId)
	s.createOrder.AssertExpectations(s.T())
}

func (s *ServerTestSuite) TestCreateOrderRejectsEmptyItems() {
	body := `{"customerId":"` + kernel.NewUUID().String() + `","address":"1 Main St","items":[]}`

	rec := s.do(http.MethodPost, "/api/v1/orders", body, nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.createOrder.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestCreateOrderRejectsOutOfRangeLines() {
	for name, line := range map[string]string{
		"unit price": `{"productId":"gold","name":"Gold","unitPrice":9223372036854775807,"quantity":1}`,
		"quantity":   `{"productId":"gold","name":"Gold","unitPrice":100,"quantity":1001}`,
	} {
		s.Run(name, func() {
			body := `{"customerId":"` + kernel.NewUUID().String() + `","address":"1 Main St","items":[` + line + `]}`

			rec := s.do(http.MethodPost, "/api/v1/orders", body, nil)

			s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
		})
	}
	s.createOrder.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestAddCartItemRejectsOutOfRangePrice() {
	rec := s.do(http.MethodPost, "/api/v1/carts/"+kernel.NewUUID().String()+"/items",
		`{"productId":"gold","name":"Gold","unitPrice":100000001}`,
		map[string]string{"X-Customer-ID": kernel.NewUUID().String()})

	s.Equal(http.StatusBadRequest, rec.Code, rec.Body.String())
	s.addCartItem.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestTransitionOrderStatus() {
	driverID := kernel.NewUUID()
	picked := s.storedOrder(order.Picked, &driverID)
	s.transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionOrderStatusCommand) bool {
		return cmd.Requested() == order.Picked && cmd.Actor().Is(order.RoleDriver, &driverID)
	})).Return(picked, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/orders/"+picked.ID().String()+"/status", `{"status":"picked"}`,
		map[string]string{"X-Actor-Role": "driver", "X-Actor-Id": driverID.String()})

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var got servers.Order
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Equal(servers.OrderStatusPicked, got.Status)
	s.Require().NotNil(got.DriverId)
	s.Equal(driverID.String(), got.DriverId.String())
}

func (s *ServerTestSuite) TestTransitionOrderStatusErrorCodes() {
	cases := map[string]struct {
		err  error
		code int
	}{
		"invalid transition": {errs.NewTransitionIsInvalidError("created", "delivered"), http.StatusUnprocessableEntity},
		"unauthorized":       {errs.NewActorIsUnauthorizedError("customer", "deliver"), http.StatusForbidden},
		"conflict":           {errs.NewConcurrencyConflictError("order", "id", "ready"), http.StatusConflict},
		"not found":          {errs.NewObjectNotFoundError("order", "id"), http.StatusNotFound},
		"store failure":      {errors.New("connection reset"), http.StatusInternalServerError},
	}

	for name, tc := range cases {
		s.Run(name, func() {
			s.transition.ExpectedCalls = nil
			s.transition.On("Handle", mock.Anything, mock.Anything).Return(nil, tc.err).Once()

			rec := s.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status",
				`{"status":"delivered"}`, map[string]string{"X-Actor-Role": "system"})

			s.Equal(tc.code, rec.Code)
			body := s.decodeError(rec)
			s.Equal(int32(tc.code), body.Code)
			if tc.code == http.StatusInternalServerError {
				s.NotContains(body.Message, "connection reset")
			}
		})
	}
}

func (s *ServerTestSuite) TestTransitionOrderStatusRequiresActorRole() {
	rec := s.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":"ready"}`, nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.transition.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestTransitionOrderStatusUnknownStatusIsUnprocessable() {
	s.transition.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.TransitionOrderStatusCommand) bool {
		return cmd.Requested() == order.Status("lost")
	})).Return(nil, errs.NewTransitionIsInvalidError("ready", "lost")).Once()

	rec := s.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":"lost"}`,
		map[string]string{"X-Actor-Role": "system"})

	s.Equal(http.StatusUnprocessableEntity, rec.Code, rec.Body.String())
	s.transition.AssertExpectations(s.T())
}

func (s *ServerTestSuite) TestTransitionOrderStatusRequiresStatus() {
	rec := s.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":""}`,
		map[string]string{"X-Actor-Role": "system"})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.transition.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestDriverWithoutIDIsRejected() {
	rec := s.do(http.MethodPost, "/api/v1/orders/"+kernel.NewUUID().String()+"/status", `{"status":"picked"}`,
		map[string]string{"X-Actor-Role": "driver"})

	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(s.decodeError(rec).Message, "actor id")
}

func (s *ServerTestSuite) TestGetOrderListsAllowedNext() {
	ready := s.storedOrder(order.Ready, nil)
	s.getOrder.On("Handle", mock.Anything, mock.Anything).Return(queries.GetOrderQueryResponse{
		Order:       ready,
		AllowedNext: ready.Status().AllowedNext(),
	}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/orders/"+ready.ID().String(), "", nil)

	s.Require().Equal(http.StatusOK, rec.Code)
	var got servers.OrderDetails
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.ElementsMatch([]servers.OrderStatus{servers.OrderStatusPicked, servers.OrderStatusCanceled}, got.AllowedNext)
}

func (s *ServerTestSuite) TestAddCartItemAndSnapshot() {
	sessionID, customerID := kernel.NewUUID(), kernel.NewUUID()
	price, err := kernel.NewMoney(300)
	s.Require().NoError(err)
	line, err := cart.NewLine("fries", "Fries", price)
	s.Require().NoError(err)
	session, err := cart.NewSession(sessionID, customerID, createdAt)
	s.Require().NoError(err)
	session = session.Add(line, createdAt).Add(line, createdAt)

	s.addCartItem.On("Handle", mock.Anything, mock.MatchedBy(func(cmd commands.AddCartItemCommand) bool {
		return cmd.Line().ProductID() == "fries" && cmd.CustomerID().IsEqual(customerID)
	})).Return(session, nil).Once()

	rec := s.do(http.MethodPost, "/api/v1/carts/"+sessionID.String()+"/items",
		`{"productId":"fries","name":"Fries","unitPrice":300}`,
		map[string]string{"X-Customer-Id": customerID.String()})

	s.Require().Equal(http.StatusOK, rec.Code, rec.Body.String())
	var got servers.Cart
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got.Lines, 1)
	s.Equal(2, got.Lines[0].Quantity)
	s.Equal(int64(600), got.Total)
}

func (s *ServerTestSuite) TestGetCartRequiresCustomer() {
	rec := s.do(http.MethodGet, "/api/v1/carts/"+kernel.NewUUID().String(), "", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.getCart.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestGetCartOfAnotherCustomerIsForbidden() {
	s.getCart.On("Handle", mock.Anything, mock.Anything).
		Return(cart.Empty(), errs.NewActorIsUnauthorizedError("customer", "read another customer's cart")).Once()

	rec := s.do(http.MethodGet, "/api/v1/carts/"+kernel.NewUUID().String(), "",
		map[string]string{"X-Customer-Id": kernel.NewUUID().String()})

	s.Equal(http.StatusForbidden, rec.Code)
}

func (s *ServerTestSuite) TestGetDrivers() {
	restaurantID := kernel.NewUUID()
	s.getDrivers.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetAllDriversQuery) bool {
		return q.RestaurantID() != nil && q.RestaurantID().IsEqual(restaurantID)
	})).Return([]queries.GetAllDriversQueryResponse{{
		ID: kernel.NewUUID(), Name: "Alice", Email: "alice@example.com", Phone: "+1", RestaurantID: restaurantID,
	}}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/drivers?restaurantId="+restaurantID.String(), "", nil)

	s.Require().Equal(http.StatusOK, rec.Code)
	var got []servers.Driver
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &got))
	s.Require().Len(got, 1)
	s.Equal("Alice", got[0].Name)
}

func (s *ServerTestSuite) TestDailySeriesDefaultsToSevenDays() {
	day := time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC)
	s.getSeries.On("Handle", mock.Anything, mock.MatchedBy(func(q queries.GetDailySeriesQuery) bool {
		return q.Days() == services.SeriesDays
	})).Return([]services.DailyEarnings{{Date: day, DeliveredCount: 2, Earnings: kernel.Zero()}}, nil).Once()

	rec := s.do(http.MethodGet, "/api/v1/drivers/"+kernel.NewUUID().String()+"/earnings/daily", "", nil)

	s.Require().Equal(http.StatusOK, rec.Code)
	s.Contains(rec.Body.String(), `"date":"2025-03-14"`)
}

func (s *ServerTestSuite) TestDailySeriesRejectsTooManyDays() {
	rec := s.do(http.MethodGet, "/api/v1/drivers/"+kernel.NewUUID().String()+"/earnings/daily?days=1000", "", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
	s.getSeries.AssertNotCalled(s.T(), "Handle", mock.Anything, mock.Anything)
}

func (s *ServerTestSuite) TestMalformedPathIDIsRejected() {
	rec := s.do(http.MethodGet, "/api/v1/orders/not-a-uuid", "", nil)

	s.Equal(http.StatusBadRequest, rec.Code)
}

func (s *ServerTestSuite) TestRequestsAreObservedByRoute() {
	s.do(http.MethodGet, "/health", "", nil)
	s.do(http.MethodGet, "/api/v1/orders/not-a-uuid", "", nil)

	s.Equal([]string{"/health", "/api/v1/orders/:orderId"}, s.observer.routes)
	s.Equal([]int{http.StatusOK, http.StatusBadRequest}, s.observer.codes)
}

func TestNewServer_RequestErrorsAreMappedToStatusCodes(t *testing.T) {
	handler := new(MockCreateOrderHandler)
	handler.On("Handle", mock.Anything, mock.Anything).
		Return(nil, errs.NewValueIsInvalidError("items")).Once()
	server := adapter.NewServer(adapter.Handlers{CreateOrder: handler}, discardLogger())

	body := `{"customerId":"` + kernel.NewUUID().String() + `","address":"1 Main St",
		"items":[{"productId":"a","name":"A","unitPrice":1,"quantity":1}]}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/orders", strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	e := echo.New()

	require.NoError(t, server.CreateOrder(e.NewContext(req, rec)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
