package http

import (
	"net/http"

	"fulfillment/internal/core/application/usecases/commands"
	"fulfillment/internal/core/application/usecases/queries"
	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/services"
	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	openapi_types "github.com/oapi-codegen/runtime/types"
)

// GetDrivers handles GET /api/v1/drivers - lists drivers, optionally of one restaurant.
func (s *Server) GetDrivers(ctx echo.Context, params servers.GetDriversParams) error {
	var restaurantID *kernel.UUID
	if params.RestaurantId != nil {
		id, err := toKernelID(*params.RestaurantId)
		if err != nil {
			return badRequest(ctx, "Invalid restaurant id: "+err.Error())
		}
		restaurantID = &id
	}

	drivers, err := s.handlers.GetAllDrivers.Handle(ctx.Request().Context(), queries.NewGetAllDriversQuery(restaurantID))
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve drivers")
	}

	response := make([]servers.Driver, len(drivers))
	for i, d := range drivers {
		response[i] = servers.Driver{
			Id:           d.ID.Bytes(),
			Name:         d.Name,
			Email:        d.Email,
			Phone:        d.Phone,
			RestaurantId: d.RestaurantID.Bytes(),
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// CreateDriver handles POST /api/v1/drivers - registers a driver.
func (s *Server) CreateDriver(ctx echo.Context) error {
	var body servers.NewDriver
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	restaurantID, err := toKernelID(body.RestaurantId)
	if err != nil {
		return badRequest(ctx, "Invalid restaurant id: "+err.Error())
	}

	cmd, err := commands.NewCreateDriverCommand(kernel.NewUUID(), body.Name, body.Email, body.Phone, restaurantID)
	if err != nil {
		return badRequest(ctx, "Invalid driver data: "+err.Error())
	}

	d, err := s.handlers.CreateDriver.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.respondError(ctx, err, "Failed to create driver")
	}

	return ctx.JSON(http.StatusCreated, servers.Driver{
		Id:           d.ID().Bytes(),
		Name:         d.Name(),
		Email:        d.Email(),
		Phone:        d.Phone(),
		RestaurantId: d.RestaurantID().Bytes(),
	})
}

// GetDriverQueue handles GET /api/v1/drivers/{driverId}/queue.
func (s *Server) GetDriverQueue(ctx echo.Context, driverId openapi_types.UUID) error {
	query, err := driverQuery(driverId)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	queue, err := s.handlers.GetDriverQueue.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to retrieve driver queue")
	}

	return ctx.JSON(http.StatusOK, toWireOrders(queue))
}

// GetDriverEarnings handles GET /api/v1/drivers/{driverId}/earnings.
func (s *Server) GetDriverEarnings(ctx echo.Context, driverId openapi_types.UUID) error {
	query, err := driverQuery(driverId)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	earnings, err := s.handlers.GetDriverEarnings.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to compute earnings")
	}

	return ctx.JSON(http.StatusOK, toWireEarnings(earnings))
}

// GetDailySeries handles GET /api/v1/drivers/{driverId}/earnings/daily.
func (s *Server) GetDailySeries(ctx echo.Context, driverId openapi_types.UUID, params servers.GetDailySeriesParams) error {
	id, err := toKernelID(driverId)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	days := services.SeriesDays
	if params.Days != nil {
		days = *params.Days
	}

	query, err := queries.NewGetDailySeriesQuery(id, days)
	if err != nil {
		return badRequest(ctx, "Invalid series query: "+err.Error())
	}

	series, err := s.handlers.GetDailySeries.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to compute daily series")
	}

	return ctx.JSON(http.StatusOK, toWireSeries(series))
}

// GetStatusDistribution handles GET /api/v1/drivers/{driverId}/status-distribution.
func (s *Server) GetStatusDistribution(ctx echo.Context, driverId openapi_types.UUID) error {
	query, err := driverQuery(driverId)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	counts, err := s.handlers.GetStatusDistribution.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to compute status distribution")
	}

	return ctx.JSON(http.StatusOK, toWireDistribution(counts))
}

// GetDriverDashboard handles GET /api/v1/drivers/{driverId}/dashboard.
func (s *Server) GetDriverDashboard(ctx echo.Context, driverId openapi_types.UUID) error {
	query, err := driverQuery(driverId)
	if err != nil {
		return badRequest(ctx, "Invalid driver id: "+err.Error())
	}

	view, err := s.handlers.GetDriverDashboard.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.respondError(ctx, err, "Failed to build dashboard")
	}

	return ctx.JSON(http.StatusOK, servers.Dashboard{
		Queue:        toWireOrders(view.Queue),
		Earnings:     toWireEarnings(view.Earnings),
		Distribution: toWireDistribution(view.Distribution),
		Series:       toWireSeries(view.Series),
	})
}

func driverQuery(driverID openapi_types.UUID) (queries.DriverQuery, error) {
	id, err := toKernelID(driverID)
	if err != nil {
		return queries.DriverQuery{}, err
	}
	return queries.NewDriverQuery(id)
}
