package http

import (
	"log/slog"
	"net/http"

	"fulfillment/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"
)

// RouterOptions holds the collaborators of the HTTP router besides the server.
type RouterOptions struct {
	Logger         *slog.Logger
	Observer       RequestObserver
	MetricsHandler http.Handler
}

// NewRouter builds the echo instance serving the API under /api/v1 together with
// /health, /metrics and the swagger UI at /swagger/*.
func NewRouter(server *Server, opts RouterOptions) (*echo.Echo, error) {
	doc, err := servers.GetSwagger()
	if err != nil {
		return nil, err
	}
	if err = servers.RegisterSwaggerDoc(); err != nil {
		return nil, err
	}

	validator, err := RequestValidator(doc)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	if opts.Observer != nil {
		e.Use(RequestMetrics(opts.Observer))
	}
	if opts.Logger != nil {
		e.Use(RequestLogger(opts.Logger))
	}

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "Healthy")
	})
	if opts.MetricsHandler != nil {
		e.GET("/metrics", echo.WrapHandler(opts.MetricsHandler))
	}
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", validator)
	servers.RegisterHandlers(api, server)

	return e, nil
}
