package http

import (
	"errors"
	"net/http"

	"fulfillment/internal/core/domain/model/order"
	"fulfillment/internal/generated/servers"
	"fulfillment/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// statusFor maps use case errors onto response codes.
func statusFor(err error) int {
	switch {
	case errs.IsValidation(err):
		return http.StatusBadRequest
	case errors.Is(err, errs.ErrActorIsUnauthorized):
		return http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		return http.StatusNotFound
	case errors.Is(err, errs.ErrConcurrencyConflict), errors.Is(err, order.ErrDriverAlreadyAssigned):
		return http.StatusConflict
	case errors.Is(err, errs.ErrTransitionIsInvalid):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

func (s *Server) respondError(ctx echo.Context, err error, message string) error {
	code := statusFor(err)
	if code == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"method", ctx.Request().Method, "path", ctx.Path(), "error", err)
		return ctx.JSON(code, servers.Error{Code: int32(code), Message: message})
	}

	return ctx.JSON(code, servers.Error{Code: int32(code), Message: message + ": " + err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}
