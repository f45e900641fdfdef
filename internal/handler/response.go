package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"cosmiccanvas/server/internal/remote"
	"cosmiccanvas/server/internal/service"
	"cosmiccanvas/server/internal/translate"
)

type errorResponse struct {
	Error string `json:"error"`
}

type deletedCountResponse struct {
	Deleted int64 `json:"deleted"`
}

type syncStartedResponse struct {
	Status string `json:"status"`
}

func writeServiceError(c echo.Context, err error) error {
	var statusErr *remote.HTTPStatusError
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, translate.ErrInvalidProvider),
		errors.Is(err, translate.ErrMissingAPIKey),
		errors.Is(err, translate.ErrEmptyText):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	case errors.Is(err, remote.ErrRateLimited):
		return c.JSON(http.StatusTooManyRequests, errorResponse{Error: "upstream rate limit"})
	case errors.As(err, &statusErr),
		errors.Is(err, remote.ErrTransport),
		errors.Is(err, remote.ErrEmptyResponse):
		return c.JSON(http.StatusBadGateway, errorResponse{Error: "upstream fetch failed"})
	default:
		c.Logger().Error(err)
		return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
	}
}

// Error returns a JSON error response with the given status and message
func Error(c echo.Context, status int, message string) error {
	return c.JSON(status, errorResponse{Error: message})
}
