package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cosmiccanvas/server/internal/service"
)

type SyncHandler struct {
	service  service.SyncService
	settings service.SettingsService
}

func NewSyncHandler(service service.SyncService, settings service.SettingsService) *SyncHandler {
	return &SyncHandler{service: service, settings: settings}
}

type syncStatusResponse struct {
	LastRun *string `json:"lastRun"`
}

func (h *SyncHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/sync", h.RunSync)
	g.GET("/sync/status", h.Status)
}

// RunSync performs a full sync pass immediately.
// @Summary Run sync now
// @Tags sync
// @Produce json
// @Success 200 {object} syncStartedResponse
// @Failure 429 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /sync [post]
func (h *SyncHandler) RunSync(c echo.Context) error {
	if err := h.service.RunOnce(c.Request().Context()); err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, syncStartedResponse{Status: "completed"})
}

// Status reports when the last successful sync ran.
// @Summary Get sync status
// @Tags sync
// @Produce json
// @Success 200 {object} syncStatusResponse
// @Router /sync/status [get]
func (h *SyncHandler) Status(c echo.Context) error {
	lastRun, ok := h.settings.LastSyncRun(c.Request().Context())
	if !ok {
		return c.JSON(http.StatusOK, syncStatusResponse{})
	}
	formatted := lastRun.UTC().Format(time.RFC3339)
	return c.JSON(http.StatusOK, syncStatusResponse{LastRun: &formatted})
}
