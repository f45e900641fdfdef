package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"cosmiccanvas/server/internal/repository"
)

const defaultNotificationLimit = 50

type NotificationHandler struct {
	repo repository.NotificationRepository
}

func NewNotificationHandler(repo repository.NotificationRepository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

type notificationResponse struct {
	ID        int64   `json:"id"`
	Kind      string  `json:"kind"`
	ApodDate  string  `json:"apodDate"`
	Keyword   *string `json:"keyword,omitempty"`
	Title     string  `json:"title"`
	Body      string  `json:"body"`
	CreatedAt string  `json:"createdAt"`
}

func (h *NotificationHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/notifications", h.List)
}

// List returns the most recent notifications, newest first.
// @Summary List notifications
// @Tags notifications
// @Produce json
// @Param limit query int false "Maximum results (default 50)"
// @Success 200 {array} notificationResponse
// @Failure 500 {object} errorResponse
// @Router /notifications [get]
func (h *NotificationHandler) List(c echo.Context) error {
	limit := parseIntQuery(c, "limit", defaultNotificationLimit)
	if limit <= 0 {
		limit = defaultNotificationLimit
	}

	notifications, err := h.repo.List(c.Request().Context(), limit)
	if err != nil {
		return writeServiceError(c, err)
	}

	out := make([]notificationResponse, 0, len(notifications))
	for _, n := range notifications {
		out = append(out, notificationResponse{
			ID:        n.ID,
			Kind:      n.Kind,
			ApodDate:  n.ApodDate,
			Keyword:   n.Keyword,
			Title:     n.Title,
			Body:      n.Body,
			CreatedAt: n.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	return c.JSON(http.StatusOK, out)
}
