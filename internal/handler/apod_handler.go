package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/service"
)

type ApodHandler struct {
	service service.ApodService
}

func NewApodHandler(service service.ApodService) *ApodHandler {
	return &ApodHandler{service: service}
}

// Request/Response types

type apodResponse struct {
	Date         string  `json:"date"`
	Title        string  `json:"title"`
	Explanation  string  `json:"explanation"`
	URL          string  `json:"url"`
	HDURL        *string `json:"hdUrl,omitempty"`
	MediaType    string  `json:"mediaType"`
	ThumbnailURL *string `json:"thumbnailUrl,omitempty"`
	Copyright    *string `json:"copyright,omitempty"`
	Favorite     bool    `json:"favorite"`
}

type favoriteRequest struct {
	Favorite bool `json:"favorite"`
}

func toApodResponse(a model.Apod) apodResponse {
	return apodResponse{
		Date:         a.Date,
		Title:        a.Title,
		Explanation:  a.Explanation,
		URL:          a.URL,
		HDURL:        a.HDURL,
		MediaType:    a.MediaType,
		ThumbnailURL: a.ThumbnailURL,
		Copyright:    a.Copyright,
		Favorite:     a.Favorite,
	}
}

func toApodResponses(apods []model.Apod) []apodResponse {
	out := make([]apodResponse, 0, len(apods))
	for _, a := range apods {
		out = append(out, toApodResponse(a))
	}
	return out
}

func (h *ApodHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/apod", h.GetToday)
	g.GET("/apod/recent", h.ListRecent)
	g.GET("/apod/range", h.ListRange)
	g.GET("/apod/random", h.Random)
	g.GET("/apod/search", h.Search)
	g.GET("/apod/favorites", h.ListFavorites)
	g.GET("/apod/:date", h.GetByDate)
	g.POST("/apod/:date/refresh", h.Refresh)
	g.PUT("/apod/:date/favorite", h.SetFavorite)
}

// GetToday returns the picture for the requested date, defaulting to
// today, fetching it if not cached yet.
// @Summary Get today's picture or the picture for a date
// @Tags apod
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD), today when omitted"
// @Success 200 {object} apodResponse
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /apod [get]
func (h *ApodHandler) GetToday(c echo.Context) error {
	apod, err := h.service.GetByDate(c.Request().Context(), c.QueryParam("date"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toApodResponse(apod))
}

// GetByDate returns the picture for a specific date.
// @Summary Get picture by date
// @Tags apod
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} apodResponse
// @Failure 400 {object} errorResponse
// @Router /apod/{date} [get]
func (h *ApodHandler) GetByDate(c echo.Context) error {
	apod, err := h.service.GetByDate(c.Request().Context(), c.Param("date"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toApodResponse(apod))
}

// Refresh re-fetches a date from the network even when cached.
// @Summary Refresh picture by date
// @Tags apod
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Success 200 {object} apodResponse
// @Failure 400 {object} errorResponse
// @Router /apod/{date}/refresh [post]
func (h *ApodHandler) Refresh(c echo.Context) error {
	apod, err := h.service.Refresh(c.Request().Context(), c.Param("date"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toApodResponse(apod))
}

// ListRecent returns the most recent cached pictures.
// @Summary List recent pictures
// @Tags apod
// @Produce json
// @Param limit query int false "Maximum results (default 7)"
// @Success 200 {array} apodResponse
// @Router /apod/recent [get]
func (h *ApodHandler) ListRecent(c echo.Context) error {
	limit := parseIntQuery(c, "limit", service.RecentDays)
	apods, err := h.service.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toApodResponses(apods))
}

// ListRange returns cached pictures in an inclusive date range,
// fetching from the network when refresh=true.
// @Summary List pictures in a date range
// @Tags apod
// @Produce json
// @Param start query string true "Start date (YYYY-MM-DD)"
// @Param end query string true "End date (YYYY-MM-DD)"
// @Param refresh query bool false "Fetch the range from the network first"
// @Success 200 {array} apodResponse
// @Failure 400 {object} errorResponse
// @Router /apod/range [get]
func (h *ApodHandler) ListRange(c echo.Context) error {
	start := c.QueryParam("start")
	end := c.QueryParam("end")
	if start == "" || end == "" {
		return Error(c, http.StatusBadRequest, "start and end are required")
	}

	var apods []model.Apod
	var err error
	if c.QueryParam("refresh") == "true" {
		apods, err = h.service.RefreshRange(c.Request().Context(), start, end)
	} else {
		apods, err = h.service.ListBetween(c.Request().Context(), start, end)
	}
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toApodResponses(apods))
}

// Random fetches randomly chosen pictures from the archive.
// @Summary Get random pictures
// @Tags apod
// @Produce json
// @Param count query int false "Number of pictures (default 5)"
// @Success 200 {array} apodResponse
// @Failure 400 {object} errorResponse
// @Router /apod/random [get]
func (h *ApodHandler) Random(c echo.Context) error {
	count := parseIntQuery(c, "count", 5)
	apods, err := h.service.Sample(c.Request().Context(), count)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toApodResponses(apods))
}

// Search searches cached pictures by title and explanation.
// @Summary Search cached pictures
// @Tags apod
// @Produce json
// @Param q query string true "Keyword"
// @Success 200 {array} apodResponse
// @Failure 400 {object} errorResponse
// @Router /apod/search [get]
func (h *ApodHandler) Search(c echo.Context) error {
	apods, err := h.service.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toApodResponses(apods))
}

// ListFavorites returns the pictures the user marked as favorites.
// @Summary List favorite pictures
// @Tags apod
// @Produce json
// @Success 200 {array} apodResponse
// @Router /apod/favorites [get]
func (h *ApodHandler) ListFavorites(c echo.Context) error {
	apods, err := h.service.ListFavorites(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toApodResponses(apods))
}

// SetFavorite marks or unmarks a cached picture as favorite.
// @Summary Set favorite flag
// @Tags apod
// @Accept json
// @Produce json
// @Param date path string true "Date (YYYY-MM-DD)"
// @Param favorite body favoriteRequest true "Favorite flag"
// @Success 200 {object} apodResponse
// @Failure 400 {object} errorResponse
// @Failure 404 {object} errorResponse
// @Router /apod/{date}/favorite [put]
func (h *ApodHandler) SetFavorite(c echo.Context) error {
	var req favoriteRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	date := c.Param("date")
	if err := h.service.ToggleFavorite(c.Request().Context(), date, req.Favorite); err != nil {
		return writeServiceError(c, err)
	}

	apod, err := h.service.GetByDate(c.Request().Context(), date)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toApodResponse(apod))
}
