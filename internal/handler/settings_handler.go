package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cosmiccanvas/server/internal/service"
)

type SettingsHandler struct {
	service service.SettingsService
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// Request/Response types

type settingsResponse struct {
	NotificationsEnabled    bool     `json:"notificationsEnabled"`
	WatchedKeywords         []string `json:"watchedKeywords"`
	NasaAPIKey              string   `json:"nasaApiKey"`
	TranslateProvider       string   `json:"translateProvider"`
	TranslateAPIKey         string   `json:"translateApiKey"`
	TranslateModel          string   `json:"translateModel"`
	AppLanguage             string   `json:"appLanguage"`
	DarkTheme               bool     `json:"darkTheme"`
	ScreenSaverDelaySeconds int      `json:"screenSaverDelaySeconds"`
	RecentLanguages         []string `json:"recentLanguages"`
	ProxyURL                string   `json:"proxyUrl"`
}

type settingsRequest struct {
	NotificationsEnabled    bool     `json:"notificationsEnabled"`
	WatchedKeywords         []string `json:"watchedKeywords"`
	NasaAPIKey              string   `json:"nasaApiKey"`
	TranslateProvider       string   `json:"translateProvider"`
	TranslateAPIKey         string   `json:"translateApiKey"`
	TranslateModel          string   `json:"translateModel"`
	AppLanguage             string   `json:"appLanguage"`
	DarkTheme               bool     `json:"darkTheme"`
	ScreenSaverDelaySeconds int      `json:"screenSaverDelaySeconds"`
	ProxyURL                string   `json:"proxyUrl"`
}

type keywordRequest struct {
	Keyword string `json:"keyword"`
}

func toSettingsResponse(s *service.UserSettings) settingsResponse {
	return settingsResponse{
		NotificationsEnabled:    s.NotificationsEnabled,
		WatchedKeywords:         s.WatchedKeywords,
		NasaAPIKey:              s.NasaAPIKey,
		TranslateProvider:       s.TranslateProvider,
		TranslateAPIKey:         s.TranslateAPIKey,
		TranslateModel:          s.TranslateModel,
		AppLanguage:             s.AppLanguage,
		DarkTheme:               s.DarkTheme,
		ScreenSaverDelaySeconds: s.ScreenSaverDelaySeconds,
		RecentLanguages:         s.RecentLanguages,
		ProxyURL:                s.ProxyURL,
	}
}

func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings", h.GetSettings)
	g.PUT("/settings", h.UpdateSettings)
	g.POST("/settings/keywords", h.AddKeyword)
	g.DELETE("/settings/keywords/:keyword", h.RemoveKeyword)
}

// GetSettings returns the user preferences.
// @Summary Get settings
// @Description Get user preferences with masked API keys
// @Tags settings
// @Produce json
// @Success 200 {object} settingsResponse
// @Failure 500 {object} errorResponse
// @Router /settings [get]
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	settings, err := h.service.GetSettings(c.Request().Context())
	if err != nil {
		c.Logger().Error(err)
		return Error(c, http.StatusInternalServerError, "failed to get settings")
	}
	return c.JSON(http.StatusOK, toSettingsResponse(settings))
}

// UpdateSettings updates the user preferences.
// @Summary Update settings
// @Description Update user preferences. Empty or masked API keys keep the stored ones.
// @Tags settings
// @Accept json
// @Produce json
// @Param settings body settingsRequest true "Settings"
// @Success 200 {object} settingsResponse
// @Failure 400 {object} errorResponse
// @Failure 500 {object} errorResponse
// @Router /settings [put]
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	var req settingsRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	settings := &service.UserSettings{
		NotificationsEnabled:    req.NotificationsEnabled,
		WatchedKeywords:         req.WatchedKeywords,
		NasaAPIKey:              req.NasaAPIKey,
		TranslateProvider:       req.TranslateProvider,
		TranslateAPIKey:         req.TranslateAPIKey,
		TranslateModel:          req.TranslateModel,
		AppLanguage:             req.AppLanguage,
		DarkTheme:               req.DarkTheme,
		ScreenSaverDelaySeconds: req.ScreenSaverDelaySeconds,
		ProxyURL:                req.ProxyURL,
	}

	if err := h.service.UpdateSettings(c.Request().Context(), settings); err != nil {
		c.Logger().Error(err)
		return Error(c, http.StatusInternalServerError, "failed to save settings")
	}

	// Return updated settings (with masked keys)
	return h.GetSettings(c)
}

// AddKeyword adds a watched keyword for sync notifications.
// @Summary Add watched keyword
// @Tags settings
// @Accept json
// @Produce json
// @Param keyword body keywordRequest true "Keyword"
// @Success 200 {object} settingsResponse
// @Failure 400 {object} errorResponse
// @Router /settings/keywords [post]
func (h *SettingsHandler) AddKeyword(c echo.Context) error {
	var req keywordRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	if err := h.service.AddKeyword(c.Request().Context(), req.Keyword); err != nil {
		return writeServiceError(c, err)
	}
	return h.GetSettings(c)
}

// RemoveKeyword removes a watched keyword.
// @Summary Remove watched keyword
// @Tags settings
// @Produce json
// @Param keyword path string true "Keyword"
// @Success 200 {object} settingsResponse
// @Failure 400 {object} errorResponse
// @Router /settings/keywords/{keyword} [delete]
func (h *SettingsHandler) RemoveKeyword(c echo.Context) error {
	if err := h.service.RemoveKeyword(c.Request().Context(), c.Param("keyword")); err != nil {
		return writeServiceError(c, err)
	}
	return h.GetSettings(c)
}
