package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/service"
)

type TranslateHandler struct {
	service service.TranslationService
}

func NewTranslateHandler(service service.TranslationService) *TranslateHandler {
	return &TranslateHandler{service: service}
}

// Request/Response types

type translateRequest struct {
	Text       string `json:"text"`
	TargetLang string `json:"targetLang"`
	SourceLang string `json:"sourceLang"`
}

type translateBatchRequest struct {
	Texts      []string `json:"texts"`
	TargetLang string   `json:"targetLang"`
	SourceLang string   `json:"sourceLang"`
}

type translationResponse struct {
	SourceText     string `json:"sourceText"`
	TranslatedText string `json:"translatedText"`
	SourceLanguage string `json:"sourceLanguage"`
	TargetLanguage string `json:"targetLanguage"`
	CreatedAtMs    int64  `json:"createdAtMs"`
}

func toTranslationResponse(t model.Translation) translationResponse {
	return translationResponse{
		SourceText:     t.SourceText,
		TranslatedText: t.TranslatedText,
		SourceLanguage: t.SourceLanguage,
		TargetLanguage: t.TargetLanguage,
		CreatedAtMs:    t.CreatedAtMs,
	}
}

func (h *TranslateHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/translate", h.Translate)
	g.POST("/translate/batch", h.TranslateBatch)
	g.DELETE("/translate/cache", h.ClearCache)
	g.DELETE("/translate/cache/stale", h.PurgeStale)
}

// Translate translates a single text, serving fresh cached results
// without a network call.
// @Summary Translate text
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateRequest true "Text and target language"
// @Success 200 {object} translationResponse
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /translate [post]
func (h *TranslateHandler) Translate(c echo.Context) error {
	var req translateRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}

	t, err := h.service.TranslateOne(c.Request().Context(), req.Text, req.TargetLang, req.SourceLang)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toTranslationResponse(t))
}

// TranslateBatch translates several texts in one request. Cached texts
// are served locally; the rest go to the provider as one batch.
// @Summary Translate a batch of texts
// @Tags translate
// @Accept json
// @Produce json
// @Param request body translateBatchRequest true "Texts and target language"
// @Success 200 {array} translationResponse
// @Failure 400 {object} errorResponse
// @Failure 429 {object} errorResponse
// @Failure 502 {object} errorResponse
// @Router /translate/batch [post]
func (h *TranslateHandler) TranslateBatch(c echo.Context) error {
	var req translateBatchRequest
	if err := c.Bind(&req); err != nil {
		return Error(c, http.StatusBadRequest, "invalid request")
	}
	if len(req.Texts) == 0 {
		return Error(c, http.StatusBadRequest, "texts are required")
	}

	translations, err := h.service.TranslateMany(c.Request().Context(), req.Texts, req.TargetLang, req.SourceLang)
	if err != nil {
		return writeServiceError(c, err)
	}

	out := make([]translationResponse, 0, len(translations))
	for _, t := range translations {
		out = append(out, toTranslationResponse(t))
	}
	return c.JSON(http.StatusOK, out)
}

// ClearCache deletes every cached translation.
// @Summary Clear translation cache
// @Tags translate
// @Produce json
// @Success 200 {object} deletedCountResponse
// @Failure 500 {object} errorResponse
// @Router /translate/cache [delete]
func (h *TranslateHandler) ClearCache(c echo.Context) error {
	deleted, err := h.service.ClearCache(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, deletedCountResponse{Deleted: deleted})
}

// PurgeStale deletes cached translations older than the freshness window.
// @Summary Purge stale translations
// @Tags translate
// @Produce json
// @Success 200 {object} deletedCountResponse
// @Failure 500 {object} errorResponse
// @Router /translate/cache/stale [delete]
func (h *TranslateHandler) PurgeStale(c echo.Context) error {
	deleted, err := h.service.PurgeOlderThan(c.Request().Context(), service.FreshnessWindow)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, deletedCountResponse{Deleted: deleted})
}
