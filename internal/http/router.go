package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "cosmiccanvas/server/docs"
	"cosmiccanvas/server/internal/handler"
)

func NewRouter(
	apodHandler *handler.ApodHandler,
	translateHandler *handler.TranslateHandler,
	settingsHandler *handler.SettingsHandler,
	notificationHandler *handler.NotificationHandler,
	syncHandler *handler.SyncHandler,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Use(middleware.Recover())
	e.Use(RequestLoggerMiddleware())

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("/api")
	apodHandler.RegisterRoutes(api)
	translateHandler.RegisterRoutes(api)
	settingsHandler.RegisterRoutes(api)
	notificationHandler.RegisterRoutes(api)
	syncHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
