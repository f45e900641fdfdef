package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cosmiccanvas/server/internal/config"
	"cosmiccanvas/server/internal/db"
	"cosmiccanvas/server/internal/handler"
	transport "cosmiccanvas/server/internal/http"
	"cosmiccanvas/server/internal/logger"
	"cosmiccanvas/server/internal/nasa"
	"cosmiccanvas/server/internal/network"
	"cosmiccanvas/server/internal/repository"
	"cosmiccanvas/server/internal/scheduler"
	"cosmiccanvas/server/internal/service"
	"cosmiccanvas/server/internal/snowflake"
	"cosmiccanvas/server/internal/translate"
)

func main() {
	cfg := config.Load()

	logger.Init(cfg.LogLevel)

	if err := snowflake.Init(1); err != nil {
		log.Fatalf("init id generator: %v", err)
	}

	dbConn, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer dbConn.Close()

	apodRepo := repository.NewApodRepository(dbConn)
	translationRepo := repository.NewTranslationRepository(dbConn)
	settingsRepo := repository.NewSettingsRepository(dbConn)
	notificationRepo := repository.NewNotificationRepository(dbConn)

	settingsService := service.NewSettingsService(settingsRepo, cfg.NasaAPIKey)
	clientFactory := network.NewClientFactory(settingsService)

	nasaLimiter := nasa.NewRateLimiter(nasa.DefaultRateLimit)
	nasaClient := nasa.NewClient(
		clientFactory.NewHTTPClient(context.Background(), 30*time.Second),
		"",
		nasaLimiter,
	)

	// Keep the NASA request rate in step with the configured key; the
	// shared demo key has a much smaller quota than a personal one.
	settingsUpdates, unsubscribe := settingsService.Subscribe()
	defer unsubscribe()
	go service.AdjustNasaRateLimit(context.Background(), settingsService, nasaLimiter, settingsUpdates)

	// Route the keyless translate endpoint through the proxy-aware
	// client factory; other providers manage their own transport.
	providerFactory := func(pcfg translate.Config) (translate.Provider, error) {
		if pcfg.Provider == "" || pcfg.Provider == translate.ProviderSimple {
			httpClient := clientFactory.NewHTTPClient(context.Background(), 10*time.Second)
			return translate.NewClient(httpClient, pcfg.BaseURL), nil
		}
		return translate.NewProvider(pcfg)
	}

	apodService := service.NewApodService(apodRepo, nasaClient, settingsService)
	translationService := service.NewTranslationService(translationRepo, settingsService, providerFactory)
	syncService := service.NewSyncService(apodService, settingsService, notificationRepo)

	apodHandler := handler.NewApodHandler(apodService)
	translateHandler := handler.NewTranslateHandler(translationService)
	settingsHandler := handler.NewSettingsHandler(settingsService)
	notificationHandler := handler.NewNotificationHandler(notificationRepo)
	syncHandler := handler.NewSyncHandler(syncService, settingsService)

	router := transport.NewRouter(apodHandler, translateHandler, settingsHandler, notificationHandler, syncHandler, cfg.StaticDir)

	sched := scheduler.New(syncService, settingsService, scheduler.DefaultInterval)
	sched.Start()

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		log.Println("shutting down...")
		sched.Stop()
		os.Exit(0)
	}()

	if err := router.Start(cfg.Addr); err != nil {
		log.Fatalf("start server: %v", err)
	}
}
