package service

import (
	"context"

	"cosmiccanvas/server/internal/logger"
	"cosmiccanvas/server/internal/nasa"
)

// AdjustNasaRateLimit keeps the NASA request rate aligned with the
// configured API key: the shared demo key gets a slower rate than a
// personal one. It applies the current key immediately, then follows
// the settings update stream until it is closed. Intended to run in
// its own goroutine.
func AdjustNasaRateLimit(ctx context.Context, settings SettingsService, limiter *nasa.RateLimiter, updates <-chan UserSettings) {
	apply := func() {
		qps := nasa.LimitForKey(settings.NasaAPIKey(ctx))
		if qps == limiter.Limit() {
			return
		}
		limiter.SetLimit(qps)
		logger.Info("nasa rate limit adjusted",
			"module", "service", "action", "update", "resource", "settings", "result", "ok",
			"qps", qps)
	}

	apply()
	for range updates {
		apply()
	}
}
