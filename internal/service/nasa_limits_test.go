package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cosmiccanvas/server/internal/nasa"
	"cosmiccanvas/server/internal/repository"
	"cosmiccanvas/server/internal/repository/testutil"
	"cosmiccanvas/server/internal/service"
)

func waitForLimit(t *testing.T, limiter *nasa.RateLimiter, want int) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if limiter.Limit() == want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("limit is %d, want %d", limiter.Limit(), want)
}

func TestAdjustNasaRateLimit_FollowsKeyChanges(t *testing.T) {
	db := testutil.NewTestDB(t)
	settings := service.NewSettingsService(repository.NewSettingsRepository(db), "")
	limiter := nasa.NewRateLimiter(nasa.DefaultRateLimit)
	ctx := context.Background()

	updates, cancel := settings.Subscribe()
	done := make(chan struct{})
	go func() {
		defer close(done)
		service.AdjustNasaRateLimit(ctx, settings, limiter, updates)
	}()

	// The shared demo key is in effect until a personal key is set.
	waitForLimit(t, limiter, nasa.DemoRateLimit)

	require.NoError(t, settings.UpdateSettings(ctx, &service.UserSettings{
		NotificationsEnabled: true,
		NasaAPIKey:           "personal-key",
	}))
	waitForLimit(t, limiter, nasa.DefaultRateLimit)

	cancel()
	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("watcher did not stop after unsubscribe")
	}
}

func TestLimitForKey(t *testing.T) {
	require.Equal(t, nasa.DemoRateLimit, nasa.LimitForKey(""))
	require.Equal(t, nasa.DemoRateLimit, nasa.LimitForKey("DEMO_KEY"))
	require.Equal(t, nasa.DefaultRateLimit, nasa.LimitForKey("real-key"))
}
