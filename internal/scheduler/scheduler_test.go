package scheduler_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cosmiccanvas/server/internal/repository"
	"cosmiccanvas/server/internal/repository/testutil"
	"cosmiccanvas/server/internal/scheduler"
	"cosmiccanvas/server/internal/service"
)

// fakeSyncService mirrors the real contract: a successful run persists
// its timestamp through the settings service.
type fakeSyncService struct {
	settings service.SettingsService
	runs     atomic.Int32
	err      error
}

func (f *fakeSyncService) RunOnce(ctx context.Context) error {
	f.runs.Add(1)
	if f.err != nil {
		return f.err
	}
	return f.settings.SetLastSyncRun(ctx, time.Now())
}

func newSchedulerSettings(t *testing.T) service.SettingsService {
	db := testutil.NewTestDB(t)
	return service.NewSettingsService(repository.NewSettingsRepository(db), "")
}

// newOnlineScheduler pins the connectivity check so tests never dial out.
func newOnlineScheduler(sync *fakeSyncService, settings service.SettingsService) *scheduler.Scheduler {
	s := scheduler.New(sync, settings, 24*time.Hour)
	s.SetConnectivityCheck(func(ctx context.Context) bool { return true })
	return s
}

func waitForRuns(t *testing.T, sync *fakeSyncService, want int32) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if sync.runs.Load() >= want {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatalf("sync ran %d times, want at least %d", sync.runs.Load(), want)
}

func TestScheduler_RunsImmediatelyWhenNeverSynced(t *testing.T) {
	settings := newSchedulerSettings(t)
	sync := &fakeSyncService{settings: settings}

	s := newOnlineScheduler(sync, settings)
	s.Start()
	defer s.Stop()

	waitForRuns(t, sync, 1)

	// A successful run persists the timestamp.
	_, ok := settings.LastSyncRun(context.Background())
	require.True(t, ok)
}

func TestScheduler_SkipsWhenRecentlySynced(t *testing.T) {
	settings := newSchedulerSettings(t)
	require.NoError(t, settings.SetLastSyncRun(context.Background(), time.Now()))

	sync := &fakeSyncService{settings: settings}
	s := newOnlineScheduler(sync, settings)
	s.Start()

	time.Sleep(100 * time.Millisecond)
	s.Stop()

	require.Zero(t, sync.runs.Load())
}

func TestScheduler_RunsWhenLastSyncTooOld(t *testing.T) {
	settings := newSchedulerSettings(t)
	require.NoError(t, settings.SetLastSyncRun(context.Background(), time.Now().Add(-48*time.Hour)))

	sync := &fakeSyncService{settings: settings}
	s := newOnlineScheduler(sync, settings)
	s.Start()
	defer s.Stop()

	waitForRuns(t, sync, 1)
}

func TestScheduler_SkipsWhileOffline(t *testing.T) {
	settings := newSchedulerSettings(t)
	sync := &fakeSyncService{settings: settings}

	s := scheduler.New(sync, settings, 24*time.Hour)
	s.SetConnectivityCheck(func(ctx context.Context) bool { return false })
	s.Start()

	time.Sleep(100 * time.Millisecond)
	s.Stop()

	// Due but offline: skipped entirely, not counted as a failure.
	require.Zero(t, sync.runs.Load())
	_, ok := settings.LastSyncRun(context.Background())
	require.False(t, ok)
}

func TestScheduler_StopIsIdempotentlySafe(t *testing.T) {
	settings := newSchedulerSettings(t)
	sync := &fakeSyncService{settings: settings}

	s := newOnlineScheduler(sync, settings)
	s.Start()
	waitForRuns(t, sync, 1)
	s.Stop()

	// No further runs after Stop.
	runs := sync.runs.Load()
	time.Sleep(50 * time.Millisecond)
	require.Equal(t, runs, sync.runs.Load())
}
