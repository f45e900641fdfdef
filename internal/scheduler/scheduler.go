package scheduler

import (
	"context"
	"net"
	"sync"
	"time"

	"cosmiccanvas/server/internal/logger"
	"cosmiccanvas/server/internal/service"
)

const (
	// DefaultInterval is how often a full sync is due.
	DefaultInterval = 24 * time.Hour

	// checkEvery bounds how stale a due sync can go unnoticed, e.g.
	// after the host wakes from sleep.
	checkEvery = 10 * time.Minute

	initialRetryDelay = time.Minute
	maxRetryDelay     = time.Hour

	// onlineCheckAddr is dialed before a sync to confirm the host is online.
	onlineCheckAddr    = "api.nasa.gov:443"
	onlineCheckTimeout = 5 * time.Second
)

// Scheduler drives the periodic sync. The last successful run is
// persisted through the settings service, so restarts do not trigger a
// redundant sync and long downtime triggers one immediately. A due
// sync only starts when a connectivity check succeeds.
type Scheduler struct {
	syncService service.SyncService
	settings    service.SettingsService
	interval    time.Duration

	stopCh     chan struct{}
	wg         sync.WaitGroup
	cancelFunc context.CancelFunc // cancels the current sync run
	mu         sync.Mutex         // protects cancelFunc

	retryDelay time.Duration
	retryAt    time.Time

	connectivity func(ctx context.Context) bool
}

func New(syncService service.SyncService, settings service.SettingsService, interval time.Duration) *Scheduler {
	if interval <= 0 {
		interval = DefaultInterval
	}
	return &Scheduler{
		syncService:  syncService,
		settings:     settings,
		interval:     interval,
		stopCh:       make(chan struct{}),
		connectivity: checkConnectivity,
	}
}

// SetConnectivityCheck replaces the default online check. Must be
// called before Start.
func (s *Scheduler) SetConnectivityCheck(check func(ctx context.Context) bool) {
	s.connectivity = check
}

// checkConnectivity dials the upstream API port. A failed dial means a
// due sync is skipped until the next check instead of burning a fetch
// attempt offline.
func checkConnectivity(ctx context.Context) bool {
	var d net.Dialer
	conn, err := d.DialContext(ctx, "tcp", onlineCheckAddr)
	if err != nil {
		return false
	}
	conn.Close()
	return true
}

func (s *Scheduler) Start() {
	s.wg.Add(1)
	go s.run()
	logger.Info("scheduler started", "module", "scheduler", "action", "sync", "resource", "apod", "result", "ok", "interval_ms", s.interval.Milliseconds())
}

func (s *Scheduler) Stop() {
	// Cancel any ongoing sync first
	s.mu.Lock()
	if s.cancelFunc != nil {
		s.cancelFunc()
	}
	s.mu.Unlock()

	close(s.stopCh)
	s.wg.Wait()
	logger.Info("scheduler stopped", "module", "scheduler", "action", "sync", "resource", "apod", "result", "ok")
}

func (s *Scheduler) run() {
	defer s.wg.Done()

	s.syncIfDue()

	ticker := time.NewTicker(checkEvery)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.syncIfDue()
		case <-s.stopCh:
			return
		}
	}
}

// syncIfDue runs a sync when the persisted last run is older than the
// interval, or when a previous failure's retry delay has elapsed.
func (s *Scheduler) syncIfDue() {
	now := time.Now()

	if !s.retryAt.IsZero() {
		if now.Before(s.retryAt) {
			return
		}
	} else {
		lastRun, ok := s.settings.LastSyncRun(context.Background())
		if ok && now.Sub(lastRun) < s.interval {
			return
		}
	}

	checkCtx, cancel := context.WithTimeout(context.Background(), onlineCheckTimeout)
	online := s.connectivity(checkCtx)
	cancel()
	if !online {
		// Offline is not a failure: no retry backoff, just wait for
		// the next check.
		logger.Warn("sync skipped while offline", "module", "scheduler", "action", "sync", "resource", "apod", "result", "skipped")
		return
	}

	if s.sync() {
		s.retryDelay = 0
		s.retryAt = time.Time{}
		return
	}

	if s.retryDelay == 0 {
		s.retryDelay = initialRetryDelay
	} else {
		s.retryDelay *= 2
		if s.retryDelay > maxRetryDelay {
			s.retryDelay = maxRetryDelay
		}
	}
	s.retryAt = now.Add(s.retryDelay)
}

func (s *Scheduler) sync() bool {
	ctx, cancel := context.WithTimeout(context.Background(), checkEvery)

	// Store cancel function so Stop() can cancel an ongoing sync
	s.mu.Lock()
	s.cancelFunc = cancel
	s.mu.Unlock()

	defer func() {
		cancel()
		s.mu.Lock()
		s.cancelFunc = nil
		s.mu.Unlock()
	}()

	logger.Info("scheduled sync started", "module", "scheduler", "action", "sync", "resource", "apod", "result", "ok")
	if err := s.syncService.RunOnce(ctx); err != nil {
		if ctx.Err() != nil {
			logger.Warn("scheduled sync cancelled", "module", "scheduler", "action", "sync", "resource", "apod", "result", "cancelled")
			return false
		}
		logger.Error("scheduled sync failed", "module", "scheduler", "action", "sync", "resource", "apod", "result", "failed", "error", err)
		return false
	}
	logger.Info("scheduled sync completed", "module", "scheduler", "action", "sync", "resource", "apod", "result", "ok")
	return true
}
