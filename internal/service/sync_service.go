package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/sync/errgroup"

	"cosmiccanvas/server/internal/logger"
	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/repository"
)

// SyncService runs the daily content pull: today's picture, user
// notifications and a short history backfill.
type SyncService interface {
	// RunOnce performs one full sync pass. It is safe to call again
	// after a failure; completed steps are idempotent.
	RunOnce(ctx context.Context) error
}

type syncService struct {
	apods         ApodService
	settings      SettingsService
	notifications repository.NotificationRepository
}

func NewSyncService(apods ApodService, settings SettingsService, notifications repository.NotificationRepository) SyncService {
	return &syncService{
		apods:         apods,
		settings:      settings,
		notifications: notifications,
	}
}

func (s *syncService) RunOnce(ctx context.Context) error {
	started := time.Now()

	apod, err := s.refreshToday(ctx)
	if err != nil {
		return fmt.Errorf("sync today: %w", err)
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		s.notify(gctx, apod)
		return nil
	})
	g.Go(func() error {
		return s.backfill(gctx)
	})
	if err := g.Wait(); err != nil {
		return fmt.Errorf("sync backfill: %w", err)
	}

	if err := s.settings.SetLastSyncRun(ctx, time.Now()); err != nil {
		return err
	}

	logger.Info("sync completed",
		"module", "service", "action", "sync", "resource", "apod", "result", "ok",
		"date", apod.Date, "elapsed", time.Since(started).String())
	return nil
}

// refreshToday fetches today's picture from the network regardless of
// what the local store already holds.
func (s *syncService) refreshToday(ctx context.Context) (model.Apod, error) {
	today := time.Now().UTC().Format(DateFormat)
	return s.apods.Refresh(ctx, today)
}

// notify records the new-picture notification and, when a watched
// keyword appears in the title or explanation, a keyword notification.
// Only the first matching keyword fires. Notification failures are
// logged and do not fail the sync.
func (s *syncService) notify(ctx context.Context, apod model.Apod) {
	if !s.settings.NotificationsEnabled(ctx) {
		return
	}

	if _, err := s.notifications.Create(ctx, model.Notification{
		Kind:     model.NotificationNewApod,
		ApodDate: apod.Date,
		Title:    apod.Title,
		Body:     "A new astronomy picture is available",
	}); err != nil {
		logger.Warn("create notification failed",
			"module", "service", "action", "sync", "resource", "notification", "result", "failed",
			"error", err.Error())
	}

	keywords := s.settings.WatchedKeywords(ctx)

	haystack := strings.ToLower(apod.Title + " " + apod.Explanation)
	for _, kw := range keywords {
		if kw == "" || !strings.Contains(haystack, strings.ToLower(kw)) {
			continue
		}
		keyword := kw
		if _, err := s.notifications.Create(ctx, model.Notification{
			Kind:     model.NotificationKeywordMatch,
			ApodDate: apod.Date,
			Keyword:  &keyword,
			Title:    apod.Title,
			Body:     fmt.Sprintf("%q matches today's picture: %s", kw, apod.Title),
		}); err != nil {
			logger.Warn("create notification failed",
				"module", "service", "action", "sync", "resource", "notification", "result", "failed",
				"error", err.Error())
		}
		break
	}
}

// backfill re-fetches the recent history window so the local store stays
// usable offline.
func (s *syncService) backfill(ctx context.Context) error {
	end := time.Now().UTC()
	start := end.AddDate(0, 0, -(RecentDays - 1))
	_, err := s.apods.RefreshRange(ctx, start.Format(DateFormat), end.Format(DateFormat))
	return err
}
