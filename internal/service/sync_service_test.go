package service_test

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/nasa"
	"cosmiccanvas/server/internal/repository"
	"cosmiccanvas/server/internal/repository/testutil"
	"cosmiccanvas/server/internal/service"
)

type syncFixture struct {
	svc           service.SyncService
	db            *sql.DB
	settings      service.SettingsService
	notifications repository.NotificationRepository
	translations  repository.TranslationRepository
}

// newSyncFixture wires a sync service against a stub endpoint whose
// pictures are all titled "Crab Nebula".
func newSyncFixture(t *testing.T) syncFixture {
	db := testutil.NewTestDB(t)
	apodRepo := repository.NewApodRepository(db)
	translationRepo := repository.NewTranslationRepository(db)
	notificationRepo := repository.NewNotificationRepository(db)
	settings := service.NewSettingsService(repository.NewSettingsRepository(db), "")

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		if start := q.Get("start_date"); start != "" {
			fmt.Fprintf(w, `[
				{"date":%q,"title":"Crab Nebula","explanation":"A supernova remnant.","url":"u","media_type":"image"},
				{"date":%q,"title":"Crab Nebula","explanation":"A supernova remnant.","url":"u","media_type":"image"}
			]`, start, q.Get("end_date"))
			return
		}
		date := q.Get("date")
		if date == "" {
			date = time.Now().UTC().Format("2006-01-02")
		}
		fmt.Fprintf(w, `{"date":%q,"title":"Crab Nebula","explanation":"A supernova remnant.","url":"u","media_type":"image"}`, date)
	}))
	t.Cleanup(server.Close)

	client := nasa.NewClient(nil, server.URL, nil)
	apodService := service.NewApodService(apodRepo, client, settings)

	return syncFixture{
		svc:           service.NewSyncService(apodService, settings, notificationRepo),
		db:            db,
		settings:      settings,
		notifications: notificationRepo,
		translations:  translationRepo,
	}
}

func TestSyncService_RunOnce(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.RunOnce(ctx))

	notifications, err := f.notifications.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, model.NotificationNewApod, notifications[0].Kind)
	require.Equal(t, "Crab Nebula", notifications[0].Title)

	lastRun, ok := f.settings.LastSyncRun(ctx)
	require.True(t, ok)
	require.WithinDuration(t, time.Now(), lastRun, time.Minute)
}

func TestSyncService_RunOnce_NotifiesEveryRun(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	require.NoError(t, f.svc.RunOnce(ctx))
	require.NoError(t, f.svc.RunOnce(ctx))

	// Each enabled run announces the day's picture; the scheduler,
	// not the job, decides how often runs happen.
	notifications, err := f.notifications.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 2)
}

func TestSyncService_RunOnce_NotifiesEvenWhenAlreadyCached(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	// A user browsing today's picture before the scheduled run must
	// not suppress its notification.
	today := time.Now().UTC().Format("2006-01-02")
	testutil.SeedApod(t, f.db, model.Apod{Date: today, Title: "Crab Nebula", Explanation: "A supernova remnant.", URL: "u"})

	require.NoError(t, f.svc.RunOnce(ctx))

	notifications, err := f.notifications.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 1)
	require.Equal(t, model.NotificationNewApod, notifications[0].Kind)
}

func TestSyncService_RunOnce_KeywordFirstMatchWins(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	// Both keywords appear in "Crab Nebula"; only the first listed fires.
	require.NoError(t, f.settings.AddKeyword(ctx, "crab"))
	require.NoError(t, f.settings.AddKeyword(ctx, "nebula"))

	require.NoError(t, f.svc.RunOnce(ctx))

	notifications, err := f.notifications.List(ctx, 10)
	require.NoError(t, err)
	require.Len(t, notifications, 2)

	var keywordMatches []model.Notification
	for _, n := range notifications {
		if n.Kind == model.NotificationKeywordMatch {
			keywordMatches = append(keywordMatches, n)
		}
	}
	require.Len(t, keywordMatches, 1)
	require.Equal(t, "crab", *keywordMatches[0].Keyword)
}

func TestSyncService_RunOnce_NotificationsDisabled(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	require.NoError(t, f.settings.UpdateSettings(ctx, &service.UserSettings{
		NotificationsEnabled: false,
	}))
	require.NoError(t, f.settings.AddKeyword(ctx, "nebula"))

	require.NoError(t, f.svc.RunOnce(ctx))

	notifications, err := f.notifications.List(ctx, 10)
	require.NoError(t, err)
	require.Empty(t, notifications)
}

func TestSyncService_RunOnce_LeavesTranslationCacheAlone(t *testing.T) {
	f := newSyncFixture(t)
	ctx := context.Background()

	// Purging stale entries is a caller decision, never part of a sync.
	stale := time.Now().Add(-8 * 24 * time.Hour).UnixMilli()
	require.NoError(t, f.translations.Save(ctx, model.Translation{
		SourceText: "old", TranslatedText: "alt", SourceLanguage: "en", TargetLanguage: "de", CreatedAtMs: stale,
	}))

	require.NoError(t, f.svc.RunOnce(ctx))

	kept, err := f.translations.Get(ctx, "old", "de")
	require.NoError(t, err)
	require.NotNil(t, kept)
}
