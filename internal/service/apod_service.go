package service

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"time"

	"cosmiccanvas/server/internal/logger"
	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/nasa"
	"cosmiccanvas/server/internal/repository"
)

// DateFormat is the date-key format used by the APOD API.
const DateFormat = "2006-01-02"

// RecentDays is the default history window, both for the recent listing
// and for the sync job's offline refresh.
const RecentDays = 7

const maxSampleCount = 100

type ApodService interface {
	// GetByDate serves from the local store, fetching through to the
	// network only when the date is not cached yet. An empty date means
	// today.
	GetByDate(ctx context.Context, date string) (model.Apod, error)
	// Refresh always fetches from the network and upserts locally.
	Refresh(ctx context.Context, date string) (model.Apod, error)
	// RefreshRange fetches an inclusive date range and upserts it.
	RefreshRange(ctx context.Context, startDate, endDate string) ([]model.Apod, error)
	// Sample fetches count randomly chosen pictures and caches them.
	Sample(ctx context.Context, count int) ([]model.Apod, error)

	ListRecent(ctx context.Context, limit int) ([]model.Apod, error)
	ListBetween(ctx context.Context, startDate, endDate string) ([]model.Apod, error)
	ListFavorites(ctx context.Context) ([]model.Apod, error)
	Search(ctx context.Context, keyword string) ([]model.Apod, error)
	ToggleFavorite(ctx context.Context, date string, favorite bool) error
}

type apodService struct {
	repo     repository.ApodRepository
	client   *nasa.Client
	settings SettingsService
}

func NewApodService(repo repository.ApodRepository, client *nasa.Client, settings SettingsService) ApodService {
	return &apodService{repo: repo, client: client, settings: settings}
}

func (s *apodService) GetByDate(ctx context.Context, date string) (model.Apod, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return model.Apod{}, err
	}

	cached, err := s.repo.GetByDate(ctx, date)
	if err != nil {
		return model.Apod{}, err
	}
	if cached != nil {
		return *cached, nil
	}

	return s.Refresh(ctx, date)
}

func (s *apodService) Refresh(ctx context.Context, date string) (model.Apod, error) {
	date, err := normalizeDate(date)
	if err != nil {
		return model.Apod{}, err
	}

	apod, err := s.client.Get(ctx, s.settings.NasaAPIKey(ctx), date)
	if err != nil {
		return model.Apod{}, err
	}

	if err := s.repo.Upsert(ctx, apod); err != nil {
		return model.Apod{}, err
	}

	// Read back so the user-owned favorite flag survives the refresh.
	stored, err := s.repo.GetByDate(ctx, apod.Date)
	if err != nil {
		return model.Apod{}, err
	}
	if stored == nil {
		return apod, nil
	}
	return *stored, nil
}

func (s *apodService) RefreshRange(ctx context.Context, startDate, endDate string) ([]model.Apod, error) {
	startDate, err := normalizeDate(startDate)
	if err != nil {
		return nil, err
	}
	endDate, err = normalizeDate(endDate)
	if err != nil {
		return nil, err
	}
	if startDate > endDate {
		return nil, ErrInvalid
	}

	apods, err := s.client.GetRange(ctx, s.settings.NasaAPIKey(ctx), startDate, endDate)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpsertMany(ctx, apods); err != nil {
		return nil, err
	}

	logger.Info("apod range refreshed",
		"module", "service", "action", "refresh", "resource", "apod", "result", "ok",
		"start_date", startDate, "end_date", endDate, "count", len(apods))

	return s.repo.ListBetween(ctx, startDate, endDate)
}

func (s *apodService) Sample(ctx context.Context, count int) ([]model.Apod, error) {
	if count <= 0 || count > maxSampleCount {
		return nil, ErrInvalid
	}

	apods, err := s.client.GetCount(ctx, s.settings.NasaAPIKey(ctx), count)
	if err != nil {
		return nil, err
	}

	if err := s.repo.UpsertMany(ctx, apods); err != nil {
		return nil, err
	}
	return apods, nil
}

func (s *apodService) ListRecent(ctx context.Context, limit int) ([]model.Apod, error) {
	if limit <= 0 {
		limit = RecentDays
	}
	return s.repo.ListRecent(ctx, limit)
}

func (s *apodService) ListBetween(ctx context.Context, startDate, endDate string) ([]model.Apod, error) {
	startDate, err := normalizeDate(startDate)
	if err != nil {
		return nil, err
	}
	endDate, err = normalizeDate(endDate)
	if err != nil {
		return nil, err
	}
	return s.repo.ListBetween(ctx, startDate, endDate)
}

func (s *apodService) ListFavorites(ctx context.Context) ([]model.Apod, error) {
	return s.repo.ListFavorites(ctx)
}

func (s *apodService) Search(ctx context.Context, keyword string) ([]model.Apod, error) {
	if strings.TrimSpace(keyword) == "" {
		return nil, ErrInvalid
	}
	return s.repo.Search(ctx, keyword)
}

func (s *apodService) ToggleFavorite(ctx context.Context, date string, favorite bool) error {
	date, err := normalizeDate(date)
	if err != nil {
		return err
	}

	if err := s.repo.UpdateFavorite(ctx, date, favorite); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ErrNotFound
		}
		return err
	}
	return nil
}

// normalizeDate validates a YYYY-MM-DD date key; empty means today.
func normalizeDate(date string) (string, error) {
	if date == "" {
		return time.Now().UTC().Format(DateFormat), nil
	}
	if _, err := time.Parse(DateFormat, date); err != nil {
		return "", ErrInvalid
	}
	return date, nil
}
