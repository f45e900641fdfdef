package service

import (
	"context"
	"strings"
	"time"

	"cosmiccanvas/server/internal/logger"
	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/repository"
	"cosmiccanvas/server/internal/translate"
)

// FreshnessWindow is how long a cached translation is served without
// going back to the network. A stale entry always triggers a fresh
// attempt, and a failed attempt is reported rather than masked by the
// stale value.
const FreshnessWindow = 7 * 24 * time.Hour

// ProviderFactory builds a translation provider from settings-derived
// config. Overridden in tests.
type ProviderFactory func(cfg translate.Config) (translate.Provider, error)

type TranslationService interface {
	TranslateOne(ctx context.Context, sourceText, targetLang, sourceLang string) (model.Translation, error)
	TranslateMany(ctx context.Context, sourceTexts []string, targetLang, sourceLang string) ([]model.Translation, error)
	PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error)
	ClearCache(ctx context.Context) (int64, error)
}

type translationService struct {
	cache       repository.TranslationRepository
	settings    SettingsService
	newProvider ProviderFactory
}

// NewTranslationService creates a translation service. A nil factory
// uses the real providers.
func NewTranslationService(cache repository.TranslationRepository, settings SettingsService, factory ProviderFactory) TranslationService {
	if factory == nil {
		factory = translate.NewProvider
	}
	return &translationService{
		cache:       cache,
		settings:    settings,
		newProvider: factory,
	}
}

func (s *translationService) TranslateOne(ctx context.Context, sourceText, targetLang, sourceLang string) (model.Translation, error) {
	if strings.TrimSpace(sourceText) == "" || targetLang == "" {
		return model.Translation{}, ErrInvalid
	}

	cached, err := s.cache.Get(ctx, sourceText, targetLang)
	if err != nil {
		return model.Translation{}, err
	}
	if cached != nil && s.fresh(*cached) {
		return *cached, nil
	}

	provider, err := s.newProvider(s.settings.TranslateConfig(ctx))
	if err != nil {
		return model.Translation{}, err
	}

	t, err := provider.Translate(ctx, sourceText, targetLang, sourceLang)
	if err != nil {
		return model.Translation{}, err
	}

	// Write-through: persist before returning.
	if err := s.cache.Save(ctx, t); err != nil {
		return model.Translation{}, err
	}
	s.recordLanguage(ctx, targetLang)

	return t, nil
}

// TranslateMany translates a list, serving fresh cache hits without any
// network call and batching exactly the misses. The returned order is
// cache hits first, then fresh results in input order -- callers must
// not assume it matches the input order.
func (s *translationService) TranslateMany(ctx context.Context, sourceTexts []string, targetLang, sourceLang string) ([]model.Translation, error) {
	if targetLang == "" {
		return nil, ErrInvalid
	}
	if len(sourceTexts) == 0 {
		return []model.Translation{}, nil
	}
	for _, text := range sourceTexts {
		if strings.TrimSpace(text) == "" {
			return nil, ErrInvalid
		}
	}

	hits := make(map[string]model.Translation)
	seen := make(map[string]bool)
	var misses []string

	for _, text := range sourceTexts {
		if seen[text] {
			continue
		}
		seen[text] = true
		cached, err := s.cache.Get(ctx, text, targetLang)
		if err != nil {
			return nil, err
		}
		if cached != nil && s.fresh(*cached) {
			hits[text] = *cached
		} else {
			misses = append(misses, text)
		}
	}

	results := make([]model.Translation, 0, len(hits)+len(misses))
	for _, t := range hits {
		results = append(results, t)
	}

	if len(misses) == 0 {
		return results, nil
	}

	provider, err := s.newProvider(s.settings.TranslateConfig(ctx))
	if err != nil {
		return nil, err
	}

	fresh, err := provider.TranslateBatch(ctx, misses, targetLang, sourceLang)
	if err != nil {
		// Discard the partial work; the caller retries the whole list.
		return nil, err
	}

	if err := s.cache.SaveMany(ctx, fresh); err != nil {
		return nil, err
	}
	s.recordLanguage(ctx, targetLang)

	return append(results, fresh...), nil
}

func (s *translationService) PurgeOlderThan(ctx context.Context, age time.Duration) (int64, error) {
	if age <= 0 {
		return 0, ErrInvalid
	}
	cutoff := time.Now().Add(-age).UnixMilli()
	deleted, err := s.cache.PurgeOlderThan(ctx, cutoff)
	if err != nil {
		return 0, err
	}
	logger.Info("translation cache purged",
		"module", "service", "action", "purge", "resource", "translation", "result", "ok", "deleted", deleted)
	return deleted, nil
}

func (s *translationService) ClearCache(ctx context.Context) (int64, error) {
	deleted, err := s.cache.Clear(ctx)
	if err != nil {
		return 0, err
	}
	logger.Info("translation cache cleared",
		"module", "service", "action", "clear", "resource", "translation", "result", "ok", "deleted", deleted)
	return deleted, nil
}

func (s *translationService) fresh(t model.Translation) bool {
	age := time.Now().UnixMilli() - t.CreatedAtMs
	return age < FreshnessWindow.Milliseconds()
}

func (s *translationService) recordLanguage(ctx context.Context, lang string) {
	if err := s.settings.RecordRecentLanguage(ctx, lang); err != nil {
		logger.Warn("record recent language failed",
			"module", "service", "action", "update", "resource", "settings", "result", "failed", "error", err)
	}
}
