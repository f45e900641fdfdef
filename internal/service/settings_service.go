package service

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"cosmiccanvas/server/internal/config"
	"cosmiccanvas/server/internal/logger"
	"cosmiccanvas/server/internal/repository"
	"cosmiccanvas/server/internal/translate"
)

// UserSettings is the user-facing preference snapshot. API keys are
// masked on read; an empty or masked key on write keeps the stored one.
type UserSettings struct {
	NotificationsEnabled    bool     `json:"notificationsEnabled"`
	WatchedKeywords         []string `json:"watchedKeywords"`
	NasaAPIKey              string   `json:"nasaApiKey"`
	TranslateProvider       string   `json:"translateProvider"`
	TranslateAPIKey         string   `json:"translateApiKey"`
	TranslateModel          string   `json:"translateModel"`
	AppLanguage             string   `json:"appLanguage"`
	DarkTheme               bool     `json:"darkTheme"`
	ScreenSaverDelaySeconds int      `json:"screenSaverDelaySeconds"`
	RecentLanguages         []string `json:"recentLanguages"`
	ProxyURL                string   `json:"proxyUrl"`
}

// Setting keys
const (
	keyNotificationsEnabled = "notifications.enabled"
	keyWatchedKeywords      = "notifications.keywords"
	keyNasaAPIKey           = "nasa.api_key"
	keyTranslateProvider    = "translate.provider"
	keyTranslateAPIKey      = "translate.api_key"
	keyTranslateModel       = "translate.model"
	keyAppLanguage          = "app.language"
	keyDarkTheme            = "app.dark_theme"
	keyScreenSaverDelay     = "app.screensaver_delay_seconds"
	keyRecentLanguages      = "app.recent_languages"
	keyProxyURL             = "network.proxy_url"
	keySyncLastRun          = "sync.last_run"
)

// DefaultScreenSaverDelaySeconds is used when the user never set one.
const DefaultScreenSaverDelaySeconds = 180

const maxRecentLanguages = 5

// SettingsService provides preference management. Long-lived components
// can Subscribe to observe updates instead of polling.
type SettingsService interface {
	GetSettings(ctx context.Context) (*UserSettings, error)
	UpdateSettings(ctx context.Context, settings *UserSettings) error
	AddKeyword(ctx context.Context, keyword string) error
	RemoveKeyword(ctx context.Context, keyword string) error

	// Typed accessors used by other services. They fall back to
	// defaults on missing keys and never fail the caller's operation.
	NotificationsEnabled(ctx context.Context) bool
	WatchedKeywords(ctx context.Context) []string
	NasaAPIKey(ctx context.Context) string
	TranslateConfig(ctx context.Context) translate.Config
	AppLanguage(ctx context.Context) string
	RecordRecentLanguage(ctx context.Context, lang string) error
	GetProxyURL(ctx context.Context) string

	LastSyncRun(ctx context.Context) (time.Time, bool)
	SetLastSyncRun(ctx context.Context, t time.Time) error

	// Subscribe returns a channel receiving a snapshot after every
	// update, and a cancel function the subscriber must call on
	// teardown. Slow subscribers miss intermediate snapshots.
	Subscribe() (<-chan UserSettings, func())
}

type settingsService struct {
	repo       repository.SettingsRepository
	defaultKey string

	mu   sync.Mutex
	subs map[int]chan UserSettings
	next int
}

// NewSettingsService creates a new settings service. defaultNasaKey is
// used whenever the user has not stored an override.
func NewSettingsService(repo repository.SettingsRepository, defaultNasaKey string) SettingsService {
	if defaultNasaKey == "" {
		defaultNasaKey = config.DefaultNasaAPIKey
	}
	return &settingsService{
		repo:       repo,
		defaultKey: defaultNasaKey,
		subs:       make(map[int]chan UserSettings),
	}
}

func (s *settingsService) GetSettings(ctx context.Context) (*UserSettings, error) {
	settings := &UserSettings{
		NotificationsEnabled:    s.NotificationsEnabled(ctx),
		WatchedKeywords:         s.WatchedKeywords(ctx),
		TranslateProvider:       translate.ProviderSimple,
		AppLanguage:             s.AppLanguage(ctx),
		ScreenSaverDelaySeconds: DefaultScreenSaverDelaySeconds,
	}

	if val, err := s.getString(ctx, keyNasaAPIKey); err == nil && val != "" {
		settings.NasaAPIKey = maskAPIKey(val)
	}
	if val, err := s.getString(ctx, keyTranslateProvider); err == nil && val != "" {
		settings.TranslateProvider = val
	}
	if val, err := s.getString(ctx, keyTranslateAPIKey); err == nil && val != "" {
		settings.TranslateAPIKey = maskAPIKey(val)
	}
	if val, err := s.getString(ctx, keyTranslateModel); err == nil {
		settings.TranslateModel = val
	}
	if val, err := s.getString(ctx, keyDarkTheme); err == nil && val == "true" {
		settings.DarkTheme = true
	}
	if val, err := s.getInt(ctx, keyScreenSaverDelay); err == nil && val > 0 {
		settings.ScreenSaverDelaySeconds = val
	}
	if val, err := s.getString(ctx, keyRecentLanguages); err == nil && val != "" {
		settings.RecentLanguages = splitList(val)
	}
	if val, err := s.getString(ctx, keyProxyURL); err == nil {
		settings.ProxyURL = val
	}

	return settings, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, settings *UserSettings) error {
	if err := s.setBool(ctx, keyNotificationsEnabled, settings.NotificationsEnabled); err != nil {
		return fmt.Errorf("set notifications enabled: %w", err)
	}
	if err := s.repo.Set(ctx, keyWatchedKeywords, joinList(settings.WatchedKeywords)); err != nil {
		return fmt.Errorf("set watched keywords: %w", err)
	}
	if err := s.setAPIKey(ctx, keyNasaAPIKey, settings.NasaAPIKey); err != nil {
		return fmt.Errorf("set nasa api key: %w", err)
	}
	if settings.TranslateProvider != "" {
		if err := s.repo.Set(ctx, keyTranslateProvider, settings.TranslateProvider); err != nil {
			return fmt.Errorf("set translate provider: %w", err)
		}
	}
	if err := s.setAPIKey(ctx, keyTranslateAPIKey, settings.TranslateAPIKey); err != nil {
		return fmt.Errorf("set translate api key: %w", err)
	}
	if err := s.repo.Set(ctx, keyTranslateModel, settings.TranslateModel); err != nil {
		return fmt.Errorf("set translate model: %w", err)
	}
	if settings.AppLanguage != "" {
		if err := s.repo.Set(ctx, keyAppLanguage, settings.AppLanguage); err != nil {
			return fmt.Errorf("set app language: %w", err)
		}
	}
	if err := s.setBool(ctx, keyDarkTheme, settings.DarkTheme); err != nil {
		return fmt.Errorf("set dark theme: %w", err)
	}
	if settings.ScreenSaverDelaySeconds > 0 {
		if err := s.repo.Set(ctx, keyScreenSaverDelay, strconv.Itoa(settings.ScreenSaverDelaySeconds)); err != nil {
			return fmt.Errorf("set screen saver delay: %w", err)
		}
	}
	if err := s.repo.Set(ctx, keyProxyURL, settings.ProxyURL); err != nil {
		return fmt.Errorf("set proxy url: %w", err)
	}

	s.publish(ctx)
	return nil
}

func (s *settingsService) AddKeyword(ctx context.Context, keyword string) error {
	keyword = strings.TrimSpace(keyword)
	if keyword == "" {
		return ErrInvalid
	}

	keywords := s.WatchedKeywords(ctx)
	for _, k := range keywords {
		if strings.EqualFold(k, keyword) {
			return nil
		}
	}
	keywords = append(keywords, keyword)

	if err := s.repo.Set(ctx, keyWatchedKeywords, joinList(keywords)); err != nil {
		return err
	}
	s.publish(ctx)
	return nil
}

func (s *settingsService) RemoveKeyword(ctx context.Context, keyword string) error {
	keyword = strings.TrimSpace(keyword)
	keywords := s.WatchedKeywords(ctx)

	kept := keywords[:0]
	for _, k := range keywords {
		if !strings.EqualFold(k, keyword) {
			kept = append(kept, k)
		}
	}
	if len(kept) == len(keywords) {
		return ErrNotFound
	}

	if err := s.repo.Set(ctx, keyWatchedKeywords, joinList(kept)); err != nil {
		return err
	}
	s.publish(ctx)
	return nil
}

func (s *settingsService) NotificationsEnabled(ctx context.Context) bool {
	val, err := s.getString(ctx, keyNotificationsEnabled)
	if err != nil || val == "" {
		return true // enabled unless explicitly turned off
	}
	return val == "true"
}

func (s *settingsService) WatchedKeywords(ctx context.Context) []string {
	val, err := s.getString(ctx, keyWatchedKeywords)
	if err != nil || val == "" {
		return nil
	}
	return splitList(val)
}

func (s *settingsService) NasaAPIKey(ctx context.Context) string {
	val, err := s.getString(ctx, keyNasaAPIKey)
	if err != nil || val == "" {
		return s.defaultKey
	}
	return val
}

func (s *settingsService) TranslateConfig(ctx context.Context) translate.Config {
	cfg := translate.Config{Provider: translate.ProviderSimple}
	if val, err := s.getString(ctx, keyTranslateProvider); err == nil && val != "" {
		cfg.Provider = val
	}
	if val, err := s.getString(ctx, keyTranslateAPIKey); err == nil {
		cfg.APIKey = val
	}
	if val, err := s.getString(ctx, keyTranslateModel); err == nil {
		cfg.Model = val
	}
	return cfg
}

func (s *settingsService) AppLanguage(ctx context.Context) string {
	val, err := s.getString(ctx, keyAppLanguage)
	if err != nil || val == "" {
		return "en"
	}
	return val
}

func (s *settingsService) RecordRecentLanguage(ctx context.Context, lang string) error {
	lang = strings.TrimSpace(lang)
	if lang == "" {
		return ErrInvalid
	}

	recent := []string{lang}
	if val, err := s.getString(ctx, keyRecentLanguages); err == nil && val != "" {
		for _, l := range splitList(val) {
			if !strings.EqualFold(l, lang) && len(recent) < maxRecentLanguages {
				recent = append(recent, l)
			}
		}
	}
	return s.repo.Set(ctx, keyRecentLanguages, joinList(recent))
}

func (s *settingsService) GetProxyURL(ctx context.Context) string {
	val, _ := s.getString(ctx, keyProxyURL)
	return val
}

func (s *settingsService) LastSyncRun(ctx context.Context) (time.Time, bool) {
	val, err := s.getString(ctx, keySyncLastRun)
	if err != nil || val == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(time.RFC3339, val)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

func (s *settingsService) SetLastSyncRun(ctx context.Context, t time.Time) error {
	return s.repo.Set(ctx, keySyncLastRun, t.UTC().Format(time.RFC3339))
}

func (s *settingsService) Subscribe() (<-chan UserSettings, func()) {
	ch := make(chan UserSettings, 1)

	s.mu.Lock()
	id := s.next
	s.next++
	s.subs[id] = ch
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subs[id]; ok {
			delete(s.subs, id)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

// publish pushes the current snapshot to every subscriber. A subscriber
// that has not drained its previous snapshot gets it replaced: only the
// latest value matters.
func (s *settingsService) publish(ctx context.Context) {
	snapshot, err := s.GetSettings(ctx)
	if err != nil {
		logger.Warn("settings snapshot failed", "module", "service", "action", "publish", "resource", "settings", "result", "failed", "error", err)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	for _, ch := range s.subs {
		select {
		case ch <- *snapshot:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- *snapshot
		}
	}
}

func (s *settingsService) getString(ctx context.Context, key string) (string, error) {
	setting, err := s.repo.Get(ctx, key)
	if err != nil {
		return "", err
	}
	if setting == nil {
		return "", nil
	}
	return setting.Value, nil
}

func (s *settingsService) getInt(ctx context.Context, key string) (int, error) {
	val, err := s.getString(ctx, key)
	if err != nil || val == "" {
		return 0, err
	}
	return strconv.Atoi(val)
}

func (s *settingsService) setBool(ctx context.Context, key string, value bool) error {
	val := "false"
	if value {
		val = "true"
	}
	return s.repo.Set(ctx, key, val)
}

// setAPIKey sets an API key. An empty value or a masked readback keeps
// the existing key.
func (s *settingsService) setAPIKey(ctx context.Context, key, value string) error {
	if value == "" || isMaskedKey(value) {
		return nil
	}
	return s.repo.Set(ctx, key, value)
}

// maskAPIKey returns a masked version of the API key for display.
func maskAPIKey(apiKey string) string {
	if apiKey == "" {
		return ""
	}
	if len(apiKey) <= 8 {
		return "***"
	}
	prefixEnd := 0
	for i, c := range apiKey {
		if c == '-' {
			prefixEnd = i + 1
			break
		}
		if i >= 4 {
			break
		}
	}
	prefix := apiKey[:prefixEnd]
	suffix := apiKey[len(apiKey)-3:]
	return prefix + "***" + suffix
}

// isMaskedKey checks if a string looks like a masked API key.
func isMaskedKey(key string) bool {
	if len(key) == 0 || len(key) >= 20 {
		return false
	}
	return strings.Contains(key, "***")
}

func splitList(val string) []string {
	var out []string
	for _, part := range strings.Split(val, ",") {
		if trimmed := strings.TrimSpace(part); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

func joinList(items []string) string {
	return strings.Join(items, ",")
}
