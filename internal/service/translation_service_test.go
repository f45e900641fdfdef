package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/repository"
	"cosmiccanvas/server/internal/repository/testutil"
	"cosmiccanvas/server/internal/service"
	"cosmiccanvas/server/internal/translate"
)

// fakeProvider translates by prefixing the source text. Call counts let
// tests assert which texts actually went to the network.
type fakeProvider struct {
	singleCalls []string
	batchCalls  [][]string
	err         error
}

func (f *fakeProvider) Translate(ctx context.Context, text, targetLang, sourceLang string) (model.Translation, error) {
	f.singleCalls = append(f.singleCalls, text)
	if f.err != nil {
		return model.Translation{}, f.err
	}
	return f.result(text, targetLang, sourceLang), nil
}

func (f *fakeProvider) TranslateBatch(ctx context.Context, texts []string, targetLang, sourceLang string) ([]model.Translation, error) {
	f.batchCalls = append(f.batchCalls, texts)
	if f.err != nil {
		return nil, f.err
	}
	results := make([]model.Translation, 0, len(texts))
	for _, text := range texts {
		results = append(results, f.result(text, targetLang, sourceLang))
	}
	return results, nil
}

func (f *fakeProvider) Name() string { return "fake" }

func (f *fakeProvider) result(text, targetLang, sourceLang string) model.Translation {
	if sourceLang == "" {
		sourceLang = translate.SourceAuto
	}
	return model.Translation{
		SourceText:     text,
		TranslatedText: "translated:" + text,
		SourceLanguage: sourceLang,
		TargetLanguage: targetLang,
		CreatedAtMs:    time.Now().UnixMilli(),
	}
}

func newTranslationFixture(t *testing.T) (service.TranslationService, repository.TranslationRepository, *fakeProvider) {
	db := testutil.NewTestDB(t)
	cache := repository.NewTranslationRepository(db)
	settings := service.NewSettingsService(repository.NewSettingsRepository(db), "")

	provider := &fakeProvider{}
	factory := func(cfg translate.Config) (translate.Provider, error) { return provider, nil }

	return service.NewTranslationService(cache, settings, factory), cache, provider
}

func TestTranslationService_TranslateOne_CacheMiss(t *testing.T) {
	svc, cache, provider := newTranslationFixture(t)
	ctx := context.Background()

	result, err := svc.TranslateOne(ctx, "Hello", "de", "")
	require.NoError(t, err)
	require.Equal(t, "translated:Hello", result.TranslatedText)
	require.Equal(t, []string{"Hello"}, provider.singleCalls)

	// Write-through: the result is now cached.
	cached, err := cache.Get(ctx, "Hello", "de")
	require.NoError(t, err)
	require.NotNil(t, cached)
	require.Equal(t, "translated:Hello", cached.TranslatedText)
}

func TestTranslationService_TranslateOne_FreshHitSkipsNetwork(t *testing.T) {
	svc, cache, provider := newTranslationFixture(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, model.Translation{
		SourceText:     "Hello",
		TranslatedText: "Hallo",
		SourceLanguage: "en",
		TargetLanguage: "de",
		CreatedAtMs:    time.Now().UnixMilli(),
	}))

	result, err := svc.TranslateOne(ctx, "Hello", "de", "")
	require.NoError(t, err)
	require.Equal(t, "Hallo", result.TranslatedText)
	require.Empty(t, provider.singleCalls)
}

func TestTranslationService_TranslateOne_StaleEntryRefetched(t *testing.T) {
	svc, cache, provider := newTranslationFixture(t)
	ctx := context.Background()

	stale := time.Now().Add(-service.FreshnessWindow - time.Hour).UnixMilli()
	require.NoError(t, cache.Save(ctx, model.Translation{
		SourceText:     "Hello",
		TranslatedText: "Hallo (alt)",
		SourceLanguage: "en",
		TargetLanguage: "de",
		CreatedAtMs:    stale,
	}))

	result, err := svc.TranslateOne(ctx, "Hello", "de", "")
	require.NoError(t, err)
	require.Equal(t, "translated:Hello", result.TranslatedText)
	require.Equal(t, []string{"Hello"}, provider.singleCalls)

	// The stale row was overwritten in place.
	cached, err := cache.Get(ctx, "Hello", "de")
	require.NoError(t, err)
	require.Equal(t, "translated:Hello", cached.TranslatedText)
	require.Greater(t, cached.CreatedAtMs, stale)
}

func TestTranslationService_TranslateOne_Invalid(t *testing.T) {
	svc, _, _ := newTranslationFixture(t)

	_, err := svc.TranslateOne(context.Background(), "   ", "de", "")
	require.ErrorIs(t, err, service.ErrInvalid)

	_, err = svc.TranslateOne(context.Background(), "Hello", "", "")
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestTranslationService_TranslateMany_BatchesOnlyMisses(t *testing.T) {
	svc, cache, provider := newTranslationFixture(t)
	ctx := context.Background()

	now := time.Now().UnixMilli()
	require.NoError(t, cache.Save(ctx, model.Translation{SourceText: "one", TranslatedText: "eins", TargetLanguage: "de", SourceLanguage: "en", CreatedAtMs: now}))
	require.NoError(t, cache.Save(ctx, model.Translation{SourceText: "two", TranslatedText: "zwei", TargetLanguage: "de", SourceLanguage: "en", CreatedAtMs: now}))

	results, err := svc.TranslateMany(ctx, []string{"one", "two", "three"}, "de", "")
	require.NoError(t, err)
	require.Len(t, results, 3)

	// Exactly one network batch, holding only the miss.
	require.Equal(t, [][]string{{"three"}}, provider.batchCalls)
	require.Empty(t, provider.singleCalls)

	byText := make(map[string]string)
	for _, r := range results {
		byText[r.SourceText] = r.TranslatedText
	}
	require.Equal(t, "eins", byText["one"])
	require.Equal(t, "zwei", byText["two"])
	require.Equal(t, "translated:three", byText["three"])

	// The miss is cached for next time.
	cached, err := cache.Get(ctx, "three", "de")
	require.NoError(t, err)
	require.NotNil(t, cached)
}

func TestTranslationService_TranslateMany_AllHitsNoNetwork(t *testing.T) {
	svc, cache, provider := newTranslationFixture(t)
	ctx := context.Background()

	now := time.Now().UnixMilli()
	require.NoError(t, cache.Save(ctx, model.Translation{SourceText: "one", TranslatedText: "eins", TargetLanguage: "de", SourceLanguage: "en", CreatedAtMs: now}))

	results, err := svc.TranslateMany(ctx, []string{"one", "one"}, "de", "")
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.Empty(t, provider.batchCalls)
}

func TestTranslationService_TranslateMany_FailureDiscardsBatch(t *testing.T) {
	svc, cache, provider := newTranslationFixture(t)
	ctx := context.Background()

	provider.err = errors.New("endpoint unavailable")

	results, err := svc.TranslateMany(ctx, []string{"one", "two"}, "de", "")
	require.Error(t, err)
	require.Nil(t, results)

	// Nothing was persisted.
	cached, err := cache.Get(ctx, "one", "de")
	require.NoError(t, err)
	require.Nil(t, cached)
}

func TestTranslationService_PurgeOlderThan(t *testing.T) {
	svc, cache, _ := newTranslationFixture(t)
	ctx := context.Background()

	old := time.Now().Add(-10 * 24 * time.Hour).UnixMilli()
	require.NoError(t, cache.Save(ctx, model.Translation{SourceText: "old", TranslatedText: "alt", TargetLanguage: "de", SourceLanguage: "en", CreatedAtMs: old}))
	require.NoError(t, cache.Save(ctx, model.Translation{SourceText: "new", TranslatedText: "neu", TargetLanguage: "de", SourceLanguage: "en", CreatedAtMs: time.Now().UnixMilli()}))

	deleted, err := svc.PurgeOlderThan(ctx, service.FreshnessWindow)
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)

	_, err = svc.PurgeOlderThan(ctx, 0)
	require.ErrorIs(t, err, service.ErrInvalid)
}

func TestTranslationService_ClearCache(t *testing.T) {
	svc, cache, _ := newTranslationFixture(t)
	ctx := context.Background()

	require.NoError(t, cache.Save(ctx, model.Translation{SourceText: "a", TranslatedText: "A", TargetLanguage: "de", SourceLanguage: "en", CreatedAtMs: 1}))

	deleted, err := svc.ClearCache(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(1), deleted)
}
