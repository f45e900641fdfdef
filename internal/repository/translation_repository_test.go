package repository_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/repository"
	"cosmiccanvas/server/internal/repository/testutil"
)

func TestTranslationRepository_SaveAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	now := time.Now().UnixMilli()
	err := repo.Save(ctx, model.Translation{
		SourceText:     "Hello",
		TranslatedText: "Hallo",
		SourceLanguage: "en",
		TargetLanguage: "de",
		CreatedAtMs:    now,
	})
	require.NoError(t, err)

	fetched, err := repo.Get(ctx, "Hello", "de")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.NotZero(t, fetched.ID)
	require.Equal(t, "Hallo", fetched.TranslatedText)
	require.Equal(t, now, fetched.CreatedAtMs)
}

func TestTranslationRepository_Get_Miss(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)

	fetched, err := repo.Get(context.Background(), "Hello", "fr")
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestTranslationRepository_Save_OverwritesSamePair(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	old := testutil.SeedTranslation(t, db, model.Translation{
		SourceText: "Hello", TranslatedText: "Hallo", SourceLanguage: "en", TargetLanguage: "de", CreatedAtMs: 1000,
	})

	err := repo.Save(ctx, model.Translation{
		SourceText: "Hello", TranslatedText: "Hallo Welt", SourceLanguage: "auto", TargetLanguage: "de", CreatedAtMs: 2000,
	})
	require.NoError(t, err)

	fetched, err := repo.Get(ctx, "Hello", "de")
	require.NoError(t, err)
	require.Equal(t, old.ID, fetched.ID)
	require.Equal(t, "Hallo Welt", fetched.TranslatedText)
	require.Equal(t, "auto", fetched.SourceLanguage)
	require.Equal(t, int64(2000), fetched.CreatedAtMs)

	// A different target language is a separate entry.
	err = repo.Save(ctx, model.Translation{
		SourceText: "Hello", TranslatedText: "Bonjour", SourceLanguage: "en", TargetLanguage: "fr", CreatedAtMs: 3000,
	})
	require.NoError(t, err)

	inFrench, err := repo.Get(ctx, "Hello", "fr")
	require.NoError(t, err)
	require.Equal(t, "Bonjour", inFrench.TranslatedText)
}

func TestTranslationRepository_PurgeOlderThan(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	testutil.SeedTranslation(t, db, model.Translation{SourceText: "a", TranslatedText: "A", TargetLanguage: "de", CreatedAtMs: 100})
	testutil.SeedTranslation(t, db, model.Translation{SourceText: "b", TranslatedText: "B", TargetLanguage: "de", CreatedAtMs: 200})
	testutil.SeedTranslation(t, db, model.Translation{SourceText: "c", TranslatedText: "C", TargetLanguage: "de", CreatedAtMs: 300})

	deleted, err := repo.PurgeOlderThan(ctx, 250)
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	kept, err := repo.Get(ctx, "c", "de")
	require.NoError(t, err)
	require.NotNil(t, kept)

	gone, err := repo.Get(ctx, "a", "de")
	require.NoError(t, err)
	require.Nil(t, gone)
}

func TestTranslationRepository_Clear(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewTranslationRepository(db)
	ctx := context.Background()

	testutil.SeedTranslation(t, db, model.Translation{SourceText: "a", TranslatedText: "A", TargetLanguage: "de", CreatedAtMs: 100})
	testutil.SeedTranslation(t, db, model.Translation{SourceText: "b", TranslatedText: "B", TargetLanguage: "fr", CreatedAtMs: 200})

	deleted, err := repo.Clear(ctx)
	require.NoError(t, err)
	require.Equal(t, int64(2), deleted)

	deleted, err = repo.Clear(ctx)
	require.NoError(t, err)
	require.Zero(t, deleted)
}
