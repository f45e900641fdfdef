// Package testutil provides shared helpers for repository and service
// tests backed by a real sqlite database.
package testutil

import (
	"context"
	"database/sql"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmiccanvas/server/internal/db"
	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/repository"
	"cosmiccanvas/server/internal/snowflake"
)

// NewTestDB opens a migrated sqlite database in a per-test temp dir.
func NewTestDB(t *testing.T) *sql.DB {
	t.Helper()

	require.NoError(t, snowflake.Init(1))

	database, err := db.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { database.Close() })

	return database
}

// SeedApod inserts a picture and returns it as stored.
func SeedApod(t *testing.T, database *sql.DB, apod model.Apod) model.Apod {
	t.Helper()

	if apod.MediaType == "" {
		apod.MediaType = "image"
	}
	repo := repository.NewApodRepository(database)
	require.NoError(t, repo.Upsert(context.Background(), apod))

	stored, err := repo.GetByDate(context.Background(), apod.Date)
	require.NoError(t, err)
	require.NotNil(t, stored)
	return *stored
}

// SeedTranslation inserts a cache entry and returns it with its ID.
func SeedTranslation(t *testing.T, database *sql.DB, tr model.Translation) model.Translation {
	t.Helper()

	repo := repository.NewTranslationRepository(database)
	require.NoError(t, repo.Save(context.Background(), tr))

	stored, err := repo.Get(context.Background(), tr.SourceText, tr.TargetLanguage)
	require.NoError(t, err)
	require.NotNil(t, stored)
	return *stored
}
