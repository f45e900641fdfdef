package repository_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/repository"
	"cosmiccanvas/server/internal/repository/testutil"
)

func TestApodRepository_UpsertAndGet(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewApodRepository(db)
	ctx := context.Background()

	copyright := "Jane Doe"
	err := repo.Upsert(ctx, model.Apod{
		Date:        "2026-08-30",
		Title:       "Crab Nebula",
		Explanation: "A supernova remnant.",
		URL:         "https://example.com/crab.jpg",
		MediaType:   "image",
		Copyright:   &copyright,
	})
	require.NoError(t, err)

	fetched, err := repo.GetByDate(ctx, "2026-08-30")
	require.NoError(t, err)
	require.NotNil(t, fetched)
	require.Equal(t, "Crab Nebula", fetched.Title)
	require.Equal(t, "Jane Doe", *fetched.Copyright)
	require.False(t, fetched.Favorite)
	require.Nil(t, fetched.ThumbnailURL)
}

func TestApodRepository_GetByDate_Missing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewApodRepository(db)

	fetched, err := repo.GetByDate(context.Background(), "1999-01-01")
	require.NoError(t, err)
	require.Nil(t, fetched)
}

func TestApodRepository_Upsert_PreservesFavorite(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewApodRepository(db)
	ctx := context.Background()

	testutil.SeedApod(t, db, model.Apod{Date: "2026-08-30", Title: "Old Title", URL: "u"})
	require.NoError(t, repo.UpdateFavorite(ctx, "2026-08-30", true))

	// A refresh rewrites the content but must not reset the flag.
	err := repo.Upsert(ctx, model.Apod{Date: "2026-08-30", Title: "New Title", URL: "u2", MediaType: "image"})
	require.NoError(t, err)

	fetched, err := repo.GetByDate(ctx, "2026-08-30")
	require.NoError(t, err)
	require.Equal(t, "New Title", fetched.Title)
	require.Equal(t, "u2", fetched.URL)
	require.True(t, fetched.Favorite)
}

func TestApodRepository_UpdateFavorite_Missing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewApodRepository(db)

	err := repo.UpdateFavorite(context.Background(), "1999-01-01", true)
	require.ErrorIs(t, err, sql.ErrNoRows)
}

func TestApodRepository_Listing(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewApodRepository(db)
	ctx := context.Background()

	for _, date := range []string{"2026-08-27", "2026-08-28", "2026-08-29", "2026-08-30"} {
		testutil.SeedApod(t, db, model.Apod{Date: date, Title: "T " + date, URL: "u"})
	}
	require.NoError(t, repo.UpdateFavorite(ctx, "2026-08-28", true))

	recent, err := repo.ListRecent(ctx, 2)
	require.NoError(t, err)
	require.Len(t, recent, 2)
	require.Equal(t, "2026-08-30", recent[0].Date)
	require.Equal(t, "2026-08-29", recent[1].Date)

	between, err := repo.ListBetween(ctx, "2026-08-28", "2026-08-29")
	require.NoError(t, err)
	require.Len(t, between, 2)

	favorites, err := repo.ListFavorites(ctx)
	require.NoError(t, err)
	require.Len(t, favorites, 1)
	require.Equal(t, "2026-08-28", favorites[0].Date)

	count, err := repo.Count(ctx)
	require.NoError(t, err)
	require.Equal(t, 4, count)
}

func TestApodRepository_Search(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repository.NewApodRepository(db)
	ctx := context.Background()

	testutil.SeedApod(t, db, model.Apod{Date: "2026-08-29", Title: "Crab Nebula", Explanation: "remnant", URL: "u"})
	testutil.SeedApod(t, db, model.Apod{Date: "2026-08-30", Title: "Mars Dunes", Explanation: "sand on mars", URL: "u"})

	byTitle, err := repo.Search(ctx, "nebula")
	require.NoError(t, err)
	require.Len(t, byTitle, 1)
	require.Equal(t, "Crab Nebula", byTitle[0].Title)

	byExplanation, err := repo.Search(ctx, "sand")
	require.NoError(t, err)
	require.Len(t, byExplanation, 1)
	require.Equal(t, "Mars Dunes", byExplanation[0].Title)

	none, err := repo.Search(ctx, "comet")
	require.NoError(t, err)
	require.Empty(t, none)
}
