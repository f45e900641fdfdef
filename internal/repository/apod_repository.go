package repository

import (
	"context"
	"database/sql"
	"time"

	"cosmiccanvas/server/internal/model"
)

type ApodRepository interface {
	GetByDate(ctx context.Context, date string) (*model.Apod, error)
	ListRecent(ctx context.Context, limit int) ([]model.Apod, error)
	ListBetween(ctx context.Context, startDate, endDate string) ([]model.Apod, error)
	ListFavorites(ctx context.Context) ([]model.Apod, error)
	Search(ctx context.Context, keyword string) ([]model.Apod, error)
	Upsert(ctx context.Context, apod model.Apod) error
	UpsertMany(ctx context.Context, apods []model.Apod) error
	UpdateFavorite(ctx context.Context, date string, favorite bool) error
	Count(ctx context.Context) (int, error)
}

type apodRepository struct {
	db dbtx
}

func NewApodRepository(db dbtx) ApodRepository {
	return &apodRepository{db: db}
}

const apodColumns = `date, title, explanation, url, media_type, thumbnail_url, copyright, hd_url, favorite, created_at, updated_at`

func (r *apodRepository) GetByDate(ctx context.Context, date string) (*model.Apod, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT `+apodColumns+` FROM apods WHERE date = ?`,
		date,
	)
	apod, err := scanApod(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &apod, nil
}

func (r *apodRepository) ListRecent(ctx context.Context, limit int) ([]model.Apod, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+apodColumns+` FROM apods ORDER BY date DESC LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, err
	}
	return collectApods(rows)
}

func (r *apodRepository) ListBetween(ctx context.Context, startDate, endDate string) ([]model.Apod, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+apodColumns+` FROM apods WHERE date BETWEEN ? AND ? ORDER BY date DESC`,
		startDate, endDate,
	)
	if err != nil {
		return nil, err
	}
	return collectApods(rows)
}

func (r *apodRepository) ListFavorites(ctx context.Context) ([]model.Apod, error) {
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+apodColumns+` FROM apods WHERE favorite = 1 ORDER BY date DESC`,
	)
	if err != nil {
		return nil, err
	}
	return collectApods(rows)
}

func (r *apodRepository) Search(ctx context.Context, keyword string) ([]model.Apod, error) {
	pattern := "%" + keyword + "%"
	rows, err := r.db.QueryContext(
		ctx,
		`SELECT `+apodColumns+` FROM apods
		 WHERE title LIKE ? OR explanation LIKE ?
		 ORDER BY date DESC`,
		pattern, pattern,
	)
	if err != nil {
		return nil, err
	}
	return collectApods(rows)
}

// Upsert inserts or replaces the record for apod.Date. The favorite
// flag is user-owned state and deliberately excluded from the update
// set, so a refresh never resets it.
func (r *apodRepository) Upsert(ctx context.Context, apod model.Apod) error {
	now := formatTime(time.Now())

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO apods (date, title, explanation, url, media_type, thumbnail_url, copyright, hd_url, favorite, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, 0, ?, ?)
		 ON CONFLICT(date) DO UPDATE SET
		   title = excluded.title,
		   explanation = excluded.explanation,
		   url = excluded.url,
		   media_type = excluded.media_type,
		   thumbnail_url = excluded.thumbnail_url,
		   copyright = excluded.copyright,
		   hd_url = excluded.hd_url,
		   updated_at = excluded.updated_at`,
		apod.Date, apod.Title, apod.Explanation, apod.URL, apod.MediaType,
		apod.ThumbnailURL, apod.Copyright, apod.HDURL, now, now,
	)
	return err
}

func (r *apodRepository) UpsertMany(ctx context.Context, apods []model.Apod) error {
	for _, apod := range apods {
		if err := r.Upsert(ctx, apod); err != nil {
			return err
		}
	}
	return nil
}

func (r *apodRepository) UpdateFavorite(ctx context.Context, date string, favorite bool) error {
	favoriteInt := 0
	if favorite {
		favoriteInt = 1
	}

	result, err := r.db.ExecContext(
		ctx,
		`UPDATE apods SET favorite = ?, updated_at = ? WHERE date = ?`,
		favoriteInt, formatTime(time.Now()), date,
	)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return sql.ErrNoRows
	}
	return nil
}

func (r *apodRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM apods`).Scan(&count)
	return count, err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanApod(row rowScanner) (model.Apod, error) {
	var a model.Apod
	var favorite int
	var createdAt, updatedAt string

	err := row.Scan(
		&a.Date, &a.Title, &a.Explanation, &a.URL, &a.MediaType,
		&a.ThumbnailURL, &a.Copyright, &a.HDURL, &favorite,
		&createdAt, &updatedAt,
	)
	if err != nil {
		return model.Apod{}, err
	}

	a.Favorite = favorite == 1
	a.CreatedAt, _ = parseTime(createdAt)
	a.UpdatedAt, _ = parseTime(updatedAt)

	return a, nil
}

func collectApods(rows *sql.Rows) ([]model.Apod, error) {
	defer rows.Close()

	var apods []model.Apod
	for rows.Next() {
		apod, err := scanApod(rows)
		if err != nil {
			return nil, err
		}
		apods = append(apods, apod)
	}
	return apods, rows.Err()
}
