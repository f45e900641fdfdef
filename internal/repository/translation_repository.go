package repository

import (
	"context"
	"database/sql"

	"cosmiccanvas/server/internal/model"
	"cosmiccanvas/server/internal/snowflake"
)

// TranslationRepository is the persistent translation cache. Freshness
// is the caller's concern: Get returns whatever is stored regardless of
// age, and nothing here schedules PurgeOlderThan.
type TranslationRepository interface {
	Get(ctx context.Context, sourceText, targetLanguage string) (*model.Translation, error)
	Save(ctx context.Context, t model.Translation) error
	SaveMany(ctx context.Context, ts []model.Translation) error
	PurgeOlderThan(ctx context.Context, cutoffMs int64) (int64, error)
	Clear(ctx context.Context) (int64, error)
}

type translationRepository struct {
	db dbtx
}

func NewTranslationRepository(db dbtx) TranslationRepository {
	return &translationRepository{db: db}
}

func (r *translationRepository) Get(ctx context.Context, sourceText, targetLanguage string) (*model.Translation, error) {
	row := r.db.QueryRowContext(
		ctx,
		`SELECT id, source_text, translated_text, source_language, target_language, created_at_ms
		 FROM translations WHERE source_text = ? AND target_language = ?`,
		sourceText, targetLanguage,
	)

	var t model.Translation
	err := row.Scan(&t.ID, &t.SourceText, &t.TranslatedText, &t.SourceLanguage, &t.TargetLanguage, &t.CreatedAtMs)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	return &t, nil
}

func (r *translationRepository) Save(ctx context.Context, t model.Translation) error {
	id := snowflake.NextID()

	_, err := r.db.ExecContext(
		ctx,
		`INSERT INTO translations (id, source_text, translated_text, source_language, target_language, created_at_ms)
		 VALUES (?, ?, ?, ?, ?, ?)
		 ON CONFLICT(source_text, target_language) DO UPDATE SET
		   translated_text = excluded.translated_text,
		   source_language = excluded.source_language,
		   created_at_ms = excluded.created_at_ms`,
		id, t.SourceText, t.TranslatedText, t.SourceLanguage, t.TargetLanguage, t.CreatedAtMs,
	)
	return err
}

func (r *translationRepository) SaveMany(ctx context.Context, ts []model.Translation) error {
	for _, t := range ts {
		if err := r.Save(ctx, t); err != nil {
			return err
		}
	}
	return nil
}

func (r *translationRepository) PurgeOlderThan(ctx context.Context, cutoffMs int64) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM translations WHERE created_at_ms < ?`, cutoffMs)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}

func (r *translationRepository) Clear(ctx context.Context) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM translations`)
	if err != nil {
		return 0, err
	}
	return result.RowsAffected()
}
