package db

import (
	"database/sql"
	"fmt"
)

// Base schema. Daily pictures are keyed by their NASA date string,
// translations use Snowflake row IDs with a natural unique key.
const baseSchema = `
CREATE TABLE IF NOT EXISTS apods (
  date TEXT PRIMARY KEY,
  title TEXT NOT NULL,
  explanation TEXT NOT NULL,
  url TEXT NOT NULL,
  media_type TEXT NOT NULL,
  thumbnail_url TEXT,
  copyright TEXT,
  favorite INTEGER NOT NULL DEFAULT 0,
  created_at TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_apods_favorite ON apods(favorite);

CREATE TABLE IF NOT EXISTS translations (
  id INTEGER PRIMARY KEY,
  source_text TEXT NOT NULL,
  translated_text TEXT NOT NULL,
  source_language TEXT NOT NULL,
  target_language TEXT NOT NULL,
  created_at_ms INTEGER NOT NULL,
  UNIQUE(source_text, target_language)
);

CREATE INDEX IF NOT EXISTS idx_translations_created_at ON translations(created_at_ms);

CREATE TABLE IF NOT EXISTS settings (
  key TEXT PRIMARY KEY,
  value TEXT NOT NULL,
  updated_at TEXT NOT NULL
);

CREATE TABLE IF NOT EXISTS notifications (
  id INTEGER PRIMARY KEY,
  kind TEXT NOT NULL,
  apod_date TEXT NOT NULL,
  keyword TEXT,
  title TEXT NOT NULL,
  body TEXT NOT NULL,
  created_at TEXT NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_notifications_created_at ON notifications(created_at);
`

func Migrate(db *sql.DB) error {
	if _, err := db.Exec(baseSchema); err != nil {
		return fmt.Errorf("migrate base schema: %w", err)
	}

	if err := runMigrations(db); err != nil {
		return fmt.Errorf("run migrations: %w", err)
	}

	return nil
}

func runMigrations(db *sql.DB) error {
	// Migration 1: Add hd_url column to apods if not exists
	var count int
	err := db.QueryRow(`
		SELECT COUNT(*) FROM pragma_table_info('apods') WHERE name = 'hd_url'
	`).Scan(&count)
	if err != nil {
		return fmt.Errorf("check hd_url column: %w", err)
	}

	if count == 0 {
		if _, err := db.Exec(`ALTER TABLE apods ADD COLUMN hd_url TEXT`); err != nil {
			return fmt.Errorf("add hd_url column: %w", err)
		}
	}

	return nil
}
