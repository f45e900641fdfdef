package db_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"cosmiccanvas/server/internal/db"
)

func TestOpen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")
	database, err := db.Open(dbPath)
	require.NoError(t, err)
	require.NotNil(t, database)
	defer database.Close()

	for _, table := range []string{"apods", "translations", "settings", "notifications"} {
		var name string
		err = database.QueryRow("SELECT name FROM sqlite_master WHERE type='table' AND name=?", table).Scan(&name)
		require.NoError(t, err, "table %s", table)
		require.Equal(t, table, name)
	}
}

func TestOpen_Reopen(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "test.db")

	database, err := db.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, database.Close())

	// Migrations must be idempotent.
	database, err = db.Open(dbPath)
	require.NoError(t, err)
	require.NoError(t, database.Close())
}

func TestBuildDSN(t *testing.T) {
	dsn := db.BuildDSN("test.db")
	require.Contains(t, dsn, "file:test.db")
	require.Contains(t, dsn, "journal_mode")
	require.Contains(t, dsn, "WAL")
	require.Contains(t, dsn, "foreign_keys")
	require.Contains(t, dsn, "ON")
}

// Pragmas must be embedded in the DSN so every connection in the pool
// gets them. Without busy_timeout, concurrent sync and translation
// writes fail with "database is locked".
func TestBuildDSN_ContainsBusyTimeout(t *testing.T) {
	dsn := db.BuildDSN("test.db")
	require.Contains(t, dsn, "busy_timeout")
	require.Contains(t, dsn, "30000")
}
