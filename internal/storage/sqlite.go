// Package storage owns the service's SQLite database: schema migrations,
// the user-scoped key/value table, and the handle repositories build on.
package storage

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore wraps the SQLite database connection.
type SQLiteStore struct {
	db *sqlx.DB
}

type migration struct {
	version int
	sql     string
}

var migrations = []migration{
	{
		version: 1,
		sql: `
			CREATE TABLE IF NOT EXISTS schema_version (
				version INTEGER NOT NULL
			);

			CREATE TABLE IF NOT EXISTS tasks (
				id          TEXT PRIMARY KEY,
				user_id     TEXT NOT NULL,
				title       TEXT NOT NULL,
				description TEXT NOT NULL DEFAULT '',
				date        TEXT NOT NULL,
				day         TEXT NOT NULL,
				start_time  TEXT NOT NULL DEFAULT '',
				end_time    TEXT NOT NULL DEFAULT '',
				task_type   TEXT NOT NULL,
				priority    TEXT NOT NULL,
				created_at  TEXT NOT NULL
			);
			CREATE INDEX IF NOT EXISTS idx_tasks_user_date ON tasks(user_id, date);

			CREATE TABLE IF NOT EXISTS user_data (
				user_id    TEXT NOT NULL,
				key        TEXT NOT NULL,
				value      TEXT NOT NULL,
				updated_at TEXT NOT NULL,
				PRIMARY KEY (user_id, key)
			);

			INSERT INTO schema_version (version) VALUES (1);
		`,
	},
}

// NewSQLiteStore opens (or creates) a SQLite database at dbPath, enables
// WAL mode, and runs any pending schema migrations. Use ":memory:" in tests.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sqlx.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite db: %w", err)
	}

	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("enabling WAL mode: %w", err)
	}

	s := &SQLiteStore{db: db}
	if err := s.runMigrations(); err != nil {
		db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

// DB exposes the underlying handle for repositories.
func (s *SQLiteStore) DB() *sqlx.DB {
	return s.db
}

// Close closes the underlying database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) runMigrations() error {
	currentVersion := 0

	var tableCount int
	err := s.db.Get(
		&tableCount,
		"SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name='schema_version'",
	)
	if err != nil {
		return fmt.Errorf("checking schema_version table: %w", err)
	}

	if tableCount > 0 {
		err = s.db.Get(&currentVersion, "SELECT COALESCE(MAX(version), 0) FROM schema_version")
		if err != nil {
			return fmt.Errorf("reading schema version: %w", err)
		}
	}

	for _, m := range migrations {
		if m.version <= currentVersion {
			continue
		}
		if _, err := s.db.Exec(m.sql); err != nil {
			return fmt.Errorf("applying migration v%d: %w", m.version, err)
		}
	}

	return nil
}
