// Package sqlite provides SQLite-based persistent storage for TrainQuest.
// Uses WAL mode for crash-safe writes. The whole application state is
// persisted as one versioned JSON snapshot under a fixed key; there is no
// migration path — a version mismatch discards the stored state.
package sqlite

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure-Go SQLite driver (no CGO required)

	"github.com/google/uuid"
)

// DB wraps a SQLite connection with WAL mode and migrations.
type DB struct {
	db *sql.DB
}

// Open creates or opens the SQLite database at dir/state.db.
// Enables WAL mode and a 5-second busy timeout.
func Open(dir string) (*DB, error) {
	if err := os.MkdirAll(dir, 0700); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}

	dbPath := filepath.Join(dir, "state.db")
	dsn := dbPath + "?_journal_mode=WAL&_busy_timeout=5000"

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}

	// SQLite is single-writer
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	d := &DB{db: db}
	if err := d.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return d, nil
}

// Close cleanly shuts down the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// Ping checks database connectivity.
func (d *DB) Ping() error {
	return d.db.Ping()
}

// migrate runs idempotent schema migrations.
func (d *DB) migrate() error {
	migrations := []string{
		// Whole-state snapshots, one row per key.
		`CREATE TABLE IF NOT EXISTS snapshots (
			key      TEXT PRIMARY KEY,
			version  INTEGER NOT NULL,
			value    TEXT NOT NULL,
			saved_at INTEGER NOT NULL
		)`,

		// Small app metadata (install id, last seed time).
		`CREATE TABLE IF NOT EXISTS app_info (
			key   TEXT PRIMARY KEY,
			value TEXT NOT NULL
		)`,
	}

	for _, m := range migrations {
		if _, err := d.db.Exec(m); err != nil {
			return fmt.Errorf("migration failed: %w\nSQL: %s", err, m)
		}
	}
	return nil
}

// ─── App Info ───────────────────────────────────────────────────────────────

// SetAppInfo stores a key-value pair in app_info.
func (d *DB) SetAppInfo(key, value string) error {
	_, err := d.db.Exec(
		`INSERT INTO app_info (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value=excluded.value`,
		key, value,
	)
	return err
}

// GetAppInfo retrieves a value from app_info. Returns "" if not found.
func (d *DB) GetAppInfo(key string) (string, error) {
	var value string
	err := d.db.QueryRow(`SELECT value FROM app_info WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", nil
	}
	return value, err
}

// InstallID returns the stable install identifier, generating one on first
// call.
func (d *DB) InstallID() (string, error) {
	id, err := d.GetAppInfo("install_id")
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}

	id = uuid.NewString()
	if err := d.SetAppInfo("install_id", id); err != nil {
		return "", err
	}
	return id, nil
}
