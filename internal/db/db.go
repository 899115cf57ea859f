// Package db provides SQLite access for the lifecycle journal.
package db

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
	_ "modernc.org/sqlite"
)

// DB wraps a SQLite handle.
type DB struct {
	*sql.DB
	path   string
	logger zerolog.Logger
}

const schema = `
CREATE TABLE IF NOT EXISTS events (
	seq           INTEGER PRIMARY KEY AUTOINCREMENT,
	id            TEXT NOT NULL UNIQUE,
	timestamp     TEXT NOT NULL,
	type          TEXT NOT NULL,
	entity_type   TEXT NOT NULL,
	entity_id     TEXT NOT NULL,
	payload_json  TEXT,
	metadata_json TEXT
);
CREATE INDEX IF NOT EXISTS idx_events_entity ON events (entity_type, entity_id);
CREATE INDEX IF NOT EXISTS idx_events_type ON events (type);
`

// Open opens (and creates if needed) the journal database at path and
// applies the schema. Use ":memory:" for a throwaway database.
func Open(ctx context.Context, path string, logger zerolog.Logger) (*DB, error) {
	if path == "" {
		return nil, fmt.Errorf("database path is required")
	}
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	handle, err := sql.Open("sqlite", path+"?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	handle.SetMaxOpenConns(1)

	if err := handle.PingContext(ctx); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if _, err := handle.ExecContext(ctx, schema); err != nil {
		_ = handle.Close()
		return nil, fmt.Errorf("failed to apply schema: %w", err)
	}

	logger.Debug().Str("path", path).Msg("journal database opened")

	return &DB{DB: handle, path: path, logger: logger}, nil
}

// Path returns the database location.
func (db *DB) Path() string {
	return db.path
}
