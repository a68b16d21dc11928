// Package sqlite implements the intent repository on an embedded SQLite
// database (pure Go driver, no cgo).
package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"

	"intent-engine/internal/intent/repository"
	"intent-engine/pkg/log"
)

const schema = `
CREATE TABLE IF NOT EXISTS learning_events (
	id               TEXT PRIMARY KEY,
	text             TEXT NOT NULL,
	predicted_task   TEXT NOT NULL,
	predicted_intent TEXT NOT NULL,
	correct_task     TEXT NOT NULL,
	correct_intent   TEXT NOT NULL,
	created_at       INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_learning_events_created_at ON learning_events(created_at);

CREATE TABLE IF NOT EXISTS messages (
	id          TEXT PRIMARY KEY,
	text        TEXT NOT NULL,
	task_type   TEXT NOT NULL,
	intent_type TEXT NOT NULL,
	score       REAL NOT NULL,
	created_at  INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_messages_created_at ON messages(created_at);
`

var pragmas = []string{
	"PRAGMA journal_mode = WAL",
	"PRAGMA synchronous = NORMAL",
	"PRAGMA busy_timeout = 5000",
}

type implRepository struct {
	db    *sql.DB
	l     log.Logger
	clock func() time.Time
}

// Open opens (creating if needed) the database at path and applies the
// schema. ":memory:" gives a private in-memory database.
func Open(ctx context.Context, l log.Logger, path string) (repository.Repository, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return nil, fmt.Errorf("%w: %v", repository.ErrFailedToOpen, err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", repository.ErrFailedToOpen, err)
	}
	// A single connection keeps ":memory:" databases alive and serializes
	// writers, which SQLite requires anyway.
	db.SetMaxOpenConns(1)

	r := &implRepository{db: db, l: l, clock: time.Now}
	if err := r.migrate(ctx, path); err != nil {
		db.Close()
		return nil, err
	}
	return r, nil
}

func (r *implRepository) migrate(ctx context.Context, path string) error {
	if path != ":memory:" {
		for _, p := range pragmas {
			if _, err := r.db.ExecContext(ctx, p); err != nil {
				return fmt.Errorf("%w: %s: %v", repository.ErrFailedToOpen, p, err)
			}
		}
	}
	if _, err := r.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("%w: schema: %v", repository.ErrFailedToOpen, err)
	}
	return nil
}

func (r *implRepository) Close() error { return r.db.Close() }

// dsn returns a method-scoped prefix for log lines.
func (r *implRepository) dsn(method string) string {
	return fmt.Sprintf("intent/repository/sqlite.%s", method)
}
