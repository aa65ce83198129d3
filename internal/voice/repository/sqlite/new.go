package sqlite

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"intelligent-voice-backend/internal/voice/repository"
	"intelligent-voice-backend/pkg/log"
)

// Store implements the voice repositories on a single SQLite database.
type Store struct {
	db *sql.DB
	l  log.Logger
}

var (
	_ repository.MemoryRepository      = (*Store)(nil)
	_ repository.AnalyticsRepository   = (*Store)(nil)
	_ repository.SessionRepository     = (*Store)(nil)
	_ repository.InteractionRepository = (*Store)(nil)
)

// New opens or creates the SQLite database at the given path and runs
// migrations. ":memory:" is accepted for tests.
func New(dbPath string, l log.Logger) (*Store, error) {
	if dbPath != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return nil, fmt.Errorf("create db dir: %w", err)
		}
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=busy_timeout(5000)")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}

	s := &Store{db: db, l: l}

	if err := s.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	return s, nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Ping verifies the database is reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

func (s *Store) migrate() error {
	schema := `
	CREATE TABLE IF NOT EXISTS voice_memory (
		user_id      TEXT PRIMARY KEY,
		memory_data  TEXT NOT NULL,
		last_updated TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS voice_analytics (
		id              TEXT PRIMARY KEY,
		user_id         TEXT NOT NULL,
		event_type      TEXT NOT NULL,
		intent          TEXT,
		slots           TEXT,
		memory_snapshot TEXT,
		response_text   TEXT,
		timestamp       TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_analytics_user ON voice_analytics(user_id, timestamp DESC);

	CREATE TABLE IF NOT EXISTS voice_sessions (
		id           INTEGER PRIMARY KEY AUTOINCREMENT,
		session_uuid TEXT UNIQUE NOT NULL,
		user_id      TEXT,
		intent       TEXT NOT NULL DEFAULT 'welcome',
		transcript   TEXT NOT NULL DEFAULT '',
		completed    INTEGER NOT NULL DEFAULT 0,
		created_at   TEXT NOT NULL,
		updated_at   TEXT NOT NULL
	);

	CREATE TABLE IF NOT EXISTS voice_interactions (
		id           TEXT PRIMARY KEY,
		user_id      TEXT NOT NULL,
		user_message TEXT NOT NULL,
		ai_response  TEXT NOT NULL,
		intent       TEXT,
		action_taken TEXT,
		created_at   TEXT NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_interactions_user ON voice_interactions(user_id, created_at DESC);
	`
	_, err := s.db.Exec(schema)
	return err
}
