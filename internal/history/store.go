package history

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

// The store carries a single table, so the schema is bootstrapped in place
// with idempotent statements instead of a versioned migration chain.
const schema = `
CREATE TABLE IF NOT EXISTS playback_sessions (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    started_at TEXT NOT NULL,
    ended_at TEXT NOT NULL,
    seconds INTEGER NOT NULL
);

CREATE INDEX IF NOT EXISTS idx_playback_sessions_started_at
    ON playback_sessions (started_at DESC);
`

// Session is one completed playback run.
type Session struct {
	ID        int64
	StartedAt time.Time
	EndedAt   time.Time
	Seconds   int64
}

// Store manages playback session persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the history database and ensures the
// schema exists.
func Open(path string) (*Store, error) {
	if path == "" {
		return nil, errors.New("history database path is empty")
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// RecordSession inserts a completed playback run. An end before the start is
// stored with zero seconds, matching the state-file writer.
func (s *Store) RecordSession(ctx context.Context, start, end time.Time) (*Session, error) {
	seconds := int64(end.Sub(start) / time.Second)
	if seconds < 0 {
		seconds = 0
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO playback_sessions (started_at, ended_at, seconds) VALUES (?, ?, ?)`,
		start.UTC().Format(time.RFC3339),
		end.UTC().Format(time.RFC3339),
		seconds,
	)
	if err != nil {
		return nil, fmt.Errorf("insert session: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("last insert id: %w", err)
	}
	return &Session{ID: id, StartedAt: start.UTC(), EndedAt: end.UTC(), Seconds: seconds}, nil
}

// RecentSessions returns up to limit sessions, newest first.
func (s *Store) RecentSessions(ctx context.Context, limit int) ([]Session, error) {
	if limit <= 0 {
		limit = 20
	}

	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, started_at, ended_at, seconds
           FROM playback_sessions
          ORDER BY started_at DESC, id DESC
          LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("query sessions: %w", err)
	}
	defer rows.Close()

	var sessions []Session
	for rows.Next() {
		var (
			session            Session
			startedAt, endedAt string
		)
		if err := rows.Scan(&session.ID, &startedAt, &endedAt, &session.Seconds); err != nil {
			return nil, fmt.Errorf("scan session: %w", err)
		}
		if session.StartedAt, err = time.Parse(time.RFC3339, startedAt); err != nil {
			return nil, fmt.Errorf("parse started_at %q: %w", startedAt, err)
		}
		if session.EndedAt, err = time.Parse(time.RFC3339, endedAt); err != nil {
			return nil, fmt.Errorf("parse ended_at %q: %w", endedAt, err)
		}
		sessions = append(sessions, session)
	}
	return sessions, rows.Err()
}

// Totals reports the session count and accumulated playback seconds.
func (s *Store) Totals(ctx context.Context) (count int64, seconds int64, err error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT COUNT(1), COALESCE(SUM(seconds), 0) FROM playback_sessions`,
	)
	if err := row.Scan(&count, &seconds); err != nil {
		return 0, 0, fmt.Errorf("scan totals: %w", err)
	}
	return count, seconds, nil
}
