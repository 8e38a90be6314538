// Package store persists all learner state in a namespaced key-value
// table backed by SQLite. Each namespace holds one JSON document and
// every write is immediately durable. Read accessors degrade to zero
// values when the underlying database fails: the app stays usable at
// the cost of silently dropping state.
package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	// Pure Go SQLite driver (no CGO).
	_ "modernc.org/sqlite"
)

// Namespace keys. One JSON document per key.
const (
	KeySelectedCollection = "selected_collection"
	KeyUserStats          = "user_stats"
	KeyAnswers            = "answers"
	KeyFavorites          = "favorites"
	KeyWrongAnswers       = "wrong_answers"
	KeyTestProgress       = "test_progress"
	KeyStreak             = "streak"
	KeySpacedRepetition   = "spaced_repetition"
	KeyDailyActivity      = "daily_activity"
	KeySettings           = "settings"
	KeyTheme              = "theme"
	KeyOnboarding         = "onboarding_complete"
)

// Namespaces lists every key the store manages, in export order.
var Namespaces = []string{
	KeySelectedCollection,
	KeyUserStats,
	KeyAnswers,
	KeyFavorites,
	KeyWrongAnswers,
	KeyTestProgress,
	KeyStreak,
	KeySpacedRepetition,
	KeyDailyActivity,
	KeySettings,
	KeyTheme,
	KeyOnboarding,
}

const schema = `
CREATE TABLE IF NOT EXISTS kv (
    key        TEXT PRIMARY KEY,
    value      TEXT NOT NULL,
    updated_at TEXT NOT NULL
);
`

// Store wraps the SQLite connection.
type Store struct {
	db *sql.DB
}

// Open connects to the SQLite database at dsn, applies pragmas and
// ensures the schema exists.
func Open(dsn string) (*Store, error) {
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if err := applyPragmas(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply pragmas: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("apply schema: %w", err)
	}
	return &Store{db: db}, nil
}

// Close closes the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// applyPragmas configures SQLite for single-user durability.
func applyPragmas(db *sql.DB) error {
	pragmas := []string{
		"PRAGMA journal_mode = WAL",
		"PRAGMA busy_timeout = 5000",
		"PRAGMA synchronous = NORMAL",
	}
	for _, p := range pragmas {
		if _, err := db.Exec(p); err != nil {
			return fmt.Errorf("%s: %w", p, err)
		}
	}
	return nil
}

// Get unmarshals the document stored under key into v. Returns false
// when the key is absent or the store is unavailable; v is left for
// the caller to default.
func (s *Store) Get(key string, v any) bool {
	var raw string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return false
	}
	if err != nil {
		log.Printf("store: read %s: %v", key, err)
		return false
	}
	if err := json.Unmarshal([]byte(raw), v); err != nil {
		log.Printf("store: decode %s: %v", key, err)
		return false
	}
	return true
}

// Set stores v under key as JSON, replacing any prior document.
func (s *Store) Set(key string, v any) bool {
	raw, err := json.Marshal(v)
	if err != nil {
		log.Printf("store: encode %s: %v", key, err)
		return false
	}
	return s.setRaw(key, raw)
}

func (s *Store) setRaw(key string, raw []byte) bool {
	_, err := s.db.Exec(
		`INSERT INTO kv (key, value, updated_at) VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = excluded.updated_at`,
		key, string(raw), time.Now().UTC().Format(time.RFC3339),
	)
	if err != nil {
		log.Printf("store: write %s: %v", key, err)
		return false
	}
	return true
}

// Delete removes the document stored under key.
func (s *Store) Delete(key string) bool {
	if _, err := s.db.Exec(`DELETE FROM kv WHERE key = ?`, key); err != nil {
		log.Printf("store: delete %s: %v", key, err)
		return false
	}
	return true
}

// ClearAll removes every managed namespace. Used by full data reset.
func (s *Store) ClearAll() {
	for _, key := range Namespaces {
		s.Delete(key)
	}
}

// DefaultDBPath resolves the database file path in priority order:
// 1. ROADREADY_DB environment variable
// 2. $XDG_DATA_HOME/roadready/roadready.db
// 3. ~/.local/share/roadready/roadready.db
func DefaultDBPath() (string, error) {
	if p := os.Getenv("ROADREADY_DB"); p != "" {
		return p, EnsureDir(p)
	}

	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}

	p := filepath.Join(dataHome, "roadready", "roadready.db")
	return p, EnsureDir(p)
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	return os.MkdirAll(filepath.Dir(path), 0o755)
}
