// Package storage provides SQLite-based persistence for player preferences
// and the max score. Uses the pure-Go modernc.org/sqlite driver to avoid CGO
// dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Store manages the SQLite database connection. Values are integers keyed by
// (profile, key), so every local profile or SSH user keeps its own options
// and max score.
type Store struct {
	db *sql.DB
}

// Entry is one stored value.
type Entry struct {
	Profile   string
	Key       string
	Value     int
	UpdatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	path, err := ExpandPath(dbPath)
	if err != nil {
		return nil, err
	}

	// Create parent directories
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// SSH sessions write concurrently and SQLite allows one writer.
	db.SetMaxOpenConns(1)

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// ExpandPath expands a leading ~ to the user's home directory.
func ExpandPath(p string) (string, error) {
	if p == "" || p[0] != '~' {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("storage: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, p[1:]), nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS preferences (
			profile TEXT NOT NULL,
			key TEXT NOT NULL,
			value INTEGER NOT NULL,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			PRIMARY KEY (profile, key)
		);
		CREATE INDEX IF NOT EXISTS idx_preferences_key_value ON preferences(key, value DESC);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Int returns the value stored under (profile, key), or def if absent.
func (s *Store) Int(profile, key string, def int) (int, error) {
	var v int
	err := s.db.QueryRow(
		"SELECT value FROM preferences WHERE profile = ? AND key = ?",
		profile, key,
	).Scan(&v)

	if errors.Is(err, sql.ErrNoRows) {
		return def, nil
	}
	if err != nil {
		return def, fmt.Errorf("storage: cannot read %s/%s: %w", profile, key, err)
	}
	return v, nil
}

// SetInt stores value under (profile, key), replacing any previous value.
func (s *Store) SetInt(profile, key string, value int) error {
	_, err := s.db.Exec(
		`INSERT INTO preferences (profile, key, value, updated_at)
		 VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		 ON CONFLICT(profile, key) DO UPDATE SET
		   value = excluded.value,
		   updated_at = excluded.updated_at`,
		profile, key, value,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot save %s/%s: %w", profile, key, err)
	}
	return nil
}

// Entries returns every value stored for a profile, ordered by key.
func (s *Store) Entries(profile string) ([]Entry, error) {
	rows, err := s.db.Query(
		`SELECT profile, key, value, updated_at
		 FROM preferences
		 WHERE profile = ?
		 ORDER BY key`,
		profile,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query preferences: %w", err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Top returns the highest values stored under key across all profiles.
// Used to rank profiles by max score.
func (s *Store) Top(key string, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := s.db.Query(
		`SELECT profile, key, value, updated_at
		 FROM preferences
		 WHERE key = ?
		 ORDER BY value DESC, profile
		 LIMIT ?`,
		key, limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query %s: %w", key, err)
	}
	defer rows.Close()

	return scanEntries(rows)
}

// Delete removes every value stored for a profile.
func (s *Store) Delete(profile string) error {
	_, err := s.db.Exec("DELETE FROM preferences WHERE profile = ?", profile)
	if err != nil {
		return fmt.Errorf("storage: cannot delete profile %s: %w", profile, err)
	}
	return nil
}

func scanEntries(rows *sql.Rows) ([]Entry, error) {
	var entries []Entry
	for rows.Next() {
		var e Entry
		var updatedAt any
		if err := rows.Scan(&e.Profile, &e.Key, &e.Value, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}

		// Parse the datetime - handle both time.Time and string
		switch v := updatedAt.(type) {
		case time.Time:
			e.UpdatedAt = v
		case string:
			if parsed, err := time.Parse("2006-01-02 15:04:05", v); err == nil {
				e.UpdatedAt = parsed
			}
		}
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return entries, nil
}
