// Package storage provides a SQLite-backed level catalogue.
// Levels are stored only as their compact text encoding.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/isopuzzle/internal/level"
)

// ErrNotFound is returned when a level ID is not in the store.
var ErrNotFound = errors.New("storage: level not found")

// Store manages the SQLite database connection for the level catalogue.
type Store struct {
	db *sql.DB
}

// LevelEntry is a stored level row. Map holds the compact encoding.
type LevelEntry struct {
	ID        string
	Name      string
	Map       string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Document decodes the stored map.
func (e LevelEntry) Document() (*level.Document, error) {
	doc, err := level.Parse(e.Map)
	if err != nil {
		return nil, fmt.Errorf("storage: level %s: %w", e.ID, err)
	}
	return doc, nil
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

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

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS levels (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL,
			map_text TEXT NOT NULL,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
			updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_levels_name ON levels(name);
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

// SaveLevel stores doc under id, replacing any level with the same ID.
// An empty id gets a fresh UUID. Returns the ID used.
func (s *Store) SaveLevel(id, name string, doc *level.Document) (string, error) {
	if doc == nil {
		return "", errors.New("storage: nil document")
	}
	if id == "" {
		id = uuid.NewString()
	}
	if name == "" {
		name = id
	}

	_, err := s.db.Exec(
		`INSERT INTO levels (id, name, map_text) VALUES (?, ?, ?)
		 ON CONFLICT(id) DO UPDATE SET
		   name = excluded.name,
		   map_text = excluded.map_text,
		   updated_at = CURRENT_TIMESTAMP`,
		id, name, level.Serialize(doc),
	)
	if err != nil {
		return "", fmt.Errorf("storage: cannot save level: %w", err)
	}
	return id, nil
}

// Level retrieves a stored level by ID.
func (s *Store) Level(id string) (LevelEntry, error) {
	var e LevelEntry
	var createdAt, updatedAt any

	err := s.db.QueryRow(
		`SELECT id, name, map_text, created_at, updated_at
		 FROM levels
		 WHERE id = ?`,
		id,
	).Scan(&e.ID, &e.Name, &e.Map, &createdAt, &updatedAt)

	if errors.Is(err, sql.ErrNoRows) {
		return LevelEntry{}, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return LevelEntry{}, fmt.Errorf("storage: cannot query level: %w", err)
	}

	e.CreatedAt = parseTime(createdAt)
	e.UpdatedAt = parseTime(updatedAt)
	return e, nil
}

// LoadLevel retrieves and decodes a stored level.
func (s *Store) LoadLevel(id string) (*level.Document, error) {
	e, err := s.Level(id)
	if err != nil {
		return nil, err
	}
	return e.Document()
}

// ListLevels returns all stored levels ordered by ID.
func (s *Store) ListLevels() ([]LevelEntry, error) {
	rows, err := s.db.Query(
		`SELECT id, name, map_text, created_at, updated_at
		 FROM levels
		 ORDER BY id`,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query levels: %w", err)
	}
	defer rows.Close()

	var entries []LevelEntry
	for rows.Next() {
		var e LevelEntry
		var createdAt, updatedAt any
		if err := rows.Scan(&e.ID, &e.Name, &e.Map, &createdAt, &updatedAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		e.CreatedAt = parseTime(createdAt)
		e.UpdatedAt = parseTime(updatedAt)
		entries = append(entries, e)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}

	return entries, nil
}

// DeleteLevel removes a stored level.
func (s *Store) DeleteLevel(id string) error {
	res, err := s.db.Exec("DELETE FROM levels WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("storage: cannot delete level: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot delete level: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	return nil
}

// parseTime handles both time.Time and string datetime columns.
func parseTime(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
