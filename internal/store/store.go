// Package store persists the gauge operation history in a local SQLite
// database. Every successful conversion, arithmetic, or equality command
// is recorded as one Entry; the history command reads them back newest
// first.
package store

import (
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"
)

// Store errors.
var (
	ErrStoreClosed = errors.New("store is closed")
)

// dbFileName is the SQLite database file created inside the data
// directory.
const dbFileName = "gauge.db"

// Entry is one recorded operation.
type Entry struct {
	ID          string    // UUID v7, generated on record.
	PerformedAt time.Time // Timestamp of the operation.
	Category    string    // Measurement category the operation ran in.
	Operation   string    // convert, add, subtract, divide, or equals.
	Input       string    // Human-readable operands, e.g. "2 yd + 36 in".
	Result      string    // Human-readable result, e.g. "3 yd".
}

// Store is a handle on the history database. Safe for concurrent use.
type Store struct {
	mu sync.Mutex
	db *sql.DB
}

// Open opens (creating if necessary) the history database under dataDir.
// The data directory is created if it does not exist.
func Open(dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data directory: %w", err)
	}

	db, err := sql.Open("sqlite", filepath.Join(dataDir, dbFileName))
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}
	if _, err := db.Exec(schemaSQL); err != nil {
		db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	return &Store{db: db}, nil
}

// Close releases the database handle. Idempotent; operations after
// Close return ErrStoreClosed.
func (s *Store) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// Record inserts an entry into the history. A zero ID is replaced with
// a generated UUID v7 and a zero PerformedAt with the current time.
func (s *Store) Record(e Entry) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return ErrStoreClosed
	}

	if e.ID == "" {
		e.ID = generateID()
	}
	if e.PerformedAt.IsZero() {
		e.PerformedAt = time.Now().UTC()
	}

	_, err := s.db.Exec(
		`INSERT INTO history (entry_id, performed_at, category, operation, input, result)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		e.ID, e.PerformedAt.UTC().Format(time.RFC3339Nano),
		e.Category, e.Operation, e.Input, e.Result,
	)
	if err != nil {
		return fmt.Errorf("record entry: %w", err)
	}
	return nil
}

// List returns up to limit entries, newest first. A non-positive limit
// returns all entries. Returns an empty slice (not nil) when the
// history is empty.
func (s *Store) List(limit int) ([]Entry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.db == nil {
		return nil, ErrStoreClosed
	}

	query := `SELECT entry_id, performed_at, category, operation, input, result
		 FROM history ORDER BY performed_at DESC, entry_id DESC`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}

	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	entries := make([]Entry, 0)
	for rows.Next() {
		var e Entry
		var performedAt string
		if err := rows.Scan(&e.ID, &performedAt, &e.Category, &e.Operation, &e.Input, &e.Result); err != nil {
			return nil, fmt.Errorf("scan entry: %w", err)
		}
		if ts, err := time.Parse(time.RFC3339Nano, performedAt); err == nil {
			e.PerformedAt = ts
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate history: %w", err)
	}
	return entries, nil
}

// generateID returns a UUID v7 entry ID, falling back to v4 if v7
// generation fails.
func generateID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.New().String()
	}
	return id.String()
}
