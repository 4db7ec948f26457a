// Package runlog records pipeline executions so operators can see when the
// periodic job last ran and whether it succeeded.
package runlog

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/mattn/go-sqlite3"
)

// Entry is one recorded pipeline execution.
type Entry struct {
	ID           uuid.UUID
	StartedAt    time.Time
	FinishedAt   time.Time
	Status       string // "SUCCESS" or "ERROR"
	Detail       string // error cause when Status is "ERROR"
	Credits      int
	Payments     int
	Installments int
	Summaries    int
}

// Store defines the interface for persisting run entries.
type Store interface {
	Record(entry *Entry) error
	Recent(limit int) ([]*Entry, error)
	Close() error
}

// SQLiteStore implements Store on a local sqlite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens (or creates) the run-log database at path and
// ensures the schema exists.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open run log database: %w", err)
	}

	schema := `
	CREATE TABLE IF NOT EXISTS runs (
		id TEXT PRIMARY KEY,
		started_at TIMESTAMP NOT NULL,
		finished_at TIMESTAMP NOT NULL,
		status TEXT NOT NULL,
		detail TEXT NOT NULL,
		credits INTEGER NOT NULL,
		payments INTEGER NOT NULL,
		installments INTEGER NOT NULL,
		summaries INTEGER NOT NULL
	);`
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create runs table: %w", err)
	}
	return &SQLiteStore{db: db}, nil
}

// Record inserts a run entry.
func (s *SQLiteStore) Record(entry *Entry) error {
	_, err := s.db.Exec(
		`INSERT INTO runs (id, started_at, finished_at, status, detail, credits, payments, installments, summaries)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		entry.ID.String(), entry.StartedAt, entry.FinishedAt, entry.Status, entry.Detail,
		entry.Credits, entry.Payments, entry.Installments, entry.Summaries,
	)
	if err != nil {
		return fmt.Errorf("failed to record run %s: %w", entry.ID, err)
	}
	return nil
}

// Recent returns the most recent run entries, newest first.
func (s *SQLiteStore) Recent(limit int) ([]*Entry, error) {
	rows, err := s.db.Query(
		`SELECT id, started_at, finished_at, status, detail, credits, payments, installments, summaries
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var entries []*Entry
	for rows.Next() {
		var e Entry
		var id string
		if err := rows.Scan(&id, &e.StartedAt, &e.FinishedAt, &e.Status, &e.Detail,
			&e.Credits, &e.Payments, &e.Installments, &e.Summaries); err != nil {
			return nil, fmt.Errorf("failed to scan run row: %w", err)
		}
		e.ID, err = uuid.Parse(id)
		if err != nil {
			return nil, fmt.Errorf("invalid run id %q: %w", id, err)
		}
		entries = append(entries, &e)
	}
	return entries, rows.Err()
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
