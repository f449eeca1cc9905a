// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package history persists per-file conversion outcomes in a SQLite log so
// past runs can be inspected after the fact.
package history

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/michellepace/markdown-to-word/pkg/types"
)

const defaultLimit = 20

// Store manages the conversion history SQLite database.
type Store struct {
	db *sql.DB
}

// Open opens or creates the history database at path. Parent directories
// and the schema are created as needed.
func Open(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("creating history directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite3", path+"?_journal_mode=WAL&_foreign_keys=on")
	if err != nil {
		return nil, fmt.Errorf("opening history database: %w", err)
	}

	s := &Store{db: db}
	if err := s.createSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}
	return s, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

func (s *Store) createSchema() error {
	statements := []string{
		`CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			started_at TEXT NOT NULL,
			input_path TEXT NOT NULL,
			output_dir TEXT NOT NULL,
			pandoc TEXT
		)`,
		`CREATE TABLE IF NOT EXISTS conversions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			run_id INTEGER NOT NULL REFERENCES runs(id),
			source TEXT NOT NULL,
			output TEXT,
			status TEXT NOT NULL,
			error TEXT,
			duration_ms INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_conversions_run_id ON conversions(run_id)`,
	}

	for _, stmt := range statements {
		if _, err := s.db.Exec(stmt); err != nil {
			return fmt.Errorf("executing schema statement: %w", err)
		}
	}
	return nil
}

// BeginRun records the start of a batch run and returns its ID.
func (s *Store) BeginRun(ctx context.Context, inputPath, outputDir, pandocVersion string) (int64, error) {
	res, err := s.db.ExecContext(ctx,
		`INSERT INTO runs (started_at, input_path, output_dir, pandoc) VALUES (?, ?, ?, ?)`,
		time.Now().UTC().Format(time.RFC3339), inputPath, outputDir, pandocVersion,
	)
	if err != nil {
		return 0, fmt.Errorf("recording run: %w", err)
	}
	return res.LastInsertId()
}

// RecordFile appends one conversion outcome to a run.
func (s *Store) RecordFile(ctx context.Context, runID int64, r types.FileResult) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO conversions (run_id, source, output, status, error, duration_ms)
		 VALUES (?, ?, ?, ?, ?, ?)`,
		runID, r.Source, r.Output, string(r.Status), r.Error, r.Duration.Milliseconds(),
	)
	if err != nil {
		return fmt.Errorf("recording conversion: %w", err)
	}
	return nil
}

// Entry is one row of the history listing.
type Entry struct {
	RunID     int64
	StartedAt string
	Source    string
	Status    types.ConversionStatus
	Error     string
}

// Recent returns the most recent conversion outcomes, newest first.
func (s *Store) Recent(ctx context.Context, limit int) ([]Entry, error) {
	if limit <= 0 {
		limit = defaultLimit
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT c.run_id, r.started_at, c.source, c.status, COALESCE(c.error, '')
		FROM conversions c
		JOIN runs r ON r.id = c.run_id
		ORDER BY c.id DESC
		LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var entries []Entry
	for rows.Next() {
		var e Entry
		var status string
		if err := rows.Scan(&e.RunID, &e.StartedAt, &e.Source, &status, &e.Error); err != nil {
			return nil, fmt.Errorf("scanning history row: %w", err)
		}
		e.Status = types.ConversionStatus(status)
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
