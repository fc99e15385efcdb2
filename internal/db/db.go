// Copyright 2025 Wasmkit Authors
// SPDX-License-Identifier: Apache-2.0

// Package db caches section summaries of previously inspected modules,
// keyed by the file's content hash, so repeated runs on large modules skip
// the decode.
package db

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Summary is one cached inspection result.
type Summary struct {
	ID        int64     `json:"id"`
	Hash      string    `json:"hash"`
	Path      string    `json:"path"`
	SizeBytes int64     `json:"size_bytes"`
	Sections  []string  `json:"sections"`
	Errors    int       `json:"errors"`
	Timestamp time.Time `json:"timestamp"`
}

// Store handles database operations
type Store struct {
	db *sql.DB
}

// Open initializes the SQLite database at the given path.
func Open(dbPath string) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open db: %w", err)
	}

	if err := initSchema(db); err != nil {
		db.Close()
		return nil, err
	}

	return &Store{db: db}, nil
}

func initSchema(db *sql.DB) error {
	query := `
	CREATE TABLE IF NOT EXISTS summaries (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		hash TEXT NOT NULL UNIQUE,
		path TEXT NOT NULL,
		size_bytes INTEGER NOT NULL,
		sections TEXT,
		errors INTEGER NOT NULL DEFAULT 0,
		timestamp DATETIME DEFAULT CURRENT_TIMESTAMP
	);
	CREATE INDEX IF NOT EXISTS idx_summaries_hash ON summaries(hash);
	`
	_, err := db.Exec(query)
	if err != nil {
		return fmt.Errorf("failed to init schema: %w", err)
	}
	return nil
}

// Save persists a summary, replacing any earlier row for the same hash.
func (s *Store) Save(summary *Summary) error {
	sectionsJSON, _ := json.Marshal(summary.Sections)

	query := `
	INSERT INTO summaries (hash, path, size_bytes, sections, errors, timestamp)
	VALUES (?, ?, ?, ?, ?, ?)
	ON CONFLICT(hash) DO UPDATE SET
		path = excluded.path,
		size_bytes = excluded.size_bytes,
		sections = excluded.sections,
		errors = excluded.errors,
		timestamp = excluded.timestamp
	`
	_, err := s.db.Exec(query, summary.Hash, summary.Path, summary.SizeBytes,
		string(sectionsJSON), summary.Errors, time.Now())
	if err != nil {
		return fmt.Errorf("failed to insert summary: %w", err)
	}
	return nil
}

// Lookup returns the cached summary for a content hash, or nil.
func (s *Store) Lookup(hash string) (*Summary, error) {
	query := `
	SELECT id, hash, path, size_bytes, sections, errors, timestamp
	FROM summaries WHERE hash = ?
	`
	row := s.db.QueryRow(query, hash)

	var summary Summary
	var sectionsJSON string
	err := row.Scan(&summary.ID, &summary.Hash, &summary.Path, &summary.SizeBytes,
		&sectionsJSON, &summary.Errors, &summary.Timestamp)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query summary: %w", err)
	}
	if err := json.Unmarshal([]byte(sectionsJSON), &summary.Sections); err != nil {
		return nil, fmt.Errorf("failed to decode sections: %w", err)
	}
	return &summary, nil
}

// Prune deletes summaries older than the cutoff and returns how many rows
// were removed.
func (s *Store) Prune(olderThan time.Duration) (int64, error) {
	cutoff := time.Now().Add(-olderThan)
	res, err := s.db.Exec(`DELETE FROM summaries WHERE timestamp < ?`, cutoff)
	if err != nil {
		return 0, fmt.Errorf("failed to prune summaries: %w", err)
	}
	return res.RowsAffected()
}

// Close releases the database handle.
func (s *Store) Close() error {
	return s.db.Close()
}
