// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package memos

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver
)

// Errors returned by Open.
var (
	ErrNotFound    = errors.New("recordings database not found")
	ErrNotReadable = errors.New("no permission to read recordings database")
)

// Record is one row of the recordings database, unmodified.
type Record struct {
	// Date is the recording timestamp in seconds since the Apple
	// reference date. Convert with AppleTime.
	Date float64

	// Duration is the recording length in seconds.
	Duration float64

	// Label is the user-assigned name. Empty when unset.
	Label string

	// Path is the audio file path relative to the Recordings folder.
	// Empty when the audio file is absent.
	Path string
}

// Store is a read-only handle on a CloudRecordings.db file.
type Store struct {
	db   *sql.DB
	path string
}

// Open opens the recordings database at path for reading. The
// connection is pinned to a single conn and forced into query-only
// mode so the source database can never be modified.
func Open(path string) (*Store, error) {
	// Preflight the file so permission problems surface as a clear
	// error instead of a driver failure on first query.
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, path)
		}
		if os.IsPermission(err) {
			return nil, fmt.Errorf("%w: %s", ErrNotReadable, path)
		}
		return nil, fmt.Errorf("open recordings database: %w", err)
	}
	f.Close()

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open recordings database: %w", err)
	}

	// SQLite handles one statement at a time per connection; a single
	// pooled conn also keeps the query_only pragma in effect for every
	// query this store runs.
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(0)

	pragmas := []string{
		"PRAGMA query_only=ON",
		"PRAGMA busy_timeout=5000",
	}
	for _, pragma := range pragmas {
		if _, err := db.Exec(pragma); err != nil {
			db.Close()
			return nil, fmt.Errorf("set pragma: %w", err)
		}
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the database connection.
func (s *Store) Close() error {
	return s.db.Close()
}

// RecordingsDir returns the folder that relative audio paths in the
// database are resolved against: the directory containing the database
// file itself.
func (s *Store) RecordingsDir() string {
	return filepath.Dir(s.path)
}

// Recordings returns every memo record ordered by recording timestamp
// ascending. NULL labels and paths scan as empty strings.
func (s *Store) Recordings(ctx context.Context) ([]Record, error) {
	rows, err := s.db.QueryContext(ctx, recordingsQuery)
	if err != nil {
		return nil, fmt.Errorf("query recordings: %w", err)
	}
	defer rows.Close()

	var records []Record
	for rows.Next() {
		var (
			date     sql.NullFloat64
			duration sql.NullFloat64
			label    sql.NullString
			path     sql.NullString
		)
		if err := rows.Scan(&date, &duration, &label, &path); err != nil {
			return nil, fmt.Errorf("scan recording: %w", err)
		}
		records = append(records, Record{
			Date:     date.Float64,
			Duration: duration.Float64,
			Label:    label.String,
			Path:     path.String,
		})
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read recordings: %w", err)
	}

	return records, nil
}
