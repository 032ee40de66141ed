// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package memos

import (
	"context"
	"database/sql"
	"errors"
	"os"
	"path/filepath"
	"testing"
)

// newFixtureDB creates a CloudRecordings.db lookalike in a temp dir and
// returns its path.
func newFixtureDB(t *testing.T) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "CloudRecordings.db")
	db, err := sql.Open("sqlite", path)
	if err != nil {
		t.Fatalf("open fixture db: %v", err)
	}
	defer db.Close()

	schema := `CREATE TABLE ZCLOUDRECORDING (
		Z_PK INTEGER PRIMARY KEY,
		ZDATE REAL,
		ZDURATION REAL,
		ZCUSTOMLABEL TEXT,
		ZPATH TEXT
	)`
	if _, err := db.Exec(schema); err != nil {
		t.Fatalf("create fixture table: %v", err)
	}

	// Inserted out of timestamp order on purpose.
	inserts := []struct {
		date     float64
		duration float64
		label    any
		path     any
	}{
		{700000100.0, 12.5, "Second Memo", "rec2.m4a"},
		{700000000.0, 83.5, "First Memo", "rec1.m4a"},
		{700000200.0, 5.0, nil, nil},
	}
	for _, in := range inserts {
		_, err := db.Exec(
			"INSERT INTO ZCLOUDRECORDING (ZDATE, ZDURATION, ZCUSTOMLABEL, ZPATH) VALUES (?, ?, ?, ?)",
			in.date, in.duration, in.label, in.path,
		)
		if err != nil {
			t.Fatalf("insert fixture row: %v", err)
		}
	}

	return path
}

func TestRecordings_OrderedAscending(t *testing.T) {
	store, err := Open(newFixtureDB(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	records, err := store.Recordings(context.Background())
	if err != nil {
		t.Fatalf("Recordings failed: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("Record count: got %d, want 3", len(records))
	}
	for i := 1; i < len(records); i++ {
		if records[i].Date < records[i-1].Date {
			t.Errorf("Records out of order at %d: %f after %f", i, records[i].Date, records[i-1].Date)
		}
	}
	if records[0].Label != "First Memo" {
		t.Errorf("First record: got %q, want %q", records[0].Label, "First Memo")
	}
}

func TestRecordings_NullColumnsScanEmpty(t *testing.T) {
	store, err := Open(newFixtureDB(t))
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	records, err := store.Recordings(context.Background())
	if err != nil {
		t.Fatalf("Recordings failed: %v", err)
	}

	last := records[len(records)-1]
	if last.Label != "" {
		t.Errorf("NULL label: got %q, want empty", last.Label)
	}
	if last.Path != "" {
		t.Errorf("NULL path: got %q, want empty", last.Path)
	}
}

func TestOpen_MissingFile(t *testing.T) {
	_, err := Open(filepath.Join(t.TempDir(), "nope.db"))
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Open missing file: got %v, want ErrNotFound", err)
	}
}

func TestOpen_UnreadableFile(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root ignores file permissions")
	}

	path := newFixtureDB(t)
	if err := os.Chmod(path, 0o000); err != nil {
		t.Fatalf("chmod fixture: %v", err)
	}
	t.Cleanup(func() { os.Chmod(path, 0o600) })

	_, err := Open(path)
	if !errors.Is(err, ErrNotReadable) {
		t.Errorf("Open unreadable file: got %v, want ErrNotReadable", err)
	}
}

func TestRecordingsDir(t *testing.T) {
	path := newFixtureDB(t)
	store, err := Open(path)
	if err != nil {
		t.Fatalf("Open failed: %v", err)
	}
	defer store.Close()

	if got := store.RecordingsDir(); got != filepath.Dir(path) {
		t.Errorf("RecordingsDir: got %q, want %q", got, filepath.Dir(path))
	}
}
