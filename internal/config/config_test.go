// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.DateFormat != DefaultDateFormat {
		t.Errorf("DateFormat: got %q, want %q", cfg.DateFormat, DefaultDateFormat)
	}
	if cfg.DateInName {
		t.Error("DateInName should default to false")
	}
	if cfg.ExportAll {
		t.Error("ExportAll should default to false")
	}
	if cfg.ExportPath == "" {
		t.Error("ExportPath should have a default")
	}
}

func TestLoad_ExplicitFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
db_path = "/tmp/CloudRecordings.db"
export_path = "/tmp/out"
date_in_name = true
date_in_name_format = "20060102"
no_open = true
`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DatabasePath != "/tmp/CloudRecordings.db" {
		t.Errorf("DatabasePath: got %q", cfg.DatabasePath)
	}
	if cfg.ExportPath != "/tmp/out" {
		t.Errorf("ExportPath: got %q", cfg.ExportPath)
	}
	if !cfg.DateInName {
		t.Error("DateInName not loaded")
	}
	if cfg.DateFormat != "20060102" {
		t.Errorf("DateFormat: got %q", cfg.DateFormat)
	}
	if !cfg.NoOpen {
		t.Error("NoOpen not loaded")
	}
}

func TestLoad_ExplicitFileMissing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.toml"))
	if err == nil {
		t.Fatal("Load should fail for a missing explicit config file")
	}
}

func TestLoad_PartialFileKeepsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte(`export_path = "/tmp/out"`), 0644); err != nil {
		t.Fatalf("write config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if cfg.DateFormat != DefaultDateFormat {
		t.Errorf("DateFormat default lost: got %q", cfg.DateFormat)
	}
}

func TestApplyEnvOverrides(t *testing.T) {
	t.Setenv("MEMOEX_DB_PATH", "/env/db")
	t.Setenv("MEMOEX_EXPORT_PATH", "/env/out")
	t.Setenv("MEMOEX_DATE_IN_NAME", "true")
	t.Setenv("MEMOEX_DATE_FORMAT", "2006-01-02")

	cfg := Default()
	cfg.ApplyEnvOverrides()

	if cfg.DatabasePath != "/env/db" {
		t.Errorf("DatabasePath: got %q", cfg.DatabasePath)
	}
	if cfg.ExportPath != "/env/out" {
		t.Errorf("ExportPath: got %q", cfg.ExportPath)
	}
	if !cfg.DateInName {
		t.Error("DateInName override not applied")
	}
	if cfg.DateFormat != "2006-01-02" {
		t.Errorf("DateFormat: got %q", cfg.DateFormat)
	}
}
