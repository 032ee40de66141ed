// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"io"
	"testing"

	"github.com/jeranaias/memoex/internal/config"
)

func TestParse_AllFlags(t *testing.T) {
	opts, err := Parse([]string{
		"-db-path", "/tmp/db",
		"-export-path", "/tmp/out",
		"-all",
		"-date-in-name",
		"-date-in-name-format", "20060102",
		"-no-open",
	}, io.Discard)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if opts.DBPath != "/tmp/db" {
		t.Errorf("DBPath: got %q", opts.DBPath)
	}
	if opts.ExportPath != "/tmp/out" {
		t.Errorf("ExportPath: got %q", opts.ExportPath)
	}
	if !opts.All || !opts.DateInName || !opts.NoOpen {
		t.Error("boolean flags not parsed")
	}
	if opts.DateFormat != "20060102" {
		t.Errorf("DateFormat: got %q", opts.DateFormat)
	}
}

func TestParse_Shorthands(t *testing.T) {
	opts, err := Parse([]string{"-d", "/tmp/db", "-e", "/tmp/out", "-a"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if opts.DBPath != "/tmp/db" || opts.ExportPath != "/tmp/out" || !opts.All {
		t.Errorf("shorthand flags not parsed: %+v", opts)
	}
}

func TestParse_RejectsPositionalArgs(t *testing.T) {
	if _, err := Parse([]string{"extra"}, io.Discard); err == nil {
		t.Fatal("Parse should reject positional arguments")
	}
}

func TestApply_OnlySetFlagsOverride(t *testing.T) {
	cfg := &config.Config{
		DatabasePath: "/cfg/db",
		ExportPath:   "/cfg/out",
		DateFormat:   config.DefaultDateFormat,
		DateInName:   true,
	}

	opts, err := Parse([]string{"-e", "/flag/out"}, io.Discard)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	opts.Apply(cfg)

	if cfg.ExportPath != "/flag/out" {
		t.Errorf("ExportPath: got %q, want flag value", cfg.ExportPath)
	}
	if cfg.DatabasePath != "/cfg/db" {
		t.Errorf("DatabasePath clobbered by unset flag: got %q", cfg.DatabasePath)
	}
	if !cfg.DateInName {
		t.Error("DateInName clobbered by unset flag")
	}
	if cfg.DateFormat != config.DefaultDateFormat {
		t.Errorf("DateFormat clobbered by unset flag: got %q", cfg.DateFormat)
	}
}
