// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package config provides configuration loading for memoex.
//
// Settings resolve in order of precedence:
//   - command-line flags (applied by the cli package)
//   - environment variables (MEMOEX_*)
//   - ~/.memoex/config.toml
//   - built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/jeranaias/memoex/internal/util"
)

// Config holds every memoex setting.
type Config struct {
	// DatabasePath is the CloudRecordings.db file to read. Empty means
	// no database was found among the default locations.
	DatabasePath string `toml:"db_path"`

	// ExportPath is the destination folder for exported audio files.
	ExportPath string `toml:"export_path"`

	// ExportAll exports every memo without per-record confirmation.
	ExportAll bool `toml:"export_all"`

	// DateInName prefixes exported filenames with the recording date.
	DateInName bool `toml:"date_in_name"`

	// DateFormat is the Go time layout used for the date prefix.
	DateFormat string `toml:"date_in_name_format"`

	// NoOpen suppresses revealing the export folder when done.
	NoOpen bool `toml:"no_open"`
}

// DefaultDateFormat is the date-prefix layout used when none is
// configured.
const DefaultDateFormat = "2006-01-02-15-04-05"

// defaultDatabasePaths are the known Voice Memos container locations,
// newest layout first. Relative to the home directory.
var defaultDatabasePaths = []string{
	"Library/Group Containers/group.com.apple.VoiceMemos.shared/Recordings/CloudRecordings.db",
	"Library/Containers/com.apple.VoiceMemos/Data/Library/Application Support/com.apple.voicememos/Recordings/CloudRecordings.db",
	"Library/Application Support/com.apple.voicememos/Recordings/CloudRecordings.db",
}

// Default returns the built-in configuration: discovered database path,
// "~/Voice Memos Export" destination, interactive mode, no date prefix.
func Default() *Config {
	return &Config{
		DatabasePath: DefaultDatabasePath(),
		ExportPath:   util.ExpandUser("~/Voice Memos Export"),
		DateFormat:   DefaultDateFormat,
	}
}

// DefaultDatabasePath returns the first Voice Memos database that
// exists among the known locations, or empty when none does.
func DefaultDatabasePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	for _, rel := range defaultDatabasePaths {
		p := filepath.Join(home, rel)
		if _, err := os.Stat(p); err == nil {
			return p
		}
	}
	return ""
}

// ConfigDir returns the memoex configuration directory (~/.memoex).
func ConfigDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("find home directory: %w", err)
	}
	return filepath.Join(home, ".memoex"), nil
}

// ConfigPath returns the default configuration file path.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// Load builds the effective configuration: defaults, then the config
// file when present, then environment overrides. An empty path loads
// the default config file location; a missing default file is not an
// error, a missing explicit one is.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		p, err := ConfigPath()
		if err != nil {
			return nil, err
		}
		path = p
	}

	if err := loadTOML(cfg, path); err != nil {
		if explicit || !os.IsNotExist(err) {
			return nil, err
		}
	}

	cfg.ApplyEnvOverrides()
	fillDefaults(cfg)
	return cfg, nil
}

// loadTOML merges the TOML file at path into cfg.
func loadTOML(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return err
		}
		return fmt.Errorf("read config file: %w", err)
	}
	if err := toml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config file %s: %w", path, err)
	}
	return nil
}

// ApplyEnvOverrides applies MEMOEX_* environment variables on top of
// the current values.
func (c *Config) ApplyEnvOverrides() {
	if v := os.Getenv("MEMOEX_DB_PATH"); v != "" {
		c.DatabasePath = v
	}
	if v := os.Getenv("MEMOEX_EXPORT_PATH"); v != "" {
		c.ExportPath = v
	}
	if v := os.Getenv("MEMOEX_DATE_IN_NAME"); v != "" {
		c.DateInName = v == "1" || v == "true" || v == "yes"
	}
	if v := os.Getenv("MEMOEX_DATE_FORMAT"); v != "" {
		c.DateFormat = v
	}
}

// fillDefaults backfills values a config file may have blanked and
// expands tildes in both paths.
func fillDefaults(c *Config) {
	if c.ExportPath == "" {
		c.ExportPath = "~/Voice Memos Export"
	}
	if c.DateFormat == "" {
		c.DateFormat = DefaultDateFormat
	}
	c.DatabasePath = util.ExpandUser(c.DatabasePath)
	c.ExportPath = util.ExpandUser(c.ExportPath)
}
