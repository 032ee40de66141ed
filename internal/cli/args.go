// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// args.go - Flag parsing and defaults resolution for memoex.

package cli

import (
	"flag"
	"fmt"
	"io"

	"github.com/jeranaias/memoex/internal/config"
	"github.com/jeranaias/memoex/internal/util"
)

// Options holds the parsed command-line flags along with which flags
// were explicitly set, so unset flags never clobber config-file or
// environment values.
type Options struct {
	DBPath      string
	ExportPath  string
	All         bool
	DateInName  bool
	DateFormat  string
	NoOpen      bool
	ConfigPath  string
	ShowVersion bool

	set map[string]bool
}

// Parse parses command-line arguments. Output (usage and errors) goes
// to errOut.
func Parse(args []string, errOut io.Writer) (*Options, error) {
	opts := &Options{set: make(map[string]bool)}

	fs := flag.NewFlagSet("memoex", flag.ContinueOnError)
	fs.SetOutput(errOut)
	fs.Usage = func() {
		fmt.Fprintln(errOut, "Usage: memoex [flags]")
		fmt.Fprintln(errOut)
		fmt.Fprintln(errOut, "Export audio files from the macOS Voice Memos app with readable")
		fmt.Fprintln(errOut, "filenames and correct file dates.")
		fmt.Fprintln(errOut)
		fs.PrintDefaults()
	}

	fs.StringVar(&opts.DBPath, "db-path", "", "path to the Voice Memos database (CloudRecordings.db)")
	fs.StringVar(&opts.DBPath, "d", "", "shorthand for -db-path")
	fs.StringVar(&opts.ExportPath, "export-path", "", "destination folder for exported memos")
	fs.StringVar(&opts.ExportPath, "e", "", "shorthand for -export-path")
	fs.BoolVar(&opts.All, "all", false, "export everything at once instead of step by step")
	fs.BoolVar(&opts.All, "a", false, "shorthand for -all")
	fs.BoolVar(&opts.DateInName, "date-in-name", false, "include the recording date in the file name")
	fs.StringVar(&opts.DateFormat, "date-in-name-format", config.DefaultDateFormat,
		"Go time layout for the date in the file name (with -date-in-name)")
	fs.BoolVar(&opts.NoOpen, "no-open", false, "do not open the export folder when done")
	fs.StringVar(&opts.ConfigPath, "config", "", "alternate config file (default ~/.memoex/config.toml)")
	fs.BoolVar(&opts.ShowVersion, "version", false, "print version and exit")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(errOut, "unexpected argument: %s\n", fs.Arg(0))
		fs.Usage()
		return nil, fmt.Errorf("unexpected argument: %s", fs.Arg(0))
	}

	fs.Visit(func(f *flag.Flag) {
		opts.set[f.Name] = true
	})

	return opts, nil
}

// Apply overlays explicitly set flags onto cfg. Flags win over config
// file and environment values; unset flags leave cfg untouched.
func (o *Options) Apply(cfg *config.Config) {
	if o.isSet("db-path", "d") {
		cfg.DatabasePath = util.ExpandUser(o.DBPath)
	}
	if o.isSet("export-path", "e") {
		cfg.ExportPath = util.ExpandUser(o.ExportPath)
	}
	if o.isSet("all", "a") {
		cfg.ExportAll = o.All
	}
	if o.isSet("date-in-name") {
		cfg.DateInName = o.DateInName
	}
	if o.isSet("date-in-name-format") {
		cfg.DateFormat = o.DateFormat
	}
	if o.isSet("no-open") {
		cfg.NoOpen = o.NoOpen
	}
}

func (o *Options) isSet(names ...string) bool {
	for _, n := range names {
		if o.set[n] {
			return true
		}
	}
	return false
}
