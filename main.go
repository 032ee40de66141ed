// memoex - Export audio files from the macOS Voice Memos app with
// readable filenames and correct file dates.
//
// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/jeranaias/memoex/internal/cli"
	"github.com/jeranaias/memoex/internal/config"
	"github.com/jeranaias/memoex/internal/export"
	"github.com/jeranaias/memoex/internal/memos"
	"github.com/jeranaias/memoex/internal/table"
)

// Version information (set at build time)
var (
	Version   = "1.0.0"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func main() {
	opts, err := cli.Parse(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		os.Exit(2)
	}
	if opts.ShowVersion {
		fmt.Printf("memoex %s (%s, built %s)\n", Version, GitCommit, BuildDate)
		return
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		fatal(err)
	}
	opts.Apply(cfg)

	if cfg.DatabasePath == "" {
		fatal(errors.New("no Voice Memos database found; pass -db-path"))
	}

	// The effective mode is computed once, up front: interactive only
	// when confirmation was requested and stdin can actually prompt.
	interactive := !cfg.ExportAll
	if interactive && !cli.IsTTY() {
		fmt.Fprintln(os.Stderr, cli.WarningStyle.Render(
			"Non-interactive environment detected, auto-switching to -all mode"))
		interactive = false
	}

	store, err := memos.Open(cfg.DatabasePath)
	if err != nil {
		fatal(err)
	}
	defer store.Close()

	records, err := store.Recordings(context.Background())
	if err != nil {
		fatal(err)
	}
	if len(records) == 0 {
		fmt.Println("No voice memos found.")
		return
	}

	if err := os.MkdirAll(cfg.ExportPath, 0755); err != nil {
		fatal(fmt.Errorf("create export folder: %w", err))
	}

	planner := export.NewPlanner(store.RecordingsDir(), cfg.ExportPath, export.Naming{
		DateInName: cfg.DateInName,
		DateFormat: cfg.DateFormat,
	})
	renderer := table.NewRenderer()

	var selector export.Selector
	if interactive {
		selector = cli.NewKeySelector()
	}
	engine := export.NewEngine(planner, renderer, selector, interactive, os.Stdout)

	fmt.Println()
	if interactive {
		fmt.Println(cli.DimStyle.Render(
			"Press ENTER to export the memo shown in the current row or ESC to go to next memo."))
		fmt.Println(cli.DimStyle.Render("Do not press other keys."))
		fmt.Println()
	}

	fmt.Println(renderer.Top())
	fmt.Println(renderer.Header())
	fmt.Println(renderer.Separator())

	if err := engine.Run(records); err != nil {
		fatal(err)
	}

	fmt.Println(renderer.Bottom())
	fmt.Println()
	fmt.Println(cli.SuccessStyle.Render(fmt.Sprintf("Done. Memos exported to: %s", cfg.ExportPath)))
	fmt.Println()

	if !cfg.NoOpen {
		if err := export.Reveal(cfg.ExportPath); err != nil {
			fmt.Fprintln(os.Stderr, cli.WarningStyle.Render(fmt.Sprintf("Warning: %v", err)))
		}
	}
}

func fatal(err error) {
	fmt.Fprintln(os.Stderr, cli.ErrorStyle.Render(fmt.Sprintf("Error: %v", err)))
	os.Exit(1)
}
