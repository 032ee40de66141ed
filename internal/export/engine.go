// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"io"
	"os"

	"github.com/jeranaias/memoex/internal/memos"
	"github.com/jeranaias/memoex/internal/table"
)

// Status values shown in the table's Status column.
const (
	StatusNoFile   = "No File"
	StatusPending  = "Export?"
	StatusExported = "Exported!"
	StatusSkipped  = "Not Exported"
)

// Selector supplies the user's per-memo decision: true to export,
// false to skip. Capture blocks until a decision is made.
type Selector interface {
	Capture() (bool, error)
}

// Engine processes memo records one at a time: plan, render, decide,
// copy. Records are handled strictly in sequence; no two exports ever
// run concurrently.
type Engine struct {
	planner     *Planner
	renderer    *table.Renderer
	selector    Selector
	interactive bool
	out         io.Writer
}

// NewEngine wires an engine. selector may be nil when interactive is
// false; it is never consulted in bulk mode.
func NewEngine(planner *Planner, renderer *table.Renderer, selector Selector, interactive bool, out io.Writer) *Engine {
	return &Engine{
		planner:     planner,
		renderer:    renderer,
		selector:    selector,
		interactive: interactive,
		out:         out,
	}
}

// Run processes every record in order, emitting one finalized table
// row per record. A copy or timestamp failure aborts the run.
func (e *Engine) Run(records []memos.Record) error {
	for _, rec := range records {
		if err := e.processRecord(rec); err != nil {
			return err
		}
	}
	return nil
}

func (e *Engine) processRecord(rec memos.Record) error {
	plan := e.planner.Plan(rec)

	if plan.SourcePath == "" {
		e.finalRow(plan, StatusNoFile)
		return nil
	}

	accepted := true
	if e.interactive {
		// Pending row ends in "\r" so the finalized row overwrites it
		// on the same terminal line.
		fmt.Fprint(e.out, e.renderer.Row(e.cells(plan, StatusPending)), "\r")

		var err error
		accepted, err = e.selector.Capture()
		if err != nil {
			return err
		}
	}

	if !accepted {
		e.finalRow(plan, StatusSkipped)
		return nil
	}

	if err := copyFile(plan.SourcePath, plan.DestPath); err != nil {
		return fmt.Errorf("export %s: %w", plan.SourcePath, err)
	}
	if err := os.Chtimes(plan.DestPath, plan.Timestamp, plan.Timestamp); err != nil {
		return fmt.Errorf("set file times on %s: %w", plan.DestPath, err)
	}

	e.finalRow(plan, StatusExported)
	return nil
}

func (e *Engine) finalRow(plan Plan, status string) {
	fmt.Fprintln(e.out, e.renderer.Row(e.cells(plan, status)))
}

func (e *Engine) cells(plan Plan, status string) [table.NumColumns]string {
	return [table.NumColumns]string{
		plan.DateDisplay,
		plan.DurationDisplay,
		plan.SourcePath,
		plan.DestPath,
		status,
	}
}

// copyFile copies the bytes at src to dst, overwriting any existing
// file at dst.
func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.Create(dst)
	if err != nil {
		return err
	}
	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
