// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package export

import (
	"fmt"
	"math"
	"path/filepath"
	"strings"
	"time"

	"github.com/jeranaias/memoex/internal/memos"
)

// dateDisplayLayout is the Date column format.
const dateDisplayLayout = "02.01.2006 15:04:05"

// fallbackLabel replaces labels that look like auto-generated ISO-8601
// timestamps, so the date does not appear twice in a date-in-name
// filename.
const fallbackLabel = "VoiceMemo"

// Naming controls how destination filenames are built.
type Naming struct {
	// DateInName prefixes the filename with the formatted recording date.
	DateInName bool
	// DateFormat is the Go time layout for that prefix.
	DateFormat string
}

// Plan is the derived per-record export decision input: computed paths
// and display strings for exactly one memo. DestPath is empty iff
// SourcePath is empty.
type Plan struct {
	Timestamp       time.Time
	DateDisplay     string
	DurationDisplay string
	Label           string
	SourcePath      string
	DestPath        string
}

// Planner derives export plans from memo records.
type Planner struct {
	recordingsDir string
	exportDir     string
	naming        Naming
}

// NewPlanner returns a Planner resolving source paths against
// recordingsDir and destination paths against exportDir.
func NewPlanner(recordingsDir, exportDir string, naming Naming) *Planner {
	return &Planner{
		recordingsDir: recordingsDir,
		exportDir:     exportDir,
		naming:        naming,
	}
}

// ExportDir returns the destination folder plans point into.
func (p *Planner) ExportDir() string {
	return p.exportDir
}

// Plan computes the export plan for one record. Records without an
// audio file yield a plan with empty SourcePath and DestPath.
//
// Destination filenames are not deduplicated: two records whose labels
// sanitize to the same name will overwrite each other, matching the
// Voice Memos export behavior this tool replaces.
func (p *Planner) Plan(rec memos.Record) Plan {
	ts := memos.AppleTime(rec.Date)

	label := sanitizeLabel(rec.Label)
	if strings.Contains(label, "T") && strings.Contains(label, "Z") {
		// Looks like an auto-generated timestamp label.
		label = fallbackLabel
	}

	plan := Plan{
		Timestamp:       ts,
		DateDisplay:     ts.Format(dateDisplayLayout),
		DurationDisplay: formatDuration(rec.Duration),
		Label:           label,
	}

	if rec.Path == "" {
		return plan
	}

	plan.SourcePath = filepath.Join(p.recordingsDir, rec.Path)

	name := label + filepath.Ext(rec.Path)
	if p.naming.DateInName {
		name = ts.Format(p.naming.DateFormat) + "_" + name
	}
	plan.DestPath = filepath.Join(p.exportDir, name)

	return plan
}

// sanitizeLabel keeps only printable 7-bit characters and maps path
// separators to underscores.
func sanitizeLabel(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r == '/':
			b.WriteByte('_')
		case r >= 0x20 && r < 0x7F:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// formatDuration renders a duration in seconds as H:MM:SS.ff with two
// fractional digits, zero-padding the hours when the result would be
// ten characters wide.
func formatDuration(seconds float64) string {
	if seconds < 0 || math.IsNaN(seconds) {
		seconds = 0
	}

	whole := int64(seconds)
	h := whole / 3600
	m := whole / 60 % 60
	sec := seconds - float64(h*3600+m*60)
	// Truncate, not round, so 59.999s cannot display as 60.00.
	sec = math.Floor(sec*100) / 100

	out := fmt.Sprintf("%d:%02d:%05.2f", h, m, sec)
	if len(out) == 10 {
		out = "0" + out
	}
	return out
}
