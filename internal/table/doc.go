// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package table renders the fixed-width box-drawing table memoex prints
// one row per voice memo into.
//
// The table has five columns (Date, Duration, Old Path, New Path,
// Status) with fixed character widths. Cells that fit are left-justified
// and padded; overlong cells are truncated from the left with a "..."
// prefix so the rightmost (most specific) part of a path stays visible.
// Every rendered row therefore has the same display width regardless of
// cell content.
package table
