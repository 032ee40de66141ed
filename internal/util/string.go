// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/mattn/go-runewidth"
)

// UNICODE: Display-width-aware helpers. Widths are measured in terminal
// cells via go-runewidth, not bytes or runes, so double-width (CJK)
// characters line up correctly in fixed-width table columns.

// StringWidth returns the display width of a string in terminal cells.
func StringWidth(s string) int {
	return runewidth.StringWidth(s)
}

// PadRight left-justifies s within width cells, padding with spaces.
// Strings wider than width are returned unchanged.
func PadRight(s string, width int) string {
	return runewidth.FillRight(s, width)
}

// TruncateLeft truncates s from the left to at most width cells,
// prefixing "..." when truncation occurs. The rightmost portion of the
// string is preserved, which keeps the most specific segment of a path
// visible.
func TruncateLeft(s string, width int) string {
	w := runewidth.StringWidth(s)
	if w <= width {
		return s
	}
	return runewidth.TruncateLeft(s, w-(width-3), "...")
}

// TailEllipsis keeps the rightmost keep cells of s behind a "..."
// prefix. Unlike TruncateLeft it always marks the value, even when it
// would fit unprefixed.
func TailEllipsis(s string, keep int) string {
	w := runewidth.StringWidth(s)
	if w <= keep {
		return "..." + s
	}
	return runewidth.TruncateLeft(s, w-keep, "...")
}

// ExpandUser expands a leading "~" or "~/" in path to the current
// user's home directory. Paths without a tilde prefix are returned
// unchanged, as is the original path when the home directory cannot be
// determined.
func ExpandUser(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	if path == "~" {
		return home
	}
	return filepath.Join(home, path[2:])
}
