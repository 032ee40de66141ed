// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// styles.go - Shared output styling for memoex.
//
// Colors are automatically disabled for non-TTY output and when
// NO_COLOR is set; FORCE_COLOR overrides detection.

package cli

import (
	"github.com/charmbracelet/lipgloss"
)

// init configures lipgloss color profile based on terminal capabilities.
func init() {
	lipgloss.SetColorProfile(GetColorProfile())
}

var (
	// SuccessStyle is used for the final summary line.
	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("42")). // Green
			Bold(true)

	// ErrorStyle is used for fatal error messages.
	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")). // Red
			Bold(true)

	// WarningStyle is used for diagnostics such as the automatic
	// switch to bulk mode on non-interactive input.
	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")). // Yellow/orange
			Bold(true)

	// DimStyle is used for the interactive help text.
	DimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")) // Gray
)
