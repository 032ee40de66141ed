// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// selector.go - Raw-mode single-keystroke confirmation for memoex.
//
// The export engine asks for one keystroke per memo: Enter to export,
// Escape to skip. The read happens in raw terminal mode (no echo, no
// line buffering) and the terminal's prior mode is restored on every
// exit path. A process that exits with the terminal left raw corrupts
// the user's shell.

package cli

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Key codes accepted by the selector.
const (
	keyLineFeed = 0x0A // Enter in cbreak-style modes
	keyReturn   = 0x0D // Enter in raw mode (ICRNL off)
	keyEscape   = 0x1B
)

// KeySelector reads Export/Skip decisions from a terminal one raw
// keystroke at a time.
type KeySelector struct {
	in *os.File
}

// NewKeySelector returns a selector reading from stdin.
func NewKeySelector() *KeySelector {
	return &KeySelector{in: os.Stdin}
}

// Capture blocks until the user presses Enter (export) or Escape
// (skip) and reports the decision. All other keys are discarded
// silently. The terminal is in raw non-echoing mode only for the
// duration of the call; restoration is unconditional.
func (s *KeySelector) Capture() (bool, error) {
	fd := int(s.in.Fd())

	prior, err := term.MakeRaw(fd)
	if err != nil {
		return false, fmt.Errorf("enter raw terminal mode: %w", err)
	}
	defer term.Restore(fd, prior)

	return decodeDecision(s.in)
}

// decodeDecision reads single bytes from r until one maps to a
// decision: CR or LF confirm the export, ESC declines it. Anything
// else is discarded without feedback and the read repeats.
func decodeDecision(r io.Reader) (bool, error) {
	buf := make([]byte, 1)
	for {
		if _, err := r.Read(buf); err != nil {
			return false, fmt.Errorf("read keystroke: %w", err)
		}
		switch buf[0] {
		case keyLineFeed, keyReturn:
			return true, nil
		case keyEscape:
			return false, nil
		}
	}
}
