// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli provides the memoex command-line front end: flag parsing,
// terminal detection, shared output styles, and the raw-mode keystroke
// selector used for per-memo confirmation.
package cli
