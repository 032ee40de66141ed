// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package export plans and performs the export of voice memos.
//
// For each memo record the Planner derives an export plan: the local
// recording timestamp, display strings for the table, and the source
// and destination paths. The Engine then drives each plan through a
// small state machine:
//
//	Planned → NoFile                      (no audio on disk)
//	Planned → PendingConfirmation → {Exported | Skipped}  (interactive)
//	Planned → Exported                    (bulk mode)
//
// Exporting copies the audio bytes and sets the destination file's
// access and modification times to the recording timestamp. Copy and
// timestamp failures abort the run; partial-export recovery is out of
// scope for a one-shot tool.
package export
