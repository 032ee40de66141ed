// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package memos provides read-only access to the Voice Memos recordings
// database (CloudRecordings.db).
//
// The store opens the SQLite database with a query-only connection and
// returns memo records ordered by their recording timestamp. It also
// owns the conversion between the database's Apple-reference-date
// timestamps and time.Time values.
//
// The database is never written to.
package memos
