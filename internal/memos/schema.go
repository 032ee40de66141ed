// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package memos

// The Voice Memos app stores cloud recording metadata in the
// ZCLOUDRECORDING table of CloudRecordings.db (a Core Data store, hence
// the Z-prefixed names). Only four columns matter for exporting:
//
//	ZDATE        REAL  recording time, seconds since the Apple reference date
//	ZDURATION    REAL  length in seconds
//	ZCUSTOMLABEL TEXT  user-assigned name (may be NULL)
//	ZPATH        TEXT  audio file path relative to the Recordings folder,
//	                   NULL when the audio is not on disk
const recordingsQuery = `
SELECT ZDATE, ZDURATION, ZCUSTOMLABEL, ZPATH
FROM ZCLOUDRECORDING
ORDER BY ZDATE`
