// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package memos

import (
	"math"
	"time"
)

// appleEpochOffset is the distance in seconds between the Unix epoch
// (1970-01-01 UTC) and the Apple reference date (2001-01-01 UTC) that
// ZDATE values count from.
const appleEpochOffset = 978307200.825232

// AppleTime converts a ZDATE value (seconds since the Apple reference
// date) into a time.Time in the process's local zone. Out-of-range
// inputs carry whatever overflow behavior the time package defines.
func AppleTime(v float64) time.Time {
	unix := v + appleEpochOffset
	sec, frac := math.Modf(unix)
	return time.Unix(int64(sec), int64(frac*float64(time.Second))).Local()
}
