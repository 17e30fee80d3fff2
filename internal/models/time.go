package models

import "time"

// TimeLayout is the fixed storage format for every timestamp column. The
// layout sorts lexicographically in chronological order, which the handoff
// listing and audit trail rely on.
const TimeLayout = "2006-01-02 15:04:05"

// Timestamp formats t in the storage layout.
func Timestamp(t time.Time) string {
	return t.Format(TimeLayout)
}
