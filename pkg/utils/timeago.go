package utils

import (
	"fmt"
	"time"
)

const timeLayout = "2006-01-02 15:04:05"

// TimeAgo converts a stored timestamp into a human-readable relative label.
// Malformed timestamps are returned verbatim rather than failing the view.
func TimeAgo(timestamp string, now time.Time) string {
	t, err := time.ParseInLocation(timeLayout, timestamp, now.Location())
	if err != nil {
		return timestamp
	}

	diff := now.Sub(t)
	days := int(diff.Hours() / 24)

	switch {
	case days == 1:
		return "1 day ago"
	case days > 0 && days < 30:
		return fmt.Sprintf("%d days ago", days)
	case days >= 30:
		return fmt.Sprintf("%d %s ago", days/30, plural("month", days/30))
	case diff >= time.Hour:
		hours := int(diff.Hours())
		return fmt.Sprintf("%d %s ago", hours, plural("hour", hours))
	case diff >= time.Minute:
		minutes := int(diff.Minutes())
		return fmt.Sprintf("%d %s ago", minutes, plural("minute", minutes))
	default:
		return "Just now"
	}
}

func plural(unit string, n int) string {
	if n > 1 {
		return unit + "s"
	}
	return unit
}
