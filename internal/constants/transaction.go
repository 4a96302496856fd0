package constants

import (
	"strings"
	"time"
)

const (
	MaxNameLen = 100

	// Date Layout
	DateFormat     = "2006-01-02"
	DateTimeFormat = "2006-01-02 15:04"

	// Shown for transactions whose category was deleted
	Uncategorized = "Uncategorized"

	DefaultRecentLimit = 5
)

// ParseDate reads a DateFormat value as a calendar day in local time.
func ParseDate(s string) (time.Time, error) {
	return time.ParseInLocation(DateFormat, strings.TrimSpace(s), time.Local)
}
