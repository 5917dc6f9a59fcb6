package models

import (
	"time"
)

// Now returns the current time in UTC
func Now() time.Time {
	return time.Now().UTC()
}

// FormatTime formats a time.Time according to RFC3339
func FormatTime(t time.Time) string {
	return t.Format(time.RFC3339)
}

// ParseTime parses a string in RFC3339 format to time.Time
func ParseTime(s string) (time.Time, error) {
	return time.Parse(time.RFC3339, s)
}

// DisplayDateTime formats a timestamp the way the dashboards and the
// report exporter show it: "dd/mm/yy, hh:mm:ss".
func DisplayDateTime(t time.Time) string {
	return t.Format("02/01/06, 15:04:05")
}

// DisplayDate is the day portion of DisplayDateTime.
func DisplayDate(t time.Time) string {
	return t.Format("02/01/06")
}
