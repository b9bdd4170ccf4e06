package utils

import "time"

// Day is the length of a report window. Calendar days in UTC have no DST
// transitions, so a fixed 24h is exact.
const Day = 24 * time.Hour

// DayStart truncates a Unix timestamp to the UTC midnight that begins its day.
func DayStart(unix int64) time.Time {
	t := time.Unix(unix, 0).UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DayEnd returns the instant 24h after start.
func DayEnd(start time.Time) time.Time {
	return start.Add(Day)
}

// HumanDay formats a day as "October 15th, 2026".
func HumanDay(t time.Time) string {
	t = t.UTC()
	return t.Month().String() + " " + Ordinal(t.Day()) + ", " + t.Format("2006")
}
