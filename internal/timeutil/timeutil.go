package timeutil

import "time"

// DateLayout defines the canonical date format (YYYY-MM-DD).
const DateLayout = "2006-01-02"

// ParseDate parses a YYYY-MM-DD date string.
func ParseDate(value string) (time.Time, error) {
	return time.Parse(DateLayout, value)
}

// FormatDate formats a time as YYYY-MM-DD in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// Today returns the calendar date of now in loc; a nil loc means UTC.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	local := now.In(loc)
	return time.Date(local.Year(), local.Month(), local.Day(), 0, 0, 0, 0, loc)
}

// Window returns the YYYY-MM-DD bounds of [today+fromDays, today+toDays].
func Window(now time.Time, loc *time.Location, fromDays, toDays int) (string, string) {
	today := Today(now, loc)
	return FormatDate(today.AddDate(0, 0, fromDays)), FormatDate(today.AddDate(0, 0, toDays))
}
