// Package datemath provides pure day-granularity calendar arithmetic.
// All functions operate in UTC on the Gregorian calendar with Sunday as the
// first day of the week, and all returned values are UTC midnights.
package datemath

import "time"

// StartOfDay truncates t to UTC midnight of its calendar day.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// FromUnix returns the calendar day containing the given epoch timestamp.
func FromUnix(sec int64) time.Time {
	return StartOfDay(time.Unix(sec, 0))
}

// WeekdayIndex returns 0 for Sunday through 6 for Saturday.
func WeekdayIndex(t time.Time) int {
	return int(t.UTC().Weekday())
}

// StartOfWeek returns the Sunday on or before t, truncated to day.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return AddDays(-WeekdayIndex(day), day)
}

// AddDays offsets t by n calendar days (n may be negative) and truncates to
// day. AddDate handles month, year and leap-year boundaries.
func AddDays(n int, t time.Time) time.Time {
	return StartOfDay(t).AddDate(0, 0, n)
}

// Month returns the calendar month of t, 1 through 12.
func Month(t time.Time) int {
	return int(t.UTC().Month())
}

// Year returns the calendar year of t.
func Year(t time.Time) int {
	return t.UTC().Year()
}
