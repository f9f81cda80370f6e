package dateutil

import "time"

// KeyFormat is the canonical day-granularity date form used as a
// collection key. It is the only form used for equality and lookup.
const KeyFormat = "2006-01-02"

// Key formats t as a canonical YYYY-MM-DD key.
func Key(t time.Time) string {
	return t.Format(KeyFormat)
}

// ParseKey parses a canonical YYYY-MM-DD key into a UTC midnight date.
func ParseKey(value string) (time.Time, error) {
	return time.ParseInLocation(KeyFormat, value, time.UTC)
}

// Day truncates t to its calendar day at midnight UTC.
func Day(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

func AddDays(t time.Time, days int) time.Time {
	return Day(t).AddDate(0, 0, days)
}

func StartOfMonth(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
}

func EndOfMonth(t time.Time) time.Time {
	return StartOfMonth(t).AddDate(0, 1, -1)
}

// StartOfWeek returns the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	return AddDays(t, -int(t.Weekday()))
}

// EndOfWeek returns the Saturday on or after t.
func EndOfWeek(t time.Time) time.Time {
	return AddDays(t, int(time.Saturday-t.Weekday()))
}

// DaysBetween returns every day from start through end inclusive.
// An empty slice is returned when end precedes start.
func DaysBetween(start, end time.Time) []time.Time {
	first, last := Day(start), Day(end)
	var days []time.Time
	for d := first; !d.After(last); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

func SameMonth(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month()
}

func SameYear(a, b time.Time) bool {
	return a.Year() == b.Year()
}

// IsFutureDay reports whether t falls on a calendar day strictly after
// now's day. A date on now's own day is not future.
func IsFutureDay(t, now time.Time) bool {
	return Day(t).After(Day(now))
}
