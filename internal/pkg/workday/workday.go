package workday

import (
	"time"
)

// DateLayout is the ISO date format used on the wire and as holiday keys.
const DateLayout = "2006-01-02"

// Date normalizes t to midnight UTC of the calendar day t falls on in its own location.
// All calendar arithmetic in this package works on normalized dates.
func Date(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Today returns the current calendar day as seen in loc.
func Today(now time.Time, loc *time.Location) time.Time {
	if loc == nil {
		loc = time.UTC
	}
	return Date(now.In(loc))
}

// Parse parses a YYYY-MM-DD string into a normalized date.
func Parse(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// Key formats a date as YYYY-MM-DD.
func Key(t time.Time) string {
	return t.Format(DateLayout)
}

// IsWeekend reports whether t is a Saturday or Sunday.
func IsWeekend(t time.Time) bool {
	wd := t.Weekday()
	return wd == time.Saturday || wd == time.Sunday
}

// Each calls fn for every calendar day from start to end inclusive, ascending.
// Nothing is called when end is before start.
func Each(start, end time.Time, fn func(day time.Time)) {
	start, end = Date(start), Date(end)
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		fn(d)
	}
}

// Days returns every calendar day from start to end inclusive.
func Days(start, end time.Time) []time.Time {
	var days []time.Time
	Each(start, end, func(day time.Time) {
		days = append(days, day)
	})
	return days
}

// MonthRange returns the first and last day of the given month.
func MonthRange(year int, month time.Month) (time.Time, time.Time) {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
	return first, first.AddDate(0, 1, -1)
}

// Later returns the later of two dates.
func Later(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

// Earlier returns the earlier of two dates.
func Earlier(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}

// HolidaySet is a lookup of holiday names keyed by date.
type HolidaySet map[string]string

// Add registers a holiday on the given date.
func (h HolidaySet) Add(date time.Time, name string) {
	h[Key(Date(date))] = name
}

// Contains reports whether date is a registered holiday.
func (h HolidaySet) Contains(date time.Time) bool {
	_, ok := h[Key(Date(date))]
	return ok
}

// Name returns the holiday name for date, or "" when date is not a holiday.
func (h HolidaySet) Name(date time.Time) string {
	return h[Key(Date(date))]
}
