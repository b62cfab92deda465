// Package calendar holds the calendar-day helpers used by the booking views.
// Days are interpreted in the location of the first argument, so two
// instants on the same wall-clock day compare equal regardless of time of
// day.
package calendar

import (
	"fmt"
	"time"
)

// DaysPerWeek is the number of columns in the week view.
const DaysPerWeek = 7

// DateLayout is the wire format of calendar days in query strings.
const DateLayout = "2006-01-02"

// SameDay reports whether a and b fall on the same calendar day in a's location.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.In(a.Location()).Date()
	return ay == by && am == bm && ad == bd
}

// StartOfDay truncates t to midnight in its own location.
func StartOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns midnight of the Sunday on or before t.
func StartOfWeek(t time.Time) time.Time {
	day := StartOfDay(t)
	return day.AddDate(0, 0, -int(day.Weekday()))
}

// EndOfWeek returns the last instant of the Saturday on or after t.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, DaysPerWeek).Add(-time.Nanosecond)
}

// AddWeeks moves t by n weeks; n may be negative.
func AddWeeks(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n*DaysPerWeek)
}

// WeekDays lists the seven days of the week containing t, Sunday first.
func WeekDays(t time.Time) []time.Time {
	start := StartOfWeek(t)
	days := make([]time.Time, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		days = append(days, start.AddDate(0, 0, i))
	}
	return days
}

// ParseDay parses a YYYY-MM-DD value as midnight in loc.
func ParseDay(value string, loc *time.Location) (time.Time, error) {
	if loc == nil {
		loc = time.UTC
	}
	day, err := time.ParseInLocation(DateLayout, value, loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse day %q: %w", value, err)
	}
	return day, nil
}

// FormatLong renders t like "March 1st, 2024".
func FormatLong(t time.Time) string {
	return fmt.Sprintf("%s %d%s, %d", t.Month(), t.Day(), ordinalSuffix(t.Day()), t.Year())
}

func ordinalSuffix(day int) string {
	if day%100 >= 11 && day%100 <= 13 {
		return "th"
	}
	switch day % 10 {
	case 1:
		return "st"
	case 2:
		return "nd"
	case 3:
		return "rd"
	}
	return "th"
}
