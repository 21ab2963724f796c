// Package planner implements the plan-building core: goal selection,
// the weekly availability template with automatic conflict avoidance,
// blackout dates, and the expansion of a recurring template into a
// concrete dated session calendar.
//
// The package is a pure library: no I/O, no clocks, no timezones. All
// scheduling math runs on calendar dates (year/month/day) so that a
// plan expanded on one machine is identical on any other.
package planner

import (
	"fmt"
	"time"
)

// Date is a pure calendar date with no time-of-day and no timezone.
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// NewDate normalizes its arguments the same way time.Date does, so
// NewDate(2024, time.January, 32) yields 2024-02-01.
func NewDate(year int, month time.Month, day int) Date {
	t := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// DateOf truncates a time.Time to its calendar date in the value's
// own location. This is the only place a timezone is consulted.
func DateOf(t time.Time) Date {
	return Date{Year: t.Year(), Month: t.Month(), Day: t.Day()}
}

// ParseDate parses "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return DateOf(t), nil
}

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, int(d.Month), d.Day)
}

// Time converts the date to a UTC midnight instant. Used only at the
// storage boundary; scheduling math never goes through time.Time.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// IsZero reports whether d is the zero Date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// AddDays returns the date n days after d (n may be negative).
func (d Date) AddDays(n int) Date {
	return DateOf(d.Time().AddDate(0, 0, n))
}

// DaysBetween returns the number of days from a to b (negative when b
// precedes a). Both dates are anchored at UTC midnight so the result
// is exact regardless of DST rules anywhere.
func DaysBetween(a, b Date) int {
	return int(b.Time().Sub(a.Time()) / (24 * time.Hour))
}

// ISOWeekday returns the weekday with Monday=1 .. Sunday=7.
func (d Date) ISOWeekday() int {
	wd := int(d.Time().Weekday())
	if wd == 0 {
		return 7
	}
	return wd
}

// MondayOnOrBefore returns the Monday of the week containing d.
func (d Date) MondayOnOrBefore() Date {
	return d.AddDays(-(d.ISOWeekday() - 1))
}

// Before reports whether d is strictly earlier than other.
func (d Date) Before(other Date) bool {
	if d.Year != other.Year {
		return d.Year < other.Year
	}
	if d.Month != other.Month {
		return d.Month < other.Month
	}
	return d.Day < other.Day
}
