// Package dates provides calendar-day values and the comparisons and
// arithmetic the round-trip picker needs. A Date carries no time-of-day and
// no location; two instants on the same local calendar day are the same Date.
package dates

import (
	"fmt"
	"strings"
	"time"
)

// ISOLayout is the textual form used by Parse and Date.String.
const ISOLayout = "2006-01-02"

// Date is a year/month/day triple. The zero value is "no date".
type Date struct {
	Year  int
	Month time.Month
	Day   int
}

// New returns the normalized date for the given fields. Overflowing days and
// months roll over the way time.Date does (February 30 becomes March 1 or 2).
func New(year int, month time.Month, day int) Date {
	return FromTime(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// FromTime returns the calendar day of t in t's own location.
func FromTime(t time.Time) Date {
	y, m, d := t.Date()
	return Date{Year: y, Month: m, Day: d}
}

// Today returns the local calendar day of now.
func Today(now time.Time) Date {
	return FromTime(now.Local())
}

// Parse reads an ISO date such as "2024-02-10".
func Parse(s string) (Date, error) {
	t, err := time.Parse(ISOLayout, strings.TrimSpace(s))
	if err != nil {
		return Date{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return FromTime(t), nil
}

// IsZero reports whether d is the absent date.
func (d Date) IsZero() bool {
	return d == Date{}
}

// Time returns midnight UTC of d.
func (d Date) Time() time.Time {
	return time.Date(d.Year, d.Month, d.Day, 0, 0, 0, 0, time.UTC)
}

// String renders d in ISO form, or the empty string when d is zero.
func (d Date) String() string {
	if d.IsZero() {
		return ""
	}
	return d.Time().Format(ISOLayout)
}

// MarshalText implements encoding.TextMarshaler.
func (d Date) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Date) UnmarshalText(b []byte) error {
	if len(b) == 0 {
		*d = Date{}
		return nil
	}
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// compare orders a and b lexicographically by (year, month, day).
func compare(a, b Date) int {
	switch {
	case a.Year != b.Year:
		if a.Year < b.Year {
			return -1
		}
		return 1
	case a.Month != b.Month:
		if a.Month < b.Month {
			return -1
		}
		return 1
	case a.Day != b.Day:
		if a.Day < b.Day {
			return -1
		}
		return 1
	}
	return 0
}

// IsEarlier reports whether a falls on a calendar day before b.
func IsEarlier(a, b Date) bool {
	return compare(a, b) < 0
}

// IsLater reports whether a falls on a calendar day after b.
func IsLater(a, b Date) bool {
	return compare(a, b) > 0
}

// IsSameDay reports whether a and b are the same calendar day. An absent date
// is never the same day as anything.
func IsSameDay(a, b Date) bool {
	if a.IsZero() || b.IsZero() {
		return false
	}
	return compare(a, b) == 0
}

// dayIndex counts days since the Unix epoch in UTC, so DST never skews it.
func dayIndex(d Date) int64 {
	return d.Time().Unix() / 86400
}

// DaysBetween is the signed number of days from a to b.
func DaysBetween(a, b Date) int {
	return int(dayIndex(b) - dayIndex(a))
}

// AddDays returns the date n days after d; n may be negative.
func AddDays(d Date, n int) Date {
	return FromTime(d.Time().AddDate(0, 0, n))
}

// ShiftMonth anchors d to the first of its month and moves it n months.
func ShiftMonth(d Date, n int) Date {
	first := time.Date(d.Year, d.Month, 1, 0, 0, 0, 0, time.UTC)
	return FromTime(first.AddDate(0, n, 0))
}

// DaysInMonth returns the number of days of month in year.
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// MonthStart returns the first day of d's month.
func MonthStart(d Date) Date {
	return Date{Year: d.Year, Month: d.Month, Day: 1}
}

// Weekday returns the day of the week d falls on.
func (d Date) Weekday() time.Weekday {
	return d.Time().Weekday()
}

// MonthStartWeekday returns the weekday of the first of month in year.
func MonthStartWeekday(year int, month time.Month) time.Weekday {
	return New(year, month, 1).Weekday()
}

// IsPast reports whether day of the month shown by calendar is before
// ref. Only the year and month of calendar are used.
func IsPast(day int, calendar, ref Date) bool {
	return IsEarlier(Date{Year: calendar.Year, Month: calendar.Month, Day: day}, ref)
}
