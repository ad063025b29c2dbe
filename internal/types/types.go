// Package types defines the core value types.
package types

import (
	"strings"
	"time"
)

// DateLayout is the canonical textual form of a date.
const DateLayout = "2006-01-02"

// TimeLayout is the canonical textual form of a time.
const TimeLayout = "2006-01-02 15:04:05"

// Date is a calendar date. The underlying time is always midnight UTC, so dates
// may be compared with ==.
type Date time.Time

// NewDate returns the date for the given year, month, and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date(time.Date(year, month, day, 0, 0, 0, 0, time.UTC))
}

// DateOf returns the date of the given time in its own location.
func DateOf(t time.Time) Date {
	year, month, day := t.Date()
	return NewDate(year, month, day)
}

// ParseDate parses a date in the canonical layout.
func ParseDate(s string) (date Date, err error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return
	}
	date = DateOf(t)
	return
}

// Time returns the date as midnight UTC.
func (date Date) Time() time.Time {
	return time.Time(date)
}

func (date Date) String() string {
	return time.Time(date).Format(DateLayout)
}

// IsZero is true for the zero date, which is never produced by parsing.
func (date Date) IsZero() bool {
	return time.Time(date).IsZero()
}

// Before is true if date is strictly earlier than other.
func (date Date) Before(other Date) bool {
	return time.Time(date).Before(time.Time(other))
}

// DateRangeSeparator separates the endpoints of a textual date range.
const DateRangeSeparator = ".."

// DateRange is an inclusive range of dates.
type DateRange struct {
	From Date
	To   Date
}

func (r DateRange) String() string {
	return r.From.String() + DateRangeSeparator + r.To.String()
}

// ParseDateRange parses a range of the form 2010-01-12..2011-01-12.
func ParseDateRange(s string) (r DateRange, err error) {
	from, to, ok := strings.Cut(s, DateRangeSeparator)
	if !ok {
		err = NewError("types.invalidDateRange", "value", s)
		return
	}
	r.From, err = ParseDate(strings.TrimSpace(from))
	if err != nil {
		return
	}
	r.To, err = ParseDate(strings.TrimSpace(to))
	return
}
