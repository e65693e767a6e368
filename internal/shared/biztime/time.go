// Package biztime provides utilities for business timezone calculations.
// All storage and transport use UTC. Business timezone is only used for
// calculating calendar boundaries (day, year) and for reading user-entered
// dates and clock times.
//
// Date-only values (production dates, transfer dates, report bounds) are
// represented as time.Time at midnight UTC of that calendar day.
package biztime

import (
	"fmt"
	"sync"
	"time"
	_ "time/tzdata"
)

const (
	// DefaultTimezone is the default business timezone.
	DefaultTimezone = "America/Sao_Paulo"

	DateLayout  = "2006-01-02"
	ClockLayout = "15:04"
)

var (
	bizLocation     *time.Location
	bizLocationOnce sync.Once
	initErr         error
)

// Init initializes the business timezone. Should be called once at startup.
// If tz is empty, defaults to America/Sao_Paulo.
func Init(tz string) error {
	bizLocationOnce.Do(func() {
		if tz == "" {
			tz = DefaultTimezone
		}
		bizLocation, initErr = time.LoadLocation(tz)
	})
	return initErr
}

// Location returns the business timezone location, initializing the
// default one on first use.
func Location() *time.Location {
	if bizLocation == nil {
		if err := Init(""); err != nil {
			panic(fmt.Sprintf("biztime: failed to auto-initialize with default timezone: %v", err))
		}
	}
	return bizLocation
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// DateOf returns the business-timezone calendar day of t as a date value.
func DateOf(t time.Time) time.Time {
	bizTime := t.In(Location())
	return time.Date(bizTime.Year(), bizTime.Month(), bizTime.Day(), 0, 0, 0, 0, time.UTC)
}

// Today returns the current business-timezone calendar day.
func Today() time.Time {
	return DateOf(time.Now())
}

// StartOfYear returns January 1st of the given date's year as a date value.
func StartOfYear(date time.Time) time.Time {
	return time.Date(date.Year(), time.January, 1, 0, 0, 0, 0, time.UTC)
}

// StartOfDayUTC returns local midnight of the given calendar day, converted to UTC.
func StartOfDayUTC(date time.Time) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, Location()).UTC()
}

// DayRangeUTC converts an inclusive calendar-day range into a half-open UTC
// instant range [from, to) suitable for timestamp columns.
func DayRangeUTC(start, end time.Time) (from, to time.Time) {
	from = StartOfDayUTC(start)
	next := time.Date(end.Year(), end.Month(), end.Day()+1, 0, 0, 0, 0, time.UTC)
	to = StartOfDayUTC(next)
	return from, to
}

// StartOfYearUTC returns the start of year in business timezone, converted to UTC.
func StartOfYearUTC(year int) time.Time {
	return time.Date(year, 1, 1, 0, 0, 0, 0, Location()).UTC()
}

// ParseDate parses a YYYY-MM-DD string into a date value.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format %q: %w", s, err)
	}
	return t, nil
}

// CombineDateTime reads a calendar day and an HH:MM clock time as business
// timezone wall time and returns the UTC instant.
func CombineDateTime(dateStr, clock string) (time.Time, error) {
	date, err := ParseDate(dateStr)
	if err != nil {
		return time.Time{}, err
	}
	hm, err := time.Parse(ClockLayout, clock)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid time format %q: %w", clock, err)
	}
	local := time.Date(date.Year(), date.Month(), date.Day(), hm.Hour(), hm.Minute(), 0, 0, Location())
	return local.UTC(), nil
}

// SplitDateTime is the inverse of CombineDateTime.
func SplitDateTime(t time.Time) (date string, clock string) {
	bizTime := t.In(Location())
	return bizTime.Format(DateLayout), bizTime.Format(ClockLayout)
}

// FormatDate formats a date value as YYYY-MM-DD.
func FormatDate(date time.Time) string {
	return date.Format(DateLayout)
}

// FormatInBizTimezone formats a UTC time as a string in business timezone.
func FormatInBizTimezone(t time.Time, layout string) string {
	return t.In(Location()).Format(layout)
}
