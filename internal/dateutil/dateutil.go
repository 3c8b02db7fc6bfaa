// Package dateutil provides date parsing, comparison and pattern formatting helpers.
package dateutil

import (
	"errors"
	"strings"
	"time"

	"github.com/ncruces/go-strftime"
)

// ErrInvalidDateFormat is returned for dates that are neither YYYY-MM-DD nor a known keyword.
var ErrInvalidDateFormat = errors.New("date must be in YYYY-MM-DD format, a weekday name, or today/tomorrow/yesterday")

var weekdayMap = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
}

// Print formats t with a strftime pattern such as "%a, %b %d" or "%I:%M %p".
func Print(pattern string, t time.Time) string {
	return strftime.Format(pattern, t)
}

// TruncateToDay returns t with time set to midnight.
func TruncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// At returns the calendar day of date at hour:minute, in date's location.
func At(date time.Time, hour, minute int) time.Time {
	return time.Date(date.Year(), date.Month(), date.Day(), hour, minute, 0, 0, date.Location())
}

// TodayAt returns hour:minute on now's calendar day.
func TodayAt(now time.Time, hour, minute int) time.Time {
	return At(now, hour, minute)
}

// SameDay reports whether a and b fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}

// IsToday reports whether t is on now's calendar day.
func IsToday(t, now time.Time) bool {
	return SameDay(t, now)
}

// IsTomorrow reports whether t is on the day after now.
func IsTomorrow(t, now time.Time) bool {
	return SameDay(t, TruncateToDay(now).AddDate(0, 0, 1))
}

// IsYesterday reports whether t is on the day before now.
func IsYesterday(t, now time.Time) bool {
	return SameDay(t, TruncateToDay(now).AddDate(0, 0, -1))
}

// IsBeforeNow reports whether t is strictly before now.
func IsBeforeNow(t, now time.Time) bool {
	return t.Before(now)
}

// IsAfterNow reports whether t is strictly after now.
func IsAfterNow(t, now time.Time) bool {
	return t.After(now)
}

// ParseDate parses a date string in YYYY-MM-DD format.
// If the string is empty, returns today's date.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		return TruncateToDay(time.Now()), nil
	}
	t, err := time.ParseInLocation("2006-01-02", s, time.Local)
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// ParseDay parses a day relative to now:
//   - "" or "today", "tomorrow", "yesterday"
//   - a weekday name: the next occurrence, today included
//   - an absolute YYYY-MM-DD date
//
// Input is case-insensitive.
func ParseDay(s string, now time.Time) (time.Time, error) {
	today := TruncateToDay(now)
	input := strings.ToLower(strings.TrimSpace(s))

	switch input {
	case "", "today":
		return today, nil
	case "tomorrow":
		return today.AddDate(0, 0, 1), nil
	case "yesterday":
		return today.AddDate(0, 0, -1), nil
	}

	if target, ok := weekdayMap[input]; ok {
		return upcomingWeekday(today, target), nil
	}

	t, err := time.ParseInLocation("2006-01-02", input, now.Location())
	if err != nil {
		return time.Time{}, ErrInvalidDateFormat
	}
	return t, nil
}

// upcomingWeekday returns the first day on or after today that falls on target.
func upcomingWeekday(today time.Time, target time.Weekday) time.Time {
	daysUntil := (int(target) - int(today.Weekday()) + 7) % 7
	return today.AddDate(0, 0, daysUntil)
}
