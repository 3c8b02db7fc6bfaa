package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/javiermolinar/routine/internal/dateutil"
)

// ErrInvalidTimeFormat is returned when a time of day cannot be parsed.
var ErrInvalidTimeFormat = errors.New("time must be in HH:MM or h:mm am/pm format")

const minutesPerDay = 24 * 60

// TimeOfDay is a wall-clock time without a date, stored as minutes since midnight.
type TimeOfDay struct {
	minutes int
}

// NewTimeOfDay builds a TimeOfDay from an hour (0-23) and minute (0-59).
func NewTimeOfDay(hour, minute int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeFormat, hour, minute)
	}
	return TimeOfDay{minutes: hour*60 + minute}, nil
}

// MustTimeOfDay is like NewTimeOfDay but panics on invalid input.
// It is meant for constants and tests.
func MustTimeOfDay(hour, minute int) TimeOfDay {
	t, err := NewTimeOfDay(hour, minute)
	if err != nil {
		panic(err)
	}
	return t
}

// TimeOfDayOf returns the wall-clock time of t.
func TimeOfDayOf(t time.Time) TimeOfDay {
	return TimeOfDay{minutes: t.Hour()*60 + t.Minute()}
}

var timeLayouts = []string{"15:04", "3:04pm", "3:04 pm", "3pm", "3 pm"}

// ParseTimeOfDay parses "HH:MM" (24h) or 12h forms such as "9:30 am" and "5pm".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	in := strings.ToLower(strings.TrimSpace(s))
	for _, layout := range timeLayouts {
		t, err := time.Parse(layout, in)
		if err == nil {
			return TimeOfDayOf(t), nil
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: %q", ErrInvalidTimeFormat, s)
}

// Hour returns the hour (0-23).
func (t TimeOfDay) Hour() int { return t.minutes / 60 }

// Minute returns the minute (0-59).
func (t TimeOfDay) Minute() int { return t.minutes % 60 }

// Minutes returns minutes since midnight.
func (t TimeOfDay) Minutes() int { return t.minutes }

// Add returns t shifted by d, wrapping around midnight.
// Sub-minute precision is dropped.
func (t TimeOfDay) Add(d time.Duration) TimeOfDay {
	m := (t.minutes + int(d/time.Minute)) % minutesPerDay
	if m < 0 {
		m += minutesPerDay
	}
	return TimeOfDay{minutes: m}
}

// Before reports whether t is earlier in the day than u.
func (t TimeOfDay) Before(u TimeOfDay) bool { return t.minutes < u.minutes }

// After reports whether t is later in the day than u.
func (t TimeOfDay) After(u TimeOfDay) bool { return t.minutes > u.minutes }

// Compare returns -1, 0 or +1 comparing t to u.
func (t TimeOfDay) Compare(u TimeOfDay) int {
	switch {
	case t.minutes < u.minutes:
		return -1
	case t.minutes > u.minutes:
		return 1
	default:
		return 0
	}
}

// On returns t placed on the calendar day of date, in date's location.
func (t TimeOfDay) On(date time.Time) time.Time {
	return dateutil.At(date, t.Hour(), t.Minute())
}

// Format formats t with a strftime pattern, e.g. "%I:%M %p".
func (t TimeOfDay) Format(pattern string) string {
	return dateutil.Print(pattern, t.On(time.Date(2000, 1, 1, 0, 0, 0, 0, time.UTC)))
}

// String returns t as "HH:MM".
func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}
