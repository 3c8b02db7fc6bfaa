// Package schedule defines recurring weekly schedules: a set of active weekdays and
// a daily time window, with the editing rules that keep the window usable.
package schedule

import (
	"time"

	"github.com/google/uuid"
)

// WeeklySchedule is a recurring time window on a set of weekdays.
type WeeklySchedule struct {
	ID        string
	Subject   string
	Days      DaySet
	Window    Window
	CreatedAt time.Time
	UpdatedAt time.Time
}

// New returns an empty schedule for subject with a fresh ID.
func New(subject string) *WeeklySchedule {
	return &WeeklySchedule{
		ID:      uuid.NewString(),
		Subject: subject,
	}
}

// Clone returns a copy of s.
func (s *WeeklySchedule) Clone() *WeeklySchedule {
	if s == nil {
		return nil
	}
	c := *s
	return &c
}

// SetDay adds or removes day from the active days.
func (s *WeeklySchedule) SetDay(day time.Weekday, active bool) {
	if active {
		s.Days = s.Days.With(day)
	} else {
		s.Days = s.Days.Without(day)
	}
}

// ActiveDays returns the active weekdays from Sunday to Saturday.
func (s *WeeklySchedule) ActiveDays() []time.Weekday {
	return s.Days.Days()
}

// ActiveOn reports whether the schedule recurs on t's weekday.
func (s *WeeklySchedule) ActiveOn(t time.Time) bool {
	return s.Days.Has(t.Weekday())
}

// SetStartTime sets the start time using DefaultCorrection and returns the new window.
func (s *WeeklySchedule) SetStartTime(t TimeOfDay) Window {
	return s.SetStartTimeWith(t, DefaultCorrection)
}

// SetStartTimeWith is SetStartTime with an explicit correction.
func (s *WeeklySchedule) SetStartTimeWith(t TimeOfDay, correction time.Duration) Window {
	s.Window = s.Window.WithStart(t, correction)
	return s.Window
}

// SetEndTime sets the end time using DefaultCorrection and returns the new window.
func (s *WeeklySchedule) SetEndTime(t TimeOfDay) Window {
	return s.SetEndTimeWith(t, DefaultCorrection)
}

// SetEndTimeWith is SetEndTime with an explicit correction.
func (s *WeeklySchedule) SetEndTimeWith(t TimeOfDay, correction time.Duration) Window {
	s.Window = s.Window.WithEnd(t, correction)
	return s.Window
}

// Validate checks the schedule is complete. Only the first failure is reported,
// in this order: days, start time, end time.
func (s *WeeklySchedule) Validate() ValidationResult {
	if s.Days.IsEmpty() {
		return EmptyDays
	}
	if _, ok := s.Window.Start(); !ok {
		return MissingStartTime
	}
	if _, ok := s.Window.End(); !ok {
		return MissingEndTime
	}
	return Valid
}

// Summary returns a one line description such as "Mon, Wed 09:00 AM - 10:30 AM".
func (s *WeeklySchedule) Summary(timePattern string) string {
	start, end := s.Window.Format(timePattern)
	if start == "" && end == "" {
		return s.Days.String()
	}
	return s.Days.String() + " " + start + " - " + end
}
