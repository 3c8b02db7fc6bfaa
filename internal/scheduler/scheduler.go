// Package scheduler provides time-aware operations over weekly schedules.
package scheduler

import (
	"slices"
	"time"

	"github.com/javiermolinar/routine/internal/dateutil"
	"github.com/javiermolinar/routine/internal/schedule"
)

// Occurrence is one concrete happening of a weekly schedule.
type Occurrence struct {
	Schedule *schedule.WeeklySchedule
	Start    time.Time
	End      time.Time
}

// InProgress reports whether now falls inside the occurrence.
func (o Occurrence) InProgress(now time.Time) bool {
	return !now.Before(o.Start) && now.Before(o.End)
}

// Duration returns the length of the occurrence.
func (o Occurrence) Duration() time.Duration {
	return o.End.Sub(o.Start)
}

// On returns the occurrence of s on date, if it recurs that day.
// Incomplete schedules and windows that wrap past midnight never occur.
func On(s *schedule.WeeklySchedule, date time.Time) (Occurrence, bool) {
	if !s.ActiveOn(date) || !s.Window.Valid() {
		return Occurrence{}, false
	}
	start, _ := s.Window.Start()
	end, _ := s.Window.End()
	day := dateutil.TruncateToDay(date)
	return Occurrence{Schedule: s, Start: start.On(day), End: end.On(day)}, true
}

// Next returns the next occurrence of s that has not ended at now.
// An occurrence in progress is returned as the next one.
func Next(s *schedule.WeeklySchedule, now time.Time) (Occurrence, bool) {
	day := dateutil.TruncateToDay(now)
	// 8 days covers today's window having already ended
	for range 8 {
		if o, ok := On(s, day); ok && o.End.After(now) {
			return o, true
		}
		day = day.AddDate(0, 0, 1)
	}
	return Occurrence{}, false
}

// Upcoming returns every occurrence that has not ended at now and starts
// before now+horizon, ordered by start time.
func Upcoming(schedules []*schedule.WeeklySchedule, now time.Time, horizon time.Duration) []Occurrence {
	limit := now.Add(horizon)
	var out []Occurrence

	day := dateutil.TruncateToDay(now)
	for !day.After(limit) {
		for _, s := range schedules {
			o, ok := On(s, day)
			if !ok || !o.End.After(now) || !o.Start.Before(limit) {
				continue
			}
			out = append(out, o)
		}
		day = day.AddDate(0, 0, 1)
	}

	slices.SortStableFunc(out, func(a, b Occurrence) int {
		return a.Start.Compare(b.Start)
	})
	return out
}

// Overlaps reports whether a and b share a day and their windows intersect.
func Overlaps(a, b *schedule.WeeklySchedule) bool {
	if !a.Window.Valid() || !b.Window.Valid() {
		return false
	}
	if a.Days.Mask()&b.Days.Mask() == 0 {
		return false
	}
	as, _ := a.Window.Start()
	ae, _ := a.Window.End()
	bs, _ := b.Window.Start()
	be, _ := b.Window.End()
	return as.Before(be) && bs.Before(ae)
}

// Conflicts returns the schedules in others, except s itself, that overlap s.
func Conflicts(s *schedule.WeeklySchedule, others []*schedule.WeeklySchedule) []*schedule.WeeklySchedule {
	var out []*schedule.WeeklySchedule
	for _, o := range others {
		if o.ID == s.ID {
			continue
		}
		if Overlaps(s, o) {
			out = append(out, o)
		}
	}
	return out
}

// SharedDays returns the days a and b both recur on.
func SharedDays(a, b *schedule.WeeklySchedule) schedule.DaySet {
	set, _ := schedule.DaySetFromMask(a.Days.Mask() & b.Days.Mask())
	return set
}
