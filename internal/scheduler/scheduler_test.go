package scheduler

import (
	"testing"
	"time"

	"github.com/javiermolinar/routine/internal/schedule"
)

func newSchedule(id string, sh, sm, eh, em int, days ...time.Weekday) *schedule.WeeklySchedule {
	s := schedule.New(id)
	s.ID = id
	s.Days = schedule.NewDaySet(days...)
	s.Window = schedule.NewWindow(schedule.MustTimeOfDay(sh, sm), schedule.MustTimeOfDay(eh, em))
	return s
}

func TestOn(t *testing.T) {
	s := newSchedule("math", 9, 0, 10, 30, time.Monday)
	monday := time.Date(2025, 1, 6, 15, 0, 0, 0, time.Local)

	o, ok := On(s, monday)
	if !ok {
		t.Fatal("expected an occurrence on monday")
	}
	if !o.Start.Equal(time.Date(2025, 1, 6, 9, 0, 0, 0, time.Local)) || o.Duration() != 90*time.Minute {
		t.Errorf("unexpected occurrence %v - %v", o.Start, o.End)
	}

	if _, ok := On(s, monday.AddDate(0, 0, 1)); ok {
		t.Error("expected no occurrence on tuesday")
	}
}

func TestOn_SkipsUnusableWindows(t *testing.T) {
	wrapped := newSchedule("late", 23, 0, 0, 30, time.Monday)
	incomplete := schedule.New("draft")
	incomplete.Days = schedule.NewDaySet(time.Monday)

	monday := time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local)
	for _, s := range []*schedule.WeeklySchedule{wrapped, incomplete} {
		if _, ok := On(s, monday); ok {
			t.Errorf("%s: expected no occurrence", s.Subject)
		}
	}
}

func TestNext(t *testing.T) {
	s := newSchedule("math", 9, 0, 10, 30, time.Monday, time.Thursday)

	tests := []struct {
		name string
		now  time.Time
		want time.Time
	}{
		{"before today's window", time.Date(2025, 1, 6, 7, 30, 0, 0, time.Local), time.Date(2025, 1, 6, 9, 0, 0, 0, time.Local)},
		{"in progress", time.Date(2025, 1, 6, 10, 0, 0, 0, time.Local), time.Date(2025, 1, 6, 9, 0, 0, 0, time.Local)},
		{"after today's window", time.Date(2025, 1, 6, 10, 30, 0, 0, time.Local), time.Date(2025, 1, 9, 9, 0, 0, 0, time.Local)},
		{"wraps to next week", time.Date(2025, 1, 9, 18, 0, 0, 0, time.Local), time.Date(2025, 1, 13, 9, 0, 0, 0, time.Local)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			o, ok := Next(s, tt.now)
			if !ok {
				t.Fatal("expected a next occurrence")
			}
			if !o.Start.Equal(tt.want) {
				t.Errorf("Next() = %v, want %v", o.Start, tt.want)
			}
		})
	}
}

func TestNext_SameDayOnlyScheduleAfterWindow(t *testing.T) {
	s := newSchedule("yoga", 7, 0, 8, 0, time.Monday)
	now := time.Date(2025, 1, 6, 9, 0, 0, 0, time.Local) // Monday after the window

	o, ok := Next(s, now)
	if !ok {
		t.Fatal("expected next week's occurrence")
	}
	if want := time.Date(2025, 1, 13, 7, 0, 0, 0, time.Local); !o.Start.Equal(want) {
		t.Errorf("Next() = %v, want %v", o.Start, want)
	}
}

func TestUpcoming(t *testing.T) {
	schedules := []*schedule.WeeklySchedule{
		newSchedule("math", 9, 0, 10, 0, time.Monday, time.Tuesday),
		newSchedule("art", 8, 0, 9, 0, time.Tuesday),
		newSchedule("music", 7, 0, 8, 0, time.Monday),
	}
	now := time.Date(2025, 1, 6, 8, 30, 0, 0, time.Local) // Monday

	got := Upcoming(schedules, now, 30*time.Hour)
	var order []string
	for _, o := range got {
		order = append(order, o.Schedule.Subject+"@"+o.Start.Format("Mon 15:04"))
	}
	want := []string{"math@Mon 09:00", "art@Tue 08:00", "math@Tue 09:00"}
	if len(order) != len(want) {
		t.Fatalf("Upcoming() = %v, want %v", order, want)
	}
	for i := range want {
		if order[i] != want[i] {
			t.Errorf("Upcoming()[%d] = %s, want %s", i, order[i], want[i])
		}
	}
}

func TestOverlapsAndConflicts(t *testing.T) {
	math := newSchedule("math", 9, 0, 10, 30, time.Monday, time.Wednesday)
	art := newSchedule("art", 10, 0, 11, 0, time.Wednesday)
	bio := newSchedule("bio", 10, 30, 11, 30, time.Monday)
	gym := newSchedule("gym", 9, 0, 10, 0, time.Friday)

	if !Overlaps(math, art) {
		t.Error("math and art overlap on wednesday")
	}
	if Overlaps(math, bio) {
		t.Error("back to back windows do not overlap")
	}
	if Overlaps(math, gym) {
		t.Error("no shared days")
	}

	got := Conflicts(math, []*schedule.WeeklySchedule{math, art, bio, gym})
	if len(got) != 1 || got[0].ID != "art" {
		t.Errorf("Conflicts() = %v", got)
	}
	if days := SharedDays(math, art); days.Mask() != schedule.BitWednesday {
		t.Errorf("SharedDays() = %s", days)
	}
}

func TestOccurrenceInProgress(t *testing.T) {
	o, _ := On(newSchedule("math", 9, 0, 10, 0, time.Monday), time.Date(2025, 1, 6, 0, 0, 0, 0, time.Local))

	if !o.InProgress(time.Date(2025, 1, 6, 9, 0, 0, 0, time.Local)) {
		t.Error("start is inside the occurrence")
	}
	if o.InProgress(time.Date(2025, 1, 6, 10, 0, 0, 0, time.Local)) {
		t.Error("end is outside the occurrence")
	}
}
