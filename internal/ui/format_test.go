package ui

import (
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/routine/internal/schedule"
)

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0m"},
		{45, "45m"},
		{60, "1h"},
		{90, "1h30m"},
		{600, "10h"},
	}

	for _, tt := range tests {
		if got := FormatDuration(tt.minutes); got != tt.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestShortID(t *testing.T) {
	if got := ShortID("3f2a9c1b-0000-4000-8000-000000000000"); got != "3f2a9c1b" {
		t.Errorf("ShortID() = %q", got)
	}
	if got := ShortID("abc"); got != "abc" {
		t.Errorf("ShortID() = %q", got)
	}
}

func TestDayChips(t *testing.T) {
	DisableColor()
	order := []time.Weekday{time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday, time.Saturday, time.Sunday}

	got := DayChips(schedule.NewDaySet(time.Monday, time.Sunday), order)
	if got != "Mon ··· ··· ··· ··· ··· Sun" {
		t.Errorf("DayChips() = %q", got)
	}
}

func TestFormatWindow(t *testing.T) {
	w := schedule.NewWindow(schedule.MustTimeOfDay(13, 5), schedule.MustTimeOfDay(14, 35))
	if got := FormatWindow(w, "%I:%M %p"); got != "01:05 PM - 02:35 PM" {
		t.Errorf("FormatWindow() = %q", got)
	}
	if got := FormatWindow(schedule.Window{}, "%H:%M"); got != "--:-- - --:--" {
		t.Errorf("FormatWindow(unset) = %q", got)
	}
}

func TestLoadBar(t *testing.T) {
	DisableColor()
	if got := LoadBar(30, 60, 4); got != "██░░" {
		t.Errorf("LoadBar() = %q", got)
	}
	if got := LoadBar(0, 60, 4); got != "░░░░" {
		t.Errorf("LoadBar(0) = %q", got)
	}
	if got := LoadBar(90, 60, 4); got != "████" {
		t.Errorf("LoadBar(overflow) = %q", got)
	}
}

func TestSchedulesOn(t *testing.T) {
	mk := func(subject string, h int, days ...time.Weekday) *schedule.WeeklySchedule {
		s := schedule.New(subject)
		s.Days = schedule.NewDaySet(days...)
		s.Window = schedule.NewWindow(schedule.MustTimeOfDay(h, 0), schedule.MustTimeOfDay(h+1, 0))
		return s
	}
	unset := schedule.New("legacy")
	unset.Days = schedule.NewDaySet(time.Monday)

	all := []*schedule.WeeklySchedule{
		mk("late", 15, time.Monday),
		unset,
		mk("early", 8, time.Monday, time.Friday),
		mk("other", 9, time.Tuesday),
	}

	got := SchedulesOn(all, time.Monday)
	var names []string
	for _, s := range got {
		names = append(names, s.Subject)
	}
	if strings.Join(names, ",") != "early,late,legacy" {
		t.Errorf("SchedulesOn() = %v", names)
	}
}

func TestWeeklyMinutes(t *testing.T) {
	s := schedule.New("math")
	s.Days = schedule.NewDaySet(time.Monday, time.Wednesday, time.Friday)
	s.Window = schedule.NewWindow(schedule.MustTimeOfDay(9, 0), schedule.MustTimeOfDay(10, 30))
	if got := WeeklyMinutes(s); got != 270 {
		t.Errorf("WeeklyMinutes() = %d, want 270", got)
	}
}
