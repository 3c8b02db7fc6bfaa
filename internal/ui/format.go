package ui

import (
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/javiermolinar/routine/internal/schedule"
)

// shortIDLen is how many ID characters list views print.
const shortIDLen = 8

// PrintOpts contains options for printing schedule rows.
type PrintOpts struct {
	TimePattern string         // strftime pattern for times
	WeekOrder   []time.Weekday // chip order
	ShowSubject bool           // prefix rows with the subject
	ShowID      bool           // print the short ID column
}

// ShortID returns the first characters of a schedule ID.
func ShortID(id string) string {
	if len(id) <= shortIDLen {
		return id
	}
	return id[:shortIDLen]
}

// DayChips renders the week as fixed-width day names, highlighting active days.
func DayChips(days schedule.DaySet, order []time.Weekday) string {
	parts := make([]string, 0, len(order))
	for _, d := range order {
		name := schedule.ShortDayName(d)
		if days.Has(d) {
			parts = append(parts, formatDayOn(name))
		} else {
			parts = append(parts, formatDayOff(strings.Repeat("·", len(name))))
		}
	}
	return strings.Join(parts, " ")
}

// FormatWindow formats a window as "start - end" with a strftime pattern.
func FormatWindow(w schedule.Window, pattern string) string {
	start, end := w.Format(pattern)
	if start == "" {
		start = "--:--"
	}
	if end == "" {
		end = "--:--"
	}
	return start + " - " + end
}

// PrintScheduleRow prints a single schedule row with consistent formatting.
func PrintScheduleRow(w io.Writer, s *schedule.WeeklySchedule, opts PrintOpts) {
	var b strings.Builder
	b.WriteString("  ")
	if opts.ShowID {
		b.WriteString(formatMuted(ShortID(s.ID)))
		b.WriteString("  ")
	}
	b.WriteString(DayChips(s.Days, opts.WeekOrder))
	b.WriteString("  ")
	b.WriteString(FormatWindow(s.Window, opts.TimePattern))
	if d := s.Window.Duration(); d > 0 {
		b.WriteString("  ")
		b.WriteString(formatMuted(FormatDuration(int(d.Minutes()))))
	}
	if opts.ShowSubject && s.Subject != "" {
		b.WriteString("  ")
		b.WriteString(formatSubject(s.Subject))
	}
	_, _ = fmt.Fprintln(w, b.String())
}

// GroupBySubject groups schedules by subject, keeping first-seen order.
func GroupBySubject(schedules []*schedule.WeeklySchedule) (subjects []string, groups map[string][]*schedule.WeeklySchedule) {
	groups = make(map[string][]*schedule.WeeklySchedule)
	for _, s := range schedules {
		if _, ok := groups[s.Subject]; !ok {
			subjects = append(subjects, s.Subject)
		}
		groups[s.Subject] = append(groups[s.Subject], s)
	}
	return subjects, groups
}

// WeeklyMinutes returns the scheduled minutes per week of a schedule.
func WeeklyMinutes(s *schedule.WeeklySchedule) int {
	return int(s.Window.Duration().Minutes()) * s.Days.Len()
}

// LoadBar renders minutes as a bar scaled against maxMinutes.
func LoadBar(minutes, maxMinutes, width int) string {
	if maxMinutes <= 0 || minutes <= 0 {
		return strings.Repeat("░", width)
	}
	filled := (minutes * width) / maxMinutes
	if filled > width {
		filled = width
	}
	return formatDayOn(strings.Repeat("█", filled)) + strings.Repeat("░", width-filled)
}

// FormatDuration formats minutes as a human-readable duration.
func FormatDuration(minutes int) string {
	if minutes == 0 {
		return "0m"
	}
	hours := minutes / 60
	mins := minutes % 60
	if hours == 0 {
		return fmt.Sprintf("%dm", mins)
	}
	if mins == 0 {
		return fmt.Sprintf("%dh", hours)
	}
	return fmt.Sprintf("%dh%dm", hours, mins)
}

// subjectLabel returns a printable subject.
func subjectLabel(subject string) string {
	if subject == "" {
		return "(no subject)"
	}
	return subject
}

// SortByStart sorts schedules by start time, unset windows last.
func SortByStart(schedules []*schedule.WeeklySchedule) {
	slices.SortStableFunc(schedules, func(x, y *schedule.WeeklySchedule) int {
		xs, xok := x.Window.Start()
		ys, yok := y.Window.Start()
		switch {
		case xok && yok:
			return xs.Compare(ys)
		case xok:
			return -1
		case yok:
			return 1
		default:
			return 0
		}
	})
}

// SchedulesOn returns the schedules active on day, sorted by start time.
func SchedulesOn(schedules []*schedule.WeeklySchedule, day time.Weekday) []*schedule.WeeklySchedule {
	var out []*schedule.WeeklySchedule
	for _, s := range schedules {
		if s.Days.Has(day) {
			out = append(out, s)
		}
	}
	SortByStart(out)
	return out
}
