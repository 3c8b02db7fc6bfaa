package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/routine/internal/dateutil"
	"github.com/javiermolinar/routine/internal/schedule"
)

func (a *App) todayCmd() *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:     "today [day]",
		Aliases: []string{"agenda"},
		Short:   "Show the schedules of a day",
		Long: `Show the schedules that happen on a day, ordered by start time.

The day defaults to today and may be tomorrow, yesterday, a weekday name
(its next occurrence) or a YYYY-MM-DD date. For today, each entry is marked
as done (✓), in progress (▶) or upcoming (○).`,
		Example: `  routine today
  routine today friday --subject math
  routine agenda 2025-03-14`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			now := a.nowFunc()
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			day, err := dateutil.ParseDay(input, now)
			if err != nil {
				return fmt.Errorf("invalid day %q: %w", input, err)
			}

			schedules, err := a.repo.ListSchedules(cmd.Context(), subject)
			if err != nil {
				return fmt.Errorf("listing schedules: %w", err)
			}

			var active []*schedule.WeeklySchedule
			for _, s := range schedules {
				if s.ActiveOn(day) {
					active = append(active, s)
				}
			}
			SortByStart(active)

			out := cmd.OutOrStdout()
			_, _ = fmt.Fprintf(out, "=== %s ===\n", formatHeader(dateutil.Print(a.config.Format.DatePattern, day)))
			if len(active) == 0 {
				_, _ = fmt.Fprintln(out, "Nothing scheduled.")
				return nil
			}

			total := 0
			for _, s := range active {
				_, _ = fmt.Fprintf(out, "  %s  %s  %s\n",
					agendaMarker(s.Window, day, now),
					FormatWindow(s.Window, a.config.Format.TimePattern),
					formatSubject(subjectLabel(s.Subject)),
				)
				total += int(s.Window.Duration().Minutes())
			}
			_, _ = fmt.Fprintf(out, "\n%s\n", formatMuted(fmt.Sprintf("%d scheduled, %s total", len(active), FormatDuration(total))))

			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Only show schedules of this subject")

	return cmd
}

// agendaMarker tells whether a window on day is done, in progress or upcoming.
// Days other than today get no marker.
func agendaMarker(w schedule.Window, day, now time.Time) string {
	if !dateutil.IsToday(day, now) || !w.Valid() {
		return " "
	}
	start, _ := w.Start()
	end, _ := w.End()
	switch {
	case !dateutil.IsAfterNow(end.On(day), now):
		return formatMuted("✓")
	case dateutil.IsAfterNow(start.On(day), now):
		return "○"
	default:
		return formatNow("▶")
	}
}
