package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/x/ansi"
	"github.com/spf13/cobra"

	"github.com/javiermolinar/routine/internal/schedule"
)

// loadBarWidth is the width of the weekly load bars.
const loadBarWidth = 20

func (a *App) weekCmd() *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "week",
		Short: "Show the weekly overview",
		Long: `Show every day of the week with its schedules, followed by the
weekly load of each subject.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			schedules, err := a.repo.ListSchedules(cmd.Context(), subject)
			if err != nil {
				return fmt.Errorf("listing schedules: %w", err)
			}

			out := cmd.OutOrStdout()
			if len(schedules) == 0 {
				_, _ = fmt.Fprintln(out, "No schedules found.")
				return nil
			}

			today := a.nowFunc().Weekday()
			for _, day := range a.config.WeekOrder() {
				label := schedule.ShortDayName(day)
				if day == today {
					label = formatNow(label)
				} else {
					label = formatHeader(label)
				}

				entries := SchedulesOn(schedules, day)
				if len(entries) == 0 {
					_, _ = fmt.Fprintf(out, "%s  %s\n", label, formatMuted("-"))
					continue
				}
				for i, s := range entries {
					prefix := label
					if i > 0 {
						prefix = strings.Repeat(" ", len(schedule.ShortDayName(day)))
					}
					_, _ = fmt.Fprintf(out, "%s  %s  %s\n",
						prefix,
						FormatWindow(s.Window, a.config.Format.TimePattern),
						formatSubject(subjectLabel(s.Subject)),
					)
				}
			}

			_, _ = fmt.Fprintf(out, "\n%s\n", formatHeader("Weekly load"))
			printWeeklyLoad(out, schedules, max(termWidth()/3, 10))

			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Only show schedules of this subject")

	return cmd
}

// printWeeklyLoad prints scheduled time per subject as bars.
// Subject names wider than maxNameWidth cells are truncated.
func printWeeklyLoad(w io.Writer, schedules []*schedule.WeeklySchedule, maxNameWidth int) {
	subjects, groups := GroupBySubject(schedules)

	totals := make(map[string]int, len(subjects))
	maxMinutes, nameWidth := 0, 0
	for _, name := range subjects {
		for _, s := range groups[name] {
			totals[name] += WeeklyMinutes(s)
		}
		maxMinutes = max(maxMinutes, totals[name])
		nameWidth = max(nameWidth, ansi.StringWidth(subjectLabel(name)))
	}
	nameWidth = min(nameWidth, maxNameWidth)

	for _, name := range subjects {
		label := ansi.Truncate(subjectLabel(name), nameWidth, "…")
		label += strings.Repeat(" ", max(nameWidth-ansi.StringWidth(label), 0))
		_, _ = fmt.Fprintf(w, "  %s  %s  %s\n",
			label,
			LoadBar(totals[name], maxMinutes, loadBarWidth),
			FormatDuration(totals[name]),
		)
	}
}
