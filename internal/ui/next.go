package ui

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/routine/internal/dateutil"
	"github.com/javiermolinar/routine/internal/scheduler"
)

const nextHorizon = 7 * 24 * time.Hour

func (a *App) nextCmd() *cobra.Command {
	var (
		subject string
		limit   int
	)

	cmd := &cobra.Command{
		Use:   "next",
		Short: "Show the upcoming occurrences of your schedules",
		Long: `Show the next occurrences of your schedules within the coming week,
starting with the one in progress, if any.`,
		Example: `  routine next
  routine next --limit 3 --subject math`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if limit < 1 {
				return fmt.Errorf("--limit must be at least 1")
			}
			if err := a.ensureRepo(); err != nil {
				return err
			}

			schedules, err := a.repo.ListSchedules(cmd.Context(), subject)
			if err != nil {
				return fmt.Errorf("listing schedules: %w", err)
			}

			now := a.nowFunc()
			upcoming := scheduler.Upcoming(schedules, now, nextHorizon)
			out := cmd.OutOrStdout()
			if len(upcoming) == 0 {
				_, _ = fmt.Fprintln(out, "Nothing coming up.")
				return nil
			}
			if len(upcoming) > limit {
				upcoming = upcoming[:limit]
			}

			for _, o := range upcoming {
				marker := " "
				if o.InProgress(now) {
					marker = formatNow("▶")
				}
				_, _ = fmt.Fprintf(out, "%s %-12s %s - %s  %s\n",
					marker,
					relativeDay(o.Start, now, a.config.Format.DatePattern),
					dateutil.Print(a.config.Format.TimePattern, o.Start),
					dateutil.Print(a.config.Format.TimePattern, o.End),
					formatSubject(subjectLabel(o.Schedule.Subject)),
				)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Only show schedules of this subject")
	cmd.Flags().IntVarP(&limit, "limit", "n", 5, "Maximum number of occurrences")

	return cmd
}

// relativeDay names t as today or tomorrow, otherwise formats it with pattern.
func relativeDay(t, now time.Time, pattern string) string {
	switch {
	case dateutil.IsToday(t, now):
		return "today"
	case dateutil.IsTomorrow(t, now):
		return "tomorrow"
	default:
		return dateutil.Print(pattern, t)
	}
}
