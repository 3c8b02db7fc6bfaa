package ui

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/routine/internal/dateutil"
)

func (a *App) showCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a schedule",
		Long: `Display one schedule in detail.

The id may be a unique prefix, as printed by 'routine list'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			s, err := a.resolveSchedule(cmd.Context(), args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			pattern := a.config.Format.TimePattern
			_, _ = fmt.Fprintf(out, "=== %s ===\n", formatHeader(subjectLabel(s.Subject)))
			_, _ = fmt.Fprintf(out, "  ID:       %s\n", s.ID)
			_, _ = fmt.Fprintf(out, "  Days:     %s\n", DayChips(s.Days, a.config.WeekOrder()))
			_, _ = fmt.Fprintf(out, "            %s\n", formatMuted(s.Days.String()))
			_, _ = fmt.Fprintf(out, "  Time:     %s\n", FormatWindow(s.Window, pattern))
			if d := s.Window.Duration(); d > 0 {
				_, _ = fmt.Fprintf(out, "  Length:   %s (%s per week)\n",
					FormatDuration(int(d.Minutes())), FormatDuration(WeeklyMinutes(s)))
			}
			if r := s.Validate(); !r.OK() {
				_, _ = fmt.Fprintf(out, "  Status:   %s\n", formatNow("incomplete: "+strings.ToLower(r.Message())))
			}
			if !s.CreatedAt.IsZero() {
				_, _ = fmt.Fprintf(out, "  Created:  %s\n", dateutil.Print(a.config.Format.DatePattern, s.CreatedAt))
			}
			if !s.UpdatedAt.IsZero() {
				_, _ = fmt.Fprintf(out, "  Updated:  %s\n", dateutil.Print(a.config.Format.DatePattern, s.UpdatedAt))
			}

			return nil
		},
	}
}
