package ui

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/routine/internal/schedule"
	"github.com/javiermolinar/routine/internal/tui"
)

// scheduleFlags holds day and time values given on the command line.
type scheduleFlags struct {
	days  string
	start string
	end   string
}

func (f scheduleFlags) empty() bool {
	return f.days == "" && f.start == "" && f.end == ""
}

func (f *scheduleFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.days, "days", "", "Days of the week (mon,wed | weekdays | weekends | all)")
	cmd.Flags().StringVar(&f.start, "start", "", "Start time (HH:MM or h:mm am/pm)")
	cmd.Flags().StringVar(&f.end, "end", "", "End time (HH:MM or h:mm am/pm)")
}

func (a *App) addCmd() *cobra.Command {
	var (
		subject string
		flags   scheduleFlags
		edit    bool
	)

	cmd := &cobra.Command{
		Use:   "add [subject]",
		Short: "Add a new weekly schedule",
		Long: `Add a new weekly schedule.

With --days and --start (or --end) the schedule is stored directly. A missing
end time is set 1h30m after the start (see correction in the config).
Without flags, or with --edit, the schedule editor opens prefilled.`,
		Example: `  routine add math --days mon,wed --start 09:00 --end 10:30
  routine add --subject art --days weekends --start 2pm
  routine add music --edit`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 1 {
				subject = args[0]
			}
			if flags.empty() || edit {
				return a.editNew(cmd.Context(), cmd.OutOrStdout(), subject, flags)
			}

			if err := a.ensureRepo(); err != nil {
				return err
			}
			e := a.newEditor(subject, nil)
			if err := applyFlags(e, flags); err != nil {
				return err
			}
			return a.confirm(cmd.Context(), cmd.OutOrStdout(), e, "Created")
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Subject the schedule belongs to")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Open the editor even when flags are given")
	flags.register(cmd)

	return cmd
}

// editNew opens the editor for a new schedule, with flags applied first.
func (a *App) editNew(ctx context.Context, w io.Writer, subject string, flags scheduleFlags) error {
	if err := a.ensureRepo(); err != nil {
		return err
	}
	e := a.newEditor(subject, nil)
	if err := applyFlags(e, flags); err != nil {
		return err
	}
	return a.interactive(ctx, w, e, "Created")
}

// applyFlags applies command line values through the editor operations,
// so auto-correction behaves as in the interactive editor.
func applyFlags(e *schedule.Editor, f scheduleFlags) error {
	if f.days != "" {
		set, err := schedule.ParseDaySet(f.days)
		if err != nil {
			return fmt.Errorf("invalid --days: %w", err)
		}
		for d := time.Sunday; d <= time.Saturday; d++ {
			if err := e.SetDay(d, set.Has(d)); err != nil {
				return err
			}
		}
	}
	if f.start != "" {
		t, err := schedule.ParseTimeOfDay(f.start)
		if err != nil {
			return fmt.Errorf("invalid --start: %w", err)
		}
		if _, err := e.SetStartTime(t); err != nil {
			return err
		}
	}
	if f.end != "" {
		t, err := schedule.ParseTimeOfDay(f.end)
		if err != nil {
			return fmt.Errorf("invalid --end: %w", err)
		}
		if _, err := e.SetEndTime(t); err != nil {
			return err
		}
	}
	return nil
}

// confirm validates and stores the draft without the interactive editor.
func (a *App) confirm(ctx context.Context, w io.Writer, e *schedule.Editor, verb string) error {
	result, err := e.Confirm(ctx)
	if err != nil {
		return err
	}
	if !result.OK() {
		return fmt.Errorf("%w: %s", schedule.ErrIncomplete, result.Message())
	}
	saved := e.Draft()
	a.printSaved(w, verb, saved)
	a.warnConflicts(ctx, w, saved)
	return nil
}

// interactive runs the editor sheet and reports the outcome.
func (a *App) interactive(ctx context.Context, w io.Writer, e *schedule.Editor, verb string) error {
	res, err := a.runEditor(ctx, e, a.config, a.debug)
	if err != nil {
		return err
	}
	if res.Outcome != tui.OutcomeSaved || res.Schedule == nil {
		_, _ = fmt.Fprintln(w, "Cancelled, nothing saved.")
		return nil
	}
	a.printSaved(w, verb, res.Schedule)
	a.warnConflicts(ctx, w, res.Schedule)
	return nil
}
