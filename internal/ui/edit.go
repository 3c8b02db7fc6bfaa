package ui

import (
	"github.com/spf13/cobra"
)

func (a *App) editCmd() *cobra.Command {
	var (
		flags   scheduleFlags
		subject string
		edit    bool
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit an existing schedule",
		Long: `Edit the days or time window of an existing schedule.

The id may be a unique prefix, as printed by 'routine list'.
With --days, --start or --end the change is stored directly; otherwise
the schedule editor opens.`,
		Example: `  routine edit 3f2a9c1b
  routine edit 3f2a --end 11:00
  routine edit 3f2a --days tue,thu --edit`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := cmd.Context()
			existing, err := a.resolveSchedule(ctx, args[0])
			if err != nil {
				return err
			}
			if subject != "" {
				existing.Subject = subject
			}

			e := a.newEditor(existing.Subject, existing)
			if err := applyFlags(e, flags); err != nil {
				return err
			}

			if (flags.empty() && subject == "") || edit {
				return a.interactive(ctx, cmd.OutOrStdout(), e, "Updated")
			}
			return a.confirm(ctx, cmd.OutOrStdout(), e, "Updated")
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Move the schedule to another subject")
	cmd.Flags().BoolVarP(&edit, "edit", "e", false, "Open the editor even when flags are given")
	flags.register(cmd)

	return cmd
}
