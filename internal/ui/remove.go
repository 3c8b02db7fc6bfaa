package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) removeCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:     "remove <id>",
		Aliases: []string{"rm"},
		Short:   "Remove a schedule",
		Long: `Remove a schedule permanently.

The id may be a unique prefix, as printed by 'routine list'.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			ctx := cmd.Context()
			s, err := a.resolveSchedule(ctx, args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			summary := s.Summary(a.config.Format.TimePattern)
			if !yes && !promptYesNo(fmt.Sprintf("Remove %s schedule %s?", subjectLabel(s.Subject), summary)) {
				_, _ = fmt.Fprintln(out, "Nothing removed.")
				return nil
			}

			if err := a.repo.DeleteSchedule(ctx, s.ID); err != nil {
				return fmt.Errorf("removing schedule: %w", err)
			}

			_, _ = fmt.Fprintf(out, "Removed schedule %s (%s)\n", ShortID(s.ID), summary)
			return nil
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}
