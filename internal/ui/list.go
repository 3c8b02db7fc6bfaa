package ui

import (
	"fmt"

	"github.com/spf13/cobra"
)

func (a *App) listCmd() *cobra.Command {
	var subject string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List weekly schedules",
		Long: `List all weekly schedules grouped by subject.

Use --subject to list only the schedules of one subject.`,
		Example: `  routine list
  routine list --subject math`,
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

			opts := a.printOpts()
			subjects, groups := GroupBySubject(schedules)
			for i, name := range subjects {
				if i > 0 {
					_, _ = fmt.Fprintln(out)
				}
				_, _ = fmt.Fprintf(out, "=== %s ===\n", formatSubject(subjectLabel(name)))
				for _, s := range groups[name] {
					PrintScheduleRow(out, s, opts)
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&subject, "subject", "s", "", "Only list schedules of this subject")

	return cmd
}
