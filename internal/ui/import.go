package ui

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/routine/internal/db"
	"github.com/javiermolinar/routine/internal/schedule"
)

func (a *App) importCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "import [database_path]",
		Short: "Import schedules from another database",
		Long: `Import all schedules from another routine database into the current one.

Schedules whose ID already exists, and incomplete schedules, are skipped.

Example:
  routine import /path/to/other.db`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.ensureRepo(); err != nil {
				return err
			}

			sourcePath, err := resolvePath(args[0])
			if err != nil {
				return err
			}
			destPath, err := resolvePath(a.config.Storage.DBPath)
			if err != nil {
				return err
			}

			if sourcePath == destPath {
				return fmt.Errorf("source database matches current database")
			}

			info, err := os.Stat(sourcePath)
			if err != nil {
				if os.IsNotExist(err) {
					return fmt.Errorf("source database does not exist: %s", sourcePath)
				}
				return fmt.Errorf("checking source database: %w", err)
			}
			if info.IsDir() {
				return fmt.Errorf("source database path is a directory: %s", sourcePath)
			}

			imported, skipped, err := importSchedules(cmd.Context(), a.repo, sourcePath)
			if err != nil {
				return err
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Imported %d schedules from %s", imported, sourcePath)
			if skipped > 0 {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), " (%d skipped)", skipped)
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout())
			return nil
		},
	}

	return cmd
}

func importSchedules(ctx context.Context, dest schedule.Repository, sourcePath string) (imported, skipped int, err error) {
	sourceRepo, err := db.New(sourcePath)
	if err != nil {
		return 0, 0, fmt.Errorf("opening source database: %w", err)
	}
	defer func() { _ = sourceRepo.Close() }()

	schedules, err := sourceRepo.ListSchedules(ctx, "")
	if err != nil {
		return 0, 0, fmt.Errorf("listing source schedules: %w", err)
	}

	for _, s := range schedules {
		if !s.Validate().OK() {
			skipped++
			continue
		}
		existing, err := dest.GetSchedule(ctx, s.ID)
		if err != nil {
			return imported, skipped, fmt.Errorf("checking schedule %s: %w", s.ID, err)
		}
		if existing != nil {
			skipped++
			continue
		}
		if err := dest.CreateSchedule(ctx, s); err != nil {
			return imported, skipped, fmt.Errorf("importing %s schedule %s: %w", subjectLabel(s.Subject), s.ID, err)
		}
		imported++
	}

	return imported, skipped, nil
}

func resolvePath(path string) (string, error) {
	path = strings.TrimSpace(path)
	if path == "" {
		return "", fmt.Errorf("empty path")
	}

	if strings.HasPrefix(path, "~/") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolving home directory: %w", err)
		}
		path = filepath.Join(home, path[2:])
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolving path: %w", err)
	}

	return absPath, nil
}
