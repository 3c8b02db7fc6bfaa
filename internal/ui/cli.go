// Package ui provides the command line interface for routine.
package ui

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/javiermolinar/routine/internal/config"
	"github.com/javiermolinar/routine/internal/db"
	"github.com/javiermolinar/routine/internal/schedule"
	"github.com/javiermolinar/routine/internal/scheduler"
	"github.com/javiermolinar/routine/internal/tui"
)

var (
	// Version is set at build time
	Version = "dev"
	// Commit is set at build time
	Commit = "none"
)

// editorFunc runs an interactive edit session.
type editorFunc func(ctx context.Context, editor *schedule.Editor, cfg *config.Config, debug bool) (tui.Result, error)

// App holds the CLI application state.
type App struct {
	repo    schedule.Repository
	config  *config.Config
	root    *cobra.Command
	debug   bool // Enable debug logging
	noColor bool
	subject string

	runEditor editorFunc
	nowFunc   func() time.Time
}

// NewApp creates a new CLI application with the given repository and config.
// A nil repository is opened lazily from the configured database path.
func NewApp(repo schedule.Repository, cfg *config.Config) *App {
	a := &App{repo: repo, config: cfg, runEditor: tui.Run, nowFunc: time.Now}

	a.root = &cobra.Command{
		Use:   "routine",
		Short: "A CLI tool for recurring weekly schedules",
		Long: `Routine keeps recurring weekly schedules: the days of the week a
subject happens on and the time window it takes.

Running routine without a command opens the schedule editor.`,
		SilenceUsage: true,
		PersistentPreRun: func(_ *cobra.Command, _ []string) {
			if a.noColor {
				DisableColor()
			}
		},
		RunE: func(cmd *cobra.Command, _ []string) error {
			return a.editNew(cmd.Context(), cmd.OutOrStdout(), a.subject, scheduleFlags{})
		},
	}

	// Add global flags
	a.root.PersistentFlags().BoolVar(&a.debug, "debug", false, "Enable debug logging (logs to "+tui.DebugLogPath+")")
	a.root.PersistentFlags().BoolVar(&a.noColor, "no-color", false, "Disable color output")
	a.root.Flags().StringVarP(&a.subject, "subject", "s", "", "Subject of the new schedule")

	a.root.AddCommand(a.versionCmd())
	a.root.AddCommand(a.configCmd())
	a.root.AddCommand(a.addCmd())
	a.root.AddCommand(a.editCmd())
	a.root.AddCommand(a.listCmd())
	a.root.AddCommand(a.showCmd())
	a.root.AddCommand(a.removeCmd())
	a.root.AddCommand(a.todayCmd())
	a.root.AddCommand(a.weekCmd())
	a.root.AddCommand(a.nextCmd())
	a.root.AddCommand(a.importCmd())

	return a
}

func (a *App) versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version number",
		Run: func(cmd *cobra.Command, _ []string) {
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "routine %s (commit: %s)\n", Version, Commit)
		},
	}
}

// Execute runs the CLI application.
func (a *App) Execute() error {
	return a.root.Execute()
}

// ExecuteContext runs the CLI application with ctx.
func (a *App) ExecuteContext(ctx context.Context) error {
	return a.root.ExecuteContext(ctx)
}

// Close releases the repository if it was opened.
func (a *App) Close() error {
	if a.repo == nil {
		return nil
	}
	return a.repo.Close()
}

// ensureRepo opens the configured database on first use.
func (a *App) ensureRepo() error {
	if a.repo != nil {
		return nil
	}
	repo, err := openRepo(a.config.Storage.DBPath)
	if err != nil {
		return err
	}
	a.repo = repo
	return nil
}

func openRepo(dbPath string) (schedule.Repository, error) {
	if dbPath == "" {
		return nil, fmt.Errorf("db path is empty")
	}
	dbDir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dbDir, 0o755); err != nil {
		return nil, fmt.Errorf("creating data directory: %w", err)
	}
	repo, err := db.New(dbPath)
	if err != nil {
		return nil, fmt.Errorf("initializing database: %w", err)
	}
	return repo, nil
}

// newEditor starts an edit session that stores confirmed schedules in the repository.
func (a *App) newEditor(subject string, existing *schedule.WeeklySchedule) *schedule.Editor {
	return schedule.NewEditor(subject, existing, schedule.StoreReceiver(a.repo), a.config.EditorOptions()...)
}

// resolveSchedule finds a schedule by full ID or unique ID prefix.
func (a *App) resolveSchedule(ctx context.Context, id string) (*schedule.WeeklySchedule, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, fmt.Errorf("empty schedule id")
	}

	s, err := a.repo.GetSchedule(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("fetching schedule: %w", err)
	}
	if s != nil {
		return s, nil
	}

	all, err := a.repo.ListSchedules(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("listing schedules: %w", err)
	}
	var matches []*schedule.WeeklySchedule
	for _, candidate := range all {
		if strings.HasPrefix(candidate.ID, id) {
			matches = append(matches, candidate)
		}
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", schedule.ErrScheduleNotFound, id)
	case 1:
		return matches[0], nil
	default:
		return nil, fmt.Errorf("schedule id %q is ambiguous (%d matches)", id, len(matches))
	}
}

// printOpts returns row printing options from the config.
func (a *App) printOpts() PrintOpts {
	return PrintOpts{
		TimePattern: a.config.Format.TimePattern,
		WeekOrder:   a.config.WeekOrder(),
		ShowID:      true,
	}
}

// printSaved prints a confirmation line for a stored schedule.
func (a *App) printSaved(w io.Writer, verb string, s *schedule.WeeklySchedule) {
	_, _ = fmt.Fprintf(w, "%s schedule %s for %s: %s\n",
		verb,
		ShortID(s.ID),
		formatSubject(subjectLabel(s.Subject)),
		s.Summary(a.config.Format.TimePattern),
	)
}

// warnConflicts lists stored schedules that overlap s on a shared day.
// Overlaps are allowed, so lookup failures only skip the warning.
func (a *App) warnConflicts(ctx context.Context, w io.Writer, s *schedule.WeeklySchedule) {
	others, err := a.repo.ListSchedules(ctx, "")
	if err != nil {
		return
	}
	for _, o := range scheduler.Conflicts(s, others) {
		_, _ = fmt.Fprintf(w, "%s overlaps %s %s on %s\n",
			formatMuted("warning:"),
			ShortID(o.ID),
			formatSubject(subjectLabel(o.Subject)),
			scheduler.SharedDays(s, o),
		)
	}
}
