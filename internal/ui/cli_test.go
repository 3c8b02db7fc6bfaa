package ui

import (
	"bytes"
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/javiermolinar/routine/internal/config"
	"github.com/javiermolinar/routine/internal/db"
	"github.com/javiermolinar/routine/internal/schedule"
	"github.com/javiermolinar/routine/internal/tui"
)

// monday 2025-01-06 10:00
var testNow = time.Date(2025, 1, 6, 10, 0, 0, 0, time.Local)

func newTestApp(t *testing.T) (*App, *db.SQLite) {
	t.Helper()
	DisableColor()

	dir := t.TempDir()
	cfg := config.Default()
	cfg.Storage.DBPath = filepath.Join(dir, "routine.db")
	cfg.Format.TimePattern = "%H:%M"

	repo, err := db.New(cfg.Storage.DBPath)
	if err != nil {
		t.Fatalf("creating repo: %v", err)
	}

	a := NewApp(repo, cfg)
	a.nowFunc = func() time.Time { return testNow }
	a.runEditor = func(context.Context, *schedule.Editor, *config.Config, bool) (tui.Result, error) {
		t.Fatal("unexpected interactive editor")
		return tui.Result{}, nil
	}
	t.Cleanup(func() { _ = a.Close() })
	return a, repo
}

func run(t *testing.T, a *App, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	a.root.SetOut(&out)
	a.root.SetErr(&out)
	a.root.SetArgs(args)
	err := a.ExecuteContext(context.Background())
	return out.String(), err
}

func seed(t *testing.T, repo *db.SQLite, id, subject string, sh, sm, eh, em int, days ...time.Weekday) *schedule.WeeklySchedule {
	t.Helper()
	s := schedule.New(subject)
	if id != "" {
		s.ID = id
	}
	s.Days = schedule.NewDaySet(days...)
	s.Window = schedule.NewWindow(schedule.MustTimeOfDay(sh, sm), schedule.MustTimeOfDay(eh, em))
	if err := repo.CreateSchedule(context.Background(), s); err != nil {
		t.Fatalf("CreateSchedule failed: %v", err)
	}
	return s
}

func TestAdd_NonInteractive(t *testing.T) {
	a, repo := newTestApp(t)

	out, err := run(t, a, "add", "math", "--days", "mon,wed", "--start", "9:00am")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "Created schedule") || !strings.Contains(out, "Mon, Wed 09:00 - 10:30") {
		t.Errorf("unexpected output %q", out)
	}

	stored, err := repo.ListSchedules(context.Background(), "math")
	if err != nil {
		t.Fatalf("ListSchedules failed: %v", err)
	}
	if len(stored) != 1 {
		t.Fatalf("expected 1 schedule, got %d", len(stored))
	}
	if stored[0].Window.String() != "09:00-10:30" {
		t.Errorf("window = %s, want corrected end 10:30", stored[0].Window)
	}
}

func TestAdd_Errors(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{"bad days", []string{"add", "x", "--days", "funday", "--start", "09:00"}, "invalid --days"},
		{"bad start", []string{"add", "x", "--days", "mon", "--start", "noon"}, "invalid --start"},
		{"no days", []string{"add", "x", "--start", "09:00"}, "Select at least one day of the week"},
		{"no times", []string{"add", "x", "--days", "mon"}, "Pick a start time for this schedule"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, repo := newTestApp(t)
			_, err := run(t, a, tt.args...)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("expected error containing %q, got %v", tt.wantErr, err)
			}
			if stored, _ := repo.ListSchedules(context.Background(), ""); len(stored) != 0 {
				t.Error("nothing should be stored")
			}
		})
	}
}

func TestAdd_IncompleteIsErrIncomplete(t *testing.T) {
	a, _ := newTestApp(t)
	_, err := run(t, a, "add", "x", "--days", "mon")
	if !errors.Is(err, schedule.ErrIncomplete) {
		t.Errorf("expected ErrIncomplete, got %v", err)
	}
}

func TestAdd_OpensEditorWithoutFlags(t *testing.T) {
	a, repo := newTestApp(t)

	var gotMode schedule.Mode
	a.runEditor = func(ctx context.Context, e *schedule.Editor, _ *config.Config, _ bool) (tui.Result, error) {
		gotMode = e.Mode()
		_ = e.SetDay(time.Friday, true)
		_, _ = e.SetStartTime(schedule.MustTimeOfDay(14, 0))
		if r, err := e.Confirm(ctx); err != nil || !r.OK() {
			t.Fatalf("Confirm() = %s, %v", r, err)
		}
		return tui.Result{Outcome: tui.OutcomeSaved, Schedule: e.Draft()}, nil
	}

	out, err := run(t, a, "add", "art")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if gotMode != schedule.ModeInsert {
		t.Errorf("expected insert mode, got %s", gotMode)
	}
	if !strings.Contains(out, "Created schedule") {
		t.Errorf("unexpected output %q", out)
	}
	stored, _ := repo.ListSchedules(context.Background(), "art")
	if len(stored) != 1 || stored[0].Window.String() != "14:00-15:30" {
		t.Fatalf("unexpected stored schedules %+v", stored)
	}
}

func TestAdd_EditorCancelled(t *testing.T) {
	a, repo := newTestApp(t)
	a.runEditor = func(_ context.Context, e *schedule.Editor, _ *config.Config, _ bool) (tui.Result, error) {
		e.Cancel()
		return tui.Result{Outcome: tui.OutcomeCancelled}, nil
	}

	out, err := run(t, a, "add", "--edit", "--days", "mon")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "Cancelled, nothing saved.") {
		t.Errorf("unexpected output %q", out)
	}
	if stored, _ := repo.ListSchedules(context.Background(), ""); len(stored) != 0 {
		t.Error("nothing should be stored")
	}
}

func TestEdit_ByPrefix(t *testing.T) {
	a, repo := newTestApp(t)
	s := seed(t, repo, "", "math", 9, 0, 10, 0, time.Monday)

	out, err := run(t, a, "edit", ShortID(s.ID), "--end", "08:00")
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if !strings.Contains(out, "Updated schedule") {
		t.Errorf("unexpected output %q", out)
	}

	got, _ := repo.GetSchedule(context.Background(), s.ID)
	if got.Window.String() != "06:30-08:00" {
		t.Errorf("window = %s, want 06:30-08:00", got.Window)
	}
	if got.CreatedAt.IsZero() {
		t.Error("created at should be kept")
	}
}

func TestEdit_OpensEditorInUpdateMode(t *testing.T) {
	a, repo := newTestApp(t)
	s := seed(t, repo, "", "math", 9, 0, 10, 0, time.Monday)

	var gotMode schedule.Mode
	a.runEditor = func(_ context.Context, e *schedule.Editor, _ *config.Config, _ bool) (tui.Result, error) {
		gotMode = e.Mode()
		e.Cancel()
		return tui.Result{Outcome: tui.OutcomeCancelled}, nil
	}

	if _, err := run(t, a, "edit", s.ID); err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if gotMode != schedule.ModeUpdate {
		t.Errorf("expected update mode, got %s", gotMode)
	}
}

func TestResolveSchedule(t *testing.T) {
	a, repo := newTestApp(t)
	seed(t, repo, "abc1", "math", 9, 0, 10, 0, time.Monday)
	seed(t, repo, "abc2", "art", 9, 0, 10, 0, time.Tuesday)
	ctx := context.Background()

	if s, err := a.resolveSchedule(ctx, "abc2"); err != nil || s.Subject != "art" {
		t.Errorf("exact id: %v, %v", s, err)
	}
	if _, err := a.resolveSchedule(ctx, "abc"); err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("expected ambiguous error, got %v", err)
	}
	if _, err := a.resolveSchedule(ctx, "zzz"); !errors.Is(err, schedule.ErrScheduleNotFound) {
		t.Errorf("expected ErrScheduleNotFound, got %v", err)
	}
}

func TestList(t *testing.T) {
	a, repo := newTestApp(t)
	seed(t, repo, "11111111-aaaa", "math", 9, 0, 10, 30, time.Monday, time.Wednesday)
	seed(t, repo, "22222222-bbbb", "art", 14, 0, 15, 0, time.Friday)

	out, err := run(t, a, "list")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	for _, want := range []string{"=== art ===", "=== math ===", "11111111", "09:00 - 10:30", "1h30m"} {
		if !strings.Contains(out, want) {
			t.Errorf("list output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "art") > strings.Index(out, "math") {
		t.Error("subjects should be ordered")
	}

	out, _ = run(t, newAppFor(t, a), "list", "--subject", "physics")
	if !strings.Contains(out, "No schedules found.") {
		t.Errorf("unexpected output %q", out)
	}
}

// newAppFor returns a fresh App sharing the repository and config of a.
func newAppFor(t *testing.T, a *App) *App {
	t.Helper()
	b := NewApp(a.repo, a.config)
	b.nowFunc = a.nowFunc
	b.runEditor = a.runEditor
	return b
}

func TestShow(t *testing.T) {
	a, repo := newTestApp(t)
	s := seed(t, repo, "", "math", 9, 0, 10, 30, time.Monday, time.Wednesday)

	out, err := run(t, a, "show", s.ID)
	if err != nil {
		t.Fatalf("show failed: %v", err)
	}
	for _, want := range []string{"=== math ===", s.ID, "Mon, Wed", "09:00 - 10:30", "1h30m (3h per week)"} {
		if !strings.Contains(out, want) {
			t.Errorf("show output missing %q:\n%s", want, out)
		}
	}
}

func TestRemove(t *testing.T) {
	a, repo := newTestApp(t)
	s := seed(t, repo, "", "math", 9, 0, 10, 30, time.Monday)

	out, err := run(t, a, "remove", "--yes", s.ID)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if !strings.Contains(out, "Removed schedule") {
		t.Errorf("unexpected output %q", out)
	}
	if got, _ := repo.GetSchedule(context.Background(), s.ID); got != nil {
		t.Error("schedule should be removed")
	}

	if _, err := run(t, newAppFor(t, a), "rm", "--yes", s.ID); !errors.Is(err, schedule.ErrScheduleNotFound) {
		t.Errorf("expected ErrScheduleNotFound, got %v", err)
	}
}

func TestToday(t *testing.T) {
	a, repo := newTestApp(t)
	seed(t, repo, "", "math", 9, 0, 10, 30, time.Monday)
	seed(t, repo, "", "art", 8, 0, 9, 0, time.Monday)
	seed(t, repo, "", "music", 13, 0, 14, 0, time.Monday, time.Tuesday)
	seed(t, repo, "", "bio", 11, 0, 12, 0, time.Tuesday)

	out, err := run(t, a, "today")
	if err != nil {
		t.Fatalf("today failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if !strings.Contains(lines[0], "Mon, Jan 06") {
		t.Errorf("unexpected header %q", lines[0])
	}
	want := []string{"✓  08:00 - 09:00  art", "▶  09:00 - 10:30  math", "○  13:00 - 14:00  music"}
	for i, w := range want {
		if !strings.Contains(lines[i+1], w) {
			t.Errorf("line %d = %q, want %q", i+1, lines[i+1], w)
		}
	}
	if strings.Contains(out, "bio") {
		t.Error("tuesday schedule should not be listed")
	}
	if !strings.Contains(out, "3 scheduled, 3h30m total") {
		t.Errorf("missing totals:\n%s", out)
	}
}

func TestToday_OtherDay(t *testing.T) {
	a, repo := newTestApp(t)
	seed(t, repo, "", "bio", 11, 0, 12, 0, time.Tuesday)
	seed(t, repo, "", "math", 9, 0, 10, 0, time.Monday)

	out, err := run(t, a, "agenda", "tomorrow", "--subject", "bio")
	if err != nil {
		t.Fatalf("agenda failed: %v", err)
	}
	if !strings.Contains(out, "Tue, Jan 07") || !strings.Contains(out, "11:00 - 12:00  bio") {
		t.Errorf("unexpected output:\n%s", out)
	}
	if strings.ContainsAny(out, "✓▶○") {
		t.Error("days other than today should not be marked")
	}

	if _, err := run(t, newAppFor(t, a), "today", "someday"); err == nil {
		t.Error("expected invalid day error")
	}
}

func TestWeek(t *testing.T) {
	a, repo := newTestApp(t)
	seed(t, repo, "", "math", 9, 0, 10, 30, time.Monday, time.Wednesday)
	seed(t, repo, "", "art", 14, 0, 15, 0, time.Monday)

	out, err := run(t, a, "week")
	if err != nil {
		t.Fatalf("week failed: %v", err)
	}
	for _, want := range []string{"Mon  09:00 - 10:30  math", "     14:00 - 15:00  art", "Tue  -", "Weekly load", "3h", "1h"} {
		if !strings.Contains(out, want) {
			t.Errorf("week output missing %q:\n%s", want, out)
		}
	}
}

func TestVersion(t *testing.T) {
	a, _ := newTestApp(t)
	out, err := run(t, a, "version")
	if err != nil {
		t.Fatalf("version failed: %v", err)
	}
	if !strings.HasPrefix(out, "routine dev") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestNext(t *testing.T) {
	a, repo := newTestApp(t)
	seed(t, repo, "", "math", 9, 0, 10, 30, time.Monday)
	seed(t, repo, "", "art", 8, 0, 9, 0, time.Tuesday)
	seed(t, repo, "", "bio", 11, 0, 12, 0, time.Friday)

	out, err := run(t, a, "next", "--limit", "2")
	if err != nil {
		t.Fatalf("next failed: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "▶ today") || !strings.HasSuffix(lines[0], "09:00 - 10:30  math") {
		t.Errorf("line 0 = %q", lines[0])
	}
	if !strings.Contains(lines[1], "tomorrow") || !strings.HasSuffix(lines[1], "08:00 - 09:00  art") {
		t.Errorf("line 1 = %q", lines[1])
	}

	if _, err := run(t, newAppFor(t, a), "next", "--limit", "0"); err == nil {
		t.Error("expected limit error")
	}
}

func TestAdd_WarnsAboutOverlaps(t *testing.T) {
	a, repo := newTestApp(t)
	art := seed(t, repo, "", "art", 10, 0, 11, 0, time.Wednesday)

	out, err := run(t, a, "add", "math", "--days", "mon,wed", "--start", "09:00", "--end", "10:30")
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if !strings.Contains(out, "warning: overlaps "+ShortID(art.ID)+" art on Wed") {
		t.Errorf("expected overlap warning:\n%s", out)
	}
	if stored, _ := repo.ListSchedules(context.Background(), "math"); len(stored) != 1 {
		t.Error("overlapping schedule should still be stored")
	}
}
