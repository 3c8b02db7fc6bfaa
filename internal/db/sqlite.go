// Package db provides SQLite storage implementation.
package db

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/javiermolinar/routine/internal/schedule"
)

// SQLite implements schedule.Repository using SQLite.
type SQLite struct {
	db *sql.DB
}

var _ schedule.Repository = (*SQLite)(nil)

// New creates a new SQLite repository and runs migrations.
func New(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("connecting to database: %w", err)
	}

	s := &SQLite{db: db}
	if err := s.migrate(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("running migrations: %w", err)
	}

	return s, nil
}

const selectColumns = `id, subject, days_of_week, start_time, end_time, created_at, updated_at`

// CreateSchedule stores a new schedule.
// Only complete schedules are accepted.
func (s *SQLite) CreateSchedule(ctx context.Context, sc *schedule.WeeklySchedule) error {
	if r := sc.Validate(); !r.OK() {
		return fmt.Errorf("%w: %s", schedule.ErrIncomplete, r)
	}

	now := time.Now()
	if sc.CreatedAt.IsZero() {
		sc.CreatedAt = now
	}
	if sc.UpdatedAt.IsZero() {
		sc.UpdatedAt = now
	}

	start, end := timeColumns(sc.Window)
	query := `
		INSERT INTO schedules (id, subject, days_of_week, start_time, end_time, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?)
	`
	_, err := s.db.ExecContext(ctx, query,
		sc.ID,
		sc.Subject,
		sc.Days.Mask(),
		start,
		end,
		sc.CreatedAt.Format(time.RFC3339),
		sc.UpdatedAt.Format(time.RFC3339),
	)
	if err != nil {
		return fmt.Errorf("inserting schedule: %w", err)
	}
	return nil
}

// UpdateSchedule replaces the days and times of an existing schedule.
func (s *SQLite) UpdateSchedule(ctx context.Context, sc *schedule.WeeklySchedule) error {
	if r := sc.Validate(); !r.OK() {
		return fmt.Errorf("%w: %s", schedule.ErrIncomplete, r)
	}
	if sc.UpdatedAt.IsZero() {
		sc.UpdatedAt = time.Now()
	}

	start, end := timeColumns(sc.Window)
	query := `
		UPDATE schedules
		SET subject = ?, days_of_week = ?, start_time = ?, end_time = ?, updated_at = ?
		WHERE id = ?
	`
	result, err := s.db.ExecContext(ctx, query,
		sc.Subject,
		sc.Days.Mask(),
		start,
		end,
		sc.UpdatedAt.Format(time.RFC3339),
		sc.ID,
	)
	if err != nil {
		return fmt.Errorf("updating schedule: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", schedule.ErrScheduleNotFound, sc.ID)
	}
	return nil
}

// GetSchedule retrieves a schedule by ID.
// Returns nil if the schedule does not exist.
func (s *SQLite) GetSchedule(ctx context.Context, id string) (*schedule.WeeklySchedule, error) {
	query := `SELECT ` + selectColumns + ` FROM schedules WHERE id = ?`

	sc, err := scanSchedule(s.db.QueryRowContext(ctx, query, id))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying schedule: %w", err)
	}
	return sc, nil
}

// ListSchedules returns schedules ordered by subject and start time.
// An empty subject lists every schedule.
func (s *SQLite) ListSchedules(ctx context.Context, subject string) ([]*schedule.WeeklySchedule, error) {
	query := `SELECT ` + selectColumns + ` FROM schedules`
	var args []any
	if subject != "" {
		query += ` WHERE subject = ?`
		args = append(args, subject)
	}
	query += ` ORDER BY subject, start_time, created_at`

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying schedules: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var schedules []*schedule.WeeklySchedule
	for rows.Next() {
		sc, err := scanSchedule(rows)
		if err != nil {
			return nil, fmt.Errorf("scanning schedule: %w", err)
		}
		schedules = append(schedules, sc)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating schedules: %w", err)
	}

	return schedules, nil
}

// DeleteSchedule removes a schedule by ID.
func (s *SQLite) DeleteSchedule(ctx context.Context, id string) error {
	result, err := s.db.ExecContext(ctx, `DELETE FROM schedules WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("deleting schedule: %w", err)
	}

	rows, _ := result.RowsAffected()
	if rows == 0 {
		return fmt.Errorf("%w: %s", schedule.ErrScheduleNotFound, id)
	}
	return nil
}

// Close releases database resources.
func (s *SQLite) Close() error {
	return s.db.Close()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanSchedule(row rowScanner) (*schedule.WeeklySchedule, error) {
	var (
		sc        schedule.WeeklySchedule
		mask      int
		start     sql.NullString
		end       sql.NullString
		createdAt sql.NullString
		updatedAt sql.NullString
	)

	if err := row.Scan(&sc.ID, &sc.Subject, &mask, &start, &end, &createdAt, &updatedAt); err != nil {
		return nil, err
	}

	days, err := schedule.DaySetFromMask(mask)
	if err != nil {
		return nil, err
	}
	sc.Days = days

	startTime, err := parseTimeColumn(start)
	if err != nil {
		return nil, fmt.Errorf("parsing start time: %w", err)
	}
	endTime, err := parseTimeColumn(end)
	if err != nil {
		return nil, fmt.Errorf("parsing end time: %w", err)
	}
	sc.Window = schedule.RestoreWindow(startTime, endTime)

	if sc.CreatedAt, err = parseTimestamp(createdAt); err != nil {
		return nil, fmt.Errorf("parsing created at: %w", err)
	}
	if sc.UpdatedAt, err = parseTimestamp(updatedAt); err != nil {
		return nil, fmt.Errorf("parsing updated at: %w", err)
	}

	return &sc, nil
}

// timeColumns converts a window to nullable HH:MM column values.
func timeColumns(w schedule.Window) (start, end sql.NullString) {
	if t, ok := w.Start(); ok {
		start = sql.NullString{String: t.String(), Valid: true}
	}
	if t, ok := w.End(); ok {
		end = sql.NullString{String: t.String(), Valid: true}
	}
	return start, end
}

func parseTimeColumn(v sql.NullString) (*schedule.TimeOfDay, error) {
	if !v.Valid || v.String == "" {
		return nil, nil
	}
	t, err := schedule.ParseTimeOfDay(v.String)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

// parseTimestamp accepts RFC3339 values written by this package and the
// "YYYY-MM-DD HH:MM:SS" form produced by CURRENT_TIMESTAMP.
func parseTimestamp(v sql.NullString) (time.Time, error) {
	if !v.Valid || v.String == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse(time.RFC3339, v.String); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02 15:04:05", v.String)
}
