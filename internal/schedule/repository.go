package schedule

import (
	"context"
	"errors"
	"fmt"
)

// Storage errors.
var (
	ErrScheduleNotFound = errors.New("schedule not found")
	ErrIncomplete       = errors.New("schedule is incomplete")
)

// Repository defines the storage interface for schedules.
type Repository interface {
	// CreateSchedule stores a new schedule.
	CreateSchedule(ctx context.Context, s *WeeklySchedule) error

	// UpdateSchedule replaces an existing schedule.
	// Returns ErrScheduleNotFound if no schedule has s.ID.
	UpdateSchedule(ctx context.Context, s *WeeklySchedule) error

	// GetSchedule retrieves a schedule by ID, or nil if it does not exist.
	GetSchedule(ctx context.Context, id string) (*WeeklySchedule, error)

	// ListSchedules returns schedules for subject, or all schedules when subject is empty.
	ListSchedules(ctx context.Context, subject string) ([]*WeeklySchedule, error)

	// DeleteSchedule removes a schedule by ID.
	DeleteSchedule(ctx context.Context, id string) error

	// Close releases any resources held by the repository.
	Close() error
}

// StoreReceiver returns a Receiver that creates or updates confirmed schedules in repo.
func StoreReceiver(repo Repository) Receiver {
	return ReceiverFunc(func(ctx context.Context, mode Mode, s *WeeklySchedule) error {
		if r := s.Validate(); !r.OK() {
			return fmt.Errorf("%w: %s", ErrIncomplete, r)
		}
		if mode == ModeUpdate {
			return repo.UpdateSchedule(ctx, s)
		}
		return repo.CreateSchedule(ctx, s)
	})
}
