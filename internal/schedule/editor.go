package schedule

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// ErrSessionClosed is returned when an editor is used after confirm or cancel.
var ErrSessionClosed = errors.New("edit session is closed")

// Request codes that tell the receiver whether a schedule is new or edited.
const (
	RequestCodeInsert = 43
	RequestCodeUpdate = 89
)

// Mode tells whether an editor creates or updates a schedule.
type Mode int

const (
	ModeInsert Mode = iota
	ModeUpdate
)

// RequestCode returns the request code for the mode.
func (m Mode) RequestCode() int {
	if m == ModeUpdate {
		return RequestCodeUpdate
	}
	return RequestCodeInsert
}

func (m Mode) String() string {
	if m == ModeUpdate {
		return "update"
	}
	return "insert"
}

// Receiver accepts schedules confirmed by an editor.
type Receiver interface {
	Receive(ctx context.Context, mode Mode, s *WeeklySchedule) error
}

// ReceiverFunc adapts a function to Receiver.
type ReceiverFunc func(ctx context.Context, mode Mode, s *WeeklySchedule) error

// Receive calls f.
func (f ReceiverFunc) Receive(ctx context.Context, mode Mode, s *WeeklySchedule) error {
	return f(ctx, mode, s)
}

// Editor is a single edit session over a draft schedule.
// It is not safe for concurrent use.
type Editor struct {
	draft       *WeeklySchedule
	mode        Mode
	receiver    Receiver
	correction  time.Duration
	defaultDays DaySet
	closed      bool
}

// EditorOption configures an Editor.
type EditorOption func(*Editor)

// WithCorrection overrides DefaultCorrection.
// Values outside [1m, 24h) are ignored.
func WithCorrection(d time.Duration) EditorOption {
	return func(e *Editor) {
		if d >= time.Minute && d < minutesPerDay*time.Minute {
			e.correction = d
		}
	}
}

// WithDefaultDays preselects days when creating a new schedule.
func WithDefaultDays(days DaySet) EditorOption {
	return func(e *Editor) {
		e.defaultDays = days
	}
}

// NewEditor starts an edit session.
// A nil existing schedule opens the session in insert mode for subject; otherwise the
// session edits a copy of existing in update mode and existing is left untouched.
func NewEditor(subject string, existing *WeeklySchedule, receiver Receiver, opts ...EditorOption) *Editor {
	e := &Editor{
		receiver:   receiver,
		correction: DefaultCorrection,
	}
	for _, opt := range opts {
		opt(e)
	}

	if existing == nil {
		e.mode = ModeInsert
		e.draft = New(subject)
		e.draft.Days = e.defaultDays
		return e
	}

	e.mode = ModeUpdate
	e.draft = existing.Clone()
	if e.draft.Subject == "" {
		e.draft.Subject = subject
	}
	return e
}

// Mode returns the session mode.
func (e *Editor) Mode() Mode { return e.mode }

// Correction returns the auto-correction delta in use.
func (e *Editor) Correction() time.Duration { return e.correction }

// Closed reports whether the session has ended.
func (e *Editor) Closed() bool { return e.closed }

// Draft returns a copy of the schedule being edited.
func (e *Editor) Draft() *WeeklySchedule { return e.draft.Clone() }

// Days returns the selected days.
func (e *Editor) Days() DaySet { return e.draft.Days }

// Window returns the current time window.
func (e *Editor) Window() Window { return e.draft.Window }

// SetDay selects or clears a day.
func (e *Editor) SetDay(day time.Weekday, active bool) error {
	if e.closed {
		return ErrSessionClosed
	}
	e.draft.SetDay(day, active)
	return nil
}

// ToggleDay flips a day and returns its new state.
func (e *Editor) ToggleDay(day time.Weekday) (bool, error) {
	active := !e.draft.Days.Has(day)
	if err := e.SetDay(day, active); err != nil {
		return false, err
	}
	return active, nil
}

// SetStartTime sets the start time and returns the possibly corrected window.
func (e *Editor) SetStartTime(t TimeOfDay) (Window, error) {
	if e.closed {
		return e.draft.Window, ErrSessionClosed
	}
	return e.draft.SetStartTimeWith(t, e.correction), nil
}

// SetEndTime sets the end time and returns the possibly corrected window.
func (e *Editor) SetEndTime(t TimeOfDay) (Window, error) {
	if e.closed {
		return e.draft.Window, ErrSessionClosed
	}
	return e.draft.SetEndTimeWith(t, e.correction), nil
}

// Validate validates the draft.
func (e *Editor) Validate() ValidationResult {
	return e.draft.Validate()
}

// Confirm validates the draft and, when valid, hands it to the receiver and closes
// the session. An invalid draft leaves the session open; the result tells which
// field to focus. A receiver error also leaves the session open.
func (e *Editor) Confirm(ctx context.Context) (ValidationResult, error) {
	if e.closed {
		return Valid, ErrSessionClosed
	}
	result := e.draft.Validate()
	if !result.OK() {
		return result, nil
	}

	out := e.draft.Clone()
	now := time.Now()
	if e.mode == ModeInsert && out.CreatedAt.IsZero() {
		out.CreatedAt = now
	}
	out.UpdatedAt = now

	if e.receiver != nil {
		if err := e.receiver.Receive(ctx, e.mode, out); err != nil {
			return result, fmt.Errorf("receiving schedule: %w", err)
		}
	}
	e.draft = out
	e.closed = true
	return result, nil
}

// Cancel ends the session without emitting the draft.
func (e *Editor) Cancel() {
	e.closed = true
}
