package schedule

import "fmt"

// ValidationResult is the outcome of WeeklySchedule.Validate.
type ValidationResult int

const (
	Valid ValidationResult = iota
	EmptyDays
	MissingStartTime
	MissingEndTime
)

// Field identifies an input the user should be sent back to.
type Field int

const (
	FieldNone Field = iota
	FieldDays
	FieldStartTime
	FieldEndTime
)

// OK reports whether the result is Valid.
func (r ValidationResult) OK() bool {
	return r == Valid
}

// Focus returns the field that needs the user's attention.
func (r ValidationResult) Focus() Field {
	switch r {
	case EmptyDays:
		return FieldDays
	case MissingStartTime:
		return FieldStartTime
	case MissingEndTime:
		return FieldEndTime
	default:
		return FieldNone
	}
}

// Message returns the feedback shown to the user.
func (r ValidationResult) Message() string {
	switch r {
	case Valid:
		return ""
	case EmptyDays:
		return "Select at least one day of the week"
	case MissingStartTime:
		return "Pick a start time for this schedule"
	case MissingEndTime:
		return "Pick an end time for this schedule"
	default:
		return fmt.Sprintf("unknown validation result %d", int(r))
	}
}

func (r ValidationResult) String() string {
	switch r {
	case Valid:
		return "valid"
	case EmptyDays:
		return "empty_days"
	case MissingStartTime:
		return "missing_start_time"
	case MissingEndTime:
		return "missing_end_time"
	default:
		return fmt.Sprintf("ValidationResult(%d)", int(r))
	}
}

func (f Field) String() string {
	switch f {
	case FieldNone:
		return "none"
	case FieldDays:
		return "days"
	case FieldStartTime:
		return "start_time"
	case FieldEndTime:
		return "end_time"
	default:
		return fmt.Sprintf("Field(%d)", int(f))
	}
}
