package schedule

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Bit values of each weekday in the stored days_of_week column.
// They are only used when a DaySet crosses the storage boundary.
const (
	BitSunday = 1 << iota
	BitMonday
	BitTuesday
	BitWednesday
	BitThursday
	BitFriday
	BitSaturday

	// BitAllDays is the mask with every weekday set.
	BitAllDays = 1<<7 - 1
)

// ErrUnknownWeekday is returned when a weekday name cannot be parsed.
var ErrUnknownWeekday = errors.New("unknown weekday")

// ErrInvalidDayMask is returned when a stored mask has bits outside the seven weekdays.
var ErrInvalidDayMask = errors.New("days_of_week mask out of range")

// DaySet is a set of weekdays.
// The zero value is the empty set.
type DaySet struct {
	bits uint8
}

// NewDaySet returns a set holding the given days.
func NewDaySet(days ...time.Weekday) DaySet {
	var s DaySet
	for _, d := range days {
		s = s.With(d)
	}
	return s
}

// DaySetFromMask decodes a stored days_of_week mask.
func DaySetFromMask(mask int) (DaySet, error) {
	if mask < 0 || mask > BitAllDays {
		return DaySet{}, fmt.Errorf("%w: %d", ErrInvalidDayMask, mask)
	}
	return DaySet{bits: uint8(mask)}, nil
}

// Mask encodes the set as a days_of_week mask.
func (s DaySet) Mask() int {
	return int(s.bits)
}

// Has reports whether day is in the set.
func (s DaySet) Has(day time.Weekday) bool {
	if !validWeekday(day) {
		return false
	}
	return s.bits&dayBit(day) != 0
}

// With returns a copy of the set including day.
func (s DaySet) With(day time.Weekday) DaySet {
	if validWeekday(day) {
		s.bits |= dayBit(day)
	}
	return s
}

// Without returns a copy of the set excluding day.
func (s DaySet) Without(day time.Weekday) DaySet {
	if validWeekday(day) {
		s.bits &^= dayBit(day)
	}
	return s
}

// IsEmpty reports whether no day is selected.
func (s DaySet) IsEmpty() bool {
	return s.bits == 0
}

// Len returns the number of selected days.
func (s DaySet) Len() int {
	n := 0
	for b := s.bits; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// Days returns the selected days from Sunday to Saturday.
func (s DaySet) Days() []time.Weekday {
	days := make([]time.Weekday, 0, s.Len())
	for d := time.Sunday; d <= time.Saturday; d++ {
		if s.Has(d) {
			days = append(days, d)
		}
	}
	return days
}

// String returns the selected days as short names, e.g. "Mon, Wed".
func (s DaySet) String() string {
	if s.IsEmpty() {
		return "no days"
	}
	if s.bits == BitAllDays {
		return "every day"
	}
	names := make([]string, 0, s.Len())
	for _, d := range s.Days() {
		names = append(names, ShortDayName(d))
	}
	return strings.Join(names, ", ")
}

// ShortDayName returns the three letter name of a weekday.
func ShortDayName(d time.Weekday) string {
	return d.String()[:3]
}

var weekdayNames = map[string]time.Weekday{
	"sunday":    time.Sunday,
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sun":       time.Sunday,
	"mon":       time.Monday,
	"tue":       time.Tuesday,
	"wed":       time.Wednesday,
	"thu":       time.Thursday,
	"fri":       time.Friday,
	"sat":       time.Saturday,
}

// ParseWeekday parses a full or three letter weekday name (case-insensitive).
func ParseWeekday(s string) (time.Weekday, error) {
	d, ok := weekdayNames[strings.ToLower(strings.TrimSpace(s))]
	if !ok {
		return 0, fmt.Errorf("%w: %q", ErrUnknownWeekday, s)
	}
	return d, nil
}

// ParseDaySet parses a comma-separated list of weekday names.
// "weekdays", "weekends" and "all" are accepted as shortcuts.
func ParseDaySet(s string) (DaySet, error) {
	var set DaySet
	for _, part := range strings.Split(s, ",") {
		part = strings.ToLower(strings.TrimSpace(part))
		switch part {
		case "":
			continue
		case "all", "daily":
			set.bits = BitAllDays
			continue
		case "weekdays":
			set.bits |= BitMonday | BitTuesday | BitWednesday | BitThursday | BitFriday
			continue
		case "weekends":
			set.bits |= BitSaturday | BitSunday
			continue
		}
		d, err := ParseWeekday(part)
		if err != nil {
			return DaySet{}, err
		}
		set = set.With(d)
	}
	return set, nil
}

func dayBit(d time.Weekday) uint8 {
	return 1 << uint(d)
}

func validWeekday(d time.Weekday) bool {
	return d >= time.Sunday && d <= time.Saturday
}
