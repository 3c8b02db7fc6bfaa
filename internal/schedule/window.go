package schedule

import "time"

// DefaultCorrection is how far apart the two ends of a window are pushed when an
// edit would leave the end at or before the start.
const DefaultCorrection = time.Hour + 30*time.Minute

// Window is the daily time range of a schedule.
//
// A window is either unset or has both ends set. Picking the first end seeds the
// other one, so mutations never leave exactly one end set. Only RestoreWindow can
// build a partial window, for records that were stored incomplete.
type Window struct {
	start    TimeOfDay
	end      TimeOfDay
	hasStart bool
	hasEnd   bool
}

// NewWindow returns a window with both ends set as given, without correction.
func NewWindow(start, end TimeOfDay) Window {
	return Window{start: start, end: end, hasStart: true, hasEnd: true}
}

// RestoreWindow rebuilds a window from nullable stored values.
func RestoreWindow(start, end *TimeOfDay) Window {
	var w Window
	if start != nil {
		w.start, w.hasStart = *start, true
	}
	if end != nil {
		w.end, w.hasEnd = *end, true
	}
	return w
}

// IsSet reports whether both ends are set.
func (w Window) IsSet() bool {
	return w.hasStart && w.hasEnd
}

// IsEmpty reports whether neither end is set.
func (w Window) IsEmpty() bool {
	return !w.hasStart && !w.hasEnd
}

// Start returns the start time and whether it is set.
func (w Window) Start() (TimeOfDay, bool) {
	return w.start, w.hasStart
}

// End returns the end time and whether it is set.
func (w Window) End() (TimeOfDay, bool) {
	return w.end, w.hasEnd
}

// WithStart sets the start time.
// An unset end is seeded with t; an end at or before t is moved to t+correction.
func (w Window) WithStart(t TimeOfDay, correction time.Duration) Window {
	w.start, w.hasStart = t, true
	if !w.hasEnd {
		w.end, w.hasEnd = t, true
	}
	if !w.start.Before(w.end) {
		w.end = w.start.Add(correction)
	}
	return w
}

// WithEnd sets the end time.
// An unset start is seeded with t; a start at or after t is moved to t-correction.
func (w Window) WithEnd(t TimeOfDay, correction time.Duration) Window {
	w.end, w.hasEnd = t, true
	if !w.hasStart {
		w.start, w.hasStart = t, true
	}
	if !w.start.Before(w.end) {
		w.start = w.end.Add(-correction)
	}
	return w
}

// Valid reports whether both ends are set and start is strictly before end.
// A correction that wraps past midnight yields a set but invalid window.
func (w Window) Valid() bool {
	return w.IsSet() && w.start.Before(w.end)
}

// Duration returns end minus start, or 0 when the window is not valid.
func (w Window) Duration() time.Duration {
	if !w.Valid() {
		return 0
	}
	return time.Duration(w.end.minutes-w.start.minutes) * time.Minute
}

// Contains reports whether t falls in [start, end).
func (w Window) Contains(t TimeOfDay) bool {
	return w.Valid() && !t.Before(w.start) && t.Before(w.end)
}

// Format returns both ends formatted with a strftime pattern.
// Unset ends are returned as empty strings.
func (w Window) Format(pattern string) (start, end string) {
	if w.hasStart {
		start = w.start.Format(pattern)
	}
	if w.hasEnd {
		end = w.end.Format(pattern)
	}
	return start, end
}

// String returns the window as "HH:MM-HH:MM", with "--:--" for unset ends.
func (w Window) String() string {
	s, e := "--:--", "--:--"
	if w.hasStart {
		s = w.start.String()
	}
	if w.hasEnd {
		e = w.end.String()
	}
	return s + "-" + e
}
