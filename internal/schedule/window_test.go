package schedule

import (
	"errors"
	"testing"
	"time"
)

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		input   string
		want    string
		wantErr bool
	}{
		{"09:00", "09:00", false},
		{"9:05", "09:05", false},
		{"23:59", "23:59", false},
		{"9:30 am", "09:30", false},
		{"9:30PM", "21:30", false},
		{"12am", "00:00", false},
		{"5 pm", "17:00", false},
		{"24:00", "", true},
		{"noon", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.input)
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidTimeFormat) {
					t.Fatalf("expected ErrInvalidTimeFormat, got %v", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got.String() != tt.want {
				t.Errorf("ParseTimeOfDay(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestTimeOfDay_AddWrapsMidnight(t *testing.T) {
	tests := []struct {
		from time.Duration
		add  time.Duration
		want string
	}{
		{9 * time.Hour, DefaultCorrection, "10:30"},
		{23 * time.Hour, DefaultCorrection, "00:30"},
		{time.Hour, -DefaultCorrection, "23:30"},
		{0, -time.Minute, "23:59"},
	}
	for _, tt := range tests {
		start := TimeOfDay{minutes: int(tt.from / time.Minute)}
		if got := start.Add(tt.add).String(); got != tt.want {
			t.Errorf("%s + %s = %s, want %s", start, tt.add, got, tt.want)
		}
	}
}

func TestTimeOfDay_Format(t *testing.T) {
	tod := MustTimeOfDay(14, 30)
	if got := tod.Format("%I:%M %p"); got != "02:30 PM" {
		t.Errorf("Format() = %q", got)
	}
	if got := tod.Format("%H:%M"); got != "14:30" {
		t.Errorf("Format() = %q", got)
	}
}

func TestNewTimeOfDay_Invalid(t *testing.T) {
	for _, hm := range [][2]int{{-1, 0}, {24, 0}, {12, 60}, {0, -5}} {
		if _, err := NewTimeOfDay(hm[0], hm[1]); !errors.Is(err, ErrInvalidTimeFormat) {
			t.Errorf("NewTimeOfDay(%d, %d) error = %v", hm[0], hm[1], err)
		}
	}
}

func TestWindow_WithStart(t *testing.T) {
	nine := MustTimeOfDay(9, 0)
	ten := MustTimeOfDay(10, 0)
	noon := MustTimeOfDay(12, 0)

	tests := []struct {
		name     string
		window   Window
		start    TimeOfDay
		wantFrom string
		wantTo   string
	}{
		{"unset seeds end then corrects", Window{}, nine, "09:00", "10:30"},
		{"before end keeps end", NewWindow(nine, noon), ten, "10:00", "12:00"},
		{"equal to end corrects", NewWindow(nine, noon), noon, "12:00", "13:30"},
		{"after end corrects", NewWindow(nine, ten), noon, "12:00", "13:30"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.window.WithStart(tt.start, DefaultCorrection)
			if got := w.String(); got != tt.wantFrom+"-"+tt.wantTo {
				t.Errorf("window = %s, want %s-%s", got, tt.wantFrom, tt.wantTo)
			}
			if !w.IsSet() {
				t.Errorf("window should have both ends set")
			}
		})
	}
}

func TestWindow_WithEnd(t *testing.T) {
	nine := MustTimeOfDay(9, 0)
	ten := MustTimeOfDay(10, 0)
	noon := MustTimeOfDay(12, 0)

	tests := []struct {
		name   string
		window Window
		end    TimeOfDay
		want   string
	}{
		{"unset seeds start then corrects", Window{}, noon, "10:30-12:00"},
		{"after start keeps start", NewWindow(nine, ten), noon, "09:00-12:00"},
		{"equal to start corrects", NewWindow(ten, noon), ten, "08:30-10:00"},
		{"before start corrects", NewWindow(noon, MustTimeOfDay(13, 0)), ten, "08:30-10:00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := tt.window.WithEnd(tt.end, DefaultCorrection)
			if got := w.String(); got != tt.want {
				t.Errorf("window = %s, want %s", got, tt.want)
			}
		})
	}
}

func TestWindow_CustomCorrection(t *testing.T) {
	w := Window{}.WithStart(MustTimeOfDay(9, 0), 45*time.Minute)
	if got := w.String(); got != "09:00-09:45" {
		t.Errorf("window = %s, want 09:00-09:45", got)
	}
}

func TestWindow_WrapPastMidnightIsNotValid(t *testing.T) {
	w := Window{}.WithStart(MustTimeOfDay(23, 0), DefaultCorrection)
	if got := w.String(); got != "23:00-00:30" {
		t.Fatalf("window = %s, want 23:00-00:30", got)
	}
	if !w.IsSet() {
		t.Error("window should be set")
	}
	if w.Valid() {
		t.Error("wrapped window should not be valid")
	}
	if w.Duration() != 0 {
		t.Errorf("Duration() = %s, want 0", w.Duration())
	}
}

func TestWindow_RestorePartial(t *testing.T) {
	nine := MustTimeOfDay(9, 0)
	w := RestoreWindow(&nine, nil)
	if w.IsSet() || w.IsEmpty() {
		t.Fatalf("expected partial window, got %s", w)
	}
	if _, ok := w.End(); ok {
		t.Error("end should be unset")
	}

	// the next edit completes it
	w = w.WithEnd(MustTimeOfDay(10, 30), DefaultCorrection)
	if got := w.String(); got != "09:00-10:30" {
		t.Errorf("window = %s, want 09:00-10:30", got)
	}
}

func TestWindow_DurationAndContains(t *testing.T) {
	w := NewWindow(MustTimeOfDay(9, 0), MustTimeOfDay(10, 30))
	if w.Duration() != 90*time.Minute {
		t.Errorf("Duration() = %s", w.Duration())
	}
	if !w.Contains(MustTimeOfDay(9, 0)) || !w.Contains(MustTimeOfDay(10, 29)) {
		t.Error("expected start and last minute to be contained")
	}
	if w.Contains(MustTimeOfDay(10, 30)) {
		t.Error("end is exclusive")
	}
}

func TestWindow_Format(t *testing.T) {
	w := NewWindow(MustTimeOfDay(9, 0), MustTimeOfDay(13, 15))
	start, end := w.Format("%I:%M %p")
	if start != "09:00 AM" || end != "01:15 PM" {
		t.Errorf("Format() = %q, %q", start, end)
	}

	start, end = Window{}.Format("%H:%M")
	if start != "" || end != "" {
		t.Errorf("unset window should format as empty strings, got %q, %q", start, end)
	}
}
