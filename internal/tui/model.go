// Package tui provides the bottom-sheet schedule editor for routine.
package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/routine/internal/config"
	"github.com/javiermolinar/routine/internal/schedule"
	"github.com/javiermolinar/routine/internal/tui/theme"
)

// focusArea identifies the focused section of the sheet.
type focusArea int

const (
	focusDays focusArea = iota
	focusStart
	focusEnd
)

func (f focusArea) String() string {
	switch f {
	case focusDays:
		return "days"
	case focusStart:
		return "start"
	case focusEnd:
		return "end"
	default:
		return fmt.Sprintf("unknown(%d)", int(f))
	}
}

// Outcome tells how an edit session ended.
type Outcome int

const (
	OutcomePending Outcome = iota
	OutcomeSaved
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomeSaved:
		return "saved"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "pending"
	}
}

// nudgeStep is how far +/- moves a time.
const nudgeStep = 15 * time.Minute

// Model is the bubbletea model for the schedule editor sheet.
type Model struct {
	// Dependencies
	ctx    context.Context
	editor *schedule.Editor
	config *config.Config

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// Sheet state
	days      []time.Weekday // chip order
	dayCursor int
	focus     focusArea

	// Time picker
	picking   bool
	pickerFor focusArea
	picker    textinput.Model

	// Fields moved by the last auto-correction
	startCorrected bool
	endCorrected   bool

	showHelp bool

	// Messages
	statusMsg string
	statusErr bool
	statusID  int

	// Terminal dimensions
	width  int
	height int

	outcome Outcome
	saved   *schedule.WeeklySchedule

	copyFunc func(string) error
}

// New creates a new editor sheet model over an open edit session.
func New(ctx context.Context, editor *schedule.Editor, cfg *config.Config) Model {
	if ctx == nil {
		ctx = context.Background()
	}
	if cfg == nil {
		cfg = config.Default()
	}

	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}
	styles := NewStyles(t)

	picker := textinput.New()
	picker.Placeholder = "09:00 or 9:30am"
	picker.CharLimit = 8
	picker.Width = 12
	picker.Prompt = "> "
	picker.PromptStyle = styles.PickerPromptStyle
	picker.TextStyle = styles.PickerTextStyle
	picker.PlaceholderStyle = styles.PickerPlaceholderStyle

	return Model{
		ctx:      ctx,
		editor:   editor,
		config:   cfg,
		theme:    t,
		styles:   styles,
		days:     cfg.WeekOrder(),
		focus:    focusDays,
		picker:   picker,
		copyFunc: clipboard.WriteAll,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Outcome returns how the session ended.
func (m Model) Outcome() Outcome { return m.outcome }

// Saved returns the schedule handed to the receiver, or nil.
func (m Model) Saved() *schedule.WeeklySchedule { return m.saved }

// Result is the outcome of running the editor sheet.
type Result struct {
	Outcome  Outcome
	Schedule *schedule.WeeklySchedule // set when saved
}

// Run shows the editor sheet until the user confirms or cancels.
func Run(ctx context.Context, editor *schedule.Editor, cfg *config.Config, debug bool) (Result, error) {
	if err := InitDebugLogger(debug); err != nil {
		return Result{}, err
	}
	defer CloseDebugLogger()

	p := tea.NewProgram(New(ctx, editor, cfg), tea.WithAltScreen(), tea.WithContext(ctx))
	final, err := p.Run()
	if err != nil {
		LogError("run", err)
		return Result{}, fmt.Errorf("running editor: %w", err)
	}

	m, ok := final.(Model)
	if !ok {
		return Result{}, fmt.Errorf("unexpected model type %T", final)
	}
	return Result{Outcome: m.outcome, Schedule: m.saved}, nil
}
