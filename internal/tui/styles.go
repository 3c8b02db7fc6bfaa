package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/javiermolinar/routine/internal/tui/theme"
	"github.com/javiermolinar/routine/internal/tui/view"
)

// sheetWidth is the preferred width of the editor sheet.
const sheetWidth = 64

// Styles holds all lipgloss styles for the TUI, derived from a theme.
type Styles struct {
	colorBg          lipgloss.Color
	colorBgHighlight lipgloss.Color
	colorBgSelection lipgloss.Color
	colorFg          lipgloss.Color
	colorFgMuted     lipgloss.Color
	colorAccent      lipgloss.Color
	colorActive      lipgloss.Color
	colorWarning     lipgloss.Color
	colorError       lipgloss.Color

	SheetStyle        lipgloss.Style
	TitleStyle        lipgloss.Style
	SubjectStyle      lipgloss.Style
	SectionTitleStyle lipgloss.Style
	SectionFocusStyle lipgloss.Style

	// Day chips
	ChipActiveStyle   lipgloss.Style
	ChipInactiveStyle lipgloss.Style
	ChipFocusedStyle  lipgloss.Style

	// Time fields
	FieldValueStyle   lipgloss.Style
	FieldEmptyStyle   lipgloss.Style
	FieldFocusedStyle lipgloss.Style
	FieldWarningStyle lipgloss.Style

	// Time picker input
	PickerPromptStyle      lipgloss.Style
	PickerTextStyle        lipgloss.Style
	PickerPlaceholderStyle lipgloss.Style

	StatusStyle      lipgloss.Style
	StatusErrorStyle lipgloss.Style
	HelpStyle        lipgloss.Style
}

// NewStyles creates styles from a theme.
func NewStyles(t *theme.Theme) *Styles {
	s := &Styles{
		colorBg:          theme.Color(t.Bg),
		colorBgHighlight: theme.Color(t.BgHighlight),
		colorBgSelection: theme.Color(t.BgSelection),
		colorFg:          theme.Color(t.Fg),
		colorFgMuted:     theme.Color(t.FgMuted),
		colorAccent:      theme.Color(t.Accent),
		colorActive:      theme.Color(t.Active),
		colorWarning:     theme.Color(t.Warning),
		colorError:       theme.Color(t.Error),
	}

	s.SheetStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder(), true, true, false, true).
		BorderForeground(s.colorAccent).
		Padding(1, 2)

	s.TitleStyle = lipgloss.NewStyle().Foreground(s.colorAccent).Bold(true)
	s.SubjectStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.SectionTitleStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted).Bold(true)
	s.SectionFocusStyle = lipgloss.NewStyle().Foreground(s.colorAccent).Bold(true)

	s.ChipInactiveStyle = lipgloss.NewStyle().
		Foreground(s.colorFg).
		Background(s.colorBgHighlight).
		Padding(0, 1)
	s.ChipActiveStyle = lipgloss.NewStyle().
		Foreground(s.colorBg).
		Background(s.colorActive).
		Bold(true).
		Padding(0, 1)
	s.ChipFocusedStyle = lipgloss.NewStyle().
		Underline(true).
		Padding(0, 1)

	s.FieldValueStyle = lipgloss.NewStyle().Foreground(s.colorFg)
	s.FieldEmptyStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)
	s.FieldFocusedStyle = lipgloss.NewStyle().Background(s.colorBgSelection)
	s.FieldWarningStyle = lipgloss.NewStyle().Foreground(s.colorWarning)

	s.PickerPromptStyle = lipgloss.NewStyle().Foreground(s.colorAccent)
	s.PickerTextStyle = lipgloss.NewStyle().Foreground(s.colorFg)
	s.PickerPlaceholderStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	s.StatusStyle = lipgloss.NewStyle().Foreground(s.colorActive)
	s.StatusErrorStyle = lipgloss.NewStyle().Foreground(s.colorError)
	s.HelpStyle = lipgloss.NewStyle().Foreground(s.colorFgMuted)

	return s
}

// SheetStyles returns the styles needed to render the editor sheet.
func (s *Styles) SheetStyles() view.SheetStyles {
	return view.SheetStyles{
		Sheet:        s.SheetStyle,
		Title:        s.TitleStyle,
		Subject:      s.SubjectStyle,
		SectionTitle: s.SectionTitleStyle,
		SectionFocus: s.SectionFocusStyle,
		ChipActive:   s.ChipActiveStyle,
		ChipInactive: s.ChipInactiveStyle,
		ChipFocused:  s.ChipFocusedStyle,
		FieldValue:   s.FieldValueStyle,
		FieldEmpty:   s.FieldEmptyStyle,
		FieldFocused: s.FieldFocusedStyle,
		FieldWarning: s.FieldWarningStyle,
		Status:       s.StatusStyle,
		StatusError:  s.StatusErrorStyle,
		Help:         s.HelpStyle,
	}
}
