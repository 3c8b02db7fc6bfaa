package tui

import (
	"strings"

	"github.com/javiermolinar/routine/internal/schedule"
	"github.com/javiermolinar/routine/internal/tui/view"
)

const (
	shortHelp = "tab next • space toggle • ctrl+s save • esc quit • ? help"
	fullHelp  = "tab/shift+tab focus • ←/→ move • space/x toggle day\n" +
		"1-7 toggle by position • a all days • y copy\n" +
		"enter pick time • +/- 15 minutes • ctrl+s save\n" +
		"esc cancel • ? hide help"
)

// View implements tea.Model.
func (m Model) View() string {
	if m.outcome != OutcomePending {
		return ""
	}

	width := sheetWidth
	if m.width > 0 && m.width < width {
		width = m.width
	}

	sheet := view.RenderSheet(m.sheetModel(width), m.styles.SheetStyles())
	if m.width == 0 || m.height == 0 {
		return sheet
	}
	return view.PlaceBottom(m.width, m.height, sheet, m.styles.colorBg)
}

// sheetModel maps the editor state onto the sheet view model.
func (m Model) sheetModel(width int) view.SheetModel {
	draft := m.editor.Draft()

	chips := make([]view.Chip, 0, len(m.days))
	for i, day := range m.days {
		chips = append(chips, view.Chip{
			Label:   schedule.ShortDayName(day),
			Active:  draft.Days.Has(day),
			Focused: m.focus == focusDays && i == m.dayCursor,
		})
	}

	start, end := draft.Window.Format(m.config.Format.TimePattern)

	title := "New schedule"
	if m.editor.Mode() == schedule.ModeUpdate {
		title = "Edit schedule"
	}

	sm := view.SheetModel{
		Title:       title,
		Subject:     draft.Subject,
		Chips:       chips,
		DaysFocused: m.focus == focusDays,
		Start: view.TimeField{
			Label:     "START",
			Value:     start,
			Focused:   m.focus == focusStart,
			Corrected: m.startCorrected,
		},
		End: view.TimeField{
			Label:     "END",
			Value:     end,
			Focused:   m.focus == focusEnd,
			Corrected: m.endCorrected,
		},
		Placeholder: "--:--",
		Status:      m.statusMsg,
		StatusError: m.statusErr,
		Help:        shortHelp,
		Width:       width,
	}

	if m.showHelp {
		sm.Help = fullHelp
	}

	if m.picking {
		sm.Picker = m.picker.View()
		sm.PickerLabel = strings.ToUpper(m.pickerFor.String()) + " TIME"
	}

	return sm
}
