package tui

import (
	"errors"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/routine/internal/schedule"
	"github.com/javiermolinar/routine/internal/tui/commands"
)

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	LogKeyPress(msg)

	if msg.String() == "ctrl+c" {
		return m.cancel()
	}
	if m.picking {
		return m.handlePickerKeys(msg)
	}
	return m.handleSheetKeys(msg)
}

// handleSheetKeys handles keys while no picker is open.
func (m Model) handleSheetKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		return m.cancel()
	case "ctrl+s":
		return m.confirm()
	case "tab", "down", "j":
		return m.moveFocus(1), nil
	case "shift+tab", "up", "k":
		return m.moveFocus(-1), nil
	case "?":
		m.showHelp = !m.showHelp
		return m, nil
	case "y":
		return m, commands.CopyText(m.copyText(), m.copyFunc)
	}

	if m.focus == focusDays {
		return m.handleDayKeys(msg)
	}
	return m.handleTimeKeys(msg)
}

// handleDayKeys handles keys while the day chips are focused.
func (m Model) handleDayKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	key := msg.String()
	switch key {
	case "left", "h":
		if m.dayCursor > 0 {
			m.dayCursor--
		}
		return m, nil
	case "right", "l":
		if m.dayCursor < len(m.days)-1 {
			m.dayCursor++
		}
		return m, nil
	case " ", "x", "enter":
		return m.toggleDay(m.dayCursor)
	case "a":
		return m.setAllDays()
	}

	// 1-7 toggle the chip at that position
	if len(key) == 1 && key[0] >= '1' && key[0] <= '7' {
		idx := int(key[0] - '1')
		if idx < len(m.days) {
			m.dayCursor = idx
			return m.toggleDay(idx)
		}
	}
	return m, nil
}

// handleTimeKeys handles keys while a time field is focused.
func (m Model) handleTimeKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter", " ":
		return m.openPicker(m.focus)
	case "+", "=", "right", "l":
		return m.nudge(nudgeStep)
	case "-", "left", "h":
		return m.nudge(-nudgeStep)
	}
	return m, nil
}

// handlePickerKeys handles keys while the time input is open.
func (m Model) handlePickerKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		return m.closePicker(), nil
	case "enter":
		t, err := schedule.ParseTimeOfDay(strings.TrimSpace(m.picker.Value()))
		if err != nil {
			return m.setStatus("Enter a time like 09:00 or 9:30am", true)
		}
		field := m.pickerFor
		m = m.closePicker()
		return m.applyTime(field, t)
	}

	var cmd tea.Cmd
	m.picker, cmd = m.picker.Update(msg)
	return m, cmd
}

// toggleDay flips the chip at index idx.
func (m Model) toggleDay(idx int) (tea.Model, tea.Cmd) {
	day := m.days[idx]
	active, err := m.editor.ToggleDay(day)
	if err != nil {
		return m.sessionError(err)
	}
	LogDayToggle(day, active, m.editor.Days())
	return m, nil
}

// setAllDays selects every day, or clears all when every day is already selected.
func (m Model) setAllDays() (tea.Model, tea.Cmd) {
	active := m.editor.Days().Len() < len(m.days)
	for _, day := range m.days {
		if err := m.editor.SetDay(day, active); err != nil {
			return m.sessionError(err)
		}
	}
	LogDayToggle(m.days[m.dayCursor], active, m.editor.Days())
	return m, nil
}

// applyTime sets a field and flags the other end when auto-correction moved it.
func (m Model) applyTime(field focusArea, t schedule.TimeOfDay) (tea.Model, tea.Cmd) {
	before := m.editor.Window()

	var (
		after schedule.Window
		err   error
	)
	if field == focusStart {
		after, err = m.editor.SetStartTime(t)
	} else {
		after, err = m.editor.SetEndTime(t)
	}
	if err != nil {
		return m.sessionError(err)
	}
	LogWindowChange(field, before, after)

	m.startCorrected = false
	m.endCorrected = false
	if field == focusStart {
		m.endCorrected = endMoved(before, after)
	} else {
		m.startCorrected = startMoved(before, after)
	}

	if m.startCorrected || m.endCorrected {
		s, e := after.Format(m.config.Format.TimePattern)
		return m.setStatus("Adjusted to "+s+" - "+e, false)
	}
	return m, nil
}

// nudge moves the focused time by d, or opens the picker when it is unset.
func (m Model) nudge(d time.Duration) (tea.Model, tea.Cmd) {
	t, ok := m.fieldTime(m.focus)
	if !ok {
		return m.openPicker(m.focus)
	}
	return m.applyTime(m.focus, t.Add(d))
}

// confirm validates the draft and, when complete, hands it to the receiver.
func (m Model) confirm() (tea.Model, tea.Cmd) {
	result, err := m.editor.Confirm(m.ctx)
	LogValidation(result)
	if err != nil {
		if errors.Is(err, schedule.ErrSessionClosed) {
			return m.sessionError(err)
		}
		LogError("confirm", err)
		return m.setStatus("Error: "+err.Error(), true)
	}

	if !result.OK() {
		return m.focusInvalid(result)
	}

	m.saved = m.editor.Draft()
	m.outcome = OutcomeSaved
	LogConfirm(m.editor.Mode(), m.saved)
	return m, tea.Quit
}

// focusInvalid reports a failed validation and focuses the offending field.
// Missing times open the picker directly.
func (m Model) focusInvalid(result schedule.ValidationResult) (tea.Model, tea.Cmd) {
	m, statusCmd := m.setStatus(result.Message(), true)

	var pickCmd tea.Cmd
	switch result.Focus() {
	case schedule.FieldDays:
		m = m.setFocus(focusDays, "validation")
	case schedule.FieldStartTime:
		m, pickCmd = m.openPicker(focusStart)
	case schedule.FieldEndTime:
		m, pickCmd = m.openPicker(focusEnd)
	}
	return m, tea.Batch(statusCmd, pickCmd)
}

// cancel ends the session without saving.
func (m Model) cancel() (tea.Model, tea.Cmd) {
	if !m.editor.Closed() {
		m.editor.Cancel()
	}
	if m.outcome == OutcomePending {
		m.outcome = OutcomeCancelled
	}
	return m, tea.Quit
}

// sessionError reports a use of a closed session and quits.
func (m Model) sessionError(err error) (tea.Model, tea.Cmd) {
	LogError("session", err)
	if m.outcome == OutcomePending {
		m.outcome = OutcomeCancelled
	}
	return m, tea.Quit
}

// moveFocus cycles focus through days, start and end.
func (m Model) moveFocus(delta int) Model {
	next := (int(m.focus) + delta + 3) % 3
	return m.setFocus(focusArea(next), "navigate")
}

func (m Model) setFocus(f focusArea, reason string) Model {
	if f != m.focus {
		LogFocusChange(m.focus, f, reason)
	}
	m.focus = f
	return m
}

// fieldTime returns the time shown in a time field.
func (m Model) fieldTime(field focusArea) (schedule.TimeOfDay, bool) {
	w := m.editor.Window()
	if field == focusStart {
		return w.Start()
	}
	return w.End()
}

func startMoved(before, after schedule.Window) bool {
	b, bok := before.Start()
	a, aok := after.Start()
	return bok != aok || b != a
}

func endMoved(before, after schedule.Window) bool {
	b, bok := before.End()
	a, aok := after.End()
	return bok != aok || b != a
}

// copyText returns the draft as a single line, prefixed with its subject.
func (m Model) copyText() string {
	draft := m.editor.Draft()
	text := draft.Summary(m.config.Format.TimePattern)
	if draft.Subject != "" {
		text = draft.Subject + ": " + text
	}
	return text
}
