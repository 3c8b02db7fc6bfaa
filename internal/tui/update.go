package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/javiermolinar/routine/internal/tui/commands"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case commands.StatusMsgCmd:
		return m.setStatus(msg.Msg, false)

	case commands.CopiedMsg:
		return m.setStatus("Copied to clipboard", false)

	case commands.ErrMsg:
		LogError("command", msg.Err)
		return m.setStatus("Error: "+msg.Err.Error(), true)

	case commands.ClearStatusMsg:
		if msg.ID == m.statusID {
			m.statusMsg = ""
			m.statusErr = false
		}
		return m, nil
	}

	if m.picking {
		var cmd tea.Cmd
		m.picker, cmd = m.picker.Update(msg)
		return m, cmd
	}
	return m, nil
}

// setStatus shows a temporary status message.
func (m Model) setStatus(text string, isErr bool) (Model, tea.Cmd) {
	m.statusID++
	m.statusMsg = text
	m.statusErr = isErr
	return m, commands.ClearStatusAfter(m.statusID, commands.StatusTimeout)
}

// openPicker opens the time input for a time field, prefilled with its value.
func (m Model) openPicker(field focusArea) (Model, tea.Cmd) {
	m.picking = true
	m.pickerFor = field
	m.picker.Reset()
	if t, ok := m.fieldTime(field); ok {
		m.picker.SetValue(t.String())
		m.picker.CursorEnd()
	}
	LogFocusChange(m.focus, field, "picker")
	m.focus = field
	return m, tea.Batch(m.picker.Focus(), textinput.Blink)
}

// closePicker closes the time input without applying it.
func (m Model) closePicker() Model {
	m.picking = false
	m.picker.Blur()
	m.picker.Reset()
	return m
}
