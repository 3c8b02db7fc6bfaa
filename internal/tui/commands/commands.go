// Package commands provides TUI command constructors and message types.
package commands

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// StatusTimeout is how long a status message stays visible.
const StatusTimeout = 3 * time.Second

// ErrMsg is sent when an error occurs.
type ErrMsg struct {
	Err error
}

// StatusMsgCmd is sent for temporary status messages.
type StatusMsgCmd struct {
	Msg string
}

// ClearStatusMsg is sent to clear the status message with the given ID.
// Messages set after the timer started carry a newer ID and survive.
type ClearStatusMsg struct {
	ID int
}

// CopiedMsg is sent after text was written to the clipboard.
type CopiedMsg struct {
	Text string
}

// ClearStatusAfter schedules clearing status message id.
func ClearStatusAfter(id int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return ClearStatusMsg{ID: id}
	})
}

// CopyText writes text using write and reports the outcome.
func CopyText(text string, write func(string) error) tea.Cmd {
	return func() tea.Msg {
		if err := write(text); err != nil {
			return ErrMsg{Err: err}
		}
		return CopiedMsg{Text: text}
	}
}
