package ui

import (
	"os"

	"github.com/fatih/color"
	"golang.org/x/term"
)

// Color definitions for consistent styling across the UI.
var (
	// Subjects: bold cyan
	colorSubject = color.New(color.FgCyan, color.Bold)

	// Selected days: green
	colorDayOn = color.New(color.FgGreen)

	// Unselected days: dim
	colorDayOff = color.New(color.FgWhite, color.Faint)

	// Happening now: yellow to make it pop
	colorNow = color.New(color.FgYellow, color.Bold)

	// Headers: bold
	colorHeader = color.New(color.Bold)

	// Muted: for secondary information
	colorMuted = color.New(color.FgWhite, color.Faint)
)

// termWidth returns the terminal width, or a default if detection fails.
func termWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80 // sensible default
	}
	return width
}

// DisableColor disables all color output.
func DisableColor() {
	color.NoColor = true
}

func formatSubject(s string) string {
	return colorSubject.Sprint(s)
}

func formatDayOn(s string) string {
	return colorDayOn.Sprint(s)
}

func formatDayOff(s string) string {
	return colorDayOff.Sprint(s)
}

func formatNow(s string) string {
	return colorNow.Sprint(s)
}

// formatHeader formats text as a header.
func formatHeader(s string) string {
	return colorHeader.Sprint(s)
}

// formatMuted formats text as secondary/muted.
func formatMuted(s string) string {
	return colorMuted.Sprint(s)
}
