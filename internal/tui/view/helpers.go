package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

// PlaceBottom renders content horizontally centered at the bottom of a w×h area.
func PlaceBottom(w, h int, content string, bg lipgloss.Color) string {
	if w <= 0 || h <= 0 {
		return content
	}
	return lipgloss.Place(
		w,
		h,
		lipgloss.Center,
		lipgloss.Bottom,
		content,
		lipgloss.WithWhitespaceBackground(bg),
	)
}

// FitLine truncates s to width cells, appending an ellipsis when cut.
func FitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	if ansi.StringWidth(s) <= width {
		return s
	}
	return ansi.Truncate(s, width, "…")
}

// PadRight pads s with spaces to width cells.
func PadRight(s string, width int) string {
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
