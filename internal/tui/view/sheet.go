// Package view provides rendering helpers for the TUI.
package view

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Chip is a toggleable day button.
type Chip struct {
	Label   string
	Active  bool
	Focused bool
}

// TimeField is one end of the time window.
type TimeField struct {
	Label     string
	Value     string // empty when unset
	Focused   bool
	Corrected bool // value was just moved by auto-correction
}

// SheetModel contains the fields needed to render the schedule editor sheet.
type SheetModel struct {
	Title       string
	Subject     string
	Chips       []Chip
	DaysFocused bool
	Start       TimeField
	End         TimeField
	Placeholder string
	Picker      string // rendered time input, empty when closed
	PickerLabel string
	Status      string
	StatusError bool
	Help        string
	Width       int
}

// SheetStyles groups styles for the editor sheet.
type SheetStyles struct {
	Sheet        lipgloss.Style
	Title        lipgloss.Style
	Subject      lipgloss.Style
	SectionTitle lipgloss.Style
	SectionFocus lipgloss.Style
	ChipActive   lipgloss.Style
	ChipInactive lipgloss.Style
	ChipFocused  lipgloss.Style
	FieldValue   lipgloss.Style
	FieldEmpty   lipgloss.Style
	FieldFocused lipgloss.Style
	FieldWarning lipgloss.Style
	Status       lipgloss.Style
	StatusError  lipgloss.Style
	Help         lipgloss.Style
}

const fieldWidth = 12

// RenderSheet renders the full editor sheet.
func RenderSheet(model SheetModel, styles SheetStyles) string {
	inner := model.Width - styles.Sheet.GetHorizontalFrameSize()
	if inner < 20 {
		inner = 20
	}

	var body strings.Builder

	header := styles.Title.Render(model.Title)
	if model.Subject != "" {
		header += " " + styles.Subject.Render(model.Subject)
	}
	body.WriteString(FitLine(header, inner) + "\n\n")

	body.WriteString(sectionTitle("DAYS", model.DaysFocused, styles) + "\n")
	body.WriteString(FitLine(renderChips(model.Chips, styles), inner) + "\n\n")

	startTitle := PadRight(sectionTitle(model.Start.Label, model.Start.Focused, styles), fieldWidth+2)
	endTitle := sectionTitle(model.End.Label, model.End.Focused, styles)
	body.WriteString(startTitle + endTitle + "\n")
	startValue := PadRight(renderField(model.Start, model.Placeholder, styles), fieldWidth+2)
	body.WriteString(startValue + renderField(model.End, model.Placeholder, styles) + "\n")

	if model.Picker != "" {
		body.WriteString("\n" + styles.SectionFocus.Render(model.PickerLabel) + "\n")
		body.WriteString(model.Picker + "\n")
	}

	if model.Status != "" {
		statusStyle := styles.Status
		if model.StatusError {
			statusStyle = styles.StatusError
		}
		body.WriteString("\n" + FitLine(statusStyle.Render(model.Status), inner) + "\n")
	}

	if model.Help != "" {
		body.WriteString("\n")
		for _, line := range strings.Split(model.Help, "\n") {
			body.WriteString(FitLine(styles.Help.Render(line), inner) + "\n")
		}
	}

	return styles.Sheet.Width(inner + styles.Sheet.GetHorizontalPadding()).Render(strings.TrimRight(body.String(), "\n"))
}

func sectionTitle(label string, focused bool, styles SheetStyles) string {
	if focused {
		return styles.SectionFocus.Render(label)
	}
	return styles.SectionTitle.Render(label)
}

func renderChips(chips []Chip, styles SheetStyles) string {
	parts := make([]string, 0, len(chips))
	for _, c := range chips {
		style := styles.ChipInactive
		if c.Active {
			style = styles.ChipActive
		}
		if c.Focused {
			style = styles.ChipFocused.Inherit(style)
		}
		parts = append(parts, style.Render(c.Label))
	}
	return strings.Join(parts, " ")
}

func renderField(f TimeField, placeholder string, styles SheetStyles) string {
	if f.Value == "" {
		style := styles.FieldEmpty
		if f.Focused {
			style = styles.FieldFocused.Inherit(style)
		}
		return style.Render(placeholder)
	}
	style := styles.FieldValue
	if f.Corrected {
		style = styles.FieldWarning
	}
	if f.Focused {
		style = styles.FieldFocused.Inherit(style)
	}
	return style.Render(f.Value)
}
