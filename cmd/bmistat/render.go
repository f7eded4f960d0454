package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"bmidash.org/internal/bmi"
)

// ANSI 256 colors for the CSS color names used by the categories.
var terminalColors = map[string]lipgloss.Color{
	"Red":    lipgloss.Color("196"),
	"Orange": lipgloss.Color("214"),
	"Yellow": lipgloss.Color("226"),
	"Green":  lipgloss.Color("82"),
	"Purple": lipgloss.Color("129"),
}

var (
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	headerStyle = lipgloss.NewStyle().Bold(true)
)

func categoryStyle(c bmi.Category) lipgloss.Style {
	return lipgloss.NewStyle().Foreground(terminalColors[c.Color])
}

// bar renders a horizontal bar of width cells, filled in proportion to
// fraction.
func bar(fraction float64, width int, color lipgloss.Color) string {
	if fraction < 0 {
		fraction = 0
	}
	if fraction > 1 {
		fraction = 1
	}
	filled := int(float64(width)*fraction + 0.5)

	return lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled)) +
		mutedStyle.Render(strings.Repeat("░", width-filled))
}

func renderDistribution(d bmi.Distribution, width int) string {
	if width < 1 {
		width = 1
	}

	labelWidth := 0
	for _, b := range d.Buckets {
		labelWidth = max(labelWidth, lipgloss.Width(b.Category.Label))
	}
	labelStyle := lipgloss.NewStyle().Width(labelWidth)

	var sb strings.Builder
	sb.WriteString(headerStyle.Render(fmt.Sprintf("BMI distribution (%d rows)", d.Total)))
	sb.WriteByte('\n')
	for _, b := range d.Buckets {
		fmt.Fprintf(&sb, "%s %s %5.1f%% %s\n",
			labelStyle.Render(b.Category.Label),
			bar(b.Frequency, width, terminalColors[b.Category.Color]),
			b.Frequency*100,
			mutedStyle.Render(fmt.Sprintf("(%d)", b.Count)))
	}
	return sb.String()
}
