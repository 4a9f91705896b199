package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
)

var (
	colorPrimary = lipgloss.Color("#10B981") // Emerald
	colorMuted   = lipgloss.Color("#6B7280") // Gray
	colorError   = lipgloss.Color("#EF4444") // Red
)

var (
	headerStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Width(24)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)
)

func field(label string, value any) string {
	return labelStyle.Render(label) + " " + fmt.Sprint(value)
}
