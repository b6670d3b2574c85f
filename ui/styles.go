package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styling functions using lipgloss
var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("86")).
			Background(lipgloss.Color("235")).
			Bold(true).
			Padding(0, 2).
			MarginBottom(1)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("46")).
			Bold(true)

	ErrorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214"))

	InfoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33"))

	ProcessingStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Bold(true)
)

// StyleLine picks a style from the status emoji a log line starts with
func StyleLine(line string) string {
	switch {
	case strings.HasPrefix(line, "❌"):
		return ErrorStyle.Render(line)
	case strings.HasPrefix(line, "⚠️"):
		return WarningStyle.Render(line)
	case strings.HasPrefix(line, "✅"):
		return SuccessStyle.Render(line)
	case strings.HasPrefix(line, "📂"):
		return InfoStyle.Render(line)
	}
	return line
}
