package cli

import "github.com/charmbracelet/lipgloss"

var (
	// Section headers in text output
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#7D56F4"))

	// Alias keys and patterns
	keyStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575"))

	// Secondary detail (target paths, hints)
	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#04B575")).
			Bold(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF0000")).
			Bold(true)
)
