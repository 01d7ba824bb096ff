package ui

import "github.com/charmbracelet/lipgloss"

var (
	ColorPrimary = lipgloss.Color("39")  // Blue
	ColorSuccess = lipgloss.Color("34")  // Green
	ColorWarning = lipgloss.Color("214") // Orange
	ColorError   = lipgloss.Color("196") // Red
	ColorMuted   = lipgloss.Color("240") // Dark gray
)

var (
	HeadingStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	SuccessStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)

	FailureStyle = lipgloss.NewStyle().
			Foreground(ColorError).
			Bold(true)

	WarningStyle = lipgloss.NewStyle().
			Foreground(ColorWarning)

	MutedStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)
