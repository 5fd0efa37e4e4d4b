// Package style defines lipgloss styles for the TUI and CLI output.
package style

import "github.com/charmbracelet/lipgloss"

// Styles are package-level values; lipgloss styles are value types and safe for
// concurrent use.
var (
	// Title is used for phase titles and headers.
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("205"))

	// Subtitle is used for secondary text.
	Subtitle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241"))

	// Success is used for success messages.
	Success = lipgloss.NewStyle().
		Foreground(lipgloss.Color("42"))

	// Error is used for error messages.
	Error = lipgloss.NewStyle().
		Foreground(lipgloss.Color("196"))

	// Help is used for keyboard shortcut hints.
	Help = lipgloss.NewStyle().
		Foreground(lipgloss.Color("241"))

	// Progress colors the spinner.
	Progress = lipgloss.NewStyle().
			Foreground(lipgloss.Color("63"))

	// Label is used for inline labels (e.g., "Saved:").
	Label = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("255"))

	// Muted is used for de-emphasized text (e.g., file paths).
	Muted = lipgloss.NewStyle().
		Foreground(lipgloss.Color("245"))
)
