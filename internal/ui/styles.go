// Package ui provides lipgloss-styled terminal components: panels, lists and
// coloured text helpers.
package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the single source of truth for all UI styling.
type Theme struct {
	Primary lipgloss.Style
	Success lipgloss.Style
	Error   lipgloss.Style
	Warning lipgloss.Style
	Info    lipgloss.Style
	Dim     lipgloss.Style
	Header  lipgloss.Style
}

// DefaultTheme returns the default color theme.
func DefaultTheme() *Theme {
	return &Theme{
		Primary: lipgloss.NewStyle().Foreground(lipgloss.Color("12")), // Blue
		Success: lipgloss.NewStyle().Foreground(lipgloss.Color("10")), // Green
		Error:   lipgloss.NewStyle().Foreground(lipgloss.Color("9")),  // Red
		Warning: lipgloss.NewStyle().Foreground(lipgloss.Color("11")), // Yellow
		Info:    lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // Cyan
		Dim:     lipgloss.NewStyle().Foreground(lipgloss.Color("8")),  // Gray
		Header:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12")),
	}
}

var theme = DefaultTheme()

// Primary renders text in the primary color.
func Primary(text string) string {
	return theme.Primary.Render(text)
}

// Success renders text in the success color (green).
func Success(text string) string {
	return theme.Success.Render(text)
}

// Error renders text in the error color (red).
func Error(text string) string {
	return theme.Error.Render(text)
}

// Dim renders text in a dimmed color (gray).
func Dim(text string) string {
	return theme.Dim.Render(text)
}

// Header renders text as a header (bold primary).
func Header(text string) string {
	return theme.Header.Render(text)
}

// FilePath renders a file path.
func FilePath(path string) string {
	return Primary(path)
}
