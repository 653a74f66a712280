package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Section renders a section with a header and separator.
func Section(title, content string) string {
	header := theme.Header.Render(title)
	separator := theme.Dim.Render(strings.Repeat("─", lipgloss.Width(title)))
	return lipgloss.JoinVertical(lipgloss.Left, header, separator, content)
}

// FormatKeyValue formats a key-value pair.
func FormatKeyValue(key, value string) string {
	return theme.Dim.Render(key+": ") + value
}

// FormatCount formats a count with singular/plural form.
func FormatCount(count int, singular, plural string) string {
	if count == 1 {
		return fmt.Sprintf("%d %s", count, singular)
	}
	return fmt.Sprintf("%d %s", count, plural)
}

// Indent indents all non-empty lines in content by the given number of spaces.
func Indent(content string, spaces int) string {
	indent := strings.Repeat(" ", spaces)
	lines := strings.Split(content, "\n")
	for i, line := range lines {
		if line != "" {
			lines[i] = indent + line
		}
	}
	return strings.Join(lines, "\n")
}

// RenderSuccessPanel renders content in a success-styled panel.
func RenderSuccessPanel(title, content string) string {
	return renderPanel(theme.Success, "✓ ", title, content)
}

// RenderWarningPanel renders content in a warning-styled panel.
func RenderWarningPanel(title, content string) string {
	return renderPanel(theme.Warning, "⚠ ", title, content)
}

// RenderErrorPanel renders content in an error-styled panel.
func RenderErrorPanel(title, content string) string {
	return renderPanel(theme.Error, "✗ ", title, content)
}

// RenderInfoPanel renders content in an info-styled panel.
func RenderInfoPanel(title, content string) string {
	return renderPanel(theme.Info, "→ ", title, content)
}

func renderPanel(accent lipgloss.Style, icon, title, content string) string {
	panelStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accent.GetForeground()).
		Padding(0, 1)

	titleRendered := lipgloss.NewStyle().
		Bold(true).
		Foreground(accent.GetForeground()).
		Render(icon + title)

	if content == "" {
		return panelStyle.Render(titleRendered)
	}
	return panelStyle.Render(titleRendered + "\n\n" + content)
}
