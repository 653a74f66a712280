package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// List provides simple bullet-point lists.
type List struct {
	items  []ListItem
	indent int
}

// ListItem represents an item in a list.
type ListItem struct {
	Marker  string
	Content string
	Style   lipgloss.Style
}

// NewList creates a new list.
func NewList() *List {
	return &List{indent: 2}
}

// Add adds a normal item to the list.
func (l *List) Add(content string) {
	l.items = append(l.items, ListItem{Marker: "•", Content: content, Style: theme.Primary})
}

// AddSuccess adds a success item to the list.
func (l *List) AddSuccess(content string) {
	l.items = append(l.items, ListItem{Marker: "✓", Content: content, Style: theme.Success})
}

// AddWarning adds a warning item to the list.
func (l *List) AddWarning(content string) {
	l.items = append(l.items, ListItem{Marker: "!", Content: content, Style: theme.Warning})
}

// AddInfo adds an info item to the list.
func (l *List) AddInfo(content string) {
	l.items = append(l.items, ListItem{Marker: "→", Content: content, Style: theme.Info})
}

// Len returns the number of items.
func (l *List) Len() int {
	return len(l.items)
}

// String renders the list.
func (l *List) String() string {
	lines := make([]string, 0, len(l.items))
	indentStr := strings.Repeat(" ", l.indent)

	for _, item := range l.items {
		lines = append(lines, indentStr+item.Style.Render(item.Marker+" "+item.Content))
	}

	return strings.Join(lines, "\n")
}
