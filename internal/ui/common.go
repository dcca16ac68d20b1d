// Package ui renders streamwatch screens to strings with lipgloss.
package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
)

// Tab titles in display order.
var TabTitles = []string{"Home", "Lists"}

const (
	TabHome  = 0
	TabLists = 1
)

const (
	highlightSymbol = " > "
	plainSymbol     = "   "
	legendSeparator = " | "
)

// Ellipsis animates from zero to three dots, one step every two frames.
func Ellipsis(timer uint64) string {
	return strings.Repeat(".", int((timer/2)%4))
}

// Tabs renders the tab bar with active highlighted.
func Tabs(theme styles.Theme, active int) string {
	parts := make([]string, len(TabTitles))
	for i, title := range TabTitles {
		parts[i] = theme.Tab(i == active).Render(title)
	}
	return " " + strings.Join(parts, theme.Muted().Render(legendSeparator))
}

// Legend renders keybind hints on one line, truncated to width.
func Legend(theme styles.Theme, entries []input.LegendEntry, width int) string {
	if len(entries) == 0 {
		return ""
	}
	parts := make([]string, len(entries))
	for i, e := range entries {
		parts[i] = e.String()
	}
	return theme.Legend().Render(truncate(" "+strings.Join(parts, legendSeparator), width))
}

// frame stacks the tab bar, body and legend to fill a width x height screen.
func frame(theme styles.Theme, width, height int, tab int, body string, legend []input.LegendEntry) string {
	header := Tabs(theme, tab)
	footer := Legend(theme, legend, width)
	bodyHeight := height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	body = lipgloss.NewStyle().Width(maxInt(width, 1)).Height(bodyHeight).Render(body)
	return lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
}

// center places content in the middle of a width x height area.
func center(width, height int, content string) string {
	if width <= 0 || height <= 0 {
		return content
	}
	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, content)
}

func item(theme styles.Theme, text string, highlighted bool) string {
	if highlighted {
		return theme.Selected().Render(highlightSymbol + text)
	}
	return theme.Text().Render(plainSymbol + text)
}

// truncate cuts s to max terminal cells, marking the cut with an ellipsis.
func truncate(s string, max int) string {
	if max <= 0 {
		return ""
	}
	return runewidth.Truncate(s, max, "…")
}

// pad fills s with spaces to width terminal cells.
func pad(s string, width int) string {
	return runewidth.FillRight(truncate(s, width), width)
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
