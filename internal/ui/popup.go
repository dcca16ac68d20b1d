package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
)

// Choice renders a popup with selectable options.
func Choice(theme styles.Theme, width, height int, title, message string, options []string, selected int, legend []input.LegendEntry) string {
	lines := make([]string, 0, len(options))
	for i, opt := range options {
		lines = append(lines, item(theme, opt, i == selected))
	}
	return popup(theme, width, height, title, message, strings.Join(lines, "\n"), legend)
}

// Input renders a popup with a single line text box.
func Input(theme styles.Theme, width, height int, title, message, value string, typing bool, legend []input.LegendEntry) string {
	inner := styles.PopupWidth(width) - 4
	text := value
	switch {
	case typing:
		text += theme.Cursor().Render("█")
	case text == "":
		text = theme.Muted().Render("press select to type")
	}
	border := theme.Borders.InactivePane
	if typing {
		border = theme.Borders.ActivePane
	}
	box := lipgloss.NewStyle().
		Border(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color(border)).
		Width(maxInt(inner, 10)).
		Render(text)
	return popup(theme, width, height, title, message, box, legend)
}

// TimedInfo renders an informational popup with a bar counting down its lifetime.
func TimedInfo(theme styles.Theme, width, height int, title, message string, duration, timer uint64, legend []input.LegendEntry) string {
	return popup(theme, width, height, title, message, Countdown(theme, styles.PopupWidth(width)-4, duration, timer), legend)
}

// Countdown renders a bar that empties as timer approaches duration.
func Countdown(theme styles.Theme, width int, duration, timer uint64) string {
	if width <= 0 {
		return ""
	}
	remaining := 0
	if duration > 0 && timer < duration {
		remaining = int(uint64(width) * (duration - timer) / duration)
	}
	return theme.Accent().Render(strings.Repeat("█", remaining)) +
		theme.Muted().Render(strings.Repeat("░", width-remaining))
}

func popup(theme styles.Theme, width, height int, title, message, content string, legend []input.LegendEntry) string {
	inner := styles.PopupWidth(width) - 4
	body := lipgloss.JoinVertical(lipgloss.Left,
		theme.Title().Render(truncate(title, inner)),
		"",
		theme.Text().Width(maxInt(inner, 10)).Render(message),
		"",
		content,
	)
	box := styles.PopupStyle(theme, width).Render(body)
	footer := Legend(theme, legend, width)
	return lipgloss.JoinVertical(lipgloss.Left, center(width, maxInt(height-1, 1), box), footer)
}
