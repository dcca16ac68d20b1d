package ui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
)

// Startup renders the splash screen.
func Startup(theme styles.Theme, width, height int, timer uint64) string {
	title := theme.Title().Render("streamwatch")
	status := theme.Muted().Render("Starting" + Ellipsis(timer))
	return center(width, height, lipgloss.JoinVertical(lipgloss.Center, title, "", status))
}

// AccountMissing renders the account setup backdrop shown between prompts.
func AccountMissing(theme styles.Theme, width, height int, prompt string, building bool, legend []input.LegendEntry) string {
	msg := "Account not configured, please enter your details when prompted"
	next := theme.Muted().Render("Next: " + prompt)
	if building {
		msg = "Verifying account"
		next = ""
	}
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Title().Render("Account Setup"),
		"",
		theme.Text().Render(msg),
		next,
	)
	footer := Legend(theme, legend, width)
	return lipgloss.JoinVertical(lipgloss.Left, center(width, maxInt(height-1, 1), body), footer)
}
