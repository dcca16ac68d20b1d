package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
)

const (
	nameColumnWidth   = 25
	statusColumnWidth = 10
	searchPrompt      = "Search Channel"
)

// HomeView holds what the home screen shows.
type HomeView struct {
	Favourites    []channel.Channel
	Highlight     int
	SearchFocused bool
	Typing        bool
	Search        string
	Suggestions   []channel.Channel
	Legend        []input.LegendEntry
}

// Home renders the favourites panel next to the search panel.
func Home(theme styles.Theme, width, height int, view HomeView) string {
	leftWidth := width * 6 / 10
	rightWidth := width - leftWidth - styles.LayoutGap

	favourites := styles.PanelStyle(theme, !view.SearchFocused).
		Width(maxInt(leftWidth-2, 10)).
		Render(favouritesPanel(theme, view, maxInt(leftWidth-4, 10)))
	search := styles.PanelStyle(theme, view.SearchFocused).
		Width(maxInt(rightWidth-2, 10)).
		Render(searchPanel(theme, view, maxInt(rightWidth-4, 10)))

	body := lipgloss.JoinHorizontal(lipgloss.Top, favourites, strings.Repeat(" ", styles.LayoutGap), search)
	return frame(theme, width, height, TabHome, body, view.Legend)
}

func favouritesPanel(theme styles.Theme, view HomeView, width int) string {
	lines := []string{theme.Title().Render("Favourites"), ""}
	if len(view.Favourites) == 0 {
		lines = append(lines, theme.Muted().Render(" No favourites yet"))
		return strings.Join(lines, "\n")
	}
	for i, c := range view.Favourites {
		highlighted := i == view.Highlight && !view.SearchFocused
		lines = append(lines, ChannelRow(theme, c, width, highlighted))
	}
	return strings.Join(lines, "\n")
}

// ChannelRow renders one channel as name, status and game columns.
func ChannelRow(theme styles.Theme, c channel.Channel, width int, highlighted bool) string {
	nameWidth := nameColumnWidth
	if avail := width - len(highlightSymbol) - statusColumnWidth - 1; avail < nameWidth {
		nameWidth = maxInt(avail, 4)
	}
	name := item(theme, pad(c.DisplayName(), nameWidth), highlighted)
	status := theme.StatusStyle(c.Status).Render(pad(c.Status.Message(), statusColumnWidth))
	row := name + " " + status
	if c.Game != "" {
		rest := width - lipgloss.Width(row) - 1
		if rest > 0 {
			row += " " + theme.Muted().Render(truncate(c.Game, rest))
		}
	}
	return row
}

func searchPanel(theme styles.Theme, view HomeView, width int) string {
	lines := []string{theme.Title().Render(searchPrompt), ""}

	text := view.Search
	if view.Typing {
		text += theme.Cursor().Render("█")
	} else if text == "" {
		text = theme.Muted().Render("press select to type")
	}
	lines = append(lines, " "+truncate(text, width-1))

	if len(view.Suggestions) > 0 {
		lines = append(lines, "", theme.Muted().Render(fmt.Sprintf(" %d matching favourite%s", len(view.Suggestions), plural(len(view.Suggestions)))))
		for _, c := range view.Suggestions {
			lines = append(lines, theme.Text().Render(plainSymbol+truncate(c.DisplayName(), width-len(plainSymbol))))
		}
	}
	return strings.Join(lines, "\n")
}

func plural(n int) string {
	if n == 1 {
		return ""
	}
	return "s"
}
