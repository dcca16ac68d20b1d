package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
)

// ListsView holds what the lists screen shows.
type ListsView struct {
	Lists            []channel.List
	ListHighlight    int
	Channels         []channel.Channel
	ChannelHighlight int
	ChannelsFocused  bool
	Legend           []input.LegendEntry
}

// Lists renders the channel lists beside the channels of the highlighted list.
func Lists(theme styles.Theme, width, height int, view ListsView) string {
	leftWidth := width * 3 / 10
	rightWidth := width - leftWidth - styles.LayoutGap

	lists := styles.PanelStyle(theme, !view.ChannelsFocused).
		Width(maxInt(leftWidth-2, 10)).
		Render(listsPanel(theme, view, maxInt(leftWidth-4, 10)))
	channels := styles.PanelStyle(theme, view.ChannelsFocused).
		Width(maxInt(rightWidth-2, 10)).
		Render(channelsPanel(theme, view, maxInt(rightWidth-4, 10)))

	body := lipgloss.JoinHorizontal(lipgloss.Top, lists, strings.Repeat(" ", styles.LayoutGap), channels)
	return frame(theme, width, height, TabLists, body, view.Legend)
}

func listsPanel(theme styles.Theme, view ListsView, width int) string {
	lines := []string{theme.Title().Render("Channel Lists"), ""}
	if len(view.Lists) == 0 {
		lines = append(lines, theme.Muted().Render(" No lists found"))
		return strings.Join(lines, "\n")
	}
	for i, l := range view.Lists {
		count := fmt.Sprintf("%d channel%s", len(l.Channels), plural(len(l.Channels)))
		nameWidth := maxInt(width-len(highlightSymbol)-len(count)-1, 4)
		row := item(theme, pad(l.Name, nameWidth), i == view.ListHighlight) + " " + theme.Accent().Render(count)
		lines = append(lines, row)
	}
	return strings.Join(lines, "\n")
}

func channelsPanel(theme styles.Theme, view ListsView, width int) string {
	lines := []string{theme.Title().Render("Channels"), ""}
	if len(view.Channels) == 0 {
		lines = append(lines, theme.Muted().Render(" Empty list"))
		return strings.Join(lines, "\n")
	}
	for i, c := range view.Channels {
		highlighted := view.ChannelsFocused && i == view.ChannelHighlight
		lines = append(lines, ChannelRow(theme, c, width, highlighted))
	}
	return strings.Join(lines, "\n")
}
