package ui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
)

func TestEllipsisCycles(t *testing.T) {
	require.Equal(t, "", Ellipsis(0))
	require.Equal(t, "", Ellipsis(1))
	require.Equal(t, ".", Ellipsis(2))
	require.Equal(t, "...", Ellipsis(7))
	require.Equal(t, "", Ellipsis(8))
}

func TestTruncateUsesCellWidth(t *testing.T) {
	require.Equal(t, "abc", truncate("abc", 5))
	require.Equal(t, "ab…", truncate("abcdef", 3))
	require.Equal(t, "", truncate("abc", 0))
	require.Equal(t, 6, lipgloss.Width(pad("ab", 6)))
}

func TestLegendJoinsEntries(t *testing.T) {
	out := Legend(styles.DefaultTheme, []input.LegendEntry{
		{Label: "Quit", Triggers: []string{"ESC", "Q"}},
		{Label: "Move", Triggers: []string{"UP"}},
	}, 80)
	require.Contains(t, out, "Quit: ESC, Q")
	require.Contains(t, out, "Move: UP")
	require.Empty(t, Legend(styles.DefaultTheme, nil, 80))
}

func TestHomeShowsFavouritesAndStatus(t *testing.T) {
	favs := []channel.Channel{channel.New("Foo", "foo"), channel.New("Bar", "bar")}
	favs[0].Status = channel.StatusOnline
	favs[0].Game = "Chess"

	out := Home(styles.DefaultTheme, 120, 30, HomeView{Favourites: favs, Search: "ba"})
	require.Contains(t, out, "Favourites")
	require.Contains(t, out, "Foo")
	require.Contains(t, out, "online")
	require.Contains(t, out, "Chess")
	require.Contains(t, out, "Bar")
	require.Contains(t, out, searchPrompt)
	require.Contains(t, out, "ba")
}

func TestHomeEmptyFavourites(t *testing.T) {
	out := Home(styles.DefaultTheme, 100, 20, HomeView{})
	require.Contains(t, out, "No favourites yet")
}

func TestListsShowsCounts(t *testing.T) {
	lists := []channel.List{
		{Name: "speedrun", Channels: []channel.Channel{channel.New("A", "a")}},
		{Name: "music", Channels: []channel.Channel{}},
	}
	out := Lists(styles.DefaultTheme, 120, 30, ListsView{Lists: lists, Channels: lists[0].Channels})
	require.Contains(t, out, "speedrun")
	require.Contains(t, out, "1 channel")
	require.Contains(t, out, "0 channels")
	require.Contains(t, out, "Channels")
}

func TestChoiceHighlightsSelection(t *testing.T) {
	out := Choice(styles.DefaultTheme, 100, 20, "Launch Chat", "Open chat?", []string{"No", "Yes"}, 1, nil)
	require.Contains(t, out, "Launch Chat")
	var selectedLine string
	for _, line := range strings.Split(out, "\n") {
		if strings.Contains(line, ">") {
			selectedLine = line
		}
	}
	require.Contains(t, selectedLine, "Yes")
}

func TestInputShowsValue(t *testing.T) {
	out := Input(styles.DefaultTheme, 100, 20, "Username", "Your Username here", "alice", true, nil)
	require.Contains(t, out, "Username")
	require.Contains(t, out, "alice")
}

func TestCountdownEmpties(t *testing.T) {
	theme := styles.DefaultTheme
	require.Equal(t, 10, lipgloss.Width(Countdown(theme, 10, 4, 0)))
	require.Equal(t, strings.Count(Countdown(theme, 10, 4, 0), "█"), 10)
	require.Equal(t, strings.Count(Countdown(theme, 10, 4, 2), "█"), 5)
	require.Equal(t, strings.Count(Countdown(theme, 10, 4, 9), "█"), 0)
}

func TestStartupAnimates(t *testing.T) {
	require.Contains(t, Startup(styles.DefaultTheme, 80, 10, 4), "Starting..")
}
