package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/require"

	"github.com/tOgg1/streamwatch/internal/channel"
)

func TestLookup(t *testing.T) {
	require.Equal(t, "high-contrast", Lookup("high-contrast").Name)
	require.Equal(t, "default", Lookup("default").Name)
	require.Equal(t, "default", Lookup("nope").Name)
}

func TestThemesDefineEveryToken(t *testing.T) {
	for name, theme := range Themes {
		require.Equal(t, name, theme.Name)
		require.NotEmpty(t, theme.Base.Foreground, name)
		require.NotEmpty(t, theme.Status.Online, name)
		require.NotEmpty(t, theme.Status.Offline, name)
		require.NotEmpty(t, theme.Status.Awaiting, name)
		require.NotEmpty(t, theme.Status.Unknown, name)
		require.NotEmpty(t, theme.Chrome.SelectedItem, name)
		require.NotEmpty(t, theme.Borders.ActivePane, name)
		require.NotEmpty(t, theme.Borders.Popup, name)
	}
}

func TestPopupWidthClamped(t *testing.T) {
	require.Equal(t, PopupMinWidth, PopupWidth(10))
	require.Equal(t, 40, PopupWidth(80))
	require.Equal(t, PopupMaxWidth, PopupWidth(300))
}

func TestStatusStyleUsesStatusColor(t *testing.T) {
	theme := DefaultTheme
	cases := map[channel.Status]string{
		channel.StatusAwaiting: theme.Status.Awaiting,
		channel.StatusOnline:   theme.Status.Online,
		channel.StatusOffline:  theme.Status.Offline,
		channel.StatusUnknown:  theme.Status.Unknown,
	}
	for status, color := range cases {
		require.Equal(t, lipgloss.Color(color), theme.StatusStyle(status).GetForeground(), status.String())
	}
}
