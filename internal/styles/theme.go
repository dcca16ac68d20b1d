// Package styles holds the streamwatch color themes and lipgloss styles.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/tOgg1/streamwatch/internal/channel"
)

// BaseColors defines global UI colors.
type BaseColors struct {
	Background string
	Foreground string
	Muted      string
	Accent     string
	Border     string
}

// StatusColors defines colors for channel live status.
type StatusColors struct {
	Awaiting string
	Online   string
	Offline  string
	Unknown  string
}

// ChromeColors defines non-content UI colors.
type ChromeColors struct {
	Title        string
	Legend       string
	Tab          string
	ActiveTab    string
	SelectedItem string
	Cursor       string
}

// BorderColors defines border colors for pane state.
type BorderColors struct {
	ActivePane   string
	InactivePane string
	Popup        string
}

// Theme defines the streamwatch style tokens.
type Theme struct {
	Name        string
	BorderStyle string // "rounded", "sharp", "double", "hidden"

	Base    BaseColors
	Status  StatusColors
	Chrome  ChromeColors
	Borders BorderColors
}

// Themes lists available palettes by name.
var Themes = map[string]Theme{
	"default":       DefaultTheme,
	"high-contrast": HighContrastTheme,
}

// Lookup returns the named theme, falling back to the default.
func Lookup(name string) Theme {
	if theme, ok := Themes[name]; ok {
		return theme
	}
	return DefaultTheme
}

// Text returns the plain foreground style.
func (t Theme) Text() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Base.Foreground))
}

// Muted returns the de-emphasized text style.
func (t Theme) Muted() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Base.Muted))
}

// Accent returns the accent text style.
func (t Theme) Accent() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Base.Accent))
}

// Title returns the style for screen and panel titles.
func (t Theme) Title() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(t.Chrome.Title))
}

// Legend returns the keybind legend style.
func (t Theme) Legend() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Chrome.Legend))
}

// Selected returns the highlighted row style.
func (t Theme) Selected() lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.Color(t.Base.Background)).
		Background(lipgloss.Color(t.Chrome.SelectedItem))
}

// Cursor returns the text-entry cursor style.
func (t Theme) Cursor() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Chrome.Cursor))
}

// Tab returns the tab label style.
func (t Theme) Tab(active bool) lipgloss.Style {
	if active {
		return lipgloss.NewStyle().Bold(true).Underline(true).Foreground(lipgloss.Color(t.Chrome.ActiveTab))
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(t.Chrome.Tab))
}

// StatusStyle returns the style used for a channel status message.
func (t Theme) StatusStyle(s channel.Status) lipgloss.Style {
	var color string
	switch s {
	case channel.StatusAwaiting:
		color = t.Status.Awaiting
	case channel.StatusOnline:
		color = t.Status.Online
	case channel.StatusOffline:
		color = t.Status.Offline
	default:
		color = t.Status.Unknown
	}
	return lipgloss.NewStyle().Foreground(lipgloss.Color(color))
}
