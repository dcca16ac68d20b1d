package styles

import "github.com/charmbracelet/lipgloss"

const (
	// LayoutGap is the default space between columns.
	LayoutGap = 2

	// LayoutInnerPadding is the default panel content padding.
	LayoutInnerPadding = 1

	// PopupMinWidth keeps popups readable on narrow terminals.
	PopupMinWidth = 30

	// PopupMaxWidth stops popups from spanning wide terminals.
	PopupMaxWidth = 60
)

// PanelStyle returns a focused/unfocused border style for panes.
func PanelStyle(theme Theme, focused bool) lipgloss.Style {
	color := theme.Borders.InactivePane
	if focused {
		color = theme.Borders.ActivePane
	}
	return lipgloss.NewStyle().
		BorderStyle(border(theme)).
		BorderForeground(lipgloss.Color(color)).
		Padding(0, LayoutInnerPadding)
}

// PopupStyle returns the bordered box used for modal popups.
func PopupStyle(theme Theme, width int) lipgloss.Style {
	return lipgloss.NewStyle().
		BorderStyle(border(theme)).
		BorderForeground(lipgloss.Color(theme.Borders.Popup)).
		Padding(LayoutInnerPadding, LayoutInnerPadding*2).
		Width(PopupWidth(width))
}

// PopupWidth returns the content width for a popup on a screen of width columns.
func PopupWidth(width int) int {
	w := width / 2
	if w < PopupMinWidth {
		w = PopupMinWidth
	}
	if w > PopupMaxWidth {
		w = PopupMaxWidth
	}
	return w
}

func border(theme Theme) lipgloss.Border {
	switch theme.BorderStyle {
	case "double":
		return lipgloss.DoubleBorder()
	case "sharp":
		return lipgloss.NormalBorder()
	case "hidden":
		return lipgloss.HiddenBorder()
	default:
		return lipgloss.RoundedBorder()
	}
}
