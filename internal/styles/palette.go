package styles

// DefaultTheme is the baseline dark palette.
var DefaultTheme = Theme{
	Name:        "default",
	BorderStyle: "rounded",
	Base: BaseColors{
		Background: "234",
		Foreground: "252",
		Muted:      "245",
		Accent:     "141",
		Border:     "240",
	},
	Status: StatusColors{
		Awaiting: "245",
		Online:   "41",
		Offline:  "203",
		Unknown:  "220",
	},
	Chrome: ChromeColors{
		Title:        "141",
		Legend:       "110",
		Tab:          "245",
		ActiveTab:    "141",
		SelectedItem: "141",
		Cursor:       "252",
	},
	Borders: BorderColors{
		ActivePane:   "141",
		InactivePane: "240",
		Popup:        "75",
	},
}

// HighContrastTheme favors legibility on low-quality terminals.
var HighContrastTheme = Theme{
	Name:        "high-contrast",
	BorderStyle: "sharp",
	Base: BaseColors{
		Background: "16",
		Foreground: "231",
		Muted:      "250",
		Accent:     "51",
		Border:     "231",
	},
	Status: StatusColors{
		Awaiting: "250",
		Online:   "46",
		Offline:  "196",
		Unknown:  "226",
	},
	Chrome: ChromeColors{
		Title:        "51",
		Legend:       "159",
		Tab:          "250",
		ActiveTab:    "231",
		SelectedItem: "51",
		Cursor:       "231",
	},
	Borders: BorderColors{
		ActivePane:   "231",
		InactivePane: "250",
		Popup:        "51",
	},
}
