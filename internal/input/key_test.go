package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Key
	}{
		{"q", Char('q')},
		{"Q", Key{Code: CodeChar, Char: 'Q', Mods: ModShift}},
		{" ", Char(' ')},
		{"enter", Special(CodeEnter)},
		{"esc", Special(CodeEsc)},
		{"shift+tab", Special(CodeBackTab)},
		{"ctrl+v", Ctrl('v')},
		{"alt+x", Char('x').With(ModAlt)},
		{"f5", F(5)},
		{"pgdown", Special(CodePageDown)},
		{"+", Char('+')},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := Parse(tt.in)
			require.True(t, ok)
			require.Equal(t, tt.want, got)
		})
	}

	_, ok := Parse("")
	require.False(t, ok)
	_, ok = Parse("ctrl+unknownkey")
	require.False(t, ok)
}

func TestFromTea(t *testing.T) {
	got, ok := FromTea(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'j'}})
	require.True(t, ok)
	require.Equal(t, Char('j'), got)

	got, ok = FromTea(tea.KeyMsg{Type: tea.KeyEnter})
	require.True(t, ok)
	require.Equal(t, Special(CodeEnter), got)

	got, ok = FromTea(tea.KeyMsg{Type: tea.KeyShiftTab})
	require.True(t, ok)
	require.Equal(t, Special(CodeBackTab), got)

	_, ok = FromTea(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("pasted"), Paste: true})
	require.False(t, ok)
}

func TestKeyString(t *testing.T) {
	require.Equal(t, "Q", Char('q').String())
	require.Equal(t, "Space", Char(' ').String())
	require.Equal(t, "CTRL+V", Ctrl('v').String())
	require.Equal(t, "CTRL+ALT+SHIFT+Up", Special(CodeUp).With(ModCtrl|ModAlt|ModShift).String())
	require.Equal(t, "BackTab", Special(CodeBackTab).String())
	require.Equal(t, "F12", F(12).String())
	require.Equal(t, "Esc", Special(CodeEsc).String())
}

func TestPrintable(t *testing.T) {
	require.True(t, Char('a').Printable())
	require.True(t, Char('A').Printable())
	require.True(t, Char(' ').Printable())
	require.False(t, Ctrl('a').Printable())
	require.False(t, Special(CodeEnter).Printable())
}
