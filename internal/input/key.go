// Package input maps decoded key chords to actions and renders keybind legends.
package input

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	tea "github.com/charmbracelet/bubbletea"
)

// Code identifies a physical key.
type Code int

const (
	CodeNull Code = iota
	CodeChar
	CodeBackspace
	CodeEnter
	CodeLeft
	CodeRight
	CodeUp
	CodeDown
	CodeHome
	CodeEnd
	CodePageUp
	CodePageDown
	CodeTab
	CodeBackTab
	CodeDelete
	CodeInsert
	CodeF
	CodeEsc
)

// Modifier is a bit set of held modifier keys.
type Modifier uint8

const (
	ModNone  Modifier = 0
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
)

// Has reports whether all bits of m2 are set in m.
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// Key is a decoded key chord. Char is set for CodeChar, Num for CodeF.
type Key struct {
	Code Code
	Char rune
	Num  int
	Mods Modifier
}

// Char returns the chord for a printable character. Upper-case letters
// carry ModShift, mirroring what terminals report.
func Char(r rune) Key {
	k := Key{Code: CodeChar, Char: r}
	if unicode.IsUpper(r) {
		k.Mods = ModShift
	}
	return k
}

// Special returns the chord for a non-character key.
func Special(code Code) Key {
	k := Key{Code: code}
	if code == CodeBackTab {
		k.Mods = ModShift
	}
	return k
}

// F returns the chord for function key n.
func F(n int) Key {
	return Key{Code: CodeF, Num: n}
}

// Ctrl returns the chord for Ctrl held with r.
func Ctrl(r rune) Key {
	return Key{Code: CodeChar, Char: unicode.ToLower(r), Mods: ModCtrl}
}

// With returns k with extra modifiers held.
func (k Key) With(mods Modifier) Key {
	k.Mods |= mods
	return k
}

// Printable reports whether k produces a character when typed.
func (k Key) Printable() bool {
	return k.Code == CodeChar && !k.Mods.Has(ModCtrl) && !k.Mods.Has(ModAlt) && unicode.IsPrint(k.Char)
}

// String renders the chord as shown in keybind legends, e.g. "CTRL+V".
func (k Key) String() string {
	if k.Code == CodeBackTab {
		return codeName(k)
	}
	return modifierPrefix(k.Mods) + codeName(k)
}

func modifierPrefix(m Modifier) string {
	var parts []string
	if m.Has(ModCtrl) {
		parts = append(parts, "CTRL")
	}
	if m.Has(ModAlt) {
		parts = append(parts, "ALT")
	}
	if m.Has(ModShift) {
		parts = append(parts, "SHIFT")
	}
	if len(parts) == 0 {
		return ""
	}
	return strings.Join(parts, "+") + "+"
}

func codeName(k Key) string {
	switch k.Code {
	case CodeBackspace:
		return "Backspace"
	case CodeEnter:
		return "Enter"
	case CodeLeft:
		return "Left"
	case CodeRight:
		return "Right"
	case CodeUp:
		return "Up"
	case CodeDown:
		return "Down"
	case CodeHome:
		return "Home"
	case CodeEnd:
		return "End"
	case CodePageUp:
		return "PageUp"
	case CodePageDown:
		return "PageDown"
	case CodeTab:
		return "Tab"
	case CodeBackTab:
		return "BackTab"
	case CodeDelete:
		return "Delete"
	case CodeInsert:
		return "Insert"
	case CodeF:
		return fmt.Sprintf("F%d", k.Num)
	case CodeEsc:
		return "Esc"
	case CodeChar:
		if k.Char == ' ' {
			return "Space"
		}
		return strings.ToUpper(string(k.Char))
	default:
		return "Unknown"
	}
}

var namedKeys = map[string]Code{
	"enter":     CodeEnter,
	"backspace": CodeBackspace,
	"tab":       CodeTab,
	"esc":       CodeEsc,
	"up":        CodeUp,
	"down":      CodeDown,
	"left":      CodeLeft,
	"right":     CodeRight,
	"home":      CodeHome,
	"end":       CodeEnd,
	"pgup":      CodePageUp,
	"pgdown":    CodePageDown,
	"delete":    CodeDelete,
	"insert":    CodeInsert,
}

// FromTea decodes a bubbletea key message. ok is false for keys with no
// chord representation (unknown sequences, bracketed pastes).
func FromTea(msg tea.KeyMsg) (Key, bool) {
	if msg.Paste {
		return Key{}, false
	}
	return Parse(msg.String())
}

// Parse decodes a chord in bubbletea's textual form ("ctrl+v", "shift+tab", "Q").
func Parse(s string) (Key, bool) {
	if s == "" {
		return Key{}, false
	}

	var mods Modifier
	for {
		switch {
		case len(s) > len("ctrl+") && strings.HasPrefix(s, "ctrl+"):
			mods |= ModCtrl
			s = s[len("ctrl+"):]
			continue
		case len(s) > len("alt+") && strings.HasPrefix(s, "alt+"):
			mods |= ModAlt
			s = s[len("alt+"):]
			continue
		case len(s) > len("shift+") && strings.HasPrefix(s, "shift+"):
			mods |= ModShift
			s = s[len("shift+"):]
			continue
		}
		break
	}

	if s == "tab" && mods.Has(ModShift) {
		return Special(CodeBackTab).With(mods), true
	}
	if code, ok := namedKeys[s]; ok {
		return Special(code).With(mods), true
	}
	if strings.HasPrefix(s, "f") && len(s) > 1 {
		if n, err := strconv.Atoi(s[1:]); err == nil && n > 0 {
			return F(n).With(mods), true
		}
	}
	if utf8.RuneCountInString(s) == 1 {
		r, _ := utf8.DecodeRuneInString(s)
		if mods.Has(ModCtrl) {
			return Ctrl(r).With(mods), true
		}
		return Char(r).With(mods), true
	}
	return Key{}, false
}
