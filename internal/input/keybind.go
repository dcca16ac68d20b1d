package input

import "strings"

// Action is anything a key can be bound to. Label is the legend text;
// an empty label keeps the bind out of the legend.
type Action interface {
	Label() string
}

// KeyBind pairs a trigger chord with the action it produces.
type KeyBind[A Action] struct {
	Key    Key
	Action A
}

// Bind is shorthand for building a KeyBind.
func Bind[A Action](key Key, action A) KeyBind[A] {
	return KeyBind[A]{Key: key, Action: action}
}

// Handler resolves chords against an ordered table of binds.
type Handler[A Action] struct {
	binds []KeyBind[A]
}

// NewHandler creates a handler over binds. Table order is match order.
func NewHandler[A Action](binds []KeyBind[A]) *Handler[A] {
	return &Handler[A]{binds: binds}
}

// Handle returns the action of the first bind matching key.
func (h *Handler[A]) Handle(key Key) (A, bool) {
	var zero A
	if h == nil {
		return zero, false
	}
	for _, b := range h.binds {
		if b.Key == key {
			return b.Action, true
		}
	}
	return zero, false
}

// Binds returns the bind table.
func (h *Handler[A]) Binds() []KeyBind[A] {
	if h == nil {
		return nil
	}
	return h.binds
}

// LegendEntry is one legend line: an action label and its triggers.
type LegendEntry struct {
	Label    string
	Triggers []string
}

func (e LegendEntry) String() string {
	return e.Label + ": " + strings.Join(e.Triggers, ", ")
}

// Legend merges binds sharing a label into one entry, in first-seen order.
// Shift variants of characters are omitted since the character already shows the case.
func (h *Handler[A]) Legend() []LegendEntry {
	if h == nil {
		return nil
	}

	var entries []LegendEntry
	index := make(map[string]int)

	for _, b := range h.binds {
		label := b.Action.Label()
		if label == "" {
			continue
		}
		if b.Key.Code == CodeChar && b.Key.Mods.Has(ModShift) {
			continue
		}

		i, ok := index[label]
		if !ok {
			i = len(entries)
			index[label] = i
			entries = append(entries, LegendEntry{Label: label})
		}
		trigger := b.Key.String()
		if !contains(entries[i].Triggers, trigger) {
			entries[i].Triggers = append(entries[i].Triggers, trigger)
		}
	}

	return entries
}

// LegendStrings renders Legend as "Label: A, B" lines.
func (h *Handler[A]) LegendStrings() []string {
	entries := h.Legend()
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.String())
	}
	return out
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
