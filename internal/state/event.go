// Package state implements the streamwatch screen state machine: the
// screens, their event handling, the resumable state cache and the
// navigation stack.
package state

import (
	"fmt"

	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/events"
	"github.com/tOgg1/streamwatch/internal/twitch"
)

// Direction is a movement direction for highlights, panels and tabs.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

func (d Direction) String() string {
	switch d {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	default:
		return "Right"
	}
}

// End selects the first or last item of a list.
type End int

const (
	First End = iota
	Last
)

func (e End) String() string {
	if e == First {
		return "First"
	}
	return "Last"
}

// Output is what a finished popup hands to its callback.
type Output interface {
	isOutput()
}

// InputOutput is the text submitted from an input popup.
type InputOutput string

// IndexOutput is the option chosen in a choice popup.
type IndexOutput int

func (InputOutput) isOutput() {}
func (IndexOutput) isOutput() {}

// Callback runs when a popup completes. It may send follow-up events.
type Callback func(tx events.Sender[Event], out Output)

// Event is everything that can happen in a frame: lifecycle signals,
// asynchronous results, input actions and domain requests. Events are
// plain values and never reference a state.
type Event interface {
	// Label is the keybind legend text; empty keeps the bind out of the legend.
	Label() string
	String() string
	isEvent()
}

type (
	// Started ends the startup screen.
	Started struct{}
	// Exited asks the application to quit.
	Exited struct{}
	// CheckChannels requests status checks for Channels.
	CheckChannels struct{ Channels []channel.Channel }
	// ChannelSelected launches Channel, with its chat when OpenChat is set.
	ChannelSelected struct {
		Channel  channel.Channel
		OpenChat bool
	}
	// ChoicePopupStarted pushes a choice popup.
	ChoicePopupStarted struct {
		Title    string
		Message  string
		Options  []string
		Callback Callback
	}
	// InputPopupStarted pushes a text input popup.
	InputPopupStarted struct {
		Title    string
		Message  string
		Callback Callback
	}
	// TimedInfoPopupStarted pushes a popup that closes itself after Duration frames.
	TimedInfoPopupStarted struct {
		Title    string
		Message  string
		Duration uint64
		Callback Callback
	}
	// PopupEnded pops the finished popup.
	PopupEnded struct{}
	// ChatChoice is the answer to the launch-chat popup for the highlighted favourite.
	ChatChoice struct{ Index int }
	// ChatChoiceSearch is the answer to the launch-chat popup for the searched handle.
	ChatChoiceSearch struct{ Index int }
	// CycleTab switches between the Home and Lists screens.
	CycleTab struct{ Direction Direction }
	// CycleHighlight moves the highlight within the focused list.
	CycleHighlight struct{ Direction Direction }
	// HomeEndHighlight jumps to the first or last item.
	HomeEndHighlight struct{ End End }
	// Selected activates the highlighted item.
	Selected struct{}
	// CyclePanel moves focus between panels.
	CyclePanel struct{ Direction Direction }
	// StopTyping leaves text entry.
	StopTyping struct{}
	// Submit confirms the typed text.
	Submit struct{}
	// DeleteChar removes the last typed character.
	DeleteChar struct{}
	// Typed appends Char to the text being entered.
	Typed struct{ Char rune }
	// Paste appends Text; an empty Text pastes the system clipboard.
	Paste struct{ Text string }
	// AccountConfigured carries a newly created account.
	AccountConfigured struct{ Account *twitch.Account }
	// AccountFieldSet answers one account setup prompt.
	AccountFieldSet struct {
		Field AccountField
		Value string
	}
	// ListSelected starts status checks for the list at Index.
	ListSelected struct{ Index int }
)

func (Started) isEvent()               {}
func (Exited) isEvent()                {}
func (CheckChannels) isEvent()         {}
func (ChannelSelected) isEvent()       {}
func (ChoicePopupStarted) isEvent()    {}
func (InputPopupStarted) isEvent()     {}
func (TimedInfoPopupStarted) isEvent() {}
func (PopupEnded) isEvent()            {}
func (ChatChoice) isEvent()            {}
func (ChatChoiceSearch) isEvent()      {}
func (CycleTab) isEvent()              {}
func (CycleHighlight) isEvent()        {}
func (HomeEndHighlight) isEvent()      {}
func (Selected) isEvent()              {}
func (CyclePanel) isEvent()            {}
func (StopTyping) isEvent()            {}
func (Submit) isEvent()                {}
func (DeleteChar) isEvent()            {}
func (Typed) isEvent()                 {}
func (Paste) isEvent()                 {}
func (AccountConfigured) isEvent()     {}
func (AccountFieldSet) isEvent()       {}
func (ListSelected) isEvent()          {}

func (Started) Label() string               { return "" }
func (Exited) Label() string                { return "Quit" }
func (CheckChannels) Label() string         { return "" }
func (ChannelSelected) Label() string       { return "" }
func (ChoicePopupStarted) Label() string    { return "" }
func (InputPopupStarted) Label() string     { return "" }
func (TimedInfoPopupStarted) Label() string { return "" }
func (PopupEnded) Label() string            { return "" }
func (ChatChoice) Label() string            { return "" }
func (ChatChoiceSearch) Label() string      { return "" }
func (CycleTab) Label() string              { return "Switch Tab" }
func (CycleHighlight) Label() string        { return "Move" }
func (HomeEndHighlight) Label() string      { return "First/Last" }
func (Selected) Label() string              { return "Select" }
func (CyclePanel) Label() string            { return "Switch Panel" }
func (StopTyping) Label() string            { return "Stop Typing" }
func (Submit) Label() string                { return "Submit" }
func (DeleteChar) Label() string            { return "Delete" }
func (Typed) Label() string                 { return "" }
func (Paste) Label() string                 { return "Paste" }
func (AccountConfigured) Label() string     { return "" }
func (AccountFieldSet) Label() string       { return "" }
func (ListSelected) Label() string          { return "" }

func (Started) String() string { return "Started" }
func (Exited) String() string  { return "Exit" }
func (e CheckChannels) String() string {
	return fmt.Sprintf("Check %d channels", len(e.Channels))
}
func (e ChannelSelected) String() string {
	return fmt.Sprintf("Channel %s selected (chat: %t)", e.Channel.Handle, e.OpenChat)
}
func (e ChoicePopupStarted) String() string    { return "Choice popup started: " + e.Title }
func (e InputPopupStarted) String() string     { return "Input popup started: " + e.Title }
func (e TimedInfoPopupStarted) String() string { return "Timed info popup started: " + e.Title }
func (PopupEnded) String() string              { return "Popup ended" }
func (e ChatChoice) String() string            { return fmt.Sprintf("Chat choice %d", e.Index) }
func (e ChatChoiceSearch) String() string      { return fmt.Sprintf("Chat choice (search) %d", e.Index) }
func (e CycleTab) String() string              { return "Cycle tab " + e.Direction.String() }
func (e CycleHighlight) String() string        { return "Cycle highlight " + e.Direction.String() }
func (e HomeEndHighlight) String() string      { return "Highlight to " + e.End.String() }
func (Selected) String() string                { return "Selected current highlight" }
func (e CyclePanel) String() string            { return "Cycle panel " + e.Direction.String() }
func (StopTyping) String() string              { return "Stop typing" }
func (Submit) String() string                  { return "Submit" }
func (DeleteChar) String() string              { return "Delete char" }
func (e Typed) String() string                 { return fmt.Sprintf("Typed %q", e.Char) }
func (e Paste) String() string                 { return fmt.Sprintf("Paste %d bytes", len(e.Text)) }
func (AccountConfigured) String() string       { return "Account configured" }
func (e AccountFieldSet) String() string       { return "Account field set: " + e.Field.String() }
func (e ListSelected) String() string          { return fmt.Sprintf("List %d selected", e.Index) }

// Sender is the shared producer side of the event queue.
type Sender = events.Sender[Event]
