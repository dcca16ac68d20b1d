package state

import (
	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
	"github.com/tOgg1/streamwatch/internal/twitch"
	"github.com/tOgg1/streamwatch/internal/ui"
)

// PopupVariant selects how a popup is answered.
type PopupVariant int

const (
	PopupChoice PopupVariant = iota
	PopupInput
	PopupTimedInfo
)

func (v PopupVariant) String() string {
	switch v {
	case PopupChoice:
		return "choice"
	case PopupInput:
		return "input"
	case PopupTimedInfo:
		return "timed-info"
	default:
		return "unknown"
	}
}

const (
	chatPopupTitle   = "Launch Chat"
	chatPopupMessage = "Do you want to launch the chat with the stream?"
)

var chatPopupOptions = []string{"No", "Yes"}

// Popup is a modal screen pushed over Home, Lists or account setup. It
// completes at most once: it enqueues PopupEnded and then runs its callback.
type Popup struct {
	env      *Env
	title    string
	message  string
	variant  PopupVariant
	callback Callback

	// choice
	selected int
	options  []string

	// input
	typing bool
	input  []rune

	// timed info
	duration uint64

	done    bool
	handler *input.Handler[Event]
}

// NewChoicePopup asks the user to pick one of options. The callback gets an IndexOutput.
func NewChoicePopup(env *Env, title, message string, options []string, cb Callback) *Popup {
	p := &Popup{
		env:      env,
		title:    title,
		message:  message,
		variant:  PopupChoice,
		callback: cb,
		options:  append([]string(nil), options...),
	}
	p.resetHandler()
	return p
}

// NewInputPopup asks for a line of text. The callback gets an InputOutput.
func NewInputPopup(env *Env, title, message string, cb Callback) *Popup {
	p := &Popup{
		env:      env,
		title:    title,
		message:  message,
		variant:  PopupInput,
		callback: cb,
	}
	p.resetHandler()
	return p
}

// NewTimedInfoPopup shows message for duration frames. The callback runs
// with a nil Output when it expires.
func NewTimedInfoPopup(env *Env, title, message string, duration uint64, cb Callback) *Popup {
	p := &Popup{
		env:      env,
		title:    title,
		message:  message,
		variant:  PopupTimedInfo,
		callback: cb,
		duration: duration,
	}
	p.resetHandler()
	return p
}

func (p *Popup) resetHandler() {
	switch p.variant {
	case PopupChoice:
		p.handler = choiceInputs()
	case PopupInput:
		if p.typing {
			p.handler = typingInputs()
		} else {
			p.handler = userInputInputs()
		}
	case PopupTimedInfo:
		p.handler = timedInfoInputs()
	default:
		p.handler = noInputs()
	}
}

func (p *Popup) sealed()    {}
func (p *Popup) Kind() Kind { return KindPopup }
func (p *Popup) Receive()   {}

func (p *Popup) Variant() PopupVariant { return p.variant }
func (p *Popup) Title() string         { return p.title }
func (p *Popup) Selected() int         { return p.selected }
func (p *Popup) Typing() bool          { return p.typing }
func (p *Popup) Input() string         { return string(p.input) }
func (p *Popup) Done() bool            { return p.done }

func (p *Popup) Tick(_ *twitch.Account, timer uint64, tx Sender) {
	if p.variant == PopupTimedInfo && timer > p.duration {
		p.complete(tx, nil)
	}
}

func (p *Popup) Handle(key input.Key) (Event, bool) {
	if ev, ok := p.handler.Handle(key); ok {
		return ev, true
	}
	if p.variant == PopupInput && p.typing && key.Printable() {
		return Typed{Char: key.Char}, true
	}
	return nil, false
}

func (p *Popup) Process(ev Event, tx Sender) {
	if _, ok := ev.(Exited); ok {
		tx.Send(ev)
		return
	}
	switch p.variant {
	case PopupChoice:
		p.processChoice(ev, tx)
	case PopupInput:
		p.processInput(ev, tx)
	}
}

func (p *Popup) processChoice(ev Event, tx Sender) {
	switch e := ev.(type) {
	case CycleHighlight:
		p.selected = moveIndex(p.selected, len(p.options), e.Direction)
	case HomeEndHighlight:
		p.selected = endIndex(p.selected, len(p.options), e.End)
	case Selected:
		if len(p.options) > 0 {
			p.complete(tx, IndexOutput(p.selected))
		}
	}
}

func (p *Popup) processInput(ev Event, tx Sender) {
	switch e := ev.(type) {
	case Selected:
		p.setTyping(true)
	case StopTyping:
		p.setTyping(false)
	case Submit:
		if len(p.input) == 0 {
			return
		}
		p.complete(tx, InputOutput(string(p.input)))
	case DeleteChar:
		if len(p.input) > 0 {
			p.input = p.input[:len(p.input)-1]
		}
	case Typed:
		p.input = append(p.input, e.Char)
	case Paste:
		if p.typing {
			p.input = append(p.input, pasteText(p.env, e)...)
		}
	}
}

func (p *Popup) setTyping(typing bool) {
	p.typing = typing
	p.resetHandler()
}

func (p *Popup) complete(tx Sender, out Output) {
	if p.done {
		return
	}
	p.done = true
	tx.Send(PopupEnded{})
	if p.callback != nil {
		p.callback(tx, out)
	}
}

func (p *Popup) Transition(ev Event, _ *twitch.Account, _ Sender) *Transition {
	switch e := ev.(type) {
	case PopupEnded:
		return Pop()
	case Exited:
		return To(NewExit())
	case ChoicePopupStarted:
		return Push(NewChoicePopup(p.env, e.Title, e.Message, e.Options, e.Callback))
	case InputPopupStarted:
		return Push(NewInputPopup(p.env, e.Title, e.Message, e.Callback))
	case TimedInfoPopupStarted:
		return Push(NewTimedInfoPopup(p.env, e.Title, e.Message, e.Duration, e.Callback))
	default:
		return nil
	}
}

func (p *Popup) Freeze() Snapshot {
	return popupSnapshot{
		title:    p.title,
		message:  p.message,
		variant:  p.variant,
		callback: p.callback,
		selected: p.selected,
		options:  append([]string(nil), p.options...),
		typing:   p.typing,
		input:    append([]rune(nil), p.input...),
		duration: p.duration,
		done:     p.done,
	}
}

func (p *Popup) Legend() []input.LegendEntry {
	return p.handler.Legend()
}

func (p *Popup) Render(theme styles.Theme, width, height int, timer uint64) string {
	legend := p.Legend()
	switch p.variant {
	case PopupChoice:
		return ui.Choice(theme, width, height, p.title, p.message, p.options, p.selected, legend)
	case PopupInput:
		return ui.Input(theme, width, height, p.title, p.message, string(p.input), p.typing, legend)
	default:
		return ui.TimedInfo(theme, width, height, p.title, p.message, p.duration, timer, legend)
	}
}

type popupSnapshot struct {
	title    string
	message  string
	variant  PopupVariant
	callback Callback
	selected int
	options  []string
	typing   bool
	input    []rune
	duration uint64
	done     bool
}

func (popupSnapshot) Kind() Kind { return KindPopup }

func (s popupSnapshot) Thaw(env *Env, _ Sender) AppState {
	p := &Popup{
		env:      env,
		title:    s.title,
		message:  s.message,
		variant:  s.variant,
		callback: s.callback,
		selected: s.selected,
		options:  append([]string(nil), s.options...),
		typing:   s.typing,
		input:    append([]rune(nil), s.input...),
		duration: s.duration,
		done:     s.done,
	}
	p.resetHandler()
	return p
}

// chatPopup asks whether to open the chat alongside the stream. answer
// turns the chosen option index into the event to send.
func chatPopup(answer func(index int) Event) ChoicePopupStarted {
	return ChoicePopupStarted{
		Title:   chatPopupTitle,
		Message: chatPopupMessage,
		Options: append([]string(nil), chatPopupOptions...),
		Callback: func(tx Sender, out Output) {
			if idx, ok := out.(IndexOutput); ok {
				tx.Send(answer(int(idx)))
			}
		},
	}
}

func chatChoice(index int) Event       { return ChatChoice{Index: index} }
func chatChoiceSearch(index int) Event { return ChatChoiceSearch{Index: index} }
