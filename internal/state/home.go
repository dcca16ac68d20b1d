package state

import (
	"sort"
	"strings"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
	"github.com/tOgg1/streamwatch/internal/twitch"
	"github.com/tOgg1/streamwatch/internal/ui"
)

// HomePanel is the focused panel on the home screen.
type HomePanel int

const (
	PanelFavourites HomePanel = iota
	PanelSearch
)

func (p HomePanel) next() HomePanel {
	if p == PanelFavourites {
		return PanelSearch
	}
	return PanelFavourites
}

const maxSuggestions = 5

// Home lists the favourites with their live status and hosts the search box.
type Home struct {
	env        *Env
	highlight  int
	favourites []channel.Channel
	board      statusBoard
	typing     bool
	search     []rune
	panel      HomePanel
	handler    *input.Handler[Event]
}

// NewHome builds a fresh home screen for favourites.
func NewHome(env *Env, favourites []channel.Channel, tx Sender) *Home {
	return newHome(env, 0, favourites, false, nil, PanelFavourites, tx)
}

// newHome requests status checks for every favourite still awaiting one.
func newHome(env *Env, highlight int, favourites []channel.Channel, typing bool, search []rune, panel HomePanel, tx Sender) *Home {
	h := &Home{
		env:        env,
		highlight:  highlight,
		favourites: copyChannels(favourites),
		board:      newStatusBoard(),
		typing:     typing,
		search:     append([]rune(nil), search...),
		panel:      panel,
	}
	if len(h.favourites) == 0 || h.highlight >= len(h.favourites) {
		h.highlight = 0
	}
	h.setTyping(typing)

	if awaiting := channel.Awaiting(h.favourites); len(awaiting) > 0 {
		tx.Send(CheckChannels{Channels: awaiting})
	}
	return h
}

func (h *Home) setTyping(typing bool) {
	h.typing = typing
	if typing {
		h.handler = typingInputs()
	} else {
		h.handler = homeInputs()
	}
}

func (h *Home) sealed()    {}
func (h *Home) Kind() Kind { return KindHome }

// Highlight returns the highlighted favourite index.
func (h *Home) Highlight() int { return h.highlight }

// Favourites returns the favourites in display order.
func (h *Home) Favourites() []channel.Channel { return h.favourites }

// Typing reports whether the search box captures keys.
func (h *Home) Typing() bool { return h.typing }

// SearchInput returns the typed search text.
func (h *Home) SearchInput() string { return string(h.search) }

// Panel returns the focused panel.
func (h *Home) Panel() HomePanel { return h.panel }

// Receive applies every status result that has arrived.
func (h *Home) Receive() {
	var wentOnline []channel.Channel
	for _, r := range h.board.drain() {
		online, ok := applyResult(h.favourites, r)
		if !ok {
			h.env.logger().Warn().Str("channel", r.Handle).Msg("status for channel not in favourites")
			continue
		}
		wentOnline = append(wentOnline, online...)
	}
	announce(h.env, wentOnline)
}

func (h *Home) Tick(*twitch.Account, uint64, Sender) {}

func (h *Home) Handle(key input.Key) (Event, bool) {
	if ev, ok := h.handler.Handle(key); ok {
		return ev, true
	}
	if h.typing && key.Printable() {
		return Typed{Char: key.Char}, true
	}
	return nil, false
}

func (h *Home) Process(ev Event, tx Sender) {
	switch e := ev.(type) {
	case Exited, CycleTab:
		tx.Send(ev)
	case CycleHighlight:
		if h.panel == PanelFavourites {
			h.highlight = moveIndex(h.highlight, len(h.favourites), e.Direction)
		}
	case HomeEndHighlight:
		if h.panel == PanelFavourites {
			h.highlight = endIndex(h.highlight, len(h.favourites), e.End)
		}
	case Selected:
		switch h.panel {
		case PanelFavourites:
			if len(h.favourites) > 0 {
				tx.Send(chatPopup(chatChoice))
			}
		case PanelSearch:
			h.setTyping(true)
		}
	case CyclePanel:
		if e.Direction == Left || e.Direction == Right {
			h.panel = h.panel.next()
		}
	case StopTyping:
		h.setTyping(false)
	case Submit:
		if strings.TrimSpace(string(h.search)) == "" {
			return
		}
		h.setTyping(false)
		tx.Send(chatPopup(chatChoiceSearch))
	case DeleteChar:
		if len(h.search) > 0 {
			h.search = h.search[:len(h.search)-1]
		}
	case Typed:
		h.search = append(h.search, e.Char)
	case Paste:
		if h.typing {
			h.search = append(h.search, pasteText(h.env, e)...)
		}
	}
}

func (h *Home) Transition(ev Event, account *twitch.Account, tx Sender) *Transition {
	switch e := ev.(type) {
	case Exited:
		return To(NewExit())
	case CheckChannels:
		h.board.check(h.env, e.Channels, account)
		return nil
	case ChoicePopupStarted:
		return Push(NewChoicePopup(h.env, e.Title, e.Message, e.Options, e.Callback))
	case InputPopupStarted:
		return Push(NewInputPopup(h.env, e.Title, e.Message, e.Callback))
	case TimedInfoPopupStarted:
		return Push(NewTimedInfoPopup(h.env, e.Title, e.Message, e.Duration, e.Callback))
	case ChatChoice:
		if h.highlight < len(h.favourites) {
			tx.Send(ChannelSelected{Channel: h.favourites[h.highlight], OpenChat: e.Index == 1})
		}
		return nil
	case ChatChoiceSearch:
		handle := strings.TrimSpace(string(h.search))
		if handle == "" {
			return nil
		}
		tx.Send(ChannelSelected{Channel: channel.New(handle, handle), OpenChat: e.Index == 1})
		return nil
	case CycleTab:
		return To(NewLists(h.env))
	case ChannelSelected:
		launch(h.env, e)
		return nil
	default:
		return nil
	}
}

// Freeze keeps any results that already arrived and closes the receiver.
func (h *Home) Freeze() Snapshot {
	h.Receive()
	h.board.close()
	return homeSnapshot{
		highlight:  h.highlight,
		favourites: copyChannels(h.favourites),
		typing:     h.typing,
		search:     append([]rune(nil), h.search...),
		panel:      h.panel,
	}
}

// Suggestions ranks favourites whose handle or name fuzzy-matches the search text.
func (h *Home) Suggestions() []channel.Channel {
	query := strings.TrimSpace(string(h.search))
	if query == "" || len(h.favourites) == 0 {
		return nil
	}

	targets := make([]string, len(h.favourites))
	for i, c := range h.favourites {
		targets[i] = c.Handle + " " + c.FriendlyName
	}
	ranks := fuzzy.RankFindFold(query, targets)
	sort.Sort(ranks)

	out := make([]channel.Channel, 0, maxSuggestions)
	for _, r := range ranks {
		if len(out) == maxSuggestions {
			break
		}
		out = append(out, h.favourites[r.OriginalIndex])
	}
	return out
}

func (h *Home) Legend() []input.LegendEntry {
	return h.handler.Legend()
}

func (h *Home) Render(theme styles.Theme, width, height int, _ uint64) string {
	return ui.Home(theme, width, height, ui.HomeView{
		Favourites:    h.favourites,
		Highlight:     h.highlight,
		SearchFocused: h.panel == PanelSearch,
		Typing:        h.typing,
		Search:        string(h.search),
		Suggestions:   h.Suggestions(),
		Legend:        h.Legend(),
	})
}

type homeSnapshot struct {
	highlight  int
	favourites []channel.Channel
	typing     bool
	search     []rune
	panel      HomePanel
}

func (s homeSnapshot) Kind() Kind { return KindHome }

func (s homeSnapshot) Thaw(env *Env, tx Sender) AppState {
	return newHome(env, s.highlight, s.favourites, s.typing, s.search, s.panel, tx)
}

// launch opens the stream and optionally the chat. Failures are logged only.
func launch(env *Env, e ChannelSelected) {
	log := env.logger().With().Str("channel", e.Channel.Handle).Logger()
	if env.Launcher == nil {
		log.Warn().Msg("no launcher configured")
		return
	}
	if err := env.Launcher.Launch(e.Channel); err != nil {
		log.Error().Err(err).Msg("error opening stream")
	}
	if e.OpenChat {
		if err := env.Launcher.LaunchChat(e.Channel); err != nil {
			log.Error().Err(err).Msg("error opening chat")
		}
	}
}

// pasteText returns the runes to append for a paste event, reading the
// clipboard when the event carries no text. Line breaks are dropped.
func pasteText(env *Env, e Paste) []rune {
	text := e.Text
	if text == "" && env.Clipboard != nil {
		clip, err := env.Clipboard.ReadAll()
		if err != nil {
			env.logger().Warn().Err(err).Msg("clipboard read failed")
			return nil
		}
		text = clip
	}
	var out []rune
	for _, r := range text {
		if r == '\n' || r == '\r' || r == '\t' {
			continue
		}
		out = append(out, r)
	}
	return out
}
