package state

import (
	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
	"github.com/tOgg1/streamwatch/internal/twitch"
	"github.com/tOgg1/streamwatch/internal/ui"
)

// ListsPanel is the focused panel on the lists screen.
type ListsPanel int

const (
	PanelLists ListsPanel = iota
	PanelChannels
)

// Lists browses the channel lists stored in the lists directory. It runs
// its own status checks, separate from Home's.
type Lists struct {
	env              *Env
	lists            []channel.List
	listHighlight    int
	channelHighlight int
	panel            ListsPanel
	board            statusBoard
	handler          *input.Handler[Event]
}

// NewLists loads every list from env.ListsDir. A missing or unreadable
// directory shows no lists.
func NewLists(env *Env) *Lists {
	lists, err := channel.LoadLists(env.ListsDir)
	if err != nil {
		env.logger().Warn().Err(err).Str("dir", env.ListsDir).Msg("failed to load lists")
	}
	return newLists(env, lists, 0, 0, PanelLists)
}

func newLists(env *Env, lists []channel.List, listHighlight, channelHighlight int, panel ListsPanel) *Lists {
	l := &Lists{
		env:              env,
		lists:            copyLists(lists),
		listHighlight:    listHighlight,
		channelHighlight: channelHighlight,
		panel:            panel,
		board:            newStatusBoard(),
		handler:          listsInputs(),
	}
	if l.listHighlight >= len(l.lists) {
		l.listHighlight = 0
	}
	if l.channelHighlight >= len(l.currentChannels()) {
		l.channelHighlight = 0
	}
	return l
}

func copyLists(in []channel.List) []channel.List {
	out := make([]channel.List, len(in))
	for i, l := range in {
		out[i] = channel.List{Name: l.Name, Path: l.Path, Channels: copyChannels(l.Channels)}
	}
	return out
}

func (l *Lists) sealed()    {}
func (l *Lists) Kind() Kind { return KindLists }

// ChannelLists returns the loaded lists.
func (l *Lists) ChannelLists() []channel.List { return l.lists }

// ListHighlight returns the highlighted list index.
func (l *Lists) ListHighlight() int { return l.listHighlight }

// ChannelHighlight returns the highlighted channel index within the current list.
func (l *Lists) ChannelHighlight() int { return l.channelHighlight }

// Panel returns the focused panel.
func (l *Lists) Panel() ListsPanel { return l.panel }

func (l *Lists) currentChannels() []channel.Channel {
	if l.listHighlight < len(l.lists) {
		return l.lists[l.listHighlight].Channels
	}
	return nil
}

// Receive applies arrived results to every list containing the channel.
func (l *Lists) Receive() {
	var wentOnline []channel.Channel
	for _, r := range l.board.drain() {
		matched := false
		for i := range l.lists {
			online, ok := applyResult(l.lists[i].Channels, r)
			matched = matched || ok
			wentOnline = append(wentOnline, online...)
		}
		if !matched {
			l.env.logger().Warn().Str("channel", r.Handle).Msg("status for channel not in any list")
		}
	}
	announce(l.env, wentOnline)
}

func (l *Lists) Tick(*twitch.Account, uint64, Sender) {}

func (l *Lists) Handle(key input.Key) (Event, bool) {
	return l.handler.Handle(key)
}

func (l *Lists) Process(ev Event, tx Sender) {
	switch e := ev.(type) {
	case Exited, CycleTab:
		tx.Send(ev)
	case CycleHighlight:
		if l.panel == PanelLists {
			prev := l.listHighlight
			l.listHighlight = moveIndex(l.listHighlight, len(l.lists), e.Direction)
			if prev != l.listHighlight {
				l.channelHighlight = 0
			}
		} else {
			l.channelHighlight = moveIndex(l.channelHighlight, len(l.currentChannels()), e.Direction)
		}
	case HomeEndHighlight:
		if l.panel == PanelLists {
			l.listHighlight = endIndex(l.listHighlight, len(l.lists), e.End)
			l.channelHighlight = 0
		} else {
			l.channelHighlight = endIndex(l.channelHighlight, len(l.currentChannels()), e.End)
		}
	case CyclePanel:
		if e.Direction == Left || e.Direction == Right {
			if l.panel == PanelLists {
				l.panel = PanelChannels
			} else {
				l.panel = PanelLists
			}
		}
	case Selected:
		switch l.panel {
		case PanelLists:
			if len(l.lists) == 0 {
				return
			}
			l.panel = PanelChannels
			l.channelHighlight = 0
			tx.Send(ListSelected{Index: l.listHighlight})
		case PanelChannels:
			if len(l.currentChannels()) > 0 {
				tx.Send(chatPopup(chatChoice))
			}
		}
	}
}

func (l *Lists) Transition(ev Event, account *twitch.Account, tx Sender) *Transition {
	switch e := ev.(type) {
	case Exited:
		return To(NewExit())
	case CycleTab:
		favourites, err := l.env.loadFavourites()
		if err != nil {
			l.env.logger().Warn().Err(err).Str("path", l.env.FavouritesPath).Msg("failed to reload favourites")
		}
		return To(NewHome(l.env, favourites, tx))
	case ListSelected:
		if e.Index < 0 || e.Index >= len(l.lists) {
			return nil
		}
		l.board.check(l.env, channel.Awaiting(l.lists[e.Index].Channels), account)
		return nil
	case ChoicePopupStarted:
		return Push(NewChoicePopup(l.env, e.Title, e.Message, e.Options, e.Callback))
	case InputPopupStarted:
		return Push(NewInputPopup(l.env, e.Title, e.Message, e.Callback))
	case TimedInfoPopupStarted:
		return Push(NewTimedInfoPopup(l.env, e.Title, e.Message, e.Duration, e.Callback))
	case ChatChoice:
		channels := l.currentChannels()
		if l.channelHighlight < len(channels) {
			tx.Send(ChannelSelected{Channel: channels[l.channelHighlight], OpenChat: e.Index == 1})
		}
		return nil
	case ChannelSelected:
		launch(l.env, e)
		return nil
	default:
		return nil
	}
}

// Freeze keeps arrived results and closes the receiver. In-flight checks
// for the cached copy are dropped.
func (l *Lists) Freeze() Snapshot {
	l.Receive()
	l.board.close()
	return listsSnapshot{
		lists:            copyLists(l.lists),
		listHighlight:    l.listHighlight,
		channelHighlight: l.channelHighlight,
		panel:            l.panel,
	}
}

func (l *Lists) Legend() []input.LegendEntry {
	return l.handler.Legend()
}

func (l *Lists) Render(theme styles.Theme, width, height int, _ uint64) string {
	return ui.Lists(theme, width, height, ui.ListsView{
		Lists:            l.lists,
		ListHighlight:    l.listHighlight,
		Channels:         l.currentChannels(),
		ChannelHighlight: l.channelHighlight,
		ChannelsFocused:  l.panel == PanelChannels,
		Legend:           l.Legend(),
	})
}

type listsSnapshot struct {
	lists            []channel.List
	listHighlight    int
	channelHighlight int
	panel            ListsPanel
}

func (listsSnapshot) Kind() Kind { return KindLists }

// Thaw restarts checks for the selected list's channels still awaiting a status.
func (s listsSnapshot) Thaw(env *Env, tx Sender) AppState {
	l := newLists(env, s.lists, s.listHighlight, s.channelHighlight, s.panel)
	if s.panel == PanelChannels && len(channel.Awaiting(l.currentChannels())) > 0 {
		tx.Send(ListSelected{Index: l.listHighlight})
	}
	return l
}
