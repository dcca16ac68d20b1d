package state

import (
	"context"

	"github.com/atotto/clipboard"
	"github.com/rs/zerolog"

	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/events"
	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/logging"
	"github.com/tOgg1/streamwatch/internal/styles"
	"github.com/tOgg1/streamwatch/internal/twitch"
)

// Kind identifies a screen independent of its contents. The cache keeps
// at most one state per kind.
type Kind int

const (
	KindStartup Kind = iota
	KindAccountMissing
	KindHome
	KindLists
	KindPopup
	KindExit
)

func (k Kind) String() string {
	switch k {
	case KindStartup:
		return "startup"
	case KindAccountMissing:
		return "account-missing"
	case KindHome:
		return "home"
	case KindLists:
		return "lists"
	case KindPopup:
		return "popup"
	case KindExit:
		return "exit"
	default:
		return "unknown"
	}
}

// AppState is one screen. The set of implementations is closed: Startup,
// AccountMissing, Home, Lists, Popup and Exit.
//
// Tick runs once per frame and may only enqueue events. Handle maps a key to
// an event. Process applies an event to the state's own fields and forwards
// anything that needs a state change back onto tx. Transition is called by
// the machine with the event drained this frame and returns the navigation
// instruction, or nil.
type AppState interface {
	Kind() Kind
	Receive()
	Tick(account *twitch.Account, timer uint64, tx Sender)
	Handle(key input.Key) (Event, bool)
	Process(ev Event, tx Sender)
	Transition(ev Event, account *twitch.Account, tx Sender) *Transition
	Freeze() Snapshot
	Legend() []input.LegendEntry
	Render(theme styles.Theme, width, height int, timer uint64) string

	sealed()
}

// Snapshot is a cached, inert copy of a state. Thaw rebuilds a live state
// with fresh receivers; the snapshot itself is never handed out.
type Snapshot interface {
	Kind() Kind
	Thaw(env *Env, tx Sender) AppState
}

// Checker starts asynchronous status checks, delivering results to out.
type Checker interface {
	Check(ctx context.Context, channels []channel.Channel, account *twitch.Account, out events.Sender[channel.Result])
}

// Launcher opens streams and chats externally.
type Launcher interface {
	Launch(c channel.Channel) error
	LaunchChat(c channel.Channel) error
}

// Clipboard reads the system clipboard.
type Clipboard interface {
	ReadAll() (string, error)
}

// Notifier announces channels going live.
type Notifier interface {
	ChannelOnline(c channel.Channel) error
}

// AccountBuilder creates and persists an account from the setup prompts.
type AccountBuilder func(ctx context.Context, fields twitch.Fields) (*twitch.Account, error)

// SystemClipboard reads the OS clipboard.
type SystemClipboard struct{}

// ReadAll returns the clipboard text.
func (SystemClipboard) ReadAll() (string, error) {
	return clipboard.ReadAll()
}

// Env holds the collaborators and settings shared by every state.
type Env struct {
	Ctx          context.Context
	Checker      Checker
	Launcher     Launcher
	Clipboard    Clipboard
	Notifier     Notifier
	BuildAccount AccountBuilder

	FavouritesPath string
	ListsDir       string

	// StartupTicks is how many frames the startup and account prompt screens wait.
	StartupTicks uint64
	// ErrorTicks is how long error popups stay up.
	ErrorTicks uint64

	Logger zerolog.Logger
}

func (e *Env) ctx() context.Context {
	if e.Ctx == nil {
		return context.Background()
	}
	return e.Ctx
}

func (e *Env) logger() *zerolog.Logger {
	return &e.Logger
}

// DefaultStartupTicks is used when Env.StartupTicks is zero.
const DefaultStartupTicks = 2

// NewEnv returns an Env with a component logger, the system clipboard,
// and default frame counts.
func NewEnv(ctx context.Context) *Env {
	return &Env{
		Ctx:          ctx,
		Clipboard:    SystemClipboard{},
		StartupTicks: DefaultStartupTicks,
		ErrorTicks:   12,
		Logger:       logging.Component("state"),
	}
}

// loadFavourites reads favourites; a missing file is empty, a broken file is an error.
func (e *Env) loadFavourites() ([]channel.Channel, error) {
	return channel.LoadFavourites(e.FavouritesPath)
}
