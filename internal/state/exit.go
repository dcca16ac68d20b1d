package state

import (
	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
	"github.com/tOgg1/streamwatch/internal/twitch"
)

// Exit is the terminal state. It reacts to nothing.
type Exit struct{}

func NewExit() *Exit { return &Exit{} }

func (*Exit) sealed()    {}
func (*Exit) Kind() Kind { return KindExit }
func (*Exit) Receive()   {}

func (*Exit) Tick(*twitch.Account, uint64, Sender)         {}
func (*Exit) Handle(input.Key) (Event, bool)               { return nil, false }
func (*Exit) Process(Event, Sender)                        {}
func (*Exit) Legend() []input.LegendEntry                  { return nil }
func (*Exit) Render(styles.Theme, int, int, uint64) string { return "" }

func (*Exit) Transition(Event, *twitch.Account, Sender) *Transition {
	return nil
}

func (*Exit) Freeze() Snapshot { return exitSnapshot{} }

type exitSnapshot struct{}

func (exitSnapshot) Kind() Kind                 { return KindExit }
func (exitSnapshot) Thaw(*Env, Sender) AppState { return NewExit() }
