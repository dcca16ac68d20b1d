package state

import (
	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
	"github.com/tOgg1/streamwatch/internal/twitch"
	"github.com/tOgg1/streamwatch/internal/ui"
)

// Startup shows the splash screen for a fixed number of frames, then loads
// the favourites and moves to Home.
type Startup struct {
	env      *Env
	duration uint64
	started  bool
	handler  *input.Handler[Event]
}

// NewStartup returns a startup screen lasting env.StartupTicks frames.
func NewStartup(env *Env) *Startup {
	duration := env.StartupTicks
	if duration == 0 {
		duration = DefaultStartupTicks
	}
	return &Startup{env: env, duration: duration, handler: startupInputs()}
}

func (s *Startup) sealed()    {}
func (s *Startup) Kind() Kind { return KindStartup }
func (s *Startup) Receive()   {}

func (s *Startup) Tick(_ *twitch.Account, timer uint64, tx Sender) {
	if s.started || timer <= s.duration {
		return
	}
	s.started = true
	tx.Send(Started{})
}

func (s *Startup) Handle(key input.Key) (Event, bool) {
	return s.handler.Handle(key)
}

func (s *Startup) Process(ev Event, tx Sender) {
	if _, ok := ev.(Exited); ok {
		tx.Send(ev)
	}
}

func (s *Startup) Transition(ev Event, _ *twitch.Account, tx Sender) *Transition {
	switch ev.(type) {
	case Started:
		favourites, err := s.env.loadFavourites()
		if err != nil {
			s.env.logger().Error().Err(err).Str("path", s.env.FavouritesPath).Msg("failed to load favourites")
			return To(NewExit())
		}
		return To(NewHome(s.env, favourites, tx))
	case Exited:
		return To(NewExit())
	default:
		return nil
	}
}

func (s *Startup) Freeze() Snapshot {
	return startupSnapshot{duration: s.duration, started: s.started}
}

func (s *Startup) Legend() []input.LegendEntry {
	return s.handler.Legend()
}

func (s *Startup) Render(theme styles.Theme, width, height int, timer uint64) string {
	return ui.Startup(theme, width, height, timer)
}

type startupSnapshot struct {
	duration uint64
	started  bool
}

func (startupSnapshot) Kind() Kind { return KindStartup }

func (s startupSnapshot) Thaw(env *Env, _ Sender) AppState {
	return &Startup{env: env, duration: s.duration, started: s.started, handler: startupInputs()}
}
