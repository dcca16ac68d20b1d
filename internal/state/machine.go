package state

import (
	"github.com/rs/zerolog"

	"github.com/tOgg1/streamwatch/internal/events"
	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
	"github.com/tOgg1/streamwatch/internal/twitch"
)

// Machine drives the active state once per frame. It owns the current
// state, the cache, the navigation stack and the event queue; nothing else
// holds a reference to the active state.
type Machine struct {
	env     *Env
	state   AppState
	cache   Cache
	stack   []int
	events  *events.Queue[Event]
	timer   uint64
	account *twitch.Account
	exited  bool
	logger  zerolog.Logger
}

// NewMachine starts on the startup screen when an account is present and
// on account setup otherwise.
func NewMachine(env *Env, account *twitch.Account) *Machine {
	m := &Machine{
		env:     env,
		events:  events.NewQueue[Event](),
		account: account,
		logger:  env.logger().With().Str("component", "state-machine").Logger(),
	}
	if account != nil {
		m.state = NewStartup(env)
	} else {
		m.state = NewAccountMissing(env)
	}
	return m
}

// NewMachineWith starts on the state built by initial, which receives the
// machine's event sender.
func NewMachineWith(env *Env, account *twitch.Account, initial func(tx Sender) AppState) *Machine {
	m := NewMachine(env, account)
	m.state = initial(m.events)
	return m
}

// Tick advances one frame: drain async results, tick the state, then
// drain and apply at most one event.
func (m *Machine) Tick() {
	m.timer++

	m.state.Receive()
	m.state.Tick(m.account, m.timer, m.events)

	ev, ok := m.events.TryRecv()
	if !ok {
		return
	}

	switch e := ev.(type) {
	case Exited:
		m.exited = true
	case AccountConfigured:
		if e.Account != nil {
			m.account = e.Account
		}
	}

	tr := m.state.Transition(ev, m.account, m.events)
	if tr == nil {
		return
	}
	m.apply(ev, tr)
	m.timer = 0
}

func (m *Machine) apply(ev Event, tr *Transition) {
	from := m.state.Kind()

	switch tr.Kind {
	case TransitionPush:
		index := m.cache.Add(m.state.Freeze())
		m.stack = append(m.stack, index)
		m.state = tr.State
	case TransitionPop:
		if len(m.stack) == 0 {
			m.logger.Debug().Str("state", from.String()).Msg("pop with empty stack ignored")
			return
		}
		index := m.stack[len(m.stack)-1]
		m.stack = m.stack[:len(m.stack)-1]
		resumed, ok := m.cache.Get(index, m.env, m.events)
		if !ok {
			m.logger.Warn().Int("index", index).Msg("popped state missing from cache")
			return
		}
		m.state = resumed
	case TransitionTo:
		m.cache.Add(m.state.Freeze())
		m.state = tr.State
	}

	m.logger.Debug().
		Str("event", ev.String()).
		Str("transition", tr.Kind.String()).
		Str("from", from.String()).
		Str("to", m.state.Kind().String()).
		Int("stack", len(m.stack)).
		Msg("state transition")
}

// Handle translates a key through the active state and processes the result.
func (m *Machine) Handle(key input.Key) {
	ev, ok := m.state.Handle(key)
	if !ok {
		return
	}
	m.state.Process(ev, m.events)
}

// Paste processes pasted text in the active state.
func (m *Machine) Paste(text string) {
	m.state.Process(Paste{Text: text}, m.events)
}

// Sender returns the shared event sender.
func (m *Machine) Sender() Sender { return m.events }

// Send enqueues an event as if a background task produced it.
func (m *Machine) Send(ev Event) bool {
	return m.events.Send(ev)
}

// Render draws the active state.
func (m *Machine) Render(theme styles.Theme, width, height int) string {
	return m.state.Render(theme, width, height, m.timer)
}

// Exited reports whether the application should quit.
func (m *Machine) Exited() bool {
	return m.exited || m.state.Kind() == KindExit
}

// State returns the active state.
func (m *Machine) State() AppState { return m.state }

// Account returns the current account, if any.
func (m *Machine) Account() *twitch.Account { return m.account }

// Timer returns the frames since the last transition.
func (m *Machine) Timer() uint64 { return m.timer }

// Stack returns a copy of the navigation stack.
func (m *Machine) Stack() []int { return append([]int(nil), m.stack...) }

// Cache returns the state cache.
func (m *Machine) Cache() *Cache { return &m.cache }

// Pending returns the number of queued events.
func (m *Machine) Pending() int { return m.events.Len() }
