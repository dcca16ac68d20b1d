// Package app hosts the state machine in a bubbletea program.
package app

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/logging"
	"github.com/tOgg1/streamwatch/internal/state"
	"github.com/tOgg1/streamwatch/internal/styles"
)

// DefaultTickRate is the frame interval used when Config.TickRate is zero.
const DefaultTickRate = 250 * time.Millisecond

// Config configures the host loop.
type Config struct {
	Machine  *state.Machine
	Theme    styles.Theme
	TickRate time.Duration
}

type frameMsg struct{}

// Model drives one machine frame per tick and routes keys to it.
type Model struct {
	machine  *state.Machine
	theme    styles.Theme
	tickRate time.Duration
	width    int
	height   int
	frames   uint64
	logger   zerolog.Logger
}

// NewModel wraps cfg.Machine.
func NewModel(cfg Config) *Model {
	rate := cfg.TickRate
	if rate <= 0 {
		rate = DefaultTickRate
	}
	return &Model{
		machine:  cfg.Machine,
		theme:    cfg.Theme,
		tickRate: rate,
		logger:   logging.Component("tui"),
	}
}

// Run blocks until the machine exits, the user presses Ctrl+C or ctx is done.
func Run(ctx context.Context, cfg Config) error {
	model := NewModel(cfg)
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	_, err := program.Run()
	if err != nil {
		return err
	}
	model.logger.Debug().Uint64("frames", model.frames).Msg("tui stopped")
	return nil
}

func (m *Model) Init() tea.Cmd {
	return m.nextFrame()
}

func (m *Model) nextFrame() tea.Cmd {
	return tea.Tick(m.tickRate, func(time.Time) tea.Msg { return frameMsg{} })
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch typed := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = typed.Width
		m.height = typed.Height
		return m, nil
	case frameMsg:
		m.frames++
		m.machine.Tick()
		if m.machine.Exited() {
			return m, tea.Quit
		}
		return m, m.nextFrame()
	case tea.KeyMsg:
		return m, m.handleKey(typed)
	}
	return m, nil
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	if msg.Type == tea.KeyCtrlC {
		return tea.Quit
	}
	if msg.Paste {
		m.machine.Paste(string(msg.Runes))
		return nil
	}
	// several runes arrive in one message when input is read in a single chunk
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 && !msg.Alt {
		for _, r := range msg.Runes {
			m.machine.Handle(input.Char(r))
		}
		return nil
	}
	key, ok := input.FromTea(msg)
	if !ok {
		m.logger.Debug().Str("key", msg.String()).Msg("unmapped key")
		return nil
	}
	m.machine.Handle(key)
	return nil
}

func (m *Model) View() string {
	if m.machine.Exited() {
		return ""
	}
	return m.machine.Render(m.theme, m.width, m.height)
}

// Machine returns the hosted machine.
func (m *Model) Machine() *state.Machine { return m.machine }
