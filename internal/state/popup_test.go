package state

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/styles"
)

func TestChoicePopupCompletesOnce(t *testing.T) {
	te := newTestEnv(t)
	var got []Output
	p := NewChoicePopup(te.Env, "Pick", "one", []string{"a", "b", "c"}, func(tx Sender, out Output) {
		got = append(got, out)
	})
	tx := &recorder{}

	p.Process(CycleHighlight{Up}, tx)
	require.Equal(t, 2, p.Selected())
	p.Process(HomeEndHighlight{First}, tx)
	p.Process(CycleHighlight{Down}, tx)
	require.Equal(t, 1, p.Selected())

	p.Process(Selected{}, tx)
	p.Process(Selected{}, tx)

	require.Equal(t, []Event{PopupEnded{}}, tx.events)
	require.Equal(t, []Output{IndexOutput(1)}, got)
	require.True(t, p.Done())
}

func TestInputPopupTyping(t *testing.T) {
	te := newTestEnv(t)
	var got Output
	p := NewInputPopup(te.Env, "Name", "Your Name here", func(_ Sender, out Output) { got = out })
	tx := &recorder{}

	_, ok := p.Handle(input.Char('x'))
	require.False(t, ok, "printable keys are ignored until typing")
	ev, ok := p.Handle(input.Char('q'))
	require.True(t, ok)
	require.Equal(t, Exited{}, ev)

	ev, _ = p.Handle(keyEnter)
	p.Process(ev, tx)
	require.True(t, p.Typing())

	for _, r := range "abq" {
		ev, ok := p.Handle(input.Char(r))
		require.True(t, ok)
		require.Equal(t, Typed{Char: r}, ev)
		p.Process(ev, tx)
	}
	ev, _ = p.Handle(input.Special(input.CodeBackspace))
	p.Process(ev, tx)
	require.Equal(t, "ab", p.Input())

	ev, _ = p.Handle(input.Ctrl('v'))
	p.Process(ev, tx)
	require.Equal(t, "abclip", p.Input())

	ev, _ = p.Handle(keyEnter)
	require.Equal(t, Submit{}, ev)
	p.Process(ev, tx)
	require.Equal(t, InputOutput("abclip"), got)
	require.Equal(t, []Event{PopupEnded{}}, tx.events)
}

func TestInputPopupIgnoresEmptySubmit(t *testing.T) {
	te := newTestEnv(t)
	p := NewInputPopup(te.Env, "Name", "", nil)
	tx := &recorder{}

	p.Process(Selected{}, tx)
	p.Process(Submit{}, tx)
	require.Empty(t, tx.events)
	require.False(t, p.Done())

	p.Process(StopTyping{}, tx)
	require.False(t, p.Typing())
}

func TestTimedInfoExpiresOnce(t *testing.T) {
	te := newTestEnv(t)
	fired := 0
	p := NewTimedInfoPopup(te.Env, "Error", "boom", 2, func(tx Sender, out Output) {
		require.Nil(t, out)
		fired++
		tx.Send(Exited{})
	})
	tx := &recorder{}

	p.Tick(nil, 1, tx)
	p.Tick(nil, 2, tx)
	require.Empty(t, tx.events)

	p.Tick(nil, 3, tx)
	p.Tick(nil, 4, tx)
	require.Equal(t, []Event{PopupEnded{}, Exited{}}, tx.events)
	require.Equal(t, 1, fired)
}

func TestPopupSnapshotKeepsDone(t *testing.T) {
	te := newTestEnv(t)
	p := NewChoicePopup(te.Env, "t", "m", []string{"a"}, nil)
	tx := &recorder{}
	p.Process(Selected{}, tx)

	thawed := p.Freeze().Thaw(te.Env, tx).(*Popup)
	thawed.Process(Selected{}, tx)
	require.Len(t, tx.events, 1)
}

func TestPopupTransitions(t *testing.T) {
	te := newTestEnv(t)
	p := NewTimedInfoPopup(te.Env, "t", "m", 1, nil)
	tx := &recorder{}

	require.Equal(t, TransitionPop, p.Transition(PopupEnded{}, nil, tx).Kind)
	tr := p.Transition(Exited{}, nil, tx)
	require.Equal(t, TransitionTo, tr.Kind)
	require.Equal(t, KindExit, tr.State.Kind())
	require.Nil(t, p.Transition(Selected{}, nil, tx))
}

func TestChatPopupAnswer(t *testing.T) {
	ev := chatPopup(chatChoiceSearch)
	require.Equal(t, chatPopupTitle, ev.Title)
	require.Equal(t, []string{"No", "Yes"}, ev.Options)

	tx := &recorder{}
	ev.Callback(tx, IndexOutput(1))
	ev.Callback(tx, InputOutput("ignored"))
	require.Equal(t, []Event{ChatChoiceSearch{Index: 1}}, tx.events)
}

func TestPopupLegendAndRender(t *testing.T) {
	te := newTestEnv(t)
	p := NewChoicePopup(te.Env, "Launch Chat", "Open?", []string{"No", "Yes"}, nil)

	labels := make([]string, 0)
	for _, e := range p.Legend() {
		labels = append(labels, e.Label)
	}
	require.Equal(t, []string{"Quit", "Move", "First/Last", "Select"}, labels)
	require.Contains(t, p.Render(styles.DefaultTheme, 100, 20, 0), "Launch Chat")
}
