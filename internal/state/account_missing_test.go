package state

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/streamwatch/internal/twitch"
)

type fakeBuilder struct {
	mu     sync.Mutex
	calls  []twitch.Fields
	result *twitch.Account
	err    error
}

func (f *fakeBuilder) build(_ context.Context, fields twitch.Fields) (*twitch.Account, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, fields)
	return f.result, f.err
}

func (f *fakeBuilder) Calls() []twitch.Fields {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]twitch.Fields(nil), f.calls...)
}

// answer waits for the next prompt and submits value through the keyboard.
func answer(t *testing.T, m *Machine, value string) {
	t.Helper()
	tickUntil(t, m, isKind(m, KindPopup))
	m.Handle(keyEnter)
	m.Paste(value)
	m.Handle(keyEnter)
	tickUntil(t, m, func() bool {
		return m.State().Kind() == KindAccountMissing && m.Pending() == 0
	})
}

func promptOf(m *Machine) AccountField {
	return m.State().(*AccountMissing).Prompt()
}

func TestAccountFieldNames(t *testing.T) {
	require.Equal(t, "Redirect URL Port", FieldRedirectPort.Title())
	require.Equal(t, "client_secret", FieldClientSecret.String())
	require.Equal(t, "user_id", FieldUserID.String())
}

func TestAccountPromptMessage(t *testing.T) {
	ev := fieldPrompt(FieldClientID)
	require.Equal(t, "Client ID", ev.Title)
	require.Equal(t, "Your Client ID here", ev.Message)

	tx := &recorder{}
	ev.Callback(tx, InputOutput("abc"))
	require.Equal(t, []Event{AccountFieldSet{Field: FieldClientID, Value: "abc"}}, tx.events)
}

func TestAccountSetupChain(t *testing.T) {
	te := newTestEnv(t)
	writeFile(t, te.FavouritesPath, fooFavourites)
	built := testAccount()
	builder := &fakeBuilder{result: built}
	te.BuildAccount = builder.build

	m := NewMachine(te.Env, nil)
	require.Equal(t, FieldUsername, promptOf(m))

	answer(t, m, "alice")
	require.Equal(t, FieldUserID, promptOf(m))
	answer(t, m, "42")
	require.Equal(t, FieldClientID, promptOf(m))
	answer(t, m, "client")
	require.Equal(t, FieldClientSecret, promptOf(m))
	answer(t, m, "secret")
	require.Equal(t, FieldRedirectPort, promptOf(m))
	answer(t, m, "8080")

	tickUntil(t, m, isKind(m, KindHome))
	require.Same(t, built, m.Account())
	require.Len(t, m.State().(*Home).Favourites(), 1)

	calls := builder.Calls()
	require.Len(t, calls, 1, "account is built once")
	require.Equal(t, twitch.Fields{
		Username:     "alice",
		UserID:       "42",
		ClientID:     "client",
		ClientSecret: "secret",
		Port:         8080,
	}, calls[0])
}

func TestAccountSetupBadPortAsksAgain(t *testing.T) {
	te := newTestEnv(t)
	m := NewMachineWith(te.Env, nil, func(Sender) AppState {
		return newAccountMissing(te.Env, FieldRedirectPort, twitch.Fields{Username: "alice"})
	})

	answer(t, m, "not-a-port")
	am := m.State().(*AccountMissing)
	require.Equal(t, FieldRedirectPort, am.Prompt())
	require.Equal(t, "alice", am.Fields().Username)
	require.Zero(t, am.Fields().Port)

	answer(t, m, "70000")
	require.Equal(t, FieldRedirectPort, promptOf(m))
}

func TestAccountSetupFailureExits(t *testing.T) {
	te := newTestEnv(t)
	builder := &fakeBuilder{err: errors.New("invalid client")}
	te.BuildAccount = builder.build

	m := NewMachineWith(te.Env, nil, func(Sender) AppState {
		return newAccountMissing(te.Env, fieldCount, twitch.Fields{Username: "alice"})
	})

	tickUntil(t, m, isKind(m, KindPopup))
	p := m.State().(*Popup)
	require.Equal(t, PopupTimedInfo, p.Variant())
	require.Equal(t, accountErrorTitle, p.Title())

	tickUntil(t, m, m.Exited)
	require.Len(t, builder.Calls(), 1)
	require.Nil(t, m.Account())
}

func TestAccountSetupWithoutBuilderExits(t *testing.T) {
	te := newTestEnv(t)
	m := NewMachineWith(te.Env, nil, func(Sender) AppState {
		return newAccountMissing(te.Env, fieldCount, twitch.Fields{})
	})
	tickUntil(t, m, m.Exited)
}

func TestSetFieldTrimsInput(t *testing.T) {
	fields, err := setField(twitch.Fields{}, FieldUsername, "  bob ")
	require.NoError(t, err)
	require.Equal(t, "bob", fields.Username)

	fields, err = setField(fields, FieldRedirectPort, " 3000 ")
	require.NoError(t, err)
	require.Equal(t, uint16(3000), fields.Port)

	_, err = setField(fields, FieldRedirectPort, "-1")
	require.Error(t, err)
}
