package state

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/events"
	"github.com/tOgg1/streamwatch/internal/input"
	"github.com/tOgg1/streamwatch/internal/twitch"
)

type fakeChecker struct {
	mu      sync.Mutex
	calls   [][]channel.Channel
	results map[string]channel.Result
	extra   []channel.Result
}

func (f *fakeChecker) Check(_ context.Context, channels []channel.Channel, _ *twitch.Account, out events.Sender[channel.Result]) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, append([]channel.Channel(nil), channels...))
	for _, c := range channels {
		if r, ok := f.results[c.Handle]; ok {
			out.Send(r)
		}
	}
	for _, r := range f.extra {
		out.Send(r)
	}
}

func (f *fakeChecker) Calls() [][]channel.Channel {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([][]channel.Channel(nil), f.calls...)
}

type fakeLauncher struct {
	err      error
	launched []string
	chats    []string
}

func (f *fakeLauncher) Launch(c channel.Channel) error {
	f.launched = append(f.launched, c.Handle)
	return f.err
}

func (f *fakeLauncher) LaunchChat(c channel.Channel) error {
	f.chats = append(f.chats, c.Handle)
	return f.err
}

type fakeClipboard struct{ text string }

func (f fakeClipboard) ReadAll() (string, error) { return f.text, nil }

type fakeNotifier struct{ online chan channel.Channel }

func (f *fakeNotifier) ChannelOnline(c channel.Channel) error {
	f.online <- c
	return nil
}

type testEnv struct {
	*Env
	checker  *fakeChecker
	launcher *fakeLauncher
	notifier *fakeNotifier
}

func newTestEnv(t *testing.T) testEnv {
	t.Helper()
	dir := t.TempDir()
	te := testEnv{
		checker:  &fakeChecker{results: map[string]channel.Result{}},
		launcher: &fakeLauncher{},
		notifier: &fakeNotifier{online: make(chan channel.Channel, 8)},
	}
	te.Env = &Env{
		Ctx:            context.Background(),
		Checker:        te.checker,
		Launcher:       te.launcher,
		Clipboard:      fakeClipboard{text: "clip"},
		Notifier:       te.notifier,
		FavouritesPath: filepath.Join(dir, "favourites.json"),
		ListsDir:       filepath.Join(dir, "lists"),
		StartupTicks:   2,
		ErrorTicks:     1,
		Logger:         zerolog.Nop(),
	}
	return te
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func testAccount() *twitch.Account {
	return &twitch.Account{Username: "tester", ClientID: twitch.NewSecret("id")}
}

func tickN(m *Machine, n int) {
	for i := 0; i < n; i++ {
		m.Tick()
	}
}

// recorder collects events sent by a state under test.
type recorder struct{ events []Event }

func (r *recorder) Send(ev Event) bool {
	r.events = append(r.events, ev)
	return true
}

func tickUntil(t *testing.T, m *Machine, cond func() bool) {
	t.Helper()
	for i := 0; i < 500; i++ {
		if cond() {
			return
		}
		m.Tick()
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not reached, state is %s", m.State().Kind())
}

func isKind(m *Machine, k Kind) func() bool {
	return func() bool { return m.State().Kind() == k }
}

var (
	keyEnter = input.Special(input.CodeEnter)
	keyEsc   = input.Special(input.CodeEsc)
	keyDown  = input.Special(input.CodeDown)
	keyRight = input.Special(input.CodeRight)
	keyTab   = input.Special(input.CodeTab)
)
