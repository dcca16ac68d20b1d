package twitch

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/db"
	"github.com/tOgg1/streamwatch/internal/events"
)

// fakeHelix serves the token endpoint and /helix/streams. live maps handle to game.
type fakeHelix struct {
	*httptest.Server
	live        map[string]string
	failHandle  string
	tokenCalls  atomic.Int32
	streamsSeen sync.Map
}

func newFakeHelix(t *testing.T, live map[string]string) *fakeHelix {
	t.Helper()
	f := &fakeHelix{live: live}
	mux := http.NewServeMux()
	mux.HandleFunc("/oauth2/token", func(w http.ResponseWriter, r *http.Request) {
		f.tokenCalls.Add(1)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"access_token":"app-token","token_type":"bearer","expires_in":3600}`))
	})
	mux.HandleFunc("/helix/streams", func(w http.ResponseWriter, r *http.Request) {
		handle := r.URL.Query().Get("user_login")
		f.streamsSeen.Store(handle, r.Header.Get("Authorization")+"|"+r.Header.Get("Client-Id"))
		if handle == f.failHandle {
			http.Error(w, `{"error":"boom","access_token":"leaked"}`, http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		if game, ok := f.live[handle]; ok {
			fmt.Fprintf(w, `{"data":[{"user_login":%q,"game_name":%q,"type":"live"}]}`, handle, game)
			return
		}
		_, _ = w.Write([]byte(`{"data":[]}`))
	})
	f.Server = httptest.NewServer(mux)
	t.Cleanup(f.Close)
	return f
}

func (f *fakeHelix) config() CheckerConfig {
	return CheckerConfig{
		APIBase:             f.URL + "/helix",
		TokenURL:            f.URL + "/oauth2/token",
		MaxConcurrentChecks: 2,
		Timeout:             2 * time.Second,
	}
}

func testAccount() *Account {
	return &Account{
		Username:     "viewer",
		UserID:       "123",
		ClientID:     NewSecret("client-id"),
		ClientSecret: NewSecret("client-secret"),
	}
}

func TestSecretRedacts(t *testing.T) {
	s := NewSecret("hunter2")
	assert.Equal(t, "[REDACTED]", s.String())
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%v", s))
	assert.Equal(t, "[REDACTED]", fmt.Sprintf("%#v", s))
	assert.Equal(t, "hunter2", s.Expose())

	data, err := json.Marshal(s)
	require.NoError(t, err)
	assert.Equal(t, `"hunter2"`, string(data))
}

func TestAccountSaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "account.json")
	account := testAccount()
	account.RedirectURLPort = 3000

	require.NoError(t, account.Save(path))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	var raw map[string]any
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, &raw))
	assert.Equal(t, "client-secret", raw["client_secret"])
	assert.EqualValues(t, 3000, raw["redirect_url_port"])

	loaded, err := LoadAccount(path)
	require.NoError(t, err)
	assert.Equal(t, account, loaded)
}

func TestLoadAccountIncomplete(t *testing.T) {
	path := filepath.Join(t.TempDir(), "account.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"username":"viewer"}`), 0o600))

	_, err := LoadAccount(path)
	require.ErrorIs(t, err, ErrAccountIncomplete)
	assert.Contains(t, err.Error(), "client_id")
}

func TestNewAccountVerifiesAndSaves(t *testing.T) {
	helix := newFakeHelix(t, nil)
	path := filepath.Join(t.TempDir(), "account.json")

	account, err := NewAccount(context.Background(), Fields{
		Username:     "viewer",
		UserID:       "123",
		ClientID:     "client-id",
		ClientSecret: "client-secret",
		Port:         3000,
	}, AuthOptions{TokenURL: helix.URL + "/oauth2/token"}, path)
	require.NoError(t, err)
	assert.Equal(t, uint16(3000), account.RedirectURLPort)
	assert.Positive(t, helix.tokenCalls.Load())

	_, err = LoadAccount(path)
	require.NoError(t, err)
}

func TestNewAccountRejectsMissingFields(t *testing.T) {
	_, err := NewAccount(context.Background(), Fields{Username: "viewer"}, AuthOptions{}, filepath.Join(t.TempDir(), "a.json"))
	require.ErrorIs(t, err, ErrAccountIncomplete)
}

func TestCheckerReportsStatuses(t *testing.T) {
	helix := newFakeHelix(t, map[string]string{"foo": "GameX"})
	helix.failHandle = "broken"

	store := db.NewStatusStore(openDB(t))
	checker := NewChecker(helix.config(), store)
	out := events.NewQueue[channel.Result]()

	checker.Check(context.Background(), []channel.Channel{
		channel.New("Foo", "foo"),
		channel.New("Bar", "bar"),
		channel.New("Broken", "broken"),
	}, testAccount(), out)
	checker.Wait()

	results := map[string]channel.Result{}
	for _, r := range out.Drain() {
		results[r.Handle] = r
	}
	require.Len(t, results, 3)
	assert.Equal(t, channel.Result{Handle: "foo", Status: channel.StatusOnline, Game: "GameX"}, results["foo"])
	assert.Equal(t, channel.StatusOffline, results["bar"].Status)
	assert.Equal(t, channel.StatusUnknown, results["broken"].Status)

	seen, ok := helix.streamsSeen.Load("foo")
	require.True(t, ok)
	assert.Equal(t, "Bearer app-token|client-id", seen)

	latest, err := store.Latest(context.Background(), "foo")
	require.NoError(t, err)
	assert.Equal(t, channel.StatusOnline, latest.Status)
}

func TestCheckerUsesUserToken(t *testing.T) {
	helix := newFakeHelix(t, nil)
	checker := NewChecker(helix.config(), nil)
	account := testAccount()
	account.UserAccessToken = NewSecret("user-token")
	account.RefreshToken = NewSecret("refresh")

	out := events.NewQueue[channel.Result]()
	checker.Check(context.Background(), []channel.Channel{channel.New("", "foo")}, account, out)
	checker.Wait()

	seen, ok := helix.streamsSeen.Load("foo")
	require.True(t, ok)
	assert.Equal(t, "Bearer user-token|client-id", seen)
	assert.Zero(t, helix.tokenCalls.Load())
}

func TestCheckerClosedReceiverIsQuiet(t *testing.T) {
	helix := newFakeHelix(t, nil)
	checker := NewChecker(helix.config(), nil)
	out := events.NewQueue[channel.Result]()
	out.Close()

	checker.Check(context.Background(), []channel.Channel{channel.New("", "foo")}, testAccount(), out)
	checker.Wait()

	assert.Zero(t, out.Len())
}

func TestCheckerWithoutAccountDoesNothing(t *testing.T) {
	checker := NewChecker(CheckerConfig{}, nil)
	out := events.NewQueue[channel.Result]()
	checker.Check(context.Background(), []channel.Channel{channel.New("", "foo")}, nil, out)
	checker.Wait()
	assert.Zero(t, out.Len())
}

func openDB(t *testing.T) *db.DB {
	t.Helper()
	database, err := db.OpenInMemory(context.Background())
	require.NoError(t, err)
	t.Cleanup(func() { _ = database.Close() })
	return database
}
