package db

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tOgg1/streamwatch/internal/channel"
)

func TestStatusStoreRecordAndHistory(t *testing.T) {
	ctx := context.Background()
	store := NewStatusStore(openTestDB(t))

	base := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	tick := 0
	store.now = func() time.Time {
		tick++
		return base.Add(time.Duration(tick) * time.Minute)
	}

	first, err := store.Record(ctx, channel.Result{Handle: "foo", Status: channel.StatusOffline})
	require.NoError(t, err)
	require.NotEmpty(t, first.ID)

	_, err = store.Record(ctx, channel.Result{Handle: "foo", Status: channel.StatusOnline, Game: "GameX"})
	require.NoError(t, err)
	_, err = store.Record(ctx, channel.Result{Handle: "bar", Status: channel.StatusUnknown})
	require.NoError(t, err)

	history, err := store.History(ctx, "foo", 0)
	require.NoError(t, err)
	require.Len(t, history, 2)
	require.Equal(t, channel.StatusOnline, history[0].Status)
	require.Equal(t, "GameX", history[0].Game)
	require.Equal(t, channel.StatusOffline, history[1].Status)
	require.Empty(t, history[1].Game)
	require.True(t, history[0].ObservedAt.After(history[1].ObservedAt))

	limited, err := store.History(ctx, "foo", 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)

	latest, err := store.Latest(ctx, "bar")
	require.NoError(t, err)
	require.Equal(t, channel.StatusUnknown, latest.Status)
}

func TestStatusStoreLatestNotFound(t *testing.T) {
	store := NewStatusStore(openTestDB(t))
	_, err := store.Latest(context.Background(), "nobody")
	require.ErrorIs(t, err, ErrNotFound)
}

func TestStatusStoreRejectsEmptyHandle(t *testing.T) {
	store := NewStatusStore(openTestDB(t))
	_, err := store.Record(context.Background(), channel.Result{Handle: "  "})
	require.ErrorIs(t, err, channel.ErrEmptyHandle)
}

func TestOpenFileDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "data", "history.db")

	db, err := Open(ctx, Config{Path: path})
	require.NoError(t, err)
	require.Equal(t, path, db.Path())

	_, err = NewStatusStore(db).Record(ctx, channel.Result{Handle: "foo", Status: channel.StatusOnline})
	require.NoError(t, err)
	require.NoError(t, db.Close())

	reopened, err := Open(ctx, Config{Path: path})
	require.NoError(t, err)
	defer reopened.Close()

	latest, err := NewStatusStore(reopened).Latest(ctx, "foo")
	require.NoError(t, err)
	require.Equal(t, channel.StatusOnline, latest.Status)
}

func TestOpenRequiresPath(t *testing.T) {
	_, err := Open(context.Background(), Config{})
	require.Error(t, err)
}
