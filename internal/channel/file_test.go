package channel

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFavouritesMissingFileIsEmpty(t *testing.T) {
	channels, err := LoadFavourites(filepath.Join(t.TempDir(), "favourites.json"))
	require.NoError(t, err)
	assert.Empty(t, channels)
}

func TestLoadFromFileCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "favourites.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := LoadFavourites(path)
	require.Error(t, err)
}

func TestSaveToFileRoundTripResetsRuntimeFields(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "favourites.json")
	in := []Channel{
		{FriendlyName: "Foo", Handle: "foo", Status: StatusOnline, Game: "GameX"},
		{FriendlyName: "Bar", Handle: "bar"},
	}

	require.NoError(t, SaveToFile(path, in))

	_, err := os.Stat(path + ".tmp")
	require.True(t, os.IsNotExist(err))

	out, err := LoadFromFile(path)
	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, Channel{FriendlyName: "Foo", Handle: "foo"}, out[0])
	assert.Equal(t, "bar", out[1].Handle)
}

func TestLoadListsSortedAndFiltered(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "zeta.json"), []byte(`[{"friendly_name":"Z","handle":"z"}]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "alpha.json"), []byte(`[]`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "broken.json"), []byte(`nope`), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte(`ignored`), 0o644))
	require.NoError(t, os.Mkdir(filepath.Join(dir, "sub.json"), 0o755))

	lists, err := LoadLists(dir)
	require.NoError(t, err)
	require.Len(t, lists, 3)

	assert.Equal(t, "alpha", lists[0].Name)
	assert.Equal(t, "broken", lists[1].Name)
	assert.Empty(t, lists[1].Channels)
	assert.Equal(t, "zeta", lists[2].Name)
	assert.Equal(t, filepath.Join(dir, "zeta.json"), lists[2].Path)
	require.Len(t, lists[2].Channels, 1)
}

func TestLoadListsMissingDir(t *testing.T) {
	lists, err := LoadLists(filepath.Join(t.TempDir(), "lists"))
	require.NoError(t, err)
	assert.Empty(t, lists)
}
