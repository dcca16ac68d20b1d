package channel

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/tOgg1/streamwatch/internal/logging"
)

// ListFileExtension is the suffix of channel list files.
const ListFileExtension = ".json"

// List is a named channel list loaded from the lists directory.
type List struct {
	Name     string
	Path     string
	Channels []Channel
}

// LoadFromFile reads a JSON array of channels. Missing status fields decode as Awaiting.
func LoadFromFile(path string) ([]Channel, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read channels: %w", err)
	}
	return Decode(data)
}

// Decode parses a JSON array of channels.
func Decode(data []byte) ([]Channel, error) {
	if len(strings.TrimSpace(string(data))) == 0 {
		return []Channel{}, nil
	}
	var channels []Channel
	if err := json.Unmarshal(data, &channels); err != nil {
		return nil, fmt.Errorf("decode channels: %w", err)
	}
	if channels == nil {
		channels = []Channel{}
	}
	return channels, nil
}

// LoadFavourites reads the favourites file. A missing file is an empty list.
func LoadFavourites(path string) ([]Channel, error) {
	channels, err := LoadFromFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return []Channel{}, nil
	}
	return channels, err
}

// SaveToFile writes channels as indented JSON, replacing the file atomically.
// Statuses and games are runtime data and are written back as their defaults.
func SaveToFile(path string, channels []Channel) error {
	persisted := make([]Channel, len(channels))
	for i, c := range channels {
		persisted[i] = Channel{FriendlyName: c.FriendlyName, Handle: c.Handle}
	}

	data, err := json.MarshalIndent(persisted, "", "  ")
	if err != nil {
		return fmt.Errorf("encode channels: %w", err)
	}
	data = append(data, '\n')

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create channels dir: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("write channels: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("replace channels: %w", err)
	}
	return nil
}

// LoadLists reads every *.json list in dir, sorted by file name. A missing
// directory yields no lists. A list file that fails to parse is kept with no channels.
func LoadLists(dir string) ([]List, error) {
	entries, err := os.ReadDir(dir)
	if errors.Is(err, os.ErrNotExist) {
		return []List{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read lists dir: %w", err)
	}

	log := logging.Component("channel")
	lists := make([]List, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ListFileExtension) {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		channels, err := LoadFromFile(path)
		if err != nil {
			log.Warn().Err(err).Str("path", path).Msg("skipping unreadable list")
			channels = []Channel{}
		}
		lists = append(lists, List{
			Name:     strings.TrimSuffix(entry.Name(), ListFileExtension),
			Path:     path,
			Channels: channels,
		})
	}
	return lists, nil
}
