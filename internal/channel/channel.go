// Package channel defines streaming channels, their live status, and the
// JSON files that persist favourites and lists.
package channel

import (
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"strings"
)

// ErrEmptyHandle is returned for a channel without a handle.
var ErrEmptyHandle = errors.New("channel handle is empty")

// Status is the live state of a channel as last reported by a status check.
type Status int

const (
	// StatusAwaiting means no check result has arrived yet.
	StatusAwaiting Status = iota
	StatusOnline
	StatusOffline
	StatusUnknown
)

var statusNames = map[Status]string{
	StatusAwaiting: "Awaiting",
	StatusOnline:   "Online",
	StatusOffline:  "Offline",
	StatusUnknown:  "Unknown",
}

// String returns the status name as stored in JSON.
func (s Status) String() string {
	if name, ok := statusNames[s]; ok {
		return name
	}
	return fmt.Sprintf("Status(%d)", int(s))
}

// Message returns the short text shown next to a channel.
func (s Status) Message() string {
	switch s {
	case StatusAwaiting:
		return "...  "
	case StatusOnline:
		return "online"
	case StatusOffline:
		return "offline"
	default:
		return "unknown"
	}
}

// ParseStatus parses a status name, case-insensitively.
func ParseStatus(name string) (Status, error) {
	for s, n := range statusNames {
		if strings.EqualFold(n, name) {
			return s, nil
		}
	}
	return StatusUnknown, fmt.Errorf("unknown status %q", name)
}

func (s Status) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *Status) UnmarshalJSON(data []byte) error {
	var name string
	if err := json.Unmarshal(data, &name); err != nil {
		return fmt.Errorf("status: %w", err)
	}
	parsed, err := ParseStatus(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

// Channel is one streamer as listed in favourites or a list file.
type Channel struct {
	FriendlyName string `json:"friendly_name"`
	Handle       string `json:"handle"`
	Status       Status `json:"status"`
	Game         string `json:"game,omitempty"`
}

// New returns an awaiting channel. An empty friendly name falls back to the handle.
func New(friendlyName, handle string) Channel {
	handle = strings.TrimSpace(handle)
	friendlyName = strings.TrimSpace(friendlyName)
	if friendlyName == "" {
		friendlyName = handle
	}
	return Channel{FriendlyName: friendlyName, Handle: handle}
}

// handlePattern is the Twitch login character set. It also keeps handles
// from reading as flags or URL syntax when handed to the player and chat.
var handlePattern = regexp.MustCompile(`^[A-Za-z0-9_]+$`)

// Validate checks that the channel can be looked up and launched.
func (c Channel) Validate() error {
	if strings.TrimSpace(c.Handle) == "" {
		return ErrEmptyHandle
	}
	if !handlePattern.MatchString(c.Handle) {
		return fmt.Errorf("invalid channel handle %q: only letters, digits and _ allowed", c.Handle)
	}
	return nil
}

// DisplayName returns the friendly name, or the handle when none is set.
func (c Channel) DisplayName() string {
	if c.FriendlyName != "" {
		return c.FriendlyName
	}
	return c.Handle
}

// Result is one status check outcome for a handle.
type Result struct {
	Handle string
	Status Status
	Game   string
}

// Awaiting returns the channels still waiting for a status check.
func Awaiting(channels []Channel) []Channel {
	var out []Channel
	for _, c := range channels {
		if c.Status == StatusAwaiting {
			out = append(out, c)
		}
	}
	return out
}

// IndexOf returns the position of handle in channels, or -1.
func IndexOf(channels []Channel, handle string) int {
	for i, c := range channels {
		if c.Handle == handle {
			return i
		}
	}
	return -1
}
