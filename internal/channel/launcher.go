package channel

import (
	"fmt"

	"github.com/tOgg1/streamwatch/internal/config"
	"github.com/tOgg1/streamwatch/internal/procutil"
)

// Launcher opens streams and chats in external applications.
type Launcher struct {
	cfg   config.LauncherConfig
	start func(name string, args ...string) (int, error)
	open  func(url string) error
}

// NewLauncher creates a launcher for the configured player and chat client.
func NewLauncher(cfg config.LauncherConfig) *Launcher {
	return &Launcher{
		cfg:   cfg,
		start: procutil.StartDetached,
		open:  procutil.OpenURL,
	}
}

// StreamURL returns the URL handed to the player.
func (l *Launcher) StreamURL(c Channel) string {
	return fmt.Sprintf(l.cfg.StreamURLTemplate, c.Handle)
}

// Launch starts the player on the channel's stream.
func (l *Launcher) Launch(c Channel) error {
	if err := c.Validate(); err != nil {
		return err
	}
	args := append([]string{l.StreamURL(c)}, l.cfg.PlayerArgs...)
	if _, err := l.start(l.cfg.Player, args...); err != nil {
		return fmt.Errorf("launch stream %s: %w", c.Handle, err)
	}
	return nil
}

// LaunchChat opens the channel's chat, in the configured client when set,
// otherwise as a popout page in the browser.
func (l *Launcher) LaunchChat(c Channel) error {
	if err := c.Validate(); err != nil {
		return err
	}
	if l.cfg.Chat == "" {
		url := fmt.Sprintf(l.cfg.ChatURLTemplate, c.Handle)
		if err := l.open(url); err != nil {
			return fmt.Errorf("open chat %s: %w", c.Handle, err)
		}
		return nil
	}
	args := append(append([]string{}, l.cfg.ChatArgs...), c.Handle)
	if _, err := l.start(l.cfg.Chat, args...); err != nil {
		return fmt.Errorf("launch chat %s: %w", c.Handle, err)
	}
	return nil
}
