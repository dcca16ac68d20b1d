// Package notify sends desktop notifications when a favourite goes live.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
	"github.com/rs/zerolog"

	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/logging"
)

// AppName is the notification title prefix.
const AppName = "streamwatch"

// Desktop delivers notifications through the platform notification service.
type Desktop struct {
	notify func(title, message string, icon any) error
	logger zerolog.Logger
}

// NewDesktop creates a Desktop notifier backed by beeep.
func NewDesktop() *Desktop {
	return &Desktop{
		notify: beeep.Notify,
		logger: logging.Component("notify"),
	}
}

// Send shows a notification. An empty icon lets beeep pick the platform default.
func (d *Desktop) Send(title, message string) error {
	if err := d.notify(title, message, ""); err != nil {
		d.logger.Warn().Err(err).Str("title", title).Msg("failed to send notification")
		return fmt.Errorf("send notification: %w", err)
	}
	return nil
}

// ChannelOnline announces that c has started streaming.
func (d *Desktop) ChannelOnline(c channel.Channel) error {
	message := c.DisplayName() + " is live"
	if c.Game != "" {
		message += " playing " + c.Game
	}
	return d.Send(AppName, message)
}
