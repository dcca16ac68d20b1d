package state

import (
	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/events"
	"github.com/tOgg1/streamwatch/internal/twitch"
)

// statusBoard is a screen's private channel of status check results.
// Closing it makes in-flight checkers drop their results.
type statusBoard struct {
	results *events.Queue[channel.Result]
}

func newStatusBoard() statusBoard {
	return statusBoard{results: events.NewQueue[channel.Result]()}
}

func (b statusBoard) sender() events.Sender[channel.Result] {
	return b.results
}

// drain returns every result that has arrived, without blocking.
func (b statusBoard) drain() []channel.Result {
	return b.results.Drain()
}

func (b statusBoard) close() {
	b.results.Close()
}

// check starts status lookups for channels when an account is available.
func (b statusBoard) check(env *Env, channels []channel.Channel, account *twitch.Account) {
	if len(channels) == 0 {
		return
	}
	if account == nil || env.Checker == nil {
		env.logger().Debug().Int("channels", len(channels)).Msg("no account, skipping status checks")
		return
	}
	env.Checker.Check(env.ctx(), channels, account, b.sender())
}

// applyResult updates every channel matching r.Handle. It returns the
// channels that just went online, and false when no channel matched.
func applyResult(channels []channel.Channel, r channel.Result) ([]channel.Channel, bool) {
	matched := false
	var wentOnline []channel.Channel
	for i := range channels {
		if channels[i].Handle != r.Handle {
			continue
		}
		matched = true
		was := channels[i].Status
		channels[i].Status = r.Status
		channels[i].Game = r.Game
		if r.Status == channel.StatusOnline && was != channel.StatusOnline {
			wentOnline = append(wentOnline, channels[i])
		}
	}
	return wentOnline, matched
}

// announce notifies about channels that went live, off the frame loop.
func announce(env *Env, channels []channel.Channel) {
	if env.Notifier == nil || len(channels) == 0 {
		return
	}
	notifier := env.Notifier
	log := *env.logger()
	go func() {
		for _, c := range channels {
			if err := notifier.ChannelOnline(c); err != nil {
				log.Warn().Err(err).Str("channel", c.Handle).Msg("online notification failed")
			}
		}
	}()
}

func copyChannels(in []channel.Channel) []channel.Channel {
	if in == nil {
		return []channel.Channel{}
	}
	return append([]channel.Channel(nil), in...)
}
