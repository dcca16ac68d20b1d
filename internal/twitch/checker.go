package twitch

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/db"
	"github.com/tOgg1/streamwatch/internal/events"
	"github.com/tOgg1/streamwatch/internal/logging"
)

// CheckerConfig contains configuration for the stream status checker.
type CheckerConfig struct {
	// APIBase is the Helix root, e.g. https://api.twitch.tv/helix.
	APIBase string

	// TokenURL is the OAuth token endpoint.
	TokenURL string

	// MaxConcurrentChecks limits in-flight Helix requests.
	// Default: 4
	MaxConcurrentChecks int

	// Timeout bounds a single status request.
	// Default: 10s
	Timeout time.Duration
}

// DefaultCheckerConfig returns sensible defaults.
func DefaultCheckerConfig() CheckerConfig {
	return CheckerConfig{
		APIBase:             "https://api.twitch.tv/helix",
		TokenURL:            "https://id.twitch.tv/oauth2/token",
		MaxConcurrentChecks: 4,
		Timeout:             10 * time.Second,
	}
}

// Recorder persists check results.
type Recorder interface {
	Record(ctx context.Context, result channel.Result) (*db.Observation, error)
}

// Checker resolves the live status of channels through the Helix streams endpoint.
type Checker struct {
	config   CheckerConfig
	recorder Recorder
	logger   zerolog.Logger

	sem chan struct{}
	wg  sync.WaitGroup
}

// NewChecker creates a Checker. recorder may be nil.
func NewChecker(config CheckerConfig, recorder Recorder) *Checker {
	defaults := DefaultCheckerConfig()
	if config.APIBase == "" {
		config.APIBase = defaults.APIBase
	}
	if config.TokenURL == "" {
		config.TokenURL = defaults.TokenURL
	}
	if config.MaxConcurrentChecks <= 0 {
		config.MaxConcurrentChecks = defaults.MaxConcurrentChecks
	}
	if config.Timeout <= 0 {
		config.Timeout = defaults.Timeout
	}

	return &Checker{
		config:   config,
		recorder: recorder,
		logger:   logging.Component("twitch-checker"),
		sem:      make(chan struct{}, config.MaxConcurrentChecks),
	}
}

// Check starts one background lookup per channel and returns immediately.
// Each result is recorded and then sent to out; a closed out ends the lookup quietly.
func (c *Checker) Check(ctx context.Context, channels []channel.Channel, account *Account, out events.Sender[channel.Result]) {
	if len(channels) == 0 || account == nil {
		return
	}

	client := account.HTTPClient(ctx, AuthOptions{TokenURL: c.config.TokenURL})

	for _, ch := range channels {
		handle := ch.Handle
		c.wg.Add(1)
		go func() {
			defer c.wg.Done()

			select {
			case c.sem <- struct{}{}:
			case <-ctx.Done():
				return
			}
			defer func() { <-c.sem }()

			result := c.lookup(ctx, client, handle)
			if c.recorder != nil {
				if _, err := c.recorder.Record(ctx, result); err != nil {
					c.logger.Warn().Err(err).Str("channel", handle).Msg("failed to record status")
				}
			}
			if !out.Send(result) {
				c.logger.Debug().Str("channel", handle).Msg("status receiver closed, dropping result")
			}
		}()
	}
}

// Wait blocks until every started lookup has finished.
func (c *Checker) Wait() {
	c.wg.Wait()
}

func (c *Checker) lookup(ctx context.Context, client *http.Client, handle string) channel.Result {
	result := channel.Result{Handle: handle, Status: channel.StatusUnknown}

	stream, err := c.fetchStream(ctx, client, handle)
	if err != nil {
		if !errors.Is(err, context.Canceled) {
			c.logger.Warn().Err(err).Str("channel", handle).Msg("status check failed")
		}
		return result
	}

	if stream == nil {
		result.Status = channel.StatusOffline
	} else {
		result.Status = channel.StatusOnline
		result.Game = stream.GameName
	}

	c.logger.Debug().
		Str("channel", handle).
		Str("status", result.Status.String()).
		Str("game", result.Game).
		Msg("checked channel")
	return result
}

type helixStream struct {
	UserLogin string `json:"user_login"`
	GameName  string `json:"game_name"`
	Type      string `json:"type"`
	Title     string `json:"title"`
}

type helixStreamsResponse struct {
	Data []helixStream `json:"data"`
}

// fetchStream returns the live stream for handle, or nil when offline.
func (c *Checker) fetchStream(ctx context.Context, client *http.Client, handle string) (*helixStream, error) {
	ctx, cancel := context.WithTimeout(ctx, c.config.Timeout)
	defer cancel()

	endpoint := strings.TrimRight(c.config.APIBase, "/") + "/streams?" + url.Values{"user_login": {handle}}.Encode()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request streams: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("streams returned %d: %s", resp.StatusCode, logging.Redact(strings.TrimSpace(string(body))))
	}

	var payload helixStreamsResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, fmt.Errorf("decode streams: %w", err)
	}

	for i := range payload.Data {
		s := payload.Data[i]
		if s.Type == "" || s.Type == "live" {
			return &s, nil
		}
	}
	return nil, nil
}
