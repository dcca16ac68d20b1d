// Package config handles streamwatch configuration loading and validation.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// Config is the root configuration structure for streamwatch.
type Config struct {
	// Global settings
	Global GlobalConfig `yaml:"global" mapstructure:"global"`

	// Files holds the locations of the persisted channel and account files.
	Files FilesConfig `yaml:"files" mapstructure:"files"`

	// Logging settings
	Logging LoggingConfig `yaml:"logging" mapstructure:"logging"`

	// TUI settings
	TUI TUIConfig `yaml:"tui" mapstructure:"tui"`

	// Launcher settings for the external stream and chat viewers.
	Launcher LauncherConfig `yaml:"launcher" mapstructure:"launcher"`

	// Twitch API settings
	Twitch TwitchConfig `yaml:"twitch" mapstructure:"twitch"`

	// Database settings for the status history store.
	Database DatabaseConfig `yaml:"database" mapstructure:"database"`
}

// GlobalConfig contains global settings.
type GlobalConfig struct {
	// DataDir is where streamwatch stores its data (default: ~/.local/share/streamwatch).
	DataDir string `yaml:"data_dir" mapstructure:"data_dir"`
}

// FilesConfig contains persisted file locations. Relative paths resolve
// against the data directory.
type FilesConfig struct {
	Favourites string `yaml:"favourites" mapstructure:"favourites"`
	ListsDir   string `yaml:"lists_dir" mapstructure:"lists_dir"`
	Account    string `yaml:"account" mapstructure:"account"`
}

// LoggingConfig contains logging settings.
type LoggingConfig struct {
	// Level is the minimum log level (debug, info, warn, error).
	Level string `yaml:"level" mapstructure:"level"`

	// Format is the output format (json, console).
	Format string `yaml:"format" mapstructure:"format"`

	// File is the log file path. Empty means <data_dir>/streamwatch.log.
	File string `yaml:"file" mapstructure:"file"`

	// EnableCaller adds caller information to logs.
	EnableCaller bool `yaml:"enable_caller" mapstructure:"enable_caller"`
}

// TUIConfig contains TUI settings.
type TUIConfig struct {
	// TickRate is the frame interval driving the state machine.
	TickRate time.Duration `yaml:"tick_rate" mapstructure:"tick_rate"`

	// StartupTicks is how many frames the startup screen stays up.
	StartupTicks uint64 `yaml:"startup_ticks" mapstructure:"startup_ticks"`

	// Theme is the color theme (default, high-contrast).
	Theme string `yaml:"theme" mapstructure:"theme"`

	// NotifyOnline sends a desktop notification when a favourite goes live.
	NotifyOnline bool `yaml:"notify_online" mapstructure:"notify_online"`
}

// LauncherConfig describes how streams and chats are opened.
type LauncherConfig struct {
	Player            string   `yaml:"player" mapstructure:"player"`
	PlayerArgs        []string `yaml:"player_args" mapstructure:"player_args"`
	Chat              string   `yaml:"chat" mapstructure:"chat"`
	ChatArgs          []string `yaml:"chat_args" mapstructure:"chat_args"`
	StreamURLTemplate string   `yaml:"stream_url_template" mapstructure:"stream_url_template"`
	ChatURLTemplate   string   `yaml:"chat_url_template" mapstructure:"chat_url_template"`
}

// TwitchConfig contains Helix API settings.
type TwitchConfig struct {
	APIBase             string        `yaml:"api_base" mapstructure:"api_base"`
	TokenURL            string        `yaml:"token_url" mapstructure:"token_url"`
	MaxConcurrentChecks int           `yaml:"max_concurrent_checks" mapstructure:"max_concurrent_checks"`
	CheckTimeout        time.Duration `yaml:"check_timeout" mapstructure:"check_timeout"`
}

// DatabaseConfig contains database settings.
type DatabaseConfig struct {
	// Path is the SQLite database file path.
	Path string `yaml:"path" mapstructure:"path"`

	// BusyTimeoutMs is how long to wait for a locked database (milliseconds).
	BusyTimeoutMs int `yaml:"busy_timeout_ms" mapstructure:"busy_timeout_ms"`
}

// Themes accepted by TUI.Theme.
var validThemes = map[string]bool{
	"default":       true,
	"high-contrast": true,
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	homeDir, _ := os.UserHomeDir()

	return &Config{
		Global: GlobalConfig{
			DataDir: filepath.Join(homeDir, ".local", "share", "streamwatch"),
		},
		Files: FilesConfig{
			Favourites: "favourites.json",
			ListsDir:   "lists",
			Account:    "account.json",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "console",
		},
		TUI: TUIConfig{
			TickRate:     250 * time.Millisecond,
			StartupTicks: 2,
			Theme:        "default",
		},
		Launcher: LauncherConfig{
			Player:            "streamlink",
			PlayerArgs:        []string{"best"},
			StreamURLTemplate: "https://twitch.tv/%s",
			ChatURLTemplate:   "https://www.twitch.tv/popout/%s/chat",
		},
		Twitch: TwitchConfig{
			APIBase:             "https://api.twitch.tv/helix",
			TokenURL:            "https://id.twitch.tv/oauth2/token",
			MaxConcurrentChecks: 4,
			CheckTimeout:        10 * time.Second,
		},
		Database: DatabaseConfig{
			BusyTimeoutMs: 5000,
		},
	}
}

// Validate checks the configuration for invalid values.
func (c *Config) Validate() error {
	var errs []error

	if strings.TrimSpace(c.Global.DataDir) == "" {
		errs = append(errs, errors.New("global.data_dir must not be empty"))
	}
	if strings.TrimSpace(c.Files.Favourites) == "" {
		errs = append(errs, errors.New("files.favourites must not be empty"))
	}
	if c.TUI.TickRate <= 0 {
		errs = append(errs, fmt.Errorf("tui.tick_rate must be positive (got %s)", c.TUI.TickRate))
	}
	if !validThemes[c.TUI.Theme] {
		errs = append(errs, fmt.Errorf("invalid theme %q", c.TUI.Theme))
	}
	if strings.TrimSpace(c.Launcher.Player) == "" {
		errs = append(errs, errors.New("launcher.player must not be empty"))
	}
	if !strings.Contains(c.Launcher.StreamURLTemplate, "%s") {
		errs = append(errs, errors.New("launcher.stream_url_template must contain %s"))
	}
	if c.Twitch.MaxConcurrentChecks <= 0 {
		errs = append(errs, fmt.Errorf("twitch.max_concurrent_checks must be positive (got %d)", c.Twitch.MaxConcurrentChecks))
	}
	if c.Twitch.CheckTimeout <= 0 {
		errs = append(errs, fmt.Errorf("twitch.check_timeout must be positive (got %s)", c.Twitch.CheckTimeout))
	}
	if c.Database.BusyTimeoutMs < 0 {
		errs = append(errs, fmt.Errorf("database.busy_timeout_ms must be >= 0 (got %d)", c.Database.BusyTimeoutMs))
	}

	return errors.Join(errs...)
}

// FavouritesPath returns the absolute favourites file path.
func (c *Config) FavouritesPath() string {
	return c.resolve(c.Files.Favourites)
}

// ListsDir returns the absolute lists directory.
func (c *Config) ListsDir() string {
	return c.resolve(c.Files.ListsDir)
}

// AccountPath returns the absolute account file path.
func (c *Config) AccountPath() string {
	return c.resolve(c.Files.Account)
}

// LogFile returns the log file path, defaulting into the data directory.
func (c *Config) LogFile() string {
	if strings.TrimSpace(c.Logging.File) != "" {
		return c.Logging.File
	}
	return filepath.Join(c.Global.DataDir, "streamwatch.log")
}

// DatabasePath returns the history database path, defaulting into the data directory.
func (c *Config) DatabasePath() string {
	if strings.TrimSpace(c.Database.Path) != "" {
		return c.Database.Path
	}
	return filepath.Join(c.Global.DataDir, "history.db")
}

func (c *Config) resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(c.Global.DataDir, path)
}
