package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// envPrefix is prepended to every environment override (files.favourites -> STREAMWATCH_FILES_FAVOURITES).
const envPrefix = "STREAMWATCH"

// Loader handles configuration loading with Viper.
type Loader struct {
	v          *viper.Viper
	configFile string
}

// NewLoader creates a new configuration loader.
func NewLoader() *Loader {
	return &Loader{
		v: viper.New(),
	}
}

// SetConfigFile sets an explicit config file path.
func (l *Loader) SetConfigFile(path string) {
	l.configFile = path
}

// BindFlag binds a command-line flag to a config key. Flags win over
// environment variables and the config file.
func (l *Loader) BindFlag(key string, flag *pflag.Flag) error {
	if flag == nil {
		return nil
	}
	return l.v.BindPFlag(key, flag)
}

// Load resolves the configuration. Later sources win:
// defaults, config file, STREAMWATCH_* env vars, bound flags.
func (l *Loader) Load() (*Config, error) {
	cfg := DefaultConfig()
	l.setupViper(cfg)

	// a broken file found on the search path is skipped; an explicit one is not
	if err := l.loadConfigFile(); err != nil && l.configFile != "" {
		return nil, fmt.Errorf("failed to load config file: %w", err)
	}
	if err := l.v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	for _, path := range []*string{
		&cfg.Global.DataDir,
		&cfg.Files.Favourites,
		&cfg.Files.ListsDir,
		&cfg.Files.Account,
		&cfg.Logging.File,
		&cfg.Database.Path,
	} {
		*path = expandTilde(*path)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

// expandTilde replaces a leading ~ with the user's home directory.
func expandTilde(path string) string {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return path
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~"))
}

// setupViper configures Viper with defaults and environment bindings.
func (l *Loader) setupViper(cfg *Config) {
	v := l.v

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, dir := range searchDirs() {
		v.AddConfigPath(dir)
	}

	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// Viper's Unmarshal ignores env vars on nested keys unless they are bound,
	// so every key is bound explicitly next to its default.
	for _, s := range settings(cfg) {
		v.SetDefault(s.key, s.value)
		_ = v.BindEnv(s.key, EnvVar(s.key))
	}
	v.AutomaticEnv()
}

// searchDirs lists the directories searched for config.yaml, in order.
func searchDirs() []string {
	var dirs []string
	if xdgConfig := os.Getenv("XDG_CONFIG_HOME"); xdgConfig != "" {
		dirs = append(dirs, filepath.Join(xdgConfig, "streamwatch"))
	}
	if homeDir, _ := os.UserHomeDir(); homeDir != "" {
		dirs = append(dirs, filepath.Join(homeDir, ".config", "streamwatch"))
	}
	return append(dirs, ".")
}

// EnvVar returns the environment variable that overrides key.
func EnvVar(key string) string {
	return envPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, ".", "_"))
}

type setting struct {
	key   string
	value any
}

// settings is every config key with its default taken from cfg.
func settings(cfg *Config) []setting {
	return []setting{
		{"global.data_dir", cfg.Global.DataDir},

		{"files.favourites", cfg.Files.Favourites},
		{"files.lists_dir", cfg.Files.ListsDir},
		{"files.account", cfg.Files.Account},

		{"logging.level", cfg.Logging.Level},
		{"logging.format", cfg.Logging.Format},
		{"logging.file", cfg.Logging.File},
		{"logging.enable_caller", cfg.Logging.EnableCaller},

		{"tui.tick_rate", cfg.TUI.TickRate},
		{"tui.startup_ticks", cfg.TUI.StartupTicks},
		{"tui.theme", cfg.TUI.Theme},
		{"tui.notify_online", cfg.TUI.NotifyOnline},

		{"launcher.player", cfg.Launcher.Player},
		{"launcher.player_args", cfg.Launcher.PlayerArgs},
		{"launcher.chat", cfg.Launcher.Chat},
		{"launcher.chat_args", cfg.Launcher.ChatArgs},
		{"launcher.stream_url_template", cfg.Launcher.StreamURLTemplate},
		{"launcher.chat_url_template", cfg.Launcher.ChatURLTemplate},

		{"twitch.api_base", cfg.Twitch.APIBase},
		{"twitch.token_url", cfg.Twitch.TokenURL},
		{"twitch.max_concurrent_checks", cfg.Twitch.MaxConcurrentChecks},
		{"twitch.check_timeout", cfg.Twitch.CheckTimeout},

		{"database.path", cfg.Database.Path},
		{"database.busy_timeout_ms", cfg.Database.BusyTimeoutMs},
	}
}

// loadConfigFile reads the explicit file, or the first config.yaml found in
// the search directories. Not finding one in the search directories is fine.
func (l *Loader) loadConfigFile() error {
	if l.configFile != "" {
		l.v.SetConfigFile(l.configFile)
	}

	err := l.v.ReadInConfig()
	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return nil
	}
	return err
}

// LoadFromFile loads configuration from a specific file.
func LoadFromFile(path string) (*Config, error) {
	loader := NewLoader()
	loader.SetConfigFile(path)
	return loader.Load()
}
