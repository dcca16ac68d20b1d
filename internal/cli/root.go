// Package cli implements the streamwatch command line.
package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tOgg1/streamwatch/internal/config"
)

// rootOptions are the persistent flags shared by every command.
type rootOptions struct {
	configFile string
	favourites string
	theme      string
	logLevel   string

	cfg *config.Config
}

// Execute runs the streamwatch command.
func Execute(version string) error {
	return newRootCmd(version).Execute()
}

func newRootCmd(version string) *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "streamwatch",
		Short:         "Watch your favourite Twitch channels from the terminal",
		Long:          "streamwatch shows the live status of favourite channels and launches an external player and chat.",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       version,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.load(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTUI(cmd.Context(), opts.cfg)
		},
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.configFile, "config", "", "config file (default is $XDG_CONFIG_HOME/streamwatch/config.yaml)")
	flags.StringVar(&opts.favourites, "favourites", "", "favourites file (overrides files.favourites)")
	flags.StringVar(&opts.theme, "theme", "", "theme: default|high-contrast")
	flags.StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error)")

	cmd.AddCommand(
		newFavouritesCmd(opts),
		newHistoryCmd(opts),
		newConfigCmd(opts),
	)
	return cmd
}

var flagKeys = map[string]string{
	"favourites": "files.favourites",
	"theme":      "tui.theme",
	"log-level":  "logging.level",
}

func (o *rootOptions) load(cmd *cobra.Command) error {
	loader := config.NewLoader()
	if o.configFile != "" {
		loader.SetConfigFile(o.configFile)
	}
	for name, key := range flagKeys {
		flag := cmd.Flags().Lookup(name)
		if flag == nil {
			return fmt.Errorf("unknown flag %q", name)
		}
		if err := loader.BindFlag(key, flag); err != nil {
			return fmt.Errorf("bind --%s: %w", name, err)
		}
	}

	cfg, err := loader.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	o.cfg = cfg
	return nil
}

// errNoTTY is returned when the TUI is started without a terminal.
var errNoTTY = errors.New("streamwatch needs an interactive terminal; use a subcommand for scripted use")
