package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"golang.org/x/term"

	"github.com/tOgg1/streamwatch/internal/app"
	"github.com/tOgg1/streamwatch/internal/channel"
	"github.com/tOgg1/streamwatch/internal/config"
	"github.com/tOgg1/streamwatch/internal/db"
	"github.com/tOgg1/streamwatch/internal/logging"
	"github.com/tOgg1/streamwatch/internal/notify"
	"github.com/tOgg1/streamwatch/internal/state"
	"github.com/tOgg1/streamwatch/internal/styles"
	"github.com/tOgg1/streamwatch/internal/twitch"
)

// errorPopupTicks is how many frames the account error popup stays up.
const errorPopupTicks = 12

func hasTTY() bool {
	return term.IsTerminal(int(os.Stdin.Fd())) && term.IsTerminal(int(os.Stdout.Fd()))
}

func runTUI(ctx context.Context, cfg *config.Config) error {
	if !hasTTY() {
		return errNoTTY
	}
	if ctx == nil {
		ctx = context.Background()
	}
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	logFile, err := initFileLogging(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()
	log := logging.Component("cli")

	account := loadAccount(cfg)

	var recorder twitch.Recorder
	database, err := db.Open(ctx, db.Config{Path: cfg.DatabasePath(), BusyTimeoutMs: cfg.Database.BusyTimeoutMs})
	if err != nil {
		log.Warn().Err(err).Str("path", cfg.DatabasePath()).Msg("status history disabled")
	} else {
		defer database.Close()
		recorder = db.NewStatusStore(database)
	}

	checker := twitch.NewChecker(twitch.CheckerConfig{
		APIBase:             cfg.Twitch.APIBase,
		TokenURL:            cfg.Twitch.TokenURL,
		MaxConcurrentChecks: cfg.Twitch.MaxConcurrentChecks,
		Timeout:             cfg.Twitch.CheckTimeout,
	}, recorder)

	env := newEnv(ctx, cfg, checker)
	machine := state.NewMachine(env, account)

	log.Info().
		Bool("account", account != nil).
		Str("favourites", cfg.FavouritesPath()).
		Msg("starting tui")

	runErr := app.Run(ctx, app.Config{
		Machine:  machine,
		Theme:    styles.Lookup(cfg.TUI.Theme),
		TickRate: cfg.TUI.TickRate,
	})

	// in-flight lookups record into the database, so stop them before it closes
	cancel()
	checker.Wait()

	if runErr != nil {
		return fmt.Errorf("run tui: %w", runErr)
	}
	return nil
}

func newEnv(ctx context.Context, cfg *config.Config, checker state.Checker) *state.Env {
	env := state.NewEnv(ctx)
	env.Checker = checker
	env.Launcher = channel.NewLauncher(cfg.Launcher)
	env.FavouritesPath = cfg.FavouritesPath()
	env.ListsDir = cfg.ListsDir()
	env.StartupTicks = cfg.TUI.StartupTicks
	env.ErrorTicks = errorPopupTicks
	if cfg.TUI.NotifyOnline {
		env.Notifier = notify.NewDesktop()
	}

	accountPath := cfg.AccountPath()
	auth := twitch.AuthOptions{TokenURL: cfg.Twitch.TokenURL}
	env.BuildAccount = func(ctx context.Context, fields twitch.Fields) (*twitch.Account, error) {
		return twitch.NewAccount(ctx, fields, auth, accountPath)
	}
	return env
}

func initFileLogging(cfg *config.Config) (*os.File, error) {
	file, err := logging.OpenFile(cfg.LogFile())
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}
	logging.Init(logging.Config{
		Level:        cfg.Logging.Level,
		Format:       cfg.Logging.Format,
		Output:       file,
		EnableCaller: cfg.Logging.EnableCaller,
	})
	return file, nil
}

// loadAccount returns nil when there is no usable account, which starts account setup.
func loadAccount(cfg *config.Config) *twitch.Account {
	log := logging.Component("cli")
	account, err := twitch.LoadAccount(cfg.AccountPath())
	switch {
	case err == nil:
		return account
	case errors.Is(err, os.ErrNotExist):
		log.Info().Str("path", cfg.AccountPath()).Msg("no account file, starting setup")
	default:
		log.Warn().Err(err).Str("path", cfg.AccountPath()).Msg("account unusable, starting setup")
	}
	return nil
}
