package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/graffic/citas-go/internal/config"
	"github.com/graffic/citas-go/internal/logging"
	"github.com/graffic/citas-go/internal/pages"
	"github.com/graffic/citas-go/internal/quotes"
	"github.com/graffic/citas-go/internal/settings"
	"github.com/graffic/citas-go/internal/storage"
)

func main() {
	if err := run(); err != nil {
		slog.Error("application error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cmd, args := parseCommand(os.Args[1:])

	env := os.Getenv("ENV")
	if env == "" {
		env = "development"
	}

	cfg, err := config.Load(env)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	logger, closer := logging.New(&cfg.Log, os.Stderr)
	defer closer.Close()
	slog.SetDefault(logger)

	ctx, cancel := signal.NotifyContext(
		context.Background(),
		os.Interrupt,
		syscall.SIGTERM,
	)
	defer cancel()

	a, err := newApp(cfg, logger)
	if err != nil {
		return err
	}
	defer a.Close()

	if cmd == "bot" {
		return runBot(ctx, cfg, a, logger)
	}
	return runCLI(ctx, a, cmd, args, os.Stdout)
}

// parseCommand returns the subcommand and its arguments, defaulting to home
func parseCommand(argv []string) (string, []string) {
	if len(argv) == 0 {
		return "home", nil
	}
	return argv[0], argv[1:]
}

// app holds the stores and page controllers shared by every front end
type app struct {
	store   *quotes.Store
	prefsDB *storage.DB
	pages   struct {
		home     *pages.Home
		manage   *pages.Manage
		settings *pages.Settings
	}
}

func newApp(cfg *config.Config, logger *slog.Logger) (*app, error) {
	a := &app{
		store: quotes.NewStore(storage.NewOpener(&cfg.Database), quotes.WithLogger(logger)),
	}

	if cfg.Preferences.Backend == "database" {
		db, err := storage.New(&cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to open preference database: %w", err)
		}
		a.prefsDB = db
	}

	prefs, err := settings.Open(&cfg.Preferences, a.prefsDB)
	if err != nil {
		a.Close()
		return nil, fmt.Errorf("failed to open preferences: %w", err)
	}
	service := settings.NewService(prefs, logger)

	a.pages.home = pages.NewHome(a.store, service, logger)
	a.pages.manage = pages.NewManage(a.store, logger)
	a.pages.settings = pages.NewSettings(service, logger)

	return a, nil
}

func (a *app) Close() error {
	err := a.store.Close()
	if a.prefsDB != nil {
		err = errors.Join(err, a.prefsDB.Close())
	}
	return err
}
