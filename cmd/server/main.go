// Package main implements the entry point for the Xonadon API server, which
// stores apartments and computes their net surface and finishing material
// areas.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/xonadon/xonadon-api/internal/config"
	"github.com/xonadon/xonadon-api/internal/platform/logger"
)

func main() {
	migrateCmd := flag.String("migrate", "",
		"run a migration command (up, down, reset, status, version) against the postgres store and exit")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, *migrateCmd); err != nil {
		slog.Error("server exited with error", slog.String("error", err.Error()))
		stop()
		os.Exit(1)
	}
}

// run loads configuration and either executes a migration command or serves
// HTTP until ctx is canceled.
func run(ctx context.Context, migrateCmd string) error {
	cfg, err := loadAppConfig()
	if err != nil {
		return err
	}

	log, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	if migrateCmd != "" {
		return runMigrations(ctx, cfg, migrateCmd, log)
	}

	app, err := newApplication(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer app.cleanup()

	if err := app.seedDefaultApartment(ctx); err != nil {
		return err
	}

	return app.startHTTPServer(ctx, app.setupRouter())
}

// loadAppConfig loads the application configuration from defaults, an
// optional config file and the environment.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("server configuration loaded",
		slog.Int("port", cfg.Server.Port),
		slog.String("log_level", cfg.Server.LogLevel),
		slog.String("database_driver", cfg.Database.Driver),
		slog.Bool("auth_enabled", cfg.Auth.Enabled))

	return cfg, nil
}
