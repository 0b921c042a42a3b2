package main

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // registers the "pgx" driver
	"github.com/xonadon/xonadon-api/internal/config"
	"github.com/xonadon/xonadon-api/internal/platform/memory"
	"github.com/xonadon/xonadon-api/internal/platform/postgres"
	"github.com/xonadon/xonadon-api/internal/platform/redisstore"
)

// Supported database drivers
const (
	driverMemory   = "memory"
	driverPostgres = "postgres"
	driverRedis    = "redis"
)

// errMigrationsNeedPostgres is returned for -migrate with another driver.
var errMigrationsNeedPostgres = errors.New("migrations require the postgres database driver")

// openStore connects the apartment store selected by database.driver.
// The postgres schema is migrated up before use.
func (app *application) openStore(ctx context.Context) error {
	cfg := app.config.Database

	switch cfg.Driver {
	case driverMemory:
		app.apartmentStore = memory.NewApartmentStore(app.logger)

	case driverPostgres:
		db, err := setupAppDatabase(ctx, cfg, app.logger)
		if err != nil {
			return err
		}
		if err := postgres.Migrate(ctx, db, "up", app.logger); err != nil {
			_ = db.Close()
			return fmt.Errorf("failed to migrate database: %w", err)
		}
		app.db = db
		app.apartmentStore = postgres.NewPostgresApartmentStore(db, app.logger)

	case driverRedis:
		client, err := redisstore.NewClient(ctx, cfg.Redis)
		if err != nil {
			return err
		}
		app.redis = client
		app.apartmentStore = redisstore.NewApartmentStore(client, cfg.Redis.KeyPrefix, app.logger)

	default:
		return fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}

	app.logger.Info("apartment store ready", slog.String("driver", cfg.Driver))
	return nil
}

// setupAppDatabase establishes a connection to the database and configures connection pools.
// Returns the database connection if successful, or an error if the connection fails.
func setupAppDatabase(ctx context.Context, cfg config.DatabaseConfig, logger *slog.Logger) (*sql.DB, error) {
	db, err := sql.Open("pgx", cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(5 * time.Minute)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := db.PingContext(pingCtx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	logger.Info("database connection established")
	return db, nil
}

// runMigrations executes a goose command against the configured postgres
// database.
func runMigrations(ctx context.Context, cfg *config.Config, command string, logger *slog.Logger) error {
	if cfg.Database.Driver != driverPostgres {
		return errMigrationsNeedPostgres
	}

	db, err := setupAppDatabase(ctx, cfg.Database, logger)
	if err != nil {
		return err
	}
	defer func() {
		_ = db.Close()
	}()

	if err := postgres.Migrate(ctx, db, command, logger); err != nil {
		return fmt.Errorf("migration %q failed: %w", command, err)
	}
	return nil
}
