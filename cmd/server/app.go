package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/go-redis/redis/v8"
	"github.com/xonadon/xonadon-api/internal/config"
	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/domain/area"
	"github.com/xonadon/xonadon-api/internal/platform/metrics"
	"github.com/xonadon/xonadon-api/internal/report"
	"github.com/xonadon/xonadon-api/internal/service"
	"github.com/xonadon/xonadon-api/internal/service/auth"
	"github.com/xonadon/xonadon-api/internal/store"
)

// application holds the shared dependencies of the server and releases them
// on shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger

	// Exactly one of db and redis is set for the postgres and redis drivers.
	db    *sql.DB
	redis *redis.Client

	apartmentStore   store.ApartmentStore
	apartmentService service.ApartmentService
	jwtService       auth.JWTService
	metrics          *metrics.Metrics

	defaultWeather domain.Weather
	defaultLocale  report.Locale
}

// newApplication opens the configured store and builds the services.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*application, error) {
	app := &application{
		config:  cfg,
		logger:  logger,
		metrics: metrics.New(),
	}

	var err error
	app.defaultWeather, err = domain.ParseWeather(cfg.Material.DefaultWeather)
	if err != nil {
		return nil, fmt.Errorf("invalid default weather: %w", err)
	}
	app.defaultLocale, err = report.ParseLocale(cfg.Locale.Default)
	if err != nil {
		return nil, fmt.Errorf("invalid default locale: %w", err)
	}

	if cfg.Auth.Enabled {
		app.jwtService, err = auth.NewJWTService(cfg.Auth)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
		}
		logger.Info("JWT authentication enabled for mutations",
			slog.Int("token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes))
	}

	if err := app.openStore(ctx); err != nil {
		return nil, err
	}

	calc := area.NewServiceWithParams(area.NewParams(area.ParamsConfig{
		HotLossPercent:  cfg.Material.HotWastePercent,
		ColdLossPercent: cfg.Material.ColdWastePercent,
	}))

	app.apartmentService, err = service.NewApartmentService(app.apartmentStore, calc, app.metrics, logger)
	if err != nil {
		app.cleanup()
		return nil, fmt.Errorf("failed to create apartment service: %w", err)
	}

	return app, nil
}

// seedDefaultApartment creates the configured default apartment when it is
// missing.
func (app *application) seedDefaultApartment(ctx context.Context) error {
	if !app.config.Apartment.SeedDefault {
		return nil
	}

	_, err := app.apartmentService.EnsureDefaultApartment(ctx,
		app.config.Apartment.DefaultID, app.config.Apartment.DefaultName)
	if err != nil {
		return fmt.Errorf("failed to seed default apartment: %w", err)
	}
	return nil
}

// cleanup releases database connections.
func (app *application) cleanup() {
	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("failed to close database", slog.String("error", err.Error()))
		}
		app.db = nil
	}
	if app.redis != nil {
		if err := app.redis.Close(); err != nil {
			app.logger.Error("failed to close redis client", slog.String("error", err.Error()))
		}
		app.redis = nil
	}
}
