package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/xonadon/xonadon-api/internal/api"
	apiMiddleware "github.com/xonadon/xonadon-api/internal/api/middleware"
	"github.com/xonadon/xonadon-api/internal/api/shared"
)

// setupRouter creates the application router with all routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.Trace(app.logger))
	r.Use(app.metrics.Middleware)

	defaults := api.Defaults{Weather: app.defaultWeather, Locale: app.defaultLocale}

	var authMiddleware *apiMiddleware.AuthMiddleware
	if app.jwtService != nil {
		authMiddleware = apiMiddleware.NewAuthMiddleware(app.jwtService, app.logger)
	}

	api.RegisterRoutes(r,
		api.NewApartmentHandler(app.apartmentService, defaults, app.logger),
		api.NewCalculationHandler(app.apartmentService, defaults, app.logger),
		apiMiddleware.Optional(authMiddleware, app.config.Auth.Enabled),
	)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		shared.RespondWithJSON(w, r, http.StatusOK, map[string]string{"status": "ok"})
	})
	r.Method(http.MethodGet, "/metrics", app.metrics.Handler())

	return r
}
