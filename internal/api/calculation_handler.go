package api

import (
	"log/slog"
	"net/http"

	"github.com/xonadon/xonadon-api/internal/api/shared"
	"github.com/xonadon/xonadon-api/internal/platform/logger"
	"github.com/xonadon/xonadon-api/internal/service"
)

// CalculationHandler handles stateless calculations on records supplied in
// the request body. Nothing is stored.
type CalculationHandler struct {
	service  service.ApartmentService
	defaults Defaults
	logger   *slog.Logger
}

// NewCalculationHandler creates a new CalculationHandler.
func NewCalculationHandler(
	apartmentService service.ApartmentService,
	defaults Defaults,
	logger *slog.Logger,
) *CalculationHandler {
	if apartmentService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("apartmentService cannot be nil for CalculationHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for CalculationHandler")
	}

	return &CalculationHandler{
		service:  apartmentService,
		defaults: defaults,
		logger:   logger.With(slog.String("component", "calculation_handler")),
	}
}

// CalculateRoom handles POST /api/calculate/room
func (h *CalculationHandler) CalculateRoom(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CalculateRoomRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	weather, err := resolveWeather(req.Weather, h.defaults.Weather)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	summary, err := h.service.SummarizeRoom(r.Context(), toDomainRoom(req.Room), weather)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to calculate room")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}

// CalculateApartment handles POST /api/calculate/apartment
func (h *CalculationHandler) CalculateApartment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CalculateApartmentRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	weather, err := resolveWeather(req.Weather, h.defaults.Weather)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	apartment := toDomainApartment(req.Apartment.ID, req.Apartment.Name, req.Apartment.Rooms)
	summary, err := h.service.SummarizeApartment(r.Context(), apartment, weather)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to calculate apartment")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}
