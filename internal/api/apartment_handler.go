package api

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/xonadon/xonadon-api/internal/api/shared"
	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/platform/logger"
	"github.com/xonadon/xonadon-api/internal/report"
	"github.com/xonadon/xonadon-api/internal/service"
)

// ApartmentHandler handles apartment management and per-apartment
// calculation requests.
type ApartmentHandler struct {
	service  service.ApartmentService
	defaults Defaults
	logger   *slog.Logger
}

// NewApartmentHandler creates a new ApartmentHandler.
func NewApartmentHandler(
	apartmentService service.ApartmentService,
	defaults Defaults,
	logger *slog.Logger,
) *ApartmentHandler {
	if apartmentService == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("apartmentService cannot be nil for ApartmentHandler")
	}
	if logger == nil {
		// ALLOW-PANIC: Constructor enforcing required dependency
		panic("logger cannot be nil for ApartmentHandler")
	}

	return &ApartmentHandler{
		service:  apartmentService,
		defaults: defaults,
		logger:   logger.With(slog.String("component", "apartment_handler")),
	}
}

// ListApartments handles GET /api/apartments
func (h *ApartmentHandler) ListApartments(w http.ResponseWriter, r *http.Request) {
	apartments, err := h.service.ListApartments(r.Context())
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list apartments")
		return
	}

	resp := ApartmentListResponse{Apartments: make([]ApartmentListItem, 0, len(apartments))}
	for _, a := range apartments {
		resp.Apartments = append(resp.Apartments, ApartmentListItem{
			ID:        a.ID,
			Name:      a.Name,
			RoomCount: len(a.Rooms),
		})
	}
	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

// GetApartment handles GET /api/apartments/{id}
func (h *ApartmentHandler) GetApartment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	apartment, err := h.service.GetApartment(r.Context(), id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to get apartment")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, apartmentToDTO(apartment))
}

// CreateApartment handles POST /api/apartments
func (h *ApartmentHandler) CreateApartment(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	var req CreateApartmentRequest
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	apartment := toDomainApartment(req.ID, req.Name, req.Rooms)
	created, err := h.service.CreateApartment(r.Context(), &apartment)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create apartment")
		return
	}

	w.Header().Set("Location", "/api/apartments/"+created.ID)
	shared.RespondWithJSON(w, r, http.StatusCreated, apartmentToDTO(created))
}

// DeleteApartment handles DELETE /api/apartments/{id}
func (h *ApartmentHandler) DeleteApartment(w http.ResponseWriter, r *http.Request) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.service.DeleteApartment(r.Context(), id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete apartment")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// AddRoom handles POST /api/apartments/{id}/rooms
func (h *ApartmentHandler) AddRoom(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContextOrDefault(r.Context(), h.logger)

	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req RoomDTO
	if !decodeAndValidate(w, r, &req, log) {
		return
	}

	room, err := h.service.AddRoom(r.Context(), id, toDomainRoom(req))
	if err != nil {
		HandleAPIError(w, r, err, "Failed to add room")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusCreated, roomToDTO(room))
}

// RemoveRoom handles DELETE /api/apartments/{id}/rooms/{roomID}
func (h *ApartmentHandler) RemoveRoom(w http.ResponseWriter, r *http.Request) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}
	roomID, err := getPathParam(r, "roomID")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.service.RemoveRoom(r.Context(), id, roomID); err != nil {
		HandleAPIError(w, r, err, "Failed to remove room")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GetTotals handles GET /api/apartments/{id}/totals?weather=
func (h *ApartmentHandler) GetTotals(w http.ResponseWriter, r *http.Request) {
	id, weather, ok := h.apartmentAndWeather(w, r)
	if !ok {
		return
	}

	totals, err := h.service.Totals(r.Context(), id, weather)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to calculate totals")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, totals)
}

// GetSummary handles GET /api/apartments/{id}/summary?weather=
func (h *ApartmentHandler) GetSummary(w http.ResponseWriter, r *http.Request) {
	id, weather, ok := h.apartmentAndWeather(w, r)
	if !ok {
		return
	}

	summary, err := h.service.Summarize(r.Context(), id, weather)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to calculate summary")
		return
	}
	shared.RespondWithJSON(w, r, http.StatusOK, summary)
}

// GetReport handles GET /api/apartments/{id}/report?weather=&lang=
func (h *ApartmentHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	id, weather, ok := h.apartmentAndWeather(w, r)
	if !ok {
		return
	}
	locale, err := resolveLocale(r, h.defaults.Locale)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	summary, err := h.service.Summarize(r.Context(), id, weather)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to build report")
		return
	}

	var buf bytes.Buffer
	if err := report.RenderText(&buf, summary, locale); err != nil {
		HandleAPIError(w, r, err, "Failed to build report")
		return
	}

	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Language", string(locale))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(buf.Bytes()); err != nil {
		logger.FromContextOrDefault(r.Context(), h.logger).
			Error("failed to write report", slog.String("error", err.Error()))
	}
}

// ExportWorkbook handles GET /api/apartments/{id}/export?weather=&lang=
func (h *ApartmentHandler) ExportWorkbook(w http.ResponseWriter, r *http.Request) {
	id, weather, ok := h.apartmentAndWeather(w, r)
	if !ok {
		return
	}
	locale, err := resolveLocale(r, h.defaults.Locale)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	summary, err := h.service.Summarize(r.Context(), id, weather)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to export apartment")
		return
	}

	data, err := report.RenderWorkbook(summary, locale)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to export apartment")
		return
	}

	w.Header().Set("Content-Language", string(locale))
	shared.RespondWithAttachment(w, r, report.WorkbookContentType,
		fmt.Sprintf("apartment-%s.xlsx", id), data)
}

// apartmentAndWeather extracts the apartment ID path parameter and the
// weather query parameter, writing a 400 response on failure.
func (h *ApartmentHandler) apartmentAndWeather(
	w http.ResponseWriter,
	r *http.Request,
) (string, domain.Weather, bool) {
	id, err := getPathParam(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return "", "", false
	}

	weather, err := resolveWeather(r.URL.Query().Get("weather"), h.defaults.Weather)
	if err != nil {
		HandleAPIError(w, r, err, "")
		return "", "", false
	}
	return id, weather, true
}
