package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// RegisterRoutes mounts the apartment and calculation routes under /api.
// protect wraps the mutation routes; pass a pass-through middleware when
// authentication is disabled.
func RegisterRoutes(
	r chi.Router,
	apartments *ApartmentHandler,
	calculations *CalculationHandler,
	protect func(http.Handler) http.Handler,
) {
	r.Route("/api", func(r chi.Router) {
		r.Post("/calculate/room", calculations.CalculateRoom)
		r.Post("/calculate/apartment", calculations.CalculateApartment)

		r.Get("/apartments", apartments.ListApartments)
		r.Get("/apartments/{id}", apartments.GetApartment)
		r.Get("/apartments/{id}/totals", apartments.GetTotals)
		r.Get("/apartments/{id}/summary", apartments.GetSummary)
		r.Get("/apartments/{id}/report", apartments.GetReport)
		r.Get("/apartments/{id}/export", apartments.ExportWorkbook)

		// Mutations
		r.Group(func(r chi.Router) {
			r.Use(protect)

			r.Post("/apartments", apartments.CreateApartment)
			r.Delete("/apartments/{id}", apartments.DeleteApartment)
			r.Post("/apartments/{id}/rooms", apartments.AddRoom)
			r.Delete("/apartments/{id}/rooms/{roomID}", apartments.RemoveRoom)
		})
	})
}
