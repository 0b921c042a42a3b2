package area

import (
	"github.com/xonadon/xonadon-api/internal/domain"
)

// Service defines the interface for area and material calculations
type Service interface {
	// RoomArea returns the gross rectangular area of a room
	RoomArea(room domain.Room) float64

	// CutoutArea returns the summed area of a room's cutouts
	CutoutArea(room domain.Room) float64

	// NetRoomArea returns gross area minus cutout area
	NetRoomArea(room domain.Room) float64

	// MaterialArea returns net area reduced by the weather's loss fraction
	MaterialArea(room domain.Room, weather domain.Weather) (float64, error)

	// ApartmentTotals sums net and material area over an apartment's rooms
	ApartmentTotals(apartment domain.Apartment, weather domain.Weather) (Totals, error)

	// SummarizeRoom returns every derived area of a room
	SummarizeRoom(room domain.Room, weather domain.Weather) (RoomSummary, error)

	// SummarizeApartment returns the per-room breakdown and totals of an apartment
	SummarizeApartment(apartment domain.Apartment, weather domain.Weather) (ApartmentSummary, error)

	// Params returns the loss policy in use
	Params() *Params
}

// defaultService is the standard implementation of the Service interface
type defaultService struct {
	params *Params
}

// NewDefaultService creates a new area service with default parameters
func NewDefaultService() Service {
	return &defaultService{
		params: NewDefaultParams(),
	}
}

// NewServiceWithParams creates a new area service with custom parameters.
// A nil params value falls back to the defaults.
func NewServiceWithParams(params *Params) Service {
	if params == nil {
		params = NewDefaultParams()
	}
	return &defaultService{
		params: params,
	}
}

func (s *defaultService) RoomArea(room domain.Room) float64 {
	return RoomArea(room)
}

func (s *defaultService) CutoutArea(room domain.Room) float64 {
	return CutoutArea(room)
}

func (s *defaultService) NetRoomArea(room domain.Room) float64 {
	return NetRoomArea(room)
}

func (s *defaultService) MaterialArea(room domain.Room, weather domain.Weather) (float64, error) {
	return materialArea(room, weather, s.params)
}

func (s *defaultService) ApartmentTotals(apartment domain.Apartment, weather domain.Weather) (Totals, error) {
	return apartmentTotals(apartment, weather, s.params)
}

func (s *defaultService) SummarizeRoom(room domain.Room, weather domain.Weather) (RoomSummary, error) {
	return summarizeRoom(room, weather, s.params)
}

func (s *defaultService) SummarizeApartment(
	apartment domain.Apartment,
	weather domain.Weather,
) (ApartmentSummary, error) {
	return summarizeApartment(apartment, weather, s.params)
}

func (s *defaultService) Params() *Params {
	return s.params
}
