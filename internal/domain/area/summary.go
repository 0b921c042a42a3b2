package area

import (
	"github.com/xonadon/xonadon-api/internal/domain"
)

// Totals is the aggregate of an apartment: net room area and the material
// area required to finish it.
type Totals struct {
	Room     float64 `json:"room"`
	Material float64 `json:"material"`
}

// RoomSummary holds every derived area of a single room.
type RoomSummary struct {
	RoomID   string  `json:"room_id"`
	Name     string  `json:"name"`
	Gross    float64 `json:"gross"`
	Cutouts  float64 `json:"cutouts"`
	Net      float64 `json:"net"`
	Material float64 `json:"material"`
}

// ApartmentSummary is the per-room breakdown of an apartment together with
// its totals. Rooms keep the apartment's order.
type ApartmentSummary struct {
	ApartmentID string         `json:"apartment_id"`
	Name        string         `json:"name"`
	Weather     domain.Weather `json:"weather"`
	LossPercent float64        `json:"loss_percent"`
	Rooms       []RoomSummary  `json:"rooms"`
	Totals      Totals         `json:"totals"`
}

// SummarizeRoom computes all areas of a room under the default loss policy.
func SummarizeRoom(room domain.Room, weather domain.Weather) (RoomSummary, error) {
	return summarizeRoom(room, weather, NewDefaultParams())
}

// SummarizeApartment computes the per-room breakdown and totals of an
// apartment under the default loss policy.
func SummarizeApartment(apartment domain.Apartment, weather domain.Weather) (ApartmentSummary, error) {
	return summarizeApartment(apartment, weather, NewDefaultParams())
}

func summarizeRoom(room domain.Room, weather domain.Weather, params *Params) (RoomSummary, error) {
	material, err := materialArea(room, weather, params)
	if err != nil {
		return RoomSummary{}, err
	}

	return RoomSummary{
		RoomID:   room.ID,
		Name:     room.Name,
		Gross:    RoomArea(room),
		Cutouts:  CutoutArea(room),
		Net:      NetRoomArea(room),
		Material: material,
	}, nil
}

func summarizeApartment(apartment domain.Apartment, weather domain.Weather, params *Params) (ApartmentSummary, error) {
	loss, err := params.WastePercent(weather)
	if err != nil {
		return ApartmentSummary{}, err
	}

	summary := ApartmentSummary{
		ApartmentID: apartment.ID,
		Name:        apartment.Name,
		Weather:     weather,
		LossPercent: loss,
		Rooms:       make([]RoomSummary, 0, len(apartment.Rooms)),
	}

	for _, room := range apartment.Rooms {
		rs, err := summarizeRoom(room, weather, params)
		if err != nil {
			return ApartmentSummary{}, err
		}
		summary.Rooms = append(summary.Rooms, rs)
		summary.Totals.Room += rs.Net
		summary.Totals.Material += rs.Material
	}

	return summary, nil
}
