package area

import (
	"github.com/xonadon/xonadon-api/internal/domain"
)

// RoomArea returns the gross rectangular area of the room.
//
// No validation is performed: a negative width or height yields a negative
// area. Callers that need user-facing validation must check inputs or
// outputs themselves.
func RoomArea(room domain.Room) float64 {
	return room.Width * room.Height
}

// CutoutArea returns the summed area of every cutout in the room, or 0 when
// there are none. Overlapping cutouts are not unioned, so an overlapped
// region is counted once per cutout covering it.
func CutoutArea(room domain.Room) float64 {
	var total float64
	for _, c := range room.Cutouts {
		total += c.Width * c.Height
	}
	return total
}

// NetRoomArea returns the gross area minus the cutout area. The result is not
// clamped and is negative when the cutouts exceed the room.
func NetRoomArea(room domain.Room) float64 {
	return RoomArea(room) - CutoutArea(room)
}

// MaterialArea returns the finishing material required for the room under
// the default loss policy: net area reduced by the weather's loss fraction
// (hot 10%, cold 7%).
func MaterialArea(room domain.Room, weather domain.Weather) (float64, error) {
	return materialArea(room, weather, NewDefaultParams())
}

// ApartmentTotals sums net and material area over every room of the
// apartment under the default loss policy. An empty apartment yields zero
// totals; an unknown weather fails even when there are no rooms.
func ApartmentTotals(apartment domain.Apartment, weather domain.Weather) (Totals, error) {
	return apartmentTotals(apartment, weather, NewDefaultParams())
}

// materialArea applies the loss fraction multiplicatively:
// net * (1 - loss). The loss reduces the requirement; it is not extra
// material on top of net area.
func materialArea(room domain.Room, weather domain.Weather, params *Params) (float64, error) {
	loss, err := params.WastePercent(weather)
	if err != nil {
		return 0, err
	}

	return NetRoomArea(room) * (1 - loss), nil
}

func apartmentTotals(apartment domain.Apartment, weather domain.Weather, params *Params) (Totals, error) {
	loss, err := params.WastePercent(weather)
	if err != nil {
		return Totals{}, err
	}

	var totals Totals
	for _, room := range apartment.Rooms {
		net := NetRoomArea(room)
		totals.Room += net
		totals.Material += net * (1 - loss)
	}

	return totals, nil
}
