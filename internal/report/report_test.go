package report

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/domain/area"
)

func sampleRoom(id, name string) domain.Room {
	return domain.Room{
		ID:      id,
		Name:    name,
		Width:   4,
		Height:  5,
		Cutouts: []domain.Cutout{{ID: id + "-door", Width: 1, Height: 2}},
	}
}

func sampleSummary(t *testing.T, weather domain.Weather, rooms ...domain.Room) area.ApartmentSummary {
	t.Helper()
	summary, err := area.SummarizeApartment(domain.Apartment{
		ID:    "apt-1",
		Name:  "Home",
		Rooms: rooms,
	}, weather)
	require.NoError(t, err)
	return summary
}
