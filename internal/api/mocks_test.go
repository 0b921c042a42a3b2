package api

import (
	"context"

	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/domain/area"
)

// MockApartmentService is a function-field implementation of
// service.ApartmentService for handler tests.
type MockApartmentService struct {
	CreateApartmentFn        func(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error)
	GetApartmentFn           func(ctx context.Context, id string) (*domain.Apartment, error)
	ListApartmentsFn         func(ctx context.Context) ([]*domain.Apartment, error)
	DeleteApartmentFn        func(ctx context.Context, id string) error
	AddRoomFn                func(ctx context.Context, apartmentID string, room domain.Room) (domain.Room, error)
	RemoveRoomFn             func(ctx context.Context, apartmentID, roomID string) error
	TotalsFn                 func(ctx context.Context, apartmentID string, weather domain.Weather) (area.Totals, error)
	SummarizeFn              func(ctx context.Context, apartmentID string, weather domain.Weather) (area.ApartmentSummary, error)
	SummarizeRoomFn          func(ctx context.Context, room domain.Room, weather domain.Weather) (area.RoomSummary, error)
	SummarizeApartmentFn     func(ctx context.Context, apartment domain.Apartment, weather domain.Weather) (area.ApartmentSummary, error)
	EnsureDefaultApartmentFn func(ctx context.Context, id, name string) (*domain.Apartment, error)
}

func (m *MockApartmentService) CreateApartment(
	ctx context.Context,
	apartment *domain.Apartment,
) (*domain.Apartment, error) {
	if m.CreateApartmentFn != nil {
		return m.CreateApartmentFn(ctx, apartment)
	}
	return apartment, nil
}

func (m *MockApartmentService) GetApartment(ctx context.Context, id string) (*domain.Apartment, error) {
	if m.GetApartmentFn != nil {
		return m.GetApartmentFn(ctx, id)
	}
	return nil, nil
}

func (m *MockApartmentService) ListApartments(ctx context.Context) ([]*domain.Apartment, error) {
	if m.ListApartmentsFn != nil {
		return m.ListApartmentsFn(ctx)
	}
	return nil, nil
}

func (m *MockApartmentService) DeleteApartment(ctx context.Context, id string) error {
	if m.DeleteApartmentFn != nil {
		return m.DeleteApartmentFn(ctx, id)
	}
	return nil
}

func (m *MockApartmentService) AddRoom(
	ctx context.Context,
	apartmentID string,
	room domain.Room,
) (domain.Room, error) {
	if m.AddRoomFn != nil {
		return m.AddRoomFn(ctx, apartmentID, room)
	}
	return room, nil
}

func (m *MockApartmentService) RemoveRoom(ctx context.Context, apartmentID, roomID string) error {
	if m.RemoveRoomFn != nil {
		return m.RemoveRoomFn(ctx, apartmentID, roomID)
	}
	return nil
}

func (m *MockApartmentService) Totals(
	ctx context.Context,
	apartmentID string,
	weather domain.Weather,
) (area.Totals, error) {
	if m.TotalsFn != nil {
		return m.TotalsFn(ctx, apartmentID, weather)
	}
	return area.Totals{}, nil
}

func (m *MockApartmentService) Summarize(
	ctx context.Context,
	apartmentID string,
	weather domain.Weather,
) (area.ApartmentSummary, error) {
	if m.SummarizeFn != nil {
		return m.SummarizeFn(ctx, apartmentID, weather)
	}
	return area.ApartmentSummary{}, nil
}

func (m *MockApartmentService) SummarizeRoom(
	ctx context.Context,
	room domain.Room,
	weather domain.Weather,
) (area.RoomSummary, error) {
	if m.SummarizeRoomFn != nil {
		return m.SummarizeRoomFn(ctx, room, weather)
	}
	return area.RoomSummary{}, nil
}

func (m *MockApartmentService) SummarizeApartment(
	ctx context.Context,
	apartment domain.Apartment,
	weather domain.Weather,
) (area.ApartmentSummary, error) {
	if m.SummarizeApartmentFn != nil {
		return m.SummarizeApartmentFn(ctx, apartment, weather)
	}
	return area.ApartmentSummary{}, nil
}

func (m *MockApartmentService) EnsureDefaultApartment(
	ctx context.Context,
	id, name string,
) (*domain.Apartment, error) {
	if m.EnsureDefaultApartmentFn != nil {
		return m.EnsureDefaultApartmentFn(ctx, id, name)
	}
	return nil, nil
}
