package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"
	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/domain/area"
	"github.com/xonadon/xonadon-api/internal/platform/logger"
	"github.com/xonadon/xonadon-api/internal/store"
)

// Operation labels passed to the CalculationRecorder.
const (
	OpRoomSummary      = "room_summary"
	OpApartmentSummary = "apartment_summary"
	OpApartmentTotals  = "apartment_totals"
)

// CalculationRecorder receives the outcome of every calculation.
type CalculationRecorder interface {
	ObserveCalculation(operation string, weather domain.Weather, err error)
}

type noopRecorder struct{}

func (noopRecorder) ObserveCalculation(string, domain.Weather, error) {}

// ApartmentService provides apartment management and area calculations.
type ApartmentService interface {
	// CreateApartment stores a new apartment. Missing apartment, room and
	// cutout IDs are generated.
	CreateApartment(ctx context.Context, apartment *domain.Apartment) (*domain.Apartment, error)

	// GetApartment retrieves an apartment by its ID
	GetApartment(ctx context.Context, id string) (*domain.Apartment, error)

	// ListApartments returns all apartments ordered by name
	ListApartments(ctx context.Context) ([]*domain.Apartment, error)

	// DeleteApartment removes an apartment and its rooms
	DeleteApartment(ctx context.Context, id string) error

	// AddRoom appends a room to an apartment and returns the stored room
	AddRoom(ctx context.Context, apartmentID string, room domain.Room) (domain.Room, error)

	// RemoveRoom removes a room from an apartment
	RemoveRoom(ctx context.Context, apartmentID, roomID string) error

	// Totals computes the net and material totals of a stored apartment
	Totals(ctx context.Context, apartmentID string, weather domain.Weather) (area.Totals, error)

	// Summarize computes the per-room breakdown of a stored apartment
	Summarize(ctx context.Context, apartmentID string, weather domain.Weather) (area.ApartmentSummary, error)

	// SummarizeRoom computes the areas of a room that is not stored
	SummarizeRoom(ctx context.Context, room domain.Room, weather domain.Weather) (area.RoomSummary, error)

	// SummarizeApartment computes the breakdown of an apartment that is not stored
	SummarizeApartment(
		ctx context.Context,
		apartment domain.Apartment,
		weather domain.Weather,
	) (area.ApartmentSummary, error)

	// EnsureDefaultApartment creates the apartment with the given ID if it
	// does not exist yet and returns it.
	EnsureDefaultApartment(ctx context.Context, id, name string) (*domain.Apartment, error)
}

// apartmentServiceImpl implements the ApartmentService interface
type apartmentServiceImpl struct {
	store    store.ApartmentStore
	calc     area.Service
	recorder CalculationRecorder
	logger   *slog.Logger
}

// NewApartmentService creates a new ApartmentService.
// It returns an error if the store or calculator is nil. A nil recorder
// disables calculation metrics.
func NewApartmentService(
	apartmentStore store.ApartmentStore,
	calc area.Service,
	recorder CalculationRecorder,
	logger *slog.Logger,
) (ApartmentService, error) {
	if apartmentStore == nil {
		return nil, domain.NewValidationError("apartmentStore", "cannot be nil", domain.ErrValidation)
	}
	if calc == nil {
		return nil, domain.NewValidationError("calc", "cannot be nil", domain.ErrValidation)
	}
	if recorder == nil {
		recorder = noopRecorder{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &apartmentServiceImpl{
		store:    apartmentStore,
		calc:     calc,
		recorder: recorder,
		logger:   logger.With(slog.String("component", "apartment_service")),
	}, nil
}

// CreateApartment implements ApartmentService.CreateApartment
func (s *apartmentServiceImpl) CreateApartment(
	ctx context.Context,
	apartment *domain.Apartment,
) (*domain.Apartment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if apartment == nil {
		return nil, NewApartmentServiceError("create_apartment", "apartment is required", ErrInvalidRequest)
	}

	created := apartment.Clone()
	if created.ID == "" {
		created.ID = uuid.NewString()
	}
	for i := range created.Rooms {
		assignRoomIDs(&created.Rooms[i])
	}

	if err := s.store.Create(ctx, created); err != nil {
		log.Debug("failed to create apartment",
			slog.String("apartment_id", created.ID),
			slog.String("error", err.Error()))
		return nil, NewApartmentServiceError("create_apartment", "failed to save apartment", err)
	}

	log.Info("apartment created",
		slog.String("apartment_id", created.ID),
		slog.Int("rooms", len(created.Rooms)))
	return created, nil
}

// GetApartment implements ApartmentService.GetApartment
func (s *apartmentServiceImpl) GetApartment(ctx context.Context, id string) (*domain.Apartment, error) {
	apartment, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, NewApartmentServiceError("get_apartment", "failed to retrieve apartment", err)
	}
	return apartment, nil
}

// ListApartments implements ApartmentService.ListApartments
func (s *apartmentServiceImpl) ListApartments(ctx context.Context) ([]*domain.Apartment, error) {
	apartments, err := s.store.List(ctx)
	if err != nil {
		return nil, NewApartmentServiceError("list_apartments", "failed to list apartments", err)
	}
	return apartments, nil
}

// DeleteApartment implements ApartmentService.DeleteApartment
func (s *apartmentServiceImpl) DeleteApartment(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return NewApartmentServiceError("delete_apartment", "failed to delete apartment", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("apartment deleted",
		slog.String("apartment_id", id))
	return nil
}

// AddRoom implements ApartmentService.AddRoom
func (s *apartmentServiceImpl) AddRoom(
	ctx context.Context,
	apartmentID string,
	room domain.Room,
) (domain.Room, error) {
	stored := room.Clone()
	assignRoomIDs(&stored)

	if err := s.store.AddRoom(ctx, apartmentID, stored); err != nil {
		return domain.Room{}, NewApartmentServiceError("add_room", "failed to add room", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("room added",
		slog.String("apartment_id", apartmentID),
		slog.String("room_id", stored.ID))
	return stored, nil
}

// RemoveRoom implements ApartmentService.RemoveRoom
func (s *apartmentServiceImpl) RemoveRoom(ctx context.Context, apartmentID, roomID string) error {
	if err := s.store.RemoveRoom(ctx, apartmentID, roomID); err != nil {
		return NewApartmentServiceError("remove_room", "failed to remove room", err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("room removed",
		slog.String("apartment_id", apartmentID),
		slog.String("room_id", roomID))
	return nil
}

// Totals implements ApartmentService.Totals
func (s *apartmentServiceImpl) Totals(
	ctx context.Context,
	apartmentID string,
	weather domain.Weather,
) (area.Totals, error) {
	apartment, err := s.store.GetByID(ctx, apartmentID)
	if err != nil {
		return area.Totals{}, NewApartmentServiceError("totals", "failed to retrieve apartment", err)
	}

	totals, err := s.calc.ApartmentTotals(*apartment, weather)
	s.recorder.ObserveCalculation(OpApartmentTotals, weather, err)
	if err != nil {
		return area.Totals{}, err
	}
	return totals, nil
}

// Summarize implements ApartmentService.Summarize
func (s *apartmentServiceImpl) Summarize(
	ctx context.Context,
	apartmentID string,
	weather domain.Weather,
) (area.ApartmentSummary, error) {
	apartment, err := s.store.GetByID(ctx, apartmentID)
	if err != nil {
		return area.ApartmentSummary{}, NewApartmentServiceError(
			"summarize", "failed to retrieve apartment", err)
	}
	return s.SummarizeApartment(ctx, *apartment, weather)
}

// SummarizeRoom implements ApartmentService.SummarizeRoom
func (s *apartmentServiceImpl) SummarizeRoom(
	ctx context.Context,
	room domain.Room,
	weather domain.Weather,
) (area.RoomSummary, error) {
	summary, err := s.calc.SummarizeRoom(room, weather)
	s.recorder.ObserveCalculation(OpRoomSummary, weather, err)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("room calculation rejected",
			slog.String("room_id", room.ID),
			slog.String("error", err.Error()))
		return area.RoomSummary{}, err
	}
	return summary, nil
}

// SummarizeApartment implements ApartmentService.SummarizeApartment
func (s *apartmentServiceImpl) SummarizeApartment(
	ctx context.Context,
	apartment domain.Apartment,
	weather domain.Weather,
) (area.ApartmentSummary, error) {
	summary, err := s.calc.SummarizeApartment(apartment, weather)
	s.recorder.ObserveCalculation(OpApartmentSummary, weather, err)
	if err != nil {
		logger.FromContextOrDefault(ctx, s.logger).Debug("apartment calculation rejected",
			slog.String("apartment_id", apartment.ID),
			slog.String("error", err.Error()))
		return area.ApartmentSummary{}, err
	}
	return summary, nil
}

// EnsureDefaultApartment implements ApartmentService.EnsureDefaultApartment
func (s *apartmentServiceImpl) EnsureDefaultApartment(
	ctx context.Context,
	id, name string,
) (*domain.Apartment, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	existing, err := s.store.GetByID(ctx, id)
	if err == nil {
		return existing, nil
	}
	if !errors.Is(err, store.ErrApartmentNotFound) {
		return nil, NewApartmentServiceError("ensure_default", "failed to look up default apartment", err)
	}

	apartment, err := domain.NewApartment(id, name)
	if err != nil {
		return nil, NewApartmentServiceError("ensure_default", "invalid default apartment", err)
	}

	err = s.store.Create(ctx, apartment)
	switch {
	case err == nil:
		log.Info("default apartment seeded",
			slog.String("apartment_id", id),
			slog.String("name", name))
		return apartment, nil
	case errors.Is(err, store.ErrApartmentExists):
		// Created by a concurrent caller between the lookup and the insert.
		return s.GetApartment(ctx, id)
	default:
		return nil, NewApartmentServiceError("ensure_default",
			fmt.Sprintf("failed to seed apartment %s", id), err)
	}
}

// assignRoomIDs fills in missing IDs on a room and its children.
func assignRoomIDs(room *domain.Room) {
	if room.ID == "" {
		room.ID = uuid.NewString()
	}
	for i := range room.Cutouts {
		if room.Cutouts[i].ID == "" {
			room.Cutouts[i].ID = uuid.NewString()
		}
	}
	for i := range room.Segments {
		if room.Segments[i].ID == "" {
			room.Segments[i].ID = uuid.NewString()
		}
	}
	for i := range room.Partitions {
		if room.Partitions[i].ID == "" {
			room.Partitions[i].ID = uuid.NewString()
		}
	}
}
