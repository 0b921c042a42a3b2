package memory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"sync"

	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/platform/logger"
	"github.com/xonadon/xonadon-api/internal/store"
)

// Compile-time check that ApartmentStore implements store.ApartmentStore.
var _ store.ApartmentStore = (*ApartmentStore)(nil)

// ApartmentStore keeps apartments in a map guarded by a read/write mutex.
type ApartmentStore struct {
	mu         sync.RWMutex
	apartments map[string]*domain.Apartment
	logger     *slog.Logger
}

// NewApartmentStore creates an empty in-memory store.
// If logger is nil, the default logger is used.
func NewApartmentStore(logger *slog.Logger) *ApartmentStore {
	if logger == nil {
		logger = slog.Default()
	}
	return &ApartmentStore{
		apartments: make(map[string]*domain.Apartment),
		logger:     logger.With(slog.String("component", "memory_apartment_store")),
	}
}

// Create implements store.ApartmentStore.
func (s *ApartmentStore) Create(ctx context.Context, apartment *domain.Apartment) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if apartment == nil {
		return fmt.Errorf("%w: apartment is nil", store.ErrInvalidEntity)
	}
	if err := apartment.Validate(); err != nil {
		log.Warn("apartment validation failed during create",
			slog.String("apartment_id", apartment.ID),
			slog.String("error", err.Error()))
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.apartments[apartment.ID]; exists {
		return store.ErrApartmentExists
	}
	s.apartments[apartment.ID] = apartment.Clone()

	log.Debug("apartment created",
		slog.String("apartment_id", apartment.ID),
		slog.Int("rooms", len(apartment.Rooms)))
	return nil
}

// GetByID implements store.ApartmentStore.
func (s *ApartmentStore) GetByID(ctx context.Context, id string) (*domain.Apartment, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	apartment, ok := s.apartments[id]
	if !ok {
		return nil, store.ErrApartmentNotFound
	}
	return apartment.Clone(), nil
}

// List implements store.ApartmentStore.
func (s *ApartmentStore) List(ctx context.Context) ([]*domain.Apartment, error) {
	s.mu.RLock()
	out := make([]*domain.Apartment, 0, len(s.apartments))
	for _, a := range s.apartments {
		out = append(out, a.Clone())
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].Name != out[j].Name {
			return out[i].Name < out[j].Name
		}
		return out[i].ID < out[j].ID
	})
	return out, nil
}

// Delete implements store.ApartmentStore.
func (s *ApartmentStore) Delete(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.apartments[id]; !ok {
		return store.ErrApartmentNotFound
	}
	delete(s.apartments, id)

	logger.FromContextOrDefault(ctx, s.logger).Debug("apartment deleted",
		slog.String("apartment_id", id))
	return nil
}

// AddRoom implements store.ApartmentStore.
func (s *ApartmentStore) AddRoom(ctx context.Context, apartmentID string, room domain.Room) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apartment, ok := s.apartments[apartmentID]
	if !ok {
		return store.ErrApartmentNotFound
	}

	if err := apartment.AddRoom(room); err != nil {
		if errors.Is(err, domain.ErrDuplicateRoomID) {
			return store.ErrRoomExists
		}
		return fmt.Errorf("%w: %w", store.ErrInvalidEntity, err)
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("room added",
		slog.String("apartment_id", apartmentID),
		slog.String("room_id", room.ID))
	return nil
}

// RemoveRoom implements store.ApartmentStore.
func (s *ApartmentStore) RemoveRoom(ctx context.Context, apartmentID, roomID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	apartment, ok := s.apartments[apartmentID]
	if !ok {
		return store.ErrApartmentNotFound
	}
	if !apartment.RemoveRoom(roomID) {
		return store.ErrRoomNotFound
	}

	logger.FromContextOrDefault(ctx, s.logger).Debug("room removed",
		slog.String("apartment_id", apartmentID),
		slog.String("room_id", roomID))
	return nil
}
