package store

import (
	"context"

	"github.com/xonadon/xonadon-api/internal/domain"
)

// ApartmentStore defines the interface for apartment persistence.
// It is the state-holding collaborator of the calculator: it owns the
// apartment records and hands out snapshots that callers may read freely.
type ApartmentStore interface {
	// Create saves a new apartment, including any rooms it already holds.
	// Returns ErrApartmentExists if the ID is taken.
	// Returns validation errors from the domain Apartment if data is invalid.
	Create(ctx context.Context, apartment *domain.Apartment) error

	// GetByID retrieves an apartment with its rooms in insertion order.
	// Returns ErrApartmentNotFound if the apartment does not exist.
	GetByID(ctx context.Context, id string) (*domain.Apartment, error)

	// List returns every apartment ordered by name, then ID, comparing bytes.
	// Returns an empty slice if there are none.
	List(ctx context.Context) ([]*domain.Apartment, error)

	// Delete removes an apartment and its rooms.
	// Returns ErrApartmentNotFound if the apartment does not exist.
	Delete(ctx context.Context, id string) error

	// AddRoom appends a room to an apartment.
	// Returns ErrApartmentNotFound if the apartment does not exist and
	// ErrRoomExists if the apartment already has a room with the same ID.
	AddRoom(ctx context.Context, apartmentID string, room domain.Room) error

	// RemoveRoom removes a room from an apartment, keeping the order of the
	// remaining rooms.
	// Returns ErrApartmentNotFound or ErrRoomNotFound.
	RemoveRoom(ctx context.Context, apartmentID, roomID string) error
}
