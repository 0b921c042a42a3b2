// Package storetest holds a behavioural test suite shared by every
// store.ApartmentStore implementation.
package storetest

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/store"
)

// Factory returns a fresh, empty store for one subtest.
type Factory func(t *testing.T) store.ApartmentStore

// NewRoom builds a valid 4x5 room with a single 1x2 door.
func NewRoom(id string) domain.Room {
	return domain.Room{
		ID:     id,
		Name:   "Room " + id,
		Width:  4,
		Height: 5,
		Cutouts: []domain.Cutout{
			{ID: id + "-door", X: 0, Y: 0, Width: 1, Height: 2},
		},
		Segments:   []domain.Segment{{ID: id + "-wall", Length: 4}},
		Partitions: []domain.Partition{{ID: id + "-p", Position: 2, Orientation: domain.OrientationVertical}},
	}
}

// NewApartment builds a valid apartment with a unique ID and the given rooms.
func NewApartment(name string, rooms ...domain.Room) *domain.Apartment {
	if rooms == nil {
		rooms = []domain.Room{}
	}
	return &domain.Apartment{
		ID:    uuid.NewString(),
		Name:  name,
		Rooms: rooms,
	}
}

// RunApartmentStoreTests exercises the store.ApartmentStore contract.
func RunApartmentStoreTests(t *testing.T, newStore Factory) {
	t.Helper()
	ctx := context.Background()

	t.Run("create and get", func(t *testing.T) {
		s := newStore(t)
		apt := NewApartment("Home", NewRoom("r1"), NewRoom("r2"))

		require.NoError(t, s.Create(ctx, apt))

		got, err := s.GetByID(ctx, apt.ID)
		require.NoError(t, err)
		assert.Equal(t, apt.ID, got.ID)
		assert.Equal(t, "Home", got.Name)
		require.Len(t, got.Rooms, 2)
		assert.Equal(t, "r1", got.Rooms[0].ID)
		assert.Equal(t, "r2", got.Rooms[1].ID)
		assert.Equal(t, apt.Rooms[0].Cutouts, got.Rooms[0].Cutouts)
		assert.Equal(t, apt.Rooms[0].Partitions, got.Rooms[0].Partitions)
	})

	t.Run("create duplicate", func(t *testing.T) {
		s := newStore(t)
		apt := NewApartment("Home")
		require.NoError(t, s.Create(ctx, apt))

		err := s.Create(ctx, apt)
		assert.ErrorIs(t, err, store.ErrApartmentExists)
	})

	t.Run("create invalid", func(t *testing.T) {
		s := newStore(t)
		apt := NewApartment("Home", NewRoom("r1"), NewRoom("r1"))

		err := s.Create(ctx, apt)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrDuplicateRoomID)
	})

	t.Run("get missing", func(t *testing.T) {
		s := newStore(t)
		_, err := s.GetByID(ctx, uuid.NewString())
		assert.ErrorIs(t, err, store.ErrApartmentNotFound)
		assert.True(t, store.IsNotFoundError(err))
	})

	t.Run("returned records are snapshots", func(t *testing.T) {
		s := newStore(t)
		apt := NewApartment("Home", NewRoom("r1"))
		require.NoError(t, s.Create(ctx, apt))

		apt.Rooms[0].Width = 100
		got, err := s.GetByID(ctx, apt.ID)
		require.NoError(t, err)
		assert.Equal(t, 4.0, got.Rooms[0].Width)

		got.Rooms[0].Cutouts[0].Width = 50
		again, err := s.GetByID(ctx, apt.ID)
		require.NoError(t, err)
		assert.Equal(t, 1.0, again.Rooms[0].Cutouts[0].Width)
	})

	t.Run("list ordered by name", func(t *testing.T) {
		s := newStore(t)
		b := NewApartment("Bravo")
		a := NewApartment("Alpha", NewRoom("r1"))
		require.NoError(t, s.Create(ctx, b))
		require.NoError(t, s.Create(ctx, a))

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 2)
		assert.Equal(t, "Alpha", list[0].Name)
		assert.Equal(t, "Bravo", list[1].Name)
		assert.Len(t, list[0].Rooms, 1)
	})

	t.Run("list compares bytes", func(t *testing.T) {
		s := newStore(t)
		for _, apt := range []*domain.Apartment{
			{ID: "b", Name: "home", Rooms: []domain.Room{}},
			{ID: "B", Name: "home", Rooms: []domain.Room{}},
			{ID: "c", Name: "Home", Rooms: []domain.Room{}},
		} {
			require.NoError(t, s.Create(ctx, apt))
		}

		list, err := s.List(ctx)
		require.NoError(t, err)
		require.Len(t, list, 3)
		assert.Equal(t, "c", list[0].ID)
		assert.Equal(t, "B", list[1].ID)
		assert.Equal(t, "b", list[2].ID)
	})

	t.Run("list empty", func(t *testing.T) {
		s := newStore(t)
		list, err := s.List(ctx)
		require.NoError(t, err)
		assert.NotNil(t, list)
		assert.Empty(t, list)
	})

	t.Run("delete", func(t *testing.T) {
		s := newStore(t)
		apt := NewApartment("Home", NewRoom("r1"))
		require.NoError(t, s.Create(ctx, apt))

		require.NoError(t, s.Delete(ctx, apt.ID))
		_, err := s.GetByID(ctx, apt.ID)
		assert.ErrorIs(t, err, store.ErrApartmentNotFound)

		assert.ErrorIs(t, s.Delete(ctx, apt.ID), store.ErrApartmentNotFound)
	})

	t.Run("add room appends", func(t *testing.T) {
		s := newStore(t)
		apt := NewApartment("Home", NewRoom("r1"))
		require.NoError(t, s.Create(ctx, apt))

		require.NoError(t, s.AddRoom(ctx, apt.ID, NewRoom("r2")))
		require.NoError(t, s.AddRoom(ctx, apt.ID, NewRoom("r0")))

		got, err := s.GetByID(ctx, apt.ID)
		require.NoError(t, err)
		require.Len(t, got.Rooms, 3)
		assert.Equal(t, []string{"r1", "r2", "r0"}, roomIDs(got))
	})

	t.Run("add room errors", func(t *testing.T) {
		s := newStore(t)
		apt := NewApartment("Home", NewRoom("r1"))
		require.NoError(t, s.Create(ctx, apt))

		assert.ErrorIs(t, s.AddRoom(ctx, apt.ID, NewRoom("r1")), store.ErrRoomExists)
		assert.ErrorIs(t, s.AddRoom(ctx, uuid.NewString(), NewRoom("r9")), store.ErrApartmentNotFound)

		bad := NewRoom("r2")
		bad.Width = -1
		err := s.AddRoom(ctx, apt.ID, bad)
		assert.ErrorIs(t, err, store.ErrInvalidEntity)
		assert.ErrorIs(t, err, domain.ErrNegativeDimension)
	})

	t.Run("remove room keeps order", func(t *testing.T) {
		s := newStore(t)
		apt := NewApartment("Home", NewRoom("r1"), NewRoom("r2"), NewRoom("r3"))
		require.NoError(t, s.Create(ctx, apt))

		require.NoError(t, s.RemoveRoom(ctx, apt.ID, "r2"))

		got, err := s.GetByID(ctx, apt.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"r1", "r3"}, roomIDs(got))

		require.NoError(t, s.AddRoom(ctx, apt.ID, NewRoom("r4")))
		got, err = s.GetByID(ctx, apt.ID)
		require.NoError(t, err)
		assert.Equal(t, []string{"r1", "r3", "r4"}, roomIDs(got))
	})

	t.Run("remove room errors", func(t *testing.T) {
		s := newStore(t)
		apt := NewApartment("Home", NewRoom("r1"))
		require.NoError(t, s.Create(ctx, apt))

		assert.ErrorIs(t, s.RemoveRoom(ctx, apt.ID, "nope"), store.ErrRoomNotFound)
		assert.ErrorIs(t, s.RemoveRoom(ctx, uuid.NewString(), "r1"), store.ErrApartmentNotFound)
	})

	t.Run("concurrent room adds", func(t *testing.T) {
		s := newStore(t)
		apt := NewApartment("Home")
		require.NoError(t, s.Create(ctx, apt))

		const n = 8
		var wg sync.WaitGroup
		errs := make(chan error, n)
		for i := 0; i < n; i++ {
			wg.Add(1)
			go func() {
				defer wg.Done()
				errs <- s.AddRoom(ctx, apt.ID, NewRoom(uuid.NewString()))
			}()
		}
		wg.Wait()
		close(errs)
		for err := range errs {
			assert.NoError(t, err)
		}

		got, err := s.GetByID(ctx, apt.ID)
		require.NoError(t, err)
		assert.Len(t, got.Rooms, n)
	})
}

func roomIDs(a *domain.Apartment) []string {
	ids := make([]string, 0, len(a.Rooms))
	for _, r := range a.Rooms {
		ids = append(ids, r.ID)
	}
	return ids
}
