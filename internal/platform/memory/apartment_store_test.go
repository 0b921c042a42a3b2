package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xonadon/xonadon-api/internal/platform/memory"
	"github.com/xonadon/xonadon-api/internal/store"
	"github.com/xonadon/xonadon-api/internal/store/storetest"
)

func TestApartmentStore(t *testing.T) {
	t.Parallel()

	storetest.RunApartmentStoreTests(t, func(t *testing.T) store.ApartmentStore {
		return memory.NewApartmentStore(nil)
	})
}

func TestApartmentStore_CreateNil(t *testing.T) {
	t.Parallel()

	s := memory.NewApartmentStore(nil)
	err := s.Create(context.Background(), nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, store.ErrInvalidEntity)
}

func TestApartmentStore_ListIsSnapshot(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s := memory.NewApartmentStore(nil)
	apt := storetest.NewApartment("Home", storetest.NewRoom("r1"))
	require.NoError(t, s.Create(ctx, apt))

	list, err := s.List(ctx)
	require.NoError(t, err)
	list[0].Name = "Changed"
	list[0].Rooms = nil

	got, err := s.GetByID(ctx, apt.ID)
	require.NoError(t, err)
	assert.Equal(t, "Home", got.Name)
	assert.Len(t, got.Rooms, 1)
}
