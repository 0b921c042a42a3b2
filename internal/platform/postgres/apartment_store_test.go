//go:build integration

package postgres_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xonadon/xonadon-api/internal/platform/postgres"
	"github.com/xonadon/xonadon-api/internal/store"
	"github.com/xonadon/xonadon-api/internal/store/storetest"
	"github.com/xonadon/xonadon-api/internal/testdb"
)

func TestPostgresApartmentStore_Contract(t *testing.T) {
	db := testdb.GetTestDBWithT(t)

	storetest.RunApartmentStoreTests(t, func(t *testing.T) store.ApartmentStore {
		testdb.ResetTables(t, db)
		return postgres.NewPostgresApartmentStore(db, nil)
	})
}

func TestPostgresApartmentStore_JoinsCallerTransaction(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	testdb.ResetTables(t, db)
	ctx := context.Background()

	apt := storetest.NewApartment("Rolled back", storetest.NewRoom("r1"))

	testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
		s := postgres.NewPostgresApartmentStore(tx, nil)
		require.NoError(t, s.Create(ctx, apt))
		require.NoError(t, s.AddRoom(ctx, apt.ID, storetest.NewRoom("r2")))

		got, err := s.GetByID(ctx, apt.ID)
		require.NoError(t, err)
		assert.Len(t, got.Rooms, 2)
	})

	_, err := postgres.NewPostgresApartmentStore(db, nil).GetByID(ctx, apt.ID)
	assert.ErrorIs(t, err, store.ErrApartmentNotFound)
}

func TestMigrate_StatusAndVersion(t *testing.T) {
	db := testdb.GetTestDBWithT(t)
	ctx := context.Background()

	assert.NoError(t, postgres.Migrate(ctx, db, "status", nil))
	assert.NoError(t, postgres.Migrate(ctx, db, "version", nil))
	assert.Error(t, postgres.Migrate(ctx, db, "sideways", nil))
}
