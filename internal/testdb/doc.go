//go:build integration

// Package testdb provides helpers for tests that need a real PostgreSQL
// database.
//
// Tests skip themselves when no database URL is configured. The URL is read
// from DATABASE_URL, then XONADON_TEST_DB_URL. GetTestDBWithT opens a
// connection, applies the embedded migrations and registers cleanup.
//
//	func TestSomething(t *testing.T) {
//	    db := testdb.GetTestDBWithT(t)
//	    testdb.WithTx(t, db, func(t *testing.T, tx *sql.Tx) {
//	        s := postgres.NewPostgresApartmentStore(tx, nil)
//	        // ...
//	    })
//	}
//
// WithTx rolls back after fn returns. Tests that exercise concurrency need
// their own pool and should call ResetTables instead.
package testdb
