// Package store defines how apartments and their rooms are persisted.
//
// ApartmentStore is implemented by the memory, postgres and redisstore
// packages under internal/platform. Implementations report missing and
// duplicate records with the sentinel errors in this package, so callers
// never depend on a particular backend. The SQL-only helpers (DBTX,
// RunInTransaction) live here as well.
package store
