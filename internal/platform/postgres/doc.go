// Package postgres provides the PostgreSQL implementation of
// store.ApartmentStore together with its goose migrations.
//
// Apartments live in the apartments table. Rooms live in the rooms table,
// keyed by (apartment_id, id) and ordered by an integer position column;
// their cutouts, segments and partitions are stored as JSONB arrays.
package postgres
