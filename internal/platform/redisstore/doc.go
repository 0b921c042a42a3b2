// Package redisstore provides a Redis implementation of store.ApartmentStore.
//
// Each apartment is stored as one JSON document under
// "<prefix>apartment:<id>", and the set "<prefix>apartments" indexes the
// IDs. Room mutations use WATCH/MULTI so concurrent writers never lose an
// update.
package redisstore
