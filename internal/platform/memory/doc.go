// Package memory provides an in-memory implementation of store.ApartmentStore
// used by default and in tests. Records are deep-copied on the way in and on
// the way out, so callers only ever hold snapshots.
package memory
