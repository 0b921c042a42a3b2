// Package area computes net surface areas and finishing-material
// requirements for rooms and apartments.
//
// Every function is pure: inputs are read-only snapshots, nothing is cached
// and nothing is mutated, so the package is safe for concurrent use.
//
// Policy decisions:
//   - Overlapping cutouts are subtracted independently (no union).
//   - Net and material areas are never clamped; negative geometry produces
//     negative results.
//   - An unknown weather key is an error, never a silent default.
package area
