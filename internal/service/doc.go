// Package service contains the application use cases. It coordinates the
// apartment store (internal/store) with the pure area calculator
// (internal/domain/area) and never depends on a concrete storage backend.
//
// Store errors pass through wrapped in ApartmentServiceError, so callers
// can still match them with errors.Is. Invalid weather surfaces as a
// domain.ValidationError wrapping domain.ErrInvalidWeather.
package service
