package api

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/xonadon/xonadon-api/internal/api/shared"
	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/report"
	"github.com/xonadon/xonadon-api/internal/service"
	"github.com/xonadon/xonadon-api/internal/service/auth"
	"github.com/xonadon/xonadon-api/internal/store"
)

// MapErrorToStatusCode maps internal errors to appropriate HTTP status codes
// based on the error type. This prevents leaking internal error types or
// messages to clients.
func MapErrorToStatusCode(err error) int {
	var validationErr *domain.ValidationError
	var fieldErrs validator.ValidationErrors

	switch {
	case err == nil:
		return http.StatusOK

	// Authentication errors
	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrExpiredToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return http.StatusUnauthorized

	// Not found errors
	case errors.Is(err, store.ErrNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, store.ErrDuplicate):
		return http.StatusConflict

	// Bad request errors
	case errors.Is(err, domain.ErrInvalidWeather),
		errors.Is(err, report.ErrUnsupportedLocale),
		errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, service.ErrInvalidRequest),
		errors.Is(err, domain.ErrValidation),
		errors.As(err, &validationErr),
		errors.As(err, &fieldErrs):
		return http.StatusBadRequest

	default:
		return http.StatusInternalServerError
	}
}

// GetSafeErrorMessage returns a sanitized, user-friendly error message
// based on the error type. This prevents leaking sensitive internal details.
func GetSafeErrorMessage(err error) string {
	if err == nil {
		return "An unexpected error occurred"
	}

	var validationErr *domain.ValidationError
	var fieldErrs validator.ValidationErrors

	switch {
	case errors.Is(err, auth.ErrExpiredToken):
		return "Token expired"

	case errors.Is(err, auth.ErrInvalidToken),
		errors.Is(err, auth.ErrTokenNotYetValid),
		errors.Is(err, auth.ErrMissingToken),
		errors.Is(err, auth.ErrWrongTokenType):
		return "Invalid token"

	case errors.Is(err, store.ErrApartmentNotFound):
		return "Apartment not found"

	case errors.Is(err, store.ErrRoomNotFound):
		return "Room not found"

	case errors.Is(err, store.ErrApartmentExists):
		return "Apartment already exists"

	case errors.Is(err, store.ErrRoomExists):
		return "Room already exists"

	case errors.Is(err, domain.ErrInvalidWeather):
		return "Invalid weather: must be one of hot, cold"

	case errors.Is(err, report.ErrUnsupportedLocale):
		return "Unsupported language: must be one of uz, ru, en"

	case errors.As(err, &fieldErrs):
		return SanitizeValidationError(fieldErrs)

	// Domain validation messages name a field and a rule, never internals.
	case errors.As(err, &validationErr):
		return "Invalid " + validationErr.Error()

	case errors.Is(err, store.ErrInvalidEntity),
		errors.Is(err, domain.ErrValidation):
		return "Invalid entity data"

	case errors.Is(err, service.ErrInvalidRequest):
		return "Invalid request"

	default:
		return "An unexpected error occurred"
	}
}

// SanitizeValidationError turns the first validator field error into a
// user-friendly message.
func SanitizeValidationError(err error) string {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return "Validation error"
	}

	fe := fieldErrs[0]
	field := fieldPath(fe.Namespace())
	return fmt.Sprintf("Invalid %s: %s", field, getValidationTagMessage(fe.Tag()))
}

// fieldPath drops the struct name from a validator namespace and lower-cases
// the rest, e.g. "CreateApartmentRequest.Rooms[0].Width" => "rooms[0].width".
func fieldPath(namespace string) string {
	if _, rest, found := strings.Cut(namespace, "."); found {
		namespace = rest
	}
	return strings.ToLower(namespace)
}

// getValidationTagMessage maps validation tags to user-friendly error messages
func getValidationTagMessage(tag string) string {
	switch tag {
	case "required":
		return "required field"
	case "gte":
		return "must not be negative"
	case "max":
		return "too long"
	case "oneof":
		return "invalid value"
	default:
		return "validation failed"
	}
}

// HandleAPIError writes the error response for err. A non-empty
// fallbackMessage replaces the generic message of internal server errors.
func HandleAPIError(w http.ResponseWriter, r *http.Request, err error, fallbackMessage string) {
	status := MapErrorToStatusCode(err)
	message := GetSafeErrorMessage(err)
	if status == http.StatusInternalServerError && fallbackMessage != "" {
		message = fallbackMessage
	}

	shared.RespondWithErrorAndLog(w, r, status, message, err)
}
