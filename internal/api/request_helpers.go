package api

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/xonadon/xonadon-api/internal/api/shared"
	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/redact"
	"github.com/xonadon/xonadon-api/internal/report"
)

// Defaults holds the values used when a request leaves them out.
type Defaults struct {
	Weather domain.Weather
	Locale  report.Locale
}

// resolveWeather parses raw, falling back to the default when raw is empty.
// An unrecognized value is an error, never silently replaced.
func resolveWeather(raw string, fallback domain.Weather) (domain.Weather, error) {
	if strings.TrimSpace(raw) == "" {
		return fallback, nil
	}
	return domain.ParseWeather(raw)
}

// resolveLocale picks the report language: the "lang" query parameter when
// present, otherwise the best match for Accept-Language, otherwise fallback.
func resolveLocale(r *http.Request, fallback report.Locale) (report.Locale, error) {
	if lang := r.URL.Query().Get("lang"); lang != "" {
		return report.ParseLocale(lang)
	}
	return report.MatchLocale(r.Header.Get("Accept-Language"), fallback), nil
}

// getPathParam extracts a required path parameter.
func getPathParam(r *http.Request, name string) (string, error) {
	value := strings.TrimSpace(chi.URLParam(r, name))
	if value == "" {
		return "", domain.NewValidationError(name, "is required", domain.ErrInvalidID)
	}
	return value, nil
}

// decodeAndValidate reads a JSON body into v and validates it. It writes a
// 400 response and returns false on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}, log *slog.Logger) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		log.Warn("invalid request format", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, "Invalid request format", err)
		return false
	}

	if err := shared.ValidateRequest(v); err != nil {
		log.Warn("validation error", slog.String("error", redact.Error(err)))
		shared.RespondWithErrorAndLog(w, r, http.StatusBadRequest, SanitizeValidationError(err), err)
		return false
	}

	return true
}
