package api

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/require"
	"github.com/xonadon/xonadon-api/internal/api/shared"
	"github.com/xonadon/xonadon-api/internal/domain"
	"github.com/xonadon/xonadon-api/internal/domain/area"
	"github.com/xonadon/xonadon-api/internal/platform/memory"
	"github.com/xonadon/xonadon-api/internal/report"
	"github.com/xonadon/xonadon-api/internal/service"
)

var testDefaults = Defaults{Weather: domain.WeatherHot, Locale: report.LocaleUzbek}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func passThrough(next http.Handler) http.Handler { return next }

// newRouter mounts the API routes around svc.
func newRouter(svc service.ApartmentService, defaults Defaults) http.Handler {
	r := chi.NewRouter()
	RegisterRoutes(r,
		NewApartmentHandler(svc, defaults, discardLogger()),
		NewCalculationHandler(svc, defaults, discardLogger()),
		passThrough,
	)
	return r
}

// newMemoryRouter wires the routes to a real service over an in-memory store.
func newMemoryRouter(t *testing.T) http.Handler {
	t.Helper()
	svc, err := service.NewApartmentService(
		memory.NewApartmentStore(discardLogger()),
		area.NewDefaultService(),
		nil,
		discardLogger(),
	)
	require.NoError(t, err)
	return newRouter(svc, testDefaults)
}

// doRequest sends a request with an optional JSON body.
func doRequest(t *testing.T, h http.Handler, method, target string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	default:
		data, err := json.Marshal(b)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	if reader != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}

func decodeBody[T any](t *testing.T, rr *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), &v), "body: %s", rr.Body.String())
	return v
}

func errorMessage(t *testing.T, rr *httptest.ResponseRecorder) string {
	t.Helper()
	return decodeBody[shared.ErrorResponse](t, rr).Error
}

// sampleRoom is the 4 x 5 room with a 1 x 2 door.
func sampleRoom(id, name string) RoomDTO {
	return RoomDTO{
		ID:      id,
		Name:    name,
		Width:   4,
		Height:  5,
		Cutouts: []CutoutDTO{{ID: id + "-door", Width: 1, Height: 2}},
	}
}

func httptestRequest(method, target string) *http.Request {
	return httptest.NewRequest(method, target, nil)
}

func serve(h http.Handler, req *http.Request) *httptest.ResponseRecorder {
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	return rr
}
