package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/xonadon/xonadon-api/internal/api/shared"
	"github.com/xonadon/xonadon-api/internal/config"
	"github.com/xonadon/xonadon-api/internal/service/auth"
)

// mockJWTService is a function-field implementation of auth.JWTService.
type mockJWTService struct {
	ValidateTokenFn func(ctx context.Context, token string) (*auth.Claims, error)
}

func (m *mockJWTService) GenerateToken(ctx context.Context, subject string) (string, error) {
	return "", nil
}

func (m *mockJWTService) ValidateToken(ctx context.Context, token string) (*auth.Claims, error) {
	return m.ValidateTokenFn(ctx, token)
}

func testAuthConfig() config.AuthConfig {
	return config.AuthConfig{
		Enabled:              true,
		JWTSecret:            strings.Repeat("s", 32),
		TokenLifetimeMinutes: 5,
	}
}

// subjectEcho writes the authenticated subject as the response body.
func subjectEcho() http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		subject, _ := shared.GetSubject(r.Context())
		_, _ = w.Write([]byte(subject))
	})
}
