package auth

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xonadon/xonadon-api/internal/config"
)

const testSecret = "test-secret-that-is-long-enough-for-testing"

func newTestService(secret string, lifetime time.Duration, now func() time.Time) *hmacJWTService {
	return &hmacJWTService{
		signingKey:    []byte(secret),
		tokenLifetime: lifetime,
		timeFunc:      now,
		clockSkew:     2 * time.Minute,
	}
}

func TestNewJWTService(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		cfg     config.AuthConfig
		wantErr bool
	}{
		{
			name: "valid",
			cfg:  config.AuthConfig{JWTSecret: testSecret, TokenLifetimeMinutes: 60},
		},
		{
			name:    "short secret",
			cfg:     config.AuthConfig{JWTSecret: "short", TokenLifetimeMinutes: 60},
			wantErr: true,
		},
		{
			name:    "zero lifetime",
			cfg:     config.AuthConfig{JWTSecret: testSecret},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, err := NewJWTService(tt.cfg)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, svc)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, svc)
		})
	}
}

func TestGenerateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	svc := newTestService(testSecret, lifetime, func() time.Time { return fixedTime })

	token, err := svc.GenerateToken(context.Background(), "mobile-app")
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(context.Background(), token)
	require.NoError(t, err)
	assert.Equal(t, "mobile-app", claims.Subject)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(lifetime).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)

	_, err = svc.GenerateToken(context.Background(), "")
	assert.ErrorIs(t, err, ErrEmptySubject)
}

func TestValidateToken(t *testing.T) {
	t.Parallel()

	fixedTime := time.Date(2025, 1, 1, 12, 0, 0, 0, time.UTC)
	lifetime := 60 * time.Minute
	at := func(ts time.Time) func() time.Time { return func() time.Time { return ts } }

	issue := func(t *testing.T, secret string, now time.Time) string {
		t.Helper()
		token, err := newTestService(secret, lifetime, at(now)).GenerateToken(context.Background(), "client")
		require.NoError(t, err)
		return token
	}

	tests := []struct {
		name      string
		setupFunc func(t *testing.T) (JWTService, string)
		wantErr   error
	}{
		{
			name: "valid token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newTestService(testSecret, lifetime, at(fixedTime)), issue(t, testSecret, fixedTime)
			},
		},
		{
			name: "within clock skew after expiry",
			setupFunc: func(t *testing.T) (JWTService, string) {
				later := fixedTime.Add(lifetime + time.Minute)
				return newTestService(testSecret, lifetime, at(later)), issue(t, testSecret, fixedTime)
			},
		},
		{
			name: "expired token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				later := fixedTime.Add(lifetime + time.Hour)
				return newTestService(testSecret, lifetime, at(later)), issue(t, testSecret, fixedTime)
			},
			wantErr: ErrExpiredToken,
		},
		{
			name: "issued in the future",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newTestService(testSecret, lifetime, at(fixedTime)),
					issue(t, testSecret, fixedTime.Add(30*time.Minute))
			},
			wantErr: ErrTokenNotYetValid,
		},
		{
			name: "invalid signature",
			setupFunc: func(t *testing.T) (JWTService, string) {
				wrong := "wrong-secret-that-is-long-enough-for-testing"
				return newTestService(testSecret, lifetime, at(fixedTime)), issue(t, wrong, fixedTime)
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "malformed token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newTestService(testSecret, lifetime, at(fixedTime)), "this.is.not.a.valid.jwt.token"
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "empty token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				return newTestService(testSecret, lifetime, at(fixedTime)), ""
			},
			wantErr: ErrMissingToken,
		},
		{
			name: "wrong token type",
			setupFunc: func(t *testing.T) (JWTService, string) {
				claims := jwtCustomClaims{
					TokenType: "refresh",
					RegisteredClaims: jwt.RegisteredClaims{
						Issuer:    Issuer,
						Subject:   "client",
						IssuedAt:  jwt.NewNumericDate(fixedTime),
						ExpiresAt: jwt.NewNumericDate(fixedTime.Add(lifetime)),
					},
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
				require.NoError(t, err)
				return newTestService(testSecret, lifetime, at(fixedTime)), token
			},
			wantErr: ErrWrongTokenType,
		},
		{
			name: "foreign issuer",
			setupFunc: func(t *testing.T) (JWTService, string) {
				claims := jwtCustomClaims{
					TokenType: TokenTypeAccess,
					RegisteredClaims: jwt.RegisteredClaims{
						Issuer:    "someone-else",
						Subject:   "client",
						ExpiresAt: jwt.NewNumericDate(fixedTime.Add(lifetime)),
					},
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(testSecret))
				require.NoError(t, err)
				return newTestService(testSecret, lifetime, at(fixedTime)), token
			},
			wantErr: ErrInvalidToken,
		},
		{
			name: "unsigned token",
			setupFunc: func(t *testing.T) (JWTService, string) {
				claims := jwtCustomClaims{
					TokenType:        TokenTypeAccess,
					RegisteredClaims: jwt.RegisteredClaims{Issuer: Issuer, Subject: "client"},
				}
				token, err := jwt.NewWithClaims(jwt.SigningMethodNone, claims).
					SignedString(jwt.UnsafeAllowNoneSignatureType)
				require.NoError(t, err)
				return newTestService(testSecret, lifetime, at(fixedTime)), token
			},
			wantErr: ErrInvalidToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			svc, token := tt.setupFunc(t)
			claims, err := svc.ValidateToken(context.Background(), token)

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, "client", claims.Subject)
		})
	}
}
