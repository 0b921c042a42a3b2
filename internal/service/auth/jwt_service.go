// Package auth issues and validates the bearer tokens that protect the
// apartment mutation routes. Tokens identify an API client by subject;
// there are no user accounts.
package auth

import (
	"context"
	"time"
)

// TokenTypeAccess is the only token type issued.
const TokenTypeAccess = "access"

// JWTService defines operations for managing JWT access tokens.
type JWTService interface {
	// GenerateToken creates a signed access token for the given client subject.
	GenerateToken(ctx context.Context, subject string) (string, error)

	// ValidateToken validates the token string and extracts its claims.
	// Returns ErrExpiredToken, ErrTokenNotYetValid, ErrWrongTokenType or
	// ErrInvalidToken when validation fails.
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims represents the validated contents of an access token.
type Claims struct {
	// Subject identifies the API client the token was issued for.
	Subject   string    `json:"sub,omitempty"`
	TokenType string    `json:"type,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}
