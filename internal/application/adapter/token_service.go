// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"
)

// AccessToken is a signed owner token and its expiry.
type AccessToken struct {
	Token     string
	ExpiresAt time.Time
}

// TokenClaims represents the claims contained in a JWT token.
type TokenClaims struct {
	Subject   string
	ExpiresAt time.Time
}

// TokenService defines the interface for JWT token operations.
type TokenService interface {
	// GenerateAccessToken issues a token for the studio owner.
	GenerateAccessToken(ctx context.Context, subject string) (*AccessToken, error)

	// ValidateAccessToken validates an access token and returns its claims.
	ValidateAccessToken(ctx context.Context, token string) (*TokenClaims, error)
}
