// Package adapters implements adapter interfaces from the application layer.
package adapters

import (
	"context"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/inkprofit/backend/internal/application/adapter"
)

const (
	defaultAccessTokenDuration = 12 * time.Hour
	tokenIssuer                = "inkprofit"
	tokenTypeAccess            = "access"
)

// CustomClaims represents the custom claims for JWT tokens.
type CustomClaims struct {
	TokenType string `json:"token_type"`
	jwt.RegisteredClaims
}

// tokenService implements the adapter.TokenService interface.
type tokenService struct {
	secret   []byte
	duration time.Duration
	now      func() time.Time
}

// NewTokenService creates a new token service instance.
// A non-positive duration falls back to 12 hours.
func NewTokenService(secret string, duration time.Duration, clock adapter.Clock) adapter.TokenService {
	if duration <= 0 {
		duration = defaultAccessTokenDuration
	}
	if clock == nil {
		clock = adapter.SystemClock()
	}
	return &tokenService{
		secret:   []byte(secret),
		duration: duration,
		now:      clock.Now,
	}
}

// GenerateAccessToken issues a signed HS256 token for subject.
func (s *tokenService) GenerateAccessToken(_ context.Context, subject string) (*adapter.AccessToken, error) {
	now := s.now().UTC()
	expiresAt := now.Add(s.duration)
	claims := CustomClaims{
		TokenType: tokenTypeAccess,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
			Issuer:    tokenIssuer,
			Subject:   subject,
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return nil, fmt.Errorf("failed to sign access token: %w", err)
	}

	return &adapter.AccessToken{
		Token:     signed,
		ExpiresAt: expiresAt,
	}, nil
}

// ValidateAccessToken validates an access token and returns its claims.
func (s *tokenService) ValidateAccessToken(_ context.Context, token string) (*adapter.TokenClaims, error) {
	claims, err := s.parseJWT(token)
	if err != nil {
		return nil, err
	}

	if claims.TokenType != tokenTypeAccess {
		return nil, fmt.Errorf("invalid token type: expected access token")
	}

	return &adapter.TokenClaims{
		Subject:   claims.Subject,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// parseJWT parses and validates a JWT token.
func (s *tokenService) parseJWT(tokenString string) (*CustomClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CustomClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	},
		jwt.WithIssuer(tokenIssuer),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*CustomClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
