// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/inkprofit/backend/internal/application/adapter"
)

// LoginRequest represents the request body for owner login.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// TokenResponse represents the response for a successful login.
type TokenResponse struct {
	AccessToken string    `json:"access_token"`
	TokenType   string    `json:"token_type"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// ErrorResponse represents an error response.
type ErrorResponse struct {
	Error   string `json:"error"`
	Code    string `json:"code,omitempty"`
	Details string `json:"details,omitempty"`
}

// ToTokenResponse converts an issued access token to a TokenResponse DTO.
func ToTokenResponse(token *adapter.AccessToken) TokenResponse {
	return TokenResponse{
		AccessToken: token.Token,
		TokenType:   "Bearer",
		ExpiresAt:   token.ExpiresAt,
	}
}
