// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"time"

	"github.com/inkprofit/backend/internal/domain/entity"
)

// ClientRequest represents the request body for creating or updating a client.
type ClientRequest struct {
	Name  string `json:"name" binding:"required,max=120"`
	Phone string `json:"phone" binding:"required,max=32"`
	Email string `json:"email" binding:"omitempty,email"`
	Notes string `json:"notes"`
}

// ClientResponse represents a single client in API responses.
type ClientResponse struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone"`
	PhoneDigits string    `json:"phone_digits"`
	Email       string    `json:"email,omitempty"`
	Notes       string    `json:"notes,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ClientListResponse represents the response for listing clients.
type ClientListResponse struct {
	Clients []ClientResponse `json:"clients"`
}

// ToClientResponse converts a domain Client entity to a ClientResponse DTO.
func ToClientResponse(c *entity.Client) ClientResponse {
	return ClientResponse{
		ID:          c.ID.String(),
		Name:        c.Name,
		Phone:       c.Phone,
		PhoneDigits: entity.PhoneDigits(c.Phone),
		Email:       c.Email,
		Notes:       c.Notes,
		CreatedAt:   c.CreatedAt,
		UpdatedAt:   c.UpdatedAt,
	}
}

// ToClientListResponse converts a list of clients to a ClientListResponse DTO.
func ToClientListResponse(clients []*entity.Client) ClientListResponse {
	responses := make([]ClientResponse, len(clients))
	for i, c := range clients {
		responses[i] = ToClientResponse(c)
	}
	return ClientListResponse{Clients: responses}
}
