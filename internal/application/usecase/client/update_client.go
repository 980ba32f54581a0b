// Package client contains the client registry use cases.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
)

// UpdateClientInput represents the input for updating a client.
type UpdateClientInput struct {
	ClientID uuid.UUID
	Name     string
	Phone    string
	Email    string
	Notes    string
}

// UpdateClientOutput represents the output of updating a client.
type UpdateClientOutput struct {
	Client *entity.Client
}

// UpdateClientUseCase edits a client's contact data.
// Proposals already saved keep their own name and phone snapshot.
type UpdateClientUseCase struct {
	clientRepo adapter.ClientRepository
	clock      adapter.Clock
}

// NewUpdateClientUseCase creates a new UpdateClientUseCase instance.
func NewUpdateClientUseCase(clientRepo adapter.ClientRepository, clock adapter.Clock) *UpdateClientUseCase {
	return &UpdateClientUseCase{
		clientRepo: clientRepo,
		clock:      clock,
	}
}

// Execute replaces the client's fields.
func (uc *UpdateClientUseCase) Execute(ctx context.Context, input UpdateClientInput) (*UpdateClientOutput, error) {
	name, phone, err := validateContact(input.Name, input.Phone)
	if err != nil {
		return nil, err
	}

	client, err := findClient(ctx, uc.clientRepo, input.ClientID)
	if err != nil {
		return nil, err
	}

	client.Name = name
	client.Phone = phone
	client.Email = strings.TrimSpace(input.Email)
	client.Notes = strings.TrimSpace(input.Notes)
	client.UpdatedAt = uc.clock.Now()

	if err := uc.clientRepo.Update(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to update client: %w", err)
	}

	return &UpdateClientOutput{
		Client: client,
	}, nil
}
