// Package client contains the client registry use cases.
package client

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/application/adapter"
)

// DeleteClientInput represents the input for client deletion.
type DeleteClientInput struct {
	ClientID uuid.UUID
}

// DeleteClientOutput represents the output of client deletion.
type DeleteClientOutput struct {
	Success bool
}

// DeleteClientUseCase removes a client from the registry. Proposals are left untouched.
type DeleteClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewDeleteClientUseCase creates a new DeleteClientUseCase instance.
func NewDeleteClientUseCase(clientRepo adapter.ClientRepository) *DeleteClientUseCase {
	return &DeleteClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute deletes the client.
func (uc *DeleteClientUseCase) Execute(ctx context.Context, input DeleteClientInput) (*DeleteClientOutput, error) {
	client, err := findClient(ctx, uc.clientRepo, input.ClientID)
	if err != nil {
		return nil, err
	}

	if err := uc.clientRepo.Delete(ctx, client.ID); err != nil {
		return nil, fmt.Errorf("failed to delete client: %w", err)
	}

	return &DeleteClientOutput{
		Success: true,
	}, nil
}
