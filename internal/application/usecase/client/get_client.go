// Package client contains the client registry use cases.
package client

import (
	"context"

	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
)

// GetClientInput represents the input for retrieving a client.
type GetClientInput struct {
	ClientID uuid.UUID
}

// GetClientOutput represents the output of retrieving a client.
type GetClientOutput struct {
	Client *entity.Client
}

// GetClientUseCase retrieves a single client.
type GetClientUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewGetClientUseCase creates a new GetClientUseCase instance.
func NewGetClientUseCase(clientRepo adapter.ClientRepository) *GetClientUseCase {
	return &GetClientUseCase{
		clientRepo: clientRepo,
	}
}

// Execute retrieves the client.
func (uc *GetClientUseCase) Execute(ctx context.Context, input GetClientInput) (*GetClientOutput, error) {
	client, err := findClient(ctx, uc.clientRepo, input.ClientID)
	if err != nil {
		return nil, err
	}
	return &GetClientOutput{Client: client}, nil
}
