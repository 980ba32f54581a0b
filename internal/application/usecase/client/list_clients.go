// Package client contains the client registry use cases.
package client

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
)

// ListClientsInput represents the input for listing clients.
type ListClientsInput struct {
	Search string // matches name (case-insensitive) or phone
}

// ListClientsOutput represents the output of listing clients.
type ListClientsOutput struct {
	Clients []*entity.Client
}

// ListClientsUseCase lists registered clients, newest first.
type ListClientsUseCase struct {
	clientRepo adapter.ClientRepository
}

// NewListClientsUseCase creates a new ListClientsUseCase instance.
func NewListClientsUseCase(clientRepo adapter.ClientRepository) *ListClientsUseCase {
	return &ListClientsUseCase{
		clientRepo: clientRepo,
	}
}

// Execute lists clients matching the optional search term.
func (uc *ListClientsUseCase) Execute(ctx context.Context, input ListClientsInput) (*ListClientsOutput, error) {
	clients, err := uc.clientRepo.FindAll(ctx, strings.TrimSpace(input.Search))
	if err != nil {
		return nil, fmt.Errorf("failed to list clients: %w", err)
	}
	if clients == nil {
		clients = []*entity.Client{}
	}
	return &ListClientsOutput{Clients: clients}, nil
}
