// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/domain/entity"
)

// ClientRepository defines the interface for client registry persistence operations.
type ClientRepository interface {
	// Create creates a new client.
	Create(ctx context.Context, client *entity.Client) error

	// FindByID retrieves a client by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error)

	// FindAll retrieves clients whose name (case-insensitive) or phone contains search, newest first.
	FindAll(ctx context.Context, search string) ([]*entity.Client, error)

	// Update updates an existing client.
	Update(ctx context.Context, client *entity.Client) error

	// Delete removes a client. Proposals referencing it are kept.
	Delete(ctx context.Context, id uuid.UUID) error
}
