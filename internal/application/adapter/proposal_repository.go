// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/domain/entity"
)

// ProposalFilter narrows a proposal listing. A nil Status lists every proposal.
type ProposalFilter struct {
	Status *entity.ProposalStatus
}

// ProposalRepository defines the interface for saved proposal persistence operations.
type ProposalRepository interface {
	// Create appends a new proposal to the collection.
	Create(ctx context.Context, proposal *entity.SavedProject) error

	// FindByID retrieves a proposal by its ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.SavedProject, error)

	// FindAll retrieves proposals matching the filter, newest first.
	FindAll(ctx context.Context, filter ProposalFilter) ([]*entity.SavedProject, error)

	// CloseDraft moves a draft proposal to completed in a single conditional write.
	// It returns ErrProposalAlreadyCompleted when the proposal is no longer a draft
	// and ErrProposalNotFound when it does not exist.
	CloseDraft(ctx context.Context, id uuid.UUID) error

	// Delete removes a proposal permanently.
	Delete(ctx context.Context, id uuid.UUID) error
}
