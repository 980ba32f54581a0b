// Package proposal contains the saved-proposal lifecycle use cases.
package proposal

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

// GetProposalInput represents the input for retrieving a proposal.
type GetProposalInput struct {
	ProposalID uuid.UUID
}

// GetProposalOutput represents the output of retrieving a proposal.
type GetProposalOutput struct {
	Proposal *entity.SavedProject
}

// GetProposalUseCase retrieves a single proposal, e.g. to load it back into the editor.
type GetProposalUseCase struct {
	proposalRepo adapter.ProposalRepository
}

// NewGetProposalUseCase creates a new GetProposalUseCase instance.
func NewGetProposalUseCase(proposalRepo adapter.ProposalRepository) *GetProposalUseCase {
	return &GetProposalUseCase{
		proposalRepo: proposalRepo,
	}
}

// Execute retrieves the proposal.
func (uc *GetProposalUseCase) Execute(ctx context.Context, input GetProposalInput) (*GetProposalOutput, error) {
	proposal, err := findProposal(ctx, uc.proposalRepo, input.ProposalID)
	if err != nil {
		return nil, err
	}

	return &GetProposalOutput{
		Proposal: proposal,
	}, nil
}

// findProposal loads a proposal and maps a missing record to a coded not-found error.
func findProposal(ctx context.Context, repo adapter.ProposalRepository, id uuid.UUID) (*entity.SavedProject, error) {
	proposal, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrProposalNotFound) {
			return nil, domainerror.NewProposalError(
				domainerror.ErrCodeProposalNotFound,
				"proposal not found",
				domainerror.ErrProposalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find proposal: %w", err)
	}
	return proposal, nil
}
