// Package proposal contains the saved-proposal lifecycle use cases.
package proposal

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/application/adapter"
)

// DeleteProposalInput represents the input for proposal deletion.
type DeleteProposalInput struct {
	ProposalID uuid.UUID
}

// DeleteProposalOutput represents the output of proposal deletion.
type DeleteProposalOutput struct {
	Success      bool
	WasCompleted bool
}

// DeleteProposalUseCase handles proposal deletion logic.
type DeleteProposalUseCase struct {
	proposalRepo adapter.ProposalRepository
}

// NewDeleteProposalUseCase creates a new DeleteProposalUseCase instance.
func NewDeleteProposalUseCase(proposalRepo adapter.ProposalRepository) *DeleteProposalUseCase {
	return &DeleteProposalUseCase{
		proposalRepo: proposalRepo,
	}
}

// Execute removes the proposal whatever its status. Deleting a completed
// proposal also removes it from the revenue reports; WasCompleted lets the caller log that.
func (uc *DeleteProposalUseCase) Execute(ctx context.Context, input DeleteProposalInput) (*DeleteProposalOutput, error) {
	proposal, err := findProposal(ctx, uc.proposalRepo, input.ProposalID)
	if err != nil {
		return nil, err
	}

	if err := uc.proposalRepo.Delete(ctx, proposal.ID); err != nil {
		return nil, fmt.Errorf("failed to delete proposal: %w", err)
	}

	return &DeleteProposalOutput{
		Success:      true,
		WasCompleted: proposal.IsCompleted(),
	}, nil
}
