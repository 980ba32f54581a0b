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

// CloseProposalInput represents the input for closing a proposal.
type CloseProposalInput struct {
	ProposalID uuid.UUID
}

// CloseProposalOutput represents the output of closing a proposal.
type CloseProposalOutput struct {
	Proposal *entity.SavedProject
}

// CloseProposalUseCase moves a draft proposal to completed.
type CloseProposalUseCase struct {
	proposalRepo adapter.ProposalRepository
}

// NewCloseProposalUseCase creates a new CloseProposalUseCase instance.
func NewCloseProposalUseCase(proposalRepo adapter.ProposalRepository) *CloseProposalUseCase {
	return &CloseProposalUseCase{
		proposalRepo: proposalRepo,
	}
}

// Execute closes the proposal. Only the status changes; frozen figures are untouched.
func (uc *CloseProposalUseCase) Execute(ctx context.Context, input CloseProposalInput) (*CloseProposalOutput, error) {
	proposal, err := findProposal(ctx, uc.proposalRepo, input.ProposalID)
	if err != nil {
		return nil, err
	}

	if err := proposal.Close(); err != nil {
		return nil, alreadyCompleted(err)
	}

	// A concurrent close may have won since the read; storage settles it.
	if err := uc.proposalRepo.CloseDraft(ctx, proposal.ID); err != nil {
		switch {
		case errors.Is(err, domainerror.ErrProposalAlreadyCompleted):
			return nil, alreadyCompleted(err)
		case errors.Is(err, domainerror.ErrProposalNotFound):
			return nil, domainerror.NewProposalError(
				domainerror.ErrCodeProposalNotFound,
				"proposal not found",
				err,
			)
		}
		return nil, fmt.Errorf("failed to close proposal: %w", err)
	}

	return &CloseProposalOutput{
		Proposal: proposal,
	}, nil
}

func alreadyCompleted(err error) error {
	return domainerror.NewProposalError(
		domainerror.ErrCodeProposalAlreadyCompleted,
		"proposal is already completed",
		err,
	)
}
