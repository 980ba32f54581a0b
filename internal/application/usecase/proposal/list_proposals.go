// Package proposal contains the saved-proposal lifecycle use cases.
package proposal

import (
	"context"
	"fmt"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

// ListProposalsInput represents the input for listing proposals.
type ListProposalsInput struct {
	Status *entity.ProposalStatus // Optional
}

// ListProposalsOutput represents the output of listing proposals.
type ListProposalsOutput struct {
	Proposals []*entity.SavedProject
}

// ListProposalsUseCase handles listing open proposals and closed tattoos.
type ListProposalsUseCase struct {
	proposalRepo adapter.ProposalRepository
}

// NewListProposalsUseCase creates a new ListProposalsUseCase instance.
func NewListProposalsUseCase(proposalRepo adapter.ProposalRepository) *ListProposalsUseCase {
	return &ListProposalsUseCase{
		proposalRepo: proposalRepo,
	}
}

// Execute lists proposals, newest first.
func (uc *ListProposalsUseCase) Execute(ctx context.Context, input ListProposalsInput) (*ListProposalsOutput, error) {
	if input.Status != nil && !input.Status.IsValid() {
		return nil, domainerror.NewProposalError(
			domainerror.ErrCodeInvalidProposalStatus,
			"status must be 'draft' or 'completed'",
			domainerror.ErrInvalidProposalStatus,
		)
	}

	proposals, err := uc.proposalRepo.FindAll(ctx, adapter.ProposalFilter{Status: input.Status})
	if err != nil {
		return nil, fmt.Errorf("failed to list proposals: %w", err)
	}

	return &ListProposalsOutput{
		Proposals: proposals,
	}, nil
}
