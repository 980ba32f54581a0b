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
	"github.com/inkprofit/backend/internal/domain/pricing"
)

// SaveProposalInput represents the input for saving a priced project as a proposal.
type SaveProposalInput struct {
	Project  entity.Project
	Costs    entity.CostProfile
	ClientID uuid.UUID // uuid.Nil means no client was selected
	Status   entity.ProposalStatus
}

// SaveProposalOutput represents the output of saving a proposal.
// A non-nil output tells the caller the editor can be reset.
type SaveProposalOutput struct {
	Proposal  *entity.SavedProject
	Breakdown pricing.Breakdown
}

// SaveProposalUseCase prices a project and freezes the result into a new proposal.
type SaveProposalUseCase struct {
	proposalRepo adapter.ProposalRepository
	clientRepo   adapter.ClientRepository
	clock        adapter.Clock
}

// NewSaveProposalUseCase creates a new SaveProposalUseCase instance.
func NewSaveProposalUseCase(proposalRepo adapter.ProposalRepository, clientRepo adapter.ClientRepository, clock adapter.Clock) *SaveProposalUseCase {
	return &SaveProposalUseCase{
		proposalRepo: proposalRepo,
		clientRepo:   clientRepo,
		clock:        clock,
	}
}

// Execute validates the request, snapshots the computed figures and appends the proposal.
func (uc *SaveProposalUseCase) Execute(ctx context.Context, input SaveProposalInput) (*SaveProposalOutput, error) {
	if input.ClientID == uuid.Nil {
		return nil, domainerror.NewProposalError(
			domainerror.ErrCodeClientRequired,
			"select a client to save the proposal",
			domainerror.ErrClientRequired,
		)
	}

	if !input.Status.IsValid() {
		return nil, domainerror.NewProposalError(
			domainerror.ErrCodeInvalidProposalStatus,
			"status must be 'draft' or 'completed'",
			domainerror.ErrInvalidProposalStatus,
		)
	}

	if err := input.Project.Validate(); err != nil {
		return nil, domainerror.NewProposalError(
			domainerror.ErrCodeInvalidProject,
			"invalid project",
			err,
		)
	}

	breakdown := pricing.Compute(input.Project, input.Costs)
	if err := breakdown.Validate(); err != nil {
		return nil, domainerror.NewProposalError(
			domainerror.ErrCodeInvalidProject,
			"invalid project",
			err,
		)
	}

	client, err := uc.clientRepo.FindByID(ctx, input.ClientID)
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewProposalError(
				domainerror.ErrCodeProposalClientNotFound,
				"selected client not found",
				domainerror.ErrProposalClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}

	proposal := entity.NewSavedProject(
		input.Project,
		client,
		input.Status,
		breakdown.SuggestedPrice,
		breakdown.TotalBaseCost,
		breakdown.ProfitAmount,
		uc.clock.Now(),
	)

	if err := uc.proposalRepo.Create(ctx, proposal); err != nil {
		return nil, fmt.Errorf("failed to create proposal: %w", err)
	}

	return &SaveProposalOutput{
		Proposal:  proposal,
		Breakdown: breakdown,
	}, nil
}
