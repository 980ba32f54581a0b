// Package pricing contains the quoting use cases built on the pricing engine.
package pricing

import (
	"context"

	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	engine "github.com/inkprofit/backend/internal/domain/pricing"
)

// QuoteInput represents the input for pricing a project.
type QuoteInput struct {
	Project entity.Project
	Costs   entity.CostProfile
}

// QuoteOutput represents the output of pricing a project.
type QuoteOutput struct {
	Breakdown engine.Breakdown
}

// QuoteUseCase prices a project without persisting anything.
type QuoteUseCase struct{}

// NewQuoteUseCase creates a new QuoteUseCase instance.
func NewQuoteUseCase() *QuoteUseCase {
	return &QuoteUseCase{}
}

// Execute validates the project and runs the pricing engine.
func (uc *QuoteUseCase) Execute(_ context.Context, input QuoteInput) (*QuoteOutput, error) {
	if err := input.Project.Validate(); err != nil {
		return nil, domainerror.NewProposalError(
			domainerror.ErrCodeInvalidProject,
			"invalid project",
			err,
		)
	}

	breakdown := engine.Compute(input.Project, input.Costs)
	if err := breakdown.Validate(); err != nil {
		return nil, invalidProject(err)
	}

	return &QuoteOutput{
		Breakdown: breakdown,
	}, nil
}

func invalidProject(err error) error {
	return domainerror.NewProposalError(
		domainerror.ErrCodeInvalidProject,
		"invalid project",
		err,
	)
}
