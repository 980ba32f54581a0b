// Package pricing contains the quoting use cases built on the pricing engine.
package pricing

import (
	"context"
	"log/slog"
	"strings"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	engine "github.com/inkprofit/backend/internal/domain/pricing"
)

// FallbackSalesPitch is returned when the advisor cannot write the pitch.
const FallbackSalesPitch = "Não foi possível gerar a proposta no momento."

// GenerateSalesPitchInput represents the input for writing a sales pitch.
type GenerateSalesPitchInput struct {
	Project    entity.Project
	Costs      entity.CostProfile
	ClientName string
}

// GenerateSalesPitchOutput represents the output of writing a sales pitch.
type GenerateSalesPitchOutput struct {
	Pitch    string
	Price    float64
	Fallback bool
}

// GenerateSalesPitchUseCase writes a persuasive message presenting the quote to the client.
type GenerateSalesPitchUseCase struct {
	advisor adapter.PricingAdvisor
}

// NewGenerateSalesPitchUseCase creates a new GenerateSalesPitchUseCase instance.
func NewGenerateSalesPitchUseCase(advisor adapter.PricingAdvisor) *GenerateSalesPitchUseCase {
	return &GenerateSalesPitchUseCase{
		advisor: advisor,
	}
}

// Execute prices the project and asks the advisor for a pitch at the suggested price.
func (uc *GenerateSalesPitchUseCase) Execute(ctx context.Context, input GenerateSalesPitchInput) (*GenerateSalesPitchOutput, error) {
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
	price := breakdown.SuggestedPrice
	output := &GenerateSalesPitchOutput{Price: price}

	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		slog.Warn("Sales pitch unavailable, advisor not configured")
		output.Pitch = FallbackSalesPitch
		output.Fallback = true
		return output, nil
	}

	pitch, err := uc.advisor.GenerateSalesPitch(ctx, &adapter.SalesPitchRequest{
		Project:    input.Project,
		Price:      price,
		ClientName: strings.TrimSpace(input.ClientName),
	})
	if err != nil || strings.TrimSpace(pitch) == "" {
		slog.Warn("Sales pitch unavailable, using fallback", "error", err)
		output.Pitch = FallbackSalesPitch
		output.Fallback = true
		return output, nil
	}

	output.Pitch = pitch
	return output, nil
}
