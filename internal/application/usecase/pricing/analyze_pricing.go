// Package pricing contains the quoting use cases built on the pricing engine.
package pricing

import (
	"context"
	"errors"
	"log/slog"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	engine "github.com/inkprofit/backend/internal/domain/pricing"
)

// Texts returned when the advisor cannot be reached.
const (
	FallbackAnalysis = "Não foi possível conectar à IA para análise no momento. Verifique sua chave de API."
)

// FallbackTips returns the static tips shown when the advisor cannot be reached.
func FallbackTips() []string {
	return []string{
		"Revise seus custos fixos manualmente.",
		"Compare com a concorrência local.",
		"Garanta que o tempo de desenho seja cobrado.",
	}
}

var errAdvisorUnavailable = errors.New("pricing advisor not configured")

// AnalyzePricingInput represents the input for a pricing analysis.
type AnalyzePricingInput struct {
	Project entity.Project
	Costs   entity.CostProfile
}

// AnalyzePricingOutput represents the output of a pricing analysis.
type AnalyzePricingOutput struct {
	Breakdown engine.Breakdown
	Analysis  adapter.PricingAnalysis
	Fallback  bool // true when the static texts were returned
}

// AnalyzePricingUseCase asks the advisor whether a quote is sustainable.
// The advisor's answer is informational and never changes the breakdown.
type AnalyzePricingUseCase struct {
	advisor adapter.PricingAdvisor
}

// NewAnalyzePricingUseCase creates a new AnalyzePricingUseCase instance.
func NewAnalyzePricingUseCase(advisor adapter.PricingAdvisor) *AnalyzePricingUseCase {
	return &AnalyzePricingUseCase{
		advisor: advisor,
	}
}

// Execute prices the project and requests the analysis, falling back to static texts on failure.
func (uc *AnalyzePricingUseCase) Execute(ctx context.Context, input AnalyzePricingInput) (*AnalyzePricingOutput, error) {
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
	output := &AnalyzePricingOutput{Breakdown: breakdown}

	analysis, err := uc.analyze(ctx, &adapter.PricingAnalysisRequest{
		Project:   input.Project,
		Costs:     input.Costs,
		Breakdown: breakdown,
	})
	if err != nil {
		slog.Warn("Pricing analysis unavailable, using fallback", "error", err)
		output.Analysis = adapter.PricingAnalysis{
			Analysis:      FallbackAnalysis,
			Tips:          FallbackTips(),
			IsSustainable: true,
		}
		output.Fallback = true
		return output, nil
	}

	output.Analysis = *analysis
	return output, nil
}

func (uc *AnalyzePricingUseCase) analyze(ctx context.Context, request *adapter.PricingAnalysisRequest) (*adapter.PricingAnalysis, error) {
	if uc.advisor == nil || !uc.advisor.IsAvailable() {
		return nil, errAdvisorUnavailable
	}
	analysis, err := uc.advisor.AnalyzePricing(ctx, request)
	if err != nil {
		return nil, err
	}
	if analysis == nil {
		return nil, errors.New("empty analysis")
	}
	return analysis, nil
}
