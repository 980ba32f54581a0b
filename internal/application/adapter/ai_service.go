// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/inkprofit/backend/internal/domain/entity"
	"github.com/inkprofit/backend/internal/domain/pricing"
)

// PricingAnalysisRequest is a read-only copy of a quote handed to the AI advisor.
type PricingAnalysisRequest struct {
	Project   entity.Project
	Costs     entity.CostProfile
	Breakdown pricing.Breakdown
}

// PricingAnalysis is the advisor's opinion on whether a quote is sustainable.
type PricingAnalysis struct {
	Analysis      string
	Tips          []string
	IsSustainable bool
}

// SalesPitchRequest carries the data used to write a persuasive quote message.
type SalesPitchRequest struct {
	Project    entity.Project
	Price      float64
	ClientName string // optional
}

// PricingAdvisor defines the interface for generative-text enrichment of quotes.
// Its output never feeds back into pricing or proposal state.
type PricingAdvisor interface {
	// AnalyzePricing returns a short sustainability analysis and tips.
	AnalyzePricing(ctx context.Context, request *PricingAnalysisRequest) (*PricingAnalysis, error)

	// GenerateSalesPitch returns free text addressed to the client.
	GenerateSalesPitch(ctx context.Context, request *SalesPitchRequest) (string, error)

	// IsAvailable checks if the advisor is properly configured.
	IsAvailable() bool
}
