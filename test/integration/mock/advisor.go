package mock

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkprofit/backend/internal/application/adapter"
)

// Advisor answers pricing analysis and sales pitch requests with canned text.
type Advisor struct {
	Unavailable bool
}

func NewAdvisor() *Advisor {
	return &Advisor{}
}

func (a *Advisor) IsAvailable() bool {
	return !a.Unavailable
}

func (a *Advisor) AnalyzePricing(_ context.Context, request *adapter.PricingAnalysisRequest) (*adapter.PricingAnalysis, error) {
	if a.Unavailable {
		return nil, errors.New("advisor unavailable")
	}
	return &adapter.PricingAnalysis{
		Analysis:      fmt.Sprintf("Preço de R$ %.2f sustentável.", request.Breakdown.SuggestedPrice),
		Tips:          []string{"Cobre o desenho.", "Mostre o portfólio.", "Ofereça retoque."},
		IsSustainable: true,
	}, nil
}

func (a *Advisor) GenerateSalesPitch(_ context.Context, request *adapter.SalesPitchRequest) (string, error) {
	if a.Unavailable {
		return "", errors.New("advisor unavailable")
	}
	name := request.ClientName
	if name == "" {
		name = "Cliente"
	}
	return fmt.Sprintf("Olá %s! Sua %s fica em R$ %.2f.", name, request.Project.Style, request.Price), nil
}

var _ adapter.PricingAdvisor = (*Advisor)(nil)
