package pricing

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	engine "github.com/inkprofit/backend/internal/domain/pricing"
)

type stubAdvisor struct {
	available   bool
	analysis    *adapter.PricingAnalysis
	pitch       string
	err         error
	lastRequest *adapter.PricingAnalysisRequest
	lastPitch   *adapter.SalesPitchRequest
}

func (s *stubAdvisor) AnalyzePricing(_ context.Context, r *adapter.PricingAnalysisRequest) (*adapter.PricingAnalysis, error) {
	s.lastRequest = r
	return s.analysis, s.err
}

func (s *stubAdvisor) GenerateSalesPitch(_ context.Context, r *adapter.SalesPitchRequest) (string, error) {
	s.lastPitch = r
	return s.pitch, s.err
}

func (s *stubAdvisor) IsAvailable() bool { return s.available }

func TestQuote(t *testing.T) {
	uc := NewQuoteUseCase()

	out, err := uc.Execute(context.Background(), QuoteInput{Project: entity.DefaultProject(), Costs: entity.DefaultCostProfile()})
	require.NoError(t, err)
	assert.Equal(t, engine.Compute(entity.DefaultProject(), entity.DefaultCostProfile()), out.Breakdown)

	bad := entity.DefaultProject()
	bad.Complexity = "Impossível"
	_, err = uc.Execute(context.Background(), QuoteInput{Project: bad, Costs: entity.DefaultCostProfile()})
	assert.ErrorIs(t, err, domainerror.ErrInvalidProject)
	assert.True(t, domainerror.IsValidation(err))
}

func TestOverflowingProjectIsRejected(t *testing.T) {
	huge := entity.DefaultProject()
	huge.HourlyRate = 1e308
	costs := entity.DefaultCostProfile()
	advisor := &stubAdvisor{available: true, pitch: "Olá!"}

	_, err := NewQuoteUseCase().Execute(context.Background(), QuoteInput{Project: huge, Costs: costs})
	assert.ErrorIs(t, err, domainerror.ErrInvalidProject)
	assert.True(t, domainerror.IsValidation(err))

	_, err = NewAnalyzePricingUseCase(advisor).Execute(context.Background(), AnalyzePricingInput{Project: huge, Costs: costs})
	assert.ErrorIs(t, err, domainerror.ErrInvalidProject)
	assert.Nil(t, advisor.lastRequest)

	_, err = NewGenerateSalesPitchUseCase(advisor).Execute(context.Background(), GenerateSalesPitchInput{Project: huge, Costs: costs})
	assert.ErrorIs(t, err, domainerror.ErrInvalidProject)
	assert.Nil(t, advisor.lastPitch)
}

func TestAnalyzePricing(t *testing.T) {
	in := AnalyzePricingInput{Project: entity.DefaultProject(), Costs: entity.DefaultCostProfile()}
	want := engine.Compute(in.Project, in.Costs)

	t.Run("advisor answer", func(t *testing.T) {
		advisor := &stubAdvisor{available: true, analysis: &adapter.PricingAnalysis{
			Analysis: "Preço saudável.", Tips: []string{"a", "b", "c"}, IsSustainable: false,
		}}

		out, err := NewAnalyzePricingUseCase(advisor).Execute(context.Background(), in)
		require.NoError(t, err)
		assert.False(t, out.Fallback)
		assert.Equal(t, "Preço saudável.", out.Analysis.Analysis)
		assert.False(t, out.Analysis.IsSustainable)
		assert.Equal(t, want, out.Breakdown)
		require.NotNil(t, advisor.lastRequest)
		assert.Equal(t, want.SuggestedPrice, advisor.lastRequest.Breakdown.SuggestedPrice)
	})

	tests := []struct {
		name    string
		advisor adapter.PricingAdvisor
	}{
		{"nil advisor", nil},
		{"not configured", &stubAdvisor{available: false}},
		{"advisor error", &stubAdvisor{available: true, err: errors.New("quota exceeded")}},
		{"empty answer", &stubAdvisor{available: true}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := NewAnalyzePricingUseCase(tt.advisor).Execute(context.Background(), in)
			require.NoError(t, err)
			assert.True(t, out.Fallback)
			assert.Equal(t, FallbackAnalysis, out.Analysis.Analysis)
			assert.Equal(t, FallbackTips(), out.Analysis.Tips)
			assert.True(t, out.Analysis.IsSustainable)
			assert.Equal(t, want, out.Breakdown)
		})
	}
}

func TestGenerateSalesPitch(t *testing.T) {
	in := GenerateSalesPitchInput{Project: entity.DefaultProject(), Costs: entity.DefaultCostProfile(), ClientName: " Marina "}
	price := engine.Compute(in.Project, in.Costs).SuggestedPrice

	advisor := &stubAdvisor{available: true, pitch: "Olá Marina!"}
	out, err := NewGenerateSalesPitchUseCase(advisor).Execute(context.Background(), in)
	require.NoError(t, err)
	assert.Equal(t, "Olá Marina!", out.Pitch)
	assert.False(t, out.Fallback)
	assert.Equal(t, price, advisor.lastPitch.Price)
	assert.Equal(t, "Marina", advisor.lastPitch.ClientName)

	out, err = NewGenerateSalesPitchUseCase(&stubAdvisor{available: true, err: errors.New("timeout")}).Execute(context.Background(), in)
	require.NoError(t, err)
	assert.True(t, out.Fallback)
	assert.Equal(t, FallbackSalesPitch, out.Pitch)
	assert.Equal(t, price, out.Price)
}

func TestGetCatalog(t *testing.T) {
	out := NewGetCatalogUseCase().Execute()

	require.Len(t, out.Styles, len(entity.Styles))
	assert.Equal(t, entity.StyleFineLine, out.Styles[0].Style)
	assert.InDelta(t, 1.1, out.Styles[0].Multiplier, 1e-9)
	require.Len(t, out.Complexities, 4)
	assert.InDelta(t, 1.5, out.Complexities[3].Multiplier, 1e-9)
	assert.Contains(t, out.BodyParts, "Antebraço")
	assert.Equal(t, entity.DefaultProject(), out.DefaultProject)

	out.BodyParts[0] = "changed"
	assert.Equal(t, "Antebraço", entity.BodyParts[0])
}
