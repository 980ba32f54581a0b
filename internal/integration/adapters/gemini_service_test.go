package adapters

import (
	"context"
	"testing"

	"github.com/google/generative-ai-go/genai"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	"github.com/inkprofit/backend/internal/domain/pricing"
)

func TestGeminiService_NotConfigured(t *testing.T) {
	svc := NewGeminiService("", "")
	assert.False(t, svc.IsAvailable())

	_, err := svc.AnalyzePricing(context.Background(), &adapter.PricingAnalysisRequest{})
	assert.Error(t, err)

	_, err = svc.GenerateSalesPitch(context.Background(), &adapter.SalesPitchRequest{})
	assert.Error(t, err)
}

func TestBuildAnalysisPrompt(t *testing.T) {
	project := entity.DefaultProject()
	costs := entity.DefaultCostProfile()
	prompt := buildAnalysisPrompt(&adapter.PricingAnalysisRequest{
		Project:   project,
		Costs:     costs,
		Breakdown: pricing.Compute(project, costs),
	})

	assert.Contains(t, prompt, "Custos Fixos Mensais: R$ 2.100,00")
	assert.Contains(t, prompt, "Estilo: Blackwork")
	assert.Contains(t, prompt, "Tempo Total (Design + Tattoo): 4 horas")
	assert.Contains(t, prompt, "Margem Aplicada: 30%")
}

func TestBuildSalesPitchPrompt(t *testing.T) {
	withName := buildSalesPitchPrompt(&adapter.SalesPitchRequest{Project: entity.DefaultProject(), Price: 675.74, ClientName: "Marina"})
	assert.Contains(t, withName, "- Cliente: Marina")
	assert.Contains(t, withName, "pelo NOME (Marina)")
	assert.Contains(t, withName, "R$ 675,74")

	anonymous := buildSalesPitchPrompt(&adapter.SalesPitchRequest{Project: entity.DefaultProject(), Price: 10})
	assert.Contains(t, anonymous, "- Cliente: o cliente")
	assert.Contains(t, anonymous, "pelo NOME (Cliente)")
}

func TestParseAnalysis(t *testing.T) {
	t.Run("fenced json", func(t *testing.T) {
		got, err := parseAnalysis("```json\n{\"analysis\":\"Preço justo.\",\"tips\":[\"a\",\" \",\"b\"],\"isSustainable\":false}\n```")
		require.NoError(t, err)
		assert.Equal(t, "Preço justo.", got.Analysis)
		assert.Equal(t, []string{"a", "b"}, got.Tips)
		assert.False(t, got.IsSustainable)
	})

	t.Run("missing flag defaults to sustainable", func(t *testing.T) {
		got, err := parseAnalysis(`{"analysis":"ok","tips":[]}`)
		require.NoError(t, err)
		assert.True(t, got.IsSustainable)
	})

	t.Run("invalid", func(t *testing.T) {
		_, err := parseAnalysis("not json")
		assert.Error(t, err)
		_, err = parseAnalysis(`{"tips":["x"]}`)
		assert.Error(t, err)
	})
}

func TestResponseText(t *testing.T) {
	_, err := responseText(nil)
	assert.Error(t, err)

	resp := &genai.GenerateContentResponse{Candidates: []*genai.Candidate{
		{Content: &genai.Content{Parts: []genai.Part{genai.Text("Olá Marina!")}}},
	}}
	text, err := responseText(resp)
	require.NoError(t, err)
	assert.Equal(t, "Olá Marina!", text)
}
