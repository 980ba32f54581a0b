// Package adapters provides implementations for external service integrations.
package adapters

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/valueobject"
)

const defaultGeminiModel = "gemini-2.5-flash"

// GeminiService implements the PricingAdvisor using Google Gemini.
type GeminiService struct {
	apiKey    string
	modelName string
}

// NewGeminiService creates a new Gemini service instance.
func NewGeminiService(apiKey, modelName string) *GeminiService {
	if modelName == "" {
		modelName = defaultGeminiModel
	}
	return &GeminiService{
		apiKey:    apiKey,
		modelName: modelName,
	}
}

// IsAvailable checks if the Gemini service is available and properly configured.
func (s *GeminiService) IsAvailable() bool {
	return s.apiKey != ""
}

// AnalyzePricing asks Gemini whether the quote is sustainable and for three tips.
func (s *GeminiService) AnalyzePricing(ctx context.Context, request *adapter.PricingAnalysisRequest) (*adapter.PricingAnalysis, error) {
	if !s.IsAvailable() {
		return nil, fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return nil, fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.ResponseMIMEType = "application/json"
	model.ResponseSchema = &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"analysis":      {Type: genai.TypeString},
			"tips":          {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
			"isSustainable": {Type: genai.TypeBoolean},
		},
		Required: []string{"analysis", "tips", "isSustainable"},
	}

	resp, err := model.GenerateContent(ctx, genai.Text(buildAnalysisPrompt(request)))
	if err != nil {
		return nil, fmt.Errorf("failed to generate content: %w", err)
	}

	text, err := responseText(resp)
	if err != nil {
		return nil, err
	}

	analysis, err := parseAnalysis(text)
	if err != nil {
		return nil, fmt.Errorf("failed to parse response: %w", err)
	}
	return analysis, nil
}

// GenerateSalesPitch asks Gemini for a short WhatsApp message presenting the quote.
func (s *GeminiService) GenerateSalesPitch(ctx context.Context, request *adapter.SalesPitchRequest) (string, error) {
	if !s.IsAvailable() {
		return "", fmt.Errorf("gemini service is not configured")
	}

	client, err := genai.NewClient(ctx, option.WithAPIKey(s.apiKey))
	if err != nil {
		return "", fmt.Errorf("failed to create gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(s.modelName)
	model.SetTemperature(0.8)

	resp, err := model.GenerateContent(ctx, genai.Text(buildSalesPitchPrompt(request)))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}

	return responseText(resp)
}

// buildAnalysisPrompt creates the consultant prompt for a priced project.
func buildAnalysisPrompt(request *adapter.PricingAnalysisRequest) string {
	p := request.Project
	b := request.Breakdown

	var sb strings.Builder
	sb.WriteString("Atue como um consultor de negócios experiente para estúdios de tatuagem.\n")
	sb.WriteString("Analise os seguintes dados de precificação de um projeto de tatuagem:\n\n")

	sb.WriteString("CONTEXTO DO ESTÚDIO:\n")
	sb.WriteString(fmt.Sprintf("- Custos Fixos Mensais: %s\n", valueobject.NewMoney(request.Costs.MonthlyFixedExpenses())))
	sb.WriteString(fmt.Sprintf("- Custo Fixo por Hora (Calculado): %s\n\n", valueobject.NewMoney(b.OverheadPerHour)))

	sb.WriteString("DETALHES DO PROJETO:\n")
	sb.WriteString(fmt.Sprintf("- Estilo: %s\n", p.Style))
	sb.WriteString(fmt.Sprintf("- Complexidade: %s\n", p.Complexity))
	sb.WriteString(fmt.Sprintf("- Parte do Corpo: %s\n", p.BodyPart))
	sb.WriteString(fmt.Sprintf("- Dimensões: %gcm (L) x %gcm (A)\n", p.WidthCm, p.HeightCm))
	sb.WriteString(fmt.Sprintf("- Tempo Total (Design + Tattoo): %g horas\n", p.TotalHours()))
	sb.WriteString(fmt.Sprintf("- Custo Materiais: %s\n\n", valueobject.NewMoney(p.MaterialCost)))

	sb.WriteString("RESULTADO FINANCEIRO:\n")
	sb.WriteString(fmt.Sprintf("- Custo Base Total (para o tatuador): %s\n", valueobject.NewMoney(b.TotalBaseCost)))
	sb.WriteString(fmt.Sprintf("- Preço Sugerido (Venda): %s\n", valueobject.NewMoney(b.SuggestedPrice)))
	sb.WriteString(fmt.Sprintf("- Lucro Líquido: %s\n", valueobject.NewMoney(b.ProfitAmount)))
	sb.WriteString(fmt.Sprintf("- Margem Aplicada: %g%%\n\n", p.ProfitMarginPercent))

	sb.WriteString(`Sua tarefa é retornar um JSON com:
1. "analysis": uma análise curta (máximo 2 parágrafos) sobre se esse preço é sustentável e competitivo.
2. "tips": uma lista de 3 dicas práticas para melhorar a lucratividade ou vender esse valor ao cliente.
3. "isSustainable": um booleano indicando se o negócio parece sustentável com esses números.
`)

	return sb.String()
}

// buildSalesPitchPrompt creates the copywriting prompt for a client message.
func buildSalesPitchPrompt(request *adapter.SalesPitchRequest) string {
	p := request.Project
	client, greeting := "o cliente", "Cliente"
	if request.ClientName != "" {
		client, greeting = request.ClientName, request.ClientName
	}

	var sb strings.Builder
	sb.WriteString("Escreva uma proposta comercial persuasiva para um cliente de tatuagem (mensagem para WhatsApp).\n\n")
	sb.WriteString("DADOS:\n")
	sb.WriteString(fmt.Sprintf("- Cliente: %s\n", client))
	sb.WriteString(fmt.Sprintf("- Tatuagem: %s, %s\n", p.Style, p.BodyPart))
	sb.WriteString(fmt.Sprintf("- Tamanho: %gcm x %gcm\n", p.WidthCm, p.HeightCm))
	sb.WriteString(fmt.Sprintf("- Valor do Orçamento: %s\n", valueobject.NewMoney(request.Price)))
	sb.WriteString("- Diferenciais: Tatuagem exclusiva, materiais de alta qualidade, biossegurança.\n\n")
	sb.WriteString("OBJETIVO:\n")
	sb.WriteString("Crie um texto curto, amigável mas profissional, justificando o valor e criando desejo. ")
	sb.WriteString("Use gatilhos mentais de exclusividade e escassez de agenda.\n")
	sb.WriteString(fmt.Sprintf("IMPORTANTE: Comece saudando o cliente pelo NOME (%s).\n", greeting))
	sb.WriteString("Não use hashtags. O tom deve ser \"Artistico e Premium\".\n")

	return sb.String()
}

// geminiAnalysis represents the raw JSON answer from Gemini.
type geminiAnalysis struct {
	Analysis      string   `json:"analysis"`
	Tips          []string `json:"tips"`
	IsSustainable *bool    `json:"isSustainable"`
}

// parseAnalysis decodes the JSON answer, tolerating markdown code fences.
func parseAnalysis(text string) (*adapter.PricingAnalysis, error) {
	text = strings.TrimSpace(text)
	text = strings.TrimPrefix(text, "```json")
	text = strings.TrimPrefix(text, "```")
	text = strings.TrimSuffix(text, "```")
	text = strings.TrimSpace(text)

	var raw geminiAnalysis
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return nil, fmt.Errorf("failed to parse JSON response: %w", err)
	}
	if strings.TrimSpace(raw.Analysis) == "" {
		return nil, fmt.Errorf("analysis missing from response")
	}

	sustainable := true
	if raw.IsSustainable != nil {
		sustainable = *raw.IsSustainable
	}

	tips := make([]string, 0, len(raw.Tips))
	for _, tip := range raw.Tips {
		if tip = strings.TrimSpace(tip); tip != "" {
			tips = append(tips, tip)
		}
	}

	return &adapter.PricingAnalysis{
		Analysis:      raw.Analysis,
		Tips:          tips,
		IsSustainable: sustainable,
	}, nil
}

// responseText returns the first text part of the first candidate.
func responseText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("empty response from gemini")
	}

	for _, part := range resp.Candidates[0].Content.Parts {
		if text, ok := part.(genai.Text); ok && strings.TrimSpace(string(text)) != "" {
			return string(text), nil
		}
	}

	return "", fmt.Errorf("no text content in response")
}
