// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/inkprofit/backend/internal/application/usecase/pricing"
	"github.com/inkprofit/backend/internal/domain/entity"
	engine "github.com/inkprofit/backend/internal/domain/pricing"
	"github.com/inkprofit/backend/internal/domain/valueobject"
)

// ProjectRequest represents a tattoo project as edited by the caller.
type ProjectRequest struct {
	Style               string  `json:"style" binding:"required"`
	Complexity          string  `json:"complexity" binding:"required"`
	BodyPart            string  `json:"body_part"`
	WidthCm             float64 `json:"width_cm"`
	HeightCm            float64 `json:"height_cm"`
	Sessions            int     `json:"sessions"`
	DesignTimeHours     float64 `json:"design_time_hours"`
	TattooTimeHours     float64 `json:"tattoo_time_hours"`
	MaterialCost        float64 `json:"material_cost"`
	HourlyRate          float64 `json:"hourly_rate"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
	DiscountAmount      float64 `json:"discount_amount"`
	DiscountType        string  `json:"discount_type"`
}

// ProjectResponse represents a tattoo project in API responses.
type ProjectResponse struct {
	Style               string  `json:"style"`
	Complexity          string  `json:"complexity"`
	BodyPart            string  `json:"body_part"`
	WidthCm             float64 `json:"width_cm"`
	HeightCm            float64 `json:"height_cm"`
	Sessions            int     `json:"sessions"`
	DesignTimeHours     float64 `json:"design_time_hours"`
	TattooTimeHours     float64 `json:"tattoo_time_hours"`
	MaterialCost        float64 `json:"material_cost"`
	HourlyRate          float64 `json:"hourly_rate"`
	ProfitMarginPercent float64 `json:"profit_margin_percent"`
	DiscountAmount      float64 `json:"discount_amount"`
	DiscountType        string  `json:"discount_type"`
}

// CategoryResponse is one slice of the breakdown chart.
type CategoryResponse struct {
	Key   string  `json:"key"`
	Name  string  `json:"name"`
	Value float64 `json:"value"`
	Color string  `json:"color"`
}

// BreakdownResponse represents a priced quote. Money is rounded to cents.
type BreakdownResponse struct {
	TotalMonthlyHours    float64            `json:"total_monthly_hours"`
	MonthlyFixedExpenses float64            `json:"monthly_fixed_expenses"`
	OverheadPerHour      float64            `json:"overhead_per_hour"`
	TotalHours           float64            `json:"total_hours"`
	LaborCost            float64            `json:"labor_cost"`
	TotalOverheadCost    float64            `json:"total_overhead_cost"`
	MaterialCost         float64            `json:"material_cost"`
	TotalBaseCost        float64            `json:"total_base_cost"`
	MarginMultiplier     float64            `json:"margin_multiplier"`
	StyleMultiplier      float64            `json:"style_multiplier"`
	ComplexityMultiplier float64            `json:"complexity_multiplier"`
	GrossPrice           float64            `json:"gross_price"`
	DiscountValue        float64            `json:"discount_value"`
	SuggestedPrice       float64            `json:"suggested_price"`
	ProfitAmount         float64            `json:"profit_amount"`
	FormattedPrice       string             `json:"formatted_price"`
	Categories           []CategoryResponse `json:"categories"`
}

// AnalysisResponse represents the advisor's opinion on a quote.
type AnalysisResponse struct {
	Breakdown     BreakdownResponse `json:"breakdown"`
	Analysis      string            `json:"analysis"`
	Tips          []string          `json:"tips"`
	IsSustainable bool              `json:"is_sustainable"`
	Fallback      bool              `json:"fallback"`
}

// SalesPitchRequest represents the request body for writing a sales pitch.
type SalesPitchRequest struct {
	Project    ProjectRequest `json:"project" binding:"required"`
	ClientName string         `json:"client_name"`
}

// SalesPitchResponse represents a generated sales pitch.
type SalesPitchResponse struct {
	Pitch    string  `json:"pitch"`
	Price    float64 `json:"price"`
	Fallback bool    `json:"fallback"`
}

// StyleOptionResponse is a selectable style and its multiplier.
type StyleOptionResponse struct {
	Style      string  `json:"style"`
	Multiplier float64 `json:"multiplier"`
}

// ComplexityOptionResponse is a selectable complexity level and its multiplier.
type ComplexityOptionResponse struct {
	Complexity string  `json:"complexity"`
	Multiplier float64 `json:"multiplier"`
}

// CatalogResponse lists everything an editor needs to build a project.
type CatalogResponse struct {
	Styles             []StyleOptionResponse      `json:"styles"`
	Complexities       []ComplexityOptionResponse `json:"complexities"`
	BodyParts          []string                   `json:"body_parts"`
	DiscountTypes      []string                   `json:"discount_types"`
	DefaultProject     ProjectResponse            `json:"default_project"`
	DefaultCostProfile CostProfileResponse        `json:"default_cost_profile"`
}

// ToProject converts the request to a domain Project. An empty discount type means fixed.
func (r ProjectRequest) ToProject() entity.Project {
	discountType := entity.DiscountType(r.DiscountType)
	if discountType == "" {
		discountType = entity.DiscountTypeFixed
	}

	return entity.Project{
		Style:               entity.Style(r.Style),
		Complexity:          entity.Complexity(r.Complexity),
		BodyPart:            r.BodyPart,
		WidthCm:             r.WidthCm,
		HeightCm:            r.HeightCm,
		Sessions:            r.Sessions,
		DesignTimeHours:     r.DesignTimeHours,
		TattooTimeHours:     r.TattooTimeHours,
		MaterialCost:        r.MaterialCost,
		HourlyRate:          r.HourlyRate,
		ProfitMarginPercent: r.ProfitMarginPercent,
		DiscountAmount:      r.DiscountAmount,
		DiscountType:        discountType,
	}
}

// ToProjectResponse converts a domain Project to a ProjectResponse DTO.
func ToProjectResponse(p entity.Project) ProjectResponse {
	return ProjectResponse{
		Style:               string(p.Style),
		Complexity:          string(p.Complexity),
		BodyPart:            p.BodyPart,
		WidthCm:             p.WidthCm,
		HeightCm:            p.HeightCm,
		Sessions:            p.Sessions,
		DesignTimeHours:     p.DesignTimeHours,
		TattooTimeHours:     p.TattooTimeHours,
		MaterialCost:        p.MaterialCost,
		HourlyRate:          p.HourlyRate,
		ProfitMarginPercent: p.ProfitMarginPercent,
		DiscountAmount:      p.DiscountAmount,
		DiscountType:        string(p.DiscountType),
	}
}

// ToBreakdownResponse converts a pricing breakdown to a BreakdownResponse DTO.
func ToBreakdownResponse(b engine.Breakdown) BreakdownResponse {
	categories := make([]CategoryResponse, len(b.Categories))
	for i, c := range b.Categories {
		categories[i] = CategoryResponse{
			Key:   c.Key,
			Name:  c.Name,
			Value: valueobject.RoundCents(c.Value),
			Color: c.Color,
		}
	}

	return BreakdownResponse{
		TotalMonthlyHours:    b.TotalMonthlyHours,
		MonthlyFixedExpenses: valueobject.RoundCents(b.MonthlyFixedExpenses),
		OverheadPerHour:      valueobject.RoundCents(b.OverheadPerHour),
		TotalHours:           b.TotalHours,
		LaborCost:            valueobject.RoundCents(b.LaborCost),
		TotalOverheadCost:    valueobject.RoundCents(b.TotalOverheadCost),
		MaterialCost:         valueobject.RoundCents(b.MaterialCost),
		TotalBaseCost:        valueobject.RoundCents(b.TotalBaseCost),
		MarginMultiplier:     b.MarginMultiplier,
		StyleMultiplier:      b.StyleMultiplier,
		ComplexityMultiplier: b.ComplexityMultiplier,
		GrossPrice:           valueobject.RoundCents(b.GrossPrice),
		DiscountValue:        valueobject.RoundCents(b.DiscountValue),
		SuggestedPrice:       valueobject.RoundCents(b.SuggestedPrice),
		ProfitAmount:         valueobject.RoundCents(b.ProfitAmount),
		FormattedPrice:       valueobject.NewMoney(b.SuggestedPrice).String(),
		Categories:           categories,
	}
}

// ToAnalysisResponse converts an analysis output to an AnalysisResponse DTO.
func ToAnalysisResponse(output *pricing.AnalyzePricingOutput) AnalysisResponse {
	tips := output.Analysis.Tips
	if tips == nil {
		tips = []string{}
	}

	return AnalysisResponse{
		Breakdown:     ToBreakdownResponse(output.Breakdown),
		Analysis:      output.Analysis.Analysis,
		Tips:          tips,
		IsSustainable: output.Analysis.IsSustainable,
		Fallback:      output.Fallback,
	}
}

// ToSalesPitchResponse converts a sales pitch output to a SalesPitchResponse DTO.
func ToSalesPitchResponse(output *pricing.GenerateSalesPitchOutput) SalesPitchResponse {
	return SalesPitchResponse{
		Pitch:    output.Pitch,
		Price:    valueobject.RoundCents(output.Price),
		Fallback: output.Fallback,
	}
}

// ToCatalogResponse converts the catalog output to a CatalogResponse DTO.
func ToCatalogResponse(output *pricing.GetCatalogOutput) CatalogResponse {
	styles := make([]StyleOptionResponse, len(output.Styles))
	for i, s := range output.Styles {
		styles[i] = StyleOptionResponse{Style: string(s.Style), Multiplier: s.Multiplier}
	}

	complexities := make([]ComplexityOptionResponse, len(output.Complexities))
	for i, c := range output.Complexities {
		complexities[i] = ComplexityOptionResponse{Complexity: string(c.Complexity), Multiplier: c.Multiplier}
	}

	return CatalogResponse{
		Styles:             styles,
		Complexities:       complexities,
		BodyParts:          output.BodyParts,
		DiscountTypes:      []string{string(entity.DiscountTypeFixed), string(entity.DiscountTypePercentage)},
		DefaultProject:     ToProjectResponse(output.DefaultProject),
		DefaultCostProfile: ToCostProfileResponse(output.DefaultCostProfile, true),
	}
}
