// Package pricing computes the suggested sale price of a tattoo project.
//
// Compute is pure and total: every numeric input has a defined result, so it
// never returns an error. Values are not rounded; formatting is left to callers.
package pricing

import (
	"fmt"
	"math"

	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

// Category keys of the breakdown chart.
const (
	CategoryLabor         = "labor"
	CategoryFixedOverhead = "fixed_overhead"
	CategoryMaterials     = "materials"
	CategoryNetProfit     = "net_profit"
)

// Category is one slice of the price breakdown chart.
type Category struct {
	Key   string
	Name  string
	Value float64
	Color string
}

// Breakdown is the itemized result of pricing a project against a cost profile.
type Breakdown struct {
	TotalMonthlyHours    float64
	MonthlyFixedExpenses float64
	OverheadPerHour      float64
	TotalHours           float64
	LaborCost            float64
	TotalOverheadCost    float64
	MaterialCost         float64
	TotalBaseCost        float64
	MarginMultiplier     float64
	StyleMultiplier      float64
	ComplexityMultiplier float64
	GrossPrice           float64 // before discount
	DiscountValue        float64
	SuggestedPrice       float64 // after discount, never negative
	ProfitAmount         float64 // negative when the quote is a loss
	Categories           []Category
}

// Compute prices a project using the studio's cost profile.
func Compute(project entity.Project, costs entity.CostProfile) Breakdown {
	totalMonthlyHours := costs.MonthlyHours()
	monthlyFixedExpenses := costs.MonthlyFixedExpenses()

	overheadPerHour := 0.0
	if totalMonthlyHours > 0 {
		overheadPerHour = monthlyFixedExpenses / totalMonthlyHours
	}

	totalHours := project.TotalHours()
	laborCost := totalHours * project.HourlyRate
	totalOverheadCost := totalHours * overheadPerHour
	totalBaseCost := laborCost + totalOverheadCost + project.MaterialCost

	marginMultiplier := 1 + project.ProfitMarginPercent/100
	styleMultiplier := StyleMultiplier(project.Style)
	complexityMultiplier := ComplexityMultiplier(project.Complexity)

	grossPrice := totalBaseCost * marginMultiplier * styleMultiplier * complexityMultiplier

	// Fixed discounts are not capped at the gross price.
	discountValue := project.DiscountAmount
	if project.DiscountType == entity.DiscountTypePercentage {
		discountValue = grossPrice * project.DiscountAmount / 100
	}

	suggestedPrice := math.Max(0, grossPrice-discountValue)
	profitAmount := suggestedPrice - totalBaseCost

	return Breakdown{
		TotalMonthlyHours:    totalMonthlyHours,
		MonthlyFixedExpenses: monthlyFixedExpenses,
		OverheadPerHour:      overheadPerHour,
		TotalHours:           totalHours,
		LaborCost:            laborCost,
		TotalOverheadCost:    totalOverheadCost,
		MaterialCost:         project.MaterialCost,
		TotalBaseCost:        totalBaseCost,
		MarginMultiplier:     marginMultiplier,
		StyleMultiplier:      styleMultiplier,
		ComplexityMultiplier: complexityMultiplier,
		GrossPrice:           grossPrice,
		DiscountValue:        discountValue,
		SuggestedPrice:       suggestedPrice,
		ProfitAmount:         profitAmount,
		Categories: []Category{
			{Key: CategoryLabor, Name: "Mão de Obra", Value: laborCost, Color: "#3b82f6"},
			{Key: CategoryFixedOverhead, Name: "Custos Fixos", Value: totalOverheadCost, Color: "#ef4444"},
			{Key: CategoryMaterials, Name: "Materiais", Value: project.MaterialCost, Color: "#eab308"},
			// Chart only: losses are hidden here, ProfitAmount keeps the sign.
			{Key: CategoryNetProfit, Name: "Lucro Líquido", Value: math.Max(0, profitAmount), Color: "#10b981"},
		},
	}
}

// Category returns the chart category with the given key.
func (b Breakdown) Category(key string) (Category, bool) {
	for _, c := range b.Categories {
		if c.Key == key {
			return c, true
		}
	}
	return Category{}, false
}

// Validate reports whether every figure is a finite number. Huge inputs pass
// entity validation but can overflow the products to +Inf and the profit to NaN.
func (b Breakdown) Validate() error {
	figures := []struct {
		name  string
		value float64
	}{
		{"overhead_per_hour", b.OverheadPerHour},
		{"labor_cost", b.LaborCost},
		{"total_overhead_cost", b.TotalOverheadCost},
		{"total_base_cost", b.TotalBaseCost},
		{"gross_price", b.GrossPrice},
		{"discount_value", b.DiscountValue},
		{"suggested_price", b.SuggestedPrice},
		{"profit_amount", b.ProfitAmount},
	}
	for _, f := range figures {
		if math.IsInf(f.value, 0) || math.IsNaN(f.value) {
			return fmt.Errorf("%w: %s is out of range", domainerror.ErrInvalidProject, f.name)
		}
	}
	return nil
}
