// Package pricing contains the quoting use cases built on the pricing engine.
package pricing

import (
	"github.com/inkprofit/backend/internal/domain/entity"
	engine "github.com/inkprofit/backend/internal/domain/pricing"
)

// StyleOption is a selectable style and its price multiplier.
type StyleOption struct {
	Style      entity.Style
	Multiplier float64
}

// ComplexityOption is a selectable complexity level and its price multiplier.
type ComplexityOption struct {
	Complexity entity.Complexity
	Multiplier float64
}

// GetCatalogOutput lists everything an editor needs to build a project.
type GetCatalogOutput struct {
	Styles             []StyleOption
	Complexities       []ComplexityOption
	BodyParts          []string
	DefaultProject     entity.Project
	DefaultCostProfile entity.CostProfile
}

// GetCatalogUseCase exposes the pricing tables and editor defaults.
type GetCatalogUseCase struct{}

// NewGetCatalogUseCase creates a new GetCatalogUseCase instance.
func NewGetCatalogUseCase() *GetCatalogUseCase {
	return &GetCatalogUseCase{}
}

// Execute returns the catalog in display order.
func (uc *GetCatalogUseCase) Execute() *GetCatalogOutput {
	styles := make([]StyleOption, 0, len(entity.Styles))
	for _, s := range entity.Styles {
		styles = append(styles, StyleOption{Style: s, Multiplier: engine.StyleMultiplier(s)})
	}

	complexities := make([]ComplexityOption, 0, len(entity.Complexities))
	for _, c := range entity.Complexities {
		complexities = append(complexities, ComplexityOption{Complexity: c, Multiplier: engine.ComplexityMultiplier(c)})
	}

	bodyParts := make([]string, len(entity.BodyParts))
	copy(bodyParts, entity.BodyParts)

	return &GetCatalogOutput{
		Styles:             styles,
		Complexities:       complexities,
		BodyParts:          bodyParts,
		DefaultProject:     entity.DefaultProject(),
		DefaultCostProfile: entity.DefaultCostProfile(),
	}
}
