package pricing

import "github.com/inkprofit/backend/internal/domain/entity"

// styleMultipliers is the base difficulty premium per style.
var styleMultipliers = map[entity.Style]float64{
	entity.StyleFineLine:   1.1,
	entity.StyleOldSchool:  1.0,
	entity.StyleRealism:    1.4,
	entity.StyleBlackwork:  1.1,
	entity.StyleWatercolor: 1.25,
	entity.StyleTribal:     1.0,
	entity.StyleLettering:  1.05,
	entity.StyleOther:      1.0,
}

// complexityMultipliers is the subjective adjustment per complexity level.
var complexityMultipliers = map[entity.Complexity]float64{
	entity.ComplexityLow:     1.0,
	entity.ComplexityMedium:  1.15,
	entity.ComplexityHigh:    1.3,
	entity.ComplexityExtreme: 1.5,
}

// StyleMultiplier returns the premium for a style. Unknown styles are neutral (1.0).
func StyleMultiplier(style entity.Style) float64 {
	if m, ok := styleMultipliers[style]; ok {
		return m
	}
	return 1.0
}

// ComplexityMultiplier returns the premium for a complexity level. Unknown levels are neutral (1.0).
func ComplexityMultiplier(complexity entity.Complexity) float64 {
	if m, ok := complexityMultipliers[complexity]; ok {
		return m
	}
	return 1.0
}
