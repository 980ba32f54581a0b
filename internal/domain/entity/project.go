// Package entity defines the core business entities for the domain layer.
package entity

import (
	"fmt"
	"math"

	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

// Style represents the tattoo style of a project.
type Style string

const (
	StyleFineLine   Style = "Fine Line"
	StyleOldSchool  Style = "Old School"
	StyleRealism    Style = "Realismo"
	StyleBlackwork  Style = "Blackwork"
	StyleWatercolor Style = "Aquarela"
	StyleTribal     Style = "Tribal"
	StyleLettering  Style = "Lettering"
	StyleOther      Style = "Outro"
)

// Styles lists every supported style in display order.
var Styles = []Style{
	StyleFineLine,
	StyleOldSchool,
	StyleRealism,
	StyleBlackwork,
	StyleWatercolor,
	StyleTribal,
	StyleLettering,
	StyleOther,
}

// IsValid reports whether the style is one of the supported values.
func (s Style) IsValid() bool {
	for _, style := range Styles {
		if s == style {
			return true
		}
	}
	return false
}

// Complexity represents how demanding a project is, ordered from low to extreme.
type Complexity string

const (
	ComplexityLow     Complexity = "Baixa"
	ComplexityMedium  Complexity = "Média"
	ComplexityHigh    Complexity = "Alta"
	ComplexityExtreme Complexity = "Extrema"
)

// Complexities lists every complexity level from low to extreme.
var Complexities = []Complexity{
	ComplexityLow,
	ComplexityMedium,
	ComplexityHigh,
	ComplexityExtreme,
}

// IsValid reports whether the complexity is one of the supported values.
func (c Complexity) IsValid() bool {
	return c.Rank() >= 0
}

// Rank returns the position of the level in the low→extreme order, or -1 when unknown.
func (c Complexity) Rank() int {
	for i, level := range Complexities {
		if c == level {
			return i
		}
	}
	return -1
}

// DiscountType tells how a project's discount amount is interpreted.
type DiscountType string

const (
	DiscountTypeFixed      DiscountType = "fixed"
	DiscountTypePercentage DiscountType = "percentage"
)

// IsValid reports whether the discount type is supported.
func (d DiscountType) IsValid() bool {
	return d == DiscountTypeFixed || d == DiscountTypePercentage
}

// BodyParts is the catalogue offered to the editor. Body part remains free text.
var BodyParts = []string{
	"Antebraço",
	"Braço (Bíceps/Tríceps)",
	"Ombro",
	"Mão",
	"Peito",
	"Costas (Alta)",
	"Costas (Completa)",
	"Costela",
	"Abdômen",
	"Coxa",
	"Panturrilha",
	"Canela",
	"Pé",
	"Pescoço",
	"Rosto",
	"Outro",
}

// Project is the in-progress tattoo quote being edited. It has no identity.
type Project struct {
	Style               Style
	Complexity          Complexity
	BodyPart            string
	WidthCm             float64
	HeightCm            float64
	Sessions            int
	DesignTimeHours     float64
	TattooTimeHours     float64
	MaterialCost        float64 // Needles, ink, gloves, paper, etc.
	HourlyRate          float64 // Artist's desired hourly wage for labor
	ProfitMarginPercent float64
	DiscountAmount      float64
	DiscountType        DiscountType
}

// DefaultProject returns the project the editor resets to after every save.
func DefaultProject() Project {
	return Project{
		Style:               StyleBlackwork,
		Complexity:          ComplexityMedium,
		BodyPart:            "Antebraço",
		WidthCm:             10,
		HeightCm:            10,
		Sessions:            1,
		DesignTimeHours:     1,
		TattooTimeHours:     3,
		MaterialCost:        50,
		HourlyRate:          100,
		ProfitMarginPercent: 30,
		DiscountAmount:      0,
		DiscountType:        DiscountTypeFixed,
	}
}

// TotalHours returns design plus tattooing time.
func (p Project) TotalHours() float64 {
	return p.DesignTimeHours + p.TattooTimeHours
}

// Validate checks enumerated fields and rejects negative quantities.
func (p Project) Validate() error {
	if !p.Style.IsValid() {
		return fmt.Errorf("%w: unknown style %q", domainerror.ErrInvalidProject, p.Style)
	}
	if !p.Complexity.IsValid() {
		return fmt.Errorf("%w: unknown complexity %q", domainerror.ErrInvalidProject, p.Complexity)
	}
	if !p.DiscountType.IsValid() {
		return fmt.Errorf("%w: discount type must be fixed or percentage", domainerror.ErrInvalidProject)
	}

	quantities := []struct {
		name  string
		value float64
	}{
		{"width_cm", p.WidthCm},
		{"height_cm", p.HeightCm},
		{"sessions", float64(p.Sessions)},
		{"design_time_hours", p.DesignTimeHours},
		{"tattoo_time_hours", p.TattooTimeHours},
		{"material_cost", p.MaterialCost},
		{"hourly_rate", p.HourlyRate},
		{"discount_amount", p.DiscountAmount},
	}
	for _, q := range quantities {
		if math.IsNaN(q.value) || math.IsInf(q.value, 0) {
			return fmt.Errorf("%w: %s must be a finite number", domainerror.ErrInvalidProject, q.name)
		}
		if q.value < 0 {
			return fmt.Errorf("%w: %s must not be negative", domainerror.ErrInvalidProject, q.name)
		}
	}

	return nil
}
