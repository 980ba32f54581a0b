// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/inkprofit/backend/internal/domain/entity"
)

// CostProfileRequest represents the request body for replacing the cost profile.
type CostProfileRequest struct {
	MonthlyRent        float64 `json:"monthly_rent"`
	MonthlyUtilities   float64 `json:"monthly_utilities"`
	MonthlyMarketing   float64 `json:"monthly_marketing"`
	MonthlyMisc        float64 `json:"monthly_misc"`
	DaysWorkedPerMonth float64 `json:"days_worked_per_month"`
	HoursWorkedPerDay  float64 `json:"hours_worked_per_day"`
}

// CostProfileResponse represents the cost profile in API responses.
type CostProfileResponse struct {
	MonthlyRent          float64 `json:"monthly_rent"`
	MonthlyUtilities     float64 `json:"monthly_utilities"`
	MonthlyMarketing     float64 `json:"monthly_marketing"`
	MonthlyMisc          float64 `json:"monthly_misc"`
	DaysWorkedPerMonth   float64 `json:"days_worked_per_month"`
	HoursWorkedPerDay    float64 `json:"hours_worked_per_day"`
	MonthlyFixedExpenses float64 `json:"monthly_fixed_expenses"`
	MonthlyHours         float64 `json:"monthly_hours"`
	IsDefault            bool    `json:"is_default"`
}

// StudioProfileRequest represents the request body for replacing the studio profile.
type StudioProfileRequest struct {
	Name      string `json:"name"`
	OwnerName string `json:"owner_name"`
	Document  string `json:"document"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email" binding:"omitempty,email"`
	LogoURL   string `json:"logo_url"`
}

// StudioProfileResponse represents the studio profile in API responses.
type StudioProfileResponse struct {
	Name      string `json:"name"`
	OwnerName string `json:"owner_name"`
	Document  string `json:"document"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	LogoURL   string `json:"logo_url,omitempty"`
	IsDefault bool   `json:"is_default"`
}

// ToCostProfile converts the request to a domain CostProfile.
func (r CostProfileRequest) ToCostProfile() entity.CostProfile {
	return entity.CostProfile{
		MonthlyRent:        r.MonthlyRent,
		MonthlyUtilities:   r.MonthlyUtilities,
		MonthlyMarketing:   r.MonthlyMarketing,
		MonthlyMisc:        r.MonthlyMisc,
		DaysWorkedPerMonth: r.DaysWorkedPerMonth,
		HoursWorkedPerDay:  r.HoursWorkedPerDay,
	}
}

// ToCostProfileResponse converts a domain CostProfile to a CostProfileResponse DTO.
func ToCostProfileResponse(p entity.CostProfile, isDefault bool) CostProfileResponse {
	return CostProfileResponse{
		MonthlyRent:          p.MonthlyRent,
		MonthlyUtilities:     p.MonthlyUtilities,
		MonthlyMarketing:     p.MonthlyMarketing,
		MonthlyMisc:          p.MonthlyMisc,
		DaysWorkedPerMonth:   p.DaysWorkedPerMonth,
		HoursWorkedPerDay:    p.HoursWorkedPerDay,
		MonthlyFixedExpenses: p.MonthlyFixedExpenses(),
		MonthlyHours:         p.MonthlyHours(),
		IsDefault:            isDefault,
	}
}

// ToStudioProfile converts the request to a domain StudioProfile.
func (r StudioProfileRequest) ToStudioProfile() entity.StudioProfile {
	return entity.StudioProfile{
		Name:      r.Name,
		OwnerName: r.OwnerName,
		Document:  r.Document,
		Address:   r.Address,
		Phone:     r.Phone,
		Email:     r.Email,
		LogoURL:   r.LogoURL,
	}
}

// ToStudioProfileResponse converts a domain StudioProfile to a StudioProfileResponse DTO.
func ToStudioProfileResponse(p entity.StudioProfile, isDefault bool) StudioProfileResponse {
	return StudioProfileResponse{
		Name:      p.Name,
		OwnerName: p.OwnerName,
		Document:  p.Document,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
		LogoURL:   p.LogoURL,
		IsDefault: isDefault,
	}
}
