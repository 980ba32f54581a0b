// Package settings contains use cases for the studio's singleton profiles.
package settings

import (
	"context"
	"fmt"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

// UpdateCostProfileInput represents the input for replacing the cost profile.
type UpdateCostProfileInput struct {
	Profile entity.CostProfile
}

// UpdateCostProfileOutput represents the output of replacing the cost profile.
type UpdateCostProfileOutput struct {
	Profile entity.CostProfile
}

// UpdateCostProfileUseCase replaces the studio's cost profile.
// Saved proposals keep the figures they were priced with.
type UpdateCostProfileUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateCostProfileUseCase creates a new UpdateCostProfileUseCase instance.
func NewUpdateCostProfileUseCase(settingsRepo adapter.SettingsRepository) *UpdateCostProfileUseCase {
	return &UpdateCostProfileUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute validates and stores the profile.
func (uc *UpdateCostProfileUseCase) Execute(ctx context.Context, input UpdateCostProfileInput) (*UpdateCostProfileOutput, error) {
	p := input.Profile
	fields := []struct {
		name  string
		value float64
	}{
		{"monthly_rent", p.MonthlyRent},
		{"monthly_utilities", p.MonthlyUtilities},
		{"monthly_marketing", p.MonthlyMarketing},
		{"monthly_misc", p.MonthlyMisc},
		{"days_worked_per_month", p.DaysWorkedPerMonth},
		{"hours_worked_per_day", p.HoursWorkedPerDay},
	}
	for _, f := range fields {
		if f.value < 0 {
			return nil, domainerror.NewSettingsError(
				domainerror.ErrCodeNegativeCost,
				f.name+" must not be negative",
				domainerror.ErrNegativeCost,
			)
		}
	}

	if err := uc.settingsRepo.SaveCostProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save cost profile: %w", err)
	}

	return &UpdateCostProfileOutput{
		Profile: p,
	}, nil
}
