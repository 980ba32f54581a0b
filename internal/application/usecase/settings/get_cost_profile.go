// Package settings contains use cases for the studio's singleton profiles.
package settings

import (
	"context"
	"errors"
	"fmt"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

// GetCostProfileOutput represents the output of loading the cost profile.
type GetCostProfileOutput struct {
	Profile   entity.CostProfile
	IsDefault bool // true when nothing was stored yet
}

// GetCostProfileUseCase loads the cost profile, falling back to the defaults.
type GetCostProfileUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetCostProfileUseCase creates a new GetCostProfileUseCase instance.
func NewGetCostProfileUseCase(settingsRepo adapter.SettingsRepository) *GetCostProfileUseCase {
	return &GetCostProfileUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute returns the stored profile or DefaultCostProfile when none exists.
func (uc *GetCostProfileUseCase) Execute(ctx context.Context) (*GetCostProfileOutput, error) {
	profile, err := uc.settingsRepo.GetCostProfile(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrSettingNotFound) {
			return &GetCostProfileOutput{
				Profile:   entity.DefaultCostProfile(),
				IsDefault: true,
			}, nil
		}
		return nil, fmt.Errorf("failed to load cost profile: %w", err)
	}

	return &GetCostProfileOutput{
		Profile: *profile,
	}, nil
}
