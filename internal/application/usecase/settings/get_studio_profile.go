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

// GetStudioProfileOutput represents the output of loading the studio profile.
type GetStudioProfileOutput struct {
	Profile   entity.StudioProfile
	IsDefault bool
}

// GetStudioProfileUseCase loads the studio profile printed on documents.
type GetStudioProfileUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewGetStudioProfileUseCase creates a new GetStudioProfileUseCase instance.
func NewGetStudioProfileUseCase(settingsRepo adapter.SettingsRepository) *GetStudioProfileUseCase {
	return &GetStudioProfileUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute returns the stored profile or DefaultStudioProfile when none exists.
func (uc *GetStudioProfileUseCase) Execute(ctx context.Context) (*GetStudioProfileOutput, error) {
	profile, err := uc.settingsRepo.GetStudioProfile(ctx)
	if err != nil {
		if errors.Is(err, domainerror.ErrSettingNotFound) {
			return &GetStudioProfileOutput{
				Profile:   entity.DefaultStudioProfile(),
				IsDefault: true,
			}, nil
		}
		return nil, fmt.Errorf("failed to load studio profile: %w", err)
	}

	return &GetStudioProfileOutput{
		Profile: *profile,
	}, nil
}
