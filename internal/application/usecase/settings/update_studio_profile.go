// Package settings contains use cases for the studio's singleton profiles.
package settings

import (
	"context"
	"fmt"
	"strings"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

// UpdateStudioProfileInput represents the input for replacing the studio profile.
type UpdateStudioProfileInput struct {
	Profile entity.StudioProfile
}

// UpdateStudioProfileOutput represents the output of replacing the studio profile.
type UpdateStudioProfileOutput struct {
	Profile entity.StudioProfile
}

// UpdateStudioProfileUseCase replaces the studio profile.
type UpdateStudioProfileUseCase struct {
	settingsRepo adapter.SettingsRepository
}

// NewUpdateStudioProfileUseCase creates a new UpdateStudioProfileUseCase instance.
func NewUpdateStudioProfileUseCase(settingsRepo adapter.SettingsRepository) *UpdateStudioProfileUseCase {
	return &UpdateStudioProfileUseCase{
		settingsRepo: settingsRepo,
	}
}

// Execute trims text fields, enforces the logo size limit and stores the profile.
func (uc *UpdateStudioProfileUseCase) Execute(ctx context.Context, input UpdateStudioProfileInput) (*UpdateStudioProfileOutput, error) {
	p := input.Profile
	p.Name = strings.TrimSpace(p.Name)
	p.OwnerName = strings.TrimSpace(p.OwnerName)
	p.Document = strings.TrimSpace(p.Document)
	p.Address = strings.TrimSpace(p.Address)
	p.Phone = strings.TrimSpace(p.Phone)
	p.Email = strings.TrimSpace(p.Email)

	if len(p.LogoURL) > entity.MaxLogoBytes {
		return nil, domainerror.NewSettingsError(
			domainerror.ErrCodeLogoTooLarge,
			"logo must be smaller than 500KB",
			domainerror.ErrLogoTooLarge,
		)
	}

	if err := uc.settingsRepo.SaveStudioProfile(ctx, p); err != nil {
		return nil, fmt.Errorf("failed to save studio profile: %w", err)
	}

	return &UpdateStudioProfileOutput{
		Profile: p,
	}, nil
}
