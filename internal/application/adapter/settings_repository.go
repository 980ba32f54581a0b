// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"

	"github.com/inkprofit/backend/internal/domain/entity"
)

// SettingsRepository stores the studio's singleton records by key.
// Getters return domainerror.ErrSettingNotFound when nothing was saved yet.
type SettingsRepository interface {
	// GetCostProfile loads the stored cost profile.
	GetCostProfile(ctx context.Context) (*entity.CostProfile, error)

	// SaveCostProfile replaces the stored cost profile.
	SaveCostProfile(ctx context.Context, profile entity.CostProfile) error

	// GetStudioProfile loads the stored studio profile.
	GetStudioProfile(ctx context.Context) (*entity.StudioProfile, error)

	// SaveStudioProfile replaces the stored studio profile.
	SaveStudioProfile(ctx context.Context, profile entity.StudioProfile) error
}
