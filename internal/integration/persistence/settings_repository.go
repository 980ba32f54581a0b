// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	"github.com/inkprofit/backend/internal/integration/persistence/model"
)

// settingsRepository implements the adapter.SettingsRepository interface on a key/JSON table.
type settingsRepository struct {
	db *gorm.DB
}

// NewSettingsRepository creates a new settings repository instance.
func NewSettingsRepository(db *gorm.DB) adapter.SettingsRepository {
	return &settingsRepository{
		db: db,
	}
}

// GetCostProfile loads the stored cost profile.
func (r *settingsRepository) GetCostProfile(ctx context.Context) (*entity.CostProfile, error) {
	var doc model.CostProfileDocument
	if err := r.load(ctx, model.SettingKeyCostProfile, &doc); err != nil {
		return nil, err
	}
	profile := costProfileFromDocument(doc)
	return &profile, nil
}

// SaveCostProfile replaces the stored cost profile.
func (r *settingsRepository) SaveCostProfile(ctx context.Context, profile entity.CostProfile) error {
	return r.store(ctx, model.SettingKeyCostProfile, costProfileToDocument(profile))
}

// GetStudioProfile loads the stored studio profile.
func (r *settingsRepository) GetStudioProfile(ctx context.Context) (*entity.StudioProfile, error) {
	var doc model.StudioProfileDocument
	if err := r.load(ctx, model.SettingKeyStudioProfile, &doc); err != nil {
		return nil, err
	}
	profile := studioProfileFromDocument(doc)
	return &profile, nil
}

// SaveStudioProfile replaces the stored studio profile.
func (r *settingsRepository) SaveStudioProfile(ctx context.Context, profile entity.StudioProfile) error {
	return r.store(ctx, model.SettingKeyStudioProfile, studioProfileToDocument(profile))
}

func (r *settingsRepository) load(ctx context.Context, key string, dest any) error {
	var setting model.SettingModel
	result := r.db.WithContext(ctx).Where("key = ?", key).First(&setting)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return domainerror.ErrSettingNotFound
		}
		return result.Error
	}

	if err := json.Unmarshal(setting.Value, dest); err != nil {
		return fmt.Errorf("failed to decode setting %s: %w", key, err)
	}
	return nil
}

func (r *settingsRepository) store(ctx context.Context, key string, value any) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s: %w", key, err)
	}

	setting := model.SettingModel{
		Key:       key,
		Value:     raw,
		UpdatedAt: time.Now().UTC(),
	}

	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(&setting).Error
}

func costProfileToDocument(p entity.CostProfile) model.CostProfileDocument {
	return model.CostProfileDocument{
		MonthlyRent:        p.MonthlyRent,
		MonthlyUtilities:   p.MonthlyUtilities,
		MonthlyMarketing:   p.MonthlyMarketing,
		MonthlyMisc:        p.MonthlyMisc,
		DaysWorkedPerMonth: p.DaysWorkedPerMonth,
		HoursWorkedPerDay:  p.HoursWorkedPerDay,
	}
}

func costProfileFromDocument(d model.CostProfileDocument) entity.CostProfile {
	return entity.CostProfile{
		MonthlyRent:        d.MonthlyRent,
		MonthlyUtilities:   d.MonthlyUtilities,
		MonthlyMarketing:   d.MonthlyMarketing,
		MonthlyMisc:        d.MonthlyMisc,
		DaysWorkedPerMonth: d.DaysWorkedPerMonth,
		HoursWorkedPerDay:  d.HoursWorkedPerDay,
	}
}

func studioProfileToDocument(p entity.StudioProfile) model.StudioProfileDocument {
	return model.StudioProfileDocument{
		Name:      p.Name,
		OwnerName: p.OwnerName,
		Document:  p.Document,
		Address:   p.Address,
		Phone:     p.Phone,
		Email:     p.Email,
		LogoURL:   p.LogoURL,
	}
}

func studioProfileFromDocument(d model.StudioProfileDocument) entity.StudioProfile {
	return entity.StudioProfile{
		Name:      d.Name,
		OwnerName: d.OwnerName,
		Document:  d.Document,
		Address:   d.Address,
		Phone:     d.Phone,
		Email:     d.Email,
		LogoURL:   d.LogoURL,
	}
}
