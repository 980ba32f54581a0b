// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	"github.com/inkprofit/backend/internal/integration/persistence/model"
)

// proposalRepository implements the adapter.ProposalRepository interface.
type proposalRepository struct {
	db *gorm.DB
}

// NewProposalRepository creates a new proposal repository instance.
func NewProposalRepository(db *gorm.DB) adapter.ProposalRepository {
	return &proposalRepository{
		db: db,
	}
}

// Create appends a new proposal.
func (r *proposalRepository) Create(ctx context.Context, proposal *entity.SavedProject) error {
	return r.db.WithContext(ctx).Create(model.ProposalFromEntity(proposal)).Error
}

// FindByID retrieves a proposal by its ID.
func (r *proposalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.SavedProject, error) {
	var proposalModel model.ProposalModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&proposalModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrProposalNotFound
		}
		return nil, result.Error
	}
	return proposalModel.ToEntity(), nil
}

// FindAll retrieves proposals matching the filter, newest first.
func (r *proposalRepository) FindAll(ctx context.Context, filter adapter.ProposalFilter) ([]*entity.SavedProject, error) {
	query := r.db.WithContext(ctx).Model(&model.ProposalModel{})
	if filter.Status != nil {
		query = query.Where("status = ?", string(*filter.Status))
	}

	var proposalModels []model.ProposalModel
	if err := query.Order("created_at DESC").Order("id").Find(&proposalModels).Error; err != nil {
		return nil, err
	}

	proposals := make([]*entity.SavedProject, len(proposalModels))
	for i := range proposalModels {
		proposals[i] = proposalModels[i].ToEntity()
	}
	return proposals, nil
}

// CloseDraft changes only the status column, and only while the proposal is still a draft.
func (r *proposalRepository) CloseDraft(ctx context.Context, id uuid.UUID) error {
	db := r.db.WithContext(ctx)
	result := db.
		Model(&model.ProposalModel{}).
		Where("id = ? AND status = ?", id, string(entity.ProposalStatusDraft)).
		Update("status", string(entity.ProposalStatusCompleted))
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var count int64
	if err := db.Model(&model.ProposalModel{}).Where("id = ?", id).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		return domainerror.ErrProposalNotFound
	}
	return domainerror.ErrProposalAlreadyCompleted
}

// Delete removes a proposal permanently.
func (r *proposalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ProposalModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrProposalNotFound
	}
	return nil
}
