// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	"github.com/inkprofit/backend/internal/integration/persistence/model"
)

// clientRepository implements the adapter.ClientRepository interface.
type clientRepository struct {
	db *gorm.DB
}

// NewClientRepository creates a new client repository instance.
func NewClientRepository(db *gorm.DB) adapter.ClientRepository {
	return &clientRepository{
		db: db,
	}
}

// Create creates a new client in the database.
func (r *clientRepository) Create(ctx context.Context, client *entity.Client) error {
	return r.db.WithContext(ctx).Create(model.ClientFromEntity(client)).Error
}

// FindByID retrieves a client by its ID.
func (r *clientRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Client, error) {
	var clientModel model.ClientModel
	result := r.db.WithContext(ctx).Where("id = ?", id).First(&clientModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrClientNotFound
		}
		return nil, result.Error
	}
	return clientModel.ToEntity(), nil
}

// FindAll retrieves clients whose name or phone contains search, newest first.
func (r *clientRepository) FindAll(ctx context.Context, search string) ([]*entity.Client, error) {
	query := r.db.WithContext(ctx).Model(&model.ClientModel{})
	if search != "" {
		pattern := "%" + escapeLike(strings.ToLower(search)) + "%"
		query = query.Where("LOWER(name) LIKE ? ESCAPE '\\' OR phone LIKE ? ESCAPE '\\'", pattern, pattern)
	}

	var clientModels []model.ClientModel
	if err := query.Order("created_at DESC").Find(&clientModels).Error; err != nil {
		return nil, err
	}

	clients := make([]*entity.Client, len(clientModels))
	for i := range clientModels {
		clients[i] = clientModels[i].ToEntity()
	}
	return clients, nil
}

// Update updates an existing client in the database.
func (r *clientRepository) Update(ctx context.Context, client *entity.Client) error {
	result := r.db.WithContext(ctx).
		Model(&model.ClientModel{}).
		Where("id = ?", client.ID).
		Updates(map[string]any{
			"name":       client.Name,
			"phone":      client.Phone,
			"email":      client.Email,
			"notes":      client.Notes,
			"updated_at": client.UpdatedAt,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrClientNotFound
	}
	return nil
}

// Delete removes a client from the database (soft delete).
func (r *clientRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&model.ClientModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domainerror.ErrClientNotFound
	}
	return nil
}

func escapeLike(s string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(s)
}
