// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/inkprofit/backend/internal/domain/entity"
)

// ClientModel represents the clients table in the database.
type ClientModel struct {
	ID        uuid.UUID      `gorm:"type:uuid;primaryKey"`
	Name      string         `gorm:"type:varchar(255);not null"`
	Phone     string         `gorm:"type:varchar(50);not null"`
	Email     string         `gorm:"type:varchar(255)"`
	Notes     string         `gorm:"type:text"`
	CreatedAt time.Time      `gorm:"not null;index"`
	UpdatedAt time.Time      `gorm:"not null"`
	DeletedAt gorm.DeletedAt `gorm:"index"` // Soft-delete support
}

// TableName returns the table name for the ClientModel.
func (ClientModel) TableName() string {
	return "clients"
}

// ToEntity converts a ClientModel to a domain Client entity.
func (m *ClientModel) ToEntity() *entity.Client {
	return &entity.Client{
		ID:        m.ID,
		Name:      m.Name,
		Phone:     m.Phone,
		Email:     m.Email,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt.UTC(),
		UpdatedAt: m.UpdatedAt.UTC(),
	}
}

// ClientFromEntity creates a ClientModel from a domain Client entity.
func ClientFromEntity(c *entity.Client) *ClientModel {
	return &ClientModel{
		ID:        c.ID,
		Name:      c.Name,
		Phone:     c.Phone,
		Email:     c.Email,
		Notes:     c.Notes,
		CreatedAt: c.CreatedAt,
		UpdatedAt: c.UpdatedAt,
	}
}
