// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/domain/entity"
)

// ProposalModel represents the proposals table in the database.
// Every column except Status is written once at creation.
type ProposalModel struct {
	ID                  uuid.UUID `gorm:"type:uuid;primaryKey"`
	ClientID            uuid.UUID `gorm:"type:uuid;not null;index"`
	ClientName          string    `gorm:"type:varchar(255);not null"`
	ClientPhone         string    `gorm:"type:varchar(50)"`
	Status              string    `gorm:"type:varchar(20);not null;index"`
	Style               string    `gorm:"type:varchar(50);not null"`
	Complexity          string    `gorm:"type:varchar(20);not null"`
	BodyPart            string    `gorm:"type:varchar(100)"`
	WidthCm             float64   `gorm:"not null"`
	HeightCm            float64   `gorm:"not null"`
	Sessions            int       `gorm:"not null"`
	DesignTimeHours     float64   `gorm:"not null"`
	TattooTimeHours     float64   `gorm:"not null"`
	MaterialCost        float64   `gorm:"not null"`
	HourlyRate          float64   `gorm:"not null"`
	ProfitMarginPercent float64   `gorm:"not null"`
	DiscountAmount      float64   `gorm:"not null"`
	DiscountType        string    `gorm:"type:varchar(20);not null"`
	FinalPrice          float64   `gorm:"not null"`
	FinalCost           float64   `gorm:"not null"`
	FinalProfit         float64   `gorm:"not null"`
	CreatedAt           time.Time `gorm:"not null;index"`
}

// TableName returns the table name for the ProposalModel.
func (ProposalModel) TableName() string {
	return "proposals"
}

// ToEntity converts a ProposalModel to a domain SavedProject entity.
func (m *ProposalModel) ToEntity() *entity.SavedProject {
	return &entity.SavedProject{
		Project: entity.Project{
			Style:               entity.Style(m.Style),
			Complexity:          entity.Complexity(m.Complexity),
			BodyPart:            m.BodyPart,
			WidthCm:             m.WidthCm,
			HeightCm:            m.HeightCm,
			Sessions:            m.Sessions,
			DesignTimeHours:     m.DesignTimeHours,
			TattooTimeHours:     m.TattooTimeHours,
			MaterialCost:        m.MaterialCost,
			HourlyRate:          m.HourlyRate,
			ProfitMarginPercent: m.ProfitMarginPercent,
			DiscountAmount:      m.DiscountAmount,
			DiscountType:        entity.DiscountType(m.DiscountType),
		},
		ID:          m.ID,
		ClientID:    m.ClientID,
		ClientName:  m.ClientName,
		ClientPhone: m.ClientPhone,
		Status:      entity.ProposalStatus(m.Status),
		FinalPrice:  m.FinalPrice,
		FinalCost:   m.FinalCost,
		FinalProfit: m.FinalProfit,
		CreatedAt:   m.CreatedAt.UTC(),
	}
}

// ProposalFromEntity creates a ProposalModel from a domain SavedProject entity.
func ProposalFromEntity(p *entity.SavedProject) *ProposalModel {
	return &ProposalModel{
		ID:                  p.ID,
		ClientID:            p.ClientID,
		ClientName:          p.ClientName,
		ClientPhone:         p.ClientPhone,
		Status:              string(p.Status),
		Style:               string(p.Style),
		Complexity:          string(p.Complexity),
		BodyPart:            p.BodyPart,
		WidthCm:             p.WidthCm,
		HeightCm:            p.HeightCm,
		Sessions:            p.Sessions,
		DesignTimeHours:     p.DesignTimeHours,
		TattooTimeHours:     p.TattooTimeHours,
		MaterialCost:        p.MaterialCost,
		HourlyRate:          p.HourlyRate,
		ProfitMarginPercent: p.ProfitMarginPercent,
		DiscountAmount:      p.DiscountAmount,
		DiscountType:        string(p.DiscountType),
		FinalPrice:          p.FinalPrice,
		FinalCost:           p.FinalCost,
		FinalProfit:         p.FinalProfit,
		CreatedAt:           p.CreatedAt,
	}
}
