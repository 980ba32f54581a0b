// Package model defines database models for persistence layer.
package model

import (
	"time"

	"gorm.io/datatypes"
)

// Setting keys.
const (
	SettingKeyCostProfile   = "cost_profile"
	SettingKeyStudioProfile = "studio_profile"
)

// SettingModel represents the settings table: one JSON document per key.
type SettingModel struct {
	Key       string         `gorm:"type:varchar(64);primaryKey"`
	Value     datatypes.JSON `gorm:"not null"`
	UpdatedAt time.Time      `gorm:"not null"`
}

// TableName returns the table name for the SettingModel.
func (SettingModel) TableName() string {
	return "settings"
}

// CostProfileDocument is the stored JSON form of entity.CostProfile.
type CostProfileDocument struct {
	MonthlyRent        float64 `json:"monthly_rent"`
	MonthlyUtilities   float64 `json:"monthly_utilities"`
	MonthlyMarketing   float64 `json:"monthly_marketing"`
	MonthlyMisc        float64 `json:"monthly_misc"`
	DaysWorkedPerMonth float64 `json:"days_worked_per_month"`
	HoursWorkedPerDay  float64 `json:"hours_worked_per_day"`
}

// StudioProfileDocument is the stored JSON form of entity.StudioProfile.
type StudioProfileDocument struct {
	Name      string `json:"name"`
	OwnerName string `json:"owner_name"`
	Document  string `json:"document"`
	Address   string `json:"address"`
	Phone     string `json:"phone"`
	Email     string `json:"email"`
	LogoURL   string `json:"logo_url,omitempty"`
}
