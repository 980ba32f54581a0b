// Package model defines database models for persistence layer.
package model

// All returns every model managed by auto-migration.
func All() []any {
	return []any{
		&ClientModel{},
		&ProposalModel{},
		&SettingModel{},
	}
}
