// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"

	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

// ProposalStatus represents the lifecycle state of a saved proposal.
type ProposalStatus string

const (
	ProposalStatusDraft     ProposalStatus = "draft"
	ProposalStatusCompleted ProposalStatus = "completed"
)

// IsValid reports whether the status is a known lifecycle state.
func (s ProposalStatus) IsValid() bool {
	return s == ProposalStatusDraft || s == ProposalStatusCompleted
}

// SavedProject is a persisted proposal. Everything except Status is frozen at creation.
type SavedProject struct {
	Project

	ID          uuid.UUID
	ClientID    uuid.UUID
	ClientName  string // snapshot, survives client deletion
	ClientPhone string // snapshot, used for WhatsApp sharing
	Status      ProposalStatus
	FinalPrice  float64
	FinalCost   float64
	FinalProfit float64
	CreatedAt   time.Time
}

// NewSavedProject freezes a project, its client identity and the computed figures into a new record.
func NewSavedProject(project Project, client *Client, status ProposalStatus, finalPrice, finalCost, finalProfit float64, createdAt time.Time) *SavedProject {
	return &SavedProject{
		Project:     project,
		ID:          uuid.New(),
		ClientID:    client.ID,
		ClientName:  client.Name,
		ClientPhone: client.Phone,
		Status:      status,
		FinalPrice:  finalPrice,
		FinalCost:   finalCost,
		FinalProfit: finalProfit,
		CreatedAt:   createdAt,
	}
}

// IsCompleted reports whether the proposal has been realized as a paid job.
func (p *SavedProject) IsCompleted() bool {
	return p.Status == ProposalStatusCompleted
}

// Close moves a draft to completed. Completed proposals cannot be closed again.
func (p *SavedProject) Close() error {
	if p.IsCompleted() {
		return domainerror.ErrProposalAlreadyCompleted
	}
	p.Status = ProposalStatusCompleted
	return nil
}
