// Package document contains the printable document use cases.
package document

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

// RenderDocumentInput represents the input for rendering a proposal document.
type RenderDocumentInput struct {
	ProposalID uuid.UUID
	Type       entity.DocumentType
}

// RenderDocumentOutput represents a rendered document ready for download.
type RenderDocumentOutput struct {
	Content     []byte
	ContentType string
	FileName    string
}

// RenderDocumentUseCase renders a contract, anamnesis form or aftercare guide for a proposal.
type RenderDocumentUseCase struct {
	proposalRepo adapter.ProposalRepository
	settingsRepo adapter.SettingsRepository
	renderer     adapter.DocumentRenderer
	clock        adapter.Clock
}

// NewRenderDocumentUseCase creates a new RenderDocumentUseCase instance.
func NewRenderDocumentUseCase(
	proposalRepo adapter.ProposalRepository,
	settingsRepo adapter.SettingsRepository,
	renderer adapter.DocumentRenderer,
	clock adapter.Clock,
) *RenderDocumentUseCase {
	return &RenderDocumentUseCase{
		proposalRepo: proposalRepo,
		settingsRepo: settingsRepo,
		renderer:     renderer,
		clock:        clock,
	}
}

// Execute renders the requested document with the studio header.
func (uc *RenderDocumentUseCase) Execute(ctx context.Context, input RenderDocumentInput) (*RenderDocumentOutput, error) {
	if !input.Type.IsValid() {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeInvalidDocumentType,
			"invalid document type",
			domainerror.ErrInvalidDocumentType,
		)
	}

	proposal, err := uc.proposalRepo.FindByID(ctx, input.ProposalID)
	if err != nil {
		if errors.Is(err, domainerror.ErrProposalNotFound) {
			return nil, domainerror.NewProposalError(
				domainerror.ErrCodeProposalNotFound,
				"proposal not found",
				domainerror.ErrProposalNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find proposal: %w", err)
	}

	studio, err := uc.settingsRepo.GetStudioProfile(ctx)
	switch {
	case errors.Is(err, domainerror.ErrSettingNotFound):
		def := entity.DefaultStudioProfile()
		studio = &def
	case err != nil:
		return nil, fmt.Errorf("failed to load studio profile: %w", err)
	}

	content, err := uc.renderer.Render(ctx, adapter.RenderDocumentInput{
		Type:     input.Type,
		Proposal: proposal,
		Studio:   studio.WithFallbacks(),
		IssuedAt: uc.clock.Now(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to render %s: %w", input.Type, err)
	}

	return &RenderDocumentOutput{
		Content:     content,
		ContentType: uc.renderer.ContentType(),
		FileName:    fmt.Sprintf("%s-%s.pdf", input.Type, proposal.ID.String()[:8]),
	}, nil
}
