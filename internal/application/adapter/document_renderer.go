// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

import (
	"context"
	"time"

	"github.com/inkprofit/backend/internal/domain/entity"
)

// RenderDocumentInput holds everything a printable document needs.
type RenderDocumentInput struct {
	Type     entity.DocumentType
	Proposal *entity.SavedProject
	Studio   entity.StudioProfile
	IssuedAt time.Time
}

// DocumentRenderer turns a proposal into a printable document.
type DocumentRenderer interface {
	// Render returns the document bytes.
	Render(ctx context.Context, input RenderDocumentInput) ([]byte, error)

	// ContentType returns the MIME type of rendered documents.
	ContentType() string
}
