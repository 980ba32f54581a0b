package document

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
)

// 1x1 transparent PNG.
const tinyPNG = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mNkYPhfDwAChwGA60e6kgAAAABJRU5ErkJggg=="

func newRenderer() *PDFRenderer {
	r := NewPDFRenderer("")
	r.compress = false
	return r
}

func sampleProposal() *entity.SavedProject {
	client := entity.NewClient("Marina Costa", "11 98888-7777", "", "")
	return entity.NewSavedProject(entity.DefaultProject(), client, entity.ProposalStatusCompleted, 675.74, 425, 250.74, time.Now())
}

func TestPDFRenderer_RendersEveryType(t *testing.T) {
	r := newRenderer()
	studio := entity.DefaultStudioProfile()

	for _, docType := range []entity.DocumentType{entity.DocumentTypeContract, entity.DocumentTypeAnamnesis, entity.DocumentTypeAftercare} {
		t.Run(string(docType), func(t *testing.T) {
			out, err := r.Render(context.Background(), adapter.RenderDocumentInput{
				Type:     docType,
				Proposal: sampleProposal(),
				Studio:   studio,
				IssuedAt: time.Date(2026, 4, 2, 0, 0, 0, 0, time.UTC),
			})
			require.NoError(t, err)
			assert.True(t, bytes.HasPrefix(out, []byte("%PDF-")))
			assert.True(t, bytes.Contains(out, []byte("Marina Costa")))
		})
	}
}

func TestPDFRenderer_ContractShowsPrice(t *testing.T) {
	out, err := newRenderer().Render(context.Background(), adapter.RenderDocumentInput{
		Type:     entity.DocumentTypeContract,
		Proposal: sampleProposal(),
		Studio:   entity.StudioProfile{Name: "Black Rose"}.WithFallbacks(),
	})
	require.NoError(t, err)
	assert.True(t, bytes.Contains(out, []byte("R$ 675,74")))
	assert.True(t, bytes.Contains(out, []byte("BLACK ROSE")))
}

func TestPDFRenderer_Logo(t *testing.T) {
	studio := entity.DefaultStudioProfile()

	t.Run("valid png replaces the name", func(t *testing.T) {
		studio.LogoURL = tinyPNG
		out, err := newRenderer().Render(context.Background(), adapter.RenderDocumentInput{Type: entity.DocumentTypeAftercare, Proposal: sampleProposal(), Studio: studio})
		require.NoError(t, err)
		assert.True(t, bytes.Contains(out, []byte("/Subtype /Image")))
		assert.False(t, bytes.Contains(out, []byte("SEU STUDIO")))
	})

	t.Run("broken logo falls back to the name", func(t *testing.T) {
		studio.LogoURL = "data:image/png;base64,bm90IGFuIGltYWdl"
		out, err := newRenderer().Render(context.Background(), adapter.RenderDocumentInput{Type: entity.DocumentTypeAftercare, Proposal: sampleProposal(), Studio: studio})
		require.NoError(t, err)
		assert.True(t, bytes.Contains(out, []byte("SEU STUDIO")))
	})
}

func TestPDFRenderer_Errors(t *testing.T) {
	r := newRenderer()

	_, err := r.Render(context.Background(), adapter.RenderDocumentInput{Type: entity.DocumentTypeContract})
	assert.Error(t, err)

	_, err = r.Render(context.Background(), adapter.RenderDocumentInput{Type: "invoice", Proposal: sampleProposal()})
	assert.Error(t, err)
}

func TestDecodeDataURL(t *testing.T) {
	kind, data, ok := decodeDataURL(tinyPNG)
	require.True(t, ok)
	assert.Equal(t, "PNG", kind)
	assert.NotEmpty(t, data)

	_, _, ok = decodeDataURL("https://example.com/logo.png")
	assert.False(t, ok)
	_, _, ok = decodeDataURL("data:image/svg+xml;base64,PHN2Zz4=")
	assert.False(t, ok)
}
