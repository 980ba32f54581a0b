// Package entity defines the core business entities for the domain layer.
package entity

// DocumentType identifies a printable document generated for a proposal.
type DocumentType string

const (
	DocumentTypeContract  DocumentType = "contract"
	DocumentTypeAnamnesis DocumentType = "anamnesis"
	DocumentTypeAftercare DocumentType = "aftercare"
)

// IsValid reports whether the document type is supported.
func (d DocumentType) IsValid() bool {
	return d == DocumentTypeContract || d == DocumentTypeAnamnesis || d == DocumentTypeAftercare
}

// Title returns the heading printed on the document.
func (d DocumentType) Title() string {
	switch d {
	case DocumentTypeContract:
		return "Contrato de Prestação de Serviço"
	case DocumentTypeAnamnesis:
		return "Ficha de Anamnese"
	case DocumentTypeAftercare:
		return "Manual de Cuidados"
	default:
		return string(d)
	}
}
