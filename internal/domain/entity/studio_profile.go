// Package entity defines the core business entities for the domain layer.
package entity

// MaxLogoBytes is the largest logo data URL accepted for a studio profile.
const MaxLogoBytes = 500 * 1024

// StudioProfile identifies the studio on printed documents.
type StudioProfile struct {
	Name      string
	OwnerName string
	Document  string // CPF or CNPJ
	Address   string
	Phone     string
	Email     string
	LogoURL   string // data URL, optional
}

// DefaultStudioProfile returns the placeholder profile shown before the owner fills it in.
func DefaultStudioProfile() StudioProfile {
	return StudioProfile{
		Name:      "Seu Studio",
		OwnerName: "Seu Nome",
		Document:  "000.000.000-00",
		Address:   "Rua da Tatuagem, 123",
		Phone:     "(00) 00000-0000",
		Email:     "contato@seustudio.com",
	}
}

// WithFallbacks returns a copy where empty fields are replaced by printable placeholders.
func (s StudioProfile) WithFallbacks() StudioProfile {
	if s.Name == "" {
		s.Name = "Nome do Estúdio"
	}
	if s.Address == "" {
		s.Address = "Endereço não informado"
	}
	if s.OwnerName == "" {
		s.OwnerName = "Tatuador"
	}
	return s
}
