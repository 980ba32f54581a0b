// Package client contains the client registry use cases.
package client

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

// CreateClientInput represents the input for client creation.
type CreateClientInput struct {
	Name  string
	Phone string
	Email string
	Notes string
}

// CreateClientOutput represents the output of client creation.
type CreateClientOutput struct {
	Client *entity.Client
}

// CreateClientUseCase handles client creation logic.
type CreateClientUseCase struct {
	clientRepo adapter.ClientRepository
	clock      adapter.Clock
}

// NewCreateClientUseCase creates a new CreateClientUseCase instance.
func NewCreateClientUseCase(clientRepo adapter.ClientRepository, clock adapter.Clock) *CreateClientUseCase {
	return &CreateClientUseCase{
		clientRepo: clientRepo,
		clock:      clock,
	}
}

// Execute validates the input and registers the client.
func (uc *CreateClientUseCase) Execute(ctx context.Context, input CreateClientInput) (*CreateClientOutput, error) {
	name, phone, err := validateContact(input.Name, input.Phone)
	if err != nil {
		return nil, err
	}

	client := entity.NewClient(name, phone, strings.TrimSpace(input.Email), strings.TrimSpace(input.Notes))
	now := uc.clock.Now()
	client.CreatedAt = now
	client.UpdatedAt = now

	if err := uc.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("failed to create client: %w", err)
	}

	return &CreateClientOutput{
		Client: client,
	}, nil
}

// validateContact trims and checks the two mandatory client fields.
func validateContact(name, phone string) (string, string, error) {
	name = strings.TrimSpace(name)
	phone = strings.TrimSpace(phone)

	if name == "" {
		return "", "", domainerror.NewClientError(
			domainerror.ErrCodeClientNameRequired,
			"client name is required",
			domainerror.ErrClientNameRequired,
		)
	}
	if phone == "" {
		return "", "", domainerror.NewClientError(
			domainerror.ErrCodeClientPhoneRequired,
			"client phone is required",
			domainerror.ErrClientPhoneRequired,
		)
	}
	if len(entity.PhoneDigits(phone)) < entity.MinPhoneDigits {
		return "", "", domainerror.NewClientError(
			domainerror.ErrCodeClientPhoneInvalid,
			"client phone must have at least 8 digits",
			domainerror.ErrClientPhoneInvalid,
		)
	}
	return name, phone, nil
}

// findClient loads a client and maps a missing record to a coded not-found error.
func findClient(ctx context.Context, repo adapter.ClientRepository, id uuid.UUID) (*entity.Client, error) {
	client, err := repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domainerror.ErrClientNotFound) {
			return nil, domainerror.NewClientError(
				domainerror.ErrCodeClientNotFound,
				"client not found",
				domainerror.ErrClientNotFound,
			)
		}
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	return client, nil
}
