// Package share delivers quote messages to clients.
package share

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

// Channel is a delivery channel for quote messages.
type Channel string

const (
	ChannelWhatsApp Channel = "whatsapp"
	ChannelEmail    Channel = "email"
)

// IsValid reports whether the channel is supported.
func (c Channel) IsValid() bool {
	return c == ChannelWhatsApp || c == ChannelEmail
}

// ShareProposalInput represents the input for sharing a proposal.
type ShareProposalInput struct {
	ProposalID uuid.UUID
	Channel    Channel
}

// ShareProposalOutput represents the result of sharing a proposal.
type ShareProposalOutput struct {
	Channel   Channel
	Recipient string
	Message   string
	MessageID string
	Link      string // wa.me link, WhatsApp only
}

// ShareProposalUseCase sends a proposal's quote message by WhatsApp or e-mail.
type ShareProposalUseCase struct {
	proposalRepo adapter.ProposalRepository
	clientRepo   adapter.ClientRepository
	settingsRepo adapter.SettingsRepository
	whatsApp     adapter.WhatsAppSender
	email        adapter.EmailSender
}

// NewShareProposalUseCase creates a new ShareProposalUseCase instance.
func NewShareProposalUseCase(
	proposalRepo adapter.ProposalRepository,
	clientRepo adapter.ClientRepository,
	settingsRepo adapter.SettingsRepository,
	whatsApp adapter.WhatsAppSender,
	email adapter.EmailSender,
) *ShareProposalUseCase {
	return &ShareProposalUseCase{
		proposalRepo: proposalRepo,
		clientRepo:   clientRepo,
		settingsRepo: settingsRepo,
		whatsApp:     whatsApp,
		email:        email,
	}
}

// Execute builds the quote message and delivers it over the requested channel.
func (uc *ShareProposalUseCase) Execute(ctx context.Context, input ShareProposalInput) (*ShareProposalOutput, error) {
	if !input.Channel.IsValid() {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeInvalidShareChannel,
			"invalid share channel",
			domainerror.ErrInvalidShareChannel,
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

	message := QuoteMessage(proposal)

	if input.Channel == ChannelWhatsApp {
		return uc.sendWhatsApp(ctx, proposal, message)
	}
	return uc.sendEmail(ctx, proposal, message)
}

func (uc *ShareProposalUseCase) sendWhatsApp(ctx context.Context, proposal *entity.SavedProject, message string) (*ShareProposalOutput, error) {
	phone := entity.PhoneDigits(proposal.ClientPhone)
	if phone == "" {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeClientPhoneMissing,
			"client phone not available for this proposal",
			domainerror.ErrClientPhoneMissing,
		)
	}

	if uc.whatsApp == nil || !uc.whatsApp.IsAvailable() {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeChannelUnavailable,
			"whatsapp delivery is not configured",
			domainerror.ErrChannelUnavailable,
		)
	}

	result, err := uc.whatsApp.SendWhatsApp(ctx, "+"+phone, message)
	if err != nil {
		slog.Error("Failed to send quote by WhatsApp", "error", err, "proposalID", proposal.ID)
		return nil, domainerror.NewShareError(domainerror.ErrCodeDeliveryFailed, "failed to send WhatsApp message", err)
	}

	return &ShareProposalOutput{
		Channel:   ChannelWhatsApp,
		Recipient: "+" + phone,
		Message:   message,
		MessageID: result.MessageID,
		Link:      WhatsAppLink(phone, message),
	}, nil
}

func (uc *ShareProposalUseCase) sendEmail(ctx context.Context, proposal *entity.SavedProject, message string) (*ShareProposalOutput, error) {
	client, err := uc.clientRepo.FindByID(ctx, proposal.ClientID)
	if err != nil && !errors.Is(err, domainerror.ErrClientNotFound) {
		return nil, fmt.Errorf("failed to find client: %w", err)
	}
	if client == nil || client.Email == "" {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeClientEmailMissing,
			"client e-mail not available for this proposal",
			domainerror.ErrClientEmailMissing,
		)
	}

	if uc.email == nil || !uc.email.IsAvailable() {
		return nil, domainerror.NewShareError(
			domainerror.ErrCodeChannelUnavailable,
			"e-mail delivery is not configured",
			domainerror.ErrChannelUnavailable,
		)
	}

	studioName := entity.DefaultStudioProfile().Name
	if studio, err := uc.settingsRepo.GetStudioProfile(ctx); err == nil {
		studioName = studio.WithFallbacks().Name
	}

	result, err := uc.email.Send(ctx, adapter.SendEmailInput{
		To:      client.Email,
		Name:    client.Name,
		Subject: "Orçamento da sua tattoo - " + studioName,
		HTML:    quoteHTML(message),
		Text:    message,
	})
	if err != nil {
		slog.Error("Failed to send quote by e-mail", "error", err, "proposalID", proposal.ID)
		return nil, domainerror.NewShareError(domainerror.ErrCodeDeliveryFailed, "failed to send e-mail", err)
	}

	return &ShareProposalOutput{
		Channel:   ChannelEmail,
		Recipient: client.Email,
		Message:   message,
		MessageID: result.MessageID,
	}, nil
}
