package share

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
)

type stubProposalRepo struct {
	adapter.ProposalRepository
	items map[uuid.UUID]*entity.SavedProject
}

func (s *stubProposalRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.SavedProject, error) {
	p, ok := s.items[id]
	if !ok {
		return nil, domainerror.ErrProposalNotFound
	}
	return p, nil
}

type stubClientRepo struct {
	adapter.ClientRepository
	items map[uuid.UUID]*entity.Client
}

func (s *stubClientRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Client, error) {
	c, ok := s.items[id]
	if !ok {
		return nil, domainerror.ErrClientNotFound
	}
	return c, nil
}

type stubSettingsRepo struct {
	adapter.SettingsRepository
}

func (stubSettingsRepo) GetStudioProfile(context.Context) (*entity.StudioProfile, error) {
	return &entity.StudioProfile{Name: "Black Rose"}, nil
}

type fakeWhatsApp struct {
	available bool
	err       error
	phone     string
	body      string
}

func (f *fakeWhatsApp) SendWhatsApp(_ context.Context, phone, body string) (*adapter.SendMessageResult, error) {
	f.phone, f.body = phone, body
	if f.err != nil {
		return nil, f.err
	}
	return &adapter.SendMessageResult{MessageID: "SM123"}, nil
}

func (f *fakeWhatsApp) IsAvailable() bool { return f.available }

type fakeEmail struct {
	available bool
	sent      *adapter.SendEmailInput
}

func (f *fakeEmail) Send(_ context.Context, input adapter.SendEmailInput) (*adapter.SendEmailResult, error) {
	f.sent = &input
	return &adapter.SendEmailResult{MessageID: "em_1"}, nil
}

func (f *fakeEmail) IsAvailable() bool { return f.available }

type fixture struct {
	proposal *entity.SavedProject
	client   *entity.Client
	whatsApp *fakeWhatsApp
	email    *fakeEmail
	uc       *ShareProposalUseCase
}

func newFixture(clientEmail string) *fixture {
	client := entity.NewClient("Marina", "+55 (11) 98888-7777", clientEmail, "")
	proposal := entity.NewSavedProject(entity.DefaultProject(), client, entity.ProposalStatusDraft, 1234.5, 425, 809.5, time.Now())
	f := &fixture{
		proposal: proposal,
		client:   client,
		whatsApp: &fakeWhatsApp{available: true},
		email:    &fakeEmail{available: true},
	}
	f.uc = NewShareProposalUseCase(
		&stubProposalRepo{items: map[uuid.UUID]*entity.SavedProject{proposal.ID: proposal}},
		&stubClientRepo{items: map[uuid.UUID]*entity.Client{client.ID: client}},
		stubSettingsRepo{},
		f.whatsApp,
		f.email,
	)
	return f
}

func TestQuoteMessage(t *testing.T) {
	f := newFixture("")

	msg := QuoteMessage(f.proposal)

	assert.Equal(t, "Olá Marina! Aqui está o orçamento para sua tattoo:\n\n"+
		"Estilo: Blackwork\n"+
		"Local: Antebraço (10cm x 10cm)\n"+
		"Valor Total: R$ 1.234,50\n\n"+
		"Podemos agendar?", msg)
}

func TestShareByWhatsApp(t *testing.T) {
	f := newFixture("")

	out, err := f.uc.Execute(context.Background(), ShareProposalInput{ProposalID: f.proposal.ID, Channel: ChannelWhatsApp})
	require.NoError(t, err)

	assert.Equal(t, "+5511988887777", f.whatsApp.phone)
	assert.Equal(t, QuoteMessage(f.proposal), f.whatsApp.body)
	assert.Equal(t, "SM123", out.MessageID)
	assert.True(t, strings.HasPrefix(out.Link, "https://wa.me/5511988887777?text=Ol%C3%A1%20Marina"))
}

func TestShareByWhatsApp_Failures(t *testing.T) {
	t.Run("no phone snapshot", func(t *testing.T) {
		f := newFixture("")
		f.proposal.ClientPhone = ""
		_, err := f.uc.Execute(context.Background(), ShareProposalInput{ProposalID: f.proposal.ID, Channel: ChannelWhatsApp})
		assert.ErrorIs(t, err, domainerror.ErrClientPhoneMissing)
		assert.True(t, domainerror.IsValidation(err))
	})

	t.Run("provider not configured", func(t *testing.T) {
		f := newFixture("")
		f.whatsApp.available = false
		_, err := f.uc.Execute(context.Background(), ShareProposalInput{ProposalID: f.proposal.ID, Channel: ChannelWhatsApp})
		assert.ErrorIs(t, err, domainerror.ErrChannelUnavailable)
	})

	t.Run("provider error", func(t *testing.T) {
		f := newFixture("")
		f.whatsApp.err = errors.New("21211 invalid number")
		_, err := f.uc.Execute(context.Background(), ShareProposalInput{ProposalID: f.proposal.ID, Channel: ChannelWhatsApp})
		var serr *domainerror.ShareError
		require.ErrorAs(t, err, &serr)
		assert.Equal(t, domainerror.ErrCodeDeliveryFailed, serr.Code)
	})
}

func TestShareByEmail(t *testing.T) {
	f := newFixture("marina@example.com")

	out, err := f.uc.Execute(context.Background(), ShareProposalInput{ProposalID: f.proposal.ID, Channel: ChannelEmail})
	require.NoError(t, err)

	require.NotNil(t, f.email.sent)
	assert.Equal(t, "marina@example.com", f.email.sent.To)
	assert.Equal(t, "Orçamento da sua tattoo - Black Rose", f.email.sent.Subject)
	assert.Contains(t, f.email.sent.HTML, "<br>")
	assert.Equal(t, "em_1", out.MessageID)
}

func TestShareByEmail_RequiresClientEmail(t *testing.T) {
	f := newFixture("")

	_, err := f.uc.Execute(context.Background(), ShareProposalInput{ProposalID: f.proposal.ID, Channel: ChannelEmail})
	assert.ErrorIs(t, err, domainerror.ErrClientEmailMissing)
	assert.Nil(t, f.email.sent)
}

func TestShare_InvalidInput(t *testing.T) {
	f := newFixture("")

	_, err := f.uc.Execute(context.Background(), ShareProposalInput{ProposalID: f.proposal.ID, Channel: "sms"})
	assert.ErrorIs(t, err, domainerror.ErrInvalidShareChannel)

	_, err = f.uc.Execute(context.Background(), ShareProposalInput{ProposalID: uuid.New(), Channel: ChannelEmail})
	assert.True(t, domainerror.IsNotFound(err))
}
