package proposal

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
	domainerror "github.com/inkprofit/backend/internal/domain/error"
	"github.com/inkprofit/backend/internal/domain/pricing"
)

var fixedNow = time.Date(2026, time.March, 14, 15, 30, 0, 0, time.UTC)

type fixture struct {
	proposals *fakeProposalRepo
	clients   *fakeClientRepo
	client    *entity.Client
	save      *SaveProposalUseCase
	close     *CloseProposalUseCase
	delete    *DeleteProposalUseCase
	get       *GetProposalUseCase
	list      *ListProposalsUseCase
}

func newFixture() *fixture {
	client := entity.NewClient("Marina Costa", "+55 (11) 98888-7777", "marina@example.com", "")
	f := &fixture{
		proposals: newFakeProposalRepo(),
		clients:   newFakeClientRepo(client),
		client:    client,
	}
	clock := adapter.ClockFunc(func() time.Time { return fixedNow })
	f.save = NewSaveProposalUseCase(f.proposals, f.clients, clock)
	f.close = NewCloseProposalUseCase(f.proposals)
	f.delete = NewDeleteProposalUseCase(f.proposals)
	f.get = NewGetProposalUseCase(f.proposals)
	f.list = NewListProposalsUseCase(f.proposals)
	return f
}

func (f *fixture) saveDraft(t *testing.T) *entity.SavedProject {
	t.Helper()
	out, err := f.save.Execute(context.Background(), SaveProposalInput{
		Project:  entity.DefaultProject(),
		Costs:    entity.DefaultCostProfile(),
		ClientID: f.client.ID,
		Status:   entity.ProposalStatusDraft,
	})
	require.NoError(t, err)
	return out.Proposal
}

func TestSaveProposal_RequiresClient(t *testing.T) {
	f := newFixture()

	out, err := f.save.Execute(context.Background(), SaveProposalInput{
		Project: entity.DefaultProject(),
		Costs:   entity.DefaultCostProfile(),
		Status:  entity.ProposalStatusDraft,
	})

	assert.Nil(t, out)
	assert.True(t, domainerror.IsValidation(err))
	assert.ErrorIs(t, err, domainerror.ErrClientRequired)

	var perr *domainerror.ProposalError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, domainerror.ErrCodeClientRequired, perr.Code)
	assert.Empty(t, f.proposals.items, "collection must not change")
}

func TestSaveProposal_ValidationFailures(t *testing.T) {
	unknownStyle := entity.DefaultProject()
	unknownStyle.Style = "Pontilhismo"
	negativeHours := entity.DefaultProject()
	negativeHours.TattooTimeHours = -1
	overflowingRate := entity.DefaultProject()
	overflowingRate.HourlyRate = 1e308

	tests := []struct {
		name     string
		mutate   func(f *fixture, in *SaveProposalInput)
		wantErr  error
		wantCode domainerror.ProposalErrorCode
	}{
		{
			name:     "unknown client",
			mutate:   func(_ *fixture, in *SaveProposalInput) { in.ClientID = uuid.New() },
			wantErr:  domainerror.ErrProposalClientNotFound,
			wantCode: domainerror.ErrCodeProposalClientNotFound,
		},
		{
			name:     "invalid status",
			mutate:   func(_ *fixture, in *SaveProposalInput) { in.Status = "archived" },
			wantErr:  domainerror.ErrInvalidProposalStatus,
			wantCode: domainerror.ErrCodeInvalidProposalStatus,
		},
		{
			name:     "unknown style",
			mutate:   func(_ *fixture, in *SaveProposalInput) { in.Project = unknownStyle },
			wantErr:  domainerror.ErrInvalidProject,
			wantCode: domainerror.ErrCodeInvalidProject,
		},
		{
			name:     "negative hours",
			mutate:   func(_ *fixture, in *SaveProposalInput) { in.Project = negativeHours },
			wantErr:  domainerror.ErrInvalidProject,
			wantCode: domainerror.ErrCodeInvalidProject,
		},
		{
			name:     "price overflows",
			mutate:   func(_ *fixture, in *SaveProposalInput) { in.Project = overflowingRate },
			wantErr:  domainerror.ErrInvalidProject,
			wantCode: domainerror.ErrCodeInvalidProject,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture()
			in := SaveProposalInput{
				Project:  entity.DefaultProject(),
				Costs:    entity.DefaultCostProfile(),
				ClientID: f.client.ID,
				Status:   entity.ProposalStatusDraft,
			}
			tt.mutate(f, &in)

			_, err := f.save.Execute(context.Background(), in)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.True(t, domainerror.IsValidation(err))
			var perr *domainerror.ProposalError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, tt.wantCode, perr.Code)
			assert.Empty(t, f.proposals.items)
		})
	}
}

func TestSaveProposal_FreezesComputedFigures(t *testing.T) {
	f := newFixture()
	project := entity.DefaultProject()
	costs := entity.DefaultCostProfile()

	out, err := f.save.Execute(context.Background(), SaveProposalInput{
		Project:  project,
		Costs:    costs,
		ClientID: f.client.ID,
		Status:   entity.ProposalStatusCompleted,
	})
	require.NoError(t, err)

	want := pricing.Compute(project, costs)
	p := out.Proposal
	assert.NotEqual(t, uuid.Nil, p.ID)
	assert.Equal(t, want.SuggestedPrice, p.FinalPrice)
	assert.Equal(t, want.TotalBaseCost, p.FinalCost)
	assert.Equal(t, want.ProfitAmount, p.FinalProfit)
	assert.Equal(t, entity.ProposalStatusCompleted, p.Status)
	assert.Equal(t, f.client.ID, p.ClientID)
	assert.Equal(t, "Marina Costa", p.ClientName)
	assert.Equal(t, "+55 (11) 98888-7777", p.ClientPhone)
	assert.Equal(t, fixedNow, p.CreatedAt)
	assert.Equal(t, project, p.Project)
	assert.Len(t, f.proposals.items, 1)
}

func TestSaveProposal_SnapshotSurvivesCostAndClientChanges(t *testing.T) {
	f := newFixture()
	saved := f.saveDraft(t)

	// The studio raises its rent and the client is removed afterwards.
	costs := entity.DefaultCostProfile()
	costs.MonthlyRent = 9000
	repriced := pricing.Compute(entity.DefaultProject(), costs)
	require.NoError(t, f.clients.Delete(context.Background(), f.client.ID))

	got, err := f.get.Execute(context.Background(), GetProposalInput{ProposalID: saved.ID})
	require.NoError(t, err)

	assert.NotEqual(t, repriced.SuggestedPrice, got.Proposal.FinalPrice)
	assert.Equal(t, saved.FinalPrice, got.Proposal.FinalPrice)
	assert.Equal(t, saved.FinalCost, got.Proposal.FinalCost)
	assert.Equal(t, saved.FinalProfit, got.Proposal.FinalProfit)
	assert.Equal(t, "Marina Costa", got.Proposal.ClientName)
}

func TestSaveProposal_RepositoryFailureIsNotValidation(t *testing.T) {
	f := newFixture()
	f.proposals.createErr = errors.New("disk full")

	_, err := f.save.Execute(context.Background(), SaveProposalInput{
		Project:  entity.DefaultProject(),
		Costs:    entity.DefaultCostProfile(),
		ClientID: f.client.ID,
		Status:   entity.ProposalStatusDraft,
	})

	require.Error(t, err)
	assert.False(t, domainerror.IsValidation(err))
	assert.Contains(t, err.Error(), "disk full")
}

func TestCloseProposal_SucceedsOnceThenRejects(t *testing.T) {
	f := newFixture()
	saved := f.saveDraft(t)

	out, err := f.close.Execute(context.Background(), CloseProposalInput{ProposalID: saved.ID})
	require.NoError(t, err)
	assert.Equal(t, entity.ProposalStatusCompleted, out.Proposal.Status)

	_, err = f.close.Execute(context.Background(), CloseProposalInput{ProposalID: saved.ID})
	assert.ErrorIs(t, err, domainerror.ErrProposalAlreadyCompleted)
	assert.True(t, domainerror.IsInvalidTransition(err))
	var perr *domainerror.ProposalError
	require.ErrorAs(t, err, &perr)
	assert.Equal(t, domainerror.ErrCodeProposalAlreadyCompleted, perr.Code)

	stored := f.proposals.items[saved.ID]
	assert.Equal(t, entity.ProposalStatusCompleted, stored.Status)
	assert.Equal(t, saved.FinalPrice, stored.FinalPrice)
	assert.Equal(t, saved.FinalCost, stored.FinalCost)
	assert.Equal(t, saved.FinalProfit, stored.FinalProfit)
	assert.Equal(t, saved.CreatedAt, stored.CreatedAt)
}

func TestCloseProposal_ConcurrentClosesSucceedOnce(t *testing.T) {
	f := newFixture()
	saved := f.saveDraft(t)

	// Both requests read the draft before either writes.
	var read sync.WaitGroup
	read.Add(2)
	f.proposals.afterFind = func() {
		read.Done()
		read.Wait()
	}

	errs := make([]error, 2)
	var done sync.WaitGroup
	for i := range errs {
		done.Add(1)
		go func(i int) {
			defer done.Done()
			_, errs[i] = f.close.Execute(context.Background(), CloseProposalInput{ProposalID: saved.ID})
		}(i)
	}
	done.Wait()

	succeeded := 0
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		assert.ErrorIs(t, err, domainerror.ErrProposalAlreadyCompleted)
		assert.True(t, domainerror.IsInvalidTransition(err))
	}
	assert.Equal(t, 1, succeeded)
}

func TestCloseProposal_NotFound(t *testing.T) {
	f := newFixture()

	_, err := f.close.Execute(context.Background(), CloseProposalInput{ProposalID: uuid.New()})

	assert.ErrorIs(t, err, domainerror.ErrProposalNotFound)
	assert.True(t, domainerror.IsNotFound(err))
}

func TestDeleteProposal(t *testing.T) {
	t.Run("not found", func(t *testing.T) {
		f := newFixture()
		_, err := f.delete.Execute(context.Background(), DeleteProposalInput{ProposalID: uuid.New()})
		assert.True(t, domainerror.IsNotFound(err))
	})

	t.Run("removes draft", func(t *testing.T) {
		f := newFixture()
		saved := f.saveDraft(t)

		out, err := f.delete.Execute(context.Background(), DeleteProposalInput{ProposalID: saved.ID})
		require.NoError(t, err)
		assert.True(t, out.Success)
		assert.False(t, out.WasCompleted)
		assert.Empty(t, f.proposals.items)
	})

	t.Run("removes completed", func(t *testing.T) {
		f := newFixture()
		saved := f.saveDraft(t)
		_, err := f.close.Execute(context.Background(), CloseProposalInput{ProposalID: saved.ID})
		require.NoError(t, err)

		out, err := f.delete.Execute(context.Background(), DeleteProposalInput{ProposalID: saved.ID})
		require.NoError(t, err)
		assert.True(t, out.WasCompleted)
		assert.Empty(t, f.proposals.items)
	})
}

func TestListProposals_FiltersByStatus(t *testing.T) {
	f := newFixture()
	draft := f.saveDraft(t)
	closed := f.saveDraft(t)
	_, err := f.close.Execute(context.Background(), CloseProposalInput{ProposalID: closed.ID})
	require.NoError(t, err)

	all, err := f.list.Execute(context.Background(), ListProposalsInput{})
	require.NoError(t, err)
	assert.Len(t, all.Proposals, 2)

	status := entity.ProposalStatusDraft
	drafts, err := f.list.Execute(context.Background(), ListProposalsInput{Status: &status})
	require.NoError(t, err)
	require.Len(t, drafts.Proposals, 1)
	assert.Equal(t, draft.ID, drafts.Proposals[0].ID)

	bad := entity.ProposalStatus("archived")
	_, err = f.list.Execute(context.Background(), ListProposalsInput{Status: &bad})
	assert.True(t, domainerror.IsValidation(err))
}
