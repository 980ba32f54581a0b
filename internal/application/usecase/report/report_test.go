package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
)

func proposalAt(status entity.ProposalStatus, price, cost float64, at time.Time) *entity.SavedProject {
	return &entity.SavedProject{
		Project:     entity.DefaultProject(),
		ID:          uuid.New(),
		Status:      status,
		FinalPrice:  price,
		FinalCost:   cost,
		FinalProfit: price - cost,
		CreatedAt:   at,
	}
}

func TestAggregate_NoCompletedProposals(t *testing.T) {
	drafts := []*entity.SavedProject{
		proposalAt(entity.ProposalStatusDraft, 500, 200, time.Date(2026, 2, 1, 12, 0, 0, 0, time.UTC)),
	}

	r := Aggregate(drafts, 2026)

	assert.Zero(t, r.CompletedCount)
	assert.Zero(t, r.TotalRevenue)
	assert.Zero(t, r.AverageTicket)
	assert.Zero(t, r.ProfitMarginPercent)
	for i, m := range r.Months {
		assert.Equal(t, time.Month(i+1), m.Month)
		assert.Zero(t, m.Revenue)
	}
	assert.Equal(t, "jan", r.Months[0].Name)
	assert.Equal(t, "dez", r.Months[11].Name)
}

func TestAggregate_TotalsAreAllTimeMonthsAreYearScoped(t *testing.T) {
	proposals := []*entity.SavedProject{
		proposalAt(entity.ProposalStatusCompleted, 1000, 400, time.Date(2025, 3, 10, 12, 0, 0, 0, time.UTC)),
		proposalAt(entity.ProposalStatusCompleted, 600, 300, time.Date(2026, 3, 20, 12, 0, 0, 0, time.UTC)),
		proposalAt(entity.ProposalStatusCompleted, 400, 100, time.Date(2026, 3, 2, 12, 0, 0, 0, time.UTC)),
		proposalAt(entity.ProposalStatusCompleted, 200, 250, time.Date(2026, 7, 1, 12, 0, 0, 0, time.UTC)),
		proposalAt(entity.ProposalStatusDraft, 9999, 1, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)),
	}

	r := Aggregate(proposals, 2026)

	assert.Equal(t, 4, r.CompletedCount)
	assert.InDelta(t, 2200, r.TotalRevenue, 1e-9)
	assert.InDelta(t, 1050, r.TotalCost, 1e-9)
	assert.InDelta(t, 1150, r.TotalProfit, 1e-9)
	assert.InDelta(t, 550, r.AverageTicket, 1e-9)
	assert.InDelta(t, 1150.0/2200*100, r.ProfitMarginPercent, 1e-9)

	march := r.Months[time.March-1]
	assert.InDelta(t, 1000, march.Revenue, 1e-9)
	assert.InDelta(t, 400, march.Cost, 1e-9)
	assert.InDelta(t, 600, march.Profit, 1e-9)

	july := r.Months[time.July-1]
	assert.InDelta(t, 200, july.Revenue, 1e-9)
	assert.InDelta(t, -50, july.Profit, 1e-9)

	var seriesRevenue float64
	for _, m := range r.Months {
		seriesRevenue += m.Revenue
	}
	assert.InDelta(t, 1200, seriesRevenue, 1e-9)
}

func TestAggregateIn_UsesLocationForMonthBoundaries(t *testing.T) {
	saoPaulo := time.FixedZone("BRT", -3*60*60)
	// 02:00 UTC on Jan 1st is still Dec 31st in São Paulo.
	p := proposalAt(entity.ProposalStatusCompleted, 300, 100, time.Date(2026, 1, 1, 2, 0, 0, 0, time.UTC))

	utc := AggregateIn([]*entity.SavedProject{p}, 2026, time.UTC)
	local := AggregateIn([]*entity.SavedProject{p}, 2026, saoPaulo)
	previous := AggregateIn([]*entity.SavedProject{p}, 2025, saoPaulo)

	assert.InDelta(t, 300, utc.Months[0].Revenue, 1e-9)
	assert.Zero(t, local.Months[0].Revenue)
	assert.InDelta(t, 300, previous.Months[11].Revenue, 1e-9)
	assert.Equal(t, 1, local.CompletedCount)
}

type stubProposalRepo struct {
	adapter.ProposalRepository
	proposals []*entity.SavedProject
	filter    adapter.ProposalFilter
	err       error
}

func (s *stubProposalRepo) FindAll(_ context.Context, filter adapter.ProposalFilter) ([]*entity.SavedProject, error) {
	s.filter = filter
	return s.proposals, s.err
}

func TestGetFinancialReportUseCase(t *testing.T) {
	now := time.Date(2026, 5, 5, 10, 0, 0, 0, time.UTC)
	clock := adapter.ClockFunc(func() time.Time { return now })

	t.Run("defaults to current year and asks only for completed", func(t *testing.T) {
		repo := &stubProposalRepo{proposals: []*entity.SavedProject{
			proposalAt(entity.ProposalStatusCompleted, 500, 200, now),
		}}
		uc := NewGetFinancialReportUseCase(repo, clock, nil)

		out, err := uc.Execute(context.Background(), GetFinancialReportInput{})
		require.NoError(t, err)

		require.NotNil(t, repo.filter.Status)
		assert.Equal(t, entity.ProposalStatusCompleted, *repo.filter.Status)
		assert.Equal(t, 2026, out.Report.Year)
		assert.InDelta(t, 500, out.Report.Months[time.May-1].Revenue, 1e-9)
	})

	t.Run("repository failure", func(t *testing.T) {
		repo := &stubProposalRepo{err: errors.New("connection reset")}
		uc := NewGetFinancialReportUseCase(repo, clock, time.UTC)

		_, err := uc.Execute(context.Background(), GetFinancialReportInput{Year: 2025})
		assert.ErrorContains(t, err, "connection reset")
	})
}
