// Package report contains the financial reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/inkprofit/backend/internal/application/adapter"
	"github.com/inkprofit/backend/internal/domain/entity"
)

// GetFinancialReportInput represents the input for the financial report.
type GetFinancialReportInput struct {
	Year int // zero means the current year
}

// GetFinancialReportOutput represents the output of the financial report.
type GetFinancialReportOutput struct {
	Report FinancialReport
}

// GetFinancialReportUseCase aggregates completed proposals into KPIs and a monthly series.
type GetFinancialReportUseCase struct {
	proposalRepo adapter.ProposalRepository
	clock        adapter.Clock
	location     *time.Location
}

// NewGetFinancialReportUseCase creates a new GetFinancialReportUseCase instance.
func NewGetFinancialReportUseCase(proposalRepo adapter.ProposalRepository, clock adapter.Clock, location *time.Location) *GetFinancialReportUseCase {
	if location == nil {
		location = time.UTC
	}
	return &GetFinancialReportUseCase{
		proposalRepo: proposalRepo,
		clock:        clock,
		location:     location,
	}
}

// Execute loads the completed proposals and aggregates them.
func (uc *GetFinancialReportUseCase) Execute(ctx context.Context, input GetFinancialReportInput) (*GetFinancialReportOutput, error) {
	year := input.Year
	if year == 0 {
		year = uc.clock.Now().In(uc.location).Year()
	}

	completed := entity.ProposalStatusCompleted
	proposals, err := uc.proposalRepo.FindAll(ctx, adapter.ProposalFilter{Status: &completed})
	if err != nil {
		return nil, fmt.Errorf("failed to list completed proposals: %w", err)
	}

	return &GetFinancialReportOutput{
		Report: AggregateIn(proposals, year, uc.location),
	}, nil
}
