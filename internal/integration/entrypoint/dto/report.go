// Package dto defines data transfer objects for API requests and responses.
package dto

import (
	"github.com/inkprofit/backend/internal/application/usecase/report"
	"github.com/inkprofit/backend/internal/domain/valueobject"
)

// MonthlyBucketResponse represents one month of the yearly chart.
type MonthlyBucketResponse struct {
	Month   int     `json:"month"`
	Name    string  `json:"name"`
	Revenue float64 `json:"revenue"`
	Profit  float64 `json:"profit"`
	Cost    float64 `json:"cost"`
}

// FinancialReportResponse represents the financial report in API responses.
type FinancialReportResponse struct {
	Year                int                     `json:"year"`
	TotalRevenue        float64                 `json:"total_revenue"`
	TotalCost           float64                 `json:"total_cost"`
	TotalProfit         float64                 `json:"total_profit"`
	AverageTicket       float64                 `json:"average_ticket"`
	ProfitMarginPercent float64                 `json:"profit_margin_percent"`
	CompletedCount      int                     `json:"completed_count"`
	FormattedRevenue    string                  `json:"formatted_revenue"`
	Months              []MonthlyBucketResponse `json:"months"`
}

// ToFinancialReportResponse converts a financial report to a FinancialReportResponse DTO.
func ToFinancialReportResponse(r *report.FinancialReport) FinancialReportResponse {
	months := make([]MonthlyBucketResponse, len(r.Months))
	for i, m := range r.Months {
		months[i] = MonthlyBucketResponse{
			Month:   int(m.Month),
			Name:    m.Name,
			Revenue: valueobject.RoundCents(m.Revenue),
			Profit:  valueobject.RoundCents(m.Profit),
			Cost:    valueobject.RoundCents(m.Cost),
		}
	}

	return FinancialReportResponse{
		Year:                r.Year,
		TotalRevenue:        valueobject.RoundCents(r.TotalRevenue),
		TotalCost:           valueobject.RoundCents(r.TotalCost),
		TotalProfit:         valueobject.RoundCents(r.TotalProfit),
		AverageTicket:       valueobject.RoundCents(r.AverageTicket),
		ProfitMarginPercent: valueobject.RoundPercent(r.ProfitMarginPercent),
		CompletedCount:      r.CompletedCount,
		FormattedRevenue:    valueobject.NewMoney(r.TotalRevenue).String(),
		Months:              months,
	}
}
