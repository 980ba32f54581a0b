// Package report contains the financial reporting use cases.
package report

import (
	"time"

	"github.com/inkprofit/backend/internal/domain/entity"
)

var monthNames = [12]string{"jan", "fev", "mar", "abr", "mai", "jun", "jul", "ago", "set", "out", "nov", "dez"}

// MonthlyBucket holds the sums of completed proposals for one calendar month.
type MonthlyBucket struct {
	Month   time.Month
	Name    string
	Revenue float64
	Profit  float64
	Cost    float64
}

// FinancialReport is the result of aggregating completed proposals.
// Totals cover every completed proposal; only Months is scoped to Year.
type FinancialReport struct {
	Year                int
	TotalRevenue        float64
	TotalCost           float64
	TotalProfit         float64
	AverageTicket       float64
	ProfitMarginPercent float64
	CompletedCount      int
	Months              [12]MonthlyBucket
}

// Aggregate builds the report using UTC to place proposals in months.
func Aggregate(proposals []*entity.SavedProject, year int) FinancialReport {
	return AggregateIn(proposals, year, time.UTC)
}

// AggregateIn builds the report, bucketing proposals by their creation month in loc.
func AggregateIn(proposals []*entity.SavedProject, year int, loc *time.Location) FinancialReport {
	if loc == nil {
		loc = time.UTC
	}

	report := FinancialReport{Year: year}
	for i := range report.Months {
		report.Months[i] = MonthlyBucket{Month: time.Month(i + 1), Name: monthNames[i]}
	}

	for _, p := range proposals {
		if p == nil || !p.IsCompleted() {
			continue
		}

		report.CompletedCount++
		report.TotalRevenue += p.FinalPrice
		report.TotalCost += p.FinalCost
		report.TotalProfit += p.FinalProfit

		createdAt := p.CreatedAt.In(loc)
		if createdAt.Year() != year {
			continue
		}
		bucket := &report.Months[createdAt.Month()-1]
		bucket.Revenue += p.FinalPrice
		bucket.Profit += p.FinalProfit
		bucket.Cost += p.FinalCost
	}

	if report.CompletedCount > 0 {
		report.AverageTicket = report.TotalRevenue / float64(report.CompletedCount)
	}
	if report.TotalRevenue != 0 {
		report.ProfitMarginPercent = report.TotalProfit / report.TotalRevenue * 100
	}

	return report
}
