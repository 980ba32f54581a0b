// Package entity defines the core business entities for the domain layer.
package entity

// CostProfile holds the studio's fixed monthly expenses and working capacity.
// It is a singleton per studio and only affects quotes computed after it changes.
type CostProfile struct {
	MonthlyRent        float64
	MonthlyUtilities   float64 // Electricity, internet, etc.
	MonthlyMarketing   float64
	MonthlyMisc        float64
	DaysWorkedPerMonth float64
	HoursWorkedPerDay  float64
}

// DefaultCostProfile returns the profile used when nothing has been stored yet.
func DefaultCostProfile() CostProfile {
	return CostProfile{
		MonthlyRent:        1500,
		MonthlyUtilities:   300,
		MonthlyMarketing:   200,
		MonthlyMisc:        100,
		DaysWorkedPerMonth: 22,
		HoursWorkedPerDay:  6,
	}
}

// MonthlyFixedExpenses returns the sum of all fixed monthly expenses.
func (c CostProfile) MonthlyFixedExpenses() float64 {
	return c.MonthlyRent + c.MonthlyUtilities + c.MonthlyMarketing + c.MonthlyMisc
}

// MonthlyHours returns the total number of working hours available per month.
func (c CostProfile) MonthlyHours() float64 {
	return c.DaysWorkedPerMonth * c.HoursWorkedPerDay
}
