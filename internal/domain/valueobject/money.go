// Package valueobject contains domain value objects for the InkProfit system.
package valueobject

import (
	"math"
	"strings"

	"github.com/shopspring/decimal"
)

// Money is a monetary amount in BRL. Calculations keep full precision;
// rounding only happens when a value is presented.
type Money struct {
	amount decimal.Decimal
}

// NewMoney wraps a float amount. NaN and infinities have no decimal form and become zero.
func NewMoney(amount float64) Money {
	return Money{amount: fromFloat(amount)}
}

func fromFloat(f float64) decimal.Decimal {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return decimal.Zero
	}
	return decimal.NewFromFloat(f)
}

// Rounded returns the amount rounded half away from zero to cents.
func (m Money) Rounded() decimal.Decimal {
	return m.amount.Round(2)
}

// Float returns the amount rounded to cents as a float64, for JSON payloads.
func (m Money) Float() float64 {
	f, _ := m.Rounded().Float64()
	return f
}

// String formats the amount the Brazilian way, e.g. "R$ 1.234,56".
func (m Money) String() string {
	rounded := m.Rounded()
	sign := ""
	if rounded.IsNegative() {
		sign = "-"
		rounded = rounded.Abs()
	}

	fixed := rounded.StringFixed(2)
	intPart, fracPart, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	return sign + "R$ " + b.String() + "," + fracPart
}

// RoundCents rounds a float amount to two decimals for presentation.
func RoundCents(amount float64) float64 {
	return NewMoney(amount).Float()
}

// RoundPercent rounds a percentage to one decimal for presentation.
func RoundPercent(percent float64) float64 {
	f, _ := fromFloat(percent).Round(1).Float64()
	return f
}
