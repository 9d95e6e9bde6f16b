// Package fee computes borrowing charges.
package fee

import (
	"time"

	"github.com/shopspring/decimal"
)

const day = 24 * time.Hour

// OverdueMultiplier applies to each day past the expected return date.
var OverdueMultiplier = decimal.RequireFromString("1.5")

type Fee struct {
	Days        int
	OverdueDays int
	Base        decimal.Decimal
	Overdue     decimal.Decimal
}

func (f Fee) Total() decimal.Decimal {
	return f.Base.Add(f.Overdue)
}

// Compute charges every started day between borrowed and returned at dailyRate,
// plus OverdueMultiplier times the rate for every started day past expected.
// A loan is always billed at least one day, even when it is returned right away;
// this minimum charge is a deliberate business rule.
func Compute(borrowed, returned, expected time.Time, dailyRate decimal.Decimal) Fee {
	days := CeilDays(returned.Sub(borrowed))
	if days < 1 {
		days = 1
	}
	f := Fee{
		Days:    days,
		Base:    dailyRate.Mul(decimal.NewFromInt(int64(days))),
		Overdue: decimal.Zero,
	}
	if returned.After(expected) {
		f.OverdueDays = CeilDays(returned.Sub(expected))
		f.Overdue = dailyRate.Mul(decimal.NewFromInt(int64(f.OverdueDays))).Mul(OverdueMultiplier)
	}
	return f
}

// Projected is the fee quoted at checkout for a loan of days.
func Projected(dailyRate decimal.Decimal, days int) decimal.Decimal {
	return dailyRate.Mul(decimal.NewFromInt(int64(days)))
}

// CeilDays counts started days; non-positive durations give 0.
func CeilDays(d time.Duration) int {
	if d <= 0 {
		return 0
	}
	days := int(d / day)
	if d%day != 0 {
		days++
	}
	return days
}

// Scale multiplies a per copy amount by quantity.
func Scale(amount decimal.Decimal, quantity int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(quantity)))
}
