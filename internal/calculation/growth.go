package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
)

// AnnualGain returns the gain produced by balance over one year at the given
// nominal annual rate.
//
// Under annual compounding the gain is simply balance * rate. Under monthly
// compounding the nominal rate is converted to the effective annual rate,
// balance * ((1 + rate/12)^12 - 1), applied once to the year's balance.
// Intra-year contribution timing is not compounded at monthly granularity.
//
// Negative balances and negative rates are ordinary arithmetic here; the
// result is not clamped.
func AnnualGain(balance, rate decimal.Decimal, mode domain.CompoundingMode) decimal.Decimal {
	if mode == domain.CompoundingMonthly {
		effective := one.Add(rate.Div(twelve)).Pow(twelve).Sub(one)
		return balance.Mul(effective)
	}
	return balance.Mul(rate)
}

// growthFactor returns (1 + rate)^years, the scaling applied to incomes and
// expenses at year index years.
func growthFactor(rate decimal.Decimal, years int) decimal.Decimal {
	return one.Add(rate).Pow(decimal.NewFromInt(int64(years)))
}
