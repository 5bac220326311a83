package output

import (
	"github.com/shopspring/decimal"

	pkgdecimal "github.com/fcgo/cashflow-projector/pkg/decimal"
)

// FormatCurrency formats a decimal as USD currency with 2 decimals. Kept
// here so it can be reused by multiple formatters and unit tested in
// isolation.
func FormatCurrency(amount decimal.Decimal) string {
	return pkgdecimal.NewMoneyFromDecimal(amount).Format()
}

// FormatCompact formats a decimal in abbreviated magnitude units ($1.23M).
func FormatCompact(amount decimal.Decimal) string {
	return pkgdecimal.NewMoneyFromDecimal(amount).Compact()
}

// FormatPercentage formats a fractional rate as a percentage with 2 decimals.
func FormatPercentage(rate decimal.Decimal) string {
	return rate.Mul(decimal.NewFromInt(100)).StringFixed(2) + "%"
}
