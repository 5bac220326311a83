package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a monetary amount with financial precision. It wraps
// decimal.Decimal and adds display-oriented helpers used by the report
// formatters.
type Money struct {
	decimal.Decimal
}

// NewMoney creates a new Money instance from a float64
func NewMoney(value float64) Money {
	return Money{decimal.NewFromFloat(value)}
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// NewMoneyFromString creates a new Money instance from a string
func NewMoneyFromString(value string) (Money, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return Money{}, err
	}
	return Money{d}, nil
}

// Round rounds the money amount to cents
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// Annual converts a monthly amount to annual
func (m Money) Annual() Money {
	return Money{m.Decimal.Mul(decimal.NewFromInt(12))}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// IsZero checks if the amount is zero
func (m Money) IsZero() bool {
	return m.Decimal.IsZero()
}

// IsNegative checks if the amount is negative
func (m Money) IsNegative() bool {
	return m.Decimal.IsNegative()
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// String returns the amount fixed to two decimal places
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}

// Format formats the amount as currency
func (m Money) Format() string {
	return "$" + m.String()
}

var (
	thousand = decimal.NewFromInt(1_000)
	million  = decimal.NewFromInt(1_000_000)
	billion  = decimal.NewFromInt(1_000_000_000)
)

// Compact renders the amount in abbreviated magnitude units: $12.3K, $1.23M,
// $4.56B. Amounts under a thousand fall back to plain currency formatting.
func (m Money) Compact() string {
	d := m.Decimal
	prefix := "$"
	if d.IsNegative() {
		prefix = "-$"
		d = d.Abs()
	}
	switch {
	case d.GreaterThanOrEqual(billion):
		return prefix + d.Div(billion).StringFixed(2) + "B"
	case d.GreaterThanOrEqual(million):
		return prefix + d.Div(million).StringFixed(2) + "M"
	case d.GreaterThanOrEqual(thousand):
		return prefix + d.Div(thousand).StringFixed(1) + "K"
	default:
		return prefix + d.StringFixed(2)
	}
}
