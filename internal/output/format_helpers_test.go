package output

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatCurrency(t *testing.T) {
	assert.Equal(t, "$1234.50", FormatCurrency(decimal.NewFromFloat(1234.5)))
	assert.Equal(t, "$0.00", FormatCurrency(decimal.Zero))
	assert.Equal(t, "$-42.10", FormatCurrency(decimal.NewFromFloat(-42.1)))
}

func TestFormatCompact(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{950, "$950.00"},
		{12345, "$12.3K"},
		{1234567, "$1.23M"},
		{4560000000, "$4.56B"},
		{-1234567, "-$1.23M"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatCompact(decimal.NewFromFloat(tt.in)))
	}
}

func TestFormatPercentage(t *testing.T) {
	assert.Equal(t, "4.00%", FormatPercentage(decimal.NewFromFloat(0.04)))
	assert.Equal(t, "-1.50%", FormatPercentage(decimal.NewFromFloat(-0.015)))
}
