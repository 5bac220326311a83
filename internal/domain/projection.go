package domain

import (
	"github.com/shopspring/decimal"
)

// YearResult is the snapshot emitted for a single projected year. All values
// are end-of-year unless named otherwise; nothing is rounded or formatted.
type YearResult struct {
	Year int `json:"year"`

	// Income
	GrossIncome decimal.Decimal `json:"gross_income"`

	// Taxes
	SalaryTax         decimal.Decimal `json:"salary_tax"`
	OtherIncomeTax    decimal.Decimal `json:"other_income_tax"`
	InvestmentGain    decimal.Decimal `json:"investment_gain_before_tax"`
	InvestmentTaxPaid decimal.Decimal `json:"investment_tax_paid"`
	TotalTaxes        decimal.Decimal `json:"total_taxes"`

	// Cashflow
	TotalExpenses decimal.Decimal `json:"total_expenses"`
	NetSavings    decimal.Decimal `json:"net_savings"`

	// Balances (end of year)
	EndingCash        decimal.Decimal `json:"ending_cash"`
	EndingInvestments decimal.Decimal `json:"ending_investments"`
	NetWorth          decimal.Decimal `json:"net_worth"`
}

// AccountBalance pairs an account label with its balance after the last
// projected year. Order matches the input account list.
type AccountBalance struct {
	Name    string          `json:"name"`
	Balance decimal.Decimal `json:"balance"`
}

// Projection is the complete output of one engine run.
type Projection struct {
	StartYear            int              `json:"start_year"`
	Years                []YearResult     `json:"years"`
	FinalAccountBalances []AccountBalance `json:"final_account_balances"`
	FinalCash            decimal.Decimal  `json:"final_cash"`
}

// FinalNetWorth returns the last year's net worth, or zero for an empty
// projection.
func (p *Projection) FinalNetWorth() decimal.Decimal {
	if len(p.Years) == 0 {
		return decimal.Zero
	}
	return p.Years[len(p.Years)-1].NetWorth
}

// FinalInvestmentValue sums the per-account ending balances.
func (p *Projection) FinalInvestmentValue() decimal.Decimal {
	total := decimal.Zero
	for _, ab := range p.FinalAccountBalances {
		total = total.Add(ab.Balance)
	}
	return total
}

// CumulativeTaxes sums total taxes across all projected years.
func (p *Projection) CumulativeTaxes() decimal.Decimal {
	total := decimal.Zero
	for _, y := range p.Years {
		total = total.Add(y.TotalTaxes)
	}
	return total
}

// CumulativeNetSavings sums net savings across all projected years.
func (p *Projection) CumulativeNetSavings() decimal.Decimal {
	total := decimal.Zero
	for _, y := range p.Years {
		total = total.Add(y.NetSavings)
	}
	return total
}

// FirstNegativeCashYear reports the first calendar year whose ending cash is
// negative. ok is false when cash never goes negative.
func (p *Projection) FirstNegativeCashYear() (year int, ok bool) {
	for _, y := range p.Years {
		if y.EndingCash.IsNegative() {
			return y.Year, true
		}
	}
	return 0, false
}
