package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// CompoundingMode governs how an account's nominal annual return rate is
// converted into the year's actual gain.
type CompoundingMode string

const (
	// CompoundingAnnual applies the nominal rate once to the year's balance.
	CompoundingAnnual CompoundingMode = "annual"
	// CompoundingMonthly applies the effective annual rate implied by
	// compounding the nominal rate in twelve monthly periods.
	CompoundingMonthly CompoundingMode = "monthly"
)

// ContributionTiming controls when each year's fixed account contributions
// move from cash into the accounts relative to return application.
type ContributionTiming string

const (
	// ContributionStartOfYear applies contributions before returns, so the
	// contribution compounds for the year it was made.
	ContributionStartOfYear ContributionTiming = "start_of_year"
	// ContributionEndOfYear applies contributions after returns.
	ContributionEndOfYear ContributionTiming = "end_of_year"
)

// IncomeProfile describes one earner's income streams. Other annual income
// grows at the same rate as salary.
type IncomeProfile struct {
	GrossSalary       decimal.Decimal `yaml:"gross_salary" toml:"gross_salary" json:"gross_salary"`
	SalaryGrowthRate  decimal.Decimal `yaml:"salary_growth_rate" toml:"salary_growth_rate" json:"salary_growth_rate"`
	OtherAnnualIncome decimal.Decimal `yaml:"other_annual_income" toml:"other_annual_income" json:"other_annual_income"`
}

// ProjectionSettings holds every parameter of one projection run. It is
// constructed once (by the config layer) and never mutated by the engine.
type ProjectionSettings struct {
	HorizonYears int `yaml:"horizon_years" toml:"horizon_years" json:"horizon_years"`
	// StartYear is the calendar label for row 0. Display only.
	StartYear int `yaml:"start_year" toml:"start_year" json:"start_year"`

	InflationRate      decimal.Decimal    `yaml:"inflation_rate" toml:"inflation_rate" json:"inflation_rate"`
	Compounding        CompoundingMode    `yaml:"compounding" toml:"compounding" json:"compounding"`
	ContributionTiming ContributionTiming `yaml:"contribution_timing" toml:"contribution_timing" json:"contribution_timing"`

	Person1 IncomeProfile `yaml:"person1" toml:"person1" json:"person1"`
	Person2 IncomeProfile `yaml:"person2" toml:"person2" json:"person2"`

	MonthlyRecurringExpense decimal.Decimal `yaml:"monthly_recurring_expense" toml:"monthly_recurring_expense" json:"monthly_recurring_expense"`
	AnnualIrregularExpense  decimal.Decimal `yaml:"annual_irregular_expense" toml:"annual_irregular_expense" json:"annual_irregular_expense"`
	// ExpenseGrowthRate overrides the inflation rate for expense scaling.
	// Nil means expenses grow at InflationRate.
	ExpenseGrowthRate *decimal.Decimal `yaml:"expense_growth_rate,omitempty" toml:"expense_growth_rate,omitempty" json:"expense_growth_rate,omitempty"`

	SalaryTaxRate      decimal.Decimal `yaml:"salary_tax_rate" toml:"salary_tax_rate" json:"salary_tax_rate"`
	OtherIncomeTaxRate decimal.Decimal `yaml:"other_income_tax_rate" toml:"other_income_tax_rate" json:"other_income_tax_rate"`

	// StartingCash may be negative.
	StartingCash decimal.Decimal `yaml:"starting_cash" toml:"starting_cash" json:"starting_cash"`
}

// EffectiveExpenseGrowthRate resolves the optional expense growth override.
func (s *ProjectionSettings) EffectiveExpenseGrowthRate() decimal.Decimal {
	if s.ExpenseGrowthRate != nil {
		return *s.ExpenseGrowthRate
	}
	return s.InflationRate
}

// InvestmentAccount defines one independent account in the projection.
// Contributions are fixed nominal amounts: they are not growth-adjusted.
type InvestmentAccount struct {
	Name               string          `yaml:"name" toml:"name" json:"name"`
	InitialPrincipal   decimal.Decimal `yaml:"initial_principal" toml:"initial_principal" json:"initial_principal"`
	AnnualContribution decimal.Decimal `yaml:"annual_contribution" toml:"annual_contribution" json:"annual_contribution"`
	AnnualReturnRate   decimal.Decimal `yaml:"annual_return_rate" toml:"annual_return_rate" json:"annual_return_rate"`
	// TaxOnReturnsRate applies to the year's gain only, never to principal
	// or contributions.
	TaxOnReturnsRate decimal.Decimal `yaml:"tax_on_returns_rate" toml:"tax_on_returns_rate" json:"tax_on_returns_rate"`
	// ReinvestReturns keeps the post-tax gain compounding inside the
	// account; otherwise the gain is swept to household cash.
	ReinvestReturns bool `yaml:"reinvest_returns" toml:"reinvest_returns" json:"reinvest_returns"`
}

// DisplayName returns the account label, falling back to a positional
// default when the configured name is blank. pos is zero-based.
func (a *InvestmentAccount) DisplayName(pos int) string {
	if a.Name == "" {
		return fmt.Sprintf("Account %d", pos+1)
	}
	return a.Name
}

// Configuration is the full on-disk input: projection settings plus the
// ordered account list.
type Configuration struct {
	Settings ProjectionSettings  `yaml:"settings" toml:"settings" json:"settings"`
	Accounts []InvestmentAccount `yaml:"accounts" toml:"accounts" json:"accounts"`
}
