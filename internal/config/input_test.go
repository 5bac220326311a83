package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

const validYAML = `
settings:
  horizon_years: 10
  start_year: 2025
  inflation_rate: 0.04
  compounding: monthly
  contribution_timing: start_of_year
  person1:
    gross_salary: 95000
    salary_growth_rate: 0.03
    other_annual_income: 6000
  person2:
    gross_salary: 72000
    salary_growth_rate: 0.025
  monthly_recurring_expense: 4500
  annual_irregular_expense: 12000
  salary_tax_rate: 0.28
  other_income_tax_rate: 0.20
  starting_cash: 25000
accounts:
  - name: Brokerage
    initial_principal: 150000
    annual_contribution: 12000
    annual_return_rate: 0.07
    tax_on_returns_rate: 0.15
    reinvest_returns: true
  - initial_principal: 40000
    annual_return_rate: 0.035
    reinvest_returns: false
`

const validTOML = `
[settings]
horizon_years = 5
start_year = 2030
inflation_rate = "0.02"
compounding = "annual"
contribution_timing = "end_of_year"
monthly_recurring_expense = "2500"
annual_irregular_expense = "0"
salary_tax_rate = "0.30"
other_income_tax_rate = "0.10"
starting_cash = "-1000"

[settings.person1]
gross_salary = "80000"
salary_growth_rate = "0.02"
other_annual_income = "0"

[settings.person2]
gross_salary = "0"
salary_growth_rate = "0"
other_annual_income = "0"

[[accounts]]
name = "Index Fund"
initial_principal = "10000"
annual_contribution = "500"
annual_return_rate = "0.06"
tax_on_returns_rate = "0"
reinvest_returns = true
`

func writeTempConfig(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadFromFileYAML(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(writeTempConfig(t, "config.yaml", validYAML))
	require.NoError(t, err)

	assert.Equal(t, 10, cfg.Settings.HorizonYears)
	assert.Equal(t, 2025, cfg.Settings.StartYear)
	assert.Equal(t, domain.CompoundingMonthly, cfg.Settings.Compounding)
	assert.Equal(t, domain.ContributionStartOfYear, cfg.Settings.ContributionTiming)
	assert.True(t, cfg.Settings.Person1.GrossSalary.Equal(decimal.NewFromInt(95000)))
	assert.True(t, cfg.Settings.StartingCash.Equal(decimal.NewFromInt(25000)))
	assert.Nil(t, cfg.Settings.ExpenseGrowthRate, "expense growth stays nil unless overridden")

	require.Len(t, cfg.Accounts, 2)
	assert.Equal(t, "Brokerage", cfg.Accounts[0].Name)
	assert.Equal(t, "Account 2", cfg.Accounts[1].Name, "blank names get positional defaults")
	assert.False(t, cfg.Accounts[1].ReinvestReturns)
}

func TestLoadFromFileTOML(t *testing.T) {
	parser := NewInputParser()
	cfg, err := parser.LoadFromFile(writeTempConfig(t, "config.toml", validTOML))
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Settings.HorizonYears)
	assert.True(t, cfg.Settings.StartingCash.Equal(decimal.NewFromInt(-1000)),
		"negative starting cash is allowed")
	require.Len(t, cfg.Accounts, 1)
	assert.Equal(t, "Index Fund", cfg.Accounts[0].Name)
	assert.True(t, cfg.Accounts[0].AnnualReturnRate.Equal(decimal.NewFromFloat(0.06)))
}

func TestLoadFromFileMissing(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}

func TestLoadFromFileBadYAML(t *testing.T) {
	parser := NewInputParser()
	_, err := parser.LoadFromFile(writeTempConfig(t, "bad.yaml", "settings: ["))
	assert.Error(t, err)
}

func TestValidateConfiguration(t *testing.T) {
	base := func() *domain.Configuration {
		return NewInputParser().CreateExampleConfiguration()
	}

	tests := []struct {
		name   string
		mutate func(*domain.Configuration)
		errMsg string
	}{
		{
			name:   "horizon too small",
			mutate: func(c *domain.Configuration) { c.Settings.HorizonYears = 0 },
			errMsg: "horizon years",
		},
		{
			name:   "horizon too large",
			mutate: func(c *domain.Configuration) { c.Settings.HorizonYears = 81 },
			errMsg: "horizon years",
		},
		{
			name:   "start year out of range",
			mutate: func(c *domain.Configuration) { c.Settings.StartYear = 1776 },
			errMsg: "start year",
		},
		{
			name:   "unknown compounding",
			mutate: func(c *domain.Configuration) { c.Settings.Compounding = "weekly" },
			errMsg: "compounding",
		},
		{
			name:   "unknown contribution timing",
			mutate: func(c *domain.Configuration) { c.Settings.ContributionTiming = "whenever" },
			errMsg: "contribution timing",
		},
		{
			name:   "negative salary",
			mutate: func(c *domain.Configuration) { c.Settings.Person1.GrossSalary = decimal.NewFromInt(-1) },
			errMsg: "gross salary",
		},
		{
			name:   "salary growth below -100%",
			mutate: func(c *domain.Configuration) { c.Settings.Person2.SalaryGrowthRate = decimal.NewFromFloat(-1.5) },
			errMsg: "salary growth",
		},
		{
			name:   "negative expenses",
			mutate: func(c *domain.Configuration) { c.Settings.MonthlyRecurringExpense = decimal.NewFromInt(-100) },
			errMsg: "monthly recurring expense",
		},
		{
			name:   "salary tax rate above 1",
			mutate: func(c *domain.Configuration) { c.Settings.SalaryTaxRate = decimal.NewFromFloat(1.5) },
			errMsg: "salary tax rate",
		},
		{
			name:   "negative account principal",
			mutate: func(c *domain.Configuration) { c.Accounts[0].InitialPrincipal = decimal.NewFromInt(-1) },
			errMsg: "initial principal",
		},
		{
			name:   "negative account contribution",
			mutate: func(c *domain.Configuration) { c.Accounts[1].AnnualContribution = decimal.NewFromInt(-50) },
			errMsg: "annual contribution",
		},
		{
			name:   "return rate below -100%",
			mutate: func(c *domain.Configuration) { c.Accounts[0].AnnualReturnRate = decimal.NewFromFloat(-2) },
			errMsg: "annual return rate",
		},
		{
			name:   "returns tax rate above 1",
			mutate: func(c *domain.Configuration) { c.Accounts[0].TaxOnReturnsRate = decimal.NewFromFloat(2) },
			errMsg: "tax on returns",
		},
	}

	parser := NewInputParser()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := base()
			tt.mutate(cfg)
			err := parser.ValidateConfiguration(cfg)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestNegativeStartingCashIsValid(t *testing.T) {
	parser := NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	cfg.Settings.StartingCash = decimal.NewFromInt(-50000)
	assert.NoError(t, parser.ValidateConfiguration(cfg))
}

func TestApplyDefaults(t *testing.T) {
	parser := NewInputParser()
	cfg := &domain.Configuration{
		Settings: domain.ProjectionSettings{HorizonYears: 1, StartYear: 2025},
		Accounts: []domain.InvestmentAccount{{}, {Name: "Kept"}},
	}
	parser.ApplyDefaults(cfg)

	assert.Equal(t, domain.CompoundingAnnual, cfg.Settings.Compounding)
	assert.Equal(t, domain.ContributionEndOfYear, cfg.Settings.ContributionTiming)
	assert.Equal(t, "Account 1", cfg.Accounts[0].Name)
	assert.Equal(t, "Kept", cfg.Accounts[1].Name)
}

func TestExampleConfigurationIsValid(t *testing.T) {
	parser := NewInputParser()
	cfg := parser.CreateExampleConfiguration()
	assert.NoError(t, parser.ValidateConfiguration(cfg))
	assert.Equal(t, 30, cfg.Settings.HorizonYears)
	assert.Len(t, cfg.Accounts, 3)
}
