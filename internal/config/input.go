package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

// minusOne is the lower bound for any fractional rate: a rate below -100%
// has no financial meaning.
var minusOne = decimal.NewFromInt(-1)

// InputParser loads and validates projection configuration files. It owns
// all input validation; the engine assumes its inputs are in-domain.
type InputParser struct{}

// NewInputParser creates a new input parser.
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads a configuration from a YAML or TOML file, keyed on the
// file extension (.toml is TOML, everything else is parsed as YAML).
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}

	var config domain.Configuration
	if strings.EqualFold(filepath.Ext(filename), ".toml") {
		if err := toml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse TOML: %w", err)
		}
	} else {
		if err := yaml.Unmarshal(data, &config); err != nil {
			return nil, fmt.Errorf("failed to parse YAML: %w", err)
		}
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}
	ip.ApplyDefaults(&config)

	return &config, nil
}

// ApplyDefaults fills the enum defaults and positional account names. Called
// after validation so unknown enum values are rejected rather than silently
// replaced.
func (ip *InputParser) ApplyDefaults(config *domain.Configuration) {
	if config.Settings.Compounding == "" {
		config.Settings.Compounding = domain.CompoundingAnnual
	}
	if config.Settings.ContributionTiming == "" {
		config.Settings.ContributionTiming = domain.ContributionEndOfYear
	}
	for i := range config.Accounts {
		config.Accounts[i].Name = config.Accounts[i].DisplayName(i)
	}
}

// ValidateConfiguration validates the loaded configuration.
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validateSettings(&config.Settings); err != nil {
		return fmt.Errorf("settings validation failed: %w", err)
	}
	for i := range config.Accounts {
		if err := ip.validateAccount(&config.Accounts[i]); err != nil {
			return fmt.Errorf("account %d (%s) validation failed: %w", i+1, config.Accounts[i].DisplayName(i), err)
		}
	}
	return nil
}

// validateSettings checks the projection-wide parameters.
func (ip *InputParser) validateSettings(s *domain.ProjectionSettings) error {
	if s.HorizonYears < 1 || s.HorizonYears > 80 {
		return fmt.Errorf("horizon years must be between 1 and 80, got %d", s.HorizonYears)
	}
	if s.StartYear < 1900 || s.StartYear > 2100 {
		return fmt.Errorf("start year must be between 1900 and 2100, got %d", s.StartYear)
	}
	if s.InflationRate.LessThanOrEqual(minusOne) {
		return fmt.Errorf("inflation rate cannot be -100%% or lower")
	}
	switch s.Compounding {
	case domain.CompoundingAnnual, domain.CompoundingMonthly, "":
	default:
		return fmt.Errorf("compounding must be %q or %q, got %q",
			domain.CompoundingAnnual, domain.CompoundingMonthly, s.Compounding)
	}
	switch s.ContributionTiming {
	case domain.ContributionStartOfYear, domain.ContributionEndOfYear, "":
	default:
		return fmt.Errorf("contribution timing must be %q or %q, got %q",
			domain.ContributionStartOfYear, domain.ContributionEndOfYear, s.ContributionTiming)
	}

	if err := ip.validateIncomeProfile("person1", &s.Person1); err != nil {
		return err
	}
	if err := ip.validateIncomeProfile("person2", &s.Person2); err != nil {
		return err
	}

	if s.MonthlyRecurringExpense.IsNegative() {
		return fmt.Errorf("monthly recurring expense cannot be negative")
	}
	if s.AnnualIrregularExpense.IsNegative() {
		return fmt.Errorf("annual irregular expense cannot be negative")
	}
	if s.ExpenseGrowthRate != nil && s.ExpenseGrowthRate.LessThanOrEqual(minusOne) {
		return fmt.Errorf("expense growth rate cannot be -100%% or lower")
	}
	if err := validateTaxRate("salary tax rate", s.SalaryTaxRate); err != nil {
		return err
	}
	if err := validateTaxRate("other income tax rate", s.OtherIncomeTaxRate); err != nil {
		return err
	}
	// Starting cash may be negative: a household can begin in debt.
	return nil
}

// validateIncomeProfile checks one earner's income streams.
func (ip *InputParser) validateIncomeProfile(name string, p *domain.IncomeProfile) error {
	if p.GrossSalary.IsNegative() {
		return fmt.Errorf("%s: gross salary cannot be negative", name)
	}
	if p.OtherAnnualIncome.IsNegative() {
		return fmt.Errorf("%s: other annual income cannot be negative", name)
	}
	if p.SalaryGrowthRate.LessThanOrEqual(minusOne) {
		return fmt.Errorf("%s: salary growth rate cannot be -100%% or lower", name)
	}
	return nil
}

// validateAccount checks a single investment account definition.
func (ip *InputParser) validateAccount(a *domain.InvestmentAccount) error {
	if a.InitialPrincipal.IsNegative() {
		return fmt.Errorf("initial principal cannot be negative")
	}
	if a.AnnualContribution.IsNegative() {
		return fmt.Errorf("annual contribution cannot be negative")
	}
	if a.AnnualReturnRate.LessThanOrEqual(minusOne) {
		return fmt.Errorf("annual return rate cannot be -100%% or lower")
	}
	return validateTaxRate("tax on returns rate", a.TaxOnReturnsRate)
}

func validateTaxRate(name string, rate decimal.Decimal) error {
	if rate.IsNegative() || rate.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("%s must be between 0 and 1, got %s", name, rate.String())
	}
	return nil
}

// CreateExampleConfiguration returns a ready-to-run configuration with the
// defaults the interactive form seeded: 30-year horizon starting 2025, 4%
// inflation, annual compounding.
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	return &domain.Configuration{
		Settings: domain.ProjectionSettings{
			HorizonYears:            30,
			StartYear:               2025,
			InflationRate:           decimal.NewFromFloat(0.04),
			Compounding:             domain.CompoundingAnnual,
			ContributionTiming:      domain.ContributionEndOfYear,
			Person1:                 domain.IncomeProfile{GrossSalary: decimal.NewFromInt(95000), SalaryGrowthRate: decimal.NewFromFloat(0.03), OtherAnnualIncome: decimal.NewFromInt(6000)},
			Person2:                 domain.IncomeProfile{GrossSalary: decimal.NewFromInt(72000), SalaryGrowthRate: decimal.NewFromFloat(0.025), OtherAnnualIncome: decimal.Zero},
			MonthlyRecurringExpense: decimal.NewFromInt(4500),
			AnnualIrregularExpense:  decimal.NewFromInt(12000),
			SalaryTaxRate:           decimal.NewFromFloat(0.28),
			OtherIncomeTaxRate:      decimal.NewFromFloat(0.20),
			StartingCash:            decimal.NewFromInt(25000),
		},
		Accounts: []domain.InvestmentAccount{
			{
				Name:               "Brokerage",
				InitialPrincipal:   decimal.NewFromInt(150000),
				AnnualContribution: decimal.NewFromInt(12000),
				AnnualReturnRate:   decimal.NewFromFloat(0.07),
				TaxOnReturnsRate:   decimal.NewFromFloat(0.15),
				ReinvestReturns:    true,
			},
			{
				Name:               "Retirement Fund",
				InitialPrincipal:   decimal.NewFromInt(220000),
				AnnualContribution: decimal.NewFromInt(18000),
				AnnualReturnRate:   decimal.NewFromFloat(0.06),
				TaxOnReturnsRate:   decimal.Zero,
				ReinvestReturns:    true,
			},
			{
				Name:               "High-Yield Savings",
				InitialPrincipal:   decimal.NewFromInt(40000),
				AnnualContribution: decimal.NewFromInt(3000),
				AnnualReturnRate:   decimal.NewFromFloat(0.035),
				TaxOnReturnsRate:   decimal.NewFromFloat(0.25),
				ReinvestReturns:    false,
			},
		},
	}
}
