package calculation

import (
	"github.com/shopspring/decimal"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

// generateProjection is the sequential fold over years. Each year's starting
// balances depend on the previous year's ending balances, so the fixed step
// order (incomes, taxes, expenses, contributions, per-account returns, net
// settlement) must not change.
func (e *ProjectionEngine) generateProjection(settings *domain.ProjectionSettings, accounts []domain.InvestmentAccount) *domain.Projection {
	cash := settings.StartingCash
	balances := make([]decimal.Decimal, len(accounts))
	for i := range accounts {
		balances[i] = accounts[i].InitialPrincipal
	}

	expenseGrowth := settings.EffectiveExpenseGrowthRate()
	baseExpenses := settings.MonthlyRecurringExpense.Mul(twelve).Add(settings.AnnualIrregularExpense)

	// Contributions are fixed nominal amounts each year, never
	// growth-adjusted.
	totalContribution := decimal.Zero
	for _, acct := range accounts {
		totalContribution = totalContribution.Add(acct.AnnualContribution)
	}

	years := make([]domain.YearResult, settings.HorizonYears)
	for yi := 0; yi < settings.HorizonYears; yi++ {
		// Incomes: each stream is scaled from its base value at year yi,
		// and each tax applies to the stream value itself, not to a derived
		// aggregate.
		salary1 := settings.Person1.GrossSalary.Mul(growthFactor(settings.Person1.SalaryGrowthRate, yi))
		other1 := settings.Person1.OtherAnnualIncome.Mul(growthFactor(settings.Person1.SalaryGrowthRate, yi))
		salary2 := settings.Person2.GrossSalary.Mul(growthFactor(settings.Person2.SalaryGrowthRate, yi))
		other2 := settings.Person2.OtherAnnualIncome.Mul(growthFactor(settings.Person2.SalaryGrowthRate, yi))

		grossIncome := salary1.Add(salary2).Add(other1).Add(other2)
		salaryTax := salary1.Mul(settings.SalaryTaxRate).Add(salary2.Mul(settings.SalaryTaxRate))
		otherIncomeTax := other1.Mul(settings.OtherIncomeTaxRate).Add(other2.Mul(settings.OtherIncomeTaxRate))

		// Both expense components share the same scaling exponent.
		totalExpenses := baseExpenses.Mul(growthFactor(expenseGrowth, yi))

		// Start-of-year contributions enter the accounts before returns are
		// computed, so they compound for this year.
		if settings.ContributionTiming == domain.ContributionStartOfYear {
			cash = cash.Sub(totalContribution)
			for i := range accounts {
				balances[i] = balances[i].Add(accounts[i].AnnualContribution)
			}
		}

		// Per-account returns. Accounts are independent; the running totals
		// are plain commutative sums.
		investmentGain := decimal.Zero
		investmentTax := decimal.Zero
		for i := range accounts {
			gain := AnnualGain(balances[i], accounts[i].AnnualReturnRate, settings.Compounding)
			tax := gain.Mul(accounts[i].TaxOnReturnsRate)
			if accounts[i].ReinvestReturns {
				balances[i] = balances[i].Add(gain.Sub(tax))
			} else {
				cash = cash.Add(gain.Sub(tax))
			}
			investmentGain = investmentGain.Add(gain)
			investmentTax = investmentTax.Add(tax)
		}

		// End-of-year contributions land on the post-return balances.
		if settings.ContributionTiming != domain.ContributionStartOfYear {
			cash = cash.Sub(totalContribution)
			for i := range accounts {
				balances[i] = balances[i].Add(accounts[i].AnnualContribution)
			}
		}

		totalTaxes := salaryTax.Add(otherIncomeTax).Add(investmentTax)
		netSavings := grossIncome.Sub(totalTaxes).Sub(totalExpenses)
		cash = cash.Add(netSavings)

		totalInvestments := decimal.Zero
		for _, b := range balances {
			totalInvestments = totalInvestments.Add(b)
		}

		years[yi] = domain.YearResult{
			Year:              settings.StartYear + yi,
			GrossIncome:       grossIncome,
			SalaryTax:         salaryTax,
			OtherIncomeTax:    otherIncomeTax,
			InvestmentGain:    investmentGain,
			InvestmentTaxPaid: investmentTax,
			TotalTaxes:        totalTaxes,
			TotalExpenses:     totalExpenses,
			NetSavings:        netSavings,
			EndingCash:        cash,
			EndingInvestments: totalInvestments,
			NetWorth:          cash.Add(totalInvestments),
		}

		if e.Debug {
			e.Logger.Debugf("year %d: gross=%s taxes=%s expenses=%s savings=%s cash=%s invested=%s",
				settings.StartYear+yi, grossIncome.StringFixed(2), totalTaxes.StringFixed(2),
				totalExpenses.StringFixed(2), netSavings.StringFixed(2),
				cash.StringFixed(2), totalInvestments.StringFixed(2))
		}
	}

	final := make([]domain.AccountBalance, len(accounts))
	for i := range accounts {
		final[i] = domain.AccountBalance{
			Name:    accounts[i].DisplayName(i),
			Balance: balances[i],
		}
	}

	return &domain.Projection{
		StartYear:            settings.StartYear,
		Years:                years,
		FinalAccountBalances: final,
		FinalCash:            cash,
	}
}
