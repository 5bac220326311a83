package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed year-by-year report.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(projection *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "HOUSEHOLD CASHFLOW PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	if len(projection.Years) > 0 {
		last := projection.Years[len(projection.Years)-1]
		fmt.Fprintf(&buf, "Horizon: %d years (%d-%d)\n", len(projection.Years), projection.StartYear, last.Year)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintf(&buf, "%-6s %14s %14s %14s %14s %14s %14s %14s\n",
		"Year", "Gross Income", "Total Taxes", "Expenses", "Net Savings", "Cash", "Investments", "Net Worth")
	fmt.Fprintln(&buf, strings.Repeat("-", 112))
	for _, y := range projection.Years {
		fmt.Fprintf(&buf, "%-6d %14s %14s %14s %14s %14s %14s %14s\n",
			y.Year,
			FormatCurrency(y.GrossIncome),
			FormatCurrency(y.TotalTaxes),
			FormatCurrency(y.TotalExpenses),
			FormatCurrency(y.NetSavings),
			FormatCurrency(y.EndingCash),
			FormatCurrency(y.EndingInvestments),
			FormatCurrency(y.NetWorth),
		)
	}
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "FINAL ACCOUNT BALANCES")
	fmt.Fprintln(&buf, "----------------------")
	for _, ab := range projection.FinalAccountBalances {
		fmt.Fprintf(&buf, "  %-24s %s\n", ab.Name+":", FormatCurrency(ab.Balance))
	}
	fmt.Fprintf(&buf, "  %-24s %s\n", "Cash:", FormatCurrency(projection.FinalCash))
	fmt.Fprintln(&buf)

	fmt.Fprintln(&buf, "SUMMARY")
	fmt.Fprintln(&buf, "-------")
	fmt.Fprintf(&buf, "  Final Net Worth:        %s (%s)\n", FormatCurrency(projection.FinalNetWorth()), FormatCompact(projection.FinalNetWorth()))
	fmt.Fprintf(&buf, "  Cumulative Taxes:       %s\n", FormatCurrency(projection.CumulativeTaxes()))
	fmt.Fprintf(&buf, "  Cumulative Net Savings: %s\n", FormatCurrency(projection.CumulativeNetSavings()))
	if year, ok := projection.FirstNegativeCashYear(); ok {
		fmt.Fprintf(&buf, "  Cash first negative in: %d\n", year)
	}

	return buf.Bytes(), nil
}
