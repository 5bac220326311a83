package output

import (
	"bytes"
	"fmt"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

// ConsoleFormatter provides a concise console summary via the formatter
// interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(projection *domain.Projection) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "CASHFLOW PROJECTION SUMMARY")
	fmt.Fprintln(&buf, "===========================")
	if n := len(projection.Years); n > 0 {
		fmt.Fprintf(&buf, "Years: %d-%d (%d)\n", projection.StartYear, projection.Years[n-1].Year, n)
		first := projection.Years[0]
		fmt.Fprintf(&buf, "FirstYear: gross=%s taxes=%s savings=%s networth=%s\n",
			FormatCompact(first.GrossIncome), FormatCompact(first.TotalTaxes),
			FormatCompact(first.NetSavings), FormatCompact(first.NetWorth))
	}
	fmt.Fprintf(&buf, "FinalNetWorth=%s FinalCash=%s FinalInvestments=%s\n",
		FormatCompact(projection.FinalNetWorth()),
		FormatCompact(projection.FinalCash),
		FormatCompact(projection.FinalInvestmentValue()))
	fmt.Fprintf(&buf, "CumulativeTaxes=%s CumulativeSavings=%s\n",
		FormatCompact(projection.CumulativeTaxes()),
		FormatCompact(projection.CumulativeNetSavings()))
	if year, ok := projection.FirstNegativeCashYear(); ok {
		fmt.Fprintf(&buf, "Warning: cash goes negative in %d\n", year)
	}
	return buf.Bytes(), nil
}
