package output

import (
	"bytes"
	"encoding/csv"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

// CSVDetailedExporter writes the full per-year table, one row per projected
// year, raw numeric values only (spreadsheet consumers do their own
// formatting).
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(projection *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Year", "GrossIncome", "SalaryTax", "OtherIncomeTax",
		"InvestmentGainBeforeTax", "InvestmentTaxPaid", "TotalTaxes",
		"TotalExpenses", "NetSavings", "EndingCash", "EndingInvestments", "NetWorth",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, y := range projection.Years {
		row := []string{
			intToString(y.Year),
			y.GrossIncome.StringFixed(2),
			y.SalaryTax.StringFixed(2),
			y.OtherIncomeTax.StringFixed(2),
			y.InvestmentGain.StringFixed(2),
			y.InvestmentTaxPaid.StringFixed(2),
			y.TotalTaxes.StringFixed(2),
			y.TotalExpenses.StringFixed(2),
			y.NetSavings.StringFixed(2),
			y.EndingCash.StringFixed(2),
			y.EndingInvestments.StringFixed(2),
			y.NetWorth.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
