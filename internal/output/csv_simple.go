package output

import (
	"bytes"
	"encoding/csv"

	"github.com/fcgo/cashflow-projector/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output: one metrics row
// for the run, then one row per account's final balance.
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(projection *domain.Projection) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"StartYear", "HorizonYears", "FinalNetWorth", "FinalCash", "FinalInvestments", "CumulativeTaxes", "CumulativeNetSavings"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	row := []string{
		intToString(projection.StartYear),
		intToString(len(projection.Years)),
		projection.FinalNetWorth().StringFixed(2),
		projection.FinalCash.StringFixed(2),
		projection.FinalInvestmentValue().StringFixed(2),
		projection.CumulativeTaxes().StringFixed(2),
		projection.CumulativeNetSavings().StringFixed(2),
	}
	if err := w.Write(row); err != nil {
		return nil, err
	}
	if err := w.Write([]string{}); err != nil {
		return nil, err
	}
	if err := w.Write([]string{"Account", "FinalBalance"}); err != nil {
		return nil, err
	}
	for _, ab := range projection.FinalAccountBalances {
		if err := w.Write([]string{ab.Name, ab.Balance.StringFixed(2)}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
