package output

import (
	"bytes"
	"encoding/csv"
	"strconv"

	"github.com/drawplan/drawplan/internal/domain"
)

// CSVFormatter exports the full plan, one row per age, suitable for
// loading into a spreadsheet.
type CSVFormatter struct{}

func (c CSVFormatter) Name() string { return "csv" }

func (c CSVFormatter) Format(results []domain.YearResult) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{
		"Retirement Stage", "Age", "Spending", "Tax Paid", "Social Security",
		"401k Withdrawal", "Taxable Withdrawal", "Roth Withdrawal", "Roth Conversion",
		"401k Bal", "Taxable Bal", "Roth Bal", "Net Worth", "Converged", "Basis Remaining",
	}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	for _, yr := range results {
		row := []string{
			yr.Stage,
			strconv.Itoa(yr.Age),
			yr.Spending.StringFixed(2),
			yr.TaxPaid.StringFixed(2),
			yr.SocialSecurity.StringFixed(2),
			yr.TaxDeferredWithdrawal.StringFixed(2),
			yr.TaxableWithdrawal.StringFixed(2),
			yr.RothWithdrawal.StringFixed(2),
			yr.RothConversion.StringFixed(2),
			yr.TaxDeferredBalance.StringFixed(2),
			yr.TaxableBalance.StringFixed(2),
			yr.RothBalance.StringFixed(2),
			yr.NetWorth.StringFixed(2),
			strconv.FormatBool(yr.Converged),
			yr.BasisRemaining.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
