package output

import (
	"bytes"
	"fmt"
	"text/tabwriter"

	"github.com/drawplan/drawplan/internal/domain"
)

// ConsoleFormatter renders the plan as a plain-text table with a short
// summary footer.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console" }

func (c ConsoleFormatter) Format(results []domain.YearResult) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "WITHDRAWAL PLAN")
	fmt.Fprintln(&buf, "===============")

	w := tabwriter.NewWriter(&buf, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "Age\tStage\tSpending\tTax\tSS\t401k W/D\tTaxable W/D\tRoth W/D\tConversion\tNet Worth\tConverged")
	for _, yr := range results {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			yr.Age,
			yr.Stage,
			FormatCurrency(yr.Spending),
			FormatCurrency(yr.TaxPaid),
			FormatCurrency(yr.SocialSecurity),
			FormatCurrency(yr.TaxDeferredWithdrawal),
			FormatCurrency(yr.TaxableWithdrawal),
			FormatCurrency(yr.RothWithdrawal),
			FormatCurrency(yr.RothConversion),
			FormatCurrency(yr.NetWorth),
			FormatBool(yr.Converged),
		)
	}
	if err := w.Flush(); err != nil {
		return nil, err
	}

	if len(results) > 0 {
		last := results[len(results)-1]
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Final Net Worth:  %s\n", FormatCurrency(last.NetWorth))
		fmt.Fprintf(&buf, "Total Tax Paid:   %s\n", FormatCurrency(domain.TotalTaxPaid(results)))
		fmt.Fprintf(&buf, "Ending Roth Bal:  %s\n", FormatCurrency(last.RothBalance))
		if n := countNonConverged(results); n > 0 {
			fmt.Fprintf(&buf, "Warning: %d year(s) did not fully converge; treat those rows as approximations.\n", n)
		}
	}
	return buf.Bytes(), nil
}

func countNonConverged(results []domain.YearResult) int {
	count := 0
	for _, yr := range results {
		if !yr.Converged {
			count++
		}
	}
	return count
}
