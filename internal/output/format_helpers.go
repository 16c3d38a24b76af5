package output

import "github.com/shopspring/decimal"

// FormatCurrency formats a decimal as whole-dollar USD, the precision the
// plan table is read at.
func FormatCurrency(amount decimal.Decimal) string { return "$" + amount.StringFixed(0) }

// FormatBool renders a convergence flag the way the table prints it.
func FormatBool(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
