package domain

import (
	"github.com/shopspring/decimal"
)

// YearResult is the snapshot produced for one simulated age. Balances are
// as of the start of the year, before that year's withdrawals and growth
// are applied.
type YearResult struct {
	Stage string `json:"stage"`
	Age   int    `json:"age"`

	Spending       decimal.Decimal `json:"spending"`
	TaxPaid        decimal.Decimal `json:"tax_paid"`
	SocialSecurity decimal.Decimal `json:"social_security"`

	TaxDeferredWithdrawal decimal.Decimal `json:"tax_deferred_withdrawal"`
	TaxableWithdrawal     decimal.Decimal `json:"taxable_withdrawal"`
	RothWithdrawal        decimal.Decimal `json:"roth_withdrawal"`
	RothConversion        decimal.Decimal `json:"roth_conversion"`

	TaxDeferredBalance decimal.Decimal `json:"tax_deferred_balance"`
	TaxableBalance     decimal.Decimal `json:"taxable_balance"`
	RothBalance        decimal.Decimal `json:"roth_balance"`
	NetWorth           decimal.Decimal `json:"net_worth"`

	Converged      bool            `json:"converged"`
	BasisRemaining decimal.Decimal `json:"basis_remaining"`
}

// TotalWithdrawals returns the sum of the three withdrawal amounts.
func (yr *YearResult) TotalWithdrawals() decimal.Decimal {
	return yr.TaxDeferredWithdrawal.Add(yr.TaxableWithdrawal).Add(yr.RothWithdrawal)
}

// TotalTaxPaid sums tax across a full plan.
func TotalTaxPaid(results []YearResult) decimal.Decimal {
	var total decimal.Decimal
	for _, yr := range results {
		total = total.Add(yr.TaxPaid)
	}
	return total
}
