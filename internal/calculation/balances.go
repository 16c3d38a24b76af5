package calculation

import (
	"github.com/drawplan/drawplan/internal/domain"
	"github.com/shopspring/decimal"
)

// accountState is the mutable balance state the driver carries between
// years: the three account balances plus the taxable account's remaining
// cost basis.
type accountState struct {
	TaxDeferred decimal.Decimal
	Roth        decimal.Decimal
	Taxable     decimal.Decimal
	Basis       decimal.Decimal
}

func newAccountState(plan *domain.Plan) accountState {
	return accountState{
		TaxDeferred: plan.TaxDeferred.Balance,
		Roth:        plan.Roth.Balance,
		Taxable:     plan.Taxable.Balance,
		Basis:       plan.TaxableBasisFraction.Mul(plan.Taxable.Balance),
	}
}

// basisFraction is cost basis over balance, zero for an empty account.
func (s accountState) basisFraction() decimal.Decimal {
	if s.Taxable.LessThanOrEqual(decimal.Zero) {
		return decimal.Zero
	}
	return s.Basis.Div(s.Taxable)
}

func (s accountState) total() decimal.Decimal {
	return s.TaxDeferred.Add(s.Roth).Add(s.Taxable)
}

// reduceBasis returns the cost basis after the year's taxable-account
// activity. A withdrawal consumes basis proportionally to the fraction of
// the balance sold; if nothing was withdrawn but internal turnover was
// assumed, the planned sale consumes basis the same way. Basis never goes
// below zero.
func reduceBasis(s accountState, sol yearSolution) decimal.Decimal {
	basis := s.Basis
	if s.Taxable.GreaterThan(decimal.Zero) {
		fraction := basis.Div(s.Taxable)
		reduction := decimal.Min(basis, fraction.Mul(sol.TaxableWithdrawal))
		basis = floorZero(basis.Sub(reduction))

		if sol.PlannedSale.GreaterThan(decimal.Zero) && sol.TaxableWithdrawal.IsZero() {
			saleReduction := decimal.Min(basis, fraction.Mul(sol.PlannedSale))
			basis = floorZero(basis.Sub(saleReduction))
		}
	}
	return basis
}

// growBalances advances the three balances past the year's flows and
// growth. Each balance is clamped at zero before growth is applied.
// The realized gain is deliberately not added back to the taxable balance:
// realizing a gain is a tax event, not a cash deposit.
func growBalances(s accountState, plan *domain.Plan, rmd decimal.Decimal, sol yearSolution) accountState {
	one := decimal.NewFromInt(1)
	s.TaxDeferred = floorZero(s.TaxDeferred.Sub(rmd).Sub(sol.Conversion)).
		Mul(one.Add(plan.TaxDeferred.GrowthRate))
	s.Taxable = floorZero(s.Taxable.Sub(sol.TaxableWithdrawal)).
		Mul(one.Add(plan.Taxable.GrowthRate))
	s.Roth = floorZero(s.Roth.Add(sol.Conversion).Sub(sol.RothWithdrawal)).
		Mul(one.Add(plan.Roth.GrowthRate))
	return s
}
