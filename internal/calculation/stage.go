package calculation

import (
	"github.com/shopspring/decimal"
)

// Lifecycle stage labels attached to each simulated year.
const (
	StageDepleted            = "Depleted"
	StageRothFunded          = "Roth-Funded"
	StageConversion          = "Conversion Stage"
	StageDeferredRunOut      = "401k Run Out"
	StageSSOnly              = "SS Only"
	StageDeferredWithdrawal  = "401k Withdrawal Stage"
	StageTaxableWithdrawal   = "Taxable Withdrawal Stage"
	StageRothWithdrawal      = "Roth Withdrawal Stage"
	StageGolden              = "Golden Stage"
	StageSustainableDrawdown = "Sustainable Drawdown"
)

// stageEpsilon treats balances under a dollar as empty.
var stageEpsilon = decimal.NewFromInt(1)

// StageInputs are the flows and balances a year's stage is derived from.
// Balances are as of the start of the year, before the updater runs.
type StageInputs struct {
	YearIndex int

	TaxDeferredBalance decimal.Decimal
	TaxableBalance     decimal.Decimal
	RothBalance        decimal.Decimal

	TaxDeferredWithdrawal decimal.Decimal
	TaxableWithdrawal     decimal.Decimal
	RothWithdrawal        decimal.Decimal
	Conversion            decimal.Decimal

	SocialSecurity decimal.Decimal
	Spending       decimal.Decimal

	InitialTotalBalance decimal.Decimal
}

// ClassifyStage maps a year's flows to a human-readable lifecycle stage.
// Checks run in a fixed precedence order and the first match wins. The
// withdrawal comparisons are strict, so tied withdrawal amounts match none
// of them and the year falls through to the catch-all stages.
func ClassifyStage(in StageInputs) string {
	total := in.TaxDeferredBalance.Add(in.RothBalance).Add(in.TaxableBalance)

	if total.LessThan(stageEpsilon) {
		return StageDepleted
	}
	if in.TaxDeferredBalance.LessThanOrEqual(stageEpsilon) &&
		in.TaxableBalance.LessThanOrEqual(stageEpsilon) &&
		in.RothBalance.GreaterThan(stageEpsilon) {
		return StageRothFunded
	}

	conversionFloor := decimal.Max(decimal.NewFromInt(1000),
		in.InitialTotalBalance.Mul(decimal.NewFromFloat(0.005)))
	if in.Conversion.GreaterThan(conversionFloor) {
		return StageConversion
	}

	if in.TaxDeferredBalance.LessThanOrEqual(stageEpsilon) && in.TaxableBalance.GreaterThan(stageEpsilon) {
		return StageDeferredRunOut
	}

	if in.SocialSecurity.GreaterThanOrEqual(in.Spending) &&
		in.TaxDeferredWithdrawal.IsZero() && in.TaxableWithdrawal.IsZero() && in.RothWithdrawal.IsZero() {
		return StageSSOnly
	}

	if in.TaxDeferredWithdrawal.GreaterThan(decimal.Max(in.TaxableWithdrawal, in.RothWithdrawal)) {
		return StageDeferredWithdrawal
	}
	if in.TaxableWithdrawal.GreaterThan(decimal.Max(in.TaxDeferredWithdrawal, in.RothWithdrawal)) {
		return StageTaxableWithdrawal
	}
	if in.RothWithdrawal.GreaterThan(decimal.Max(in.TaxDeferredWithdrawal, in.TaxableWithdrawal)) {
		return StageRothWithdrawal
	}

	if in.YearIndex <= 5 && total.GreaterThanOrEqual(in.InitialTotalBalance.Mul(decimal.NewFromFloat(0.5))) {
		return StageGolden
	}
	return StageSustainableDrawdown
}
