package calculation

import (
	"github.com/shopspring/decimal"
)

const (
	// maxSolverPasses caps the fixed-point iteration for one year. The
	// interdependent quantities almost always stabilize in two or three
	// passes; pathological plans that still oscillate after eight are
	// reported as non-converged rather than iterated further.
	maxSolverPasses = 8
)

// convergenceTolerance is the absolute change in both the realized-gain and
// conversion estimates below which the fixed point is accepted.
var convergenceTolerance = decimal.New(1, -6)

// yearInputs carries everything the solver needs for one simulated year.
type yearInputs struct {
	State     accountState
	Spending  decimal.Decimal
	SSBenefit decimal.Decimal
	RMD       decimal.Decimal
	YearIndex int
}

// yearSolution holds the mutually consistent amounts the solver settled on.
type yearSolution struct {
	Conversion            decimal.Decimal
	TaxPaid               decimal.Decimal
	TaxDeferredWithdrawal decimal.Decimal
	TaxableWithdrawal     decimal.Decimal
	RothWithdrawal        decimal.Decimal
	RealizedGain          decimal.Decimal

	// PlannedSale is the internal turnover sale assumed for the year,
	// needed later for the basis update when nothing was withdrawn.
	PlannedSale decimal.Decimal

	Converged bool
	Passes    int
}

// solveYear finds the Roth conversion, realized capital gain, tax and
// withdrawal amounts that are mutually consistent for one year.
//
// Taxes depend on the conversion and the realized gain; the conversion
// depends on bracket and IRMAA room, which depend on the gain; the gain
// depends on the taxable withdrawal, which depends on the tax bill. The
// loop feeds each pass's gain and conversion estimates back in until both
// move less than the tolerance, or the pass cap is hit, in which case the
// last estimates are accepted and the year is flagged non-converged.
func (e *SimulationEngine) solveYear(in yearInputs) yearSolution {
	plannedSale := in.State.Taxable.Mul(e.plan.TurnoverRate)
	basisFraction := in.State.basisFraction()
	plannedGain := plannedSale.Mul(decimal.NewFromInt(1).Sub(basisFraction))

	estGain := plannedGain
	prevConversion := decimal.Zero

	sol := yearSolution{RealizedGain: estGain, PlannedSale: plannedSale}

	for pass := 1; pass <= maxSolverPasses; pass++ {
		sol.Passes = pass
		params := ResolveTaxParams(e.plan.TaxPolicy, e.plan.InflationRate, e.plan.SSCOLARate, in.YearIndex)

		taxableSS := e.taxCalc.SSTax.TaxableBenefit(in.SSBenefit, in.RMD.Add(estGain))
		ordinaryBeforeConversion := floorZero(in.RMD.Add(taxableSS).Sub(params.StandardDeduction))

		// Convert only up to the point that stays inside the 12% bracket
		// and below the IRMAA tier-0 threshold, never more than the
		// account holds after the RMD.
		bracketRoom := floorZero(TwelvePercentBracketTop(params.Brackets).Sub(ordinaryBeforeConversion))
		irmaaRoom := floorZero(params.IRMAACap.Sub(in.RMD.Add(estGain).Add(taxableSS)))
		conversion := floorZero(decimal.Min(in.State.TaxDeferred.Sub(in.RMD), bracketRoom))
		conversion = decimal.Min(conversion, irmaaRoom)

		taxPaid := e.taxCalc.TotalTax(params, in.RMD.Add(conversion), estGain, in.SSBenefit)

		// Fixed withdrawal order: the RMD comes out of the tax-deferred
		// account regardless of need, then taxable up to its balance,
		// then Roth for the remainder.
		totalNeeded := in.Spending.Add(taxPaid).Sub(in.SSBenefit)
		wTaxDeferred := in.RMD
		wTaxable := decimal.Min(in.State.Taxable, floorZero(totalNeeded.Sub(wTaxDeferred)))
		wRoth := floorZero(totalNeeded.Sub(wTaxDeferred).Sub(wTaxable))

		newGain := plannedGain
		if wTaxable.GreaterThan(decimal.Zero) {
			newGain = floorZero(wTaxable.Sub(basisFraction.Mul(wTaxable)))
		}

		settled := newGain.Sub(estGain).Abs().LessThan(convergenceTolerance) &&
			conversion.Sub(prevConversion).Abs().LessThan(convergenceTolerance)

		sol.Conversion = conversion
		sol.TaxPaid = taxPaid
		sol.TaxDeferredWithdrawal = wTaxDeferred
		sol.TaxableWithdrawal = wTaxable
		sol.RothWithdrawal = wRoth
		sol.RealizedGain = newGain

		if settled {
			sol.Converged = true
			break
		}

		estGain = newGain
		prevConversion = conversion
		e.Logger.Debugf("solver pass %d: gain=%s conversion=%s tax=%s",
			pass, newGain.StringFixed(2), conversion.StringFixed(2), taxPaid.StringFixed(2))
	}

	return sol
}
