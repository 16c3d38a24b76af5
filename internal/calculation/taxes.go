package calculation

import (
	"github.com/drawplan/drawplan/internal/domain"
	"github.com/shopspring/decimal"
)

var (
	ltcgFifteenRate = decimal.NewFromFloat(0.15)
	ltcgTwentyRate  = decimal.NewFromFloat(0.20)

	twelvePercent = decimal.NewFromFloat(0.12)
	rateEpsilon   = decimal.New(1, -9)
)

// AdjustedTaxParams are the tax parameters for one simulated year, scaled
// from the plan's base-year TaxPolicy.
type AdjustedTaxParams struct {
	Brackets          []domain.TaxBracket
	StandardDeduction decimal.Decimal
	IRMAACap          decimal.Decimal
	LTCGZeroTop       decimal.Decimal
	LTCGFifteenTop    decimal.Decimal
}

// ResolveTaxParams scales base-year tax parameters forward by the number of
// years elapsed since plan start. Bracket tops, the standard deduction and
// the LTCG breakpoints grow with general inflation. The IRMAA tier-0
// threshold grows with the Social Security COLA rate instead: IRMAA
// thresholds historically track Social-Security-linked indexing, and the
// asymmetry is intentional. Pure function; cheap enough to call once per
// solver pass.
func ResolveTaxParams(policy domain.TaxPolicy, inflationRate, ssCOLARate decimal.Decimal, yearsElapsed int) AdjustedTaxParams {
	inflationFactor := compoundFactor(inflationRate, yearsElapsed)
	colaFactor := compoundFactor(ssCOLARate, yearsElapsed)

	brackets := make([]domain.TaxBracket, len(policy.Brackets))
	for i, b := range policy.Brackets {
		brackets[i] = domain.TaxBracket{Rate: b.Rate, Top: b.Top.Mul(inflationFactor)}
	}

	return AdjustedTaxParams{
		Brackets:          brackets,
		StandardDeduction: policy.StandardDeduction.Mul(inflationFactor),
		IRMAACap:          policy.IRMAATier0.Mul(colaFactor),
		LTCGZeroTop:       policy.LTCGZeroRateTop.Mul(inflationFactor),
		LTCGFifteenTop:    policy.LTCGFifteenRateTop.Mul(inflationFactor),
	}
}

// TwelvePercentBracketTop returns the top of the bracket whose rate is 12%,
// identified by rate rather than position. If no 12% bracket is configured
// it falls back to the second bracket's top, or the last bracket's top when
// fewer than two exist.
func TwelvePercentBracketTop(brackets []domain.TaxBracket) decimal.Decimal {
	for _, b := range brackets {
		if b.Rate.Sub(twelvePercent).Abs().LessThan(rateEpsilon) {
			return b.Top
		}
	}
	if len(brackets) > 1 {
		return brackets[1].Top
	}
	return brackets[len(brackets)-1].Top
}

// OrdinaryIncomeTax applies the progressive brackets to taxable ordinary
// income. Income above the highest bracket top is taxed at the last
// bracket's rate.
func OrdinaryIncomeTax(taxableIncome decimal.Decimal, brackets []domain.TaxBracket) decimal.Decimal {
	tax := decimal.Zero
	prevTop := decimal.Zero
	for _, b := range brackets {
		if taxableIncome.GreaterThan(b.Top) {
			tax = tax.Add(b.Top.Sub(prevTop).Mul(b.Rate))
			prevTop = b.Top
			continue
		}
		tax = tax.Add(floorZero(taxableIncome.Sub(prevTop)).Mul(b.Rate))
		prevTop = taxableIncome
		break
	}
	if taxableIncome.GreaterThan(prevTop) {
		lastRate := brackets[len(brackets)-1].Rate
		tax = tax.Add(taxableIncome.Sub(prevTop).Mul(lastRate))
	}
	return tax
}

// TaxCalculator computes a year's combined federal and state tax bill for
// one plan's filing status.
type TaxCalculator struct {
	StateRate decimal.Decimal
	SSTax     *SSTaxCalculator
}

// NewTaxCalculator creates a tax calculator from plan-level settings.
func NewTaxCalculator(status domain.FilingStatus, policy domain.TaxPolicy, stateRate decimal.Decimal) *TaxCalculator {
	return &TaxCalculator{
		StateRate: stateRate,
		SSTax:     NewSSTaxCalculator(status, policy.SSLowerThreshold, policy.SSUpperThreshold),
	}
}

// TotalTax computes the year's tax on ordinary income (RMD plus Roth
// conversion) and preferential-rate capital gains, given that year's
// adjusted parameters and the Social Security benefit received.
//
// The standard deduction applies to ordinary income first (including the
// taxable share of Social Security, which itself depends on the combined
// income); any unused deduction carries over to offset the capital gain.
// The deduction-reduced gain then stacks on top of taxable ordinary income
// across the 0%/15%/20% breakpoints. State tax is flat on taxable ordinary
// income plus the 15% and 20% bands; the 0% band is state-exempt in this
// model.
func (tc *TaxCalculator) TotalTax(params AdjustedTaxParams, ordinaryIncome, capitalGains, ssBenefit decimal.Decimal) decimal.Decimal {
	taxableSS := tc.SSTax.TaxableBenefit(ssBenefit, ordinaryIncome.Add(capitalGains))

	grossOrdinary := ordinaryIncome.Add(taxableSS)
	taxableOrdinary := floorZero(grossOrdinary.Sub(params.StandardDeduction))

	excessDeduction := floorZero(params.StandardDeduction.Sub(grossOrdinary))
	taxableGains := floorZero(capitalGains.Sub(excessDeduction))

	ordinaryTax := OrdinaryIncomeTax(taxableOrdinary, params.Brackets)

	var zeroBand decimal.Decimal
	if taxableOrdinary.LessThan(params.LTCGZeroTop) {
		zeroBand = decimal.Min(taxableGains, params.LTCGZeroTop.Sub(taxableOrdinary))
	}
	remaining := floorZero(taxableGains.Sub(zeroBand))

	var fifteenBand decimal.Decimal
	if stacked := taxableOrdinary.Add(zeroBand); stacked.LessThan(params.LTCGFifteenTop) {
		fifteenBand = decimal.Min(remaining, params.LTCGFifteenTop.Sub(stacked))
	}
	twentyBand := floorZero(remaining.Sub(fifteenBand))

	gainsTax := fifteenBand.Mul(ltcgFifteenRate).Add(twentyBand.Mul(ltcgTwentyRate))

	stateTaxable := taxableOrdinary.Add(fifteenBand).Add(twentyBand)
	stateTax := stateTaxable.Mul(tc.StateRate)

	return ordinaryTax.Add(gainsTax).Add(stateTax)
}

// compoundFactor returns (1+rate)^years.
func compoundFactor(rate decimal.Decimal, years int) decimal.Decimal {
	return decimal.NewFromInt(1).Add(rate).Pow(decimal.NewFromInt(int64(years)))
}

// floorZero clamps a negative amount to zero.
func floorZero(d decimal.Decimal) decimal.Decimal {
	if d.IsNegative() {
		return decimal.Zero
	}
	return d
}
