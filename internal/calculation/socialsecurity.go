package calculation

import (
	"github.com/drawplan/drawplan/internal/domain"
	"github.com/shopspring/decimal"
)

// BenefitForAge returns the annual Social Security benefit at a given age:
// zero before the claiming age, otherwise the base benefit compounded by the
// COLA rate for each year since claiming.
func BenefitForAge(baseBenefit, colaRate decimal.Decimal, age, startAge int) decimal.Decimal {
	if age < startAge {
		return decimal.Zero
	}
	return baseBenefit.Mul(compoundFactor(colaRate, age-startAge))
}

// SSTaxCalculator determines the federally taxable portion of Social
// Security benefits under the tiered provisional-income rule.
type SSTaxCalculator struct {
	LowerThreshold decimal.Decimal
	UpperThreshold decimal.Decimal
	Status         domain.FilingStatus
}

// NewSSTaxCalculator creates a Social Security tax calculator for the given
// filing status and provisional-income thresholds.
func NewSSTaxCalculator(status domain.FilingStatus, lower, upper decimal.Decimal) *SSTaxCalculator {
	return &SSTaxCalculator{
		LowerThreshold: lower,
		UpperThreshold: upper,
		Status:         status,
	}
}

// ProvisionalIncome is other taxable income plus half of the Social
// Security benefit.
func (sstc *SSTaxCalculator) ProvisionalIncome(otherIncome, ssBenefit decimal.Decimal) decimal.Decimal {
	return otherIncome.Add(ssBenefit.Mul(decimal.NewFromFloat(0.5)))
}

// TaxableBenefit returns the taxable portion of the benefit.
//
// Married-filing-separately filers get no threshold exclusion: 85% of the
// benefit is taxable unconditionally. For everyone else the benefit is
// untaxed up to the lower threshold, up to 50% taxable between the
// thresholds (capped at provisional income over the lower threshold), and
// up to 85% taxable above the upper threshold.
//
// The thresholds are deliberately not inflation-indexed, mirroring the
// statute, which has kept them fixed since enactment.
func (sstc *SSTaxCalculator) TaxableBenefit(ssBenefit, otherIncome decimal.Decimal) decimal.Decimal {
	if sstc.Status == domain.FilingMarriedSeparately {
		return ssBenefit.Mul(decimal.NewFromFloat(0.85))
	}

	provisional := sstc.ProvisionalIncome(otherIncome, ssBenefit)
	half := ssBenefit.Mul(decimal.NewFromFloat(0.5))

	if provisional.LessThanOrEqual(sstc.LowerThreshold) {
		return decimal.Zero
	}
	if provisional.LessThanOrEqual(sstc.UpperThreshold) {
		return decimal.Min(half, provisional.Sub(sstc.LowerThreshold))
	}
	capped := half.Add(provisional.Sub(sstc.UpperThreshold))
	return decimal.Min(ssBenefit.Mul(decimal.NewFromFloat(0.85)), capped)
}
