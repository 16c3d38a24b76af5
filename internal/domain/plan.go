package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// FilingStatus identifies the IRS filing status a plan is simulated under.
// Each status carries its own base-year tax parameters.
type FilingStatus string

const (
	FilingSingle            FilingStatus = "single"
	FilingMarriedJointly    FilingStatus = "married_filing_jointly"
	FilingMarriedSeparately FilingStatus = "married_filing_separately"
	FilingHeadOfHousehold   FilingStatus = "head_of_household"
)

// AllFilingStatuses lists the supported statuses in display order.
var AllFilingStatuses = []FilingStatus{
	FilingSingle,
	FilingMarriedJointly,
	FilingMarriedSeparately,
	FilingHeadOfHousehold,
}

// Valid reports whether the status is one of the supported values.
func (fs FilingStatus) Valid() bool {
	switch fs {
	case FilingSingle, FilingMarriedJointly, FilingMarriedSeparately, FilingHeadOfHousehold:
		return true
	}
	return false
}

// TaxBracket is one federal ordinary-income bracket: income up to Top is
// taxed at Rate. Brackets are ordered by ascending Top; income above the
// last Top is taxed at the last Rate.
type TaxBracket struct {
	Rate decimal.Decimal `yaml:"rate" json:"rate"`
	Top  decimal.Decimal `yaml:"top" json:"top"`
}

// TaxPolicy holds the base-year tax parameters for a filing status.
// The simulation inflates these per year; see calculation.ResolveTaxParams.
type TaxPolicy struct {
	Brackets           []TaxBracket    `yaml:"brackets" json:"brackets"`
	StandardDeduction  decimal.Decimal `yaml:"standard_deduction" json:"standard_deduction"`
	IRMAATier0         decimal.Decimal `yaml:"irmaa_tier_0" json:"irmaa_tier_0"`
	SSLowerThreshold   decimal.Decimal `yaml:"ss_lower_threshold" json:"ss_lower_threshold"`
	SSUpperThreshold   decimal.Decimal `yaml:"ss_upper_threshold" json:"ss_upper_threshold"`
	LTCGZeroRateTop    decimal.Decimal `yaml:"ltcg_zero_rate_top" json:"ltcg_zero_rate_top"`
	LTCGFifteenRateTop decimal.Decimal `yaml:"ltcg_fifteen_rate_top" json:"ltcg_fifteen_rate_top"`
}

// Account is a single investment account: starting balance plus an assumed
// annual growth rate applied at the end of each simulated year.
type Account struct {
	Balance    decimal.Decimal `yaml:"balance" json:"balance"`
	GrowthRate decimal.Decimal `yaml:"growth_rate" json:"growth_rate"`
}

// Plan is the full, immutable configuration for one simulation run.
type Plan struct {
	StartAge int `yaml:"start_age" json:"start_age"`
	EndAge   int `yaml:"end_age" json:"end_age"`

	TaxDeferred Account `yaml:"tax_deferred" json:"tax_deferred"`
	Roth        Account `yaml:"roth" json:"roth"`
	Taxable     Account `yaml:"taxable" json:"taxable"`

	AnnualSpending decimal.Decimal `yaml:"annual_spending" json:"annual_spending"`
	InflationRate  decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`

	SSStartAge      int             `yaml:"ss_start_age" json:"ss_start_age"`
	SSAnnualBenefit decimal.Decimal `yaml:"ss_annual_benefit" json:"ss_annual_benefit"`
	SSCOLARate      decimal.Decimal `yaml:"ss_cola_rate" json:"ss_cola_rate"`

	StateTaxRate decimal.Decimal `yaml:"state_tax_rate" json:"state_tax_rate"`

	// TurnoverRate is the fraction of the taxable balance deemed sold
	// internally each year (fund distributions), realizing gains even when
	// nothing is withdrawn.
	TurnoverRate decimal.Decimal `yaml:"turnover_rate" json:"turnover_rate"`

	// TaxableBasisFraction is the fraction of the taxable account's starting
	// balance that is cost basis.
	TaxableBasisFraction decimal.Decimal `yaml:"taxable_basis_fraction" json:"taxable_basis_fraction"`

	FilingStatus FilingStatus `yaml:"filing_status" json:"filing_status"`
	TaxPolicy    TaxPolicy    `yaml:"tax_policy" json:"tax_policy"`
}

// InitialTotalBalance returns the sum of the three starting balances.
func (p *Plan) InitialTotalBalance() decimal.Decimal {
	return p.TaxDeferred.Balance.Add(p.Roth.Balance).Add(p.Taxable.Balance)
}

// Years returns the number of simulated years, EndAge inclusive.
func (p *Plan) Years() int {
	return p.EndAge - p.StartAge + 1
}

// Validate checks the plan's invariants. A plan that fails validation must
// be rejected before simulation starts; nothing is silently coerced.
func (p *Plan) Validate() error {
	if p.EndAge < p.StartAge {
		return fmt.Errorf("end age %d is before start age %d", p.EndAge, p.StartAge)
	}
	if p.StartAge < 0 {
		return fmt.Errorf("start age must be non-negative, got %d", p.StartAge)
	}
	if !p.FilingStatus.Valid() {
		return fmt.Errorf("unsupported filing status %q", p.FilingStatus)
	}

	accounts := []struct {
		name string
		acct Account
	}{
		{"tax_deferred", p.TaxDeferred},
		{"roth", p.Roth},
		{"taxable", p.Taxable},
	}
	minGrowth := decimal.NewFromInt(-1)
	for _, a := range accounts {
		if a.acct.Balance.IsNegative() {
			return fmt.Errorf("%s balance must be non-negative, got %s", a.name, a.acct.Balance)
		}
		if a.acct.GrowthRate.LessThanOrEqual(minGrowth) {
			return fmt.Errorf("%s growth rate must be greater than -100%%, got %s", a.name, a.acct.GrowthRate)
		}
	}

	nonNegative := []struct {
		name  string
		value decimal.Decimal
	}{
		{"annual_spending", p.AnnualSpending},
		{"ss_annual_benefit", p.SSAnnualBenefit},
		{"state_tax_rate", p.StateTaxRate},
		{"standard_deduction", p.TaxPolicy.StandardDeduction},
		{"irmaa_tier_0", p.TaxPolicy.IRMAATier0},
		{"ss_lower_threshold", p.TaxPolicy.SSLowerThreshold},
		{"ss_upper_threshold", p.TaxPolicy.SSUpperThreshold},
		{"ltcg_zero_rate_top", p.TaxPolicy.LTCGZeroRateTop},
		{"ltcg_fifteen_rate_top", p.TaxPolicy.LTCGFifteenRateTop},
	}
	for _, f := range nonNegative {
		if f.value.IsNegative() {
			return fmt.Errorf("%s must be non-negative, got %s", f.name, f.value)
		}
	}

	if p.InflationRate.LessThanOrEqual(minGrowth) {
		return fmt.Errorf("inflation rate must be greater than -100%%, got %s", p.InflationRate)
	}
	if p.SSCOLARate.LessThanOrEqual(minGrowth) {
		return fmt.Errorf("ss cola rate must be greater than -100%%, got %s", p.SSCOLARate)
	}

	one := decimal.NewFromInt(1)
	if p.TurnoverRate.IsNegative() || p.TurnoverRate.GreaterThan(one) {
		return fmt.Errorf("turnover rate must be between 0 and 1, got %s", p.TurnoverRate)
	}
	if p.TaxableBasisFraction.IsNegative() || p.TaxableBasisFraction.GreaterThan(one) {
		return fmt.Errorf("taxable basis fraction must be between 0 and 1, got %s", p.TaxableBasisFraction)
	}

	if p.TaxPolicy.SSLowerThreshold.GreaterThan(p.TaxPolicy.SSUpperThreshold) {
		return fmt.Errorf("ss lower threshold %s exceeds upper threshold %s",
			p.TaxPolicy.SSLowerThreshold, p.TaxPolicy.SSUpperThreshold)
	}

	if len(p.TaxPolicy.Brackets) == 0 {
		return fmt.Errorf("at least one tax bracket is required")
	}
	prev := decimal.Zero
	for i, b := range p.TaxPolicy.Brackets {
		if b.Rate.LessThanOrEqual(decimal.Zero) || b.Rate.GreaterThanOrEqual(one) {
			return fmt.Errorf("bracket %d rate must be between 0 and 1, got %s", i, b.Rate)
		}
		if b.Top.LessThanOrEqual(prev) {
			return fmt.Errorf("bracket tops must be strictly increasing: bracket %d top %s does not exceed %s", i, b.Top, prev)
		}
		prev = b.Top
	}

	return nil
}
