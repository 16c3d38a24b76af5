package config

import (
	"github.com/drawplan/drawplan/internal/domain"
	"github.com/shopspring/decimal"
)

// Base-year (2025-ish) tax parameters per filing status. These are the
// application defaults; plans can override any of them.
var defaultPolicies = map[domain.FilingStatus]domain.TaxPolicy{
	domain.FilingMarriedJointly: {
		Brackets: brackets(24800, 100800, 211100, 403550),
		// Standard deduction includes the senior additional amount.
		StandardDeduction:  decimal.NewFromInt(35500),
		IRMAATier0:         decimal.NewFromInt(218000),
		SSLowerThreshold:   decimal.NewFromInt(32000),
		SSUpperThreshold:   decimal.NewFromInt(44000),
		LTCGZeroRateTop:    decimal.NewFromInt(96700),
		LTCGFifteenRateTop: decimal.NewFromInt(600050),
	},
	domain.FilingHeadOfHousehold: {
		Brackets:           brackets(17700, 67450, 105700, 201750),
		StandardDeduction:  decimal.NewFromInt(26200),
		IRMAATier0:         decimal.NewFromInt(109000),
		SSLowerThreshold:   decimal.NewFromInt(25000),
		SSUpperThreshold:   decimal.NewFromInt(34000),
		LTCGZeroRateTop:    decimal.NewFromInt(64750),
		LTCGFifteenRateTop: decimal.NewFromInt(566700),
	},
	domain.FilingMarriedSeparately: {
		Brackets:          brackets(12400, 50400, 105700, 201775),
		StandardDeduction: decimal.NewFromInt(17750),
		IRMAATier0:        decimal.NewFromInt(109000),
		// MFS benefits are 85% taxable regardless of income, so the
		// provisional-income thresholds never apply.
		SSLowerThreshold:   decimal.Zero,
		SSUpperThreshold:   decimal.Zero,
		LTCGZeroRateTop:    decimal.NewFromInt(48350),
		LTCGFifteenRateTop: decimal.NewFromInt(300000),
	},
	domain.FilingSingle: {
		Brackets:           brackets(12400, 50400, 105700, 255225),
		StandardDeduction:  decimal.NewFromInt(18150),
		IRMAATier0:         decimal.NewFromInt(109000),
		SSLowerThreshold:   decimal.NewFromInt(25000),
		SSUpperThreshold:   decimal.NewFromInt(34000),
		LTCGZeroRateTop:    decimal.NewFromInt(48350),
		LTCGFifteenRateTop: decimal.NewFromInt(533400),
	},
}

// brackets pairs the four supported rates (10/12/22/24%) with base-year tops.
func brackets(top10, top12, top22, top24 int64) []domain.TaxBracket {
	return []domain.TaxBracket{
		{Rate: decimal.NewFromFloat(0.10), Top: decimal.NewFromInt(top10)},
		{Rate: decimal.NewFromFloat(0.12), Top: decimal.NewFromInt(top12)},
		{Rate: decimal.NewFromFloat(0.22), Top: decimal.NewFromInt(top22)},
		{Rate: decimal.NewFromFloat(0.24), Top: decimal.NewFromInt(top24)},
	}
}

// DefaultTaxPolicy returns the base-year tax parameters for a filing
// status. Unknown statuses fall back to single, matching the original
// application's behavior.
func DefaultTaxPolicy(status domain.FilingStatus) domain.TaxPolicy {
	policy, ok := defaultPolicies[status]
	if !ok {
		policy = defaultPolicies[domain.FilingSingle]
	}
	out := policy
	out.Brackets = append([]domain.TaxBracket(nil), policy.Brackets...)
	return out
}

// DefaultPlan returns a complete starter plan for a filing status, using
// the application's default inputs.
func DefaultPlan(status domain.FilingStatus) *domain.Plan {
	growth := decimal.NewFromFloat(0.05)
	return &domain.Plan{
		StartAge:             65,
		EndAge:               95,
		TaxDeferred:          domain.Account{Balance: decimal.NewFromInt(1000000), GrowthRate: growth},
		Roth:                 domain.Account{Balance: decimal.NewFromInt(500000), GrowthRate: growth},
		Taxable:              domain.Account{Balance: decimal.NewFromInt(500000), GrowthRate: growth},
		AnnualSpending:       decimal.NewFromInt(100000),
		InflationRate:        decimal.NewFromFloat(0.03),
		SSStartAge:           70,
		SSAnnualBenefit:      decimal.NewFromInt(60000),
		SSCOLARate:           decimal.NewFromFloat(0.03),
		StateTaxRate:         decimal.NewFromFloat(0.02),
		TurnoverRate:         decimal.NewFromFloat(0.02),
		TaxableBasisFraction: decimal.NewFromFloat(0.5),
		FilingStatus:         status,
		TaxPolicy:            DefaultTaxPolicy(status),
	}
}
