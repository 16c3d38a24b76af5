package calculation

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestClassifyStage(t *testing.T) {
	d := func(v int64) decimal.Decimal { return decimal.NewFromInt(v) }
	initial := d(1000000)

	base := StageInputs{
		YearIndex:           10,
		TaxDeferredBalance:  d(400000),
		TaxableBalance:      d(200000),
		RothBalance:         d(100000),
		Spending:            d(80000),
		InitialTotalBalance: initial,
	}

	tests := []struct {
		name     string
		mutate   func(in *StageInputs)
		expected string
	}{
		{
			name: "everything gone",
			mutate: func(in *StageInputs) {
				in.TaxDeferredBalance, in.TaxableBalance, in.RothBalance = decimal.Zero, decimal.Zero, decimal.Zero
			},
			expected: StageDepleted,
		},
		{
			name: "only roth left",
			mutate: func(in *StageInputs) {
				in.TaxDeferredBalance, in.TaxableBalance = decimal.Zero, decimal.Zero
				in.RothWithdrawal = d(50000)
			},
			expected: StageRothFunded,
		},
		{
			name: "large conversion wins over withdrawal stages",
			mutate: func(in *StageInputs) {
				in.Conversion = d(40000)
				in.TaxDeferredWithdrawal = d(60000)
			},
			expected: StageConversion,
		},
		{
			name: "small conversion does not trigger conversion stage",
			mutate: func(in *StageInputs) {
				in.Conversion = d(4000) // under 0.5% of the initial total
				in.TaxDeferredWithdrawal = d(60000)
			},
			expected: StageDeferredWithdrawal,
		},
		{
			name: "deferred exhausted but taxable remains",
			mutate: func(in *StageInputs) {
				in.TaxDeferredBalance = decimal.Zero
			},
			expected: StageDeferredRunOut,
		},
		{
			name: "social security covers spending with no withdrawals",
			mutate: func(in *StageInputs) {
				in.SocialSecurity = d(90000)
			},
			expected: StageSSOnly,
		},
		{
			name: "taxable is largest withdrawal",
			mutate: func(in *StageInputs) {
				in.TaxDeferredWithdrawal = d(10000)
				in.TaxableWithdrawal = d(50000)
				in.RothWithdrawal = d(5000)
			},
			expected: StageTaxableWithdrawal,
		},
		{
			name: "roth is largest withdrawal",
			mutate: func(in *StageInputs) {
				in.RothWithdrawal = d(50000)
			},
			expected: StageRothWithdrawal,
		},
		{
			name: "tied withdrawals fall through to drawdown",
			mutate: func(in *StageInputs) {
				in.TaxDeferredWithdrawal = d(30000)
				in.TaxableWithdrawal = d(30000)
			},
			expected: StageSustainableDrawdown,
		},
		{
			name: "early year with most of the portfolio intact",
			mutate: func(in *StageInputs) {
				in.YearIndex = 2
				in.TaxDeferredBalance = d(600000)
				in.TaxableBalance = d(200000)
				in.RothBalance = d(150000)
			},
			expected: StageGolden,
		},
		{
			name:     "no rule matches",
			mutate:   func(in *StageInputs) {},
			expected: StageSustainableDrawdown,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)
			assert.Equal(t, tt.expected, ClassifyStage(in))
		})
	}
}
