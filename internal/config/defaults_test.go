package config

import (
	"testing"

	"github.com/drawplan/drawplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultTaxPolicyPerStatus(t *testing.T) {
	tests := []struct {
		status            domain.FilingStatus
		standardDeduction int64
		twelveTop         int64
		irmaa             int64
	}{
		{domain.FilingSingle, 18150, 50400, 109000},
		{domain.FilingMarriedJointly, 35500, 100800, 218000},
		{domain.FilingMarriedSeparately, 17750, 50400, 109000},
		{domain.FilingHeadOfHousehold, 26200, 67450, 109000},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			policy := DefaultTaxPolicy(tt.status)
			require.Len(t, policy.Brackets, 4)
			assert.True(t, policy.StandardDeduction.Equal(decimal.NewFromInt(tt.standardDeduction)))
			assert.True(t, policy.Brackets[1].Top.Equal(decimal.NewFromInt(tt.twelveTop)))
			assert.True(t, policy.IRMAATier0.Equal(decimal.NewFromInt(tt.irmaa)))
		})
	}
}

func TestDefaultTaxPolicyMarriedSeparatelyThresholds(t *testing.T) {
	policy := DefaultTaxPolicy(domain.FilingMarriedSeparately)
	assert.True(t, policy.SSLowerThreshold.IsZero())
	assert.True(t, policy.SSUpperThreshold.IsZero())
}

func TestDefaultTaxPolicyUnknownStatusFallsBackToSingle(t *testing.T) {
	policy := DefaultTaxPolicy(domain.FilingStatus("unknown"))
	assert.True(t, policy.StandardDeduction.Equal(decimal.NewFromInt(18150)))
}

func TestDefaultTaxPolicyCopiesBrackets(t *testing.T) {
	first := DefaultTaxPolicy(domain.FilingSingle)
	first.Brackets[0].Top = decimal.NewFromInt(1)

	second := DefaultTaxPolicy(domain.FilingSingle)
	assert.True(t, second.Brackets[0].Top.Equal(decimal.NewFromInt(12400)),
		"mutating a returned policy must not affect later callers")
}

func TestDefaultPlanValidatesForAllStatuses(t *testing.T) {
	for _, status := range domain.AllFilingStatuses {
		t.Run(string(status), func(t *testing.T) {
			plan := DefaultPlan(status)
			require.NoError(t, plan.Validate())
			assert.Equal(t, status, plan.FilingStatus)
			assert.True(t, plan.InitialTotalBalance().Equal(decimal.NewFromInt(2000000)))
		})
	}
}
