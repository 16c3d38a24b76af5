package calculation

import (
	"testing"

	"github.com/drawplan/drawplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBenefitForAge(t *testing.T) {
	base := decimal.NewFromInt(30000)
	cola := decimal.NewFromFloat(0.10)

	assert.True(t, BenefitForAge(base, cola, 69, 70).IsZero(), "no benefit before the claiming age")
	assert.True(t, BenefitForAge(base, cola, 70, 70).Equal(base), "claiming year pays the base benefit")
	assert.True(t, BenefitForAge(base, cola, 72, 70).Equal(decimal.NewFromInt(36300)),
		"two COLA years expected 30000*1.1^2")
}

func TestTaxableBenefitTiers(t *testing.T) {
	sstc := NewSSTaxCalculator(domain.FilingSingle, decimal.NewFromInt(25000), decimal.NewFromInt(34000))
	benefit := decimal.NewFromInt(20000)

	tests := []struct {
		name        string
		otherIncome decimal.Decimal
		expected    decimal.Decimal
	}{
		{"below lower threshold", decimal.NewFromInt(10000), decimal.Zero},
		{"between thresholds capped at excess over lower", decimal.NewFromInt(20000), decimal.NewFromInt(5000)},
		{"above upper threshold", decimal.NewFromInt(30000), decimal.NewFromInt(16000)},
		{"well above upper capped at 85%", decimal.NewFromInt(200000), decimal.NewFromInt(17000)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			taxable := sstc.TaxableBenefit(benefit, tt.otherIncome)
			assert.True(t, taxable.Equal(tt.expected), "expected %s, got %s", tt.expected, taxable)
		})
	}
}

func TestTaxableBenefitMarriedSeparately(t *testing.T) {
	sstc := NewSSTaxCalculator(domain.FilingMarriedSeparately, decimal.Zero, decimal.Zero)
	benefit := decimal.NewFromInt(20000)

	// 85% taxable unconditionally, even with no other income.
	taxable := sstc.TaxableBenefit(benefit, decimal.Zero)
	assert.True(t, taxable.Equal(decimal.NewFromInt(17000)), "expected 17000, got %s", taxable)
}
