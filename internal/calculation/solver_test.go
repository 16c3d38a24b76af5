package calculation

import (
	"testing"

	"github.com/drawplan/drawplan/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func newTestEngine(plan *domain.Plan) *SimulationEngine {
	e := NewSimulationEngine()
	e.plan = plan
	e.taxCalc = NewTaxCalculator(plan.FilingStatus, plan.TaxPolicy, plan.StateTaxRate)
	return e
}

func solverTestPlan() *domain.Plan {
	return &domain.Plan{
		StartAge:      65,
		EndAge:        95,
		InflationRate: decimal.Zero,
		SSCOLARate:    decimal.Zero,
		FilingStatus:  domain.FilingSingle,
		TaxPolicy:     singleTestPolicy(),
	}
}

func TestSolveYearWithdrawalOrder(t *testing.T) {
	plan := solverTestPlan()
	e := newTestEngine(plan)

	// Taxable account is fully basis, so selling it realizes no gain and
	// triggers no tax; the shortfall spills from taxable into Roth.
	sol := e.solveYear(yearInputs{
		State: accountState{
			Taxable: decimal.NewFromInt(30000),
			Basis:   decimal.NewFromInt(30000),
			Roth:    decimal.NewFromInt(100000),
		},
		Spending: decimal.NewFromInt(40000),
	})

	assert.True(t, sol.Converged)
	assert.True(t, sol.TaxDeferredWithdrawal.IsZero())
	assert.True(t, sol.TaxableWithdrawal.Equal(decimal.NewFromInt(30000)),
		"taxable drains before Roth, got %s", sol.TaxableWithdrawal)
	assert.True(t, sol.RothWithdrawal.Equal(decimal.NewFromInt(10000)),
		"Roth covers the remainder, got %s", sol.RothWithdrawal)
	assert.True(t, sol.TaxPaid.IsZero())
}

func TestSolveYearRMDWithdrawnEvenWhenNotNeeded(t *testing.T) {
	plan := solverTestPlan()
	e := newTestEngine(plan)

	// Social Security more than covers spending; the RMD still comes out.
	sol := e.solveYear(yearInputs{
		State:     accountState{TaxDeferred: decimal.NewFromInt(265000)},
		Spending:  decimal.NewFromInt(10000),
		SSBenefit: decimal.NewFromInt(100000),
		RMD:       decimal.NewFromInt(10000),
	})

	assert.True(t, sol.TaxDeferredWithdrawal.Equal(decimal.NewFromInt(10000)))
	assert.True(t, sol.TaxableWithdrawal.IsZero())
	assert.True(t, sol.RothWithdrawal.IsZero())
}

func TestSolveYearConversionFillsTwelvePercentBracket(t *testing.T) {
	plan := solverTestPlan()
	e := newTestEngine(plan)

	sol := e.solveYear(yearInputs{
		State: accountState{
			TaxDeferred: decimal.NewFromInt(1000000),
			Roth:        decimal.NewFromInt(100000),
		},
	})

	// With no other income the conversion fills the 12% bracket top.
	assert.True(t, sol.Conversion.Equal(decimal.NewFromInt(50400)),
		"expected 50400, got %s", sol.Conversion)
	// Tax on the conversion: 50400 less the 18150 deduction, progressively.
	assert.True(t, sol.TaxPaid.Equal(decimal.NewFromInt(3622)),
		"expected 3622, got %s", sol.TaxPaid)
	// The tax bill itself is cash spent, drawn from Roth here.
	assert.True(t, sol.RothWithdrawal.Equal(sol.TaxPaid))
	assert.True(t, sol.Converged)
}

func TestSolveYearConversionCaps(t *testing.T) {
	t.Run("capped by IRMAA threshold", func(t *testing.T) {
		plan := solverTestPlan()
		plan.TaxPolicy.IRMAATier0 = decimal.NewFromInt(20000)
		e := newTestEngine(plan)

		sol := e.solveYear(yearInputs{
			State: accountState{TaxDeferred: decimal.NewFromInt(1000000)},
		})
		assert.True(t, sol.Conversion.Equal(decimal.NewFromInt(20000)),
			"expected 20000, got %s", sol.Conversion)
	})

	t.Run("capped by remaining balance after RMD", func(t *testing.T) {
		plan := solverTestPlan()
		e := newTestEngine(plan)

		sol := e.solveYear(yearInputs{
			State: accountState{TaxDeferred: decimal.NewFromInt(10000)},
		})
		assert.True(t, sol.Conversion.Equal(decimal.NewFromInt(10000)),
			"expected the whole balance, got %s", sol.Conversion)
	})
}

func TestSolveYearTurnoverGainWithoutWithdrawal(t *testing.T) {
	plan := solverTestPlan()
	plan.TurnoverRate = decimal.NewFromFloat(0.02)
	e := newTestEngine(plan)

	// No spending shortfall, so nothing is withdrawn; the forced turnover
	// still realizes the embedded fraction of the planned sale.
	sol := e.solveYear(yearInputs{
		State: accountState{
			Taxable: decimal.NewFromInt(100000),
			Basis:   decimal.NewFromInt(40000),
		},
	})

	assert.True(t, sol.TaxableWithdrawal.IsZero())
	assert.True(t, sol.PlannedSale.Equal(decimal.NewFromInt(2000)))
	assert.True(t, sol.RealizedGain.Equal(decimal.NewFromInt(1200)),
		"expected 2000*(1-0.4), got %s", sol.RealizedGain)
}

func TestSolveYearNoTurnoverNoWithdrawalNoGain(t *testing.T) {
	plan := solverTestPlan()
	e := newTestEngine(plan)

	sol := e.solveYear(yearInputs{
		State: accountState{
			Taxable: decimal.NewFromInt(100000),
			Basis:   decimal.NewFromInt(20000),
		},
	})

	assert.True(t, sol.RealizedGain.IsZero())
	assert.True(t, sol.PlannedSale.IsZero())
	assert.True(t, sol.Converged)
}
