package calculation

import (
	"fmt"

	"github.com/drawplan/drawplan/internal/domain"
)

// SimulationEngine runs a retirement plan year by year. It is a pure
// function of its plan: identical plans always produce identical output,
// which callers rely on for caching and reproducible tests.
type SimulationEngine struct {
	Logger Logger

	plan    *domain.Plan
	taxCalc *TaxCalculator
}

// NewSimulationEngine creates a simulation engine with a no-op logger.
func NewSimulationEngine() *SimulationEngine {
	return &SimulationEngine{Logger: NopLogger{}}
}

// SetLogger sets the engine's logger. A nil logger restores the no-op.
func (e *SimulationEngine) SetLogger(l Logger) {
	if l == nil {
		e.Logger = NopLogger{}
		return
	}
	e.Logger = l
}

// Simulate produces one YearResult per age from the plan's start age to its
// end age inclusive. The plan is validated first and rejected with an error
// if any invariant fails; after that nothing aborts the run. A year whose
// solver did not settle within its pass cap is flagged in its result and
// the simulation continues.
func (e *SimulationEngine) Simulate(plan *domain.Plan) ([]domain.YearResult, error) {
	if err := plan.Validate(); err != nil {
		return nil, fmt.Errorf("invalid plan: %w", err)
	}

	e.plan = plan
	e.taxCalc = NewTaxCalculator(plan.FilingStatus, plan.TaxPolicy, plan.StateTaxRate)

	state := newAccountState(plan)
	initialTotal := plan.InitialTotalBalance()
	results := make([]domain.YearResult, 0, plan.Years())

	for age := plan.StartAge; age <= plan.EndAge; age++ {
		yearIndex := age - plan.StartAge
		spending := plan.AnnualSpending.Mul(compoundFactor(plan.InflationRate, yearIndex))
		ssBenefit := BenefitForAge(plan.SSAnnualBenefit, plan.SSCOLARate, age, plan.SSStartAge)
		rmd := CalculateRMD(state.TaxDeferred, age)

		sol := e.solveYear(yearInputs{
			State:     state,
			Spending:  spending,
			SSBenefit: ssBenefit,
			RMD:       rmd,
			YearIndex: yearIndex,
		})
		if !sol.Converged {
			e.Logger.Warnf("age %d: solver did not converge within %d passes, using last estimates", age, maxSolverPasses)
		}

		// Basis is consumed by this year's sales, so the snapshot carries
		// the reduced basis; balances stay as of the start of the year.
		state.Basis = reduceBasis(state, sol)

		stage := ClassifyStage(StageInputs{
			YearIndex:             yearIndex,
			TaxDeferredBalance:    state.TaxDeferred,
			TaxableBalance:        state.Taxable,
			RothBalance:           state.Roth,
			TaxDeferredWithdrawal: sol.TaxDeferredWithdrawal,
			TaxableWithdrawal:     sol.TaxableWithdrawal,
			RothWithdrawal:        sol.RothWithdrawal,
			Conversion:            sol.Conversion,
			SocialSecurity:        ssBenefit,
			Spending:              spending,
			InitialTotalBalance:   initialTotal,
		})

		results = append(results, domain.YearResult{
			Stage:                 stage,
			Age:                   age,
			Spending:              spending,
			TaxPaid:               sol.TaxPaid,
			SocialSecurity:        ssBenefit,
			TaxDeferredWithdrawal: sol.TaxDeferredWithdrawal,
			TaxableWithdrawal:     sol.TaxableWithdrawal,
			RothWithdrawal:        sol.RothWithdrawal,
			RothConversion:        sol.Conversion,
			TaxDeferredBalance:    state.TaxDeferred,
			TaxableBalance:        state.Taxable,
			RothBalance:           state.Roth,
			NetWorth:              state.total(),
			Converged:             sol.Converged,
			BasisRemaining:        state.Basis,
		})

		state = growBalances(state, plan, rmd, sol)
	}

	return results, nil
}
