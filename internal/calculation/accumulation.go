package calculation

import (
	"time"

	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/rpgo/drawdown-calculator/pkg/dateutil"
	dec "github.com/rpgo/drawdown-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// AccumulationResult holds the pot at retirement and the lump-sum split
type AccumulationResult struct {
	Months          int
	PotAtRetirement decimal.Decimal
	LumpSum         decimal.Decimal
	StartingBalance decimal.Decimal
}

// SimulateAccumulation grows the current pot month by month until the target
// retirement date, then applies the lump sum rule. Each month the pot grows
// first and the monthly share of the annual contribution is added after.
func SimulateAccumulation(inputs domain.Inputs, today time.Time, rules domain.PolicyRules) AccumulationResult {
	months := dateutil.MonthsUntilDate(today, inputs.TargetRetirementDate)
	factor := MonthlyGrowthFactor(inputs.CAGR)
	contribution := dec.NewMoneyFromDecimal(inputs.AnnualContribution).Monthly()

	pot := dec.NewMoneyFromDecimal(inputs.CurrentPot)
	for i := 0; i < months; i++ {
		pot = pot.Mul(factor).Add(contribution).RoundTo(internalPrecision)
	}

	lump := decimal.Zero
	if inputs.TakeLumpSum {
		lump = EffectiveLumpSum(inputs.LumpSumAmount, pot.Decimal, rules)
	}

	return AccumulationResult{
		Months:          months,
		PotAtRetirement: pot.Decimal,
		LumpSum:         lump,
		StartingBalance: pot.Decimal.Sub(lump),
	}
}

// EffectiveLumpSum clamps the requested lump sum to the smaller of the pot
// fraction and the statutory cap, never below zero.
func EffectiveLumpSum(requested, pot decimal.Decimal, rules domain.PolicyRules) decimal.Decimal {
	limit := decimal.Min(pot.Mul(rules.LumpSumFraction), rules.LumpSumCap)
	lump := decimal.Min(requested, limit)
	if lump.IsNegative() {
		return decimal.Zero
	}
	return lump
}
