package output

import (
	"github.com/rpgo/drawdown-calculator/internal/domain"
)

// DefaultAssumptions lists the modelling assumptions used when a comparison
// does not carry its own.
var DefaultAssumptions = defaultAssumptions()

func defaultAssumptions() []string {
	in := domain.DefaultInputs()
	a := domain.Assumptions{CAGR: in.CAGR, InflationRate: in.InflationRate, DebasementRate: in.DebasementRate}
	return a.GenerateAssumptions(domain.DefaultPolicyRules())
}

func assumptionsFor(results *domain.ScenarioComparison) []string {
	if len(results.Assumptions) == 0 {
		return DefaultAssumptions
	}
	return results.Assumptions
}
