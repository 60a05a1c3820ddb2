package calculation

import (
	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// rankScenarios picks the scenario with the highest total real value and the
// one whose pot lasts longest (larger final pot breaks ties). Otherwise ties
// keep the earlier scenario.
func rankScenarios(scenarios []domain.ProjectionSummary) (bestIncome, bestLongevity string) {
	bestReal := decimal.Zero
	bestLife := -1
	bestFinal := decimal.Zero

	for i, s := range scenarios {
		if i == 0 || s.TotalRealValue.GreaterThan(bestReal) {
			bestIncome, bestReal = s.Name, s.TotalRealValue
		}
		if s.PotLongevity > bestLife || (s.PotLongevity == bestLife && s.FinalPot.GreaterThan(bestFinal)) {
			bestLongevity, bestLife, bestFinal = s.Name, s.PotLongevity, s.FinalPot
		}
	}
	return bestIncome, bestLongevity
}
