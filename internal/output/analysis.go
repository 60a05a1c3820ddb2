package output

import (
	"sort"

	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Recommendation encapsulates the selection result of the best scenario.
type Recommendation struct {
	ScenarioName      string
	TotalRealValue    decimal.Decimal
	RealValueChange   decimal.Decimal
	PercentageChange  decimal.Decimal
	LongevityScenario string
}

// AnalyzeScenarios picks the scenario with the highest total real value and
// compares it against the first scenario, which acts as the baseline.
func AnalyzeScenarios(results *domain.ScenarioComparison) Recommendation {
	if results == nil || len(results.Scenarios) == 0 {
		return Recommendation{}
	}
	type ranked struct {
		name  string
		value decimal.Decimal
	}
	ranks := make([]ranked, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		ranks = append(ranks, ranked{sc.Name, sc.TotalRealValue})
	}
	sort.SliceStable(ranks, func(i, j int) bool { return ranks[i].value.GreaterThan(ranks[j].value) })
	best := ranks[0]
	if results.RecommendedScenario != "" {
		for _, r := range ranks {
			if r.name == results.RecommendedScenario {
				best = r
				break
			}
		}
	}

	baseline := results.Scenarios[0].TotalRealValue
	delta := best.value.Sub(baseline)
	pct := decimal.Zero
	if !baseline.IsZero() {
		pct = delta.Div(baseline).Mul(decimalHundred)
	}
	return Recommendation{
		ScenarioName:      best.name,
		TotalRealValue:    best.value,
		RealValueChange:   delta,
		PercentageChange:  pct,
		LongevityScenario: results.BestForLongevity,
	}
}
