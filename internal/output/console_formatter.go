package output

import (
	"bytes"
	"fmt"
	"sort"

	"github.com/rpgo/drawdown-calculator/internal/domain"
)

// ConsoleFormatter provides a concise console style summary via the formatter interface.
type ConsoleFormatter struct{}

func (c ConsoleFormatter) Name() string { return "console-lite" }

func (c ConsoleFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	fmt.Fprintln(&buf, "DRAWDOWN SCENARIO SUMMARY")
	fmt.Fprintln(&buf, "================================")
	if !results.Today.IsZero() {
		fmt.Fprintf(&buf, "Projected from: %s\n", results.Today.Format("2006-01-02"))
	}
	fmt.Fprintln(&buf)
	scenarios := append([]domain.ProjectionSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		fmt.Fprintf(&buf, "%s: PotAtRetirement=%s LumpSum=%s FirstYear=%s Longevity=%d\n",
			sc.Name,
			FormatCurrency(sc.PotAtRetirement),
			FormatCurrency(sc.LumpSumTaken),
			FormatCurrency(sc.FirstYearCombined),
			sc.PotLongevity,
		)
		fmt.Fprintf(&buf, "  TotalIncome=%s RealValue=%s FinalPot=%s Depleted=%s\n",
			FormatCurrency(sc.TotalCombinedIncome),
			FormatCurrency(sc.TotalRealValue),
			FormatCurrency(sc.FinalPot),
			yearOrDash(sc.DepletionYear),
		)
	}
	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf)
		fmt.Fprintf(&buf, "Recommended: %s (Δ %s / %s)\n", rec.ScenarioName, FormatCurrency(rec.RealValueChange), FormatPercentage(rec.PercentageChange))
	}
	return buf.Bytes(), nil
}
