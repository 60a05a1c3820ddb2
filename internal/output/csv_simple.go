package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/drawdown-calculator/internal/domain"
)

// CSVSummarizer implements the simple summary CSV output (one row per scenario).
type CSVSummarizer struct{}

func (c CSVSummarizer) Name() string { return "csv" }

func (c CSVSummarizer) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "RetirementDate", "PotAtRetirement", "LumpSum", "StartingBalance", "FirstYearCombined", "PotLongevity", "DepletionYear", "FinalPot", "TotalPrivatePension", "TotalStatePension", "TotalCombinedIncome", "TotalRealValue"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ProjectionSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		depletion := ""
		if sc.DepletionYear != 0 {
			depletion = intToString(sc.DepletionYear)
		}
		row := []string{
			sc.Name,
			sc.Inputs.TargetRetirementDate.Format("2006-01-02"),
			sc.PotAtRetirement.StringFixed(2),
			sc.LumpSumTaken.StringFixed(2),
			sc.StartingBalance.StringFixed(2),
			sc.FirstYearCombined.StringFixed(2),
			intToString(sc.PotLongevity),
			depletion,
			sc.FinalPot.StringFixed(2),
			sc.TotalPrivatePension.StringFixed(2),
			sc.TotalStatePension.StringFixed(2),
			sc.TotalCombinedIncome.StringFixed(2),
			sc.TotalRealValue.StringFixed(2),
		}
		if err := w.Write(row); err != nil {
			return nil, err
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
