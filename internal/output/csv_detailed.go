package output

import (
	"bytes"
	"encoding/csv"
	"sort"

	"github.com/rpgo/drawdown-calculator/internal/domain"
)

// CSVDetailedExporter provides the raw yearly drawdown records per scenario.
type CSVDetailedExporter struct{}

func (c CSVDetailedExporter) Name() string { return "detailed-csv" }

func (c CSVDetailedExporter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	buf := &bytes.Buffer{}
	w := csv.NewWriter(buf)
	header := []string{"Scenario", "YearIndex", "Year", "Age", "RemainingPot", "PrivatePensionPaid", "StatePensionPaid", "CombinedIncome", "RealValue", "PotDepleted"}
	if err := w.Write(header); err != nil {
		return nil, err
	}
	scenarios := append([]domain.ProjectionSummary(nil), results.Scenarios...)
	sort.Slice(scenarios, func(i, j int) bool { return scenarios[i].Name < scenarios[j].Name })
	for _, sc := range scenarios {
		for i, yr := range sc.Years {
			row := []string{
				sc.Name,
				intToString(i + 1),
				intToString(yr.Year),
				intToString(yr.Age),
				yr.RemainingPot.StringFixed(2),
				yr.PrivatePensionPaid.StringFixed(2),
				yr.StatePensionPaid.StringFixed(2),
				yr.CombinedIncome.StringFixed(2),
				yr.RealValue.StringFixed(2),
				boolToString(yr.IsPotDepleted()),
			}
			if err := w.Write(row); err != nil {
				return nil, err
			}
		}
	}
	w.Flush()
	return buf.Bytes(), w.Error()
}
