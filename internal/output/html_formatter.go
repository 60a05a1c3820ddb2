package output

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"html/template"

	calc "github.com/rpgo/drawdown-calculator/internal/calculation"
	"github.com/rpgo/drawdown-calculator/internal/domain"
)

// HTMLFormatter produces a standalone HTML report with a year table per scenario.
type HTMLFormatter struct{}

func (h HTMLFormatter) Name() string { return "html" }

//go:embed templates/report.html.tmpl
var htmlTemplateSource string

var htmlTemplate = template.Must(template.New("report").Funcs(template.FuncMap{
	"curr":   FormatCurrency,
	"pct":    FormatPercentage,
	"rate":   FormatRate,
	"yearOr": yearOrDash,
	"add":    func(i, j int) int { return i + j },
	"date":   func(d interface{ Format(string) string }) string { return d.Format("2006-01-02") },
	"json": func(v interface{}) template.JS {
		b, _ := json.Marshal(v)
		return template.JS(b)
	},
}).Parse(htmlTemplateSource))

type chartSeries struct {
	Name     string    `json:"name"`
	Years    []int     `json:"years"`
	Pot      []float64 `json:"pot"`
	Combined []float64 `json:"combined"`
}

func (h HTMLFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer
	rec := AnalyzeScenarios(results)

	var breakEven *calc.CumulativeBreakEvenResult
	var breakEvenLeader string
	if len(results.Scenarios) >= 2 {
		a, b := results.Scenarios[0], results.Scenarios[1]
		if be, err := calc.CalculateCumulativeBreakEven(a.Years, b.Years); err == nil && be != nil {
			breakEven = be
			breakEvenLeader = a.Name
			if be.LeaderAfter == "b" {
				breakEvenLeader = b.Name
			}
		}
	}

	series := make([]chartSeries, 0, len(results.Scenarios))
	for _, sc := range results.Scenarios {
		s := chartSeries{Name: sc.Name}
		for _, y := range sc.Years {
			s.Years = append(s.Years, y.Year)
			s.Pot = append(s.Pot, y.RemainingPot.InexactFloat64())
			s.Combined = append(s.Combined, y.CombinedIncome.InexactFloat64())
		}
		series = append(series, s)
	}

	data := struct {
		*domain.ScenarioComparison
		Recommendation  Recommendation
		Assumptions     []string
		BreakEven       *calc.CumulativeBreakEvenResult
		BreakEvenLeader string
		Chart           []chartSeries
	}{results, rec, assumptionsFor(results), breakEven, breakEvenLeader, series}
	if err := htmlTemplate.Execute(&buf, data); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
