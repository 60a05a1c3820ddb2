package output

import (
	"bytes"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/rpgo/drawdown-calculator/internal/calculation"
	"github.com/rpgo/drawdown-calculator/internal/domain"
)

// ConsoleVerboseFormatter renders the detailed console report via the pluggable interface.
type ConsoleVerboseFormatter struct{}

func (c ConsoleVerboseFormatter) Name() string { return "console" }

func (c ConsoleVerboseFormatter) Format(results *domain.ScenarioComparison) ([]byte, error) {
	var buf bytes.Buffer

	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf, "PENSION DRAWDOWN PROJECTION")
	fmt.Fprintln(&buf, "=================================================================================")
	fmt.Fprintln(&buf)
	if !results.Today.IsZero() {
		fmt.Fprintf(&buf, "Projected from %s; real values are in today's money.\n\n", results.Today.Format("2 January 2006"))
	}
	fmt.Fprintln(&buf, "KEY ASSUMPTIONS:")
	for _, a := range assumptionsFor(results) {
		fmt.Fprintf(&buf, "• %s\n", a)
	}
	fmt.Fprintln(&buf)

	for i, scenario := range results.Scenarios {
		writeScenario(&buf, i+1, &scenario)
	}

	if len(results.Scenarios) >= 2 {
		writeBreakEven(&buf, &results.Scenarios[0], &results.Scenarios[1])
	}

	rec := AnalyzeScenarios(results)
	if rec.ScenarioName != "" {
		fmt.Fprintln(&buf, "SUMMARY & RECOMMENDATIONS")
		fmt.Fprintln(&buf, "=========================")
		fmt.Fprintf(&buf, "Best scenario: %s\n", rec.ScenarioName)
		fmt.Fprintf(&buf, "Total Real Value: %s\n", FormatCurrency(rec.TotalRealValue))
		fmt.Fprintf(&buf, "Change vs %s: %s (%s)\n", results.Scenarios[0].Name, FormatCurrency(rec.RealValueChange), FormatPercentage(rec.PercentageChange))
		if rec.LongevityScenario != "" {
			fmt.Fprintf(&buf, "Longest lasting pot: %s\n", rec.LongevityScenario)
		}
	}

	return buf.Bytes(), nil
}

func writeScenario(buf *bytes.Buffer, n int, sc *domain.ProjectionSummary) {
	title := fmt.Sprintf("SCENARIO %d: %s", n, sc.Name)
	fmt.Fprintln(buf, title)
	fmt.Fprintln(buf, strings.Repeat("=", len(title)))
	fmt.Fprintf(buf, "  Retirement Date:        %s\n", sc.Inputs.TargetRetirementDate.Format("2006-01-02"))
	fmt.Fprintf(buf, "  Months to Retirement:   %d\n", sc.AccumulationMonths)
	fmt.Fprintf(buf, "  Pot at Retirement:      %s\n", FormatCurrency(sc.PotAtRetirement))
	fmt.Fprintf(buf, "  Tax-free Lump Sum:      %s\n", FormatCurrency(sc.LumpSumTaken))
	fmt.Fprintf(buf, "  Drawdown Starting Pot:  %s\n", FormatCurrency(sc.StartingBalance))
	fmt.Fprintf(buf, "  Monthly Drawdown Goal:  %s\n", FormatCurrency(sc.Inputs.MonthlyDrawdownGoal))
	if !sc.StatePensionDate.IsZero() {
		fmt.Fprintf(buf, "  State Pension From:     %s (age %d)\n", sc.StatePensionDate.Format("2006-01-02"), sc.StatePensionAge)
	}
	fmt.Fprintln(buf)

	if len(sc.Years) > 0 {
		tw := tabwriter.NewWriter(buf, 0, 0, 2, ' ', tabwriter.AlignRight)
		fmt.Fprintln(tw, "Year\tAge\tRemaining Pot\tPrivate Pension\tState Pension\tCombined\tReal Value\t")
		for _, y := range sc.Years {
			fmt.Fprintf(tw, "%d\t%d\t%s\t%s\t%s\t%s\t%s\t\n",
				y.Year, y.Age,
				FormatCurrency(y.RemainingPot),
				FormatCurrency(y.PrivatePensionPaid),
				FormatCurrency(y.StatePensionPaid),
				FormatCurrency(y.CombinedIncome),
				FormatCurrency(y.RealValue),
			)
		}
		tw.Flush()
		fmt.Fprintln(buf)
	}

	fmt.Fprintln(buf, "LONG-TERM PROJECTION:")
	fmt.Fprintln(buf, "---------------------")
	fmt.Fprintf(buf, "  Pot Longevity:          %d years\n", sc.PotLongevity)
	if sc.IsPotDepleted() {
		fmt.Fprintf(buf, "  Pot Depleted In:        %d\n", sc.DepletionYear)
	}
	fmt.Fprintf(buf, "  Final Pot:              %s\n", FormatCurrency(sc.FinalPot))
	fmt.Fprintf(buf, "  Total Private Pension:  %s\n", FormatCurrency(sc.TotalPrivatePension))
	fmt.Fprintf(buf, "  Total State Pension:    %s\n", FormatCurrency(sc.TotalStatePension))
	fmt.Fprintf(buf, "  Total Combined Income:  %s\n", FormatCurrency(sc.TotalCombinedIncome))
	fmt.Fprintf(buf, "  Total Real Value:       %s\n", FormatCurrency(sc.TotalRealValue))
	fmt.Fprintln(buf)
	fmt.Fprintln(buf)
}

func writeBreakEven(buf *bytes.Buffer, a, b *domain.ProjectionSummary) {
	res, err := calculation.CalculateCumulativeBreakEven(a.Years, b.Years)
	if err != nil {
		return
	}
	fmt.Fprintln(buf, "CUMULATIVE INCOME BREAK-EVEN")
	fmt.Fprintln(buf, "============================")
	if res == nil {
		fmt.Fprintf(buf, "No crossover between %s and %s within the projection.\n\n", a.Name, b.Name)
		return
	}
	leader := a.Name
	if res.LeaderAfter == "b" {
		leader = b.Name
	}
	fmt.Fprintf(buf, "%s and %s cross in %02d/%d at %s; %s leads afterwards.\n\n",
		a.Name, b.Name, res.BreakEvenMonth, res.BreakEvenYear, FormatCurrency(res.CumulativeAmount), leader)
}
