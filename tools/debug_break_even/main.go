package main

import (
	"context"
	"fmt"
	"os"
	"time"

	calc "github.com/rpgo/drawdown-calculator/internal/calculation"
	"github.com/rpgo/drawdown-calculator/internal/config"
	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// Prints cumulative combined income per year for every scenario as CSV,
// followed by the break-even between the first two scenarios.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("usage: debug_break_even <config-file> [YYYY-MM-DD]")
		return
	}
	p := config.NewInputParser()
	cfg, err := p.LoadFromFile(os.Args[1])
	if err != nil {
		panic(err)
	}
	today := calc.Today()
	if len(os.Args) > 2 {
		if today, err = time.Parse("2006-01-02", os.Args[2]); err != nil {
			panic(err)
		}
	}
	engine := calc.NewCalculationEngineWithRules(cfg.Rules())
	res, err := engine.RunScenarios(context.Background(), cfg, today)
	if err != nil {
		panic(err)
	}
	if len(res.Scenarios) < 1 {
		fmt.Println("no scenarios")
		return
	}

	// Rows run by calendar year from the earliest retirement to the earliest
	// projection end; scenarios that have not started yet show zeros.
	first, last := 0, 0
	for i, s := range res.Scenarios {
		if len(s.Years) == 0 {
			fmt.Println("no projection data")
			return
		}
		start, end := s.Years[0].Year, s.Years[len(s.Years)-1].Year
		if i == 0 || start < first {
			first = start
		}
		if i == 0 || end < last {
			last = end
		}
	}

	header := "Index,Year"
	for i := range res.Scenarios {
		header += fmt.Sprintf(",S%d_Pot,S%d_Private,S%d_State,S%d_Combined,S%d_Cumulative", i+1, i+1, i+1, i+1, i+1)
	}
	fmt.Println(header)

	cumulative := make([]decimal.Decimal, len(res.Scenarios))
	for year := first; year <= last; year++ {
		row := fmt.Sprintf("%d,%d", year-first, year)
		for sidx, s := range res.Scenarios {
			var y domain.YearRecord
			if i := year - s.Years[0].Year; i >= 0 && i < len(s.Years) {
				y = s.Years[i]
			}
			cumulative[sidx] = cumulative[sidx].Add(y.CombinedIncome)
			row += fmt.Sprintf(",%s,%s,%s,%s,%s", y.RemainingPot.StringFixed(0), y.PrivatePensionPaid.StringFixed(0), y.StatePensionPaid.StringFixed(0), y.CombinedIncome.StringFixed(0), cumulative[sidx].StringFixed(0))
		}
		fmt.Println(row)
	}

	if len(res.Scenarios) >= 2 {
		be, err := calc.CalculateCumulativeBreakEven(res.Scenarios[0].Years, res.Scenarios[1].Years)
		if err != nil {
			panic(err)
		}
		if be == nil {
			fmt.Println("No break-even")
			return
		}
		fmt.Printf("Break-even: %d/%d (year index %d, fraction %s), cumulative %s, leader after: %s\n",
			be.BreakEvenMonth, be.BreakEvenYear, be.YearIndex, be.Fraction.StringFixed(3), be.CumulativeAmount.StringFixed(2), be.LeaderAfter)
	}
}
