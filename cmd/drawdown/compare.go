package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/rpgo/drawdown-calculator/internal/calculation"
	"github.com/rpgo/drawdown-calculator/internal/config"
	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/rpgo/drawdown-calculator/internal/output"
)

func newCompareCmd(a *app) *cobra.Command {
	var today string
	cmd := &cobra.Command{
		Use:   "compare <config.yaml> <scenarioA> <scenarioB>",
		Short: "Find when cumulative income of two scenarios breaks even",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration(args[0])
			if err != nil {
				return err
			}
			now, err := parseToday(today)
			if err != nil {
				return err
			}
			engine := a.engine(cfg.Rules())
			out := cmd.OutOrStdout()

			var names [2]string
			var totals [2]string
			projections := make([][]domain.YearRecord, 2)
			for i, name := range args[1:] {
				scenario, err := config.FindScenario(cfg, name)
				if err != nil {
					return err
				}
				summary, err := engine.RunScenario(cmd.Context(), cfg, scenario, now)
				if err != nil {
					return err
				}
				names[i] = summary.Name
				totals[i] = output.FormatCurrency(summary.TotalCombinedIncome)
				projections[i] = summary.Years
			}
			fmt.Fprintf(out, "%s: total income %s\n", names[0], totals[0])
			fmt.Fprintf(out, "%s: total income %s\n", names[1], totals[1])

			res, err := calculation.CalculateCumulativeBreakEven(projections[0], projections[1])
			if err != nil {
				return fmt.Errorf("break-even: %w", err)
			}
			if res == nil {
				fmt.Fprintln(out, "No break-even within the projection.")
				return nil
			}
			leader := names[0]
			if res.LeaderAfter == "b" {
				leader = names[1]
			}
			fmt.Fprintf(out, "Break-even in %02d/%d (projection year %d) at %s cumulative income; %s leads afterwards.\n",
				res.BreakEvenMonth, res.BreakEvenYear, res.YearIndex, output.FormatCurrency(res.CumulativeAmount), leader)
			return nil
		},
	}
	cmd.Flags().StringVar(&today, "today", "", "projection date (YYYY-MM-DD), defaults to the current date")
	return cmd
}
