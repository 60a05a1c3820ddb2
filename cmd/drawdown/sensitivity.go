package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/rpgo/drawdown-calculator/internal/calculation"
	"github.com/rpgo/drawdown-calculator/internal/config"
	"github.com/rpgo/drawdown-calculator/internal/output"
)

func newSensitivityCmd(a *app) *cobra.Command {
	var (
		scenarioName string
		param        string
		minValue     string
		maxValue     string
		steps        int
		today        string
	)
	cmd := &cobra.Command{
		Use:   "sensitivity <config.yaml>",
		Short: "Sweep one input over a range and compare the outcomes",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration(args[0])
			if err != nil {
				return err
			}
			now, err := parseToday(today)
			if err != nil {
				return err
			}
			scenario := &cfg.Scenarios[0]
			if scenarioName != "" {
				if scenario, err = config.FindScenario(cfg, scenarioName); err != nil {
					return err
				}
			}
			lo, err := decimal.NewFromString(minValue)
			if err != nil {
				return fmt.Errorf("invalid --min %q: %w", minValue, err)
			}
			hi, err := decimal.NewFromString(maxValue)
			if err != nil {
				return fmt.Errorf("invalid --max %q: %w", maxValue, err)
			}

			sweep := calculation.SweepParameter{Name: param, Min: lo, Max: hi, Steps: steps}
			res, err := a.engine(cfg.Rules()).RunSensitivity(cmd.Context(), cfg.InputsFor(*scenario), now, sweep)
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Sensitivity of %q to %s\n\n", scenario.Name, res.Parameter)
			tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', tabwriter.AlignRight)
			fmt.Fprintln(tw, strings.Join([]string{"Value", "Pot at Retirement", "Final Pot", "Longevity", "Depleted", "Total Income", "Real Value", ""}, "\t"))
			for _, p := range res.Points {
				depleted := "-"
				if p.DepletionYear != 0 {
					depleted = fmt.Sprint(p.DepletionYear)
				}
				fmt.Fprintf(tw, "%s\t%s\t%s\t%d\t%s\t%s\t%s\t\n",
					p.Value.String(),
					output.FormatCurrency(p.PotAtRetirement),
					output.FormatCurrency(p.FinalPot),
					p.PotLongevity,
					depleted,
					output.FormatCurrency(p.TotalCombined),
					output.FormatCurrency(p.TotalRealValue),
				)
			}
			return tw.Flush()
		},
	}
	f := cmd.Flags()
	f.StringVar(&scenarioName, "scenario", "", "scenario to sweep (defaults to the first)")
	f.StringVar(&param, "param", "cagr", "parameter: "+strings.Join(calculation.SweepParameterNames(), ", "))
	f.StringVar(&minValue, "min", "0.02", "lowest value")
	f.StringVar(&maxValue, "max", "0.08", "highest value")
	f.IntVar(&steps, "steps", 7, "number of values, ends included")
	f.StringVar(&today, "today", "", "projection date (YYYY-MM-DD), defaults to the current date")
	return cmd
}
