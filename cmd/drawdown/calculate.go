package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/drawdown-calculator/internal/output"
)

func newCalculateCmd(a *app) *cobra.Command {
	var today string
	cmd := &cobra.Command{
		Use:   "calculate <config.yaml>",
		Short: "Project every scenario in a configuration and write a report",
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

			results, err := a.engine(cfg.Rules()).RunScenarios(cmd.Context(), cfg, now)
			if err != nil {
				return err
			}
			a.logger.Info("scenarios projected",
				zap.Int("scenarios", len(results.Scenarios)),
				zap.String("recommended", results.RecommendedScenario))

			format := output.NormalizeFormatName(a.settings.Output.Format)
			if format == "console" || format == "console-lite" {
				f := output.GetFormatterByName(format)
				data, err := f.Format(results)
				if err != nil {
					return err
				}
				_, err = cmd.OutOrStdout().Write(data)
				return err
			}

			paths, err := output.GenerateReport(results, format, a.settings.Output.Dir)
			if err != nil {
				return err
			}
			for _, p := range paths {
				fmt.Fprintf(cmd.OutOrStdout(), "Report written to %s\n", p)
			}
			return nil
		},
	}
	cmd.Flags().StringP("format", "f", "console", "report format: console, console-lite, csv, detailed-csv, html, json, pdf, all")
	cmd.Flags().StringP("output", "o", ".", "directory for report files")
	cmd.Flags().StringVar(&today, "today", "", "projection date (YYYY-MM-DD), defaults to the current date")
	return cmd
}

func newExampleCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "example <file>",
		Short: "Write an example scenario configuration",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := output.SaveConfiguration(a.parser.CreateExampleConfiguration(), args[0]); err != nil {
				return fmt.Errorf("failed to write example configuration: %w", err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Example configuration written to %s\n", args[0])
			return nil
		},
	}
}

func newValidateCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config.yaml>",
		Short: "Check a scenario configuration without projecting it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := a.loadConfiguration(args[0])
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Configuration is valid: %d scenario(s)\n", len(cfg.Scenarios))
			for _, s := range cfg.Scenarios {
				fmt.Fprintf(cmd.OutOrStdout(), "  - %s (retiring %s)\n", s.Name, s.TargetRetirementDate.Format("2006-01-02"))
			}
			return nil
		},
	}
}
