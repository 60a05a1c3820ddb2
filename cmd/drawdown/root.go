package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/rpgo/drawdown-calculator/internal/calculation"
	"github.com/rpgo/drawdown-calculator/internal/config"
	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/rpgo/drawdown-calculator/internal/logging"
)

// app carries settings and the logger from the root command to subcommands.
type app struct {
	settingsPath string
	settings     config.AppConfig
	logger       *zap.Logger
	runID        string
	parser       *config.InputParser
}

func newRootCmd() *cobra.Command {
	a := &app{parser: config.NewInputParser()}

	root := &cobra.Command{
		Use:           "drawdown",
		Short:         "Pension drawdown and state pension projection calculator",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.init(cmd)
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.settingsPath, "config", "", "application settings file (YAML)")
	pf.String("log-level", "info", "log level (debug, info, warn, error)")
	pf.String("log-encoding", "console", "log encoding (console or json)")
	pf.Bool("debug", false, "log every projected year")

	root.AddCommand(
		newCalculateCmd(a),
		newExampleCmd(a),
		newValidateCmd(a),
		newSensitivityCmd(a),
		newCompareCmd(a),
		newServeCmd(a),
	)
	return root
}

func (a *app) init(cmd *cobra.Command) error {
	settings, err := config.LoadApp(a.settingsPath, cmd.Flags())
	if err != nil {
		return err
	}
	logger, err := logging.New(settings.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	a.settings = settings
	a.logger, a.runID = logging.WithRunID(logger.With(zap.String("command", cmd.Name())))
	return nil
}

// engine returns a calculation engine configured from the settings.
func (a *app) engine(rules domain.PolicyRules) *calculation.CalculationEngine {
	engine := calculation.NewCalculationEngineWithRules(rules)
	engine.Concurrency = a.settings.Engine.SweepConcurrency
	engine.Debug = a.settings.Engine.Debug
	engine.SetLogger(logging.NewEngineLogger(a.logger))
	return engine
}

func (a *app) loadConfiguration(path string) (*domain.Configuration, error) {
	cfg, err := a.parser.LoadFromFile(path)
	if err != nil {
		return nil, err
	}
	a.logger.Debug("configuration loaded", zap.String("path", path), zap.Int("scenarios", len(cfg.Scenarios)))
	return cfg, nil
}

// parseToday parses a --today flag, defaulting to the current date.
func parseToday(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return calculation.Today(), nil
	}
	t, err := time.Parse("2006-01-02", value)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today %q: expected YYYY-MM-DD", value)
	}
	return t, nil
}
