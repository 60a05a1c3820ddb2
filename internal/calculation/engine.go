package calculation

import (
	"context"
	"fmt"
	"time"

	"github.com/rpgo/drawdown-calculator/internal/domain"
)

// CalculationEngine orchestrates accumulation, drawdown and discounting
type CalculationEngine struct {
	Rules       domain.PolicyRules
	Concurrency int  // parallel runs in a sensitivity sweep
	Debug       bool // log each year of a projection
	Logger      Logger
}

// NewCalculationEngine creates a new calculation engine with the default policy rules
func NewCalculationEngine() *CalculationEngine {
	return NewCalculationEngineWithRules(domain.DefaultPolicyRules())
}

// NewCalculationEngineWithRules creates a new calculation engine with the given policy rules
func NewCalculationEngineWithRules(rules domain.PolicyRules) *CalculationEngine {
	return &CalculationEngine{
		Rules:       rules.WithDefaults(),
		Concurrency: 4,
		Logger:      NopLogger{},
	}
}

// SetLogger sets the logger for the calculation engine. If nil is provided, a no-op logger is used.
func (ce *CalculationEngine) SetLogger(l Logger) {
	if l == nil {
		ce.Logger = NopLogger{}
		return
	}
	ce.Logger = l
}

// Project runs a single projection. It is a pure function of inputs, the
// engine rules and today; numeric edge cases are clamped rather than
// reported. The only error is context cancellation.
func (ce *CalculationEngine) Project(ctx context.Context, name string, inputs domain.Inputs, today time.Time) (*domain.ProjectionSummary, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	rules := ce.Rules
	acc := SimulateAccumulation(inputs, today, rules)

	sp := NewStatePensionCalculator(inputs.DateOfBirth, inputs.StatePensionEndDate, rules)
	startRate := sp.AnnualRateAt(today.Year(), inputs.TargetRetirementDate.Year())

	state := NewSimulationState(acc.StartingBalance, inputs.MonthlyDrawdownGoal, startRate, inputs.TargetRetirementDate)
	years := SimulateDrawdown(state, DrawdownParams{
		Inputs:       inputs,
		Rules:        rules,
		Today:        today,
		StatePension: sp,
	})

	summary := &domain.ProjectionSummary{
		Name:               name,
		Today:              today,
		Inputs:             inputs,
		Rules:              rules,
		AccumulationMonths: acc.Months,
		PotAtRetirement:    acc.PotAtRetirement.Round(2),
		LumpSumTaken:       acc.LumpSum.Round(2),
		StartingBalance:    acc.StartingBalance.Round(2),
		StatePensionAge:    sp.StatePensionAge,
		StatePensionDate:   sp.SPADate(),
		Years:              years,
	}
	summary.ComputeMetrics()

	ce.Logger.Infof("projection %q: %d accumulation months, pot at retirement %s, lump sum %s",
		name, acc.Months, summary.PotAtRetirement.StringFixed(2), summary.LumpSumTaken.StringFixed(2))
	if !state.ExhaustedAt.IsZero() {
		ce.Logger.Warnf("projection %q: pot exhausted in %s", name, state.ExhaustedAt.Format("2006-01"))
	}
	if ce.Debug {
		for _, y := range years {
			ce.Logger.Debugf("%d age=%d pot=%s private=%s state=%s real=%s",
				y.Year, y.Age, y.RemainingPot.StringFixed(2), y.PrivatePensionPaid.StringFixed(2),
				y.StatePensionPaid.StringFixed(2), y.RealValue.StringFixed(2))
		}
	}

	return summary, nil
}

// RunScenario projects one configured scenario
func (ce *CalculationEngine) RunScenario(ctx context.Context, config *domain.Configuration, scenario *domain.Scenario, today time.Time) (*domain.ProjectionSummary, error) {
	return ce.Project(ctx, scenario.Name, config.InputsFor(*scenario), today)
}

// RunScenarios runs all scenarios and returns a comparison
func (ce *CalculationEngine) RunScenarios(ctx context.Context, config *domain.Configuration, today time.Time) (*domain.ScenarioComparison, error) {
	engine := *ce
	engine.Rules = config.Rules()

	scenarios := make([]domain.ProjectionSummary, len(config.Scenarios))
	for i := range config.Scenarios {
		summary, err := engine.RunScenario(ctx, config, &config.Scenarios[i], today)
		if err != nil {
			return nil, fmt.Errorf("RunScenario failed for %q: %w", config.Scenarios[i].Name, err)
		}
		scenarios[i] = *summary
	}

	comparison := &domain.ScenarioComparison{
		Today:       today,
		Scenarios:   scenarios,
		Assumptions: config.Assumptions.GenerateAssumptions(engine.Rules),
	}
	comparison.RecommendedScenario, comparison.BestForLongevity = rankScenarios(scenarios)

	return comparison, nil
}
