package integration

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rpgo/drawdown-calculator/internal/calculation"
	"github.com/rpgo/drawdown-calculator/internal/config"
	"github.com/rpgo/drawdown-calculator/internal/domain"
)

const exampleConfig = "../testdata/example_config.yaml"

var today = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

func loadAndRun(t *testing.T) (*domain.Configuration, *domain.ScenarioComparison) {
	t.Helper()
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)

	engine := calculation.NewCalculationEngineWithRules(cfg.Rules())
	results, err := engine.RunScenarios(context.Background(), cfg, today)
	require.NoError(t, err)
	return cfg, results
}

func TestEndToEndCalculation(t *testing.T) {
	cfg, results := loadAndRun(t)
	require.Len(t, cfg.Scenarios, 2)
	require.Len(t, results.Scenarios, 2)
	assert.NotEmpty(t, results.RecommendedScenario)
	assert.NotEmpty(t, results.BestForLongevity)
	assert.Len(t, results.Assumptions, 8)

	invested := results.Scenarios[1]
	assert.Equal(t, "Invested", invested.Name)
	assert.Equal(t, 132, invested.AccumulationMonths)
	assert.InDelta(t, 1000464.59, invested.PotAtRetirement.InexactFloat64(), 1.0)
	assert.True(t, invested.LumpSumTaken.IsZero())
	require.Len(t, invested.Years, 30)

	first := invested.Years[0]
	assert.Equal(t, 2035, first.Year)
	assert.Equal(t, 60, first.Age)
	assert.True(t, first.PrivatePensionPaid.Equal(decimal.NewFromInt(36000)))
	assert.True(t, first.StatePensionPaid.IsZero())
	assert.InDelta(t, 22183.15, first.RealValue.InexactFloat64(), 0.01)
	assert.True(t, invested.Years[1].PrivatePensionPaid.Equal(decimal.NewFromInt(37440)))

	// state pension age 67 is reached on 1 January 2042
	sp := invested.Years[7]
	assert.Equal(t, 2042, sp.Year)
	assert.InDelta(t, 26442.12, sp.StatePensionPaid.InexactFloat64(), 0.05)
	assert.True(t, invested.Years[6].StatePensionPaid.IsZero())
}

func TestLumpSumScenario(t *testing.T) {
	_, results := loadAndRun(t)
	lump := results.Scenarios[0]
	assert.Equal(t, "Lump sum", lump.Name)
	assert.True(t, lump.LumpSumTaken.Equal(decimal.NewFromInt(250000)), lump.LumpSumTaken.String())
	assert.InDelta(t, 750464.59, lump.StartingBalance.InexactFloat64(), 1.0)
	assert.True(t, lump.IsPotDepleted())
	assert.Less(t, lump.PotLongevity, results.Scenarios[1].PotLongevity)
	assert.Equal(t, "Invested", results.BestForLongevity)
}

func TestBreakEvenLumpSumVersusInvested(t *testing.T) {
	_, results := loadAndRun(t)
	res, err := calculation.CalculateCumulativeBreakEven(results.Scenarios[0].Years, results.Scenarios[1].Years)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2055, res.BreakEvenYear)
	assert.Equal(t, "b", res.LeaderAfter)
}

func TestIdempotentRuns(t *testing.T) {
	_, a := loadAndRun(t)
	_, b := loadAndRun(t)
	assert.Equal(t, a, b)
}

func TestConfigurationValidation(t *testing.T) {
	parser := config.NewInputParser()
	cfg, err := parser.LoadFromFile(exampleConfig)
	require.NoError(t, err)
	assert.NoError(t, parser.ValidateConfiguration(cfg))

	cfg.Scenarios[0].LumpSumAmount = decimal.NewFromInt(-1)
	assert.Error(t, parser.ValidateConfiguration(cfg))
}
