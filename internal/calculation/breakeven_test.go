package calculation

import (
	"context"
	"testing"

	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeRecord(year int, combined float64) domain.YearRecord {
	return domain.YearRecord{
		Year:           year,
		CombinedIncome: decimal.NewFromFloat(combined),
	}
}

// Test exact year crossover
func TestCalculateCumulativeBreakEven_ExactYear(t *testing.T) {
	// A and B cross exactly at end of year 2 with cumulative 300
	projA := []domain.YearRecord{makeRecord(2035, 100), makeRecord(2036, 200), makeRecord(2037, 200)}
	projB := []domain.YearRecord{makeRecord(2035, 150), makeRecord(2036, 150), makeRecord(2037, 150)}

	res, err := CalculateCumulativeBreakEven(projA, projB)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, 2, res.YearIndex)
	assert.True(t, res.CumulativeAmount.Equal(decimal.NewFromInt(300)))
	assert.Equal(t, 12, res.BreakEvenMonth)
	assert.Equal(t, 2036, res.BreakEvenYear)
	assert.Equal(t, "a", res.LeaderAfter)
}

// Test mid-year interpolation crossover
func TestCalculateCumulativeBreakEven_Interpolation(t *testing.T) {
	// After year1: A=100, B=80 (diff=20)
	// Year2: A adds 100, B adds 140 -> cumulative A=200, B=220 (diff=-20)
	// prevDiff=20, currDiff=-20 => t = 0.5
	projA := []domain.YearRecord{makeRecord(2035, 100), makeRecord(2036, 100)}
	projB := []domain.YearRecord{makeRecord(2035, 80), makeRecord(2036, 140)}

	res, err := CalculateCumulativeBreakEven(projA, projB)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.InDelta(t, 0.5, res.Fraction.InexactFloat64(), 0.001)
	assert.InDelta(t, 2036.5, res.CalendarYear, 0.001)
	assert.Equal(t, 7, res.BreakEvenMonth)
	assert.Equal(t, "b", res.LeaderAfter)
	assert.True(t, res.CumulativeAmount.Equal(decimal.NewFromInt(150)))
}

func TestCalculateCumulativeBreakEven_NoCrossover(t *testing.T) {
	projA := []domain.YearRecord{makeRecord(2035, 100), makeRecord(2036, 100)}
	projB := []domain.YearRecord{makeRecord(2035, 50), makeRecord(2036, 50)}

	res, err := CalculateCumulativeBreakEven(projA, projB)
	require.NoError(t, err)
	assert.Nil(t, res)

	// identical projections never cross
	res, err = CalculateCumulativeBreakEven(projA, projA)
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestCalculateCumulativeBreakEven_Errors(t *testing.T) {
	_, err := CalculateCumulativeBreakEven(nil, []domain.YearRecord{makeRecord(2035, 1)})
	assert.Error(t, err)

	_, err = CalculateCumulativeBreakEven([]domain.YearRecord{makeRecord(2035, 1)}, []domain.YearRecord{})
	assert.Error(t, err)
}

func TestCalculateCumulativeBreakEven_DifferentStartYears(t *testing.T) {
	// Retiring in 2035 earns 100 a year; retiring in 2037 earns 250 a year.
	// Cumulative: 2036 A=200 B=0, 2037 A=300 B=250, 2038 A=400 B=500.
	// In 2038 the gap goes from 50 to -100, so t = 50/150.
	early := []domain.YearRecord{makeRecord(2035, 100), makeRecord(2036, 100), makeRecord(2037, 100), makeRecord(2038, 100), makeRecord(2039, 100)}
	late := []domain.YearRecord{makeRecord(2037, 250), makeRecord(2038, 250)}

	tests := []struct {
		name       string
		a, b       []domain.YearRecord
		wantLeader string
	}{
		{"later start second", early, late, "b"},
		{"later start first", late, early, "a"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := CalculateCumulativeBreakEven(tt.a, tt.b)
			require.NoError(t, err)
			require.NotNil(t, res)
			assert.Equal(t, 2038, res.BreakEvenYear)
			assert.Equal(t, 4, res.YearIndex, "counted from 2035")
			assert.Equal(t, 5, res.BreakEvenMonth)
			assert.InDelta(t, 2038.333, res.CalendarYear, 0.001)
			assert.Equal(t, tt.wantLeader, res.LeaderAfter)
		})
	}
}

func TestCalculateCumulativeBreakEven_RetireLaterScenario(t *testing.T) {
	now := baseInputs()
	later := baseInputs()
	later.TargetRetirementDate = date(2037, 1, 1)
	later.MonthlyDrawdownGoal = d("2500")

	engine := NewCalculationEngine()
	a, err := engine.Project(context.Background(), "2035", now, testToday)
	require.NoError(t, err)
	b, err := engine.Project(context.Background(), "2037", later, testToday)
	require.NoError(t, err)

	_, err = CalculateCumulativeBreakEven(a.Years, b.Years)
	assert.NoError(t, err)
}

func TestCalculateCumulativeBreakEven_LumpSumVersusInvested(t *testing.T) {
	// Drawing harder from the smaller pot leads at first; the invested pot
	// catches up once the smaller one runs out.
	withLump := baseInputs()
	withLump.TakeLumpSum = true
	withLump.LumpSumAmount = d("250000")
	withLump.MonthlyDrawdownGoal = d("4500")

	invested := baseInputs()
	invested.MonthlyDrawdownGoal = d("3000")

	engine := NewCalculationEngine()
	a, err := engine.Project(context.Background(), "lump", withLump, testToday)
	require.NoError(t, err)
	b, err := engine.Project(context.Background(), "invested", invested, testToday)
	require.NoError(t, err)

	res, err := CalculateCumulativeBreakEven(a.Years, b.Years)
	require.NoError(t, err)
	require.NotNil(t, res)
	assert.Equal(t, "b", res.LeaderAfter)
	assert.Equal(t, 2055, res.BreakEvenYear)
}
