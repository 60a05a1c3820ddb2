package domain

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPolicyRules_WithDefaults(t *testing.T) {
	p := PolicyRules{LumpSumCap: decimal.NewFromInt(100000)}.WithDefaults()

	assert.True(t, p.LumpSumCap.Equal(decimal.NewFromInt(100000)), "explicit cap kept")
	assert.True(t, p.StatePensionGrowthRate.IsZero(), "zero growth is a valid setting")
	assert.True(t, p.LumpSumFraction.IsZero())
	assert.Equal(t, 30, p.ProjectionYears)
}

func TestPolicyRules_UnmarshalYAML(t *testing.T) {
	t.Run("explicit zeros kept", func(t *testing.T) {
		var p PolicyRules
		require.NoError(t, yaml.Unmarshal([]byte("state_pension_growth_rate: 0\nlump_sum_cap: 0\nlump_sum_fraction: 0\n"), &p))

		assert.True(t, p.StatePensionGrowthRate.IsZero())
		assert.True(t, p.LumpSumCap.IsZero())
		assert.True(t, p.LumpSumFraction.IsZero())
		assert.True(t, p.BaseStatePensionAnnual.Equal(decimal.NewFromFloat(11973)), "omitted key keeps default")
		assert.Equal(t, 30, p.ProjectionYears)
	})

	t.Run("empty block gives defaults", func(t *testing.T) {
		var cfg Configuration
		require.NoError(t, yaml.Unmarshal([]byte("policy:\n  projection_years: 20\n"), &cfg))
		require.NotNil(t, cfg.Policy)
		rules := cfg.Rules()
		assert.Equal(t, 20, rules.ProjectionYears)
		assert.True(t, rules.StatePensionGrowthRate.Equal(decimal.NewFromFloat(0.045)))
		assert.True(t, rules.LumpSumCap.Equal(decimal.NewFromFloat(268275)))
	})
}

func TestInputs_BlendedDiscountRate(t *testing.T) {
	in := DefaultInputs()
	assert.True(t, in.BlendedDiscountRate().Equal(decimal.NewFromFloat(0.045)))
}

func TestConfiguration_InputsFor(t *testing.T) {
	end := time.Date(2060, 1, 1, 0, 0, 0, 0, time.UTC)
	override := decimal.NewFromFloat(0.07)
	cfg := Configuration{
		PersonalDetails: PersonalDetails{
			DateOfBirth:        time.Date(1975, 1, 1, 0, 0, 0, 0, time.UTC),
			CurrentPot:         decimal.NewFromInt(500000),
			AnnualContribution: decimal.NewFromInt(10000),
		},
		Assumptions: Assumptions{
			CAGR:           decimal.NewFromFloat(0.05),
			InflationRate:  decimal.NewFromFloat(0.04),
			DebasementRate: decimal.NewFromFloat(0.05),
		},
	}

	t.Run("shared values", func(t *testing.T) {
		in := cfg.InputsFor(Scenario{Name: "base", MonthlyDrawdownGoal: decimal.NewFromInt(3000)})
		assert.True(t, in.CAGR.Equal(decimal.NewFromFloat(0.05)))
		assert.True(t, in.AnnualContribution.Equal(decimal.NewFromInt(10000)))
		assert.Nil(t, in.StatePensionEndDate)
	})

	t.Run("scenario overrides", func(t *testing.T) {
		zero := decimal.Zero
		in := cfg.InputsFor(Scenario{CAGR: &override, AnnualContribution: &zero, StatePensionEndDate: &end})
		assert.True(t, in.CAGR.Equal(override))
		assert.True(t, in.AnnualContribution.IsZero())
		require.NotNil(t, in.StatePensionEndDate)
		assert.Equal(t, end, *in.StatePensionEndDate)
	})

	t.Run("rules default when policy absent", func(t *testing.T) {
		assert.Equal(t, 30, cfg.Rules().ProjectionYears)
	})
}

func TestConfiguration_UnmarshalYAML(t *testing.T) {
	doc := `
personal_details:
  name: Sample Saver
  date_of_birth: 1975-01-01
  current_pot: 500000
  annual_contribution: 10000
assumptions:
  cagr: 0.05
  inflation_rate: 0.04
  debasement_rate: 0.05
policy:
  lump_sum_cap: 200000
scenarios:
  - name: Lump sum
    target_retirement_date: 2035-01-01
    monthly_drawdown_goal: 3000
    take_lump_sum: true
    lump_sum_amount: "100000"
    cagr: 0.06
`
	var cfg Configuration
	require.NoError(t, yaml.Unmarshal([]byte(doc), &cfg))

	assert.Equal(t, "Sample Saver", cfg.PersonalDetails.Name)
	assert.Equal(t, 1975, cfg.PersonalDetails.DateOfBirth.Year())
	assert.True(t, cfg.PersonalDetails.CurrentPot.Equal(decimal.NewFromInt(500000)))
	require.Len(t, cfg.Scenarios, 1)
	s := cfg.Scenarios[0]
	assert.True(t, s.TakeLumpSum)
	assert.True(t, s.LumpSumAmount.Equal(decimal.NewFromInt(100000)))
	require.NotNil(t, s.CAGR)
	assert.True(t, s.CAGR.Equal(decimal.NewFromFloat(0.06)))
	assert.Nil(t, s.AnnualContribution)

	rules := cfg.Rules()
	assert.True(t, rules.LumpSumCap.Equal(decimal.NewFromInt(200000)))
	assert.True(t, rules.BaseStatePensionAnnual.Equal(decimal.NewFromFloat(11973)))
}

func TestGenerateAssumptions(t *testing.T) {
	a := Assumptions{
		CAGR:           decimal.NewFromFloat(0.05),
		InflationRate:  decimal.NewFromFloat(0.04),
		DebasementRate: decimal.NewFromFloat(0.05),
	}
	lines := a.GenerateAssumptions(DefaultPolicyRules())
	assert.Contains(t, lines[0], "5.0%")
	assert.Contains(t, lines[3], "4.50%")
	assert.Contains(t, lines[4], "£11973.00")
	assert.Contains(t, lines[5], "£268275.00")
}

func TestProjectionSummary_ComputeMetrics(t *testing.T) {
	row := func(year int, pot, private, state int64) YearRecord {
		combined := decimal.NewFromInt(private + state)
		return YearRecord{
			Year:               year,
			RemainingPot:       decimal.NewFromInt(pot),
			PrivatePensionPaid: decimal.NewFromInt(private),
			StatePensionPaid:   decimal.NewFromInt(state),
			CombinedIncome:     combined,
			RealValue:          combined.Div(decimal.NewFromInt(2)),
			PotDepleted:        pot == 0,
		}
	}

	t.Run("depletes", func(t *testing.T) {
		s := ProjectionSummary{Years: []YearRecord{
			row(2035, 100, 1000, 0),
			row(2036, 0, 100, 500),
			row(2037, 0, 0, 600),
		}}
		s.ComputeMetrics()

		assert.Equal(t, 2, s.PotLongevity)
		assert.Equal(t, 2036, s.DepletionYear)
		assert.True(t, s.IsPotDepleted())
		assert.True(t, s.TotalPrivatePension.Equal(decimal.NewFromInt(1100)))
		assert.True(t, s.TotalStatePension.Equal(decimal.NewFromInt(1100)))
		assert.True(t, s.TotalCombinedIncome.Equal(decimal.NewFromInt(2200)))
		assert.True(t, s.TotalRealValue.Equal(decimal.NewFromInt(1100)))
		assert.True(t, s.FirstYearCombined.Equal(decimal.NewFromInt(1000)))
		assert.True(t, s.FinalPot.IsZero())
	})

	t.Run("lasts", func(t *testing.T) {
		s := ProjectionSummary{Years: []YearRecord{row(2035, 100, 10, 0), row(2036, 90, 10, 0)}}
		s.ComputeMetrics()
		assert.Equal(t, 2, s.PotLongevity)
		assert.Equal(t, 0, s.DepletionYear)
		assert.False(t, s.IsPotDepleted())
		assert.True(t, s.FinalPot.Equal(decimal.NewFromInt(90)))
	})

	t.Run("empty pot with nothing drawn", func(t *testing.T) {
		s := ProjectionSummary{Years: []YearRecord{row(2035, 0, 0, 0), row(2036, 0, 0, 500)}}
		s.ComputeMetrics()
		assert.Equal(t, 2, s.PotLongevity)
		assert.Equal(t, 0, s.DepletionYear)
		assert.False(t, s.IsPotDepleted())
	})
}
