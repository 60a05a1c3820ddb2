package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// YearRecord is one simulated year of drawdown. All amounts are unformatted
// and never negative.
type YearRecord struct {
	Year               int             `json:"year"`
	Age                int             `json:"age"`
	RemainingPot       decimal.Decimal `json:"remaining_pot"`
	PrivatePensionPaid decimal.Decimal `json:"private_pension_paid"`
	StatePensionPaid   decimal.Decimal `json:"state_pension_paid"`
	CombinedIncome     decimal.Decimal `json:"combined_income"`
	RealValue          decimal.Decimal `json:"real_value"`
	PotDepleted        bool            `json:"pot_depleted"`
}

// IsPotDepleted reports whether the pot has run out of money to meet a
// withdrawal by the end of the year. An empty pot with nothing to draw is
// not depleted.
func (r *YearRecord) IsPotDepleted() bool {
	return r.PotDepleted
}

// ProjectionSummary is the result of one projection run
type ProjectionSummary struct {
	Name   string      `json:"name"`
	Today  time.Time   `json:"today"`
	Inputs Inputs      `json:"inputs"`
	Rules  PolicyRules `json:"rules"`

	// Accumulation phase
	AccumulationMonths int             `json:"accumulation_months"`
	PotAtRetirement    decimal.Decimal `json:"pot_at_retirement"`
	LumpSumTaken       decimal.Decimal `json:"lump_sum_taken"`
	StartingBalance    decimal.Decimal `json:"starting_balance"`

	// State pension eligibility
	StatePensionAge  int       `json:"state_pension_age"`
	StatePensionDate time.Time `json:"state_pension_date"`

	Years []YearRecord `json:"years"`

	// Derived metrics
	PotLongevity        int             `json:"pot_longevity"`
	DepletionYear       int             `json:"depletion_year,omitempty"`
	FinalPot            decimal.Decimal `json:"final_pot"`
	FirstYearCombined   decimal.Decimal `json:"first_year_combined"`
	TotalPrivatePension decimal.Decimal `json:"total_private_pension"`
	TotalStatePension   decimal.Decimal `json:"total_state_pension"`
	TotalCombinedIncome decimal.Decimal `json:"total_combined_income"`
	TotalRealValue      decimal.Decimal `json:"total_real_value"`
}

// ComputeMetrics fills the derived metrics from Years
func (s *ProjectionSummary) ComputeMetrics() {
	s.PotLongevity = len(s.Years)
	s.DepletionYear = 0
	s.FinalPot = decimal.Zero
	s.FirstYearCombined = decimal.Zero
	s.TotalPrivatePension = decimal.Zero
	s.TotalStatePension = decimal.Zero
	s.TotalCombinedIncome = decimal.Zero
	s.TotalRealValue = decimal.Zero

	for i := range s.Years {
		y := &s.Years[i]
		if s.DepletionYear == 0 && y.IsPotDepleted() {
			s.DepletionYear = y.Year
			s.PotLongevity = i + 1
		}
		s.TotalPrivatePension = s.TotalPrivatePension.Add(y.PrivatePensionPaid)
		s.TotalStatePension = s.TotalStatePension.Add(y.StatePensionPaid)
		s.TotalCombinedIncome = s.TotalCombinedIncome.Add(y.CombinedIncome)
		s.TotalRealValue = s.TotalRealValue.Add(y.RealValue)
	}
	if len(s.Years) > 0 {
		s.FirstYearCombined = s.Years[0].CombinedIncome
		s.FinalPot = s.Years[len(s.Years)-1].RemainingPot
	}
}

// IsPotDepleted reports whether the pot ran out within the projection
func (s *ProjectionSummary) IsPotDepleted() bool {
	return s.DepletionYear != 0
}

// ScenarioComparison provides a comparison of all scenarios
type ScenarioComparison struct {
	Today               time.Time           `json:"today"`
	Scenarios           []ProjectionSummary `json:"scenarios"`
	Assumptions         []string            `json:"assumptions"`
	RecommendedScenario string              `json:"recommended_scenario"`
	BestForLongevity    string              `json:"best_for_longevity"`
}

// SensitivityPoint holds the key metrics of one run in a parameter sweep
type SensitivityPoint struct {
	Value           decimal.Decimal `json:"value"`
	PotAtRetirement decimal.Decimal `json:"pot_at_retirement"`
	FinalPot        decimal.Decimal `json:"final_pot"`
	PotLongevity    int             `json:"pot_longevity"`
	DepletionYear   int             `json:"depletion_year,omitempty"`
	TotalCombined   decimal.Decimal `json:"total_combined_income"`
	TotalRealValue  decimal.Decimal `json:"total_real_value"`
}

// SensitivityResult is a sweep of one input parameter
type SensitivityResult struct {
	Parameter string             `json:"parameter"`
	Points    []SensitivityPoint `json:"points"`
}
