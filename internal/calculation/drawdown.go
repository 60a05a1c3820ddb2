package calculation

import (
	"time"

	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/rpgo/drawdown-calculator/pkg/dateutil"
	dec "github.com/rpgo/drawdown-calculator/pkg/decimal"
	"github.com/shopspring/decimal"
)

// SimulationState is the running state of one drawdown simulation
type SimulationState struct {
	Balance            dec.Money
	Withdrawal         dec.Money // monthly private withdrawal target
	StatePensionAnnual dec.Money

	Start      time.Time
	MonthIndex int
	Date       time.Time

	// totals for the year in progress
	PrivatePaid dec.Money
	StatePaid   dec.Money

	// zero when the pot has not run out
	ExhaustedAt time.Time
}

// NewSimulationState creates the state at the first month of retirement
func NewSimulationState(startingBalance, monthlyWithdrawal, statePensionAnnual decimal.Decimal, start time.Time) *SimulationState {
	return &SimulationState{
		Balance:            dec.NewMoneyFromDecimal(startingBalance).FloorZero(),
		Withdrawal:         dec.NewMoneyFromDecimal(monthlyWithdrawal).FloorZero(),
		StatePensionAnnual: dec.NewMoneyFromDecimal(statePensionAnnual).FloorZero(),
		Start:              start,
		Date:               start,
		PrivatePaid:        dec.Zero(),
		StatePaid:          dec.Zero(),
	}
}

// Withdraw takes the monthly target, or whatever is left. Shortfalls are not carried.
func (s *SimulationState) Withdraw() {
	take := dec.Min(s.Withdrawal, s.Balance)
	s.Balance = s.Balance.Sub(take)
	s.PrivatePaid = s.PrivatePaid.Add(take)
	if s.Balance.IsZero() && s.ExhaustedAt.IsZero() && s.Withdrawal.IsPositive() {
		s.ExhaustedAt = s.Date
	}
}

// Accrue adds one month of state pension when eligible
func (s *SimulationState) Accrue(sp *StatePensionCalculator) {
	if sp.Eligible(s.Date) {
		s.StatePaid = s.StatePaid.Add(s.StatePensionAnnual.Monthly()).RoundTo(internalPrecision)
	}
}

// Grow applies one month of investment growth to the remaining balance
func (s *SimulationState) Grow(monthlyFactor decimal.Decimal) {
	s.Balance = s.Balance.Mul(monthlyFactor).RoundTo(internalPrecision).FloorZero()
}

// Advance moves to the next calendar month. Dates are measured from the start
// so end-of-month clamping does not drift.
func (s *SimulationState) Advance() {
	s.MonthIndex++
	s.Date = dateutil.AddMonths(s.Start, s.MonthIndex)
}

// Escalate applies the year-end increases to the withdrawal target and state pension
func (s *SimulationState) Escalate(inflationRate, statePensionGrowth decimal.Decimal) {
	s.Withdrawal = s.Withdrawal.Mul(decimal.NewFromInt(1).Add(inflationRate)).RoundTo(internalPrecision).FloorZero()
	s.StatePensionAnnual = dec.NewMoneyFromDecimal(ApplyStatePensionGrowth(s.StatePensionAnnual.Decimal, statePensionGrowth)).FloorZero()
}

// closeYear returns the year totals and resets them
func (s *SimulationState) closeYear() (private, state dec.Money) {
	private, state = s.PrivatePaid, s.StatePaid
	s.PrivatePaid = dec.Zero()
	s.StatePaid = dec.Zero()
	return private, state
}

// DrawdownParams bundles what the drawdown loop needs besides the state
type DrawdownParams struct {
	Inputs       domain.Inputs
	Rules        domain.PolicyRules
	Today        time.Time
	StatePension *StatePensionCalculator
}

// SimulateDrawdown runs the monthly withdraw, accrue, grow, advance loop for
// the projection horizon and returns one record per simulated year. It never
// stops early: once the pot is empty private payouts stay at zero.
func SimulateDrawdown(state *SimulationState, p DrawdownParams) []domain.YearRecord {
	factor := MonthlyGrowthFactor(p.Inputs.CAGR)
	blended := p.Inputs.BlendedDiscountRate()
	years := p.Rules.ProjectionYears

	records := make([]domain.YearRecord, 0, years)
	for i := 0; i < years; i++ {
		yearStart := state.Date
		for m := 0; m < 12; m++ {
			state.Withdraw()
			state.Accrue(p.StatePension)
			state.Grow(factor)
			state.Advance()
		}

		private, sp := state.closeYear()
		private, sp = private.Round(), sp.Round()
		combined := private.Add(sp)
		year := p.Inputs.TargetRetirementDate.Year() + i

		records = append(records, domain.YearRecord{
			Year:               year,
			Age:                dateutil.Age(p.Inputs.DateOfBirth, yearStart),
			RemainingPot:       state.Balance.Round().Decimal,
			PrivatePensionPaid: private.Decimal,
			StatePensionPaid:   sp.Decimal,
			CombinedIncome:     combined.Decimal,
			RealValue:          RealValue(combined.Decimal, blended, YearsElapsed(p.Today, year)),
			PotDepleted:        !state.ExhaustedAt.IsZero(),
		})

		state.Escalate(p.Inputs.InflationRate, p.Rules.StatePensionGrowthRate)
	}
	return records
}
