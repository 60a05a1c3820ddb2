package calculation

import (
	"time"

	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/rpgo/drawdown-calculator/pkg/dateutil"
	"github.com/shopspring/decimal"
)

// StatePensionCalculator handles state pension eligibility and the starting rate
type StatePensionCalculator struct {
	BirthDate       time.Time
	StatePensionAge int
	EndDate         *time.Time
	Rules           domain.PolicyRules
}

// NewStatePensionCalculator creates a new state pension calculator
func NewStatePensionCalculator(birthDate time.Time, endDate *time.Time, rules domain.PolicyRules) *StatePensionCalculator {
	return &StatePensionCalculator{
		BirthDate:       birthDate,
		StatePensionAge: dateutil.StatePensionAge(birthDate),
		EndDate:         endDate,
		Rules:           rules,
	}
}

// SPADate returns the date state pension age is reached
func (spc *StatePensionCalculator) SPADate() time.Time {
	return dateutil.StatePensionDate(spc.BirthDate)
}

// Eligible reports whether the state pension is paid for the month starting at d
func (spc *StatePensionCalculator) Eligible(d time.Time) bool {
	if d.Before(spc.SPADate()) {
		return false
	}
	if spc.EndDate != nil && !d.Before(*spc.EndDate) {
		return false
	}
	return true
}

// AnnualRateAt returns the annual state pension rate at the start of
// retirementYear, escalating the base rate once per year from todayYear.
func (spc *StatePensionCalculator) AnnualRateAt(todayYear, retirementYear int) decimal.Decimal {
	years := retirementYear - todayYear
	if years < 0 {
		years = 0
	}
	return spc.Rules.BaseStatePensionAnnual.Mul(compoundFactor(spc.Rules.StatePensionGrowthRate, years)).Round(internalPrecision)
}

// ApplyStatePensionGrowth applies one year of state pension escalation
func ApplyStatePensionGrowth(currentRate, growthRate decimal.Decimal) decimal.Decimal {
	return currentRate.Mul(decimal.NewFromFloat(1.0).Add(growthRate)).Round(internalPrecision)
}
