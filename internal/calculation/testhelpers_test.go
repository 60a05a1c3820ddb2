package calculation

import (
	"time"

	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

var testToday = date(2024, 1, 1)

// baseInputs is the reference scenario: born 1975, retiring 2035 with a £500k pot
func baseInputs() domain.Inputs {
	return domain.Inputs{
		DateOfBirth:          date(1975, 1, 1),
		TargetRetirementDate: date(2035, 1, 1),
		CurrentPot:           d("500000"),
		AnnualContribution:   d("10000"),
		MonthlyDrawdownGoal:  d("3000"),
		CAGR:                 d("0.05"),
		InflationRate:        d("0.04"),
		DebasementRate:       d("0.05"),
	}
}
