package calculation

import (
	"time"

	"github.com/shopspring/decimal"
)

// YearsElapsed is the discounting exponent for a projection year, counted
// from today and never below one.
func YearsElapsed(today time.Time, year int) int {
	n := year - today.Year()
	if n < 1 {
		return 1
	}
	return n
}

// RealValue discounts a nominal amount by the blended rate over the given
// number of years. A non-positive discount factor yields zero.
func RealValue(nominal, blendedRate decimal.Decimal, years int) decimal.Decimal {
	factor := compoundFactor(blendedRate, years)
	if !factor.IsPositive() {
		return decimal.Zero
	}
	return nominal.Div(factor).Round(2)
}
