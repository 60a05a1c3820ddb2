package calculation

import (
	"math"

	"github.com/shopspring/decimal"
)

// internalPrecision is the number of decimal places running balances and
// rates are kept at between steps.
const internalPrecision int32 = 10

// MonthlyGrowthFactor converts an annual compound growth rate into the
// equivalent monthly multiplier (1+cagr)^(1/12). Rates at or below -100%
// give a factor of zero.
func MonthlyGrowthFactor(cagr decimal.Decimal) decimal.Decimal {
	base := 1 + cagr.InexactFloat64()
	if base <= 0 {
		return decimal.Zero
	}
	return decimal.NewFromFloat(math.Pow(base, 1.0/12)).Round(internalPrecision + 6)
}

// compoundFactor returns (1+rate)^years for a non-negative whole number of years
func compoundFactor(rate decimal.Decimal, years int) decimal.Decimal {
	factor := decimal.NewFromInt(1)
	step := decimal.NewFromInt(1).Add(rate)
	for i := 0; i < years; i++ {
		factor = factor.Mul(step).Round(internalPrecision + 6)
	}
	return factor
}
