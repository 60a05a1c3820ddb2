package calculation

import (
	"fmt"

	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

// CumulativeBreakEvenResult describes the crossover point where cumulative combined income of two projections is equal
type CumulativeBreakEvenResult struct {
	// 1-based index, counted from the earlier start year, of the year in which the crossover occurs
	YearIndex int `json:"year_index"`

	// Calendar year (fractional) when the crossover occurs (e.g., 2040.75)
	CalendarYear float64 `json:"calendar_year"`

	// Fraction (0..1) of the year in which the crossover happens
	Fraction decimal.Decimal `json:"fraction_of_year"`

	// Cumulative combined income at the crossover (equal for both scenarios)
	CumulativeAmount decimal.Decimal `json:"cumulative_amount"`

	// Explicit month and year for convenience (month: 1..12)
	BreakEvenMonth int `json:"break_even_month"`
	BreakEvenYear  int `json:"break_even_year"`

	// Which projection is ahead after the crossover ("a" or "b")
	LeaderAfter string `json:"leader_after"`
}

// yearIncome is the combined income of both projections in one calendar year
type yearIncome struct {
	year int
	a, b decimal.Decimal
}

// alignByYear pairs two projections on calendar year, from the earlier start
// to the earlier end. A projection that has not started yet earns nothing.
func alignByYear(projA, projB []domain.YearRecord) []yearIncome {
	first := min(projA[0].Year, projB[0].Year)
	last := min(projA[len(projA)-1].Year, projB[len(projB)-1].Year)

	incomeIn := func(proj []domain.YearRecord, year int) decimal.Decimal {
		i := year - proj[0].Year
		if i < 0 || i >= len(proj) {
			return decimal.Zero
		}
		return proj[i].CombinedIncome
	}

	var aligned []yearIncome
	for year := first; year <= last; year++ {
		aligned = append(aligned, yearIncome{year: year, a: incomeIn(projA, year), b: incomeIn(projB, year)})
	}
	return aligned
}

// CalculateCumulativeBreakEven finds the first crossover (if any) between cumulative combined
// income of projection A and projection B, aligned by calendar year. Projections may start in
// different years, e.g. retiring now against retiring later; years before a projection starts
// count as zero income. A typical use is comparing taking a lump sum against leaving the pot
// invested. If no crossover is found, returns nil, nil.
func CalculateCumulativeBreakEven(projA, projB []domain.YearRecord) (*CumulativeBreakEvenResult, error) {
	if len(projA) == 0 || len(projB) == 0 {
		return nil, fmt.Errorf("one or both projections are empty")
	}

	years := alignByYear(projA, projB)
	tolerance := decimal.NewFromFloat(0.01)
	cumA := decimal.Zero
	cumB := decimal.Zero

	for i, y := range years {
		prevDiff := cumA.Sub(cumB)
		cumA = cumA.Add(y.a)
		cumB = cumB.Add(y.b)
		currDiff := cumA.Sub(cumB)

		// Equal at the end of the first year is not a crossover
		if currDiff.Abs().LessThan(tolerance) {
			if i == 0 || prevDiff.Abs().LessThan(tolerance) {
				continue
			}
			return &CumulativeBreakEvenResult{
				YearIndex:        i + 1,
				CalendarYear:     float64(y.year + 1),
				Fraction:         decimal.NewFromInt(1),
				CumulativeAmount: cumA,
				BreakEvenMonth:   12,
				BreakEvenYear:    y.year,
				LeaderAfter:      nextLeader(years[i+1:], prevDiff),
			}, nil
		}

		if i > 0 && prevDiff.Mul(currDiff).LessThan(decimal.Zero) {
			// diff(t) = prevDiff + t*(currDiff - prevDiff); solve diff(t) = 0
			t := prevDiff.Neg().Div(currDiff.Sub(prevDiff))
			if t.LessThan(decimal.Zero) {
				t = decimal.Zero
			} else if t.GreaterThan(decimal.NewFromInt(1)) {
				t = decimal.NewFromInt(1)
			}

			month := int(t.InexactFloat64()*12) + 1
			if month > 12 {
				month = 12
			}
			leader := "a"
			if currDiff.IsNegative() {
				leader = "b"
			}

			return &CumulativeBreakEvenResult{
				YearIndex:        i + 1,
				CalendarYear:     float64(y.year) + t.InexactFloat64(),
				Fraction:         t,
				CumulativeAmount: cumA.Sub(y.a).Add(y.a.Mul(t)).Round(2),
				BreakEvenMonth:   month,
				BreakEvenYear:    y.year,
				LeaderAfter:      leader,
			}, nil
		}
	}

	return nil, nil
}

// nextLeader reports which projection pulls ahead after an exact year-end tie.
// The leader before the tie is assumed to fall behind when nothing follows.
func nextLeader(rest []yearIncome, before decimal.Decimal) string {
	for _, y := range rest {
		d := y.a.Sub(y.b)
		if d.IsPositive() {
			return "a"
		}
		if d.IsNegative() {
			return "b"
		}
	}
	if before.IsPositive() {
		return "b"
	}
	return "a"
}
