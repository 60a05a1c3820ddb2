package calculation

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var (
	// ErrUnknownParameter is returned for a sweep over an input that cannot be varied
	ErrUnknownParameter = errors.New("unknown sweep parameter")
	// ErrInvalidSweep is returned for a malformed sweep range
	ErrInvalidSweep = errors.New("invalid sweep")
)

// MaxSweepSteps bounds the number of runs in one sweep
const MaxSweepSteps = 200

// SweepParameter describes one input varied over an inclusive range
type SweepParameter struct {
	Name  string          `json:"name" yaml:"name"`
	Min   decimal.Decimal `json:"min" yaml:"min"`
	Max   decimal.Decimal `json:"max" yaml:"max"`
	Steps int             `json:"steps" yaml:"steps"`
}

// setters for each parameter that can be swept
var sweepSetters = map[string]func(*domain.Inputs, decimal.Decimal){
	"cagr":                  func(in *domain.Inputs, v decimal.Decimal) { in.CAGR = v },
	"inflation_rate":        func(in *domain.Inputs, v decimal.Decimal) { in.InflationRate = v },
	"debasement_rate":       func(in *domain.Inputs, v decimal.Decimal) { in.DebasementRate = v },
	"monthly_drawdown_goal": func(in *domain.Inputs, v decimal.Decimal) { in.MonthlyDrawdownGoal = v },
	"annual_contribution":   func(in *domain.Inputs, v decimal.Decimal) { in.AnnualContribution = v },
	"lump_sum_amount": func(in *domain.Inputs, v decimal.Decimal) {
		in.TakeLumpSum = true
		in.LumpSumAmount = v
	},
}

// SweepParameterNames returns the names accepted by RunSensitivity, sorted
func SweepParameterNames() []string {
	names := make([]string, 0, len(sweepSetters))
	for n := range sweepSetters {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// Values returns the evenly spaced values of the sweep, Min and Max included
func (p SweepParameter) Values() ([]decimal.Decimal, error) {
	if _, ok := sweepSetters[p.Name]; !ok {
		return nil, fmt.Errorf("%w: %q (valid: %v)", ErrUnknownParameter, p.Name, SweepParameterNames())
	}
	if p.Steps < 1 || p.Steps > MaxSweepSteps {
		return nil, fmt.Errorf("%w: steps must be between 1 and %d, got %d", ErrInvalidSweep, MaxSweepSteps, p.Steps)
	}
	if p.Max.LessThan(p.Min) {
		return nil, fmt.Errorf("%w: max %s is below min %s", ErrInvalidSweep, p.Max, p.Min)
	}
	if p.Steps == 1 {
		return []decimal.Decimal{p.Min}, nil
	}

	step := p.Max.Sub(p.Min).Div(decimal.NewFromInt(int64(p.Steps - 1)))
	values := make([]decimal.Decimal, p.Steps)
	for i := range values {
		values[i] = p.Min.Add(step.Mul(decimal.NewFromInt(int64(i)))).Round(internalPrecision)
	}
	values[len(values)-1] = p.Max
	return values, nil
}

// RunSensitivity projects the inputs once per sweep value. Runs execute in
// parallel up to the engine concurrency; results come back in sweep order.
func (ce *CalculationEngine) RunSensitivity(ctx context.Context, inputs domain.Inputs, today time.Time, param SweepParameter) (*domain.SensitivityResult, error) {
	values, err := param.Values()
	if err != nil {
		return nil, err
	}
	set := sweepSetters[param.Name]

	limit := ce.Concurrency
	if limit < 1 {
		limit = 1
	}

	// Sweep runs only need totals
	engine := *ce
	engine.Debug = false
	engine.Logger = NopLogger{}

	points := make([]domain.SensitivityPoint, len(values))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, v := range values {
		g.Go(func() error {
			in := inputs
			set(&in, v)
			summary, err := engine.Project(gctx, fmt.Sprintf("%s=%s", param.Name, v), in, today)
			if err != nil {
				return err
			}
			points[i] = domain.SensitivityPoint{
				Value:           v,
				PotAtRetirement: summary.PotAtRetirement,
				FinalPot:        summary.FinalPot,
				PotLongevity:    summary.PotLongevity,
				DepletionYear:   summary.DepletionYear,
				TotalCombined:   summary.TotalCombinedIncome,
				TotalRealValue:  summary.TotalRealValue,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("sensitivity sweep over %s: %w", param.Name, err)
	}

	ce.Logger.Infof("sensitivity sweep over %s: %d runs", param.Name, len(points))
	return &domain.SensitivityResult{Parameter: param.Name, Points: points}, nil
}
