package domain

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// Inputs holds everything a single projection run needs. A run never mutates it.
type Inputs struct {
	DateOfBirth          time.Time       `yaml:"date_of_birth" json:"date_of_birth"`
	TargetRetirementDate time.Time       `yaml:"target_retirement_date" json:"target_retirement_date"`
	CurrentPot           decimal.Decimal `yaml:"current_pot" json:"current_pot"`
	AnnualContribution   decimal.Decimal `yaml:"annual_contribution" json:"annual_contribution"`
	MonthlyDrawdownGoal  decimal.Decimal `yaml:"monthly_drawdown_goal" json:"monthly_drawdown_goal"`
	TakeLumpSum          bool            `yaml:"take_lump_sum" json:"take_lump_sum"`
	LumpSumAmount        decimal.Decimal `yaml:"lump_sum_amount" json:"lump_sum_amount"`
	StatePensionEndDate  *time.Time      `yaml:"state_pension_end_date,omitempty" json:"state_pension_end_date,omitempty"`
	CAGR                 decimal.Decimal `yaml:"cagr" json:"cagr"`
	InflationRate        decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	DebasementRate       decimal.Decimal `yaml:"debasement_rate" json:"debasement_rate"`
}

// BlendedDiscountRate is the average of the inflation and debasement rates
func (in Inputs) BlendedDiscountRate() decimal.Decimal {
	return in.InflationRate.Add(in.DebasementRate).Div(decimal.NewFromInt(2))
}

// DefaultInputs returns the values the calculator form starts with
func DefaultInputs() Inputs {
	return Inputs{
		DateOfBirth:          time.Date(1975, 1, 1, 0, 0, 0, 0, time.UTC),
		TargetRetirementDate: time.Date(2035, 1, 1, 0, 0, 0, 0, time.UTC),
		CurrentPot:           decimal.NewFromInt(500000),
		AnnualContribution:   decimal.NewFromInt(10000),
		MonthlyDrawdownGoal:  decimal.NewFromInt(3000),
		TakeLumpSum:          false,
		LumpSumAmount:        decimal.Zero,
		CAGR:                 decimal.NewFromFloat(0.05),
		InflationRate:        decimal.NewFromFloat(0.04),
		DebasementRate:       decimal.NewFromFloat(0.05),
	}
}

// PolicyRules holds the statutory constants used by a projection
type PolicyRules struct {
	BaseStatePensionAnnual decimal.Decimal `yaml:"base_state_pension_annual" json:"base_state_pension_annual"`
	StatePensionGrowthRate decimal.Decimal `yaml:"state_pension_growth_rate" json:"state_pension_growth_rate"`
	LumpSumCap             decimal.Decimal `yaml:"lump_sum_cap" json:"lump_sum_cap"`
	LumpSumFraction        decimal.Decimal `yaml:"lump_sum_fraction" json:"lump_sum_fraction"`
	ProjectionYears        int             `yaml:"projection_years" json:"projection_years"`
}

// DefaultPolicyRules returns the current UK figures
func DefaultPolicyRules() PolicyRules {
	return PolicyRules{
		BaseStatePensionAnnual: decimal.NewFromFloat(11973.00),
		StatePensionGrowthRate: decimal.NewFromFloat(0.045),
		LumpSumCap:             decimal.NewFromFloat(268275.00),
		LumpSumFraction:        decimal.NewFromFloat(0.25),
		ProjectionYears:        30,
	}
}

// UnmarshalYAML decodes a policy block on top of DefaultPolicyRules, so
// omitted keys keep their defaults and explicit zeros are kept as zero.
func (p *PolicyRules) UnmarshalYAML(value *yaml.Node) error {
	type plain PolicyRules
	rules := plain(DefaultPolicyRules())
	if err := value.Decode(&rules); err != nil {
		return err
	}
	*p = PolicyRules(rules)
	return nil
}

// WithDefaults fills a non-positive projection horizon from DefaultPolicyRules.
// Rates and caps are taken as given; zero is a valid setting for each.
func (p PolicyRules) WithDefaults() PolicyRules {
	if p.ProjectionYears <= 0 {
		p.ProjectionYears = DefaultPolicyRules().ProjectionYears
	}
	return p
}

// PersonalDetails describes the saver
type PersonalDetails struct {
	Name                string          `yaml:"name" json:"name"`
	DateOfBirth         time.Time       `yaml:"date_of_birth" json:"date_of_birth"`
	CurrentPot          decimal.Decimal `yaml:"current_pot" json:"current_pot"`
	AnnualContribution  decimal.Decimal `yaml:"annual_contribution" json:"annual_contribution"`
	StatePensionEndDate *time.Time      `yaml:"state_pension_end_date,omitempty" json:"state_pension_end_date,omitempty"`
}

// Assumptions contains the economic parameters shared by all scenarios
type Assumptions struct {
	CAGR           decimal.Decimal `yaml:"cagr" json:"cagr"`
	InflationRate  decimal.Decimal `yaml:"inflation_rate" json:"inflation_rate"`
	DebasementRate decimal.Decimal `yaml:"debasement_rate" json:"debasement_rate"`
}

// GenerateAssumptions creates dynamic assumptions list from actual config values
func (a *Assumptions) GenerateAssumptions(rules PolicyRules) []string {
	pct := func(d decimal.Decimal) float64 {
		return d.Mul(decimal.NewFromInt(100)).InexactFloat64()
	}
	blended := a.InflationRate.Add(a.DebasementRate).Div(decimal.NewFromInt(2))
	return []string{
		fmt.Sprintf("Pension growth (CAGR): %.1f%% annually, compounded monthly", pct(a.CAGR)),
		fmt.Sprintf("Drawdown escalation (inflation): %.1f%% annually", pct(a.InflationRate)),
		fmt.Sprintf("Currency debasement: %.1f%% annually", pct(a.DebasementRate)),
		fmt.Sprintf("Real values discounted at %.2f%% (average of inflation and debasement) from today", pct(blended)),
		fmt.Sprintf("State pension: £%s a year today, rising %.1f%% annually", rules.BaseStatePensionAnnual.StringFixed(2), pct(rules.StatePensionGrowthRate)),
		fmt.Sprintf("Tax-free lump sum: at most %.0f%% of the pot, capped at £%s", pct(rules.LumpSumFraction), rules.LumpSumCap.StringFixed(2)),
		fmt.Sprintf("Projection horizon: %d years from retirement", rules.ProjectionYears),
		"No income tax is modelled",
	}
}

// Scenario is one retirement plan to project. Optional fields override the
// matching personal details or assumptions.
type Scenario struct {
	Name                 string           `yaml:"name" json:"name"`
	TargetRetirementDate time.Time        `yaml:"target_retirement_date" json:"target_retirement_date"`
	MonthlyDrawdownGoal  decimal.Decimal  `yaml:"monthly_drawdown_goal" json:"monthly_drawdown_goal"`
	TakeLumpSum          bool             `yaml:"take_lump_sum" json:"take_lump_sum"`
	LumpSumAmount        decimal.Decimal  `yaml:"lump_sum_amount" json:"lump_sum_amount"`
	AnnualContribution   *decimal.Decimal `yaml:"annual_contribution,omitempty" json:"annual_contribution,omitempty"`
	CAGR                 *decimal.Decimal `yaml:"cagr,omitempty" json:"cagr,omitempty"`
	StatePensionEndDate  *time.Time       `yaml:"state_pension_end_date,omitempty" json:"state_pension_end_date,omitempty"`
}

// Configuration represents the complete configuration file
type Configuration struct {
	PersonalDetails PersonalDetails `yaml:"personal_details" json:"personal_details"`
	Assumptions     Assumptions     `yaml:"assumptions" json:"assumptions"`
	Policy          *PolicyRules    `yaml:"policy,omitempty" json:"policy,omitempty"`
	Scenarios       []Scenario      `yaml:"scenarios" json:"scenarios"`
}

// Rules returns the policy rules for the configuration, defaults applied
func (c *Configuration) Rules() PolicyRules {
	if c.Policy == nil {
		return DefaultPolicyRules()
	}
	return c.Policy.WithDefaults()
}

// InputsFor flattens a scenario and the shared configuration into run inputs
func (c *Configuration) InputsFor(s Scenario) Inputs {
	in := Inputs{
		DateOfBirth:          c.PersonalDetails.DateOfBirth,
		TargetRetirementDate: s.TargetRetirementDate,
		CurrentPot:           c.PersonalDetails.CurrentPot,
		AnnualContribution:   c.PersonalDetails.AnnualContribution,
		MonthlyDrawdownGoal:  s.MonthlyDrawdownGoal,
		TakeLumpSum:          s.TakeLumpSum,
		LumpSumAmount:        s.LumpSumAmount,
		StatePensionEndDate:  c.PersonalDetails.StatePensionEndDate,
		CAGR:                 c.Assumptions.CAGR,
		InflationRate:        c.Assumptions.InflationRate,
		DebasementRate:       c.Assumptions.DebasementRate,
	}
	if s.AnnualContribution != nil {
		in.AnnualContribution = *s.AnnualContribution
	}
	if s.CAGR != nil {
		in.CAGR = *s.CAGR
	}
	if s.StatePensionEndDate != nil {
		in.StatePensionEndDate = s.StatePensionEndDate
	}
	return in
}
