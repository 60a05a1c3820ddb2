package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

// ErrScenarioNotFound is returned when a named scenario is not in the configuration
var ErrScenarioNotFound = errors.New("scenario not found")

var (
	minRate        = decimal.NewFromInt(-1)
	maxRate        = decimal.NewFromInt(1)
	earliestBirth  = time.Date(1900, 1, 1, 0, 0, 0, 0, time.UTC)
	maxProjectYear = 100
)

// InputParser handles parsing of input configuration files
type InputParser struct{}

// NewInputParser creates a new input parser
func NewInputParser() *InputParser {
	return &InputParser{}
}

// LoadFromFile loads configuration from a YAML or JSON file
func (ip *InputParser) LoadFromFile(filename string) (*domain.Configuration, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", filename, err)
	}
	return ip.Parse(data)
}

// Parse decodes and validates a configuration document
func (ip *InputParser) Parse(data []byte) (*domain.Configuration, error) {
	var config domain.Configuration
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := ip.ValidateConfiguration(&config); err != nil {
		return nil, fmt.Errorf("configuration validation failed: %w", err)
	}

	return &config, nil
}

// ValidateConfiguration validates the loaded configuration
func (ip *InputParser) ValidateConfiguration(config *domain.Configuration) error {
	if err := ip.validatePersonalDetails(&config.PersonalDetails); err != nil {
		return fmt.Errorf("personal details validation failed: %w", err)
	}

	if err := ip.validateAssumptions(&config.Assumptions); err != nil {
		return fmt.Errorf("assumptions validation failed: %w", err)
	}

	if config.Policy != nil {
		if err := ip.validatePolicy(config.Policy); err != nil {
			return fmt.Errorf("policy validation failed: %w", err)
		}
	}

	if len(config.Scenarios) == 0 {
		return fmt.Errorf("no scenarios provided")
	}

	seen := make(map[string]bool, len(config.Scenarios))
	for i := range config.Scenarios {
		scenario := &config.Scenarios[i]
		if err := ip.validateScenario(scenario, config.PersonalDetails.DateOfBirth); err != nil {
			return fmt.Errorf("scenario %d validation failed: %w", i, err)
		}
		if seen[scenario.Name] {
			return fmt.Errorf("scenario %d validation failed: duplicate scenario name %q", i, scenario.Name)
		}
		seen[scenario.Name] = true
	}

	return nil
}

// ValidateInputs validates a single set of projection inputs, as received
// from the HTTP API rather than a configuration file
func (ip *InputParser) ValidateInputs(in domain.Inputs) error {
	details := domain.PersonalDetails{
		DateOfBirth:         in.DateOfBirth,
		CurrentPot:          in.CurrentPot,
		AnnualContribution:  in.AnnualContribution,
		StatePensionEndDate: in.StatePensionEndDate,
	}
	if err := ip.validatePersonalDetails(&details); err != nil {
		return err
	}
	assumptions := domain.Assumptions{CAGR: in.CAGR, InflationRate: in.InflationRate, DebasementRate: in.DebasementRate}
	if err := ip.validateAssumptions(&assumptions); err != nil {
		return err
	}
	return ip.validateScenario(&domain.Scenario{
		Name:                 "inputs",
		TargetRetirementDate: in.TargetRetirementDate,
		MonthlyDrawdownGoal:  in.MonthlyDrawdownGoal,
		TakeLumpSum:          in.TakeLumpSum,
		LumpSumAmount:        in.LumpSumAmount,
	}, in.DateOfBirth)
}

// validatePersonalDetails validates the saver's details
func (ip *InputParser) validatePersonalDetails(details *domain.PersonalDetails) error {
	if details.DateOfBirth.IsZero() {
		return fmt.Errorf("date of birth is required")
	}
	if details.DateOfBirth.Before(earliestBirth) {
		return fmt.Errorf("date of birth %s is not plausible", details.DateOfBirth.Format("2006-01-02"))
	}
	if details.CurrentPot.LessThan(decimal.Zero) {
		return fmt.Errorf("current pot cannot be negative")
	}
	if details.AnnualContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("annual contribution cannot be negative")
	}
	if details.StatePensionEndDate != nil && !details.StatePensionEndDate.After(details.DateOfBirth) {
		return fmt.Errorf("state pension end date must be after date of birth")
	}
	return nil
}

// validateAssumptions validates the economic assumptions
func (ip *InputParser) validateAssumptions(assumptions *domain.Assumptions) error {
	rates := []struct {
		name  string
		value decimal.Decimal
	}{
		{"CAGR", assumptions.CAGR},
		{"inflation rate", assumptions.InflationRate},
		{"debasement rate", assumptions.DebasementRate},
	}
	for _, r := range rates {
		if r.value.LessThan(minRate) {
			return fmt.Errorf("%s cannot be less than -100%%", r.name)
		}
		if r.value.GreaterThan(maxRate) {
			return fmt.Errorf("%s cannot exceed 100%% (rates are fractions, e.g. 0.05)", r.name)
		}
	}
	return nil
}

// validatePolicy validates policy overrides. Zero rates and caps are honoured;
// a zero projection horizon falls back to the default.
func (ip *InputParser) validatePolicy(policy *domain.PolicyRules) error {
	if policy.BaseStatePensionAnnual.LessThan(decimal.Zero) {
		return fmt.Errorf("base state pension cannot be negative")
	}
	if policy.StatePensionGrowthRate.LessThan(minRate) || policy.StatePensionGrowthRate.GreaterThan(maxRate) {
		return fmt.Errorf("state pension growth rate must be between -100%% and 100%%")
	}
	if policy.LumpSumCap.LessThan(decimal.Zero) {
		return fmt.Errorf("lump sum cap cannot be negative")
	}
	if policy.LumpSumFraction.LessThan(decimal.Zero) || policy.LumpSumFraction.GreaterThan(decimal.NewFromInt(1)) {
		return fmt.Errorf("lump sum fraction must be between 0 and 1")
	}
	if policy.ProjectionYears < 0 {
		return fmt.Errorf("projection years cannot be negative")
	}
	if policy.ProjectionYears > maxProjectYear {
		return fmt.Errorf("projection years cannot exceed %d", maxProjectYear)
	}
	return nil
}

// validateScenario validates a retirement scenario
func (ip *InputParser) validateScenario(scenario *domain.Scenario, birthDate time.Time) error {
	if scenario.Name == "" {
		return fmt.Errorf("scenario name is required")
	}
	if scenario.TargetRetirementDate.IsZero() {
		return fmt.Errorf("target retirement date is required")
	}
	if !scenario.TargetRetirementDate.After(birthDate) {
		return fmt.Errorf("target retirement date must be after date of birth")
	}
	if scenario.MonthlyDrawdownGoal.LessThan(decimal.Zero) {
		return fmt.Errorf("monthly drawdown goal cannot be negative")
	}
	if scenario.LumpSumAmount.LessThan(decimal.Zero) {
		return fmt.Errorf("lump sum amount cannot be negative")
	}
	if scenario.TakeLumpSum && !scenario.LumpSumAmount.IsPositive() {
		return fmt.Errorf("lump sum amount is required when take_lump_sum is set")
	}
	if scenario.AnnualContribution != nil && scenario.AnnualContribution.LessThan(decimal.Zero) {
		return fmt.Errorf("annual contribution override cannot be negative")
	}
	if scenario.CAGR != nil && (scenario.CAGR.LessThan(minRate) || scenario.CAGR.GreaterThan(maxRate)) {
		return fmt.Errorf("CAGR override must be between -100%% and 100%%")
	}
	if scenario.StatePensionEndDate != nil && !scenario.StatePensionEndDate.After(birthDate) {
		return fmt.Errorf("state pension end date must be after date of birth")
	}
	return nil
}

// FindScenario returns the scenario with the given name
func FindScenario(config *domain.Configuration, name string) (*domain.Scenario, error) {
	for i := range config.Scenarios {
		if config.Scenarios[i].Name == name {
			return &config.Scenarios[i], nil
		}
	}
	names := make([]string, len(config.Scenarios))
	for i, s := range config.Scenarios {
		names[i] = s.Name
	}
	return nil, fmt.Errorf("%w: %q (available: %v)", ErrScenarioNotFound, name, names)
}

// CreateExampleConfiguration creates an example configuration for testing
func (ip *InputParser) CreateExampleConfiguration() *domain.Configuration {
	defaults := domain.DefaultInputs()
	policy := domain.DefaultPolicyRules()
	laterRetirement := time.Date(2037, 1, 1, 0, 0, 0, 0, time.UTC)
	leanDrawdown := decimal.NewFromInt(2500)

	return &domain.Configuration{
		PersonalDetails: domain.PersonalDetails{
			Name:               "Example Saver",
			DateOfBirth:        defaults.DateOfBirth,
			CurrentPot:         defaults.CurrentPot,
			AnnualContribution: defaults.AnnualContribution,
		},
		Assumptions: domain.Assumptions{
			CAGR:           defaults.CAGR,
			InflationRate:  defaults.InflationRate,
			DebasementRate: defaults.DebasementRate,
		},
		Policy: &policy,
		Scenarios: []domain.Scenario{
			{
				Name:                 "Retire 2035",
				TargetRetirementDate: defaults.TargetRetirementDate,
				MonthlyDrawdownGoal:  defaults.MonthlyDrawdownGoal,
			},
			{
				Name:                 "Retire 2035 with lump sum",
				TargetRetirementDate: defaults.TargetRetirementDate,
				MonthlyDrawdownGoal:  defaults.MonthlyDrawdownGoal,
				TakeLumpSum:          true,
				LumpSumAmount:        decimal.NewFromInt(100000),
			},
			{
				Name:                 "Retire 2037 lean",
				TargetRetirementDate: laterRetirement,
				MonthlyDrawdownGoal:  leanDrawdown,
			},
		},
	}
}
