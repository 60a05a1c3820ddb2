package server

import (
	"fmt"
	"strings"
	"time"

	"github.com/rpgo/drawdown-calculator/internal/calculation"
	"github.com/rpgo/drawdown-calculator/internal/domain"
	"github.com/shopspring/decimal"
)

const dateLayout = "2006-01-02"

// inputsDTO mirrors domain.Inputs with dates as YYYY-MM-DD strings.
type inputsDTO struct {
	DateOfBirth          string          `json:"date_of_birth" binding:"required"`
	TargetRetirementDate string          `json:"target_retirement_date" binding:"required"`
	CurrentPot           decimal.Decimal `json:"current_pot"`
	AnnualContribution   decimal.Decimal `json:"annual_contribution"`
	MonthlyDrawdownGoal  decimal.Decimal `json:"monthly_drawdown_goal"`
	TakeLumpSum          bool            `json:"take_lump_sum"`
	LumpSumAmount        decimal.Decimal `json:"lump_sum_amount"`
	StatePensionEndDate  string          `json:"state_pension_end_date,omitempty"`
	CAGR                 decimal.Decimal `json:"cagr"`
	InflationRate        decimal.Decimal `json:"inflation_rate"`
	DebasementRate       decimal.Decimal `json:"debasement_rate"`
}

type projectionRequest struct {
	Name   string    `json:"name"`
	Inputs inputsDTO `json:"inputs"`
	Today  string    `json:"today,omitempty"`
}

type sensitivityRequest struct {
	Inputs    inputsDTO                  `json:"inputs"`
	Today     string                     `json:"today,omitempty"`
	Parameter calculation.SweepParameter `json:"parameter"`
}

func newInputsDTO(in domain.Inputs) inputsDTO {
	dto := inputsDTO{
		DateOfBirth:          in.DateOfBirth.Format(dateLayout),
		TargetRetirementDate: in.TargetRetirementDate.Format(dateLayout),
		CurrentPot:           in.CurrentPot,
		AnnualContribution:   in.AnnualContribution,
		MonthlyDrawdownGoal:  in.MonthlyDrawdownGoal,
		TakeLumpSum:          in.TakeLumpSum,
		LumpSumAmount:        in.LumpSumAmount,
		CAGR:                 in.CAGR,
		InflationRate:        in.InflationRate,
		DebasementRate:       in.DebasementRate,
	}
	if in.StatePensionEndDate != nil {
		dto.StatePensionEndDate = in.StatePensionEndDate.Format(dateLayout)
	}
	return dto
}

func (d inputsDTO) toDomain() (domain.Inputs, error) {
	dob, err := parseDate("date_of_birth", d.DateOfBirth)
	if err != nil {
		return domain.Inputs{}, err
	}
	retire, err := parseDate("target_retirement_date", d.TargetRetirementDate)
	if err != nil {
		return domain.Inputs{}, err
	}
	in := domain.Inputs{
		DateOfBirth:          dob,
		TargetRetirementDate: retire,
		CurrentPot:           d.CurrentPot,
		AnnualContribution:   d.AnnualContribution,
		MonthlyDrawdownGoal:  d.MonthlyDrawdownGoal,
		TakeLumpSum:          d.TakeLumpSum,
		LumpSumAmount:        d.LumpSumAmount,
		CAGR:                 d.CAGR,
		InflationRate:        d.InflationRate,
		DebasementRate:       d.DebasementRate,
	}
	if strings.TrimSpace(d.StatePensionEndDate) != "" {
		end, err := parseDate("state_pension_end_date", d.StatePensionEndDate)
		if err != nil {
			return domain.Inputs{}, err
		}
		in.StatePensionEndDate = &end
	}
	return in, nil
}

func parseDate(field, value string) (time.Time, error) {
	t, err := time.Parse(dateLayout, strings.TrimSpace(value))
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be a date in YYYY-MM-DD form", field)
	}
	return t, nil
}
