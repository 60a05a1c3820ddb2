package decimal

import (
	"github.com/shopspring/decimal"
)

// Money represents a sterling amount with proper financial precision
type Money struct {
	decimal.Decimal
}

// NewMoneyFromDecimal creates a new Money instance from a decimal.Decimal
func NewMoneyFromDecimal(d decimal.Decimal) Money {
	return Money{d}
}

// Zero returns a zero Money amount
func Zero() Money {
	return Money{decimal.Zero}
}

// Round rounds the money amount to pence using half-up rounding
func (m Money) Round() Money {
	return Money{m.Decimal.Round(2)}
}

// RoundTo rounds to the given number of decimal places. Used to keep running
// balances at a fixed internal precision between simulation steps.
func (m Money) RoundTo(places int32) Money {
	return Money{m.Decimal.Round(places)}
}

// Monthly converts an annual amount to monthly
func (m Money) Monthly() Money {
	return Money{m.Decimal.Div(decimal.NewFromInt(12))}
}

// Add adds another Money amount
func (m Money) Add(other Money) Money {
	return Money{m.Decimal.Add(other.Decimal)}
}

// Sub subtracts another Money amount
func (m Money) Sub(other Money) Money {
	return Money{m.Decimal.Sub(other.Decimal)}
}

// Mul multiplies by a decimal factor
func (m Money) Mul(factor decimal.Decimal) Money {
	return Money{m.Decimal.Mul(factor)}
}

// LessThan checks if this amount is less than another
func (m Money) LessThan(other Money) bool {
	return m.Decimal.LessThan(other.Decimal)
}

// FloorZero returns the amount, or zero if it is negative
func (m Money) FloorZero() Money {
	if m.IsNegative() {
		return Zero()
	}
	return m
}

// Min returns the smaller of two Money amounts
func Min(a, b Money) Money {
	if a.LessThan(b) {
		return a
	}
	return b
}

// String returns the amount in pounds to two decimal places
func (m Money) String() string {
	return m.Decimal.StringFixed(2)
}
