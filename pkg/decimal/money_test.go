package decimal

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func gbp(s string) Money {
	return NewMoneyFromDecimal(decimal.RequireFromString(s))
}

func TestMoney_Round(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2.344", "2.34"},
		{"2.345", "2.35"},
		{"-2.345", "-2.35"},
		{"997.7499999999", "997.75"},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, gbp(tt.in).Round().String())
		})
	}

	assert.True(t, gbp("1.123456789012").RoundTo(10).Decimal.Equal(decimal.RequireFromString("1.1234567890")))
}

func TestMoney_Monthly(t *testing.T) {
	assert.Equal(t, "997.75", gbp("11973").Monthly().String(), "state pension paid monthly")
	assert.Equal(t, "833.33", gbp("10000").Monthly().String())

	// twelve rounded monthly payments rebuild the annual rate
	annual := gbp("11973")
	paid := Zero()
	for i := 0; i < 12; i++ {
		paid = paid.Add(annual.Monthly()).RoundTo(10)
	}
	assert.Equal(t, "11973.00", paid.String())
}

func TestMoney_Arithmetic(t *testing.T) {
	pot := gbp("1500")
	take := Min(gbp("1000"), pot)
	assert.Equal(t, "500.00", pot.Sub(take).String())
	assert.Equal(t, "2500.00", pot.Add(take).String())
	assert.Equal(t, "1575.00", pot.Mul(decimal.RequireFromString("1.05")).String())
}

func TestMin(t *testing.T) {
	assert.Equal(t, "300.00", Min(gbp("3000"), gbp("300")).String(), "withdrawal limited by the balance")
	assert.Equal(t, "3000.00", Min(gbp("3000"), gbp("30000")).String())
	assert.True(t, Min(gbp("3000"), Zero()).IsZero())
}

func TestMoney_FloorZero(t *testing.T) {
	assert.True(t, gbp("-0.01").FloorZero().IsZero())
	assert.Equal(t, "12.50", gbp("12.5").FloorZero().String())
	assert.True(t, Zero().FloorZero().IsZero())
	assert.True(t, gbp("100").Sub(gbp("250")).FloorZero().IsZero(), "a withdrawal never drives the pot negative")
}
