package calculation

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestYearsElapsed(t *testing.T) {
	assert.Equal(t, 11, YearsElapsed(testToday, 2035))
	assert.Equal(t, 1, YearsElapsed(testToday, 2025))
	assert.Equal(t, 1, YearsElapsed(testToday, 2024), "floored at one")
	assert.Equal(t, 1, YearsElapsed(testToday, 2010))
}

func TestRealValue(t *testing.T) {
	tests := []struct {
		name    string
		nominal string
		rate    string
		years   int
		want    string
	}{
		{"one year", "10450", "0.045", 1, "10000"},
		{"two years", "10920.25", "0.045", 2, "10000"},
		{"zero rate", "1234.56", "0", 7, "1234.56"},
		{"deflation grows value", "9500", "-0.05", 1, "10000"},
		{"minus 100 percent gives zero", "5000", "-1", 3, "0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := RealValue(d(tt.nominal), d(tt.rate), tt.years)
			assert.True(t, got.Equal(d(tt.want)), "got %s want %s", got, tt.want)
		})
	}
}

func TestToday_TruncatesToMidnightUTC(t *testing.T) {
	SetNowFunc(func() time.Time {
		return time.Date(2024, time.June, 15, 23, 30, 0, 0, time.FixedZone("BST", 3600))
	})
	defer SetNowFunc(time.Now)

	assert.Equal(t, date(2024, time.June, 15), Today())
}
