package output

import (
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/shopspring/decimal"
)

var decimalHundred = decimal.NewFromInt(100)

// FormatCurrency formats a decimal amount as pounds with thousands separators
func FormatCurrency(amount decimal.Decimal) string {
	f := amount.Round(2).InexactFloat64()
	if f < 0 {
		return "-£" + humanize.FormatFloat("#,###.##", -f)
	}
	return "£" + humanize.FormatFloat("#,###.##", f)
}

// FormatPercentage formats a value that is already a percentage
func FormatPercentage(value decimal.Decimal) string {
	return value.StringFixed(2) + "%"
}

// FormatRate formats a fractional rate (0.05) as a percentage (5.00%)
func FormatRate(rate decimal.Decimal) string {
	return FormatPercentage(rate.Mul(decimalHundred))
}

func intToString(v int) string { return strconv.Itoa(v) }

func boolToString(v bool) string { return strconv.FormatBool(v) }

func yearOrDash(year int) string {
	if year == 0 {
		return "-"
	}
	return intToString(year)
}
