package dateutil

import (
	"time"
)

// Age calculates the age at a given date
func Age(birthDate, atDate time.Time) int {
	age := atDate.Year() - birthDate.Year()
	if atDate.Month() < birthDate.Month() ||
		(atDate.Month() == birthDate.Month() && atDate.Day() < birthDate.Day()) {
		age--
	}
	return age
}

// StatePensionAge returns the UK state pension age for a birth date.
// Born before 1960: 66. Born 1960 through 1976: 67. Born 1977 or later: 68.
func StatePensionAge(birthDate time.Time) int {
	birthYear := birthDate.Year()

	switch {
	case birthYear < 1960:
		return 66
	case birthYear < 1977:
		return 67
	default:
		return 68
	}
}

// StatePensionDate returns the date on which state pension age is reached
func StatePensionDate(birthDate time.Time) time.Time {
	return AddYears(birthDate, StatePensionAge(birthDate))
}

// YearsUntilDate calculates the number of years between two dates
func YearsUntilDate(fromDate, toDate time.Time) float64 {
	duration := toDate.Sub(fromDate)
	return duration.Hours() / 24 / 365.25
}

// MonthsUntilDate calculates the number of whole months between two dates,
// using an average year of 365.25 days. Dates in the past give 0.
func MonthsUntilDate(fromDate, toDate time.Time) int {
	years := YearsUntilDate(fromDate, toDate)
	if years <= 0 {
		return 0
	}
	return int(years * 12)
}

// DaysInMonth returns the number of days in the given month
func DaysInMonth(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// AddYears adds a number of years keeping month and day. Feb 29 becomes
// Feb 28 when the target year is not a leap year.
func AddYears(date time.Time, years int) time.Time {
	return AddMonths(date, years*12)
}

// AddMonths adds a number of calendar months, clamping the day to the end
// of the target month (Jan 31 + 1 month = Feb 28/29).
func AddMonths(date time.Time, months int) time.Time {
	total := int(date.Month()) - 1 + months
	year := date.Year() + floorDiv(total, 12)
	month := time.Month(total-floorDiv(total, 12)*12 + 1)

	day := date.Day()
	if last := DaysInMonth(year, month); day > last {
		day = last
	}
	return time.Date(year, month, day, date.Hour(), date.Minute(), date.Second(), date.Nanosecond(), date.Location())
}

func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}
