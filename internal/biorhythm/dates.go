package biorhythm

import (
	"errors"
	"fmt"
	"strconv"
)

// Date is a plain calendar date. It carries no timezone or clock: the
// engine only ever needs whole-day arithmetic.
type Date struct {
	Year  int
	Month int
	Day   int
}

// Accepted year range for birthdates.
const (
	MinYear = 1900
	MaxYear = 2100
)

func (d Date) String() string {
	return fmt.Sprintf("%04d-%02d-%02d", d.Year, d.Month, d.Day)
}

// simplifiedDayCount maps a date onto a day number using the
// simplified calendar model: every year counts 365 days and every
// month 30. This intentionally mirrors the shipped behavior and is NOT
// proleptic-calendar accurate; see the dates tests for the documented
// discrepancy against exact day counts.
func (d Date) simplifiedDayCount() int {
	return d.Year*365 + d.Month*30 + d.Day
}

// DaysBetween returns the signed day count from birth to reference
// under the simplified calendar model. Callers are responsible for
// validating both dates first.
func DaysBetween(birth, reference Date) int {
	return reference.simplifiedDayCount() - birth.simplifiedDayCount()
}

// IsLeapYear reports whether year is a Gregorian leap year.
func IsLeapYear(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// DaysInMonth returns the maximum day number for a month, applying the
// leap-year rule for February. Month must be in [1, 12].
func DaysInMonth(year, month int) int {
	switch month {
	case 2:
		if IsLeapYear(year) {
			return 29
		}
		return 28
	case 4, 6, 9, 11:
		return 30
	default:
		return 31
	}
}

// ValidateDate checks a birthdate field by field and reports the FIRST
// violated rule only, in the fixed order year → month → day →
// day-of-month bound. This deliberately differs from the form model's
// accumulate-all validation: the date dialog shows a single message.
func ValidateDate(year, month, day int) error {
	if year < MinYear || year > MaxYear {
		return errors.New("Year must be between 1900 and 2100")
	}
	if month < 1 || month > 12 {
		return errors.New("Month must be between 1 and 12")
	}
	if day < 1 || day > 31 {
		return errors.New("Day must be between 1 and 31")
	}
	if max := DaysInMonth(year, month); day > max {
		return fmt.Errorf("Invalid day for month %d. Maximum is %d", month, max)
	}
	return nil
}

// Validate checks the date with the same first-failure semantics as
// ValidateDate.
func (d Date) Validate() error {
	return ValidateDate(d.Year, d.Month, d.Day)
}

// ParseDate converts raw dialog field strings into a validated Date.
// Parse failures are reported before range checks, matching the date
// dialog's message order.
func ParseDate(year, month, day string) (Date, error) {
	y, err := strconv.Atoi(year)
	if err != nil {
		return Date{}, errors.New("Year must be a valid number")
	}
	m, err := strconv.Atoi(month)
	if err != nil {
		return Date{}, errors.New("Month must be a valid number")
	}
	d, err := strconv.Atoi(day)
	if err != nil {
		return Date{}, errors.New("Day must be a valid number")
	}
	date := Date{Year: y, Month: m, Day: d}
	if err := date.Validate(); err != nil {
		return Date{}, err
	}
	return date, nil
}
