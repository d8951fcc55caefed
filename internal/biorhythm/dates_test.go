package biorhythm_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"biorhythm-studio/internal/biorhythm"
)

// TestDaysBetween_SimplifiedModel pins the 365-day-year/30-day-month
// arithmetic to a hand-computed value.
func TestDaysBetween_SimplifiedModel(t *testing.T) {
	birth := biorhythm.Date{Year: 1990, Month: 1, Day: 1}
	reference := biorhythm.Date{Year: 2025, Month: 11, Day: 1}

	// 35 years * 365 + 10 months * 30 = 12775 + 300.
	assert.Equal(t, 13075, biorhythm.DaysBetween(birth, reference))
}

// TestDaysBetween_Signed verifies reversing the arguments negates the
// count and identical dates yield zero.
func TestDaysBetween_Signed(t *testing.T) {
	a := biorhythm.Date{Year: 2000, Month: 6, Day: 15}
	b := biorhythm.Date{Year: 2001, Month: 6, Day: 15}

	assert.Equal(t, 365, biorhythm.DaysBetween(a, b))
	assert.Equal(t, -365, biorhythm.DaysBetween(b, a))
	assert.Equal(t, 0, biorhythm.DaysBetween(a, a))
}

// TestDaysBetween_DivergesFromExactCalendar documents that the
// simplified model is NOT proleptic-calendar accurate: Feb 28 to
// Mar 1 in a leap year is really 2 days, but every month counting 30
// makes it 3. The divergence is intentional and preserved; replacing
// it with exact arithmetic is a product decision, not a bug fix.
func TestDaysBetween_DivergesFromExactCalendar(t *testing.T) {
	feb28 := biorhythm.Date{Year: 2024, Month: 2, Day: 28}
	mar1 := biorhythm.Date{Year: 2024, Month: 3, Day: 1}

	assert.Equal(t, 3, biorhythm.DaysBetween(feb28, mar1))
}

// TestValidateDate_LeapYears covers property 6: Feb 29 is valid in
// 2024 and 2000 but not 2023 or 1900.
func TestValidateDate_LeapYears(t *testing.T) {
	assert.NoError(t, biorhythm.ValidateDate(2024, 2, 29))
	assert.NoError(t, biorhythm.ValidateDate(2000, 2, 29))

	err := biorhythm.ValidateDate(2023, 2, 29)
	require.Error(t, err)
	assert.Equal(t, "Invalid day for month 2. Maximum is 28", err.Error())

	// 1900 is divisible by 100 but not 400, so not a leap year.
	err = biorhythm.ValidateDate(1900, 2, 29)
	require.Error(t, err)
	assert.Equal(t, "Invalid day for month 2. Maximum is 28", err.Error())
}

// TestValidateDate_YearRange checks the inclusive [1900, 2100] bound.
func TestValidateDate_YearRange(t *testing.T) {
	err := biorhythm.ValidateDate(1899, 1, 1)
	require.Error(t, err)
	assert.Equal(t, "Year must be between 1900 and 2100", err.Error())

	err = biorhythm.ValidateDate(2101, 1, 1)
	require.Error(t, err)
	assert.Equal(t, "Year must be between 1900 and 2100", err.Error())

	assert.NoError(t, biorhythm.ValidateDate(1900, 1, 1))
	assert.NoError(t, biorhythm.ValidateDate(2100, 12, 31))
}

// TestValidateDate_MonthAndDayBounds checks the month and generic day
// range messages.
func TestValidateDate_MonthAndDayBounds(t *testing.T) {
	err := biorhythm.ValidateDate(2000, 13, 1)
	require.Error(t, err)
	assert.Equal(t, "Month must be between 1 and 12", err.Error())

	err = biorhythm.ValidateDate(2000, 1, 32)
	require.Error(t, err)
	assert.Equal(t, "Day must be between 1 and 31", err.Error())

	err = biorhythm.ValidateDate(2000, 4, 31)
	require.Error(t, err)
	assert.Equal(t, "Invalid day for month 4. Maximum is 30", err.Error())
}

// TestValidateDate_ShortCircuits confirms only the FIRST violated rule
// is reported even when several fields are invalid; this asymmetry
// with the form model's accumulate-all behavior is deliberate.
func TestValidateDate_ShortCircuits(t *testing.T) {
	err := biorhythm.ValidateDate(1899, 13, 99)
	require.Error(t, err)
	assert.Equal(t, "Year must be between 1900 and 2100", err.Error())

	err = biorhythm.ValidateDate(2000, 0, 99)
	require.Error(t, err)
	assert.Equal(t, "Month must be between 1 and 12", err.Error())
}

// TestParseDate covers the dialog entry path: parse failures report a
// field-specific message before any range check runs.
func TestParseDate(t *testing.T) {
	date, err := biorhythm.ParseDate("1990", "1", "1")
	require.NoError(t, err)
	assert.Equal(t, biorhythm.Date{Year: 1990, Month: 1, Day: 1}, date)

	_, err = biorhythm.ParseDate("abc", "1", "1")
	require.Error(t, err)
	assert.Equal(t, "Year must be a valid number", err.Error())

	_, err = biorhythm.ParseDate("1990", "", "1")
	require.Error(t, err)
	assert.Equal(t, "Month must be a valid number", err.Error())

	_, err = biorhythm.ParseDate("1990", "1", "1.5")
	require.Error(t, err)
	assert.Equal(t, "Day must be a valid number", err.Error())

	_, err = biorhythm.ParseDate("1899", "1", "1")
	require.Error(t, err)
	assert.Equal(t, "Year must be between 1900 and 2100", err.Error())
}

// TestDaysInMonth spot-checks the month length table.
func TestDaysInMonth(t *testing.T) {
	assert.Equal(t, 31, biorhythm.DaysInMonth(2023, 1))
	assert.Equal(t, 28, biorhythm.DaysInMonth(2023, 2))
	assert.Equal(t, 29, biorhythm.DaysInMonth(2024, 2))
	assert.Equal(t, 30, biorhythm.DaysInMonth(2023, 9))
	assert.Equal(t, 31, biorhythm.DaysInMonth(2023, 12))
}

// TestDate_String pins the zero-padded rendering used in log fields.
func TestDate_String(t *testing.T) {
	assert.Equal(t, "1990-01-01", biorhythm.Date{Year: 1990, Month: 1, Day: 1}.String())
}
