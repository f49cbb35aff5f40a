package revenue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func date(year int, month time.Month, day int) time.Time {
	return time.Date(year, month, day, 0, 0, 0, 0, time.Local)
}

func TestBusinessDaysInMonth(t *testing.T) {
	// January 2024 starts on a Monday and has 23 weekdays.
	assert.Equal(t, 23, BusinessDaysInMonth(2024, time.January))

	// February 2024 is a leap February with 21 weekdays.
	assert.Equal(t, 21, BusinessDaysInMonth(2024, time.February))

	// February 2021 spans exactly four weeks starting on a Monday.
	assert.Equal(t, 20, BusinessDaysInMonth(2021, time.February))
}

func TestElapsedAndRemainingPartitionTheMonth(t *testing.T) {
	// Elapsed excludes today while remaining includes it, so on a business
	// day the two overcount the month total by exactly one.
	tests := []struct {
		name  string
		today time.Time
	}{
		{name: "mid-month Wednesday", today: date(2024, time.January, 17)},
		{name: "first of the month", today: date(2024, time.January, 1)},
		{name: "last business day", today: date(2024, time.January, 31)},
		{name: "mid-month Monday", today: date(2024, time.March, 11)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			total := BusinessDaysInMonth(tt.today.Year(), tt.today.Month())
			elapsed := BusinessDaysElapsedInMonth(tt.today)
			remaining := BusinessDaysRemainingInMonth(tt.today)

			assert.Equal(t, total+1, elapsed+remaining)
		})
	}
}

func TestElapsedAndRemainingOnWeekend(t *testing.T) {
	// On a weekend today counts for neither side, so the split is exact.
	saturday := date(2024, time.January, 13)

	total := BusinessDaysInMonth(2024, time.January)
	elapsed := BusinessDaysElapsedInMonth(saturday)
	remaining := BusinessDaysRemainingInMonth(saturday)

	assert.Equal(t, total, elapsed+remaining)
}

func TestBusinessDaysRemainingInMonthCountsToday(t *testing.T) {
	// Wednesday Jan 31 2024 is the last business day of its month.
	assert.Equal(t, 1, BusinessDaysRemainingInMonth(date(2024, time.January, 31)))

	// Saturday has no business days left in a month that ends Sunday.
	assert.Equal(t, 0, BusinessDaysRemainingInMonth(date(2024, time.March, 30)))
}

func TestBusinessDaysInYear(t *testing.T) {
	// 2024 is a leap year beginning on a Monday: 262 weekdays.
	assert.Equal(t, 262, BusinessDaysInYear(2024))

	// 2023 begins on a Sunday: 260 weekdays.
	assert.Equal(t, 260, BusinessDaysInYear(2023))
}

func TestYearElapsedAndRemainingPartition(t *testing.T) {
	today := date(2024, time.June, 12)

	total := BusinessDaysInYear(2024)
	elapsed := BusinessDaysElapsedInYear(today)
	remaining := BusinessDaysRemainingInYear(today)

	assert.Equal(t, total+1, elapsed+remaining)
}

func TestNormalizeToMidnight(t *testing.T) {
	loc, err := time.LoadLocation("America/Toronto")
	assert.NoError(t, err)

	stamped := time.Date(2024, time.May, 7, 16, 45, 30, 999, loc)
	normalized := NormalizeToMidnight(stamped)

	assert.Equal(t, 0, normalized.Hour())
	assert.Equal(t, 0, normalized.Minute())
	assert.Equal(t, stamped.Day(), normalized.Day())
	assert.Equal(t, loc, normalized.Location())
}

func TestSubtractBusinessDays(t *testing.T) {
	// Walking back from a Monday skips the weekend.
	monday := date(2024, time.January, 15)
	assert.Equal(t, date(2024, time.January, 12), SubtractBusinessDays(monday, 1))

	// Five business days back from a Friday is the previous Friday.
	friday := date(2024, time.January, 19)
	assert.Equal(t, date(2024, time.January, 12), SubtractBusinessDays(friday, 5))

	// Zero is the identity modulo midnight normalization.
	assert.Equal(t, date(2024, time.January, 15), SubtractBusinessDays(monday, 0))
}
