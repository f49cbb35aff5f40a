package revenue

import "time"

// Business-day arithmetic used for goal pacing. A business day is Monday
// through Friday; no holiday calendar is applied. Reference dates are
// normalized to local midnight so time-of-day never skews the counts.

// NormalizeToMidnight truncates t to 00:00 in its own location.
func NormalizeToMidnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func isBusinessDay(t time.Time) bool {
	wd := t.Weekday()
	return wd != time.Saturday && wd != time.Sunday
}

// SubtractBusinessDays walks back n business days from t. Weekend days
// along the way are skipped without counting.
func SubtractBusinessDays(t time.Time, n int) time.Time {
	day := NormalizeToMidnight(t)
	for n > 0 {
		day = day.AddDate(0, 0, -1)
		if isBusinessDay(day) {
			n--
		}
	}
	return day
}

// BusinessDaysInMonth counts the weekdays from the 1st through the last
// day of the month, inclusive.
func BusinessDaysInMonth(year int, month time.Month) int {
	first := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	next := first.AddDate(0, 1, 0)

	count := 0
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		if isBusinessDay(d) {
			count++
		}
	}

	return count
}

// BusinessDaysRemainingInMonth counts weekdays from today through the end
// of today's month, inclusive of today. If today is a business day it
// counts toward "remaining" so the daily target covers it.
func BusinessDaysRemainingInMonth(today time.Time) int {
	day := NormalizeToMidnight(today)
	next := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location()).AddDate(0, 1, 0)

	count := 0
	for d := day; d.Before(next); d = d.AddDate(0, 0, 1) {
		if isBusinessDay(d) {
			count++
		}
	}

	return count
}

// BusinessDaysElapsedInMonth counts weekdays from the 1st of today's month
// up to but excluding today. The exclusive bound is deliberate: remaining
// already counts today, and counting it twice would distort the pacing
// math.
func BusinessDaysElapsedInMonth(today time.Time) int {
	day := NormalizeToMidnight(today)
	first := time.Date(day.Year(), day.Month(), 1, 0, 0, 0, 0, day.Location())

	count := 0
	for d := first; d.Before(day); d = d.AddDate(0, 0, 1) {
		if isBusinessDay(d) {
			count++
		}
	}

	return count
}

// BusinessDaysInYear counts the weekdays from Jan 1 through Dec 31.
func BusinessDaysInYear(year int) int {
	first := time.Date(year, time.January, 1, 0, 0, 0, 0, time.Local)
	next := first.AddDate(1, 0, 0)

	count := 0
	for d := first; d.Before(next); d = d.AddDate(0, 0, 1) {
		if isBusinessDay(d) {
			count++
		}
	}

	return count
}

// BusinessDaysRemainingInYear counts weekdays from today through Dec 31,
// inclusive of today.
func BusinessDaysRemainingInYear(today time.Time) int {
	day := NormalizeToMidnight(today)
	next := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location()).AddDate(1, 0, 0)

	count := 0
	for d := day; d.Before(next); d = d.AddDate(0, 0, 1) {
		if isBusinessDay(d) {
			count++
		}
	}

	return count
}

// BusinessDaysElapsedInYear counts weekdays from Jan 1 up to but excluding
// today.
func BusinessDaysElapsedInYear(today time.Time) int {
	day := NormalizeToMidnight(today)
	first := time.Date(day.Year(), time.January, 1, 0, 0, 0, 0, day.Location())

	count := 0
	for d := first; d.Before(day); d = d.AddDate(0, 0, 1) {
		if isBusinessDay(d) {
			count++
		}
	}

	return count
}
