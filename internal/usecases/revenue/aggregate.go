package revenue

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

// Aggregate groups revenue entries by status and by calendar month. The
// result is deterministic for a given entry set regardless of input order,
// and an empty input yields zero totals with an empty breakdown.
func Aggregate(entries []*domain.RevenueEntry) *domain.RevenueSummary {
	summary := &domain.RevenueSummary{
		ByStatus: zeroStatusTotals(),
		Months:   []domain.MonthBreakdown{},
	}

	buckets := make(map[string]*domain.MonthBreakdown)

	for _, entry := range entries {
		if entry == nil {
			continue
		}

		summary.ByStatus[entry.Status] = summary.ByStatus[entry.Status].Add(entry.Amount)

		key := monthKeyOf(entry.Date)
		bucket, ok := buckets[key]
		if !ok {
			bucket = &domain.MonthBreakdown{
				MonthKey: key,
				ByStatus: zeroStatusTotals(),
			}
			buckets[key] = bucket
		}

		bucket.ByStatus[entry.Status] = bucket.ByStatus[entry.Status].Add(entry.Amount)

		if entry.EntryType != "" {
			if bucket.ByType == nil {
				bucket.ByType = make(map[domain.InvestmentEntryType]decimal.Decimal)
			}
			bucket.ByType[entry.EntryType] = bucket.ByType[entry.EntryType].Add(entry.Amount)
		}
	}

	for _, bucket := range buckets {
		summary.Months = append(summary.Months, *bucket)
	}

	// Most recent month first for display
	sort.Slice(summary.Months, func(i, j int) bool {
		return summary.Months[i].MonthKey > summary.Months[j].MonthKey
	})

	return summary
}

// YearToDate sums entries per status for the given calendar year. The
// entry date is parsed and compared as a real date; entries with malformed
// dates are skipped.
func YearToDate(entries []*domain.RevenueEntry, year int) map[domain.RevenueStatus]decimal.Decimal {
	totals := zeroStatusTotals()

	for _, entry := range entries {
		if entry == nil {
			continue
		}

		date, err := time.Parse(time.DateOnly, entry.Date)
		if err != nil {
			continue
		}

		if date.Year() == year {
			totals[entry.Status] = totals[entry.Status].Add(entry.Amount)
		}
	}

	return totals
}

func zeroStatusTotals() map[domain.RevenueStatus]decimal.Decimal {
	return map[domain.RevenueStatus]decimal.Decimal{
		domain.StatusPlanned:  decimal.Zero,
		domain.StatusPending:  decimal.Zero,
		domain.StatusReceived: decimal.Zero,
	}
}

// monthKeyOf derives the "YYYY-MM" bucket key from an ISO date string.
func monthKeyOf(date string) string {
	if len(date) < 7 {
		return date
	}
	return date[:7]
}
