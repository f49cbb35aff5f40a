package revenue

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

func entry(date string, status domain.RevenueStatus, amount string) *domain.RevenueEntry {
	return &domain.RevenueEntry{
		Date:   date,
		Status: status,
		Amount: decimal.RequireFromString(amount),
	}
}

func TestAggregateEmptyInput(t *testing.T) {
	summary := Aggregate(nil)

	assert.Empty(t, summary.Months)
	assert.True(t, summary.ByStatus[domain.StatusPlanned].IsZero())
	assert.True(t, summary.ByStatus[domain.StatusPending].IsZero())
	assert.True(t, summary.ByStatus[domain.StatusReceived].IsZero())
}

func TestAggregateGroupsByStatusAndMonth(t *testing.T) {
	entries := []*domain.RevenueEntry{
		entry("2024-01-05", domain.StatusReceived, "1000.50"),
		entry("2024-01-20", domain.StatusReceived, "200.25"),
		entry("2024-01-10", domain.StatusPlanned, "5000"),
		entry("2024-02-02", domain.StatusPending, "750"),
	}

	summary := Aggregate(entries)

	assert.True(t, summary.ByStatus[domain.StatusReceived].Equal(decimal.RequireFromString("1200.75")))
	assert.True(t, summary.ByStatus[domain.StatusPlanned].Equal(decimal.RequireFromString("5000")))
	assert.True(t, summary.ByStatus[domain.StatusPending].Equal(decimal.RequireFromString("750")))

	assert.Len(t, summary.Months, 2)

	// Most recent month first
	assert.Equal(t, "2024-02", summary.Months[0].MonthKey)
	assert.Equal(t, "2024-01", summary.Months[1].MonthKey)

	january := summary.Months[1]
	assert.True(t, january.ByStatus[domain.StatusReceived].Equal(decimal.RequireFromString("1200.75")))
	assert.True(t, january.ByStatus[domain.StatusPlanned].Equal(decimal.RequireFromString("5000")))
}

func TestAggregateSpringQuarter(t *testing.T) {
	entries := []*domain.RevenueEntry{
		entry("2025-03-05", domain.StatusReceived, "100.00"),
		entry("2025-03-20", domain.StatusPending, "50.00"),
		entry("2025-04-01", domain.StatusReceived, "75.00"),
	}

	summary := Aggregate(entries)

	assert.True(t, summary.ByStatus[domain.StatusReceived].Equal(decimal.RequireFromString("175.00")))
	assert.True(t, summary.ByStatus[domain.StatusPending].Equal(decimal.RequireFromString("50.00")))
	assert.True(t, summary.ByStatus[domain.StatusPlanned].IsZero())

	assert.Len(t, summary.Months, 2)
	assert.Equal(t, "2025-04", summary.Months[0].MonthKey)
	assert.Equal(t, "2025-03", summary.Months[1].MonthKey)

	april, march := summary.Months[0], summary.Months[1]
	assert.True(t, april.ByStatus[domain.StatusReceived].Equal(decimal.RequireFromString("75.00")))
	assert.True(t, march.ByStatus[domain.StatusReceived].Equal(decimal.RequireFromString("100.00")))
	assert.True(t, march.ByStatus[domain.StatusPending].Equal(decimal.RequireFromString("50.00")))
}

func TestAggregateOrderIndependence(t *testing.T) {
	entries := []*domain.RevenueEntry{
		entry("2024-03-01", domain.StatusReceived, "10"),
		entry("2024-01-15", domain.StatusPending, "20"),
		entry("2024-02-10", domain.StatusPlanned, "30"),
		entry("2024-03-20", domain.StatusReceived, "40"),
	}

	reversed := make([]*domain.RevenueEntry, len(entries))
	for i, e := range entries {
		reversed[len(entries)-1-i] = e
	}

	a := Aggregate(entries)
	b := Aggregate(reversed)

	assert.Equal(t, len(a.Months), len(b.Months))
	for i := range a.Months {
		assert.Equal(t, a.Months[i].MonthKey, b.Months[i].MonthKey)
		for status, amount := range a.Months[i].ByStatus {
			assert.True(t, amount.Equal(b.Months[i].ByStatus[status]))
		}
	}
}

func TestAggregateSkipsNilEntries(t *testing.T) {
	entries := []*domain.RevenueEntry{
		nil,
		entry("2024-01-05", domain.StatusReceived, "100"),
		nil,
	}

	summary := Aggregate(entries)

	assert.Len(t, summary.Months, 1)
	assert.True(t, summary.ByStatus[domain.StatusReceived].Equal(decimal.RequireFromString("100")))
}

func TestAggregateInvestmentTypeBreakdown(t *testing.T) {
	dividend := entry("2024-01-05", domain.StatusReceived, "300")
	dividend.EntryType = domain.EntryDividend

	aum := entry("2024-01-12", domain.StatusReceived, "450")
	aum.EntryType = domain.EntryAUM

	insurance := entry("2024-01-20", domain.StatusReceived, "99")

	summary := Aggregate([]*domain.RevenueEntry{dividend, aum, insurance})

	assert.Len(t, summary.Months, 1)
	january := summary.Months[0]

	assert.True(t, january.ByType[domain.EntryDividend].Equal(decimal.RequireFromString("300")))
	assert.True(t, january.ByType[domain.EntryAUM].Equal(decimal.RequireFromString("450")))

	_, hasBlank := january.ByType[domain.InvestmentEntryType("")]
	assert.False(t, hasBlank)
}

func TestYearToDate(t *testing.T) {
	entries := []*domain.RevenueEntry{
		entry("2024-01-05", domain.StatusReceived, "100"),
		entry("2024-12-31", domain.StatusReceived, "50"),
		entry("2023-12-31", domain.StatusReceived, "999"),
		entry("2024-06-15", domain.StatusPlanned, "80"),
		entry("not-a-date", domain.StatusReceived, "1000000"),
	}

	totals := YearToDate(entries, 2024)

	assert.True(t, totals[domain.StatusReceived].Equal(decimal.RequireFromString("150")))
	assert.True(t, totals[domain.StatusPlanned].Equal(decimal.RequireFromString("80")))
	assert.True(t, totals[domain.StatusPending].IsZero())
}
