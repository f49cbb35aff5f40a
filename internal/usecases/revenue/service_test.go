package revenue

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository/mocks"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

func TestCreateEntryComputesStructuredCommission(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockRevenueEntryRepository(ctrl)
	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockEntryRepo, mockGoalRepo)

	mockEntryRepo.EXPECT().Create(gomock.Any()).Return(nil)

	entry := &domain.RevenueEntry{
		UserID:         1,
		Domain:         domain.RevenueInsurance,
		Date:           "2024-03-15",
		PolicyType:     domain.PolicyT10,
		MonthlyPremium: decimal.RequireFromString("1000"),
		// User-keyed amount is overridden for structured products
		Amount: decimal.RequireFromString("42"),
	}

	created, err := service.CreateEntry(entry)

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StatusPlanned, created.Status)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("13680")),
		"expected computed commission, got %s", created.Amount.String())
}

func TestCreateEntryKeepsManualAmount(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockRevenueEntryRepository(ctrl)
	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockEntryRepo, mockGoalRepo)

	mockEntryRepo.EXPECT().Create(gomock.Any()).Return(nil)

	entry := &domain.RevenueEntry{
		UserID:     1,
		Domain:     domain.RevenueInsurance,
		Date:       "2024-03-15",
		Status:     domain.StatusReceived,
		PolicyType: domain.PolicyHealthInsurance,
		Amount:     decimal.RequireFromString("750.50"),
	}

	created, err := service.CreateEntry(entry)

	assert.NoError(t, err)
	assert.Equal(t, domain.StatusReceived, created.Status)
	assert.True(t, created.Amount.Equal(decimal.RequireFromString("750.50")))
}

func TestCreateEntryValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockRevenueEntryRepository(ctrl)
	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockEntryRepo, mockGoalRepo)

	tests := []struct {
		name    string
		entry   *domain.RevenueEntry
		wantErr error
	}{
		{
			name: "missing date",
			entry: &domain.RevenueEntry{
				Domain: domain.RevenueInsurance,
			},
			wantErr: ErrMissingDate,
		},
		{
			name: "malformed date",
			entry: &domain.RevenueEntry{
				Domain: domain.RevenueInsurance,
				Date:   "15/03/2024",
			},
			wantErr: ErrInvalidDate,
		},
		{
			name: "negative amount",
			entry: &domain.RevenueEntry{
				Domain: domain.RevenueInsurance,
				Date:   "2024-03-15",
				Amount: decimal.RequireFromString("-10"),
			},
			wantErr: ErrNegativeAmount,
		},
		{
			name: "unknown domain",
			entry: &domain.RevenueEntry{
				Domain: domain.RevenueDomain("crypto"),
				Date:   "2024-03-15",
			},
			wantErr: ErrInvalidDomain,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.CreateEntry(tt.entry)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestUpdateEntryNotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockRevenueEntryRepository(ctrl)
	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockEntryRepo, mockGoalRepo)

	mockEntryRepo.EXPECT().GetByID(1, "missing").Return(nil, nil)

	_, err := service.UpdateEntry(1, &domain.UpdateRevenueEntryRequest{ID: "missing"})

	assert.ErrorIs(t, err, ErrEntryNotFound)
}

func TestUpdateEntryRecomputesCommissionOnPremiumChange(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockRevenueEntryRepository(ctrl)
	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockEntryRepo, mockGoalRepo)

	existing := &domain.RevenueEntry{
		ID:             "abc123def456",
		UserID:         1,
		Domain:         domain.RevenueInsurance,
		Date:           "2024-03-15",
		Status:         domain.StatusPlanned,
		PolicyType:     domain.PolicyT20,
		MonthlyPremium: decimal.RequireFromString("500"),
		Amount:         decimal.RequireFromString("7695"),
	}

	mockEntryRepo.EXPECT().GetByID(1, "abc123def456").Return(existing, nil)
	mockEntryRepo.EXPECT().Update(gomock.Any()).Return(nil)

	newPremium := decimal.RequireFromString("1000")
	updated, err := service.UpdateEntry(1, &domain.UpdateRevenueEntryRequest{
		ID:             "abc123def456",
		MonthlyPremium: &newPremium,
	})

	assert.NoError(t, err)
	assert.True(t, updated.Amount.Equal(decimal.RequireFromString("15390")),
		"expected recomputed commission, got %s", updated.Amount.String())
}

func TestSummaryAggregatesRepositoryEntries(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockRevenueEntryRepository(ctrl)
	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockEntryRepo, mockGoalRepo)

	entries := []*domain.RevenueEntry{
		{Date: "2024-01-10", Status: domain.StatusReceived, Amount: decimal.RequireFromString("100")},
		{Date: "2024-02-10", Status: domain.StatusPlanned, Amount: decimal.RequireFromString("200")},
	}

	filter := repository.RevenueFilter{Domain: domain.RevenueInsurance}
	mockEntryRepo.EXPECT().ListByUser(1, filter).Return(entries, nil)

	summary, err := service.Summary(1, filter)

	assert.NoError(t, err)
	assert.Len(t, summary.Months, 2)
	assert.True(t, summary.ByStatus[domain.StatusReceived].Equal(decimal.RequireFromString("100")))
}

func TestSummaryPropagatesRepositoryError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockRevenueEntryRepository(ctrl)
	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockEntryRepo, mockGoalRepo)

	repoErr := errors.New("connection reset")
	mockEntryRepo.EXPECT().ListByUser(1, gomock.Any()).Return(nil, repoErr)

	_, err := service.Summary(1, repository.RevenueFilter{})

	assert.ErrorIs(t, err, repoErr)
}

func TestPacingReport(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockRevenueEntryRepository(ctrl)
	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockEntryRepo, mockGoalRepo)

	// Wednesday June 12 2024: 13 business days remain in June, today included.
	today := time.Date(2024, time.June, 12, 14, 30, 0, 0, time.Local)

	entries := []*domain.RevenueEntry{
		{ID: "e1", Date: "2024-06-03", Status: domain.StatusReceived, Amount: decimal.RequireFromString("2000")},
		{ID: "e2", Date: "2024-06-10", Status: domain.StatusReceived, Amount: decimal.RequireFromString("1000")},
		// Received in-year but out-of-month counts toward yearly only
		{ID: "e3", Date: "2024-01-15", Status: domain.StatusReceived, Amount: decimal.RequireFromString("4000")},
		// Planned revenue never counts toward pacing
		{ID: "e4", Date: "2024-06-05", Status: domain.StatusPlanned, Amount: decimal.RequireFromString("9999")},
		// Prior-year entries are ignored entirely
		{ID: "e5", Date: "2023-06-05", Status: domain.StatusReceived, Amount: decimal.RequireFromString("8888")},
	}

	mockEntryRepo.EXPECT().
		ListByUser(1, repository.RevenueFilter{Domain: domain.RevenueInsurance}).
		Return(entries, nil)

	mockGoalRepo.EXPECT().
		Get(1, "monthly_commission_goal").
		Return(&domain.Goal{Amount: decimal.RequireFromString("10000")}, nil)

	mockGoalRepo.EXPECT().
		Get(1, "yearly_commission_goal").
		Return(&domain.Goal{Amount: decimal.RequireFromString("120000")}, nil)

	report, err := service.PacingReport(1, domain.MetricCommission, today)

	assert.NoError(t, err)
	assert.Equal(t, "2024-06-12", report.AsOf)

	assert.True(t, report.Monthly.Received.Equal(decimal.RequireFromString("3000")))
	assert.True(t, report.Monthly.ProgressPct.Equal(decimal.RequireFromString("30")))
	assert.True(t, report.Monthly.Remaining.Equal(decimal.RequireFromString("7000")))
	assert.Equal(t, 13, report.Monthly.DaysRemaining)

	assert.True(t, report.Yearly.Received.Equal(decimal.RequireFromString("7000")))
	assert.True(t, report.Yearly.Remaining.Equal(decimal.RequireFromString("113000")))

	// T10 guidance inverts the commission formula on the monthly daily target
	expectedPremium := RequiredMonthlyPremium(report.Monthly.DailyTarget, domain.PolicyT10)
	assert.True(t, report.RequiredT10Premium.Equal(expectedPremium))
}

func TestPacingReportNoGoalsSet(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockRevenueEntryRepository(ctrl)
	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockEntryRepo, mockGoalRepo)

	today := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.Local)

	mockEntryRepo.EXPECT().ListByUser(1, gomock.Any()).Return(nil, nil)
	mockGoalRepo.EXPECT().Get(1, "monthly_commission_goal").Return(nil, nil)
	mockGoalRepo.EXPECT().Get(1, "yearly_commission_goal").Return(nil, nil)

	report, err := service.PacingReport(1, domain.MetricCommission, today)

	assert.NoError(t, err)
	assert.True(t, report.Monthly.ProgressPct.IsZero())
	assert.True(t, report.Monthly.DailyTarget.IsZero())
	assert.True(t, report.RequiredT10Premium.IsZero())
}

func TestPacingReportMetricFilters(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockEntryRepo := mocks.NewMockRevenueEntryRepository(ctrl)
	mockGoalRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockEntryRepo, mockGoalRepo)

	today := time.Date(2024, time.June, 12, 0, 0, 0, 0, time.Local)

	mockEntryRepo.EXPECT().
		ListByUser(1, repository.RevenueFilter{Domain: domain.RevenueInvestment, EntryType: domain.EntryDividend}).
		Return(nil, nil)
	mockGoalRepo.EXPECT().Get(1, "monthly_dividend_goal").Return(nil, nil)
	mockGoalRepo.EXPECT().Get(1, "yearly_dividend_goal").Return(nil, nil)

	_, err := service.PacingReport(1, domain.MetricDividend, today)
	assert.NoError(t, err)
}
