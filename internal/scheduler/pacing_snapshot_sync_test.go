package scheduler

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository/mocks"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
	revenuemocks "github.com/Kingcorpe/practice-manager-api/internal/usecases/revenue/mocks"
)

func pacingReport(asOf string) *domain.PacingReport {
	return &domain.PacingReport{
		Monthly: domain.Pacing{
			GoalAmount:  decimal.RequireFromString("10000"),
			Received:    decimal.RequireFromString("3000"),
			ProgressPct: decimal.RequireFromString("30"),
		},
		Yearly: domain.Pacing{
			GoalAmount: decimal.RequireFromString("120000"),
			Received:   decimal.RequireFromString("45000"),
		},
		AsOf: asOf,
	}
}

func TestPacingSnapshotSyncService_syncAllUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockUserRepo := mocks.NewMockUserRepository(ctrl)
	mockSnapshotRepo := mocks.NewMockPacingSnapshotRepository(ctrl)
	mockRevenue := revenuemocks.NewMockRevenueService(ctrl)

	service := &PacingSnapshotSyncService{
		config:         PacingSnapshotSyncConfig{RetentionDays: 400},
		userRepo:       mockUserRepo,
		snapshotRepo:   mockSnapshotRepo,
		revenueService: mockRevenue,
	}

	mockUserRepo.EXPECT().ListUser().Return([]*domain.User{
		{ID: 1, Active: true},
		{ID: 2, Active: false},
		{ID: 3, Active: true},
	}, nil)

	// Inactive user 2 is skipped; users 1 and 3 get one snapshot per metric.
	for _, userID := range []int{1, 3} {
		for _, metric := range pacingMetrics {
			mockRevenue.EXPECT().
				PacingReport(userID, metric, gomock.Any()).
				Return(pacingReport("2024-06-12"), nil)
		}
	}

	saved := 0
	mockSnapshotRepo.EXPECT().
		SaveOrUpdate(gomock.Any()).
		DoAndReturn(func(s *domain.PacingSnapshot) error {
			saved++
			assert.Equal(t, "2024-06-12", s.Date)
			assert.True(t, s.Monthly.ProgressPct.Equal(decimal.RequireFromString("30")))
			return nil
		}).
		Times(6)

	mockSnapshotRepo.EXPECT().DeleteOlderThan(400).Return(int64(12), nil)

	service.syncAllUsers()

	assert.Equal(t, 6, saved)
	assert.False(t, service.lastSyncCompletedAt.IsZero())
}

func TestPacingSnapshotSyncService_snapshotUserContinuesOnError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockSnapshotRepo := mocks.NewMockPacingSnapshotRepository(ctrl)
	mockRevenue := revenuemocks.NewMockRevenueService(ctrl)

	service := &PacingSnapshotSyncService{
		snapshotRepo:   mockSnapshotRepo,
		revenueService: mockRevenue,
	}

	// The commission report fails; dividend and AUM are still written.
	mockRevenue.EXPECT().
		PacingReport(1, domain.MetricCommission, gomock.Any()).
		Return(nil, errors.New("goal lookup failed"))
	mockRevenue.EXPECT().
		PacingReport(1, domain.MetricDividend, gomock.Any()).
		Return(pacingReport("2024-06-12"), nil)
	mockRevenue.EXPECT().
		PacingReport(1, domain.MetricAUM, gomock.Any()).
		Return(pacingReport("2024-06-12"), nil)

	mockSnapshotRepo.EXPECT().SaveOrUpdate(gomock.Any()).Return(nil).Times(2)

	written := service.snapshotUser(1, service.lastSyncStartedAt)

	assert.Equal(t, 2, written)
}
