package scheduler

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository/mocks"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

func TestMaintenanceSweepService_sweep(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAlertRepo := mocks.NewMockAlertRepository(ctrl)
	mockProspectRepo := mocks.NewMockProspectRepository(ctrl)

	service := &MaintenanceSweepService{
		config:       MaintenanceSweepConfig{StaleProspectDays: 10},
		alertRepo:    mockAlertRepo,
		prospectRepo: mockProspectRepo,
	}

	today := time.Now().Format(time.DateOnly)
	mockAlertRepo.EXPECT().ExpireOlderThan(today).Return(int64(2), nil)

	mockProspectRepo.EXPECT().
		ListIdleSince(gomock.Any()).
		Return([]*domain.Prospect{
			{ID: "p1"},
			{ID: "p2"},
			{ID: "p3"},
		}, nil)

	mockProspectRepo.EXPECT().
		MarkStale([]string{"p1", "p2", "p3"}).
		Return(int64(3), nil)

	service.sweep()

	assert.False(t, service.lastSweepCompletedAt.IsZero())
}

func TestMaintenanceSweepService_sweepNoIdleProspects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAlertRepo := mocks.NewMockAlertRepository(ctrl)
	mockProspectRepo := mocks.NewMockProspectRepository(ctrl)

	service := &MaintenanceSweepService{
		config:       MaintenanceSweepConfig{StaleProspectDays: 10},
		alertRepo:    mockAlertRepo,
		prospectRepo: mockProspectRepo,
	}

	mockAlertRepo.EXPECT().ExpireOlderThan(gomock.Any()).Return(int64(0), nil)
	mockProspectRepo.EXPECT().ListIdleSince(gomock.Any()).Return(nil, nil)

	// MarkStale is never called when nothing is idle
	service.sweep()
}

func TestMaintenanceSweepService_alertExpiryFailureDoesNotBlockProspects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAlertRepo := mocks.NewMockAlertRepository(ctrl)
	mockProspectRepo := mocks.NewMockProspectRepository(ctrl)

	service := &MaintenanceSweepService{
		config:       MaintenanceSweepConfig{StaleProspectDays: 5},
		alertRepo:    mockAlertRepo,
		prospectRepo: mockProspectRepo,
	}

	mockAlertRepo.EXPECT().ExpireOlderThan(gomock.Any()).Return(int64(0), errors.New("deadlock detected"))
	mockProspectRepo.EXPECT().ListIdleSince(gomock.Any()).Return(nil, nil)

	service.sweep()
}
