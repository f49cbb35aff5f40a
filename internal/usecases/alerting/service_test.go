package alerting

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository/mocks"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

func validAlert() *domain.TradingAlert {
	return &domain.TradingAlert{
		UserID:      1,
		Symbol:      "VTI",
		Action:      domain.ActionBuy,
		TargetPrice: decimal.RequireFromString("250"),
	}
}

func TestCreateForcesOpenStatus(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	a := validAlert()
	a.Status = domain.AlertTriggered
	now := time.Now()
	a.TriggeredAt = &now

	created, err := service.Create(a)

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.AlertOpen, created.Status)
	assert.Nil(t, created.TriggeredAt)
}

func TestCreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepository(ctrl)
	service := NewService(mockRepo)

	tests := []struct {
		name    string
		mutate  func(a *domain.TradingAlert)
		wantErr error
	}{
		{
			name:    "missing symbol",
			mutate:  func(a *domain.TradingAlert) { a.Symbol = "" },
			wantErr: ErrSymbolRequired,
		},
		{
			name:    "unknown action",
			mutate:  func(a *domain.TradingAlert) { a.Action = domain.AlertAction("short") },
			wantErr: ErrInvalidAction,
		},
		{
			name:    "zero target price",
			mutate:  func(a *domain.TradingAlert) { a.TargetPrice = decimal.Zero },
			wantErr: ErrInvalidPrice,
		},
		{
			name: "malformed expiry",
			mutate: func(a *domain.TradingAlert) {
				bad := "31/12/2024"
				a.ExpiresAt = &bad
			},
			wantErr: ErrInvalidExpiryDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := validAlert()
			tt.mutate(a)

			_, err := service.Create(a)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTriggerStampsTriggeredAt(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepository(ctrl)
	service := NewService(mockRepo)

	open := validAlert()
	open.ID = "al1"
	open.Status = domain.AlertOpen

	mockRepo.EXPECT().GetByID(1, "al1").Return(open, nil)
	mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	triggered, err := service.Trigger(1, "al1")

	assert.NoError(t, err)
	assert.Equal(t, domain.AlertTriggered, triggered.Status)
	assert.NotNil(t, triggered.TriggeredAt)
}

func TestDismissLeavesTriggeredAtEmpty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepository(ctrl)
	service := NewService(mockRepo)

	open := validAlert()
	open.ID = "al1"
	open.Status = domain.AlertOpen

	mockRepo.EXPECT().GetByID(1, "al1").Return(open, nil)
	mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	dismissed, err := service.Dismiss(1, "al1")

	assert.NoError(t, err)
	assert.Equal(t, domain.AlertDismissed, dismissed.Status)
	assert.Nil(t, dismissed.TriggeredAt)
}

func TestLifecycleMovesOnlyFromOpen(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepository(ctrl)
	service := NewService(mockRepo)

	for _, status := range []domain.AlertStatus{domain.AlertTriggered, domain.AlertDismissed, domain.AlertExpired} {
		closed := validAlert()
		closed.ID = "al1"
		closed.Status = status

		mockRepo.EXPECT().GetByID(1, "al1").Return(closed, nil)

		_, err := service.Trigger(1, "al1")
		assert.ErrorIs(t, err, ErrAlertNotOpen)
	}

	mockRepo.EXPECT().GetByID(1, "missing").Return(nil, nil)
	_, err := service.Dismiss(1, "missing")
	assert.ErrorIs(t, err, ErrAlertNotFound)
}

func TestUpdatePreservesLifecycleFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockAlertRepository(ctrl)
	service := NewService(mockRepo)

	stamped := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.Local)
	existing := validAlert()
	existing.ID = "al1"
	existing.Status = domain.AlertTriggered
	existing.TriggeredAt = &stamped

	mockRepo.EXPECT().GetByID(1, "al1").Return(existing, nil)
	mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(a *domain.TradingAlert) error {
		assert.Equal(t, domain.AlertTriggered, a.Status)
		assert.Equal(t, &stamped, a.TriggeredAt)
		assert.True(t, a.TargetPrice.Equal(decimal.RequireFromString("260")))
		return nil
	})

	patch := validAlert()
	patch.ID = "al1"
	patch.TargetPrice = decimal.RequireFromString("260")
	patch.Status = domain.AlertOpen // ignored

	err := service.Update(1, patch)
	assert.NoError(t, err)
}
