package goals

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository/mocks"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

func TestSetBuildsCanonicalKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().Set(gomock.Any()).DoAndReturn(func(g *domain.Goal) error {
		assert.Equal(t, "monthly_commission_goal", g.Key)
		return nil
	})

	goal, err := service.Set(&domain.Goal{
		UserID: 1,
		Period: domain.PeriodMonthly,
		Metric: domain.MetricCommission,
		Amount: decimal.RequireFromString("10000"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "monthly_commission_goal", goal.Key)
}

func TestSetKeepsExplicitKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().Set(gomock.Any()).Return(nil)

	goal, err := service.Set(&domain.Goal{
		UserID: 1,
		Key:    "yearly_trailer_goal",
		Period: domain.PeriodYearly,
		Metric: domain.GoalMetric("trailer"),
		Amount: decimal.RequireFromString("5000"),
	})

	assert.NoError(t, err)
	assert.Equal(t, "yearly_trailer_goal", goal.Key)
}

func TestSetValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockRepo)

	_, err := service.Set(&domain.Goal{
		Period: domain.GoalPeriod("quarterly"),
		Amount: decimal.RequireFromString("100"),
	})
	assert.ErrorIs(t, err, ErrInvalidPeriod)

	_, err = service.Set(&domain.Goal{
		Period: domain.PeriodMonthly,
		Metric: domain.MetricCommission,
		Amount: decimal.RequireFromString("-1"),
	})
	assert.ErrorIs(t, err, ErrInvalidAmount)
}

func TestGetAndClearRequireKey(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockGoalRepository(ctrl)
	service := NewService(mockRepo)

	_, err := service.Get(1, "")
	assert.ErrorIs(t, err, ErrMissingKey)

	err = service.Clear(1, "")
	assert.ErrorIs(t, err, ErrMissingKey)

	mockRepo.EXPECT().Get(1, "monthly_commission_goal").Return(nil, nil)
	goal, err := service.Get(1, "monthly_commission_goal")
	assert.NoError(t, err)
	assert.Nil(t, goal)
}
