package prospecting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository/mocks"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

func TestCreateDefaultsToLeadStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProspectRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().Create(gomock.Any()).Return(nil)

	created, err := service.Create(&domain.Prospect{UserID: 1, Name: "Jordan Hayes"})

	assert.NoError(t, err)
	assert.NotEmpty(t, created.ID)
	assert.Equal(t, domain.StageLead, created.Stage)
	assert.False(t, created.Stale)
	assert.False(t, created.StageChangedAt.IsZero())
}

func TestCreateValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProspectRepository(ctrl)
	service := NewService(mockRepo)

	_, err := service.Create(&domain.Prospect{UserID: 1})
	assert.ErrorIs(t, err, ErrNameRequired)

	_, err = service.Create(&domain.Prospect{UserID: 1, Name: "A", Stage: domain.ProspectStage("negotiation")})
	assert.ErrorIs(t, err, ErrInvalidStage)
}

func TestUpdatePreservesStageFields(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProspectRepository(ctrl)
	service := NewService(mockRepo)

	stamped := time.Date(2024, time.May, 1, 9, 0, 0, 0, time.Local)
	existing := &domain.Prospect{
		ID:             "pr1",
		UserID:         1,
		Name:           "Jordan Hayes",
		Stage:          domain.StageMeeting,
		Stale:          true,
		StageChangedAt: stamped,
	}

	mockRepo.EXPECT().GetByID(1, "pr1").Return(existing, nil)
	mockRepo.EXPECT().Update(gomock.Any()).DoAndReturn(func(p *domain.Prospect) error {
		assert.Equal(t, domain.StageMeeting, p.Stage)
		assert.True(t, p.Stale)
		assert.Equal(t, stamped, p.StageChangedAt)
		assert.Equal(t, "Jordan Hayes-Smith", p.Name)
		return nil
	})

	err := service.Update(1, &domain.Prospect{
		ID:    "pr1",
		Name:  "Jordan Hayes-Smith",
		Stage: domain.StageWon, // ignored, moves go through MoveStage
	})

	assert.NoError(t, err)
}

func TestMoveStage(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProspectRepository(ctrl)
	service := NewService(mockRepo)

	existing := &domain.Prospect{
		ID:             "pr1",
		UserID:         1,
		Name:           "Jordan Hayes",
		Stage:          domain.StageContacted,
		Stale:          true,
		StageChangedAt: time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local),
	}

	mockRepo.EXPECT().GetByID(1, "pr1").Return(existing, nil)
	mockRepo.EXPECT().Update(gomock.Any()).Return(nil)

	moved, err := service.MoveStage(1, "pr1", domain.StageMeeting)

	assert.NoError(t, err)
	assert.Equal(t, domain.StageMeeting, moved.Stage)
	assert.False(t, moved.Stale)
	assert.True(t, moved.StageChangedAt.After(time.Date(2024, time.May, 1, 0, 0, 0, 0, time.Local)))
}

func TestMoveStageRejectsTerminalProspects(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProspectRepository(ctrl)
	service := NewService(mockRepo)

	for _, terminal := range []domain.ProspectStage{domain.StageWon, domain.StageLost} {
		mockRepo.EXPECT().GetByID(1, "pr1").Return(&domain.Prospect{
			ID:    "pr1",
			Stage: terminal,
		}, nil)

		_, err := service.MoveStage(1, "pr1", domain.StageLead)
		assert.ErrorIs(t, err, ErrTerminalStage)
	}
}

func TestMoveStageUnknownStageAndMissingProspect(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProspectRepository(ctrl)
	service := NewService(mockRepo)

	_, err := service.MoveStage(1, "pr1", domain.ProspectStage("parked"))
	assert.ErrorIs(t, err, ErrInvalidStage)

	mockRepo.EXPECT().GetByID(1, "missing").Return(nil, nil)
	_, err = service.MoveStage(1, "missing", domain.StageMeeting)
	assert.ErrorIs(t, err, ErrProspectNotFound)
}

func TestFunnelSummary(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := mocks.NewMockProspectRepository(ctrl)
	service := NewService(mockRepo)

	mockRepo.EXPECT().ListByUser(1).Return([]*domain.Prospect{
		{ID: "p1", Stage: domain.StageLead},
		{ID: "p2", Stage: domain.StageLead, Stale: true},
		{ID: "p3", Stage: domain.StageProposal},
		{ID: "p4", Stage: domain.StageWon},
	}, nil)

	summary, err := service.FunnelSummary(1)

	assert.NoError(t, err)
	assert.Equal(t, 4, summary.Total)
	assert.Equal(t, 1, summary.Stale)
	assert.Equal(t, 2, summary.Stages[domain.StageLead])
	assert.Equal(t, 1, summary.Stages[domain.StageProposal])
	assert.Equal(t, 1, summary.Stages[domain.StageWon])
	assert.Equal(t, 25.0, summary.ConversionRate)

	// Every funnel stage is present even when empty
	assert.Equal(t, 0, summary.Stages[domain.StageContacted])
	assert.Equal(t, 0, summary.Stages[domain.StageMeeting])
	assert.Equal(t, 0, summary.Stages[domain.StageLost])
}
