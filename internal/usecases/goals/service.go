package goals

import (
	"errors"

	"github.com/Kingcorpe/practice-manager-api/infrastructure/repository"
	"github.com/Kingcorpe/practice-manager-api/internal/domain"
)

var (
	ErrInvalidPeriod = errors.New("goal period must be monthly or yearly")
	ErrInvalidAmount = errors.New("goal amount cannot be negative")
	ErrMissingKey    = errors.New("goal key is required")
)

// GoalService manages the per-user goal key-value store.
type GoalService interface {
	Get(userID int, key string) (*domain.Goal, error)
	List(userID int) ([]*domain.Goal, error)
	Set(goal *domain.Goal) (*domain.Goal, error)
	Clear(userID int, key string) error
}

type Service struct {
	goalRepo repository.GoalRepository
}

func NewService(goalRepo repository.GoalRepository) GoalService {
	return &Service{
		goalRepo: goalRepo,
	}
}

func (s *Service) Get(userID int, key string) (*domain.Goal, error) {
	if key == "" {
		return nil, ErrMissingKey
	}
	return s.goalRepo.Get(userID, key)
}

func (s *Service) List(userID int) ([]*domain.Goal, error) {
	return s.goalRepo.ListByUser(userID)
}

func (s *Service) Set(goal *domain.Goal) (*domain.Goal, error) {
	if goal.Period != domain.PeriodMonthly && goal.Period != domain.PeriodYearly {
		return nil, ErrInvalidPeriod
	}

	if goal.Amount.Sign() < 0 {
		return nil, ErrInvalidAmount
	}

	if goal.Key == "" {
		goal.Key = domain.GoalKey(goal.Period, goal.Metric)
	}

	if err := s.goalRepo.Set(goal); err != nil {
		return nil, err
	}

	return goal, nil
}

func (s *Service) Clear(userID int, key string) error {
	if key == "" {
		return ErrMissingKey
	}
	return s.goalRepo.Remove(userID, key)
}
